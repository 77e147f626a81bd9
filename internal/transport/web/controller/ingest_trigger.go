package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/tuberec/tuberec/internal/command"
	"github.com/tuberec/tuberec/internal/domain"
)

const (
	defaultIngestMaxResults = 5
	ingestMaxResultsCap     = 50
)

type IngestTrigger struct {
	IngestCmd command.Command[command.IngestVideosRequest, int]
}

type IngestTriggerResponse struct {
	Saved int `json:"saved"`
}

func (c IngestTrigger) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := domain.LoggerFromContext(r.Context())

	topic := r.URL.Query().Get("topic")
	if topic == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	maxResults, err := ingestMaxResultsFromQuery(r)
	if err != nil {
		logger.ErrorContext(r.Context(), "unable to parse max results in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	ctx := domain.ContextWithLogger(r.Context(), logger.With("topic", topic))

	saved, err := c.IngestCmd.Execute(ctx, command.IngestVideosRequest{
		Topic:      topic,
		MaxResults: maxResults,
	})
	if err != nil {
		logger.ErrorContext(ctx, "ingestion failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(IngestTriggerResponse{Saved: saved}); err != nil {
		logger.ErrorContext(ctx, "unable to write ingestion result to response", "error", err)
	}
}

func ingestMaxResultsFromQuery(r *http.Request) (int, error) {
	if !r.URL.Query().Has("max") {
		return defaultIngestMaxResults, nil
	}

	max, err := strconv.ParseInt(r.URL.Query().Get("max"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("unable to parse max from query: %w", err)
	}
	if max < 1 {
		return 0, fmt.Errorf("invalid max value [%d]", max)
	}
	if max > ingestMaxResultsCap {
		return 0, fmt.Errorf("max [%d] exceeds cap [%d]", max, ingestMaxResultsCap)
	}

	return int(max), nil
}
