package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tuberec/tuberec/internal/command"
	"github.com/tuberec/tuberec/internal/domain"
)

type InteractionRecord struct {
	RecordCmd command.Command[command.RecordInteractionRequest, domain.Interaction]
}

type interactionRecordRequest struct {
	UserID  string `json:"user_id"`
	VideoID string `json:"video_id"`
	Action  string `json:"action"`
}

func (c InteractionRecord) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := domain.LoggerFromContext(r.Context())

	var req interactionRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if req.UserID == "" || req.VideoID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	action, err := domain.ParseInteractionAction(req.Action)
	if err != nil {
		logger.ErrorContext(r.Context(), "invalid interaction action", "action", req.Action)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	ctx := domain.ContextWithLogger(r.Context(),
		logger.With("user_id", req.UserID, "video_id", req.VideoID))

	interaction, err := c.RecordCmd.Execute(ctx, command.RecordInteractionRequest{
		UserID:  req.UserID,
		VideoID: req.VideoID,
		Action:  action,
	})
	if errors.Is(err, domain.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		logger.ErrorContext(ctx, "failed to record interaction", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(interaction); err != nil {
		logger.ErrorContext(ctx, "unable to write interaction to response", "error", err)
	}
}
