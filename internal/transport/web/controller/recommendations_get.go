package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/tuberec/tuberec/internal/command"
	"github.com/tuberec/tuberec/internal/domain"
)

type RecommendationsGet struct {
	RecommendCmd command.Command[command.RecommendVideosRequest, domain.Recommendation]
}

func (c RecommendationsGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["user_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("user_id", userID))

	query := r.URL.Query().Get("query")
	if query == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	recommendation, err := c.RecommendCmd.Execute(ctx, command.RecommendVideosRequest{
		UserID: userID,
		Query:  query,
	})
	if errors.Is(err, domain.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		logger.ErrorContext(ctx, "failed to generate recommendations", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(recommendation); err != nil {
		logger.ErrorContext(ctx, "unable to write recommendation to response", "error", err)
	}
}
