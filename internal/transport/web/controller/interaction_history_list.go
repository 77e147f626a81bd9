package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/tuberec/tuberec/internal/datasources"
	"github.com/tuberec/tuberec/internal/domain"
)

const defaultHistoryLimit = 50

type InteractionHistoryList struct {
	Lister datasources.InteractionHistoryLister
}

type InteractionHistoryListResponse struct {
	Data []domain.Interaction `json:"data"`
}

func (c InteractionHistoryList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["user_id"]

	limit, err := historyLimitFromQuery(r)
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse history limit in query string", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	interactions, err := c.Lister.ListInteractionHistory(r.Context(), userID, limit)
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to list interaction history", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(InteractionHistoryListResponse{
		Data: interactions,
	}); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write interactions to response", "error", err)
	}
}

func historyLimitFromQuery(r *http.Request) (int, error) {
	if !r.URL.Query().Has("limit") {
		return defaultHistoryLimit, nil
	}

	limit, err := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("unable to parse limit from query: %w", err)
	}
	if limit < 1 {
		return 0, fmt.Errorf("invalid limit value [%d]", limit)
	}
	if limitCap := int64(200); limit > limitCap {
		return 0, fmt.Errorf("limit [%d] exceeds cap [%d]", limit, limitCap)
	}

	return int(limit), nil
}
