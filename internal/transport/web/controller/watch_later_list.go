package controller

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/tuberec/tuberec/internal/datasources"
	"github.com/tuberec/tuberec/internal/domain"
)

// WatchLaterList resolves the user's watch-later interactions to full video
// metadata, most recently modified first.
type WatchLaterList struct {
	Lister  datasources.WatchLaterLister
	Fetcher datasources.VideoFetcher
}

func (c WatchLaterList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["user_id"]

	interactions, err := c.Lister.ListWatchLater(r.Context(), userID)
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to list watch-later interactions", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	ids := make([]string, 0, len(interactions))
	for _, interaction := range interactions {
		ids = append(ids, interaction.VideoID)
	}

	videos, err := c.Fetcher.FetchVideosByID(r.Context(), ids)
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to fetch watch-later videos", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(VideosListResponse{
		Data:     videos,
		Metadata: VideosListMetadata{},
	}); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write videos to response", "error", err)
	}
}
