package controller

import (
	"encoding/json"
	"net/http"

	"github.com/tuberec/tuberec/internal/datasources"
	"github.com/tuberec/tuberec/internal/domain"
)

const maxSearchTextBytes = 100 * 1024 // 100KB

// VideoSearch is unpersonalised semantic search: the raw query embedding is
// matched against the index with no preference blending.
type VideoSearch struct {
	Embedder   datasources.Embedder
	Similarity datasources.NearestVideosLister
	Fetcher    datasources.VideoFetcher
}

type videoSearchRequest struct {
	Text  string `json:"text"`
	Limit int    `json:"limit"`
}

func (c VideoSearch) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var req videoSearchRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSearchTextBytes+1024)).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if req.Text == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if len(req.Text) > maxSearchTextBytes {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	vector, err := c.Embedder.EmbedText(ctx, req.Text)
	if err != nil {
		logger.ErrorContext(ctx, "unable to embed text", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if vector == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	matches, err := c.Similarity.ListNearestVideos(ctx, vector, limit)
	if err != nil {
		logger.ErrorContext(ctx, "unable to find similar videos", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	ids := make([]string, 0, len(matches))
	for _, match := range matches {
		ids = append(ids, match.VideoID)
	}

	videos, err := c.Fetcher.FetchVideosByID(ctx, ids)
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch videos", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(VideosListResponse{
		Data:     videos,
		Metadata: VideosListMetadata{},
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write videos to response", "error", err)
	}
}
