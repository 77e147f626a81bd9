package controller

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/tuberec/tuberec/internal/datasources"
	"github.com/tuberec/tuberec/internal/domain"
)

// InteractionDelete removes the interaction record outright. The preference
// vector keeps whatever the interaction already contributed; deletion is not
// an undo.
type InteractionDelete struct {
	Deleter datasources.InteractionDeleter
}

func (c InteractionDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["user_id"]
	videoID := vars["video_id"]

	err := c.Deleter.DeleteInteraction(r.Context(), userID, videoID)
	if errors.Is(err, domain.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to delete interaction", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
