package controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tuberec/tuberec/internal/datasources/mocks"
	"github.com/tuberec/tuberec/internal/domain"
)

func TestVideoGet_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		videoID    string
		videos     []domain.Video
		fetchErr   error
		wantStatus int
	}{
		{
			name:    "found",
			videoID: "vid1",
			videos: []domain.Video{
				{VideoID: "vid1", Title: "Go Concurrency"},
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "not_found",
			videoID:    "missing",
			videos:     []domain.Video{},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "fetch_error",
			videoID:    "vid1",
			fetchErr:   errors.New("database error"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := mocks.NewMockVideoFetcher(t)
			fetcher.EXPECT().
				FetchVideosByID(mock.Anything, []string{tc.videoID}).
				Return(tc.videos, tc.fetchErr)

			ctrl := VideoGet{Fetcher: fetcher, CacheMaxAge: time.Minute}

			req := httptest.NewRequest(http.MethodGet, "/v1/videos/"+tc.videoID, nil)
			req = mux.SetURLVars(req, map[string]string{"video_id": tc.videoID})
			rec := httptest.NewRecorder()

			ctrl.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
