package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tuberec/tuberec/internal/datasources/mocks"
	"github.com/tuberec/tuberec/internal/domain"
)

func TestVideosList_ServeHTTP(t *testing.T) {
	testTime := time.Date(2024, 11, 2, 9, 30, 0, 0, time.UTC)

	cases := []struct {
		name        string
		url         string
		wantFilters domain.VideoFilters
		wantOptions domain.VideoListOptions
		videos      []domain.Video
		listErr     error
		wantStatus  int
		skipList    bool
	}{
		{
			name:        "defaults",
			url:         "/v1/videos",
			wantFilters: domain.VideoFilters{},
			wantOptions: domain.VideoListOptions{Page: 1, PageSize: 100},
			videos: []domain.Video{
				{VideoID: "vid1", Title: "Go Concurrency", PublishedAt: testTime},
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "channel_filters_and_sort",
			url:  "/v1/videos?only_channels=GopherAcademy&sort=view_count_desc&page=2&page_size=10",
			wantFilters: domain.VideoFilters{
				ChannelAllowlist: []string{"GopherAcademy"},
			},
			wantOptions: domain.VideoListOptions{
				Page:     2,
				PageSize: 10,
				Ordering: []domain.VideoOrdering{
					{Field: domain.VideoOrderingFieldViewCount, Desc: true},
				},
			},
			videos:     []domain.Video{},
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid_sort_field",
			url:        "/v1/videos?sort=popularity",
			wantStatus: http.StatusBadRequest,
			skipList:   true,
		},
		{
			name:       "invalid_page",
			url:        "/v1/videos?page=0",
			wantStatus: http.StatusBadRequest,
			skipList:   true,
		},
		{
			name:        "list_error",
			url:         "/v1/videos",
			wantFilters: domain.VideoFilters{},
			wantOptions: domain.VideoListOptions{Page: 1, PageSize: 100},
			listErr:     errors.New("database error"),
			wantStatus:  http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lister := mocks.NewMockLatestVideoLister(t)

			if !tc.skipList {
				lister.EXPECT().
					ListLatestVideos(mock.Anything, tc.wantFilters, tc.wantOptions).
					Return(tc.videos, tc.listErr)
			}

			ctrl := VideosList{Lister: lister, CacheMaxAge: time.Minute}

			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			rec := httptest.NewRecorder()

			ctrl.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusOK {
				var resp VideosListResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Len(t, resp.Data, len(tc.videos))
			}
		})
	}
}
