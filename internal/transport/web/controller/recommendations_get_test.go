package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tuberec/tuberec/internal/command"
	cmdmocks "github.com/tuberec/tuberec/internal/command/mocks"
	"github.com/tuberec/tuberec/internal/domain"
)

func TestRecommendationsGet_ServeHTTP(t *testing.T) {
	cases := []struct {
		name           string
		query          string
		recommendation domain.Recommendation
		recommendErr   error
		wantStatus     int
		skipRecommend  bool
	}{
		{
			name:  "success",
			query: "golang concurrency",
			recommendation: domain.Recommendation{
				Narrative: "These fit because of **Go Concurrency**.",
				Videos:    []domain.Video{{VideoID: "vid1"}},
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "no_matches",
			query: "underwater basket weaving",
			recommendation: domain.Recommendation{
				Narrative: "No videos found.",
				Videos:    []domain.Video{},
			},
			wantStatus: http.StatusOK,
		},
		{
			name:          "missing_query",
			query:         "",
			wantStatus:    http.StatusBadRequest,
			skipRecommend: true,
		},
		{
			name:         "unknown_user",
			query:        "golang",
			recommendErr: domain.ErrNotFound,
			wantStatus:   http.StatusNotFound,
		},
		{
			name:         "recommend_error",
			query:        "golang",
			recommendErr: errors.New("index unavailable"),
			wantStatus:   http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recommendCmd := cmdmocks.NewMockCommand[command.RecommendVideosRequest, domain.Recommendation](t)

			if !tc.skipRecommend {
				recommendCmd.EXPECT().
					Execute(mock.Anything, command.RecommendVideosRequest{
						UserID: "user1",
						Query:  tc.query,
					}).
					Return(tc.recommendation, tc.recommendErr)
			}

			ctrl := RecommendationsGet{RecommendCmd: recommendCmd}

			req := httptest.NewRequest(http.MethodGet, "/v1/users/user1/recommendations", nil)
			q := req.URL.Query()
			if tc.query != "" {
				q.Set("query", tc.query)
			}
			req.URL.RawQuery = q.Encode()
			req = mux.SetURLVars(req, map[string]string{"user_id": "user1"})
			rec := httptest.NewRecorder()

			ctrl.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusOK {
				var got domain.Recommendation
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.Equal(t, tc.recommendation.Narrative, got.Narrative)
				assert.Len(t, got.Videos, len(tc.recommendation.Videos))
			}
		})
	}
}
