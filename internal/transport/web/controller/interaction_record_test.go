package controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tuberec/tuberec/internal/command"
	cmdmocks "github.com/tuberec/tuberec/internal/command/mocks"
	"github.com/tuberec/tuberec/internal/domain"
)

func TestInteractionRecord_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		recordErr  error
		wantStatus int
		skipRecord bool
	}{
		{
			name:       "toggle_like",
			body:       `{"user_id":"user1","video_id":"vid1","action":"TOGGLE_LIKE"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "mark_full",
			body:       `{"user_id":"user1","video_id":"vid1","action":"MARK_FULL"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid_action",
			body:       `{"user_id":"user1","video_id":"vid1","action":"SMASH_SUBSCRIBE"}`,
			wantStatus: http.StatusBadRequest,
			skipRecord: true,
		},
		{
			name:       "missing_user_id",
			body:       `{"video_id":"vid1","action":"CLICK"}`,
			wantStatus: http.StatusBadRequest,
			skipRecord: true,
		},
		{
			name:       "malformed_json",
			body:       `{"user_id":`,
			wantStatus: http.StatusBadRequest,
			skipRecord: true,
		},
		{
			name:       "unknown_video",
			body:       `{"user_id":"user1","video_id":"missing","action":"CLICK"}`,
			recordErr:  domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "record_error",
			body:       `{"user_id":"user1","video_id":"vid1","action":"CLICK"}`,
			recordErr:  errors.New("database error"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recordCmd := cmdmocks.NewMockCommand[command.RecordInteractionRequest, domain.Interaction](t)

			if !tc.skipRecord {
				recordCmd.EXPECT().
					Execute(mock.Anything, mock.AnythingOfType("command.RecordInteractionRequest")).
					Return(domain.Interaction{
						UserID:     "user1",
						VideoID:    "vid1",
						LikeStatus: domain.LikeStatusLike,
					}, tc.recordErr)
			}

			ctrl := InteractionRecord{RecordCmd: recordCmd}

			req := httptest.NewRequest(http.MethodPost, "/v1/interactions", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()

			ctrl.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
