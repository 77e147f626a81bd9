package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tuberec/tuberec/internal/datasources/mocks"
	"github.com/tuberec/tuberec/internal/domain"
)

func TestRecordInteraction_Execute_Success(t *testing.T) {
	vector := []float32{0.1, 0.2, 0.3}

	videoFetcher := mocks.NewMockVideoFetcher(t)
	videoFetcher.EXPECT().
		FetchVideosByID(mock.Anything, []string{"vid1"}).
		Return([]domain.Video{{VideoID: "vid1", Title: "Go Testing"}}, nil)

	vectorFetcher := mocks.NewMockVideoVectorFetcher(t)
	vectorFetcher.EXPECT().
		FetchVideoVector(mock.Anything, "vid1").
		Return(vector, nil)

	applier := mocks.NewMockInteractionApplier(t)
	applier.EXPECT().
		ApplyInteraction(mock.Anything, "user1", "vid1", domain.ActionToggleLike, vector).
		Return(domain.Interaction{
			UserID:     "user1",
			VideoID:    "vid1",
			LikeStatus: domain.LikeStatusLike,
		}, nil)

	cmd := NewRecordInteraction(videoFetcher, vectorFetcher, applier)

	interaction, err := cmd.Execute(context.Background(), RecordInteractionRequest{
		UserID:  "user1",
		VideoID: "vid1",
		Action:  domain.ActionToggleLike,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.LikeStatusLike, interaction.LikeStatus)
}

func TestRecordInteraction_Execute_UnknownVideo(t *testing.T) {
	videoFetcher := mocks.NewMockVideoFetcher(t)
	videoFetcher.EXPECT().
		FetchVideosByID(mock.Anything, []string{"missing"}).
		Return([]domain.Video{}, nil)

	vectorFetcher := mocks.NewMockVideoVectorFetcher(t)
	applier := mocks.NewMockInteractionApplier(t)

	cmd := NewRecordInteraction(videoFetcher, vectorFetcher, applier)

	_, err := cmd.Execute(context.Background(), RecordInteractionRequest{
		UserID:  "user1",
		VideoID: "missing",
		Action:  domain.ActionClick,
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordInteraction_Execute_MissingEmbedding(t *testing.T) {
	videoFetcher := mocks.NewMockVideoFetcher(t)
	videoFetcher.EXPECT().
		FetchVideosByID(mock.Anything, []string{"vid1"}).
		Return([]domain.Video{{VideoID: "vid1"}}, nil)

	vectorFetcher := mocks.NewMockVideoVectorFetcher(t)
	vectorFetcher.EXPECT().
		FetchVideoVector(mock.Anything, "vid1").
		Return(nil, nil)

	applier := mocks.NewMockInteractionApplier(t)

	cmd := NewRecordInteraction(videoFetcher, vectorFetcher, applier)

	_, err := cmd.Execute(context.Background(), RecordInteractionRequest{
		UserID:  "user1",
		VideoID: "vid1",
		Action:  domain.ActionMarkFull,
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "embedding for video")
}

func TestRecordInteraction_Execute_ApplyError(t *testing.T) {
	vector := []float32{1.0}

	videoFetcher := mocks.NewMockVideoFetcher(t)
	videoFetcher.EXPECT().
		FetchVideosByID(mock.Anything, []string{"vid1"}).
		Return([]domain.Video{{VideoID: "vid1"}}, nil)

	vectorFetcher := mocks.NewMockVideoVectorFetcher(t)
	vectorFetcher.EXPECT().
		FetchVideoVector(mock.Anything, "vid1").
		Return(vector, nil)

	applier := mocks.NewMockInteractionApplier(t)
	applier.EXPECT().
		ApplyInteraction(mock.Anything, "user1", "vid1", domain.ActionClick, vector).
		Return(domain.Interaction{}, errors.New("deadlock"))

	cmd := NewRecordInteraction(videoFetcher, vectorFetcher, applier)

	_, err := cmd.Execute(context.Background(), RecordInteractionRequest{
		UserID:  "user1",
		VideoID: "vid1",
		Action:  domain.ActionClick,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "applying interaction")
}
