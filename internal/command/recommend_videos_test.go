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

func testRecommendVideosConfig() RecommendVideosConfig {
	return RecommendVideosConfig{
		QueryWeight:      0.7,
		PreferenceWeight: 0.3,
		TopK:             4,
	}
}

func TestRecommendVideos_Execute_NoPreferenceUsesRawQueryVector(t *testing.T) {
	queryVector := []float32{1.0, 0.0, 0.0}

	embedder := mocks.NewMockEmbedder(t)
	embedder.EXPECT().
		EmbedText(mock.Anything, "golang concurrency").
		Return(queryVector, nil)

	preferences := mocks.NewMockUserPreferenceGetter(t)
	preferences.EXPECT().
		GetUserPreferenceVector(mock.Anything, "user1").
		Return(nil, nil)

	similarity := mocks.NewMockNearestVideosLister(t)
	similarity.EXPECT().
		ListNearestVideos(mock.Anything, queryVector, 4).
		Return([]domain.VideoMatch{
			{VideoID: "vid1", Score: 0.95, Summary: "Goroutines from scratch."},
		}, nil)

	videos := mocks.NewMockVideoFetcher(t)
	videos.EXPECT().
		FetchVideosByID(mock.Anything, []string{"vid1"}).
		Return([]domain.Video{{VideoID: "vid1", Title: "Go Concurrency"}}, nil)

	generator := mocks.NewMockTextGenerator(t)
	generator.EXPECT().
		GenerateText(mock.Anything, mock.AnythingOfType("string")).
		Return("These videos cover **Go Concurrency** in depth.", nil)

	cmd := NewRecommendVideos(
		embedder, preferences, similarity, videos, generator,
		testRecommendVideosConfig(),
	)

	result, err := cmd.Execute(context.Background(), RecommendVideosRequest{
		UserID: "user1",
		Query:  "golang concurrency",
	})
	require.NoError(t, err)

	assert.Equal(t, "These videos cover **Go Concurrency** in depth.", result.Narrative)
	require.Len(t, result.Videos, 1)
	assert.Equal(t, "vid1", result.Videos[0].VideoID)
}

func TestRecommendVideos_Execute_BlendsPreferenceVector(t *testing.T) {
	queryVector := []float32{1.0, 0.0}
	preferenceVector := []float32{0.0, 1.0}
	// 0.7*query + 0.3*preference
	blended := []float32{0.7, 0.3}

	embedder := mocks.NewMockEmbedder(t)
	embedder.EXPECT().
		EmbedText(mock.Anything, "databases").
		Return(queryVector, nil)

	preferences := mocks.NewMockUserPreferenceGetter(t)
	preferences.EXPECT().
		GetUserPreferenceVector(mock.Anything, "user1").
		Return(preferenceVector, nil)

	similarity := mocks.NewMockNearestVideosLister(t)
	var probe []float32
	similarity.EXPECT().
		ListNearestVideos(mock.Anything, mock.Anything, 4).
		Run(func(_ context.Context, vector []float32, _ int) {
			probe = vector
		}).
		Return([]domain.VideoMatch{{VideoID: "vid1", Score: 0.9}}, nil)

	videos := mocks.NewMockVideoFetcher(t)
	videos.EXPECT().
		FetchVideosByID(mock.Anything, []string{"vid1"}).
		Return([]domain.Video{{VideoID: "vid1"}}, nil)

	generator := mocks.NewMockTextGenerator(t)
	generator.EXPECT().
		GenerateText(mock.Anything, mock.AnythingOfType("string")).
		Return("narrative", nil)

	cmd := NewRecommendVideos(
		embedder, preferences, similarity, videos, generator,
		testRecommendVideosConfig(),
	)

	_, err := cmd.Execute(context.Background(), RecommendVideosRequest{
		UserID: "user1",
		Query:  "databases",
	})
	require.NoError(t, err)

	require.Len(t, probe, len(blended))
	for i := range blended {
		assert.InDelta(t, blended[i], probe[i], 1e-6)
	}
}

func TestRecommendVideos_Execute_NoMatchesReturnsCannedNarrative(t *testing.T) {
	embedder := mocks.NewMockEmbedder(t)
	embedder.EXPECT().
		EmbedText(mock.Anything, "underwater basket weaving").
		Return([]float32{0.5, 0.5}, nil)

	preferences := mocks.NewMockUserPreferenceGetter(t)
	preferences.EXPECT().
		GetUserPreferenceVector(mock.Anything, "user1").
		Return(nil, nil)

	similarity := mocks.NewMockNearestVideosLister(t)
	similarity.EXPECT().
		ListNearestVideos(mock.Anything, mock.Anything, 4).
		Return([]domain.VideoMatch{}, nil)

	videos := mocks.NewMockVideoFetcher(t)
	generator := mocks.NewMockTextGenerator(t)

	cmd := NewRecommendVideos(
		embedder, preferences, similarity, videos, generator,
		testRecommendVideosConfig(),
	)

	result, err := cmd.Execute(context.Background(), RecommendVideosRequest{
		UserID: "user1",
		Query:  "underwater basket weaving",
	})
	require.NoError(t, err)

	assert.Equal(t, "No videos found.", result.Narrative)
	assert.Empty(t, result.Videos)
	assert.NotNil(t, result.Videos)
}

func TestRecommendVideos_Execute_PreservesSimilarityOrder(t *testing.T) {
	embedder := mocks.NewMockEmbedder(t)
	embedder.EXPECT().
		EmbedText(mock.Anything, "testing").
		Return([]float32{1.0}, nil)

	preferences := mocks.NewMockUserPreferenceGetter(t)
	preferences.EXPECT().
		GetUserPreferenceVector(mock.Anything, "user1").
		Return(nil, nil)

	similarity := mocks.NewMockNearestVideosLister(t)
	similarity.EXPECT().
		ListNearestVideos(mock.Anything, mock.Anything, 4).
		Return([]domain.VideoMatch{
			{VideoID: "vid3", Score: 0.9},
			{VideoID: "vid1", Score: 0.8},
			{VideoID: "vid2", Score: 0.7},
		}, nil)

	videos := mocks.NewMockVideoFetcher(t)
	videos.EXPECT().
		FetchVideosByID(mock.Anything, []string{"vid3", "vid1", "vid2"}).
		Return([]domain.Video{
			{VideoID: "vid3"},
			{VideoID: "vid1"},
			{VideoID: "vid2"},
		}, nil)

	generator := mocks.NewMockTextGenerator(t)
	generator.EXPECT().
		GenerateText(mock.Anything, mock.AnythingOfType("string")).
		Return("narrative", nil)

	cmd := NewRecommendVideos(
		embedder, preferences, similarity, videos, generator,
		testRecommendVideosConfig(),
	)

	result, err := cmd.Execute(context.Background(), RecommendVideosRequest{
		UserID: "user1",
		Query:  "testing",
	})
	require.NoError(t, err)

	require.Len(t, result.Videos, 3)
	assert.Equal(t, "vid3", result.Videos[0].VideoID)
	assert.Equal(t, "vid1", result.Videos[1].VideoID)
	assert.Equal(t, "vid2", result.Videos[2].VideoID)
}

func TestRecommendVideos_Execute_Errors(t *testing.T) {
	cases := []struct {
		name        string
		embedErr    error
		prefErr     error
		similarErr  error
		generateErr error
		errContains string
	}{
		{
			name:        "embed_error",
			embedErr:    errors.New("embedding service down"),
			errContains: "embedding query",
		},
		{
			name:        "preference_error",
			prefErr:     errors.New("database error"),
			errContains: "getting user preference vector",
		},
		{
			name:        "similarity_error",
			similarErr:  errors.New("index unavailable"),
			errContains: "finding nearest videos",
		},
		{
			name:        "generator_error",
			generateErr: errors.New("model offline"),
			errContains: "generating narrative",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			embedder := mocks.NewMockEmbedder(t)
			preferences := mocks.NewMockUserPreferenceGetter(t)
			similarity := mocks.NewMockNearestVideosLister(t)
			videos := mocks.NewMockVideoFetcher(t)
			generator := mocks.NewMockTextGenerator(t)

			embedder.EXPECT().
				EmbedText(mock.Anything, "query").
				Return([]float32{1.0}, tc.embedErr)

			if tc.embedErr == nil {
				preferences.EXPECT().
					GetUserPreferenceVector(mock.Anything, "user1").
					Return(nil, tc.prefErr)
			}

			if tc.embedErr == nil && tc.prefErr == nil {
				similarity.EXPECT().
					ListNearestVideos(mock.Anything, mock.Anything, 4).
					Return([]domain.VideoMatch{{VideoID: "vid1"}}, tc.similarErr)
			}

			if tc.embedErr == nil && tc.prefErr == nil && tc.similarErr == nil {
				videos.EXPECT().
					FetchVideosByID(mock.Anything, []string{"vid1"}).
					Return([]domain.Video{{VideoID: "vid1"}}, nil)
				generator.EXPECT().
					GenerateText(mock.Anything, mock.AnythingOfType("string")).
					Return("", tc.generateErr)
			}

			cmd := NewRecommendVideos(
				embedder, preferences, similarity, videos, generator,
				testRecommendVideosConfig(),
			)

			_, err := cmd.Execute(context.Background(), RecommendVideosRequest{
				UserID: "user1",
				Query:  "query",
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errContains)
		})
	}
}
