package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tuberec/tuberec/internal/datasources"
	"github.com/tuberec/tuberec/internal/datasources/mocks"
	"github.com/tuberec/tuberec/internal/domain"
)

func testCatalogVideo(videoID string) datasources.CatalogVideo {
	return datasources.CatalogVideo{
		VideoID:      videoID,
		Title:        "Intro to Go",
		Description:  "A beginner friendly walkthrough of the Go toolchain.",
		ChannelName:  "GopherAcademy",
		DurationText: "PT12M30S",
		ViewCount:    1000,
		Tags:         []string{"go", "tutorial"},
		ThumbnailURL: "https://i.ytimg.com/vi/" + videoID + "/hqdefault.jpg",
		PublishedAt:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestIngestVideos_Execute_Success(t *testing.T) {
	catalog := mocks.NewMockCatalogRepository(t)
	catalog.EXPECT().
		SearchVideoIDs(mock.Anything, "golang", 5).
		Return([]string{"vid1", "vid2"}, nil)
	catalog.EXPECT().
		FetchVideoDetails(mock.Anything, []string{"vid1", "vid2"}).
		Return([]datasources.CatalogVideo{
			testCatalogVideo("vid1"),
			testCatalogVideo("vid2"),
		}, nil)

	newFilter := mocks.NewMockNewVideoIDsFilter(t)
	newFilter.EXPECT().
		FilterNewVideoIDs(mock.Anything, []string{"vid1", "vid2"}).
		Return([]string{"vid1", "vid2"}, nil)

	storer := mocks.NewMockVideoStorer(t)
	var storedVideos []domain.Video
	storer.EXPECT().
		StoreVideo(mock.Anything, mock.AnythingOfType("domain.Video")).
		Run(func(_ context.Context, video domain.Video) {
			storedVideos = append(storedVideos, video)
		}).
		Return(nil)

	summarizer := mocks.NewMockTextGenerator(t)
	summarizer.EXPECT().
		GenerateText(mock.Anything, mock.AnythingOfType("string")).
		Return("A two sentence summary.", nil)

	embedder := mocks.NewMockEmbedder(t)
	embedder.EXPECT().
		EmbedText(mock.Anything, "Title: Intro to Go\nTags: go,tutorial\nSummary: A two sentence summary.").
		Return([]float32{0.1, 0.2}, nil)

	upserter := mocks.NewMockVideoEmbeddingUpserter(t)
	var upserted []domain.VideoEmbedding
	upserter.EXPECT().
		UpsertVideoEmbedding(mock.Anything, mock.AnythingOfType("domain.VideoEmbedding")).
		Run(func(_ context.Context, embedding domain.VideoEmbedding) {
			upserted = append(upserted, embedding)
		}).
		Return(nil)

	cmd := NewIngestVideos(catalog, newFilter, storer, upserter, summarizer, embedder)

	saved, err := cmd.Execute(context.Background(), IngestVideosRequest{
		Topic:      "golang",
		MaxResults: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, saved)
	require.Len(t, storedVideos, 2)
	assert.Equal(t, 750, storedVideos[0].DurationSeconds)
	assert.Equal(t, "go,tutorial", storedVideos[0].Tags)
	require.Len(t, upserted, 2)
	assert.Equal(t, "A two sentence summary.", upserted[0].Summary)
}

func TestIngestVideos_Execute_AllKnownVideosSkipsFetch(t *testing.T) {
	catalog := mocks.NewMockCatalogRepository(t)
	catalog.EXPECT().
		SearchVideoIDs(mock.Anything, "golang", 5).
		Return([]string{"vid1", "vid2"}, nil)

	newFilter := mocks.NewMockNewVideoIDsFilter(t)
	newFilter.EXPECT().
		FilterNewVideoIDs(mock.Anything, []string{"vid1", "vid2"}).
		Return(nil, nil)

	storer := mocks.NewMockVideoStorer(t)
	summarizer := mocks.NewMockTextGenerator(t)
	embedder := mocks.NewMockEmbedder(t)
	upserter := mocks.NewMockVideoEmbeddingUpserter(t)

	cmd := NewIngestVideos(catalog, newFilter, storer, upserter, summarizer, embedder)

	saved, err := cmd.Execute(context.Background(), IngestVideosRequest{
		Topic:      "golang",
		MaxResults: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, saved)
}

func TestIngestVideos_Execute_PerVideoFailureContinues(t *testing.T) {
	catalog := mocks.NewMockCatalogRepository(t)
	catalog.EXPECT().
		SearchVideoIDs(mock.Anything, "golang", 5).
		Return([]string{"vid1", "vid2", "vid3"}, nil)
	catalog.EXPECT().
		FetchVideoDetails(mock.Anything, []string{"vid1", "vid2", "vid3"}).
		Return([]datasources.CatalogVideo{
			testCatalogVideo("vid1"),
			testCatalogVideo("vid2"),
			testCatalogVideo("vid3"),
		}, nil)

	newFilter := mocks.NewMockNewVideoIDsFilter(t)
	newFilter.EXPECT().
		FilterNewVideoIDs(mock.Anything, []string{"vid1", "vid2", "vid3"}).
		Return([]string{"vid1", "vid2", "vid3"}, nil)

	storer := mocks.NewMockVideoStorer(t)
	storer.EXPECT().
		StoreVideo(mock.Anything, mock.AnythingOfType("domain.Video")).
		RunAndReturn(func(_ context.Context, video domain.Video) error {
			if video.VideoID == "vid2" {
				return errors.New("disk full")
			}
			return nil
		})

	summarizer := mocks.NewMockTextGenerator(t)
	summarizer.EXPECT().
		GenerateText(mock.Anything, mock.AnythingOfType("string")).
		Return("summary", nil)

	embedder := mocks.NewMockEmbedder(t)
	embedder.EXPECT().
		EmbedText(mock.Anything, mock.AnythingOfType("string")).
		Return([]float32{0.5}, nil)

	upserter := mocks.NewMockVideoEmbeddingUpserter(t)
	upserter.EXPECT().
		UpsertVideoEmbedding(mock.Anything, mock.AnythingOfType("domain.VideoEmbedding")).
		Return(nil)

	cmd := NewIngestVideos(catalog, newFilter, storer, upserter, summarizer, embedder)

	saved, err := cmd.Execute(context.Background(), IngestVideosRequest{
		Topic:      "golang",
		MaxResults: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, saved)
}

func TestIngestVideos_Execute_SearchError(t *testing.T) {
	catalog := mocks.NewMockCatalogRepository(t)
	catalog.EXPECT().
		SearchVideoIDs(mock.Anything, "golang", 5).
		Return(nil, errors.New("quota exceeded"))

	newFilter := mocks.NewMockNewVideoIDsFilter(t)
	storer := mocks.NewMockVideoStorer(t)
	summarizer := mocks.NewMockTextGenerator(t)
	embedder := mocks.NewMockEmbedder(t)
	upserter := mocks.NewMockVideoEmbeddingUpserter(t)

	cmd := NewIngestVideos(catalog, newFilter, storer, upserter, summarizer, embedder)

	_, err := cmd.Execute(context.Background(), IngestVideosRequest{
		Topic:      "golang",
		MaxResults: 5,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "searching catalog")
}
