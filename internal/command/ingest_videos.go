package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/tuberec/tuberec/internal/datasources"
	"github.com/tuberec/tuberec/internal/datasources/youtube"
	"github.com/tuberec/tuberec/internal/domain"
)

// IngestVideosRequest is the request for the IngestVideos command.
type IngestVideosRequest struct {
	Topic      string
	MaxResults int
}

// IngestVideos pulls candidate videos from the external catalog, summarises
// and embeds the new ones, and stores video + embedding. Each video is
// processed independently: one failure is logged and skipped, never aborting
// the rest of the batch.
type IngestVideos struct {
	Catalog    datasources.CatalogRepository
	NewFilter  datasources.NewVideoIDsFilter
	Videos     datasources.VideoStorer
	Embeddings datasources.VideoEmbeddingUpserter
	Summarizer datasources.TextGenerator
	Embedder   datasources.Embedder
}

// NewIngestVideos creates a properly initialized IngestVideos command.
func NewIngestVideos(
	catalog datasources.CatalogRepository,
	newFilter datasources.NewVideoIDsFilter,
	videos datasources.VideoStorer,
	embeddings datasources.VideoEmbeddingUpserter,
	summarizer datasources.TextGenerator,
	embedder datasources.Embedder,
) *IngestVideos {
	return &IngestVideos{
		Catalog:    catalog,
		NewFilter:  newFilter,
		Videos:     videos,
		Embeddings: embeddings,
		Summarizer: summarizer,
		Embedder:   embedder,
	}
}

// Execute returns the count of videos that completed every ingestion step.
func (c *IngestVideos) Execute(ctx context.Context, req IngestVideosRequest) (int, error) {
	logger := domain.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "starting ingestion", "topic", req.Topic, "max_results", req.MaxResults)

	candidateIDs, err := c.Catalog.SearchVideoIDs(ctx, req.Topic, req.MaxResults)
	if err != nil {
		return 0, fmt.Errorf("searching catalog: %w", err)
	}

	newIDs, err := c.NewFilter.FilterNewVideoIDs(ctx, candidateIDs)
	if err != nil {
		return 0, fmt.Errorf("filtering known video IDs: %w", err)
	}
	if len(newIDs) == 0 {
		return 0, nil
	}

	details, err := c.Catalog.FetchVideoDetails(ctx, newIDs)
	if err != nil {
		return 0, fmt.Errorf("fetching video details: %w", err)
	}

	saved := 0
	for _, record := range details {
		if err := c.ingestOne(ctx, record); err != nil {
			logger.ErrorContext(ctx, "failed to ingest video",
				"video_id", record.VideoID, "error", err)
			continue
		}
		saved++
	}

	logger.InfoContext(ctx, "ingestion complete", "topic", req.Topic, "saved", saved)
	return saved, nil
}

// ingestOne runs the full pipeline for a single catalog record. The video
// row is persisted before the embedding so an embedding never exists without
// its video.
func (c *IngestVideos) ingestOne(ctx context.Context, record datasources.CatalogVideo) error {
	video := videoFromCatalogRecord(ctx, record)

	if err := c.Videos.StoreVideo(ctx, video); err != nil {
		return fmt.Errorf("storing video: %w", err)
	}

	summaryPrompt := "Summarize the following YouTube video description in 2 sentences, " +
		"focusing on the key topics taught: \n\n" + video.Title + "\n" + video.Description
	summary, err := c.Summarizer.GenerateText(ctx, summaryPrompt)
	if err != nil {
		return fmt.Errorf("summarising video: %w", err)
	}

	textToEmbed := fmt.Sprintf("Title: %s\nTags: %s\nSummary: %s", video.Title, video.Tags, summary)
	vector, err := c.Embedder.EmbedText(ctx, textToEmbed)
	if err != nil {
		return fmt.Errorf("embedding video text: %w", err)
	}

	if err := c.Embeddings.UpsertVideoEmbedding(ctx, domain.VideoEmbedding{
		VideoID: video.VideoID,
		Vector:  vector,
		Summary: summary,
	}); err != nil {
		return fmt.Errorf("storing video embedding: %w", err)
	}

	return nil
}

// videoFromCatalogRecord normalises raw catalog metadata. An unparseable
// duration is a warning, not an item failure, matching the upstream catalog's
// occasional malformed values.
func videoFromCatalogRecord(ctx context.Context, record datasources.CatalogVideo) domain.Video {
	durationSeconds, err := youtube.ParseISODuration(record.DurationText)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "could not parse video duration",
			"video_id", record.VideoID, "duration", record.DurationText)
		durationSeconds = 0
	}

	return domain.Video{
		VideoID:         record.VideoID,
		Title:           record.Title,
		Description:     record.Description,
		ChannelName:     record.ChannelName,
		DurationSeconds: durationSeconds,
		ViewCount:       record.ViewCount,
		PublishedAt:     record.PublishedAt,
		Tags:            strings.Join(record.Tags, ","),
		ThumbnailURL:    record.ThumbnailURL,
	}
}
