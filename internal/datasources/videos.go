package datasources

import (
	"context"

	"github.com/tuberec/tuberec/internal/domain"
)

type VideoFetcher interface {
	// FetchVideosByID returns videos in the same order as the input IDs,
	// silently omitting IDs with no stored video.
	FetchVideosByID(ctx context.Context, videoIDs []string) ([]domain.Video, error)
}

type LatestVideoLister interface {
	ListLatestVideoIDs(ctx context.Context, filters domain.VideoFilters, options domain.VideoListOptions) ([]string, error)
	ListLatestVideos(ctx context.Context, filters domain.VideoFilters, options domain.VideoListOptions) ([]domain.Video, error)
}

type VideoStorer interface {
	StoreVideo(ctx context.Context, video domain.Video) error
}

// NewVideoIDsFilter drops IDs that already have a stored video, preserving
// input order. This dedup is advisory; the primary key is the backstop under
// concurrent ingestion.
type NewVideoIDsFilter interface {
	FilterNewVideoIDs(ctx context.Context, videoIDs []string) ([]string, error)
}

// DatasetRepository combines the relational-store operations.
type DatasetRepository interface {
	VideoFetcher
	LatestVideoLister
	VideoStorer
	NewVideoIDsFilter
	UserFetcher
	UserPreferenceGetter
	InteractionApplier
	InteractionDeleter
	InteractionHistoryLister
	WatchLaterLister
}
