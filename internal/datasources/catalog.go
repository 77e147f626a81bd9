package datasources

import (
	"context"
	"time"
)

// CatalogVideo is a raw record from the external video catalog. Duration is
// the catalog's ISO-8601 text form; normalisation happens at ingestion.
type CatalogVideo struct {
	VideoID      string
	Title        string
	Description  string
	ChannelName  string
	DurationText string
	ViewCount    int64
	Tags         []string
	ThumbnailURL string
	PublishedAt  time.Time
}

// CatalogSearcher returns candidate video IDs for a topic, ordered by the
// catalog's own relevance judgement. The order is not re-ranked here.
type CatalogSearcher interface {
	SearchVideoIDs(ctx context.Context, query string, maxResults int) ([]string, error)
}

// CatalogDetailFetcher fetches full metadata for a set of IDs in one call.
type CatalogDetailFetcher interface {
	FetchVideoDetails(ctx context.Context, videoIDs []string) ([]CatalogVideo, error)
}

// CatalogRepository combines the catalog operations.
type CatalogRepository interface {
	CatalogSearcher
	CatalogDetailFetcher
}
