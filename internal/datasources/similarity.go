package datasources

import (
	"context"

	"github.com/tuberec/tuberec/internal/domain"
)

// SimilarityRepository combines the vector-store operations.
type SimilarityRepository interface {
	NearestVideosLister
	VideoVectorFetcher
	VideoEmbeddingUpserter
}

type NearestVideosLister interface {
	// ListNearestVideos returns up to limit stored embeddings closest to the
	// probe vector, ordered closest first.
	ListNearestVideos(ctx context.Context, vector []float32, limit int) ([]domain.VideoMatch, error)
}

type VideoVectorFetcher interface {
	// FetchVideoVector returns nil when the video has no stored embedding.
	FetchVideoVector(ctx context.Context, videoID string) ([]float32, error)
}

type VideoEmbeddingUpserter interface {
	UpsertVideoEmbedding(ctx context.Context, embedding domain.VideoEmbedding) error
}

// NullSimilarityRepository is a null implementation of SimilarityRepository.
type NullSimilarityRepository struct{}

var _ SimilarityRepository = NullSimilarityRepository{}

func (NullSimilarityRepository) ListNearestVideos(
	_ context.Context,
	_ []float32,
	_ int,
) ([]domain.VideoMatch, error) {
	return nil, nil
}

func (NullSimilarityRepository) FetchVideoVector(_ context.Context, _ string) ([]float32, error) {
	return nil, nil
}

func (NullSimilarityRepository) UpsertVideoEmbedding(_ context.Context, _ domain.VideoEmbedding) error {
	return nil
}
