package pinecone

import (
	"context"
	"fmt"

	"github.com/pinecone-io/go-pinecone/pinecone"
	"github.com/tuberec/tuberec/internal/datasources"
	"github.com/tuberec/tuberec/internal/domain"
	"google.golang.org/protobuf/types/known/structpb"
)

var _ datasources.SimilarityRepository = (*Client)(nil)

const namespace = "videos"

const summaryMetadataKey = "summary"

// Client stores one vector per video in a Pinecone index, keyed by video ID,
// with the content summary carried as metadata. It serves KNN retrieval,
// point vector fetches, and ingestion-time upserts.
type Client struct {
	pinecone *pinecone.Client
	index    *pinecone.Index
}

func NewClient(
	ctx context.Context,
	apiKey string,
	indexName string,
) (*Client, error) {
	pc, err := pinecone.NewClient(pinecone.NewClientParams{
		ApiKey:     apiKey,
		Headers:    nil,
		Host:       "",
		RestClient: nil,
		SourceTag:  "",
	})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone client: %w", err)
	}

	idx, err := pc.DescribeIndex(ctx, indexName)
	if err != nil {
		return nil, fmt.Errorf("retrieving pinecone index metadata [%s]: %w", indexName, err)
	}

	return &Client{
		pinecone: pc,
		index:    idx,
	}, nil
}

func (c *Client) connect() (*pinecone.IndexConnection, error) {
	idxConn, err := c.pinecone.Index(pinecone.NewIndexConnParams{
		Host:      c.index.Host,
		Namespace: namespace,
	})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone index connection: %w", err)
	}
	return idxConn, nil
}

// ListNearestVideos queries the index for the vectors closest to the probe,
// returned closest first.
func (c *Client) ListNearestVideos(
	ctx context.Context,
	vector []float32,
	limit int,
) ([]domain.VideoMatch, error) {
	if limit > 10000 {
		return nil, fmt.Errorf("limit value too high [%d]", limit)
	}

	idxConn, err := c.connect()
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := idxConn.Close(); closeErr != nil {
			_ = closeErr
		}
	}()

	resp, err := idxConn.QueryByVectorValues(ctx, &pinecone.QueryByVectorValuesRequest{
		Vector:          vector,
		TopK:            uint32(limit), //nolint:gosec // bounds checked above
		MetadataFilter:  nil,
		IncludeValues:   false,
		IncludeMetadata: true,
		SparseValues:    nil,
	})
	if err != nil {
		return nil, fmt.Errorf("querying for nearest vectors: %w", err)
	}

	matches := make([]domain.VideoMatch, 0, len(resp.Matches))
	for _, scoredVector := range resp.Matches {
		matches = append(matches, domain.VideoMatch{
			VideoID: scoredVector.Vector.Id,
			Score:   float64(scoredVector.Score),
			Summary: summaryFromMetadata(scoredVector.Vector.Metadata),
		})
	}

	return matches, nil
}

// FetchVideoVector returns the stored vector for a video, or nil when the
// video has no embedding.
func (c *Client) FetchVideoVector(ctx context.Context, videoID string) ([]float32, error) {
	idxConn, err := c.connect()
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := idxConn.Close(); closeErr != nil {
			_ = closeErr
		}
	}()

	resp, err := idxConn.FetchVectors(ctx, []string{videoID})
	if err != nil {
		return nil, fmt.Errorf("fetching vector for video [%s]: %w", videoID, err)
	}

	vector, ok := resp.Vectors[videoID]
	if !ok || vector == nil {
		return nil, nil
	}

	return vector.Values, nil
}

// UpsertVideoEmbedding writes the video's vector and summary metadata.
// Callers persist the video row first so an embedding never exists without
// its video.
func (c *Client) UpsertVideoEmbedding(ctx context.Context, embedding domain.VideoEmbedding) error {
	idxConn, err := c.connect()
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := idxConn.Close(); closeErr != nil {
			_ = closeErr
		}
	}()

	metadata, err := structpb.NewStruct(map[string]any{
		"video_id":         embedding.VideoID,
		summaryMetadataKey: embedding.Summary,
	})
	if err != nil {
		return fmt.Errorf("creating embedding metadata: %w", err)
	}

	_, err = idxConn.UpsertVectors(ctx, []*pinecone.Vector{
		{
			Id:       embedding.VideoID,
			Values:   embedding.Vector,
			Metadata: metadata,
		},
	})
	if err != nil {
		return fmt.Errorf("upserting vector for video [%s]: %w", embedding.VideoID, err)
	}

	return nil
}

func summaryFromMetadata(metadata *structpb.Struct) string {
	if metadata == nil {
		return ""
	}

	value, ok := metadata.Fields[summaryMetadataKey]
	if !ok {
		return ""
	}

	return value.GetStringValue()
}
