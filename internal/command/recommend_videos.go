package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/tuberec/tuberec/internal/datasources"
	"github.com/tuberec/tuberec/internal/domain"
)

// noVideosNarrative is returned with an empty list when retrieval matches
// nothing. An empty result is a success, not an error.
const noVideosNarrative = "No videos found."

// RecommendVideosRequest is the request for the RecommendVideos command.
type RecommendVideosRequest struct {
	UserID string
	Query  string
}

// RecommendVideosConfig holds the retrieval constants.
type RecommendVideosConfig struct {
	// QueryWeight and PreferenceWeight split the hybrid search vector
	// between the explicit query and the stored preference.
	QueryWeight      float32
	PreferenceWeight float32

	// TopK is how many nearest embeddings to retrieve.
	TopK int
}

// RecommendVideos answers a free-text query with a personalised ranked video
// list plus a generated narrative. The search probe is a weighted blend of
// the query embedding and the user's preference vector when one exists.
type RecommendVideos struct {
	Embedder    datasources.Embedder
	Preferences datasources.UserPreferenceGetter
	Similarity  datasources.NearestVideosLister
	Videos      datasources.VideoFetcher
	Generator   datasources.TextGenerator
	Config      RecommendVideosConfig
}

// NewRecommendVideos creates a properly initialized RecommendVideos command.
func NewRecommendVideos(
	embedder datasources.Embedder,
	preferences datasources.UserPreferenceGetter,
	similarity datasources.NearestVideosLister,
	videos datasources.VideoFetcher,
	generator datasources.TextGenerator,
	config RecommendVideosConfig,
) *RecommendVideos {
	return &RecommendVideos{
		Embedder:    embedder,
		Preferences: preferences,
		Similarity:  similarity,
		Videos:      videos,
		Generator:   generator,
		Config:      config,
	}
}

func (c *RecommendVideos) Execute(
	ctx context.Context, req RecommendVideosRequest,
) (domain.Recommendation, error) {
	queryVector, err := c.Embedder.EmbedText(ctx, req.Query)
	if err != nil {
		return domain.Recommendation{}, fmt.Errorf("embedding query: %w", err)
	}

	searchVector, err := c.buildSearchVector(ctx, req.UserID, queryVector)
	if err != nil {
		return domain.Recommendation{}, err
	}

	matches, err := c.Similarity.ListNearestVideos(ctx, searchVector, c.Config.TopK)
	if err != nil {
		return domain.Recommendation{}, fmt.Errorf("finding nearest videos: %w", err)
	}

	if len(matches) == 0 {
		return domain.Recommendation{
			Narrative: noVideosNarrative,
			Videos:    []domain.Video{},
		}, nil
	}

	ids := make([]string, 0, len(matches))
	for _, match := range matches {
		ids = append(ids, match.VideoID)
	}

	// Preserves the similarity ranking: FetchVideosByID returns rows in
	// input-ID order.
	videos, err := c.Videos.FetchVideosByID(ctx, ids)
	if err != nil {
		return domain.Recommendation{}, fmt.Errorf("fetching matched videos: %w", err)
	}

	narrative, err := c.Generator.GenerateText(ctx, narrativePrompt(req.Query, matches, videos))
	if err != nil {
		return domain.Recommendation{}, fmt.Errorf("generating narrative: %w", err)
	}

	return domain.Recommendation{
		Narrative: narrative,
		Videos:    videos,
	}, nil
}

// buildSearchVector blends the query embedding with the stored preference
// vector. Users without a preference search with the raw query embedding.
func (c *RecommendVideos) buildSearchVector(
	ctx context.Context, userID string, queryVector []float32,
) ([]float32, error) {
	preference, err := c.Preferences.GetUserPreferenceVector(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("getting user preference vector: %w", err)
	}

	if preference == nil {
		return queryVector, nil
	}

	searchVector, err := domain.Combine(
		queryVector, c.Config.QueryWeight,
		preference, c.Config.PreferenceWeight,
	)
	if err != nil {
		return nil, fmt.Errorf("combining query and preference vectors: %w", err)
	}
	return searchVector, nil
}

func narrativePrompt(query string, matches []domain.VideoMatch, videos []domain.Video) string {
	titles := make(map[string]string, len(videos))
	for _, video := range videos {
		titles[video.VideoID] = video.Title
	}

	contexts := make([]string, 0, len(matches))
	for _, match := range matches {
		contexts = append(contexts,
			fmt.Sprintf("- Title: %s\n  Summary: %s", titles[match.VideoID], match.Summary))
	}

	return fmt.Sprintf(`Expert curator here. User wants: %q
Selected videos:
%s

Write a short, engaging paragraph explaining WHY these fit.
Use **Bold** for titles. Do NOT list them again.
`, query, strings.Join(contexts, "\n\n"))
}
