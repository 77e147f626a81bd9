package app

import (
	"github.com/tuberec/tuberec/internal/command"
)

// DefaultRecommendVideosConfig returns the default retrieval constants for
// serving recommendations.
func DefaultRecommendVideosConfig() command.RecommendVideosConfig {
	return command.RecommendVideosConfig{
		QueryWeight:      0.7,
		PreferenceWeight: 0.3,
		TopK:             4,
	}
}
