package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdatePreference_Bootstrap(t *testing.T) {
	videoVector := []float32{0.2, -0.4, 0.6}

	cases := []struct {
		name     string
		weight   float32
		expected []float32
	}{
		{
			name:     "positive_first_signal_copies_vector",
			weight:   1.0,
			expected: []float32{0.2, -0.4, 0.6},
		},
		{
			name:     "weak_positive_first_signal_still_full_strength",
			weight:   0.2,
			expected: []float32{0.2, -0.4, 0.6},
		},
		{
			name:     "negative_first_signal_is_damped",
			weight:   -0.5,
			expected: []float32{0.1, -0.2, 0.3},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := UpdatePreference(nil, videoVector, tc.weight)
			require.NoError(t, err)
			assert.InDeltaSlice(t, tc.expected, result, 1e-6)
		})
	}
}

func TestUpdatePreference_EMABlend(t *testing.T) {
	current := []float32{1, 0, -1}
	videoVector := []float32{0, 2, 4}

	cases := []struct {
		name   string
		weight float32
	}{
		{name: "like_weight", weight: 1.0},
		{name: "full_watch_weight", weight: 0.8},
		{name: "dislike_weight", weight: -0.5},
		{name: "click_weight", weight: 0.2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := UpdatePreference(current, videoVector, tc.weight)
			require.NoError(t, err)

			expected, err := Combine(current, 0.85, Scale(videoVector, tc.weight), 0.15)
			require.NoError(t, err)
			assert.InDeltaSlice(t, expected, result, 1e-6)
		})
	}
}

func TestUpdatePreference_SingleInteractionNudges(t *testing.T) {
	current := []float32{1, 1}
	result, err := UpdatePreference(current, []float32{0, 0}, 1.0)
	require.NoError(t, err)

	// 85% of the value survives a fully orthogonal signal.
	assert.InDeltaSlice(t, []float32{0.85, 0.85}, result, 1e-6)
}

func TestUpdatePreference_DimensionMismatch(t *testing.T) {
	_, err := UpdatePreference([]float32{1, 2}, []float32{1, 2, 3}, 1.0)
	require.ErrorIs(t, err, ErrDimensionMismatch)
}
