package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombine(t *testing.T) {
	cases := []struct {
		name     string
		a        []float32
		scalarA  float32
		b        []float32
		scalarB  float32
		expected []float32
	}{
		{
			name:     "identity_on_a",
			a:        []float32{0.1, 0.2, 0.3},
			scalarA:  1,
			b:        []float32{5, 6, 7},
			scalarB:  0,
			expected: []float32{0.1, 0.2, 0.3},
		},
		{
			name:     "identity_on_b",
			a:        []float32{0.1, 0.2, 0.3},
			scalarA:  0,
			b:        []float32{5, 6, 7},
			scalarB:  1,
			expected: []float32{5, 6, 7},
		},
		{
			name:     "weighted_sum",
			a:        []float32{1, 2},
			scalarA:  0.5,
			b:        []float32{4, 8},
			scalarB:  0.25,
			expected: []float32{1.5, 3},
		},
		{
			name:     "negative_scalar",
			a:        []float32{2, 4},
			scalarA:  1,
			b:        []float32{1, 1},
			scalarB:  -0.5,
			expected: []float32{1.5, 3.5},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Combine(tc.a, tc.scalarA, tc.b, tc.scalarB)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestCombine_DimensionMismatch(t *testing.T) {
	cases := []struct {
		name string
		a    []float32
		b    []float32
	}{
		{
			name: "a_longer",
			a:    []float32{1, 2, 3},
			b:    []float32{1, 2},
		},
		{
			name: "b_longer",
			a:    []float32{1},
			b:    []float32{1, 2},
		},
		{
			name: "empty_vs_nonempty",
			a:    []float32{},
			b:    []float32{1},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Combine(tc.a, 1, tc.b, 1)
			require.ErrorIs(t, err, ErrDimensionMismatch)
		})
	}
}

func TestScale(t *testing.T) {
	assert.Equal(t, []float32{0.5, -1, 0}, Scale([]float32{1, -2, 0}, 0.5))
	assert.Equal(t, []float32{0, 0}, Scale([]float32{3, 4}, 0))
	assert.Equal(t, []float32{}, Scale([]float32{}, 2))
}

func TestScale_DoesNotMutateInput(t *testing.T) {
	input := []float32{1, 2, 3}
	_ = Scale(input, 10)
	assert.Equal(t, []float32{1, 2, 3}, input)
}
