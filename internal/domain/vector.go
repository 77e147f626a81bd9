package domain

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch is returned when two vectors of different lengths are
// combined. It indicates a data-integrity problem (mixed embedding models)
// and is never retried.
var ErrDimensionMismatch = errors.New("vector dimension mismatch")

// Combine returns the elementwise weighted sum a*scalarA + b*scalarB.
func Combine(a []float32, scalarA float32, b []float32, scalarB float32) ([]float32, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: [%d] vs [%d]", ErrDimensionMismatch, len(a), len(b))
	}

	result := make([]float32, len(a))
	for i := range a {
		result[i] = a[i]*scalarA + b[i]*scalarB
	}
	return result, nil
}

// Scale returns the vector multiplied elementwise by scalar.
func Scale(vector []float32, scalar float32) []float32 {
	result := make([]float32, len(vector))
	for i, v := range vector {
		result[i] = v * scalar
	}
	return result
}
