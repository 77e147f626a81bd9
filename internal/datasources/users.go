package datasources

import (
	"context"

	"github.com/tuberec/tuberec/internal/domain"
)

type UserFetcher interface {
	// FetchUser returns domain.ErrNotFound when the user does not exist.
	FetchUser(ctx context.Context, userID string) (domain.User, error)
}

type UserPreferenceGetter interface {
	// GetUserPreferenceVector returns nil when the user has no stored
	// preference yet, and domain.ErrNotFound when the user does not exist.
	GetUserPreferenceVector(ctx context.Context, userID string) ([]float32, error)
}
