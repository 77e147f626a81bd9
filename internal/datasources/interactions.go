package datasources

import (
	"context"

	"github.com/tuberec/tuberec/internal/domain"
)

// InteractionApplier records a single interaction event atomically: the
// record mutation, its persistence, and the recomputed preference vector
// either all become visible or none do.
type InteractionApplier interface {
	ApplyInteraction(
		ctx context.Context,
		userID, videoID string,
		action domain.InteractionAction,
		videoVector []float32,
	) (domain.Interaction, error)
}

type InteractionDeleter interface {
	DeleteInteraction(ctx context.Context, userID, videoID string) error
}

type InteractionHistoryLister interface {
	// ListInteractionHistory returns records ordered by last_modified
	// descending, up to limit.
	ListInteractionHistory(ctx context.Context, userID string, limit int) ([]domain.Interaction, error)
}

type WatchLaterLister interface {
	ListWatchLater(ctx context.Context, userID string) ([]domain.Interaction, error)
}
