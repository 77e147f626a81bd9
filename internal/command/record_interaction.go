package command

import (
	"context"
	"fmt"

	"github.com/tuberec/tuberec/internal/datasources"
	"github.com/tuberec/tuberec/internal/domain"
)

// RecordInteractionRequest is the request for the RecordInteraction command.
type RecordInteractionRequest struct {
	UserID  string
	VideoID string
	Action  domain.InteractionAction
}

// RecordInteraction handles a single interaction event: it resolves the
// video's embedding, then applies the action's record mutation and the
// preference-vector update as one atomic unit in the repository.
type RecordInteraction struct {
	VideoFetcher       datasources.VideoFetcher
	VideoVectorFetcher datasources.VideoVectorFetcher
	InteractionApplier datasources.InteractionApplier
}

// NewRecordInteraction creates a properly initialized RecordInteraction command.
func NewRecordInteraction(
	videoFetcher datasources.VideoFetcher,
	videoVectorFetcher datasources.VideoVectorFetcher,
	interactionApplier datasources.InteractionApplier,
) *RecordInteraction {
	return &RecordInteraction{
		VideoFetcher:       videoFetcher,
		VideoVectorFetcher: videoVectorFetcher,
		InteractionApplier: interactionApplier,
	}
}

func (c *RecordInteraction) Execute(
	ctx context.Context, req RecordInteractionRequest,
) (domain.Interaction, error) {
	logger := domain.LoggerFromContext(ctx)

	videos, err := c.VideoFetcher.FetchVideosByID(ctx, []string{req.VideoID})
	if err != nil {
		return domain.Interaction{}, fmt.Errorf("fetching video: %w", err)
	}
	if len(videos) == 0 {
		return domain.Interaction{}, fmt.Errorf("video [%s]: %w", req.VideoID, domain.ErrNotFound)
	}

	vector, err := c.VideoVectorFetcher.FetchVideoVector(ctx, req.VideoID)
	if err != nil {
		return domain.Interaction{}, fmt.Errorf("fetching video vector: %w", err)
	}
	if vector == nil {
		return domain.Interaction{}, fmt.Errorf("embedding for video [%s]: %w", req.VideoID, domain.ErrNotFound)
	}

	interaction, err := c.InteractionApplier.ApplyInteraction(
		ctx, req.UserID, req.VideoID, req.Action, vector,
	)
	if err != nil {
		return domain.Interaction{}, fmt.Errorf("applying interaction: %w", err)
	}

	logger.InfoContext(ctx, "recorded interaction",
		"user_id", req.UserID,
		"video_id", req.VideoID,
		"action", req.Action,
		"like_status", interaction.LikeStatus,
		"watch_status", interaction.WatchStatus,
		"watch_later", interaction.WatchLater,
		"clicked", interaction.Clicked,
	)

	return interaction, nil
}
