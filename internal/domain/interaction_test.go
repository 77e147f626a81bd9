package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInteractionAction(t *testing.T) {
	for _, valid := range []string{
		"CLICK", "TOGGLE_LIKE", "TOGGLE_DISLIKE",
		"TOGGLE_WATCH_LATER", "MARK_PARTIAL", "MARK_FULL",
	} {
		t.Run(valid, func(t *testing.T) {
			action, err := ParseInteractionAction(valid)
			require.NoError(t, err)
			assert.Equal(t, InteractionAction(valid), action)
		})
	}

	for _, invalid := range []string{"", "LIKE", "click", "WATCH"} {
		t.Run("invalid_"+invalid, func(t *testing.T) {
			_, err := ParseInteractionAction(invalid)
			require.Error(t, err)
		})
	}
}

func TestInteractionAction_Weight(t *testing.T) {
	cases := []struct {
		action InteractionAction
		weight float32
	}{
		{ActionClick, 0.2},
		{ActionToggleLike, 1.0},
		{ActionToggleDislike, -0.5},
		{ActionToggleWatchLater, 0.5},
		{ActionMarkPartial, 0.5},
		{ActionMarkFull, 0.8},
	}

	for _, tc := range cases {
		t.Run(string(tc.action), func(t *testing.T) {
			assert.Equal(t, tc.weight, tc.action.Weight())
		})
	}
}

func TestInteraction_Apply_LikeToggles(t *testing.T) {
	rec := NewInteraction("user1", "abc")
	require.Equal(t, LikeStatusNone, rec.LikeStatus)

	rec.Apply(ActionToggleLike)
	assert.Equal(t, LikeStatusLike, rec.LikeStatus)

	// Toggling again returns to NONE; the weight is unchanged either way.
	rec.Apply(ActionToggleLike)
	assert.Equal(t, LikeStatusNone, rec.LikeStatus)
	assert.Equal(t, float32(1.0), ActionToggleLike.Weight())
}

func TestInteraction_Apply_DislikeOverwritesLike(t *testing.T) {
	rec := NewInteraction("user1", "abc")

	rec.Apply(ActionToggleLike)
	rec.Apply(ActionToggleDislike)
	assert.Equal(t, LikeStatusDislike, rec.LikeStatus)

	rec.Apply(ActionToggleLike)
	assert.Equal(t, LikeStatusLike, rec.LikeStatus)
}

func TestInteraction_Apply_DislikeToggle(t *testing.T) {
	rec := NewInteraction("user1", "abc")

	rec.Apply(ActionToggleDislike)
	assert.Equal(t, LikeStatusDislike, rec.LikeStatus)

	rec.Apply(ActionToggleDislike)
	assert.Equal(t, LikeStatusNone, rec.LikeStatus)
}

func TestInteraction_Apply_WatchLaterToggle(t *testing.T) {
	rec := NewInteraction("user1", "abc")

	rec.Apply(ActionToggleWatchLater)
	assert.True(t, rec.WatchLater)

	rec.Apply(ActionToggleWatchLater)
	assert.False(t, rec.WatchLater)
}

func TestInteraction_Apply_WatchStatusImpliesClick(t *testing.T) {
	rec := NewInteraction("user1", "abc")

	rec.Apply(ActionMarkPartial)
	assert.Equal(t, WatchStatusPartial, rec.WatchStatus)
	assert.True(t, rec.Clicked)

	rec.Apply(ActionMarkFull)
	assert.Equal(t, WatchStatusFull, rec.WatchStatus)
	assert.True(t, rec.Clicked)
}

func TestInteraction_Apply_ClickPreservesOtherState(t *testing.T) {
	rec := NewInteraction("user1", "abc")
	rec.Apply(ActionToggleLike)
	rec.Apply(ActionToggleWatchLater)

	rec.Apply(ActionClick)
	assert.True(t, rec.Clicked)
	assert.Equal(t, LikeStatusLike, rec.LikeStatus)
	assert.True(t, rec.WatchLater)
}
