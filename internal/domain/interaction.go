package domain

import (
	"fmt"
	"time"
)

// LikeStatus is the like/dislike state of a user-video interaction.
type LikeStatus string

const (
	LikeStatusNone    LikeStatus = "NONE"
	LikeStatusLike    LikeStatus = "LIKE"
	LikeStatusDislike LikeStatus = "DISLIKE"
)

// WatchStatus tracks how much of a video the user has watched.
type WatchStatus string

const (
	WatchStatusNotWatched WatchStatus = "NOT_WATCHED"
	WatchStatusPartial    WatchStatus = "PARTIAL"
	WatchStatusFull       WatchStatus = "FULL"
)

// InteractionAction is an inbound interaction event. Actions are not stored;
// they mutate the interaction record and carry a preference weight.
type InteractionAction string

const (
	ActionClick            InteractionAction = "CLICK"
	ActionToggleLike       InteractionAction = "TOGGLE_LIKE"
	ActionToggleDislike    InteractionAction = "TOGGLE_DISLIKE"
	ActionToggleWatchLater InteractionAction = "TOGGLE_WATCH_LATER"
	ActionMarkPartial      InteractionAction = "MARK_PARTIAL"
	ActionMarkFull         InteractionAction = "MARK_FULL"
)

// ParseInteractionAction validates an action received over the wire.
func ParseInteractionAction(s string) (InteractionAction, error) {
	switch action := InteractionAction(s); action {
	case ActionClick, ActionToggleLike, ActionToggleDislike,
		ActionToggleWatchLater, ActionMarkPartial, ActionMarkFull:
		return action, nil
	default:
		return "", fmt.Errorf("unrecognised interaction action: %s", s)
	}
}

// actionWeights maps each action to its preference weight. Kept as a single
// table so the values stay auditable independently of the state transitions.
var actionWeights = map[InteractionAction]float32{
	ActionClick:            0.2,
	ActionToggleLike:       1.0,
	ActionToggleDislike:    -0.5,
	ActionToggleWatchLater: 0.5,
	ActionMarkPartial:      0.5,
	ActionMarkFull:         0.8,
}

// Weight returns the preference weight for the action. The weight applies
// unconditionally, including when a toggle turns a flag off, so preference
// drift stays proportional to engagement frequency rather than final state.
func (a InteractionAction) Weight() float32 {
	return actionWeights[a]
}

// Interaction is the single persisted record for a (user, video) pair.
// It is created lazily on the first event and updated in place after that.
type Interaction struct {
	UserID       string      `json:"user_id"`
	VideoID      string      `json:"video_id"`
	LikeStatus   LikeStatus  `json:"like_status"`
	WatchStatus  WatchStatus `json:"watch_status"`
	WatchLater   bool        `json:"watch_later"`
	Clicked      bool        `json:"clicked"`
	LastModified time.Time   `json:"last_modified"`
}

// NewInteraction returns the initial record state for a pair's first event.
func NewInteraction(userID, videoID string) Interaction {
	return Interaction{
		UserID:      userID,
		VideoID:     videoID,
		LikeStatus:  LikeStatusNone,
		WatchStatus: WatchStatusNotWatched,
	}
}

// Apply mutates the record for the given action. The like/dislike toggles
// overwrite each other; marking a watch status implies a click.
func (i *Interaction) Apply(action InteractionAction) {
	switch action {
	case ActionClick:
		i.Clicked = true
	case ActionToggleLike:
		if i.LikeStatus == LikeStatusLike {
			i.LikeStatus = LikeStatusNone
		} else {
			i.LikeStatus = LikeStatusLike
		}
	case ActionToggleDislike:
		if i.LikeStatus == LikeStatusDislike {
			i.LikeStatus = LikeStatusNone
		} else {
			i.LikeStatus = LikeStatusDislike
		}
	case ActionToggleWatchLater:
		i.WatchLater = !i.WatchLater
	case ActionMarkPartial:
		i.WatchStatus = WatchStatusPartial
		i.Clicked = true
	case ActionMarkFull:
		i.WatchStatus = WatchStatusFull
		i.Clicked = true
	}
}
