package models

// PreferenceTargetKind discriminates what a preference entry points at.
type PreferenceTargetKind string

const (
	PreferenceTargetCategory PreferenceTargetKind = "CATEGORY"
	PreferenceTargetActivity PreferenceTargetKind = "ACTIVITY"
)

// PreferenceRank is one entry of the caller-ordered preference list. The Rank
// field feeds the score formula; the list's iteration order decides which
// entry wins when several match.
type PreferenceRank struct {
	Rank        int                  `json:"rank" validate:"min=1"`
	TargetKind  PreferenceTargetKind `json:"target_kind" validate:"required,oneof=CATEGORY ACTIVITY"`
	TargetID    string               `json:"target_id" validate:"required"`
	DisplayName string               `json:"display_name,omitempty"`
}

// FriendInterest marks a friend as interested in an activity.
type FriendInterest struct {
	FriendID   string `json:"friend_id" validate:"required"`
	ActivityID string `json:"activity_id" validate:"required"`
	Certainty  string `json:"certainty,omitempty"`
}
