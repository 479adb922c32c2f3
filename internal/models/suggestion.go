package models

// ScoreBreakdown itemises the components of an activity's desirability score.
type ScoreBreakdown struct {
	PreferenceScore int `json:"preference_score"`
	FriendBonus     int `json:"friend_bonus"`
	TravelPenalty   int `json:"travel_penalty"`
	FlatRatePenalty int `json:"flat_rate_penalty"`
}

// ActivityScore is one ranked entry: a non-pinned activity scored against the
// currently active schedule set.
type ActivityScore struct {
	Activity            Activity       `json:"activity"`
	Score               int            `json:"score"`
	Breakdown           ScoreBreakdown `json:"breakdown"`
	ConflictsWithPinned bool           `json:"conflicts_with_pinned"`
	ConflictReasons     []string       `json:"conflict_reasons,omitempty"`
}

// SuggestedSet is a small, internally conflict-free bundle of activities.
type SuggestedSet struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	ActivityIDs  []string `json:"activity_ids"`
	TotalScore   int      `json:"total_score"`
	HasConflicts bool     `json:"has_conflicts"`
}

// ConflictCheck is the pairwise conflict verdict exposed to callers.
type ConflictCheck struct {
	ActivityA string `json:"activity_a"`
	ActivityB string `json:"activity_b"`
	Conflict  bool   `json:"conflict"`
	Reason    string `json:"reason,omitempty"`
}
