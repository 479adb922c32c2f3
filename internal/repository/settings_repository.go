package repository

import (
	"sync"

	"github.com/nwhitfield/weekplan-api/internal/models"
)

// SettingsRepository holds the preference list and friend interests produced
// by the settings collaborator. The preference list keeps its caller order,
// which is authoritative for tie-breaking.
type SettingsRepository struct {
	mu          sync.RWMutex
	preferences []models.PreferenceRank
	interests   []models.FriendInterest
	version     uint64
}

// NewSettingsRepository constructs an empty settings store.
func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{}
}

// ReplacePreferences swaps in a new ordered preference list.
func (r *SettingsRepository) ReplacePreferences(prefs []models.PreferenceRank) {
	next := make([]models.PreferenceRank, len(prefs))
	copy(next, prefs)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.preferences = next
	r.version++
}

// ReplaceFriendInterests swaps in a new friend-interest collection.
func (r *SettingsRepository) ReplaceFriendInterests(interests []models.FriendInterest) {
	next := make([]models.FriendInterest, len(interests))
	copy(next, interests)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.interests = next
	r.version++
}

// Preferences returns a copy of the ordered preference list.
func (r *SettingsRepository) Preferences() []models.PreferenceRank {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.PreferenceRank, len(r.preferences))
	copy(out, r.preferences)
	return out
}

// FriendInterests returns a copy of the friend-interest collection.
func (r *SettingsRepository) FriendInterests() []models.FriendInterest {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.FriendInterest, len(r.interests))
	copy(out, r.interests)
	return out
}

// Version increases on every replacement; used to key memoized results.
func (r *SettingsRepository) Version() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}
