package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nwhitfield/weekplan-api/internal/models"
	appErrors "github.com/nwhitfield/weekplan-api/pkg/errors"
)

// ScheduleSetRepository stores the candidate schedule sets and the active-set
// pointer. Every mutation rebuilds the collection under the lock, so callers
// only ever see whole states. Creation order is the slice order and never
// changes; it drives both set naming and the active fallback on delete.
type ScheduleSetRepository struct {
	mu       sync.RWMutex
	sets     []models.ScheduleSet
	activeID string
	created  int
	version  uint64
}

// NewScheduleSetRepository constructs an empty set store.
func NewScheduleSetRepository() *ScheduleSetRepository {
	return &ScheduleSetRepository{}
}

// Create appends a new empty set named after its creation ordinal ("Set A",
// "Set B", …) and makes it active.
func (r *ScheduleSetRepository) Create() models.ScheduleSet {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	set := models.ScheduleSet{
		ID:          uuid.NewString(),
		Name:        "Set " + ordinalLetters(r.created),
		ActivityIDs: []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.created++

	next := make([]models.ScheduleSet, len(r.sets), len(r.sets)+1)
	copy(next, r.sets)
	r.sets = append(next, set)
	r.activeID = set.ID
	r.version++
	return set
}

// Delete removes a set. When the active set goes away the earliest remaining
// set becomes active, or the pointer clears if none remain.
func (r *ScheduleSetRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "schedule set not found")
	}

	next := make([]models.ScheduleSet, 0, len(r.sets)-1)
	next = append(next, r.sets[:idx]...)
	next = append(next, r.sets[idx+1:]...)
	r.sets = next

	if r.activeID == id {
		if len(r.sets) > 0 {
			r.activeID = r.sets[0].ID
		} else {
			r.activeID = ""
		}
	}
	r.version++
	return nil
}

// Rename updates a set's display name.
func (r *ScheduleSetRepository) Rename(id, name string) (models.ScheduleSet, error) {
	return r.update(id, func(set *models.ScheduleSet) {
		set.Name = name
	})
}

// AddActivity appends an activity id to a set. Adding an existing member is a
// no-op, so the call is idempotent.
func (r *ScheduleSetRepository) AddActivity(id, activityID string) (models.ScheduleSet, error) {
	return r.update(id, func(set *models.ScheduleSet) {
		if set.HasActivity(activityID) {
			return
		}
		ids := make([]string, len(set.ActivityIDs), len(set.ActivityIDs)+1)
		copy(ids, set.ActivityIDs)
		set.ActivityIDs = append(ids, activityID)
	})
}

// RemoveActivity drops an activity id from a set.
func (r *ScheduleSetRepository) RemoveActivity(id, activityID string) (models.ScheduleSet, error) {
	return r.update(id, func(set *models.ScheduleSet) {
		ids := make([]string, 0, len(set.ActivityIDs))
		for _, member := range set.ActivityIDs {
			if member != activityID {
				ids = append(ids, member)
			}
		}
		set.ActivityIDs = ids
	})
}

// SwitchActive moves the active pointer to the given set.
func (r *ScheduleSetRepository) SwitchActive(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(id) < 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "schedule set not found")
	}
	r.activeID = id
	r.version++
	return nil
}

// List returns a copy of all sets in creation order.
func (r *ScheduleSetRepository) List() []models.ScheduleSet {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.ScheduleSet, len(r.sets))
	for i, set := range r.sets {
		out[i] = copySet(set)
	}
	return out
}

// FindByID returns a copy of one set.
func (r *ScheduleSetRepository) FindByID(id string) (models.ScheduleSet, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx := r.indexOf(id)
	if idx < 0 {
		return models.ScheduleSet{}, false
	}
	return copySet(r.sets[idx]), true
}

// ActiveID returns the active set id, or "" when no set is active.
func (r *ScheduleSetRepository) ActiveID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.activeID
}

// Active returns a copy of the active set when one exists.
func (r *ScheduleSetRepository) Active() (models.ScheduleSet, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx := r.indexOf(r.activeID)
	if idx < 0 {
		return models.ScheduleSet{}, false
	}
	return copySet(r.sets[idx]), true
}

// Version increases on every mutation; used to key memoized results.
func (r *ScheduleSetRepository) Version() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}

func (r *ScheduleSetRepository) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, set := range r.sets {
		if set.ID == id {
			return i
		}
	}
	return -1
}

func (r *ScheduleSetRepository) update(id string, mutate func(*models.ScheduleSet)) (models.ScheduleSet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return models.ScheduleSet{}, appErrors.Clone(appErrors.ErrNotFound, "schedule set not found")
	}

	next := make([]models.ScheduleSet, len(r.sets))
	copy(next, r.sets)
	set := copySet(next[idx])
	mutate(&set)
	set.UpdatedAt = time.Now().UTC()
	next[idx] = set
	r.sets = next
	r.version++
	return copySet(set), nil
}

func copySet(set models.ScheduleSet) models.ScheduleSet {
	ids := make([]string, len(set.ActivityIDs))
	copy(ids, set.ActivityIDs)
	set.ActivityIDs = ids
	return set
}

// ordinalLetters converts a zero-based ordinal to spreadsheet-style letters:
// A..Z, then AA, AB, …
func ordinalLetters(n int) string {
	letters := ""
	n++
	for n > 0 {
		n--
		letters = string(rune('A'+n%26)) + letters
		n /= 26
	}
	return letters
}
