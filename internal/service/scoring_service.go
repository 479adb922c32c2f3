package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/nwhitfield/weekplan-api/internal/models"
)

const (
	preferenceBaseScore  = 100
	preferenceDecay      = 0.7
	friendBonusPerMatch  = 15
	travelPenaltyPerSlot = 10
	flatRatePenaltyPer   = 25
)

type scoringCatalog interface {
	Activities() []models.Activity
	ActivityByID(id string) (models.Activity, bool)
	Locations() []models.Location
	Version() uint64
}

type scoringSettings interface {
	Preferences() []models.PreferenceRank
	FriendInterests() []models.FriendInterest
	Version() uint64
}

type scoringSets interface {
	Active() (models.ScheduleSet, bool)
	Version() uint64
}

// ScoringService computes desirability scores for candidate activities
// against the currently pinned set.
type ScoringService struct {
	catalog   scoringCatalog
	settings  scoringSettings
	sets      scoringSets
	conflicts *ConflictService
	cache     *CacheService
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewScoringService wires the scoring dependencies.
func NewScoringService(
	catalog scoringCatalog,
	settings scoringSettings,
	sets scoringSets,
	conflicts *ConflictService,
	cache *CacheService,
	metrics *MetricsService,
	logger *zap.Logger,
) *ScoringService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScoringService{
		catalog:   catalog,
		settings:  settings,
		sets:      sets,
		conflicts: conflicts,
		cache:     cache,
		metrics:   metrics,
		logger:    logger,
	}
}

// ScoreActivity scores one candidate against a pinned set. Pure function of
// its arguments; RankActivities supplies the current snapshots.
//
// The travel and flat-rate penalties accrue once per candidate slot that
// lands on a day already committed to other locations, so a multi-slot
// candidate compounds them. That per-slot accounting is deliberate and kept
// as the planner has always behaved.
func (s *ScoringService) ScoreActivity(
	candidate models.Activity,
	pinned []models.Activity,
	preferences []models.PreferenceRank,
	interests []models.FriendInterest,
	locations map[string]models.Location,
) models.ActivityScore {
	breakdown := models.ScoreBreakdown{
		PreferenceScore: preferenceScore(candidate, preferences),
		FriendBonus:     friendBonus(candidate, interests),
	}

	visited := pinnedLocationsByDay(pinned)
	for _, slot := range candidate.TimeSlots {
		dayLocs, busy := visited[slot.Day]
		if !busy || len(dayLocs) == 0 {
			continue
		}
		if _, sameVenue := dayLocs[candidate.LocationID]; sameVenue {
			continue
		}
		breakdown.TravelPenalty += travelPenaltyPerSlot
		if loc, ok := locations[candidate.LocationID]; ok && loc.HasFlatDailyRate {
			breakdown.FlatRatePenalty += flatRatePenaltyPer
		}
	}

	result := models.ActivityScore{
		Activity:  candidate,
		Breakdown: breakdown,
		Score: breakdown.PreferenceScore + breakdown.FriendBonus -
			breakdown.TravelPenalty - breakdown.FlatRatePenalty,
	}

	for _, other := range pinned {
		if !s.conflicts.ActivitiesConflict(candidate, other) {
			continue
		}
		result.ConflictsWithPinned = true
		result.ConflictReasons = append(result.ConflictReasons,
			fmt.Sprintf("%s (%s)", other.Name, s.conflicts.ConflictReason(candidate, other)))
	}

	return result
}

// RankActivities scores every non-pinned activity against the active set and
// returns them ordered by score descending. Ties keep catalog order.
func (s *ScoringService) RankActivities(ctx context.Context) ([]models.ActivityScore, error) {
	key := fmt.Sprintf("planner:scores:c%d:s%d:x%d",
		s.catalog.Version(), s.settings.Version(), s.sets.Version())

	var cached []models.ActivityScore
	if hit, _ := s.cache.Get(ctx, key, &cached); hit {
		return cached, nil
	}

	start := time.Now()

	pinned, pinnedIDs := resolvePinned(s.catalog, s.sets)
	preferences := s.settings.Preferences()
	interests := s.settings.FriendInterests()
	locations := locationIndex(s.catalog.Locations())

	ranked := make([]models.ActivityScore, 0)
	for _, candidate := range s.catalog.Activities() {
		if _, isPinned := pinnedIDs[candidate.ID]; isPinned {
			continue
		}
		ranked = append(ranked, s.ScoreActivity(candidate, pinned, preferences, interests, locations))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	s.metrics.RecordScoring(time.Since(start), len(ranked))
	s.cache.Set(ctx, key, ranked)
	return ranked, nil
}

// CheckConflict exposes the pairwise verdict for two catalog activities.
func (s *ScoringService) CheckConflict(idA, idB string) (models.ConflictCheck, bool) {
	a, okA := s.catalog.ActivityByID(idA)
	b, okB := s.catalog.ActivityByID(idB)
	if !okA || !okB {
		return models.ConflictCheck{}, false
	}
	check := models.ConflictCheck{ActivityA: a.ID, ActivityB: b.ID}
	if s.conflicts.ActivitiesConflict(a, b) {
		check.Conflict = true
		check.Reason = s.conflicts.ConflictReason(a, b)
	}
	return check, true
}

// resolvePinned loads the active set's members from the catalog. Member ids
// missing from the catalog still count as pinned ids but contribute no
// activity.
func resolvePinned(catalog scoringCatalog, sets scoringSets) ([]models.Activity, map[string]struct{}) {
	active, ok := sets.Active()
	if !ok {
		return nil, map[string]struct{}{}
	}
	ids := make(map[string]struct{}, len(active.ActivityIDs))
	pinned := make([]models.Activity, 0, len(active.ActivityIDs))
	for _, id := range active.ActivityIDs {
		ids[id] = struct{}{}
		if activity, found := catalog.ActivityByID(id); found {
			pinned = append(pinned, activity)
		}
	}
	return pinned, ids
}

func preferenceScore(candidate models.Activity, preferences []models.PreferenceRank) int {
	for _, pref := range preferences {
		if !preferenceMatches(candidate, pref) {
			continue
		}
		return int(math.Round(preferenceBaseScore * math.Pow(preferenceDecay, float64(pref.Rank-1))))
	}
	return 0
}

func preferenceMatches(candidate models.Activity, pref models.PreferenceRank) bool {
	switch pref.TargetKind {
	case models.PreferenceTargetCategory:
		for _, tag := range candidate.CategoryTags {
			if tag == pref.TargetID {
				return true
			}
		}
	case models.PreferenceTargetActivity:
		return candidate.ID == pref.TargetID
	}
	return false
}

func friendBonus(candidate models.Activity, interests []models.FriendInterest) int {
	matches := 0
	for _, interest := range interests {
		if interest.ActivityID == candidate.ID {
			matches++
		}
	}
	return matches * friendBonusPerMatch
}

// pinnedLocationsByDay maps each day touched by the pinned set to the venues
// already visited that day.
func pinnedLocationsByDay(pinned []models.Activity) map[models.Weekday]map[string]struct{} {
	visited := make(map[models.Weekday]map[string]struct{})
	for _, activity := range pinned {
		for _, slot := range activity.TimeSlots {
			locs, ok := visited[slot.Day]
			if !ok {
				locs = make(map[string]struct{})
				visited[slot.Day] = locs
			}
			locs[activity.LocationID] = struct{}{}
		}
	}
	return visited
}

func locationIndex(locations []models.Location) map[string]models.Location {
	index := make(map[string]models.Location, len(locations))
	for _, loc := range locations {
		index[loc.ID] = loc
	}
	return index
}
