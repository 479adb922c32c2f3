package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"

	"github.com/nwhitfield/weekplan-api/internal/models"
)

const (
	categorySetScorePer = 50
	friendSetScorePer   = 65
	minSuggestedMembers = 2
	defaultSuggestLimit = 3
)

// SuggestionService groups remaining candidates into small, internally
// conflict-free, high-value bundles.
type SuggestionService struct {
	catalog   scoringCatalog
	settings  scoringSettings
	sets      scoringSets
	conflicts *ConflictService
	cache     *CacheService
	metrics   *MetricsService
	limit     int
	logger    *zap.Logger
}

// NewSuggestionService wires the recommender dependencies. A non-positive
// limit falls back to 3 suggested sets.
func NewSuggestionService(
	catalog scoringCatalog,
	settings scoringSettings,
	sets scoringSets,
	conflicts *ConflictService,
	cache *CacheService,
	metrics *MetricsService,
	limit int,
	logger *zap.Logger,
) *SuggestionService {
	if limit <= 0 {
		limit = defaultSuggestLimit
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SuggestionService{
		catalog:   catalog,
		settings:  settings,
		sets:      sets,
		conflicts: conflicts,
		cache:     cache,
		metrics:   metrics,
		limit:     limit,
		logger:    logger,
	}
}

// GenerateSuggestedSets proposes up to the configured number of bundles for
// the current catalog, settings and active set, best first.
func (s *SuggestionService) GenerateSuggestedSets(ctx context.Context) ([]models.SuggestedSet, error) {
	key := fmt.Sprintf("planner:suggestions:c%d:s%d:x%d",
		s.catalog.Version(), s.settings.Version(), s.sets.Version())

	var cached []models.SuggestedSet
	if hit, _ := s.cache.Get(ctx, key, &cached); hit {
		return cached, nil
	}

	start := time.Now()

	pinned, pinnedIDs := resolvePinned(s.catalog, s.sets)
	available := make([]models.Activity, 0)
	for _, activity := range s.catalog.Activities() {
		if _, isPinned := pinnedIDs[activity.ID]; !isPinned {
			available = append(available, activity)
		}
	}

	suggestions := s.BuildSuggestions(available, pinned, s.settings.FriendInterests())

	s.metrics.RecordSuggestions(time.Since(start))
	s.cache.Set(ctx, key, suggestions)
	return suggestions, nil
}

// BuildSuggestions is the pure recommendation core: category-focus bundles
// plus a friend-interest bundle, filtered greedily so no bundle contains a
// conflicting pair or collides with the pinned set, sorted by total score.
func (s *SuggestionService) BuildSuggestions(available, pinned []models.Activity, interests []models.FriendInterest) []models.SuggestedSet {
	suggestions := make([]models.SuggestedSet, 0)

	for _, category := range categoriesInOrder(available) {
		group := make([]models.Activity, 0)
		for _, activity := range available {
			if activity.PrimaryCategory() == category {
				group = append(group, activity)
			}
		}
		if len(group) < minSuggestedMembers {
			continue
		}
		subset := s.greedyConflictFree(group, pinned)
		if len(subset) < minSuggestedMembers {
			continue
		}
		suggestions = append(suggestions, models.SuggestedSet{
			Name:        fmt.Sprintf("%s Focus", titleCase(category)),
			Description: fmt.Sprintf("%d %s activities without conflicts", len(subset), category),
			ActivityIDs: activityIDs(subset),
			TotalScore:  len(subset) * categorySetScorePer,
		})
	}

	wanted := make(map[string]struct{}, len(interests))
	for _, interest := range interests {
		wanted[interest.ActivityID] = struct{}{}
	}
	friendPool := make([]models.Activity, 0)
	for _, activity := range available {
		if _, ok := wanted[activity.ID]; ok {
			friendPool = append(friendPool, activity)
		}
	}
	if friendSubset := s.greedyConflictFree(friendPool, pinned); len(friendSubset) >= minSuggestedMembers {
		suggestions = append(suggestions, models.SuggestedSet{
			Name:        "With Friends",
			Description: fmt.Sprintf("%d activities your friends are taking", len(friendSubset)),
			ActivityIDs: activityIDs(friendSubset),
			TotalScore:  len(friendSubset) * friendSetScorePer,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].TotalScore > suggestions[j].TotalScore
	})
	if len(suggestions) > s.limit {
		suggestions = suggestions[:s.limit]
	}
	return suggestions
}

// greedyConflictFree admits candidates in order, keeping each only if it
// conflicts with neither the subset built so far nor any pinned activity.
func (s *SuggestionService) greedyConflictFree(candidates, pinned []models.Activity) []models.Activity {
	subset := make([]models.Activity, 0, len(candidates))
next:
	for _, candidate := range candidates {
		for _, member := range subset {
			if s.conflicts.ActivitiesConflict(candidate, member) {
				continue next
			}
		}
		for _, member := range pinned {
			if s.conflicts.ActivitiesConflict(candidate, member) {
				continue next
			}
		}
		subset = append(subset, candidate)
	}
	return subset
}

// categoriesInOrder lists primary categories by first appearance, skipping
// untagged activities.
func categoriesInOrder(activities []models.Activity) []string {
	seen := make(map[string]struct{})
	order := make([]string, 0)
	for _, activity := range activities {
		category := activity.PrimaryCategory()
		if category == "" {
			continue
		}
		if _, ok := seen[category]; ok {
			continue
		}
		seen[category] = struct{}{}
		order = append(order, category)
	}
	return order
}

func activityIDs(activities []models.Activity) []string {
	ids := make([]string, len(activities))
	for i, activity := range activities {
		ids[i] = activity.ID
	}
	return ids
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return string(unicode.ToUpper(runes[0])) + strings.ToLower(string(runes[1:]))
}
