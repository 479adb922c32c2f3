package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nwhitfield/weekplan-api/internal/models"
	"github.com/nwhitfield/weekplan-api/internal/repository"
)

func newSuggestionFixture(t *testing.T, edges stubEdges) (*SuggestionService, *ConflictService, *repository.CatalogRepository, *repository.SettingsRepository, *repository.ScheduleSetRepository) {
	t.Helper()
	catalog := repository.NewCatalogRepository()
	settings := repository.NewSettingsRepository()
	sets := repository.NewScheduleSetRepository()
	travel := NewTravelService(edges, 0, zap.NewNop())
	conflicts := NewConflictService(travel, zap.NewNop())
	svc := NewSuggestionService(catalog, settings, sets, conflicts, nil, nil, 0, zap.NewNop())
	return svc, conflicts, catalog, settings, sets
}

func taggedActivity(id, locationID, category string, slots ...models.TimeSlot) models.Activity {
	return models.Activity{ID: id, Name: id, LocationID: locationID, CategoryTags: []string{category}, TimeSlots: slots}
}

func TestBuildSuggestionsCategoryFocus(t *testing.T) {
	svc, _, _, _, _ := newSuggestionFixture(t, stubEdges{})

	available := []models.Activity{
		taggedActivity("m1", "loc-1", "music", slotOn(models.Monday, 540, 600)),
		taggedActivity("m2", "loc-1", "music", slotOn(models.Monday, 570, 630)), // collides with m1
		taggedActivity("m3", "loc-1", "music", slotOn(models.Tuesday, 540, 600)),
	}

	suggestions := svc.BuildSuggestions(available, nil, nil)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "Music Focus", suggestions[0].Name)
	assert.Equal(t, "2 music activities without conflicts", suggestions[0].Description)
	assert.Equal(t, []string{"m1", "m3"}, suggestions[0].ActivityIDs)
	assert.Equal(t, 100, suggestions[0].TotalScore)
	assert.False(t, suggestions[0].HasConflicts)
}

func TestBuildSuggestionsSkipsSmallGroups(t *testing.T) {
	svc, _, _, _, _ := newSuggestionFixture(t, stubEdges{})

	available := []models.Activity{
		taggedActivity("m1", "loc-1", "music", slotOn(models.Monday, 540, 600)),
		{ID: "untagged", Name: "untagged", LocationID: "loc-1"},
	}
	assert.Empty(t, svc.BuildSuggestions(available, nil, nil))
}

func TestBuildSuggestionsExcludesPinnedConflicts(t *testing.T) {
	svc, _, _, _, _ := newSuggestionFixture(t, stubEdges{})

	pinned := []models.Activity{
		timedActivity("gym", "loc-1", slotOn(models.Monday, 540, 600)),
	}
	available := []models.Activity{
		taggedActivity("m1", "loc-1", "music", slotOn(models.Monday, 560, 620)), // collides with pinned gym
		taggedActivity("m2", "loc-1", "music", slotOn(models.Tuesday, 540, 600)),
		taggedActivity("m3", "loc-1", "music", slotOn(models.Wednesday, 540, 600)),
	}

	suggestions := svc.BuildSuggestions(available, pinned, nil)
	require.Len(t, suggestions, 1)
	assert.Equal(t, []string{"m2", "m3"}, suggestions[0].ActivityIDs)
}

func TestBuildSuggestionsFriendBundleOutscoresCategories(t *testing.T) {
	svc, _, _, _, _ := newSuggestionFixture(t, stubEdges{})

	available := []models.Activity{
		taggedActivity("m1", "loc-1", "music", slotOn(models.Monday, 540, 600)),
		taggedActivity("m2", "loc-1", "music", slotOn(models.Tuesday, 540, 600)),
		taggedActivity("s1", "loc-1", "sport", slotOn(models.Wednesday, 540, 600)),
		taggedActivity("s2", "loc-1", "sport", slotOn(models.Thursday, 540, 600)),
	}
	interests := []models.FriendInterest{
		{FriendID: "f1", ActivityID: "m1"},
		{FriendID: "f2", ActivityID: "s1"},
	}

	suggestions := svc.BuildSuggestions(available, nil, interests)
	require.Len(t, suggestions, 3)
	assert.Equal(t, "With Friends", suggestions[0].Name)
	assert.Equal(t, "2 activities your friends are taking", suggestions[0].Description)
	assert.Equal(t, 130, suggestions[0].TotalScore)
	assert.Equal(t, []string{"m1", "s1"}, suggestions[0].ActivityIDs)
}

func TestBuildSuggestionsCapsAndSorts(t *testing.T) {
	svc, conflicts, _, _, _ := newSuggestionFixture(t, stubEdges{})

	// Five categories of different sizes; only the three biggest survive.
	available := make([]models.Activity, 0)
	categories := []struct {
		name string
		size int
	}{
		{"music", 2}, {"sport", 4}, {"art", 3}, {"drama", 2}, {"science", 5},
	}
	day := []models.Weekday{models.Monday, models.Tuesday, models.Wednesday, models.Thursday, models.Friday}
	for ci, cat := range categories {
		for i := 0; i < cat.size; i++ {
			start := 540 + i*120
			available = append(available, taggedActivity(
				cat.name+string(rune('0'+i)), "loc-1", cat.name,
				slotOn(day[ci], start, start+60),
			))
		}
	}

	suggestions := svc.BuildSuggestions(available, nil, nil)
	require.Len(t, suggestions, 3)
	assert.Equal(t, 250, suggestions[0].TotalScore)
	assert.Equal(t, 200, suggestions[1].TotalScore)
	assert.Equal(t, 150, suggestions[2].TotalScore)
	for i := 1; i < len(suggestions); i++ {
		assert.GreaterOrEqual(t, suggestions[i-1].TotalScore, suggestions[i].TotalScore)
	}

	// No suggested set may contain a mutually conflicting pair.
	index := make(map[string]models.Activity, len(available))
	for _, activity := range available {
		index[activity.ID] = activity
	}
	for _, suggestion := range suggestions {
		for i := 0; i < len(suggestion.ActivityIDs); i++ {
			for j := i + 1; j < len(suggestion.ActivityIDs); j++ {
				a := index[suggestion.ActivityIDs[i]]
				b := index[suggestion.ActivityIDs[j]]
				assert.False(t, conflicts.ActivitiesConflict(a, b),
					"%s and %s conflict inside %s", a.ID, b.ID, suggestion.Name)
			}
		}
	}
}

func TestGenerateSuggestedSetsReadsActiveSet(t *testing.T) {
	svc, _, catalog, settings, sets := newSuggestionFixture(t, stubEdges{})

	catalog.ReplaceActivities([]models.Activity{
		taggedActivity("gym", "loc-1", "sport", slotOn(models.Monday, 540, 600)),
		taggedActivity("m1", "loc-1", "music", slotOn(models.Monday, 560, 620)),
		taggedActivity("m2", "loc-1", "music", slotOn(models.Tuesday, 540, 600)),
		taggedActivity("m3", "loc-1", "music", slotOn(models.Wednesday, 540, 600)),
	})
	settings.ReplaceFriendInterests(nil)

	set := sets.Create()
	_, err := sets.AddActivity(set.ID, "gym")
	require.NoError(t, err)

	suggestions, err := svc.GenerateSuggestedSets(context.Background())
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	// m1 collides with the pinned gym slot, so only m2 and m3 remain.
	assert.Equal(t, []string{"m2", "m3"}, suggestions[0].ActivityIDs)
}
