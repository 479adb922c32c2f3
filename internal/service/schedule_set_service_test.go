package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nwhitfield/weekplan-api/internal/models"
	"github.com/nwhitfield/weekplan-api/internal/repository"
	appErrors "github.com/nwhitfield/weekplan-api/pkg/errors"
)

func newScheduleSetFixture(t *testing.T) (*ScheduleSetService, *repository.CatalogRepository, *repository.ScheduleSetRepository) {
	t.Helper()
	catalog := repository.NewCatalogRepository()
	store := repository.NewScheduleSetRepository()
	svc := NewScheduleSetService(store, catalog, nil, nil, zap.NewNop())
	return svc, catalog, store
}

func TestScheduleSetCreateNamesAndActivates(t *testing.T) {
	svc, _, store := newScheduleSetFixture(t)
	ctx := context.Background()

	first := svc.Create(ctx)
	assert.Equal(t, "Set A", first.Name)
	assert.Equal(t, first.ID, store.ActiveID())

	second := svc.Create(ctx)
	assert.Equal(t, "Set B", second.Name)
	assert.Equal(t, second.ID, store.ActiveID())

	listing := svc.List(ctx)
	require.Len(t, listing.Sets, 2)
	assert.Equal(t, second.ID, listing.ActiveID)
}

func TestScheduleSetDeleteFallsBackToEarliest(t *testing.T) {
	svc, _, store := newScheduleSetFixture(t)
	ctx := context.Background()

	a := svc.Create(ctx)
	b := svc.Create(ctx)
	require.Equal(t, b.ID, store.ActiveID())

	require.NoError(t, svc.Delete(ctx, b.ID))
	assert.Equal(t, a.ID, store.ActiveID())

	require.NoError(t, svc.Delete(ctx, a.ID))
	assert.Empty(t, store.ActiveID())
}

func TestScheduleSetDeleteUnknown(t *testing.T) {
	svc, _, _ := newScheduleSetFixture(t)

	err := svc.Delete(context.Background(), "nope")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestScheduleSetRenameValidation(t *testing.T) {
	svc, _, _ := newScheduleSetFixture(t)
	ctx := context.Background()

	set := svc.Create(ctx)

	renamed, err := svc.Rename(ctx, set.ID, RenameSetRequest{Name: "Autumn Term"})
	require.NoError(t, err)
	assert.Equal(t, "Autumn Term", renamed.Name)

	_, err = svc.Rename(ctx, set.ID, RenameSetRequest{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestScheduleSetAddActivity(t *testing.T) {
	svc, catalog, _ := newScheduleSetFixture(t)
	ctx := context.Background()

	catalog.ReplaceActivities([]models.Activity{
		{ID: "swim", Name: "Swimming", LocationID: "loc-1"},
	})
	set := svc.Create(ctx)

	updated, err := svc.AddActivity(ctx, set.ID, SetMembershipRequest{ActivityID: "swim"})
	require.NoError(t, err)
	assert.Equal(t, []string{"swim"}, updated.ActivityIDs)

	// Re-adding a member is a no-op.
	updated, err = svc.AddActivity(ctx, set.ID, SetMembershipRequest{ActivityID: "swim"})
	require.NoError(t, err)
	assert.Equal(t, []string{"swim"}, updated.ActivityIDs)

	// Activities outside the catalog are rejected.
	_, err = svc.AddActivity(ctx, set.ID, SetMembershipRequest{ActivityID: "ghost"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestScheduleSetRemoveActivityAndSwitch(t *testing.T) {
	svc, catalog, store := newScheduleSetFixture(t)
	ctx := context.Background()

	catalog.ReplaceActivities([]models.Activity{
		{ID: "swim", Name: "Swimming", LocationID: "loc-1"},
		{ID: "judo", Name: "Judo", LocationID: "loc-1"},
	})
	a := svc.Create(ctx)
	b := svc.Create(ctx)

	_, err := svc.AddActivity(ctx, a.ID, SetMembershipRequest{ActivityID: "swim"})
	require.NoError(t, err)
	_, err = svc.AddActivity(ctx, a.ID, SetMembershipRequest{ActivityID: "judo"})
	require.NoError(t, err)

	updated, err := svc.RemoveActivity(ctx, a.ID, "swim")
	require.NoError(t, err)
	assert.Equal(t, []string{"judo"}, updated.ActivityIDs)

	require.NoError(t, svc.SwitchActive(ctx, a.ID))
	assert.Equal(t, a.ID, store.ActiveID())
	require.Error(t, svc.SwitchActive(ctx, "nope"))
	assert.Equal(t, a.ID, store.ActiveID())
	_ = b
}

func TestScheduleSetCostSummary(t *testing.T) {
	svc, catalog, _ := newScheduleSetFixture(t)
	ctx := context.Background()

	catalog.ReplaceActivities([]models.Activity{
		{
			ID: "swim", Name: "Swimming", LocationID: "pool",
			Cost: 120, CostPeriod: models.CostPerTerm,
			TimeSlots: []models.TimeSlot{
				slotOn(models.Monday, 540, 600),
				slotOn(models.Wednesday, 540, 600),
			},
		},
		{
			ID: "dive", Name: "Diving", LocationID: "pool",
			Cost: 80, CostPeriod: models.CostPerTerm,
			TimeSlots: []models.TimeSlot{
				slotOn(models.Monday, 620, 680), // same pool day as swimming
			},
		},
		{
			ID: "band", Name: "Band", LocationID: "hall",
			Cost: 30, CostPeriod: models.CostPerMonth,
			TimeSlots: []models.TimeSlot{
				slotOn(models.Friday, 540, 600),
			},
		},
	})
	catalog.ReplaceLocations([]models.Location{
		{ID: "pool", Name: "Pool", HasFlatDailyRate: true, DailyRate: 5},
		{ID: "hall", Name: "Hall"},
	})

	set := svc.Create(ctx)
	for _, id := range []string{"swim", "dive", "band"} {
		_, err := svc.AddActivity(ctx, set.ID, SetMembershipRequest{ActivityID: id})
		require.NoError(t, err)
	}

	summary, err := svc.CostSummary(ctx, set.ID)
	require.NoError(t, err)
	require.Len(t, summary.Items, 3)
	assert.Equal(t, 200.0, summary.PeriodTotals[models.CostPerTerm])
	assert.Equal(t, 30.0, summary.PeriodTotals[models.CostPerMonth])

	// Pool is visited Monday and Wednesday: two flat daily charges. The hall
	// has no flat rate and contributes nothing.
	require.Len(t, summary.FlatRates, 1)
	assert.Equal(t, "pool", summary.FlatRates[0].LocationID)
	assert.Equal(t, 2, summary.FlatRates[0].Days)
	assert.Equal(t, 10.0, summary.FlatRates[0].Total)
	assert.Equal(t, 10.0, summary.FlatRateTotal)
}

func TestScheduleSetCostSummaryUnknownSet(t *testing.T) {
	svc, _, _ := newScheduleSetFixture(t)

	_, err := svc.CostSummary(context.Background(), "nope")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
