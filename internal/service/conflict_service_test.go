package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/nwhitfield/weekplan-api/internal/models"
)

func slotOn(day models.Weekday, start, end int) models.TimeSlot {
	return models.TimeSlot{Day: day, StartMinute: start, EndMinute: end}
}

func timedActivity(id, locationID string, slots ...models.TimeSlot) models.Activity {
	return models.Activity{ID: id, Name: id, LocationID: locationID, TimeSlots: slots}
}

func newConflictService(edges stubEdges) *ConflictService {
	travel := NewTravelService(edges, 0, zap.NewNop())
	return NewConflictService(travel, zap.NewNop())
}

func TestSlotsOverlap(t *testing.T) {
	svc := newConflictService(stubEdges{})

	assert.True(t, svc.SlotsOverlap(slotOn(models.Monday, 600, 660), slotOn(models.Monday, 630, 690)))
	assert.False(t, svc.SlotsOverlap(slotOn(models.Monday, 600, 660), slotOn(models.Monday, 660, 720)))
	assert.False(t, svc.SlotsOverlap(slotOn(models.Monday, 600, 660), slotOn(models.Tuesday, 600, 660)))
}

func TestSlotsOverlapWithTravelBuffersBothSides(t *testing.T) {
	svc := newConflictService(stubEdges{edgeKey("loc-1", "loc-2"): 15})

	// Back-to-back at different venues: the buffer makes them collide.
	a := slotOn(models.Monday, 900, 960)
	b := slotOn(models.Monday, 960, 1020)
	assert.True(t, svc.SlotsOverlapWithTravel(a, b, "loc-1", "loc-2"))
	assert.True(t, svc.SlotsOverlapWithTravel(b, a, "loc-2", "loc-1"))

	// Same venue needs no buffer.
	assert.False(t, svc.SlotsOverlapWithTravel(a, b, "loc-1", "loc-1"))
}

func TestActivitiesConflictTravelBuffer(t *testing.T) {
	svc := newConflictService(stubEdges{edgeKey("loc-1", "loc-2"): 15})

	// Monday 15:00-16:00 and Monday 16:00-17:00 across a 15-minute commute.
	a := timedActivity("a", "loc-1", slotOn(models.Monday, 900, 960))
	b := timedActivity("b", "loc-2", slotOn(models.Monday, 960, 1020))
	assert.True(t, svc.ActivitiesConflict(a, b))
	assert.Equal(t, svc.ActivitiesConflict(a, b), svc.ActivitiesConflict(b, a))
	assert.Equal(t, "15min travel needed", svc.ConflictReason(a, b))

	// A 16:30 start leaves enough slack for the commute.
	late := timedActivity("b", "loc-2", slotOn(models.Monday, 990, 1050))
	assert.False(t, svc.ActivitiesConflict(a, late))
}

func TestConflictReasonTimeOverlap(t *testing.T) {
	svc := newConflictService(stubEdges{edgeKey("loc-1", "loc-2"): 15})

	a := timedActivity("a", "loc-1", slotOn(models.Wednesday, 600, 700))
	b := timedActivity("b", "loc-2", slotOn(models.Wednesday, 650, 720))
	assert.True(t, svc.ActivitiesConflict(a, b))
	assert.Equal(t, "time overlap", svc.ConflictReason(a, b))
}

func TestConflictReasonFallsBackToGeneric(t *testing.T) {
	svc := newConflictService(stubEdges{edgeKey("loc-1", "loc-2"): 0})

	a := timedActivity("a", "loc-1", slotOn(models.Friday, 600, 660))
	b := timedActivity("b", "loc-2", slotOn(models.Friday, 700, 760))
	// No plain overlap and a zero-minute commute leaves only the generic label.
	assert.Equal(t, "schedule conflict", svc.ConflictReason(a, b))
}

func TestActivitiesConflictChecksEverySlotPair(t *testing.T) {
	svc := newConflictService(stubEdges{})

	a := timedActivity("a", "loc-1",
		slotOn(models.Monday, 540, 600),
		slotOn(models.Thursday, 840, 900),
	)
	b := timedActivity("b", "loc-1",
		slotOn(models.Tuesday, 540, 600),
		slotOn(models.Thursday, 870, 930),
	)
	assert.True(t, svc.ActivitiesConflict(a, b))
}
