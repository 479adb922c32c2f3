package service

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/nwhitfield/weekplan-api/internal/models"
)

// ConflictService decides whether timed activities can coexist once
// inter-location travel is accounted for.
//
// The travel-aware check extends both intervals by the full travel buffer
// regardless of which activity comes first in the day. That makes it a
// conservative over-approximation rather than a directional feasibility
// check; scoring and the conflict messages below rely on this exact shape.
type ConflictService struct {
	travel *TravelService
	logger *zap.Logger
}

// NewConflictService builds the detector.
func NewConflictService(travel *TravelService, logger *zap.Logger) *ConflictService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConflictService{travel: travel, logger: logger}
}

// SlotsOverlap reports plain half-open interval overlap on the same day, with
// no travel buffer.
func (s *ConflictService) SlotsOverlap(a, b models.TimeSlot) bool {
	if a.Day != b.Day {
		return false
	}
	return a.StartMinute < b.EndMinute && b.StartMinute < a.EndMinute
}

// SlotsOverlapWithTravel reports overlap after widening both intervals by the
// commute time between the two locations.
func (s *ConflictService) SlotsOverlapWithTravel(a, b models.TimeSlot, locA, locB string) bool {
	if a.Day != b.Day {
		return false
	}
	travel := s.travel.GetTravelTime(locA, locB)
	return a.StartMinute < b.EndMinute+travel && b.StartMinute < a.EndMinute+travel
}

// ActivitiesConflict reports whether any slot pair of the two activities
// collides under the travel-aware check. Symmetric in its arguments.
func (s *ConflictService) ActivitiesConflict(a, b models.Activity) bool {
	for _, slotA := range a.TimeSlots {
		for _, slotB := range b.TimeSlots {
			if s.SlotsOverlapWithTravel(slotA, slotB, a.LocationID, b.LocationID) {
				return true
			}
		}
	}
	return false
}

// ConflictReason explains a collision between two activities: a plain time
// overlap, an insufficient travel buffer, or a generic schedule conflict.
func (s *ConflictService) ConflictReason(a, b models.Activity) string {
	for _, slotA := range a.TimeSlots {
		for _, slotB := range b.TimeSlots {
			if s.SlotsOverlap(slotA, slotB) {
				return "time overlap"
			}
		}
	}
	if travel := s.travel.GetTravelTime(a.LocationID, b.LocationID); travel > 0 {
		return fmt.Sprintf("%dmin travel needed", travel)
	}
	return "schedule conflict"
}
