package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/nwhitfield/weekplan-api/internal/models"
	appErrors "github.com/nwhitfield/weekplan-api/pkg/errors"
)

type catalogStore interface {
	ReplaceActivities(activities []models.Activity)
	ReplaceLocations(locations []models.Location)
	ReplaceTravelTimes(edges []models.TravelTimeEdge)
	Activities() []models.Activity
	Locations() []models.Location
	TravelTimes() []models.TravelTimeEdge
}

// ReplaceActivitiesRequest carries a full activity snapshot from the
// import/entry collaborator.
type ReplaceActivitiesRequest struct {
	Activities []models.Activity `json:"activities" validate:"dive"`
}

// ReplaceLocationsRequest carries a full location snapshot.
type ReplaceLocationsRequest struct {
	Locations []models.Location `json:"locations" validate:"dive"`
}

// ReplaceTravelTimesRequest carries a full travel-time edge snapshot.
type ReplaceTravelTimesRequest struct {
	Edges []models.TravelTimeEdge `json:"edges" validate:"dive"`
}

// CatalogService accepts whole-collection snapshots of the planner's
// read-only inputs and validates them at the collaborator seam, so the
// engines downstream can assume well-formed records.
type CatalogService struct {
	store     catalogStore
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCatalogService builds the service.
func NewCatalogService(store catalogStore, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *CatalogService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{store: store, cache: cache, validator: validate, logger: logger}
}

// ReplaceActivities swaps in the activity snapshot.
func (s *CatalogService) ReplaceActivities(ctx context.Context, req ReplaceActivitiesRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid activities payload")
	}
	for _, activity := range req.Activities {
		for _, slot := range activity.TimeSlots {
			if slot.StartMinute >= slot.EndMinute {
				return appErrors.Clone(appErrors.ErrValidation,
					fmt.Sprintf("activity %s has a slot that ends before it starts", activity.ID))
			}
		}
	}
	s.store.ReplaceActivities(req.Activities)
	s.cache.Invalidate(ctx)
	s.logger.Info("activities replaced", zap.Int("count", len(req.Activities)))
	return nil
}

// ReplaceLocations swaps in the location snapshot.
func (s *CatalogService) ReplaceLocations(ctx context.Context, req ReplaceLocationsRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid locations payload")
	}
	s.store.ReplaceLocations(req.Locations)
	s.cache.Invalidate(ctx)
	s.logger.Info("locations replaced", zap.Int("count", len(req.Locations)))
	return nil
}

// ReplaceTravelTimes swaps in the travel-time snapshot. Duplicate edges for
// an unordered pair are collapsed to the first occurrence.
func (s *CatalogService) ReplaceTravelTimes(ctx context.Context, req ReplaceTravelTimesRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid travel times payload")
	}
	s.store.ReplaceTravelTimes(req.Edges)
	s.cache.Invalidate(ctx)
	s.logger.Info("travel times replaced", zap.Int("count", len(req.Edges)))
	return nil
}

// Activities lists the current activity snapshot.
func (s *CatalogService) Activities(ctx context.Context) []models.Activity {
	return s.store.Activities()
}

// Locations lists the current location snapshot.
func (s *CatalogService) Locations(ctx context.Context) []models.Location {
	return s.store.Locations()
}

// TravelTimes lists the current edge snapshot.
func (s *CatalogService) TravelTimes(ctx context.Context) []models.TravelTimeEdge {
	return s.store.TravelTimes()
}
