package service

import (
	"context"
	"sort"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/nwhitfield/weekplan-api/internal/models"
	appErrors "github.com/nwhitfield/weekplan-api/pkg/errors"
)

type scheduleSetStore interface {
	Create() models.ScheduleSet
	Delete(id string) error
	Rename(id, name string) (models.ScheduleSet, error)
	AddActivity(id, activityID string) (models.ScheduleSet, error)
	RemoveActivity(id, activityID string) (models.ScheduleSet, error)
	SwitchActive(id string) error
	List() []models.ScheduleSet
	FindByID(id string) (models.ScheduleSet, bool)
	ActiveID() string
}

type setCatalogReader interface {
	ActivityByID(id string) (models.Activity, bool)
	LocationByID(id string) (models.Location, bool)
}

// RenameSetRequest carries a set rename payload.
type RenameSetRequest struct {
	Name string `json:"name" validate:"required,max=120"`
}

// SetMembershipRequest carries an activity membership payload.
type SetMembershipRequest struct {
	ActivityID string `json:"activity_id" validate:"required"`
}

// ScheduleSetListing pairs the set collection with the active pointer.
type ScheduleSetListing struct {
	Sets     []models.ScheduleSet `json:"sets"`
	ActiveID string               `json:"active_id,omitempty"`
}

// ScheduleSetService manages the candidate schedule sets and the active
// pointer, and derives per-set cost summaries.
type ScheduleSetService struct {
	store     scheduleSetStore
	catalog   setCatalogReader
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewScheduleSetService builds the service.
func NewScheduleSetService(store scheduleSetStore, catalog setCatalogReader, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *ScheduleSetService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleSetService{store: store, catalog: catalog, cache: cache, validator: validate, logger: logger}
}

// List returns all sets in creation order plus the active pointer.
func (s *ScheduleSetService) List(ctx context.Context) ScheduleSetListing {
	return ScheduleSetListing{Sets: s.store.List(), ActiveID: s.store.ActiveID()}
}

// Create appends a new empty set; the new set becomes active.
func (s *ScheduleSetService) Create(ctx context.Context) models.ScheduleSet {
	set := s.store.Create()
	s.cache.Invalidate(ctx)
	s.logger.Info("schedule set created", zap.String("set_id", set.ID), zap.String("name", set.Name))
	return set
}

// Delete removes a set, letting the store reassign the active pointer.
func (s *ScheduleSetService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx)
	s.logger.Info("schedule set deleted", zap.String("set_id", id))
	return nil
}

// Rename updates a set's display name.
func (s *ScheduleSetService) Rename(ctx context.Context, id string, req RenameSetRequest) (models.ScheduleSet, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.ScheduleSet{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid rename payload")
	}
	return s.store.Rename(id, req.Name)
}

// AddActivity adds a catalog activity to a set; duplicates are a no-op.
func (s *ScheduleSetService) AddActivity(ctx context.Context, id string, req SetMembershipRequest) (models.ScheduleSet, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.ScheduleSet{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid membership payload")
	}
	if _, ok := s.catalog.ActivityByID(req.ActivityID); !ok {
		return models.ScheduleSet{}, appErrors.Clone(appErrors.ErrNotFound, "activity not found")
	}
	set, err := s.store.AddActivity(id, req.ActivityID)
	if err != nil {
		return models.ScheduleSet{}, err
	}
	s.cache.Invalidate(ctx)
	return set, nil
}

// RemoveActivity drops an activity from a set.
func (s *ScheduleSetService) RemoveActivity(ctx context.Context, id, activityID string) (models.ScheduleSet, error) {
	set, err := s.store.RemoveActivity(id, activityID)
	if err != nil {
		return models.ScheduleSet{}, err
	}
	s.cache.Invalidate(ctx)
	return set, nil
}

// SwitchActive moves the active pointer.
func (s *ScheduleSetService) SwitchActive(ctx context.Context, id string) error {
	if err := s.store.SwitchActive(id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx)
	return nil
}

// CostSummary totals a set's activity costs per period and adds flat daily
// rates for each location-day the set visits at a flat-rate venue.
func (s *ScheduleSetService) CostSummary(ctx context.Context, id string) (models.CostSummary, error) {
	set, ok := s.store.FindByID(id)
	if !ok {
		return models.CostSummary{}, appErrors.Clone(appErrors.ErrNotFound, "schedule set not found")
	}

	summary := models.CostSummary{
		SetID:        set.ID,
		SetName:      set.Name,
		Items:        make([]models.CostLineItem, 0, len(set.ActivityIDs)),
		PeriodTotals: make(map[models.CostPeriod]float64),
	}

	daysByLocation := make(map[string]map[models.Weekday]struct{})
	for _, activityID := range set.ActivityIDs {
		activity, found := s.catalog.ActivityByID(activityID)
		if !found {
			continue
		}
		summary.Items = append(summary.Items, models.CostLineItem{
			ActivityID:   activity.ID,
			ActivityName: activity.Name,
			Cost:         activity.Cost,
			Period:       activity.CostPeriod,
		})
		summary.PeriodTotals[activity.CostPeriod] += activity.Cost

		for _, slot := range activity.TimeSlots {
			days, okDays := daysByLocation[activity.LocationID]
			if !okDays {
				days = make(map[models.Weekday]struct{})
				daysByLocation[activity.LocationID] = days
			}
			days[slot.Day] = struct{}{}
		}
	}

	locationIDs := make([]string, 0, len(daysByLocation))
	for locationID := range daysByLocation {
		locationIDs = append(locationIDs, locationID)
	}
	sort.Strings(locationIDs)

	for _, locationID := range locationIDs {
		location, found := s.catalog.LocationByID(locationID)
		if !found || !location.HasFlatDailyRate {
			continue
		}
		days := len(daysByLocation[locationID])
		charge := models.FlatRateCharge{
			LocationID:   location.ID,
			LocationName: location.Name,
			DailyRate:    location.DailyRate,
			Days:         days,
			Total:        location.DailyRate * float64(days),
		}
		summary.FlatRates = append(summary.FlatRates, charge)
		summary.FlatRateTotal += charge.Total
	}

	return summary, nil
}
