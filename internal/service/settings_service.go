package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/nwhitfield/weekplan-api/internal/models"
	appErrors "github.com/nwhitfield/weekplan-api/pkg/errors"
)

type settingsStore interface {
	ReplacePreferences(prefs []models.PreferenceRank)
	ReplaceFriendInterests(interests []models.FriendInterest)
	Preferences() []models.PreferenceRank
	FriendInterests() []models.FriendInterest
}

// ReplacePreferencesRequest carries the caller-ordered preference list.
type ReplacePreferencesRequest struct {
	Preferences []models.PreferenceRank `json:"preferences" validate:"dive"`
}

// ReplaceFriendInterestsRequest carries the friend-interest snapshot.
type ReplaceFriendInterestsRequest struct {
	Interests []models.FriendInterest `json:"interests" validate:"dive"`
}

// SettingsService accepts preference and friend-interest snapshots from the
// settings collaborator.
type SettingsService struct {
	store     settingsStore
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSettingsService builds the service.
func NewSettingsService(store settingsStore, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *SettingsService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsService{store: store, cache: cache, validator: validate, logger: logger}
}

// ReplacePreferences swaps in the ordered preference list. List order is
// preserved verbatim; it decides which entry wins when several match.
func (s *SettingsService) ReplacePreferences(ctx context.Context, req ReplacePreferencesRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid preferences payload")
	}
	s.store.ReplacePreferences(req.Preferences)
	s.cache.Invalidate(ctx)
	s.logger.Info("preferences replaced", zap.Int("count", len(req.Preferences)))
	return nil
}

// ReplaceFriendInterests swaps in the friend-interest snapshot.
func (s *SettingsService) ReplaceFriendInterests(ctx context.Context, req ReplaceFriendInterestsRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid friend interests payload")
	}
	s.store.ReplaceFriendInterests(req.Interests)
	s.cache.Invalidate(ctx)
	s.logger.Info("friend interests replaced", zap.Int("count", len(req.Interests)))
	return nil
}

// Preferences lists the current ordered preference list.
func (s *SettingsService) Preferences(ctx context.Context) []models.PreferenceRank {
	return s.store.Preferences()
}

// FriendInterests lists the current friend-interest snapshot.
func (s *SettingsService) FriendInterests(ctx context.Context) []models.FriendInterest {
	return s.store.FriendInterests()
}
