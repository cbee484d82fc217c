// Package profile manages the durable user profile: check-in history, points,
// level, and badge state.
package profile

import (
	"context"
	"errors"
	"log/slog"

	"github.com/barquest/barquest/internal/catalog"
	"github.com/barquest/barquest/internal/dependencies/clock"
	"github.com/barquest/barquest/internal/model"
	"github.com/barquest/barquest/internal/services/badge"
	"github.com/barquest/barquest/internal/storage"
)

const (
	defaultName   = "Explorer"
	defaultAvatar = "🎮"
)

// Service owns all profile reads and mutations. Level is always derived from
// Points and badges are always recomputed from the full history, so a profile
// loaded from storage is internally consistent or replaced with the default.
type Service struct {
	storage      storage.Storage
	venues       *catalog.VenueCatalog
	badgeService *badge.Service
	clock        clock.Clock
	logger       *slog.Logger
}

// New creates a new profile service
func New(
	storage storage.Storage,
	venues *catalog.VenueCatalog,
	badgeService *badge.Service,
	clock clock.Clock,
	logger *slog.Logger,
) *Service {
	return &Service{
		storage:      storage,
		venues:       venues,
		badgeService: badgeService,
		clock:        clock,
		logger:       logger,
	}
}

// Get loads the profile, falling back to a fresh default when it is missing,
// unreadable, or written by a newer schema. Storage failures are logged but
// never surfaced: the app must stay usable with an empty profile.
func (s *Service) Get(ctx context.Context, id model.ProfileID) (*model.UserProfile, error) {
	stored, err := s.storage.GetProfile(ctx, id)
	switch {
	case errors.Is(err, model.ErrProfileNotFound):
		return s.defaultProfile(id), nil
	case err != nil:
		s.logger.Warn("failed to load profile, using default",
			"profile_id", id, "error", err)
		return s.defaultProfile(id), nil
	case stored.SchemaVersion > model.ProfileSchemaVersion:
		s.logger.Warn("profile written by newer schema, using default",
			"profile_id", id, "schema_version", stored.SchemaVersion)
		return s.defaultProfile(id), nil
	}
	return stored, nil
}

// RecordCheckIn appends a check-in for the venue, awards points, and
// recomputes level and badges. A venue id that does not resolve is a benign
// no-op: the profile is returned unchanged.
//
// Proximity is deliberately not checked here; callers gate on distance before
// recording.
func (s *Service) RecordCheckIn(ctx context.Context, id model.ProfileID, venueID model.VenueID) (*model.UserProfile, error) {
	profile, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	venue, ok := s.venues.Get(venueID)
	if !ok {
		s.logger.Warn("check-in for unknown venue ignored",
			"profile_id", id, "venue_id", venueID)
		return profile, nil
	}

	profile.CheckIns = append(profile.CheckIns, model.CheckIn{
		VenueID:   venue.ID,
		VenueName: venue.Name,
		Timestamp: s.clock.Now().UnixMilli(),
		Points:    model.CheckInPoints,
	})
	profile.Points += model.CheckInPoints
	profile.Level = model.LevelForPoints(profile.Points)
	profile.Badges = s.badgeService.Evaluate(profile.CheckIns)

	if err := s.storage.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.Info("check-in recorded",
		"profile_id", id,
		"venue_id", venue.ID,
		"venue_name", venue.Name,
		"points", profile.Points,
		"level", profile.Level,
	)
	return profile, nil
}

// UpdateName sets the display name and persists the profile
func (s *Service) UpdateName(ctx context.Context, id model.ProfileID, name string) (*model.UserProfile, error) {
	profile, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	profile.Name = name
	if err := s.storage.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// UpdateAvatar sets the avatar and persists the profile
func (s *Service) UpdateAvatar(ctx context.Context, id model.ProfileID, avatar string) (*model.UserProfile, error) {
	profile, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	profile.Avatar = avatar
	if err := s.storage.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Reset replaces the profile with a fresh default and persists it
func (s *Service) Reset(ctx context.Context, id model.ProfileID) (*model.UserProfile, error) {
	profile := s.defaultProfile(id)
	if err := s.storage.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}
	s.logger.Info("profile reset", "profile_id", id)
	return profile, nil
}

func (s *Service) defaultProfile(id model.ProfileID) *model.UserProfile {
	return &model.UserProfile{
		SchemaVersion: model.ProfileSchemaVersion,
		ID:            id,
		Name:          defaultName,
		Avatar:        defaultAvatar,
		Points:        0,
		Level:         1,
		CheckIns:      []model.CheckIn{},
		Badges:        s.badgeService.Evaluate(nil),
	}
}
