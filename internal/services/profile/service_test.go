package profile

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/barquest/barquest/internal/catalog"
	"github.com/barquest/barquest/internal/dependencies/mocks"
	"github.com/barquest/barquest/internal/model"
	"github.com/barquest/barquest/internal/services/badge"
	"github.com/barquest/barquest/internal/storage/memory"
	"github.com/barquest/barquest/internal/testutil"
)

const testProfileID = model.ProfileID("user-1")

type ServiceSuite struct {
	suite.Suite
	ctx     context.Context
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2025, 6, 14, 22, 30, 0, 0, time.UTC))

	venues := catalog.NewVenueCatalog(catalog.DefaultVenues())
	badgeService := badge.New(catalog.BadgeDefinitions(), venues)
	s.service = New(s.storage, venues, badgeService, s.clock, testutil.NopLogger())
}

func (s *ServiceSuite) TestGetReturnsDefaultWhenMissing() {
	profile, err := s.service.Get(s.ctx, testProfileID)
	s.Require().NoError(err)

	s.Equal(testProfileID, profile.ID)
	s.Equal("Explorer", profile.Name)
	s.Equal("🎮", profile.Avatar)
	s.Zero(profile.Points)
	s.Equal(1, profile.Level)
	s.Empty(profile.CheckIns)
	s.Len(profile.Badges, 6)
	for _, b := range profile.Badges {
		s.False(b.Earned)
	}
}

func (s *ServiceSuite) TestGetDoesNotPersistDefault() {
	_, err := s.service.Get(s.ctx, testProfileID)
	s.Require().NoError(err)

	_, err = s.storage.GetProfile(s.ctx, testProfileID)
	s.ErrorIs(err, model.ErrProfileNotFound)
}

func (s *ServiceSuite) TestGetFallsBackOnNewerSchema() {
	s.Require().NoError(s.storage.SaveProfile(s.ctx, &model.UserProfile{
		SchemaVersion: model.ProfileSchemaVersion + 1,
		ID:            testProfileID,
		Name:          "Time Traveller",
		Points:        9000,
	}))

	profile, err := s.service.Get(s.ctx, testProfileID)
	s.Require().NoError(err)
	s.Equal("Explorer", profile.Name)
	s.Zero(profile.Points)
}

func (s *ServiceSuite) TestRecordCheckInAwardsPointsAndHistory() {
	profile, err := s.service.RecordCheckIn(s.ctx, testProfileID, "1")
	s.Require().NoError(err)

	s.Equal(10, profile.Points)
	s.Equal(1, profile.Level)
	s.Require().Len(profile.CheckIns, 1)

	ci := profile.CheckIns[0]
	s.Equal(model.VenueID("1"), ci.VenueID)
	s.Equal("El Portal Tapas Bar", ci.VenueName)
	s.Equal(s.clock.CurrentTime.UnixMilli(), ci.Timestamp)
	s.Equal(model.CheckInPoints, ci.Points)
}

func (s *ServiceSuite) TestRecordCheckInPersists() {
	_, err := s.service.RecordCheckIn(s.ctx, testProfileID, "1")
	s.Require().NoError(err)

	stored, err := s.storage.GetProfile(s.ctx, testProfileID)
	s.Require().NoError(err)
	s.Equal(10, stored.Points)
	s.Len(stored.CheckIns, 1)
}

func (s *ServiceSuite) TestRepeatCheckInsAccumulate() {
	for i := 0; i < 3; i++ {
		s.clock.Advance(time.Hour)
		_, err := s.service.RecordCheckIn(s.ctx, testProfileID, "1")
		s.Require().NoError(err)
	}

	profile, err := s.service.Get(s.ctx, testProfileID)
	s.Require().NoError(err)
	s.Equal(30, profile.Points)
	s.Len(profile.CheckIns, 3)
}

func (s *ServiceSuite) TestLevelAdvancesAtHundredPoints() {
	// Ten check-ins at ten points each crosses the first level boundary
	for i := 0; i < 10; i++ {
		_, err := s.service.RecordCheckIn(s.ctx, testProfileID, "1")
		s.Require().NoError(err)
	}

	profile, err := s.service.Get(s.ctx, testProfileID)
	s.Require().NoError(err)
	s.Equal(100, profile.Points)
	s.Equal(2, profile.Level)
}

func (s *ServiceSuite) TestRecordCheckInEarnsFirstBadge() {
	profile, err := s.service.RecordCheckIn(s.ctx, testProfileID, "1")
	s.Require().NoError(err)

	var first model.Badge
	for _, b := range profile.Badges {
		if b.ID == "first-check-in" {
			first = b
		}
	}
	s.True(first.Earned)
}

func (s *ServiceSuite) TestRecordCheckInUnknownVenueIsNoOp() {
	profile, err := s.service.RecordCheckIn(s.ctx, testProfileID, "no-such-venue")
	s.Require().NoError(err)

	s.Zero(profile.Points)
	s.Empty(profile.CheckIns)

	_, err = s.storage.GetProfile(s.ctx, testProfileID)
	s.ErrorIs(err, model.ErrProfileNotFound)
}

func (s *ServiceSuite) TestUpdateName() {
	profile, err := s.service.UpdateName(s.ctx, testProfileID, "Nora")
	s.Require().NoError(err)
	s.Equal("Nora", profile.Name)

	stored, err := s.storage.GetProfile(s.ctx, testProfileID)
	s.Require().NoError(err)
	s.Equal("Nora", stored.Name)
}

func (s *ServiceSuite) TestUpdateAvatar() {
	profile, err := s.service.UpdateAvatar(s.ctx, testProfileID, "🦊")
	s.Require().NoError(err)
	s.Equal("🦊", profile.Avatar)
}

func (s *ServiceSuite) TestResetClearsEverything() {
	_, err := s.service.RecordCheckIn(s.ctx, testProfileID, "1")
	s.Require().NoError(err)
	_, err = s.service.UpdateName(s.ctx, testProfileID, "Nora")
	s.Require().NoError(err)

	profile, err := s.service.Reset(s.ctx, testProfileID)
	s.Require().NoError(err)
	s.Equal("Explorer", profile.Name)
	s.Zero(profile.Points)
	s.Empty(profile.CheckIns)

	stored, err := s.storage.GetProfile(s.ctx, testProfileID)
	s.Require().NoError(err)
	s.Zero(stored.Points)
}
