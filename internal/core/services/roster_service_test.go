package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/sabaipos/pos_backend/internal/apperrors"
	"github.com/sabaipos/pos_backend/internal/core/domain"
	"github.com/sabaipos/pos_backend/internal/core/services"
	portssvc "github.com/sabaipos/pos_backend/internal/core/ports/services"
	"github.com/sabaipos/pos_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockRosterRepository is a mock type for the RosterRepositoryFacade interface
type MockRosterRepository struct {
	mock.Mock
}

func (m *MockRosterRepository) ListEntries(ctx context.Context, todayDate string) ([]domain.RosterEntry, error) {
	args := m.Called(ctx, todayDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RosterEntry), args.Error(1)
}

func (m *MockRosterRepository) FindEntryByPosition(ctx context.Context, position int) (*domain.RosterEntry, error) {
	args := m.Called(ctx, position)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RosterEntry), args.Error(1)
}

func (m *MockRosterRepository) FindEntryByName(ctx context.Context, staffName string) (*domain.RosterEntry, error) {
	args := m.Called(ctx, staffName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RosterEntry), args.Error(1)
}

func (m *MockRosterRepository) UpdateEntry(ctx context.Context, entry domain.RosterEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockRosterRepository) ApplyStatusChanges(ctx context.Context, entries []domain.RosterEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockRosterRepository) IncrementFeeTotal(ctx context.Context, staffName string, fee decimal.Decimal, now time.Time) error {
	args := m.Called(ctx, staffName, fee, now)
	return args.Error(0)
}

func (m *MockRosterRepository) ResetStatuses(ctx context.Context, now time.Time) (int, error) {
	args := m.Called(ctx, now)
	return args.Int(0), args.Error(1)
}

func (m *MockRosterRepository) SeedTemplate(ctx context.Context, size int, now time.Time) error {
	args := m.Called(ctx, size, now)
	return args.Error(0)
}

// --- Test Suite Setup ---

type RosterServiceTestSuite struct {
	suite.Suite
	mockRepo *MockRosterRepository
	service  portssvc.RosterSvcFacade
	loc      *time.Location
	now      time.Time
	today    string
}

func (suite *RosterServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockRosterRepository)
	suite.loc = time.FixedZone("ICT", 7*3600)
	suite.now = time.Date(2026, 3, 14, 13, 0, 0, 0, suite.loc)
	suite.today = "2026-03-14"
	suite.service = services.NewRosterService(suite.mockRepo, 10, suite.loc,
		services.WithRosterClock(func() time.Time { return suite.now }))
}

func entry(position int, name string, status domain.RosterStatus) domain.RosterEntry {
	return domain.RosterEntry{
		Position:  position,
		StaffName: name,
		Status:    status,
		FeeTotal:  decimal.Zero,
	}
}

// --- Test Cases ---

func (suite *RosterServiceTestSuite) TestServeNext_AssignsNextAndDemotesBusy() {
	ctx := context.Background()
	roster := []domain.RosterEntry{
		entry(1, "Anong", domain.Busy()),
		entry(2, "Boonsri", domain.Next()),
		entry(3, "Chailai", domain.Available()),
	}

	suite.mockRepo.On("ListEntries", ctx, suite.today).Return(roster, nil).Once()
	suite.mockRepo.On("ApplyStatusChanges", ctx, mock.MatchedBy(func(changes []domain.RosterEntry) bool {
		if len(changes) != 2 {
			return false
		}
		// Previous busy holder moves to break, next holder becomes busy.
		return changes[0].Position == 1 && changes[0].Status.Kind == domain.StatusBreak &&
			changes[1].Position == 2 && changes[1].Status.Kind == domain.StatusBusy
	})).Return(nil).Once()

	chosen, err := suite.service.ServeNext(ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(chosen)
	suite.Equal("Boonsri", chosen.StaffName)
	suite.Equal(domain.StatusBusy, chosen.Status.Kind)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RosterServiceTestSuite) TestServeNext_NoNextMarked() {
	ctx := context.Background()
	roster := []domain.RosterEntry{
		entry(1, "Anong", domain.Available()),
		entry(2, "Boonsri", domain.OnBreak()),
	}

	suite.mockRepo.On("ListEntries", ctx, suite.today).Return(roster, nil).Once()

	chosen, err := suite.service.ServeNext(ctx)

	suite.Require().Error(err)
	suite.Nil(chosen)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockRepo.AssertNotCalled(suite.T(), "ApplyStatusChanges", mock.Anything, mock.Anything)
}

func (suite *RosterServiceTestSuite) TestServeNext_AvailableOnlyIsNotEligible() {
	// Available slots alone never receive the customer; the marker must be
	// placed explicitly.
	ctx := context.Background()
	roster := []domain.RosterEntry{
		entry(1, "Anong", domain.Available()),
		entry(2, "Boonsri", domain.Available()),
	}

	suite.mockRepo.On("ListEntries", ctx, suite.today).Return(roster, nil).Once()

	_, err := suite.service.ServeNext(ctx)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
}

func (suite *RosterServiceTestSuite) TestSweepExpired_ClearsOnlyExpired() {
	ctx := context.Background()
	past := suite.now.Add(-10 * time.Minute)
	future := suite.now.Add(30 * time.Minute)
	roster := []domain.RosterEntry{
		entry(1, "Anong", domain.BusyUntil(past)),
		entry(2, "Boonsri", domain.BusyUntil(future)),
		entry(3, "Chailai", domain.Busy()),
	}

	suite.mockRepo.On("ListEntries", ctx, suite.today).Return(roster, nil).Once()
	suite.mockRepo.On("ApplyStatusChanges", ctx, mock.MatchedBy(func(changes []domain.RosterEntry) bool {
		return len(changes) == 1 && changes[0].Position == 1 && changes[0].Status.Kind == domain.StatusAvailable
	})).Return(nil).Once()

	cleared, err := suite.service.SweepExpired(ctx)

	suite.Require().NoError(err)
	suite.Equal(1, cleared)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RosterServiceTestSuite) TestSweepExpired_BoundaryInstantExpires() {
	// An entry whose expiry equals the current instant is already expired.
	ctx := context.Background()
	roster := []domain.RosterEntry{
		entry(1, "Anong", domain.BusyUntil(suite.now)),
	}

	suite.mockRepo.On("ListEntries", ctx, suite.today).Return(roster, nil).Once()
	suite.mockRepo.On("ApplyStatusChanges", ctx, mock.Anything).Return(nil).Once()

	cleared, err := suite.service.SweepExpired(ctx)

	suite.Require().NoError(err)
	suite.Equal(1, cleared)
}

func (suite *RosterServiceTestSuite) TestSweepExpired_NothingExpiredIsIdempotent() {
	ctx := context.Background()
	roster := []domain.RosterEntry{
		entry(1, "Anong", domain.BusyUntil(suite.now.Add(time.Hour))),
		entry(2, "Boonsri", domain.Available()),
	}

	suite.mockRepo.On("ListEntries", ctx, suite.today).Return(roster, nil).Twice()

	for i := 0; i < 2; i++ {
		cleared, err := suite.service.SweepExpired(ctx)
		suite.Require().NoError(err)
		suite.Equal(0, cleared)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "ApplyStatusChanges", mock.Anything, mock.Anything)
}

func (suite *RosterServiceTestSuite) TestSweepExpired_SkipsUnoccupiedSlots() {
	ctx := context.Background()
	past := suite.now.Add(-time.Minute)
	roster := []domain.RosterEntry{
		entry(1, "", domain.BusyUntil(past)), // stale status on an empty slot
	}

	suite.mockRepo.On("ListEntries", ctx, suite.today).Return(roster, nil).Once()

	cleared, err := suite.service.SweepExpired(ctx)

	suite.Require().NoError(err)
	suite.Equal(0, cleared)
}

func (suite *RosterServiceTestSuite) TestGetRoster_SweepsBeforeReturning() {
	ctx := context.Background()
	past := suite.now.Add(-time.Minute)
	roster := []domain.RosterEntry{
		entry(1, "Anong", domain.BusyUntil(past)),
		entry(2, "Boonsri", domain.Next()),
	}

	suite.mockRepo.On("ListEntries", ctx, suite.today).Return(roster, nil).Once()
	suite.mockRepo.On("ApplyStatusChanges", ctx, mock.Anything).Return(nil).Once()

	entries, err := suite.service.GetRoster(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	// The returned listing reflects the sweep, not the stale state.
	suite.Equal(domain.StatusAvailable, entries[0].Status.Kind)
	suite.Equal(domain.StatusNext, entries[1].Status.Kind)
}

func (suite *RosterServiceTestSuite) TestAdvanceQueue_MovesToFollowingEligible() {
	ctx := context.Background()
	roster := []domain.RosterEntry{
		entry(1, "Anong", domain.Next()),
		entry(2, "Boonsri", domain.Busy()),
		entry(3, "Chailai", domain.OnBreak()),
	}

	suite.mockRepo.On("ListEntries", ctx, suite.today).Return(roster, nil).Once()
	suite.mockRepo.On("ApplyStatusChanges", ctx, mock.MatchedBy(func(changes []domain.RosterEntry) bool {
		return len(changes) == 2 &&
			changes[0].Position == 1 && changes[0].Status.Kind == domain.StatusAvailable &&
			changes[1].Position == 3 && changes[1].Status.Kind == domain.StatusNext
	})).Return(nil).Once()

	outcome, err := suite.service.AdvanceQueue(ctx, "Anong")

	suite.Require().NoError(err)
	suite.True(outcome.Advanced)
	suite.Require().NotNil(outcome.NewNext)
	// Plain busy at position 2 is skipped; break at position 3 is eligible.
	suite.Equal("Chailai", outcome.NewNext.StaffName)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RosterServiceTestSuite) TestAdvanceQueue_WrapsAroundAndSkipsClearedSlot() {
	ctx := context.Background()
	roster := []domain.RosterEntry{
		entry(1, "Anong", domain.Available()),
		entry(2, "Boonsri", domain.Busy()),
		entry(3, "Chailai", domain.Next()),
	}

	suite.mockRepo.On("ListEntries", ctx, suite.today).Return(roster, nil).Once()
	suite.mockRepo.On("ApplyStatusChanges", ctx, mock.MatchedBy(func(changes []domain.RosterEntry) bool {
		return len(changes) == 2 &&
			changes[0].Position == 3 && changes[0].Status.Kind == domain.StatusAvailable &&
			changes[1].Position == 1 && changes[1].Status.Kind == domain.StatusNext
	})).Return(nil).Once()

	outcome, err := suite.service.AdvanceQueue(ctx, "Chailai")

	suite.Require().NoError(err)
	suite.True(outcome.Advanced)
	suite.Equal("Anong", outcome.NewNext.StaffName)
}

func (suite *RosterServiceTestSuite) TestAdvanceQueue_SoleEligibleSlotEmptiesQueue() {
	// The slot being advanced past is never re-selected in the same call,
	// even when it is the only eligible slot left.
	ctx := context.Background()
	roster := []domain.RosterEntry{
		entry(1, "Anong", domain.Next()),
		entry(2, "Boonsri", domain.Off()),
	}

	suite.mockRepo.On("ListEntries", ctx, suite.today).Return(roster, nil).Once()
	suite.mockRepo.On("ApplyStatusChanges", ctx, mock.MatchedBy(func(changes []domain.RosterEntry) bool {
		return len(changes) == 1 && changes[0].Position == 1 && changes[0].Status.Kind == domain.StatusAvailable
	})).Return(nil).Once()

	outcome, err := suite.service.AdvanceQueue(ctx, "Anong")

	suite.Require().NoError(err)
	suite.False(outcome.Advanced)
	suite.Nil(outcome.NewNext)
}

func (suite *RosterServiceTestSuite) TestAdvanceQueue_NameMismatchIsNoOp() {
	ctx := context.Background()
	roster := []domain.RosterEntry{
		entry(1, "Anong", domain.Next()),
		entry(2, "Boonsri", domain.Available()),
	}

	suite.mockRepo.On("ListEntries", ctx, suite.today).Return(roster, nil).Once()

	outcome, err := suite.service.AdvanceQueue(ctx, "Boonsri")

	suite.Require().NoError(err)
	suite.False(outcome.Advanced)
	suite.mockRepo.AssertNotCalled(suite.T(), "ApplyStatusChanges", mock.Anything, mock.Anything)
}

func (suite *RosterServiceTestSuite) TestAdvanceQueue_NoNextMarker() {
	ctx := context.Background()
	roster := []domain.RosterEntry{
		entry(1, "Anong", domain.Available()),
	}

	suite.mockRepo.On("ListEntries", ctx, suite.today).Return(roster, nil).Once()

	outcome, err := suite.service.AdvanceQueue(ctx, "Anong")

	suite.Require().NoError(err)
	suite.False(outcome.Advanced)
	suite.Equal("no slot is marked next", outcome.Reason)
}

func (suite *RosterServiceTestSuite) TestSetBusyUntil_ResolvesClockOnToday() {
	ctx := context.Background()
	existing := entry(4, "Duangkamol", domain.Available())

	suite.mockRepo.On("FindEntryByName", ctx, "Duangkamol").Return(&existing, nil).Once()
	suite.mockRepo.On("UpdateEntry", ctx, mock.MatchedBy(func(e domain.RosterEntry) bool {
		if e.Status.Kind != domain.StatusBusyUntil || e.Status.BusyUntil == nil {
			return false
		}
		want := time.Date(2026, 3, 14, 15, 30, 0, 0, suite.loc)
		return e.Status.BusyUntil.Equal(want)
	})).Return(nil).Once()

	updated, err := suite.service.SetBusyUntil(ctx, "Duangkamol", "3:30 PM")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusBusyUntil, updated.Status.Kind)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RosterServiceTestSuite) TestSetBusyUntil_PastClockRollsToNextDay() {
	ctx := context.Background()
	suite.now = time.Date(2026, 3, 14, 23, 50, 0, 0, suite.loc)
	existing := entry(4, "Duangkamol", domain.Available())

	suite.mockRepo.On("FindEntryByName", ctx, "Duangkamol").Return(&existing, nil).Once()
	suite.mockRepo.On("UpdateEntry", ctx, mock.MatchedBy(func(e domain.RosterEntry) bool {
		if e.Status.Kind != domain.StatusBusyUntil || e.Status.BusyUntil == nil {
			return false
		}
		// "00:30" entered at 23:50 anchors to the following day.
		want := time.Date(2026, 3, 15, 0, 30, 0, 0, suite.loc)
		return e.Status.BusyUntil.Equal(want)
	})).Return(nil).Once()

	updated, err := suite.service.SetBusyUntil(ctx, "Duangkamol", "00:30")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusBusyUntil, updated.Status.Kind)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RosterServiceTestSuite) TestSetBusyUntil_RejectsMalformedTime() {
	ctx := context.Background()

	_, err := suite.service.SetBusyUntil(ctx, "Duangkamol", "25:99")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindEntryByName", mock.Anything, mock.Anything)
}

func (suite *RosterServiceTestSuite) TestUpdateSlot_ClearingNameResetsStatus() {
	ctx := context.Background()
	existing := entry(2, "Boonsri", domain.Busy())
	empty := ""

	suite.mockRepo.On("FindEntryByPosition", ctx, 2).Return(&existing, nil).Once()
	suite.mockRepo.On("UpdateEntry", ctx, mock.MatchedBy(func(e domain.RosterEntry) bool {
		return e.StaffName == "" && e.Status.Kind == domain.StatusAvailable
	})).Return(nil).Once()

	updated, err := suite.service.UpdateSlot(ctx, 2, dto.UpdateRosterSlotRequest{StaffName: &empty})

	suite.Require().NoError(err)
	suite.Equal("", updated.StaffName)
	suite.Equal(domain.StatusAvailable, updated.Status.Kind)
}

func (suite *RosterServiceTestSuite) TestUpdateSlot_NextDemotesPreviousHolder() {
	ctx := context.Background()
	target := entry(3, "Chailai", domain.Available())
	roster := []domain.RosterEntry{
		entry(1, "Anong", domain.Next()),
		entry(2, "Boonsri", domain.Available()),
		target,
	}

	suite.mockRepo.On("FindEntryByPosition", ctx, 3).Return(&target, nil).Once()
	suite.mockRepo.On("ListEntries", ctx, suite.today).Return(roster, nil).Once()
	suite.mockRepo.On("ApplyStatusChanges", ctx, mock.MatchedBy(func(changes []domain.RosterEntry) bool {
		return len(changes) == 1 && changes[0].Position == 1 && changes[0].Status.Kind == domain.StatusAvailable
	})).Return(nil).Once()
	suite.mockRepo.On("UpdateEntry", ctx, mock.MatchedBy(func(e domain.RosterEntry) bool {
		return e.Position == 3 && e.Status.Kind == domain.StatusNext
	})).Return(nil).Once()

	updated, err := suite.service.UpdateSlot(ctx, 3, dto.UpdateRosterSlotRequest{
		Status: &dto.RosterStatusRequest{Kind: string(domain.StatusNext)},
	})

	suite.Require().NoError(err)
	suite.Equal(domain.StatusNext, updated.Status.Kind)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RosterServiceTestSuite) TestUpdateSlot_StatusOnEmptySlotRejected() {
	ctx := context.Background()
	existing := entry(5, "", domain.Available())

	suite.mockRepo.On("FindEntryByPosition", ctx, 5).Return(&existing, nil).Once()

	_, err := suite.service.UpdateSlot(ctx, 5, dto.UpdateRosterSlotRequest{
		Status: &dto.RosterStatusRequest{Kind: string(domain.StatusBusy)},
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *RosterServiceTestSuite) TestSeedTemplate_ZeroUsesConfiguredSize() {
	ctx := context.Background()

	suite.mockRepo.On("SeedTemplate", ctx, 10, suite.now).Return(nil).Once()

	err := suite.service.SeedTemplate(ctx, 0)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RosterServiceTestSuite) TestResetForNewDay() {
	ctx := context.Background()

	suite.mockRepo.On("ResetStatuses", ctx, suite.now).Return(4, nil).Once()

	count, err := suite.service.ResetForNewDay(ctx)

	suite.Require().NoError(err)
	suite.Equal(4, count)
}

func TestRosterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RosterServiceTestSuite))
}
