package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sicparvisventures/reserve4you/internal/clock"
	"github.com/sicparvisventures/reserve4you/internal/domain"
	"github.com/sicparvisventures/reserve4you/internal/schedule"
	"github.com/sicparvisventures/reserve4you/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type reservationDeps struct {
	reservationRepo *mocks.MockReservationRepo
	venueRepo       *mocks.MockVenueRepo
	shiftRepo       *mocks.MockShiftRepo
	resourceRepo    *mocks.MockResourceRepo
	events          *mocks.MockReservationEvents
}

func newReservationService(t *testing.T, clk clock.Clock) (reservationDeps, *ReservationService) {
	t.Helper()
	d := reservationDeps{
		reservationRepo: mocks.NewMockReservationRepo(t),
		venueRepo:       mocks.NewMockVenueRepo(t),
		shiftRepo:       mocks.NewMockShiftRepo(t),
		resourceRepo:    mocks.NewMockResourceRepo(t),
		events:          mocks.NewMockReservationEvents(t),
	}
	svc := NewReservationService(d.reservationRepo, d.venueRepo, d.shiftRepo, d.resourceRepo, d.events, clk, newTestLogger(t))
	return d, svc
}

func validAdmit() AdmitInput {
	return AdmitInput{
		VenueID:   "v1",
		Date:      friday,
		StartMin:  750, // 12:30
		ShiftID:   "s-lunch",
		PartySize: 2,
		GuestName: "Alice",
	}
}

func TestReservationService_Admit_Success(t *testing.T) {
	d, svc := newReservationService(t, clock.NewSystem())

	d.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)
	d.shiftRepo.EXPECT().ListByVenue(mock.Anything, "v1").Return([]*domain.Shift{lunchShift()}, nil)
	d.resourceRepo.EXPECT().ListByVenue(mock.Anything, "v1").Return([]*domain.Resource{
		{ID: "t1", Capacity: 4, Active: true},
	}, nil)
	d.reservationRepo.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything, 0).Return(nil)
	d.events.EXPECT().ReservationAdmitted(mock.Anything, mock.Anything).Return()

	r, err := svc.Admit(context.Background(), validAdmit())

	require.NoError(t, err)
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, domain.StatusPending, r.Status)
	assert.Equal(t, "s-lunch", r.ShiftID)
	assert.Equal(t, 750, r.StartMin)
	assert.Equal(t, 90, r.DurationMin, "duration copied from the shift")
	assert.Equal(t, 2, r.PartySize)

	time.Sleep(50 * time.Millisecond) // goroutine publish
}

func TestReservationService_Admit_MisalignedStart(t *testing.T) {
	d, svc := newReservationService(t, clock.NewSystem())

	d.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)
	d.shiftRepo.EXPECT().ListByVenue(mock.Anything, "v1").Return([]*domain.Shift{lunchShift()}, nil)

	in := validAdmit()
	in.StartMin = 760 // not on the 90-minute grid

	_, err := svc.Admit(context.Background(), in)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotOutsideShift)
}

func TestReservationService_Admit_OutsideShiftWindow(t *testing.T) {
	d, svc := newReservationService(t, clock.NewSystem())

	d.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)
	d.shiftRepo.EXPECT().ListByVenue(mock.Anything, "v1").Return([]*domain.Shift{lunchShift()}, nil)

	in := validAdmit()
	in.StartMin = 16 * 60 // after close

	_, err := svc.Admit(context.Background(), in)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotOutsideShift)
}

func TestReservationService_Admit_ShiftNotOnWeekday(t *testing.T) {
	d, svc := newReservationService(t, clock.NewSystem())

	d.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)
	d.shiftRepo.EXPECT().ListByVenue(mock.Anything, "v1").Return([]*domain.Shift{lunchShift()}, nil)

	in := validAdmit()
	in.Date = "2025-06-15" // Sunday

	_, err := svc.Admit(context.Background(), in)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotOutsideShift)
}

func TestReservationService_Admit_UnknownShift(t *testing.T) {
	d, svc := newReservationService(t, clock.NewSystem())

	d.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)
	d.shiftRepo.EXPECT().ListByVenue(mock.Anything, "v1").Return([]*domain.Shift{lunchShift()}, nil)

	in := validAdmit()
	in.ShiftID = "nope"

	_, err := svc.Admit(context.Background(), in)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrShiftNotFound)
}

func TestReservationService_Admit_PartyTooLarge(t *testing.T) {
	d, svc := newReservationService(t, clock.NewSystem())

	d.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)
	d.shiftRepo.EXPECT().ListByVenue(mock.Anything, "v1").Return([]*domain.Shift{lunchShift()}, nil)
	d.resourceRepo.EXPECT().ListByVenue(mock.Anything, "v1").Return([]*domain.Resource{
		{ID: "t1", Capacity: 4, Active: true},
	}, nil)

	in := validAdmit()
	in.PartySize = 8

	_, err := svc.Admit(context.Background(), in)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPartyTooLarge)
}

func TestReservationService_Admit_RequiresCombination(t *testing.T) {
	d, svc := newReservationService(t, clock.NewSystem())

	d.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)
	d.shiftRepo.EXPECT().ListByVenue(mock.Anything, "v1").Return([]*domain.Shift{lunchShift()}, nil)
	d.resourceRepo.EXPECT().ListByVenue(mock.Anything, "v1").Return([]*domain.Resource{
		{ID: "t1", Capacity: 4, Active: true, Combinable: true, GroupID: strPtr("patio")},
		{ID: "t2", Capacity: 4, Active: true, Combinable: true, GroupID: strPtr("patio")},
	}, nil)

	in := validAdmit()
	in.PartySize = 6

	_, err := svc.Admit(context.Background(), in)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRequiresCombination)
}

func TestReservationService_Admit_SlotTaken(t *testing.T) {
	d, svc := newReservationService(t, clock.NewSystem())

	d.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)
	d.shiftRepo.EXPECT().ListByVenue(mock.Anything, "v1").Return([]*domain.Shift{lunchShift()}, nil)
	d.resourceRepo.EXPECT().ListByVenue(mock.Anything, "v1").Return([]*domain.Resource{
		{ID: "t1", Capacity: 4, Active: true},
	}, nil)
	d.reservationRepo.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything, 0).Return(domain.ErrSlotTaken)

	_, err := svc.Admit(context.Background(), validAdmit())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotTaken)
}

func TestReservationService_Admit_FallbackGridWithoutShift(t *testing.T) {
	d, svc := newReservationService(t, clock.NewSystem())

	d.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)
	d.shiftRepo.EXPECT().ListByVenue(mock.Anything, "v1").Return(nil, nil)
	d.resourceRepo.EXPECT().ListByVenue(mock.Anything, "v1").Return([]*domain.Resource{
		{ID: "t1", Capacity: 4, Active: true},
	}, nil)
	d.reservationRepo.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything, 0).Return(nil)
	d.events.EXPECT().ReservationAdmitted(mock.Anything, mock.Anything).Return()

	in := validAdmit()
	in.ShiftID = ""
	in.StartMin = 19 * 60

	r, err := svc.Admit(context.Background(), in)

	require.NoError(t, err)
	assert.Empty(t, r.ShiftID)
	assert.Equal(t, 120, r.DurationMin, "fallback assumes a 2-hour seating")

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Admit_ShiftRequiredWhenConfigured(t *testing.T) {
	d, svc := newReservationService(t, clock.NewSystem())

	d.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)
	d.shiftRepo.EXPECT().ListByVenue(mock.Anything, "v1").Return([]*domain.Shift{lunchShift()}, nil)

	in := validAdmit()
	in.ShiftID = ""

	_, err := svc.Admit(context.Background(), in)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// Concurrent admissions race for the same slot through a repo fake that
// serializes Create calls the way the database transaction does. Exactly
// one must win.
func TestReservationService_Admit_ConcurrentSingleWinner(t *testing.T) {
	const attempts = 10

	var (
		mu    sync.Mutex
		taken bool
		wins  int
	)

	d, svc := newReservationService(t, clock.NewSystem())

	d.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil).Times(attempts)
	d.shiftRepo.EXPECT().ListByVenue(mock.Anything, "v1").Return([]*domain.Shift{lunchShift()}, nil).Times(attempts)
	d.resourceRepo.EXPECT().ListByVenue(mock.Anything, "v1").Return([]*domain.Resource{
		{ID: "t1", Capacity: 4, Active: true},
	}, nil).Times(attempts)
	d.reservationRepo.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything, 0).
		RunAndReturn(func(context.Context, *domain.Reservation, []*domain.Resource, int) error {
			mu.Lock()
			defer mu.Unlock()
			if taken {
				return domain.ErrSlotTaken
			}
			taken = true
			return nil
		}).Times(attempts)
	d.events.EXPECT().ReservationAdmitted(mock.Anything, mock.Anything).Return().Once()

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Admit(context.Background(), validAdmit()); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			} else {
				assert.ErrorIs(t, err, domain.ErrSlotTaken)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Transition_ConfirmPending(t *testing.T) {
	d, svc := newReservationService(t, clock.NewSystem())

	r := &domain.Reservation{ID: "r1", VenueID: "v1", Status: domain.StatusPending}
	d.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(r, nil)
	d.reservationRepo.EXPECT().UpdateStatus(mock.Anything, "r1", domain.StatusPending, domain.StatusConfirmed).Return(nil)
	d.events.EXPECT().ReservationStatusChanged(mock.Anything, mock.Anything, domain.StatusPending).Return()

	got, err := svc.Transition(context.Background(), "r1", domain.StatusConfirmed, domain.ActorStaff)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, got.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Transition_ConsumerMayOnlyCancel(t *testing.T) {
	d, svc := newReservationService(t, clock.NewSystem())

	r := &domain.Reservation{ID: "r1", Status: domain.StatusPending}
	d.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(r, nil)

	_, err := svc.Transition(context.Background(), "r1", domain.StatusConfirmed, domain.ActorConsumer)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrActorNotAllowed)
}

func TestReservationService_Transition_ConsumerCancel(t *testing.T) {
	d, svc := newReservationService(t, clock.NewSystem())

	r := &domain.Reservation{ID: "r1", Status: domain.StatusConfirmed}
	d.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(r, nil)
	d.reservationRepo.EXPECT().UpdateStatus(mock.Anything, "r1", domain.StatusConfirmed, domain.StatusCancelled).Return(nil)
	d.events.EXPECT().ReservationStatusChanged(mock.Anything, mock.Anything, domain.StatusConfirmed).Return()

	got, err := svc.Transition(context.Background(), "r1", domain.StatusCancelled, domain.ActorConsumer)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, got.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Transition_IllegalLeavesUntouched(t *testing.T) {
	d, svc := newReservationService(t, clock.NewSystem())

	r := &domain.Reservation{ID: "r1", Status: domain.StatusCancelled}
	d.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(r, nil)

	_, err := svc.Transition(context.Background(), "r1", domain.StatusConfirmed, domain.ActorStaff)

	require.Error(t, err)
	var invalid *domain.InvalidTransitionError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, domain.StatusCancelled, invalid.From)
	assert.Equal(t, domain.StatusConfirmed, invalid.To)
}

func TestReservationService_Transition_NoShowBeforeSlotEnds(t *testing.T) {
	// Fixed clock at noon UTC on the reservation date; the 12:30 seating has
	// not finished yet.
	day, err := time.Parse(schedule.DateLayout, friday)
	require.NoError(t, err)
	d, svc := newReservationService(t, clock.NewFixed(day.Add(12*time.Hour)))

	r := &domain.Reservation{
		ID: "r1", VenueID: "v1", Date: friday,
		StartMin: 750, DurationMin: 90,
		Status: domain.StatusConfirmed,
	}
	d.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(r, nil)
	d.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)

	_, err = svc.Transition(context.Background(), "r1", domain.StatusNoShow, domain.ActorStaff)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotNotFinished)
}

func TestReservationService_Transition_CompleteAfterSlotEnds(t *testing.T) {
	day, err := time.Parse(schedule.DateLayout, friday)
	require.NoError(t, err)
	d, svc := newReservationService(t, clock.NewFixed(day.Add(15*time.Hour)))

	r := &domain.Reservation{
		ID: "r1", VenueID: "v1", Date: friday,
		StartMin: 750, DurationMin: 90,
		Status: domain.StatusConfirmed,
	}
	d.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(r, nil)
	d.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)
	d.reservationRepo.EXPECT().UpdateStatus(mock.Anything, "r1", domain.StatusConfirmed, domain.StatusCompleted).Return(nil)
	d.events.EXPECT().ReservationStatusChanged(mock.Anything, mock.Anything, domain.StatusConfirmed).Return()

	got, err := svc.Transition(context.Background(), "r1", domain.StatusCompleted, domain.ActorStaff)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, got.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Transition_NotFound(t *testing.T) {
	d, svc := newReservationService(t, clock.NewSystem())

	d.reservationRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrReservationNotFound)

	_, err := svc.Transition(context.Background(), "missing", domain.StatusCancelled, domain.ActorStaff)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestReservationService_CancelStalePending(t *testing.T) {
	d, svc := newReservationService(t, clock.NewSystem())

	stale := []*domain.Reservation{
		{ID: "r1", Status: domain.StatusCancelled},
		{ID: "r2", Status: domain.StatusCancelled},
	}
	d.reservationRepo.EXPECT().CancelStalePending(mock.Anything).Return(stale, nil)
	d.events.EXPECT().ReservationStatusChanged(mock.Anything, mock.Anything, domain.StatusPending).Return().Twice()

	got, err := svc.CancelStalePending(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_CancelStalePending_NoneIsQuiet(t *testing.T) {
	d, svc := newReservationService(t, clock.NewSystem())

	d.reservationRepo.EXPECT().CancelStalePending(mock.Anything).Return(nil, nil)

	got, err := svc.CancelStalePending(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReservationService_ListOn_ValidatesDate(t *testing.T) {
	_, svc := newReservationService(t, clock.NewSystem())

	_, err := svc.ListOn(context.Background(), "v1", "not-a-date")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
