package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/sicparvisventures/reserve4you/internal/clock"
	"github.com/sicparvisventures/reserve4you/internal/domain"
	"github.com/sicparvisventures/reserve4you/internal/schedule"
	"github.com/sicparvisventures/reserve4you/internal/service/ports"
)

type ReservationService struct {
	reservationRepo ports.ReservationRepo
	venueRepo       ports.VenueRepo
	shiftRepo       ports.ShiftRepo
	resourceRepo    ports.ResourceRepo
	events          ports.ReservationEvents
	clock           clock.Clock
	logger          logger.Logger
}

func NewReservationService(
	reservationRepo ports.ReservationRepo,
	venueRepo ports.VenueRepo,
	shiftRepo ports.ShiftRepo,
	resourceRepo ports.ResourceRepo,
	events ports.ReservationEvents,
	clk clock.Clock,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		venueRepo:       venueRepo,
		shiftRepo:       shiftRepo,
		resourceRepo:    resourceRepo,
		events:          events,
		clock:           clk,
		logger:          logger,
	}
}

type AdmitInput struct {
	VenueID      string
	Date         string
	StartMin     int
	ShiftID      string
	PartySize    int
	GuestName    string
	GuestContact string
}

// Admit re-validates the chosen slot against current data and commits the
// reservation atomically. Resource selection and the conflict re-check run
// inside the repository transaction, so concurrent admissions for the same
// slot end with exactly one winner; losers get domain.ErrSlotTaken and the
// caller is expected to re-query availability.
func (s *ReservationService) Admit(ctx context.Context, in AdmitInput) (*domain.Reservation, error) {
	date, err := schedule.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}
	if in.PartySize < 1 {
		return nil, fmt.Errorf("%w: party size must be at least 1", domain.ErrValidation)
	}

	venue, err := s.venueRepo.GetByID(ctx, in.VenueID)
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}
	if !venue.Bookable() {
		return nil, domain.ErrVenueNotFound
	}

	window, err := s.admissionWindow(ctx, venue, in.ShiftID, date.Weekday())
	if err != nil {
		return nil, err
	}
	if !window.Contains(in.StartMin) {
		return nil, domain.ErrSlotOutsideShift
	}

	resources, err := s.resourceRepo.ListByVenue(ctx, venue.ID)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	qualifying := qualifyingResources(resources, in.PartySize)
	if len(qualifying) == 0 {
		if refusalReason(resources, in.PartySize) == domain.ReasonRequiresCombination {
			return nil, domain.ErrRequiresCombination
		}
		return nil, domain.ErrPartyTooLarge
	}

	now := s.clock.Now()
	r := &domain.Reservation{
		ID:           uuid.New().String(),
		VenueID:      venue.ID,
		ShiftID:      window.ShiftID,
		Date:         in.Date,
		StartMin:     in.StartMin,
		DurationMin:  window.Duration,
		BufferMin:    window.Buffer,
		PartySize:    in.PartySize,
		GuestName:    in.GuestName,
		GuestContact: in.GuestContact,
		Status:       domain.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err = s.reservationRepo.Create(ctx, r, qualifying, window.MaxParallel); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.logger.Info("reservation admitted",
		logger.String("reservation_id", r.ID),
		logger.String("venue_id", r.VenueID),
		logger.String("date", r.Date),
		logger.String("time", schedule.FormatClock(r.StartMin)),
		logger.Int("party_size", r.PartySize),
	)

	go s.events.ReservationAdmitted(context.WithoutCancel(ctx), r)

	return r, nil
}

// admissionWindow resolves the window the chosen slot must belong to: the
// named shift when the venue has shifts, the fallback grid otherwise.
func (s *ReservationService) admissionWindow(ctx context.Context, venue *domain.Venue, shiftID string, day time.Weekday) (schedule.Window, error) {
	shifts, err := s.shiftRepo.ListByVenue(ctx, venue.ID)
	if err != nil {
		return schedule.Window{}, fmt.Errorf("list shifts: %w", err)
	}
	if len(shifts) == 0 {
		if shiftID != "" {
			return schedule.Window{}, domain.ErrShiftNotFound
		}
		return schedule.FallbackWindow(venue), nil
	}
	if shiftID == "" {
		return schedule.Window{}, fmt.Errorf("%w: shift_id is required", domain.ErrValidation)
	}
	for _, sh := range shifts {
		if sh.ID != shiftID {
			continue
		}
		if !sh.AppliesOn(day) {
			return schedule.Window{}, domain.ErrSlotOutsideShift
		}
		windows := schedule.WindowsForDate([]*domain.Shift{sh}, day)
		return windows[0], nil
	}
	return schedule.Window{}, domain.ErrShiftNotFound
}

// Transition applies a lifecycle change. Illegal transitions fail with
// InvalidTransitionError and leave the reservation untouched; consumers may
// only cancel; no-show and completion are staff actions after the slot ends.
func (s *ReservationService) Transition(ctx context.Context, id string, target domain.ReservationStatus, actor domain.Actor) (*domain.Reservation, error) {
	r, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	if actor == domain.ActorConsumer && target != domain.StatusCancelled {
		return nil, domain.ErrActorNotAllowed
	}
	if !domain.CanTransition(r.Status, target) {
		return nil, &domain.InvalidTransitionError{From: r.Status, To: target}
	}
	if target == domain.StatusNoShow || target == domain.StatusCompleted {
		if err = s.ensureSlotFinished(ctx, r); err != nil {
			return nil, err
		}
	}

	from := r.Status
	if err = s.reservationRepo.UpdateStatus(ctx, id, from, target); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	r.Status = target
	r.UpdatedAt = s.clock.Now()

	s.logger.Info("reservation status changed",
		logger.String("reservation_id", r.ID),
		logger.String("from", string(from)),
		logger.String("to", string(target)),
		logger.String("actor", string(actor)),
	)

	go s.events.ReservationStatusChanged(context.WithoutCancel(ctx), r, from)

	return r, nil
}

func (s *ReservationService) ensureSlotFinished(ctx context.Context, r *domain.Reservation) error {
	venue, err := s.venueRepo.GetByID(ctx, r.VenueID)
	if err != nil {
		return fmt.Errorf("get venue: %w", err)
	}
	loc, err := venue.Location()
	if err != nil {
		return err
	}
	day, err := time.ParseInLocation(schedule.DateLayout, r.Date, loc)
	if err != nil {
		return fmt.Errorf("%w: invalid reservation date %q", domain.ErrValidation, r.Date)
	}
	slotEnd := day.Add(time.Duration(r.StartMin+r.DurationMin) * time.Minute)
	if s.clock.Now().Before(slotEnd) {
		return domain.ErrSlotNotFinished
	}
	return nil
}

func (s *ReservationService) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.reservationRepo.GetByID(ctx, id)
}

func (s *ReservationService) ListOn(ctx context.Context, venueID, date string) ([]*domain.Reservation, error) {
	if _, err := schedule.ParseDate(date); err != nil {
		return nil, err
	}
	if _, err := s.venueRepo.GetByID(ctx, venueID); err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}
	return s.reservationRepo.ListOn(ctx, venueID, date)
}

// CancelStalePending releases pending reservations whose venue hold TTL has
// lapsed without confirmation. Called periodically by the scheduler; freed
// intervals disappear from availability on the next read.
func (s *ReservationService) CancelStalePending(ctx context.Context) ([]*domain.Reservation, error) {
	cancelled, err := s.reservationRepo.CancelStalePending(ctx)
	if err != nil {
		return nil, fmt.Errorf("cancel stale pending: %w", err)
	}

	if len(cancelled) > 0 {
		s.logger.Info("stale pending reservations cancelled",
			logger.Int("count", len(cancelled)),
		)
		go s.notifyCancelled(context.WithoutCancel(ctx), cancelled)
	}

	return cancelled, nil
}

func (s *ReservationService) notifyCancelled(ctx context.Context, cancelled []*domain.Reservation) {
	for _, r := range cancelled {
		s.events.ReservationStatusChanged(ctx, r, domain.StatusPending)
	}
}
