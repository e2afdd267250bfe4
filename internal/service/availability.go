package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sicparvisventures/reserve4you/internal/domain"
	"github.com/sicparvisventures/reserve4you/internal/schedule"
	"github.com/sicparvisventures/reserve4you/internal/service/ports"
)

// topSuggestionLimit caps the "first available times" list returned for UI
// convenience. Order is chronological.
const topSuggestionLimit = 6

type AvailabilityService struct {
	venueRepo       ports.VenueRepo
	shiftRepo       ports.ShiftRepo
	resourceRepo    ports.ResourceRepo
	reservationRepo ports.ReservationRepo
}

func NewAvailabilityService(
	venueRepo ports.VenueRepo,
	shiftRepo ports.ShiftRepo,
	resourceRepo ports.ResourceRepo,
	reservationRepo ports.ReservationRepo,
) *AvailabilityService {
	return &AvailabilityService{
		venueRepo:       venueRepo,
		shiftRepo:       shiftRepo,
		resourceRepo:    resourceRepo,
		reservationRepo: reservationRepo,
	}
}

type AvailabilityQuery struct {
	VenueID   string
	Date      string
	PartySize int
	ShiftID   string // optional filter
}

// ComputeSlots builds the bookable slot list for one venue, date and party
// size. A day without service yields an empty, successful result; a missing
// or non-public venue is an error, so "closed" and "does not exist" stay
// distinguishable.
func (s *AvailabilityService) ComputeSlots(ctx context.Context, q AvailabilityQuery) (*domain.Availability, error) {
	date, err := schedule.ParseDate(q.Date)
	if err != nil {
		return nil, err
	}
	if q.PartySize < 1 {
		return nil, fmt.Errorf("%w: party size must be at least 1", domain.ErrValidation)
	}

	venue, err := s.venueRepo.GetByID(ctx, q.VenueID)
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}
	if !venue.Bookable() {
		return nil, domain.ErrVenueNotFound
	}

	avail := &domain.Availability{
		VenueID:        venue.ID,
		Date:           q.Date,
		Slots:          []domain.Slot{},
		TopSuggestions: []int{},
	}

	shifts, err := s.shiftRepo.ListByVenue(ctx, venue.ID)
	if err != nil {
		return nil, fmt.Errorf("list shifts: %w", err)
	}
	windows, err := windowsFor(venue, shifts, date.Weekday(), q.ShiftID)
	if err != nil {
		return nil, err
	}
	if len(windows) == 0 {
		// No service that day. Valid empty result, not an error.
		return avail, nil
	}

	resources, err := s.resourceRepo.ListByVenue(ctx, venue.ID)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	qualifying := qualifyingResources(resources, q.PartySize)
	if len(qualifying) == 0 {
		avail.Reason = refusalReason(resources, q.PartySize)
		return avail, nil
	}

	reservations, err := s.reservationRepo.ListActiveOn(ctx, venue.ID, q.Date)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	idx := schedule.NewConflictIndex(reservations)

	for _, w := range windows {
		for _, start := range w.Starts() {
			iv := schedule.Interval{Start: start, End: start + w.Duration + w.Buffer}
			free := idx.FreeResources(qualifying, iv)
			if free > 0 && w.MaxParallel > 0 && idx.ShiftOverlaps(w.ShiftID, iv) >= w.MaxParallel {
				free = 0
			}
			avail.Slots = append(avail.Slots, domain.Slot{
				ShiftID:       w.ShiftID,
				StartMin:      start,
				DurationMin:   w.Duration,
				Available:     free > 0,
				FreeResources: free,
			})
		}
	}
	sortSlots(avail.Slots)

	for _, slot := range avail.Slots {
		if !slot.Available {
			continue
		}
		avail.TopSuggestions = append(avail.TopSuggestions, slot.StartMin)
		if len(avail.TopSuggestions) == topSuggestionLimit {
			break
		}
	}

	return avail, nil
}

// windowsFor resolves the generation windows for a date: the venue's shifts
// when it has any, otherwise the degraded fallback grid. An explicit shift
// filter must reference an existing shift.
func windowsFor(venue *domain.Venue, shifts []*domain.Shift, day time.Weekday, shiftID string) ([]schedule.Window, error) {
	if len(shifts) == 0 {
		if shiftID != "" {
			return nil, domain.ErrShiftNotFound
		}
		return []schedule.Window{schedule.FallbackWindow(venue)}, nil
	}

	if shiftID != "" {
		filtered := shifts[:0:0]
		for _, sh := range shifts {
			if sh.ID == shiftID {
				filtered = append(filtered, sh)
			}
		}
		if len(filtered) == 0 {
			return nil, domain.ErrShiftNotFound
		}
		shifts = filtered
	}

	return schedule.WindowsForDate(shifts, day), nil
}

func sortSlots(slots []domain.Slot) {
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].StartMin < slots[j].StartMin
	})
}

func qualifyingResources(resources []*domain.Resource, partySize int) []*domain.Resource {
	var out []*domain.Resource
	for _, r := range resources {
		if r.Active && r.Capacity >= partySize {
			out = append(out, r)
		}
	}
	return out
}

// refusalReason distinguishes "could seat them on combined tables" from
// "can never seat them". Combination is reported, never attempted.
func refusalReason(resources []*domain.Resource, partySize int) domain.AvailabilityReason {
	if schedule.CombinedCapacity(resources) >= partySize {
		return domain.ReasonRequiresCombination
	}
	return domain.ReasonPartyTooLarge
}
