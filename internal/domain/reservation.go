package domain

import (
	"fmt"
	"time"
)

type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusNoShow    ReservationStatus = "no_show"
	StatusCompleted ReservationStatus = "completed"
)

// ActiveStatuses are the statuses that occupy a resource. Reservations in
// any other status never count against availability.
var ActiveStatuses = []ReservationStatus{StatusPending, StatusConfirmed}

func ParseStatus(s string) (ReservationStatus, error) {
	switch ReservationStatus(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusNoShow, StatusCompleted:
		return ReservationStatus(s), nil
	}
	return "", fmt.Errorf("%w: unknown reservation status %q", ErrValidation, s)
}

type Actor string

const (
	ActorConsumer Actor = "consumer"
	ActorStaff    Actor = "staff"
)

func ParseActor(s string) (Actor, error) {
	switch Actor(s) {
	case ActorConsumer, ActorStaff:
		return Actor(s), nil
	}
	return "", fmt.Errorf("%w: unknown actor %q", ErrValidation, s)
}

// transitions is the legal lifecycle graph. Anything absent is illegal;
// terminal statuses have no outgoing edges.
var transitions = map[ReservationStatus][]ReservationStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusNoShow, StatusCompleted},
}

func CanTransition(from, to ReservationStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// InvalidTransitionError names the attempted source/target pair of an
// illegal lifecycle change. The reservation is left untouched.
type InvalidTransitionError struct {
	From ReservationStatus
	To   ReservationStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

// Reservation occupies exactly one resource for
// [StartMin, StartMin+DurationMin+BufferMin) on Date. Duration and buffer
// are copied from the owning shift at admission so the occupied interval
// stays stable even if the shift is later reconfigured.
type Reservation struct {
	ID           string            `json:"id"`
	VenueID      string            `json:"venue_id"`
	ShiftID      string            `json:"shift_id,omitempty"` // empty for fallback-grid bookings
	ResourceID   *string           `json:"resource_id,omitempty"`
	Date         string            `json:"date"` // 2006-01-02
	StartMin     int               `json:"start_min"`
	DurationMin  int               `json:"duration_min"`
	BufferMin    int               `json:"buffer_min"`
	PartySize    int               `json:"party_size"`
	GuestName    string            `json:"guest_name,omitempty"`
	GuestContact string            `json:"guest_contact,omitempty"`
	Status       ReservationStatus `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// EndMin is the last occupied minute including turnover buffer.
func (r *Reservation) EndMin() int {
	return r.StartMin + r.DurationMin + r.BufferMin
}
