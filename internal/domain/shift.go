package domain

import (
	"fmt"
	"time"
)

const minutesPerDay = 24 * 60

// Shift is a recurring weekday-scoped service window. Reservations made
// within a shift inherit its granularity as their duration and its buffer
// as turnover time.
type Shift struct {
	ID            string    `json:"id"`
	VenueID       string    `json:"venue_id"`
	Name          string    `json:"name"`
	Weekdays      []int     `json:"weekdays"` // 0=Sunday .. 6=Saturday
	StartMin      int       `json:"start_min"`
	EndMin        int       `json:"end_min"`
	SlotMinutes   int       `json:"slot_minutes"`
	BufferMinutes int       `json:"buffer_minutes"`
	MaxParallel   int       `json:"max_parallel"` // 0 = no throughput cap
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (s *Shift) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: shift name is required", ErrValidation)
	}
	if len(s.Weekdays) == 0 {
		return fmt.Errorf("%w: shift must apply to at least one weekday", ErrValidation)
	}
	for _, d := range s.Weekdays {
		if d < 0 || d > 6 {
			return fmt.Errorf("%w: weekday %d out of range 0..6", ErrValidation, d)
		}
	}
	if s.StartMin < 0 || s.EndMin > minutesPerDay {
		return fmt.Errorf("%w: shift window must fit within a day", ErrValidation)
	}
	if s.StartMin >= s.EndMin {
		return fmt.Errorf("%w: shift start must be before end", ErrValidation)
	}
	if s.SlotMinutes <= 0 {
		return fmt.Errorf("%w: slot granularity must be positive", ErrValidation)
	}
	if s.BufferMinutes < 0 {
		return fmt.Errorf("%w: buffer must not be negative", ErrValidation)
	}
	if s.MaxParallel < 0 {
		return fmt.Errorf("%w: max_parallel must not be negative", ErrValidation)
	}
	return nil
}

func (s *Shift) AppliesOn(day time.Weekday) bool {
	for _, d := range s.Weekdays {
		if d == int(day) {
			return true
		}
	}
	return false
}
