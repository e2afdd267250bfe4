package domain

import (
	"fmt"
	"time"
)

type Venue struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Timezone      string        `json:"timezone"`
	SlotMinutes   int           `json:"slot_minutes"`
	BufferMinutes int           `json:"buffer_minutes"`
	HoldTTL       time.Duration `json:"hold_ttl"`
	Active        bool          `json:"active"`
	Public        bool          `json:"public"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// Location resolves the venue's operating timezone.
func (v *Venue) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(v.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q", ErrValidation, v.Timezone)
	}
	return loc, nil
}

// Bookable reports whether consumers may see and book this venue.
// A hidden or deactivated venue is treated as absent, never as an
// empty availability result.
func (v *Venue) Bookable() bool {
	return v.Active && v.Public
}

type CreateVenueInput struct {
	Name          string
	Timezone      string
	SlotMinutes   int
	BufferMinutes int
	HoldTTL       time.Duration
	Public        *bool
}

func (in CreateVenueInput) Validate() error {
	if in.Name == "" {
		return fmt.Errorf("%w: venue name is required", ErrValidation)
	}
	if _, err := time.LoadLocation(in.Timezone); err != nil {
		return fmt.Errorf("%w: unknown timezone %q", ErrValidation, in.Timezone)
	}
	if in.SlotMinutes <= 0 {
		return fmt.Errorf("%w: slot_minutes must be positive", ErrValidation)
	}
	if in.BufferMinutes < 0 {
		return fmt.Errorf("%w: buffer_minutes must not be negative", ErrValidation)
	}
	if in.HoldTTL < 0 {
		return fmt.Errorf("%w: hold_ttl must not be negative", ErrValidation)
	}
	return nil
}
