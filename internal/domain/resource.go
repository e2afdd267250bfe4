package domain

import (
	"fmt"
	"time"
)

// Resource is a unit of bookable capacity, typically a table.
type Resource struct {
	ID         string    `json:"id"`
	VenueID    string    `json:"venue_id"`
	Name       string    `json:"name"`
	Capacity   int       `json:"capacity"`
	Combinable bool      `json:"combinable"`
	GroupID    *string   `json:"group_id,omitempty"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (r *Resource) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: resource name is required", ErrValidation)
	}
	if r.Capacity < 1 {
		return fmt.Errorf("%w: resource capacity must be at least 1", ErrValidation)
	}
	return nil
}
