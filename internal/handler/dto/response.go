package dto

import (
	"time"

	"github.com/sicparvisventures/reserve4you/internal/domain"
	"github.com/sicparvisventures/reserve4you/internal/schedule"
)

type VenueResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Timezone       string `json:"timezone"`
	SlotMinutes    int    `json:"slot_minutes"`
	BufferMinutes  int    `json:"buffer_minutes"`
	HoldTTLMinutes int    `json:"hold_ttl_minutes"`
	Active         bool   `json:"active"`
	Public         bool   `json:"public"`
	CreatedAt      string `json:"created_at"`
}

type ShiftResponse struct {
	ID            string `json:"id"`
	VenueID       string `json:"venue_id"`
	Name          string `json:"name"`
	Weekdays      []int  `json:"weekdays"`
	Start         string `json:"start"`
	End           string `json:"end"`
	SlotMinutes   int    `json:"slot_minutes"`
	BufferMinutes int    `json:"buffer_minutes"`
	MaxParallel   int    `json:"max_parallel,omitempty"`
}

type ResourceResponse struct {
	ID         string  `json:"id"`
	VenueID    string  `json:"venue_id"`
	Name       string  `json:"name"`
	Capacity   int     `json:"capacity"`
	Combinable bool    `json:"combinable"`
	GroupID    *string `json:"group_id,omitempty"`
	Active     bool    `json:"active"`
}

type SlotResponse struct {
	Time            string `json:"time"`
	ShiftID         string `json:"shift_id,omitempty"`
	DurationMinutes int    `json:"duration_minutes"`
	Available       bool   `json:"available"`
	FreeResources   int    `json:"free_resources"`
}

type AvailabilityResponse struct {
	VenueID        string         `json:"venue_id"`
	Date           string         `json:"date"`
	Slots          []SlotResponse `json:"slots"`
	TopSuggestions []string       `json:"top_suggestions"`
	Reason         string         `json:"reason,omitempty"`
}

type ReservationResponse struct {
	ID           string  `json:"id"`
	VenueID      string  `json:"venue_id"`
	ShiftID      string  `json:"shift_id,omitempty"`
	ResourceID   *string `json:"resource_id,omitempty"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	DurationMin  int     `json:"duration_minutes"`
	PartySize    int     `json:"party_size"`
	GuestName    string  `json:"guest_name,omitempty"`
	GuestContact string  `json:"guest_contact,omitempty"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToVenueResponse(v *domain.Venue) VenueResponse {
	return VenueResponse{
		ID:             v.ID,
		Name:           v.Name,
		Timezone:       v.Timezone,
		SlotMinutes:    v.SlotMinutes,
		BufferMinutes:  v.BufferMinutes,
		HoldTTLMinutes: int(v.HoldTTL / time.Minute),
		Active:         v.Active,
		Public:         v.Public,
		CreatedAt:      v.CreatedAt.Format(time.RFC3339),
	}
}

func ToShiftResponse(s *domain.Shift) ShiftResponse {
	return ShiftResponse{
		ID:            s.ID,
		VenueID:       s.VenueID,
		Name:          s.Name,
		Weekdays:      s.Weekdays,
		Start:         schedule.FormatClock(s.StartMin),
		End:           schedule.FormatClock(s.EndMin),
		SlotMinutes:   s.SlotMinutes,
		BufferMinutes: s.BufferMinutes,
		MaxParallel:   s.MaxParallel,
	}
}

func ToResourceResponse(r *domain.Resource) ResourceResponse {
	return ResourceResponse{
		ID:         r.ID,
		VenueID:    r.VenueID,
		Name:       r.Name,
		Capacity:   r.Capacity,
		Combinable: r.Combinable,
		GroupID:    r.GroupID,
		Active:     r.Active,
	}
}

func ToAvailabilityResponse(a *domain.Availability) AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(a.Slots))
	for _, s := range a.Slots {
		slots = append(slots, SlotResponse{
			Time:            schedule.FormatClock(s.StartMin),
			ShiftID:         s.ShiftID,
			DurationMinutes: s.DurationMin,
			Available:       s.Available,
			FreeResources:   s.FreeResources,
		})
	}

	top := make([]string, 0, len(a.TopSuggestions))
	for _, min := range a.TopSuggestions {
		top = append(top, schedule.FormatClock(min))
	}

	return AvailabilityResponse{
		VenueID:        a.VenueID,
		Date:           a.Date,
		Slots:          slots,
		TopSuggestions: top,
		Reason:         string(a.Reason),
	}
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:           r.ID,
		VenueID:      r.VenueID,
		ShiftID:      r.ShiftID,
		ResourceID:   r.ResourceID,
		Date:         r.Date,
		Time:         schedule.FormatClock(r.StartMin),
		DurationMin:  r.DurationMin,
		PartySize:    r.PartySize,
		GuestName:    r.GuestName,
		GuestContact: r.GuestContact,
		Status:       string(r.Status),
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
	}
}
