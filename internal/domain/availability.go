package domain

// AvailabilityReason explains an empty slot list that is not simply "all
// booked": the party can never fit, or could only fit by combining tables.
type AvailabilityReason string

const (
	ReasonNone                AvailabilityReason = ""
	ReasonPartyTooLarge       AvailabilityReason = "party_too_large"
	ReasonRequiresCombination AvailabilityReason = "requires_combination"
)

// Slot is a computed candidate booking time. Slots are regenerated on every
// availability read and never persisted.
type Slot struct {
	ShiftID       string `json:"shift_id,omitempty"`
	StartMin      int    `json:"start_min"`
	DurationMin   int    `json:"duration_min"`
	Available     bool   `json:"available"`
	FreeResources int    `json:"free_resources"`
}

type Availability struct {
	VenueID        string             `json:"venue_id"`
	Date           string             `json:"date"`
	Slots          []Slot             `json:"slots"`
	TopSuggestions []int              `json:"top_suggestions"` // first available start minutes, chronological
	Reason         AvailabilityReason `json:"reason,omitempty"`
}
