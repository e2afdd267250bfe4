package dto

type CreateVenueRequest struct {
	Name            string `json:"name" binding:"required"`
	Timezone        string `json:"timezone" binding:"required"`
	SlotMinutes     int    `json:"slot_minutes" binding:"required,gt=0"`
	BufferMinutes   int    `json:"buffer_minutes" binding:"gte=0"`
	HoldTTLMinutes  int    `json:"hold_ttl_minutes" binding:"gte=0"`
	Public          *bool  `json:"public"`
}

type CreateShiftRequest struct {
	Name          string `json:"name" binding:"required"`
	Weekdays      []int  `json:"weekdays" binding:"required,min=1,dive,gte=0,lte=6"`
	Start         string `json:"start" binding:"required"` // HH:MM
	End           string `json:"end" binding:"required"`   // HH:MM
	SlotMinutes   int    `json:"slot_minutes" binding:"required,gt=0"`
	BufferMinutes int    `json:"buffer_minutes" binding:"gte=0"`
	MaxParallel   int    `json:"max_parallel" binding:"gte=0"`
}

type CreateResourceRequest struct {
	Name       string  `json:"name" binding:"required"`
	Capacity   int     `json:"capacity" binding:"required,gte=1"`
	Combinable bool    `json:"combinable"`
	GroupID    *string `json:"group_id"`
}

type AdmitRequest struct {
	Date         string `json:"date" binding:"required"` // YYYY-MM-DD
	Time         string `json:"time" binding:"required"` // HH:MM
	ShiftID      string `json:"shift_id"`
	PartySize    int    `json:"party_size" binding:"required,gte=1"`
	GuestName    string `json:"guest_name"`
	GuestContact string `json:"guest_contact"`
}

type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
	Actor  string `json:"actor" binding:"required"`
}
