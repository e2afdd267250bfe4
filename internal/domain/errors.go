package domain

import "errors"

var (
	ErrVenueNotFound       = errors.New("venue not found")
	ErrShiftNotFound       = errors.New("shift not found")
	ErrResourceNotFound    = errors.New("resource not found")
	ErrReservationNotFound = errors.New("reservation not found")
)

var (
	ErrSlotTaken           = errors.New("slot no longer available")
	ErrSlotOutsideShift    = errors.New("requested time is outside the shift window")
	ErrPartyTooLarge       = errors.New("no resource can seat the requested party size")
	ErrRequiresCombination = errors.New("party size requires combining resources, which is not supported")
	ErrActorNotAllowed     = errors.New("actor is not allowed to perform this transition")
	ErrSlotNotFinished     = errors.New("reservation time slot has not finished yet")
)

var (
	ErrValidation = errors.New("validation error")
)
