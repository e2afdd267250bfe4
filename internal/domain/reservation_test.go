package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to ReservationStatus
		want     bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusNoShow, false},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusNoShow, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusNoShow, StatusConfirmed, false},
		{StatusCompleted, StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestTerminalStatusesHaveNoExits(t *testing.T) {
	all := []ReservationStatus{StatusPending, StatusConfirmed, StatusCancelled, StatusNoShow, StatusCompleted}

	for _, terminal := range []ReservationStatus{StatusCancelled, StatusNoShow, StatusCompleted} {
		for _, to := range all {
			assert.False(t, CanTransition(terminal, to), "%s must be terminal", terminal)
		}
	}
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("confirmed")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, s)

	_, err = ParseStatus("booked")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestParseActor(t *testing.T) {
	a, err := ParseActor("staff")
	require.NoError(t, err)
	assert.Equal(t, ActorStaff, a)

	_, err = ParseActor("admin")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestInvalidTransitionError_Message(t *testing.T) {
	err := &InvalidTransitionError{From: StatusCancelled, To: StatusConfirmed}

	assert.Equal(t, "invalid status transition from cancelled to confirmed", err.Error())
}

func TestReservation_EndMin(t *testing.T) {
	r := &Reservation{StartMin: 660, DurationMin: 90, BufferMin: 15}

	assert.Equal(t, 765, r.EndMin())
}

func TestShift_Validate(t *testing.T) {
	valid := func() *Shift {
		return &Shift{
			Name:        "lunch",
			Weekdays:    []int{1, 2, 3, 4, 5},
			StartMin:    11 * 60,
			EndMin:      15 * 60,
			SlotMinutes: 90,
		}
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Shift)
	}{
		{"empty name", func(s *Shift) { s.Name = "" }},
		{"no weekdays", func(s *Shift) { s.Weekdays = nil }},
		{"weekday out of range", func(s *Shift) { s.Weekdays = []int{7} }},
		{"negative weekday", func(s *Shift) { s.Weekdays = []int{-1} }},
		{"start after end", func(s *Shift) { s.StartMin, s.EndMin = 900, 660 }},
		{"start equals end", func(s *Shift) { s.EndMin = s.StartMin }},
		{"past midnight", func(s *Shift) { s.EndMin = 25 * 60 }},
		{"zero granularity", func(s *Shift) { s.SlotMinutes = 0 }},
		{"negative buffer", func(s *Shift) { s.BufferMinutes = -5 }},
		{"negative max parallel", func(s *Shift) { s.MaxParallel = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(s)
			err := s.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestResource_Validate(t *testing.T) {
	require.NoError(t, (&Resource{Name: "t1", Capacity: 2}).Validate())

	err := (&Resource{Name: "t1", Capacity: 0}).Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	err = (&Resource{Capacity: 2}).Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}
