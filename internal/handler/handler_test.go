package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sicparvisventures/reserve4you/internal/domain"
	"github.com/sicparvisventures/reserve4you/internal/handler/dto"
	hmocks "github.com/sicparvisventures/reserve4you/internal/handler/mocks"
	"github.com/sicparvisventures/reserve4you/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockAvailabilitySvc, *hmocks.MockReservationSvc, *hmocks.MockVenueSvc, http.Handler) {
	t.Helper()
	availabilitySvc := hmocks.NewMockAvailabilitySvc(t)
	reservationSvc := hmocks.NewMockReservationSvc(t)
	venueSvc := hmocks.NewMockVenueSvc(t)

	h := NewHandler(availabilitySvc, reservationSvc, venueSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/venues", h.CreateVenue)
		api.GET("/venues", h.ListVenues)
		api.GET("/venues/:id", h.GetVenue)
		api.POST("/venues/:id/shifts", h.CreateShift)
		api.GET("/venues/:id/shifts", h.ListShifts)
		api.POST("/venues/:id/resources", h.CreateResource)
		api.GET("/venues/:id/resources", h.ListResources)
		api.GET("/venues/:id/availability", h.GetAvailability)
		api.POST("/venues/:id/reservations", h.AdmitReservation)
		api.GET("/venues/:id/reservations", h.ListReservations)
		api.GET("/reservations/:id", h.GetReservation)
		api.POST("/reservations/:id/transition", h.TransitionReservation)
	}

	return availabilitySvc, reservationSvc, venueSvc, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Availability ---

func TestHandler_GetAvailability_Success(t *testing.T) {
	availabilitySvc, _, _, r := setupRouter(t)

	venueID := uuid.New().String()
	availabilitySvc.EXPECT().ComputeSlots(mock.Anything, service.AvailabilityQuery{
		VenueID:   venueID,
		Date:      "2025-06-13",
		PartySize: 2,
	}).Return(&domain.Availability{
		VenueID: venueID,
		Date:    "2025-06-13",
		Slots: []domain.Slot{
			{ShiftID: "s1", StartMin: 660, DurationMin: 90, Available: true, FreeResources: 3},
			{ShiftID: "s1", StartMin: 750, DurationMin: 90, Available: false},
		},
		TopSuggestions: []int{660},
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/venues/"+venueID+"/availability?date=2025-06-13&party_size=2", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "11:00", resp.Slots[0].Time)
	assert.True(t, resp.Slots[0].Available)
	assert.Equal(t, "12:30", resp.Slots[1].Time)
	assert.Equal(t, []string{"11:00"}, resp.TopSuggestions)
}

func TestHandler_GetAvailability_InvalidVenueID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/venues/not-a-uuid/availability?date=2025-06-13&party_size=2", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetAvailability_MissingPartySize(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/venues/"+uuid.New().String()+"/availability?date=2025-06-13", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetAvailability_VenueNotFound(t *testing.T) {
	availabilitySvc, _, _, r := setupRouter(t)

	venueID := uuid.New().String()
	availabilitySvc.EXPECT().ComputeSlots(mock.Anything, mock.Anything).Return(nil, domain.ErrVenueNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/venues/"+venueID+"/availability?date=2025-06-13&party_size=2", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Reservations ---

func admittedReservation(venueID string) *domain.Reservation {
	return &domain.Reservation{
		ID:          uuid.New().String(),
		VenueID:     venueID,
		ShiftID:     "s1",
		Date:        "2025-06-13",
		StartMin:    750,
		DurationMin: 90,
		PartySize:   2,
		GuestName:   "Alice",
		Status:      domain.StatusPending,
		CreatedAt:   time.Now(),
	}
}

func TestHandler_AdmitReservation_Success(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	venueID := uuid.New().String()
	reservationSvc.EXPECT().Admit(mock.Anything, service.AdmitInput{
		VenueID:   venueID,
		Date:      "2025-06-13",
		StartMin:  750,
		ShiftID:   "s1",
		PartySize: 2,
		GuestName: "Alice",
	}).Return(admittedReservation(venueID), nil)

	w := doJSON(t, r, http.MethodPost, "/api/venues/"+venueID+"/reservations", dto.AdmitRequest{
		Date:      "2025-06-13",
		Time:      "12:30",
		ShiftID:   "s1",
		PartySize: 2,
		GuestName: "Alice",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "12:30", resp.Time)
	assert.Equal(t, "pending", resp.Status)
}

func TestHandler_AdmitReservation_BadTime(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/venues/"+uuid.New().String()+"/reservations", dto.AdmitRequest{
		Date:      "2025-06-13",
		Time:      "half past noon",
		PartySize: 2,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_AdmitReservation_SlotTaken(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	reservationSvc.EXPECT().Admit(mock.Anything, mock.Anything).Return(nil, domain.ErrSlotTaken)

	w := doJSON(t, r, http.MethodPost, "/api/venues/"+uuid.New().String()+"/reservations", dto.AdmitRequest{
		Date:      "2025-06-13",
		Time:      "12:30",
		ShiftID:   "s1",
		PartySize: 2,
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_AdmitReservation_PartyTooLarge(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	reservationSvc.EXPECT().Admit(mock.Anything, mock.Anything).Return(nil, domain.ErrPartyTooLarge)

	w := doJSON(t, r, http.MethodPost, "/api/venues/"+uuid.New().String()+"/reservations", dto.AdmitRequest{
		Date:      "2025-06-13",
		Time:      "12:30",
		ShiftID:   "s1",
		PartySize: 40,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandler_AdmitReservation_RequiresCombination(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	reservationSvc.EXPECT().Admit(mock.Anything, mock.Anything).Return(nil, domain.ErrRequiresCombination)

	w := doJSON(t, r, http.MethodPost, "/api/venues/"+uuid.New().String()+"/reservations", dto.AdmitRequest{
		Date:      "2025-06-13",
		Time:      "12:30",
		ShiftID:   "s1",
		PartySize: 7,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandler_AdmitReservation_OutsideShift(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	reservationSvc.EXPECT().Admit(mock.Anything, mock.Anything).Return(nil, domain.ErrSlotOutsideShift)

	w := doJSON(t, r, http.MethodPost, "/api/venues/"+uuid.New().String()+"/reservations", dto.AdmitRequest{
		Date:      "2025-06-13",
		Time:      "03:00",
		ShiftID:   "s1",
		PartySize: 2,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_TransitionReservation_Success(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	confirmed := admittedReservation(uuid.New().String())
	confirmed.ID = id
	confirmed.Status = domain.StatusConfirmed

	reservationSvc.EXPECT().Transition(mock.Anything, id, domain.StatusConfirmed, domain.ActorStaff).Return(confirmed, nil)

	w := doJSON(t, r, http.MethodPost, "/api/reservations/"+id+"/transition", dto.TransitionRequest{
		Status: "confirmed",
		Actor:  "staff",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "confirmed", resp.Status)
}

func TestHandler_TransitionReservation_UnknownStatus(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/reservations/"+uuid.New().String()+"/transition", dto.TransitionRequest{
		Status: "teleported",
		Actor:  "staff",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_TransitionReservation_Illegal(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	reservationSvc.EXPECT().Transition(mock.Anything, mock.Anything, domain.StatusConfirmed, domain.ActorStaff).
		Return(nil, &domain.InvalidTransitionError{From: domain.StatusCancelled, To: domain.StatusConfirmed})

	w := doJSON(t, r, http.MethodPost, "/api/reservations/"+uuid.New().String()+"/transition", dto.TransitionRequest{
		Status: "confirmed",
		Actor:  "staff",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_TransitionReservation_ConsumerForbidden(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	reservationSvc.EXPECT().Transition(mock.Anything, mock.Anything, domain.StatusNoShow, domain.ActorConsumer).
		Return(nil, domain.ErrActorNotAllowed)

	w := doJSON(t, r, http.MethodPost, "/api/reservations/"+uuid.New().String()+"/transition", dto.TransitionRequest{
		Status: "no_show",
		Actor:  "consumer",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_TransitionReservation_SlotNotFinished(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	reservationSvc.EXPECT().Transition(mock.Anything, mock.Anything, domain.StatusNoShow, domain.ActorStaff).
		Return(nil, domain.ErrSlotNotFinished)

	w := doJSON(t, r, http.MethodPost, "/api/reservations/"+uuid.New().String()+"/transition", dto.TransitionRequest{
		Status: "no_show",
		Actor:  "staff",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetReservation_NotFound(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	reservationSvc.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrReservationNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/reservations/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListReservations_Success(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	venueID := uuid.New().String()
	reservationSvc.EXPECT().ListOn(mock.Anything, venueID, "2025-06-13").
		Return([]*domain.Reservation{admittedReservation(venueID)}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/venues/"+venueID+"/reservations?date=2025-06-13", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

// --- Venue configuration ---

func TestHandler_CreateVenue_Success(t *testing.T) {
	_, _, venueSvc, r := setupRouter(t)

	venueSvc.EXPECT().CreateVenue(mock.Anything, mock.Anything).Return(&domain.Venue{
		ID:          uuid.New().String(),
		Name:        "Trattoria",
		Timezone:    "Europe/Rome",
		SlotMinutes: 30,
		HoldTTL:     15 * time.Minute,
		Active:      true,
		Public:      true,
		CreatedAt:   time.Now(),
	}, nil)

	w := doJSON(t, r, http.MethodPost, "/api/venues", dto.CreateVenueRequest{
		Name:           "Trattoria",
		Timezone:       "Europe/Rome",
		SlotMinutes:    30,
		HoldTTLMinutes: 15,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.VenueResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Trattoria", resp.Name)
	assert.Equal(t, 15, resp.HoldTTLMinutes)
}

func TestHandler_CreateVenue_BadRequest(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/venues", map[string]any{"name": ""})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateShift_Success(t *testing.T) {
	_, _, venueSvc, r := setupRouter(t)

	venueID := uuid.New().String()
	venueSvc.EXPECT().CreateShift(mock.Anything, mock.MatchedBy(func(s *domain.Shift) bool {
		return s.VenueID == venueID && s.StartMin == 660 && s.EndMin == 900 && s.SlotMinutes == 90
	})).RunAndReturn(func(_ context.Context, s *domain.Shift) (*domain.Shift, error) {
		s.ID = uuid.New().String()
		return s, nil
	})

	w := doJSON(t, r, http.MethodPost, "/api/venues/"+venueID+"/shifts", dto.CreateShiftRequest{
		Name:        "lunch",
		Weekdays:    []int{1, 2, 3, 4, 5},
		Start:       "11:00",
		End:         "15:00",
		SlotMinutes: 90,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ShiftResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "11:00", resp.Start)
	assert.Equal(t, "15:00", resp.End)
}

func TestHandler_CreateShift_BadWeekday(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/venues/"+uuid.New().String()+"/shifts", dto.CreateShiftRequest{
		Name:        "lunch",
		Weekdays:    []int{9},
		Start:       "11:00",
		End:         "15:00",
		SlotMinutes: 90,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateResource_Success(t *testing.T) {
	_, _, venueSvc, r := setupRouter(t)

	venueID := uuid.New().String()
	venueSvc.EXPECT().CreateResource(mock.Anything, mock.Anything).Return(&domain.Resource{
		ID:       uuid.New().String(),
		VenueID:  venueID,
		Name:     "table 1",
		Capacity: 4,
		Active:   true,
	}, nil)

	w := doJSON(t, r, http.MethodPost, "/api/venues/"+venueID+"/resources", dto.CreateResourceRequest{
		Name:     "table 1",
		Capacity: 4,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateResource_ZeroCapacity(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/venues/"+uuid.New().String()+"/resources", map[string]any{
		"name":     "table 1",
		"capacity": 0,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetVenue_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/venues/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
