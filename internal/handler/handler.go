package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/sicparvisventures/reserve4you/internal/domain"
	"github.com/sicparvisventures/reserve4you/internal/handler/dto"
	"github.com/sicparvisventures/reserve4you/internal/schedule"
	"github.com/sicparvisventures/reserve4you/internal/service"
)

type AvailabilitySvc interface {
	ComputeSlots(ctx context.Context, q service.AvailabilityQuery) (*domain.Availability, error)
}

type ReservationSvc interface {
	Admit(ctx context.Context, in service.AdmitInput) (*domain.Reservation, error)
	Transition(ctx context.Context, id string, target domain.ReservationStatus, actor domain.Actor) (*domain.Reservation, error)
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	ListOn(ctx context.Context, venueID, date string) ([]*domain.Reservation, error)
}

type VenueSvc interface {
	CreateVenue(ctx context.Context, in domain.CreateVenueInput) (*domain.Venue, error)
	GetVenue(ctx context.Context, id string) (*domain.Venue, error)
	ListVenues(ctx context.Context) ([]*domain.Venue, error)
	CreateShift(ctx context.Context, s *domain.Shift) (*domain.Shift, error)
	ListShifts(ctx context.Context, venueID string) ([]*domain.Shift, error)
	CreateResource(ctx context.Context, r *domain.Resource) (*domain.Resource, error)
	ListResources(ctx context.Context, venueID string) ([]*domain.Resource, error)
}

type Handler struct {
	availabilityService AvailabilitySvc
	reservationService  ReservationSvc
	venueService        VenueSvc
}

func NewHandler(availabilityService AvailabilitySvc, reservationService ReservationSvc, venueService VenueSvc) *Handler {
	return &Handler{
		availabilityService: availabilityService,
		reservationService:  reservationService,
		venueService:        venueService,
	}
}

// Availability

func (h *Handler) GetAvailability(c *ginext.Context) {
	venueID := c.Param("id")
	if _, err := uuid.Parse(venueID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid venue id"})
		return
	}

	partySize, err := strconv.Atoi(c.Query("party_size"))
	if err != nil || partySize < 1 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "party_size must be a positive integer"})
		return
	}

	avail, err := h.availabilityService.ComputeSlots(c.Request.Context(), service.AvailabilityQuery{
		VenueID:   venueID,
		Date:      c.Query("date"),
		PartySize: partySize,
		ShiftID:   c.Query("shift_id"),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(avail))
}

// Reservations

func (h *Handler) AdmitReservation(c *ginext.Context) {
	venueID := c.Param("id")
	if _, err := uuid.Parse(venueID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid venue id"})
		return
	}

	var req dto.AdmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startMin, err := schedule.ParseClock(req.Time)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid time format, expected HH:MM"})
		return
	}

	reservation, err := h.reservationService.Admit(c.Request.Context(), service.AdmitInput{
		VenueID:      venueID,
		Date:         req.Date,
		StartMin:     startMin,
		ShiftID:      req.ShiftID,
		PartySize:    req.PartySize,
		GuestName:    req.GuestName,
		GuestContact: req.GuestContact,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation))
}

func (h *Handler) TransitionReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	var req dto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	target, err := domain.ParseStatus(req.Status)
	if err != nil {
		h.handleError(c, err)
		return
	}
	actor, err := domain.ParseActor(req.Actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	reservation, err := h.reservationService.Transition(c.Request.Context(), id, target, actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *Handler) GetReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	reservation, err := h.reservationService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *Handler) ListReservations(c *ginext.Context) {
	venueID := c.Param("id")
	if _, err := uuid.Parse(venueID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid venue id"})
		return
	}

	reservations, err := h.reservationService.ListOn(c.Request.Context(), venueID, c.Query("date"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		resp = append(resp, dto.ToReservationResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

// Venue configuration

func (h *Handler) CreateVenue(c *ginext.Context) {
	var req dto.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	venue, err := h.venueService.CreateVenue(c.Request.Context(), domain.CreateVenueInput{
		Name:          req.Name,
		Timezone:      req.Timezone,
		SlotMinutes:   req.SlotMinutes,
		BufferMinutes: req.BufferMinutes,
		HoldTTL:       time.Duration(req.HoldTTLMinutes) * time.Minute,
		Public:        req.Public,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToVenueResponse(venue))
}

func (h *Handler) GetVenue(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid venue id"})
		return
	}

	venue, err := h.venueService.GetVenue(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVenueResponse(venue))
}

func (h *Handler) ListVenues(c *ginext.Context) {
	venues, err := h.venueService.ListVenues(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.VenueResponse, 0, len(venues))
	for _, v := range venues {
		resp = append(resp, dto.ToVenueResponse(v))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateShift(c *ginext.Context) {
	venueID := c.Param("id")
	if _, err := uuid.Parse(venueID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid venue id"})
		return
	}

	var req dto.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startMin, err := schedule.ParseClock(req.Start)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start, expected HH:MM"})
		return
	}
	endMin, err := schedule.ParseClock(req.End)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end, expected HH:MM"})
		return
	}

	shift, err := h.venueService.CreateShift(c.Request.Context(), &domain.Shift{
		VenueID:       venueID,
		Name:          req.Name,
		Weekdays:      req.Weekdays,
		StartMin:      startMin,
		EndMin:        endMin,
		SlotMinutes:   req.SlotMinutes,
		BufferMinutes: req.BufferMinutes,
		MaxParallel:   req.MaxParallel,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToShiftResponse(shift))
}

func (h *Handler) ListShifts(c *ginext.Context) {
	venueID := c.Param("id")
	if _, err := uuid.Parse(venueID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid venue id"})
		return
	}

	shifts, err := h.venueService.ListShifts(c.Request.Context(), venueID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ShiftResponse, 0, len(shifts))
	for _, s := range shifts {
		resp = append(resp, dto.ToShiftResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateResource(c *ginext.Context) {
	venueID := c.Param("id")
	if _, err := uuid.Parse(venueID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid venue id"})
		return
	}

	var req dto.CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resource, err := h.venueService.CreateResource(c.Request.Context(), &domain.Resource{
		VenueID:    venueID,
		Name:       req.Name,
		Capacity:   req.Capacity,
		Combinable: req.Combinable,
		GroupID:    req.GroupID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToResourceResponse(resource))
}

func (h *Handler) ListResources(c *ginext.Context) {
	venueID := c.Param("id")
	if _, err := uuid.Parse(venueID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid venue id"})
		return
	}

	resources, err := h.venueService.ListResources(c.Request.Context(), venueID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ResourceResponse, 0, len(resources))
	for _, r := range resources {
		resp = append(resp, dto.ToResourceResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var transitionErr *domain.InvalidTransitionError

	switch {
	case errors.Is(err, domain.ErrVenueNotFound),
		errors.Is(err, domain.ErrShiftNotFound),
		errors.Is(err, domain.ErrResourceNotFound),
		errors.Is(err, domain.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSlotTaken),
		errors.Is(err, domain.ErrSlotNotFinished),
		errors.As(err, &transitionErr):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrPartyTooLarge),
		errors.Is(err, domain.ErrRequiresCombination):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrActorNotAllowed):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrSlotOutsideShift):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
