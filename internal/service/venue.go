package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sicparvisventures/reserve4you/internal/clock"
	"github.com/sicparvisventures/reserve4you/internal/domain"
	"github.com/sicparvisventures/reserve4you/internal/service/ports"
)

// VenueService covers the manager-side configuration the engine feeds on:
// venues, shifts and resources. Deliberately thin.
type VenueService struct {
	venueRepo    ports.VenueRepo
	shiftRepo    ports.ShiftRepo
	resourceRepo ports.ResourceRepo
	clock        clock.Clock
}

func NewVenueService(
	venueRepo ports.VenueRepo,
	shiftRepo ports.ShiftRepo,
	resourceRepo ports.ResourceRepo,
	clk clock.Clock,
) *VenueService {
	return &VenueService{
		venueRepo:    venueRepo,
		shiftRepo:    shiftRepo,
		resourceRepo: resourceRepo,
		clock:        clk,
	}
}

func (s *VenueService) CreateVenue(ctx context.Context, in domain.CreateVenueInput) (*domain.Venue, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	public := true
	if in.Public != nil {
		public = *in.Public
	}

	now := s.clock.Now()
	v := &domain.Venue{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Timezone:      in.Timezone,
		SlotMinutes:   in.SlotMinutes,
		BufferMinutes: in.BufferMinutes,
		HoldTTL:       in.HoldTTL,
		Active:        true,
		Public:        public,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.venueRepo.Create(ctx, v); err != nil {
		return nil, fmt.Errorf("create venue: %w", err)
	}
	return v, nil
}

func (s *VenueService) GetVenue(ctx context.Context, id string) (*domain.Venue, error) {
	return s.venueRepo.GetByID(ctx, id)
}

func (s *VenueService) ListVenues(ctx context.Context) ([]*domain.Venue, error) {
	return s.venueRepo.List(ctx)
}

func (s *VenueService) CreateShift(ctx context.Context, sh *domain.Shift) (*domain.Shift, error) {
	if _, err := s.venueRepo.GetByID(ctx, sh.VenueID); err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}
	if err := sh.Validate(); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	sh.ID = uuid.New().String()
	sh.CreatedAt = now
	sh.UpdatedAt = now
	if err := s.shiftRepo.Create(ctx, sh); err != nil {
		return nil, fmt.Errorf("create shift: %w", err)
	}
	return sh, nil
}

func (s *VenueService) ListShifts(ctx context.Context, venueID string) ([]*domain.Shift, error) {
	if _, err := s.venueRepo.GetByID(ctx, venueID); err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}
	return s.shiftRepo.ListByVenue(ctx, venueID)
}

func (s *VenueService) CreateResource(ctx context.Context, r *domain.Resource) (*domain.Resource, error) {
	if _, err := s.venueRepo.GetByID(ctx, r.VenueID); err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	r.ID = uuid.New().String()
	r.Active = true
	r.CreatedAt = now
	r.UpdatedAt = now
	if err := s.resourceRepo.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}
	return r, nil
}

func (s *VenueService) ListResources(ctx context.Context, venueID string) ([]*domain.Resource, error) {
	if _, err := s.venueRepo.GetByID(ctx, venueID); err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}
	return s.resourceRepo.ListByVenue(ctx, venueID)
}
