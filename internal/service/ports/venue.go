package ports

import (
	"context"

	"github.com/sicparvisventures/reserve4you/internal/domain"
)

type VenueRepo interface {
	Create(ctx context.Context, v *domain.Venue) error
	GetByID(ctx context.Context, id string) (*domain.Venue, error)
	List(ctx context.Context) ([]*domain.Venue, error)
}

type ShiftRepo interface {
	Create(ctx context.Context, s *domain.Shift) error
	ListByVenue(ctx context.Context, venueID string) ([]*domain.Shift, error)
}

type ResourceRepo interface {
	Create(ctx context.Context, r *domain.Resource) error
	ListByVenue(ctx context.Context, venueID string) ([]*domain.Resource, error)
}
