package ports

import (
	"context"

	"github.com/sicparvisventures/reserve4you/internal/domain"
)

type ReservationRepo interface {
	// Create commits the reservation atomically, assigning the best-fitting
	// free resource among candidates. Returns domain.ErrSlotTaken when every
	// candidate is occupied or the shift's parallel cap is reached.
	Create(ctx context.Context, r *domain.Reservation, candidates []*domain.Resource, maxParallel int) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	// ListActiveOn returns one consistent snapshot of the reservations that
	// occupy resources at the venue on the given date.
	ListActiveOn(ctx context.Context, venueID, date string) ([]*domain.Reservation, error)
	ListOn(ctx context.Context, venueID, date string) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.ReservationStatus) error
	CancelStalePending(ctx context.Context) ([]*domain.Reservation, error)
}
