package ports

import (
	"context"

	"github.com/sicparvisventures/reserve4you/internal/domain"
)

// ReservationEvents publishes lifecycle facts for external collaborators
// (usage accounting, guest notifications). Publishing is best-effort and
// must never fail the request that produced the event.
type ReservationEvents interface {
	ReservationAdmitted(ctx context.Context, r *domain.Reservation)
	ReservationStatusChanged(ctx context.Context, r *domain.Reservation, from domain.ReservationStatus)
}
