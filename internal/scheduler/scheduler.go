package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/sicparvisventures/reserve4you/internal/domain"
)

type staleCanceller interface {
	CancelStalePending(ctx context.Context) ([]*domain.Reservation, error)
}

// Scheduler periodically releases pending reservations whose hold TTL
// lapsed without confirmation, freeing their slots for rebooking.
type Scheduler struct {
	reservations staleCanceller
	interval     time.Duration
	logger       logger.Logger
}

func New(
	reservations staleCanceller,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reservations: reservations,
		interval:     interval,
		logger:       logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	cancelled, err := s.reservations.CancelStalePending(ctx)
	if err != nil {
		s.logger.Error("failed to cancel stale reservations",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, r := range cancelled {
		s.logger.Info("reservation hold expired",
			logger.String("reservation_id", r.ID),
			logger.String("venue_id", r.VenueID),
			logger.String("date", r.Date),
		)
	}
}
