package repository

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/sicparvisventures/reserve4you/internal/domain"
)

type ShiftRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewShiftRepo(db *dbpg.DB) *ShiftRepository {
	return &ShiftRepository{db: db, strategy: readStrategy()}
}

func (r *ShiftRepository) Create(ctx context.Context, s *domain.Shift) error {
	query := `INSERT INTO shifts (id, venue_id, name, weekdays, start_min, end_min, slot_minutes, buffer_minutes, max_parallel, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.VenueID, s.Name, pq.Array(toInt64(s.Weekdays)),
		s.StartMin, s.EndMin, s.SlotMinutes, s.BufferMinutes, s.MaxParallel,
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert shift: %w", err)
	}

	return nil
}

func (r *ShiftRepository) ListByVenue(ctx context.Context, venueID string) ([]*domain.Shift, error) {
	query := `SELECT id, venue_id, name, weekdays, start_min, end_min, slot_minutes, buffer_minutes, max_parallel, created_at, updated_at
			  FROM shifts
			  WHERE venue_id = $1
			  ORDER BY start_min, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, venueID)
	if err != nil {
		return nil, fmt.Errorf("list shifts: %w", err)
	}
	defer rows.Close()

	var res []*domain.Shift
	for rows.Next() {
		var s domain.Shift
		var weekdays pq.Int64Array
		if err = rows.Scan(
			&s.ID, &s.VenueID, &s.Name, &weekdays,
			&s.StartMin, &s.EndMin, &s.SlotMinutes, &s.BufferMinutes, &s.MaxParallel,
			&s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan shift: %w", err)
		}
		s.Weekdays = toInt(weekdays)
		res = append(res, &s)
	}

	return res, rows.Err()
}

func toInt64(in []int) []int64 {
	out := make([]int64, len(in))
	for i, v := range in {
		out[i] = int64(v)
	}
	return out
}

func toInt(in []int64) []int {
	out := make([]int, len(in))
	for i, v := range in {
		out[i] = int(v)
	}
	return out
}
