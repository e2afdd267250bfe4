package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/sicparvisventures/reserve4you/internal/domain"
)

func readStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

type VenueRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewVenueRepo(db *dbpg.DB) *VenueRepository {
	return &VenueRepository{db: db, strategy: readStrategy()}
}

func (r *VenueRepository) Create(ctx context.Context, v *domain.Venue) error {
	query := `INSERT INTO venues (id, name, timezone, slot_minutes, buffer_minutes, hold_ttl, active, public, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, make_interval(secs => $6), $7, $8, $9, $10)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		v.ID, v.Name, v.Timezone, v.SlotMinutes, v.BufferMinutes,
		v.HoldTTL.Seconds(), v.Active, v.Public, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert venue: %w", err)
	}

	return nil
}

func (r *VenueRepository) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	query := `SELECT id, name, timezone, slot_minutes, buffer_minutes,
					 EXTRACT(EPOCH FROM hold_ttl)::bigint, active, public, created_at, updated_at
			  FROM venues
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVenueNotFound
		}
		return nil, fmt.Errorf("get venue: %w", err)
	}

	return scanVenue(row.Scan)
}

func (r *VenueRepository) List(ctx context.Context) ([]*domain.Venue, error) {
	query := `SELECT id, name, timezone, slot_minutes, buffer_minutes,
					 EXTRACT(EPOCH FROM hold_ttl)::bigint, active, public, created_at, updated_at
			  FROM venues
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	defer rows.Close()

	var res []*domain.Venue
	for rows.Next() {
		v, err := scanVenue(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}

	return res, rows.Err()
}

func scanVenue(scan func(dest ...any) error) (*domain.Venue, error) {
	var v domain.Venue
	var ttlSeconds int64
	if err := scan(
		&v.ID, &v.Name, &v.Timezone, &v.SlotMinutes, &v.BufferMinutes,
		&ttlSeconds, &v.Active, &v.Public, &v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVenueNotFound
		}
		return nil, fmt.Errorf("scan venue: %w", err)
	}
	v.HoldTTL = time.Duration(ttlSeconds) * time.Second

	return &v, nil
}
