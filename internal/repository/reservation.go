package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/sicparvisventures/reserve4you/internal/domain"
	"github.com/sicparvisventures/reserve4you/internal/schedule"
)

const uniqueViolation = "23505"

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{db: db, strategy: readStrategy()}
}

// Create admits a reservation in a single transaction. Candidate resource
// rows are locked FOR UPDATE in id order, so concurrent admissions for the
// same venue serialize; the conflict re-check and best-fit selection run on
// the locked snapshot, and the partial unique index on
// (resource_id, res_date, start_min) backstops the exact-slot race. Losing
// writers get domain.ErrSlotTaken.
func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation, candidates []*domain.Resource, maxParallel int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	ids := make([]string, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.ID)
	}

	lockQuery := `SELECT id FROM resources WHERE id = ANY($1) ORDER BY id FOR UPDATE`
	lockRows, err := tx.QueryContext(ctx, lockQuery, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("lock resources: %w", err)
	}
	for lockRows.Next() {
		var id string
		if err = lockRows.Scan(&id); err != nil {
			lockRows.Close()
			return fmt.Errorf("scan locked resource: %w", err)
		}
	}
	if err = lockRows.Close(); err != nil {
		return fmt.Errorf("lock resources: %w", err)
	}

	iv := schedule.Occupied(res)

	// Resources already holding an active reservation overlapping the
	// requested window, buffer included on both sides.
	occupiedQuery := `SELECT resource_id FROM reservations
					  WHERE res_date = $1
					    AND resource_id = ANY($2)
					    AND status = ANY($3)
					    AND start_min < $4
					    AND start_min + duration_min + buffer_min > $5`
	rows, err := tx.QueryContext(
		ctx, occupiedQuery,
		res.Date, pq.Array(ids), pq.Array(domain.ActiveStatuses), iv.End, iv.Start,
	)
	if err != nil {
		return fmt.Errorf("load occupied resources: %w", err)
	}
	occupied := make(map[string]bool)
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			rows.Close()
			return fmt.Errorf("scan occupied resource: %w", err)
		}
		occupied[id] = true
	}
	if err = rows.Close(); err != nil {
		return fmt.Errorf("load occupied resources: %w", err)
	}

	if maxParallel > 0 && res.ShiftID != "" {
		parallelQuery := `SELECT COUNT(*) FROM reservations
						  WHERE shift_id = $1
						    AND res_date = $2
						    AND status = ANY($3)
						    AND start_min < $4
						    AND start_min + duration_min + buffer_min > $5`
		var parallel int
		if err = tx.QueryRowContext(
			ctx, parallelQuery,
			res.ShiftID, res.Date, pq.Array(domain.ActiveStatuses), iv.End, iv.Start,
		).Scan(&parallel); err != nil {
			return fmt.Errorf("count parallel reservations: %w", err)
		}
		if parallel >= maxParallel {
			return domain.ErrSlotTaken
		}
	}

	best := schedule.BestFit(candidates, res.PartySize, func(id string) bool {
		return !occupied[id]
	})
	if best == nil {
		return domain.ErrSlotTaken
	}
	res.ResourceID = &best.ID

	insert := `INSERT INTO reservations
				(id, venue_id, shift_id, resource_id, res_date, start_min, duration_min, buffer_min,
				 party_size, guest_name, guest_contact, status, created_at, updated_at)
			   VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err = tx.ExecContext(
		ctx, insert,
		res.ID, res.VenueID, res.ShiftID, res.ResourceID, res.Date,
		res.StartMin, res.DurationMin, res.BufferMin,
		res.PartySize, res.GuestName, res.GuestContact, res.Status,
		res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrSlotTaken
		}
		return fmt.Errorf("insert reservation: %w", err)
	}

	return tx.Commit()
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := selectReservation + ` WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	return scanReservation(row.Scan)
}

func (r *ReservationRepository) ListActiveOn(ctx context.Context, venueID, date string) ([]*domain.Reservation, error) {
	query := selectReservation + `
			  WHERE venue_id = $1 AND res_date = $2 AND status = ANY($3)
			  ORDER BY start_min, id`
	return r.list(ctx, query, venueID, date, pq.Array(domain.ActiveStatuses))
}

func (r *ReservationRepository) ListOn(ctx context.Context, venueID, date string) ([]*domain.Reservation, error) {
	query := selectReservation + `
			  WHERE venue_id = $1 AND res_date = $2
			  ORDER BY start_min, id`
	return r.list(ctx, query, venueID, date)
}

// UpdateStatus applies the transition only if the reservation is still in
// the expected source status. A lost race never overwrites a concurrent
// change; the caller gets the current state back in the error.
func (r *ReservationRepository) UpdateStatus(ctx context.Context, id string, from, to domain.ReservationStatus) error {
	query := `UPDATE reservations
			  SET status = $3, updated_at = now()
			  WHERE id = $1 AND status = $2`
	result, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, from, to)
	if err != nil {
		return fmt.Errorf("update reservation status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reservation rows affected: %w", err)
	}
	if rows == 0 {
		var current domain.ReservationStatus
		checkQuery := `SELECT status FROM reservations WHERE id = $1`
		row, err := r.db.QueryRowWithRetry(ctx, r.strategy, checkQuery, id)
		if err != nil {
			return domain.ErrReservationNotFound
		}
		if err = row.Scan(&current); err != nil {
			return domain.ErrReservationNotFound
		}
		return &domain.InvalidTransitionError{From: current, To: to}
	}

	return nil
}

// CancelStalePending releases pending reservations that outlived their
// venue's hold TTL. A zero TTL disables expiry for the venue.
func (r *ReservationRepository) CancelStalePending(ctx context.Context) ([]*domain.Reservation, error) {
	query := `
		UPDATE reservations res
		SET status = $2, updated_at = NOW()
		FROM venues v
		WHERE res.venue_id = v.id
		  AND res.status = $1
		  AND v.hold_ttl > interval '0'
		  AND res.created_at + v.hold_ttl < NOW()
		RETURNING res.id, res.venue_id, res.shift_id, res.resource_id, res.res_date,
				  res.start_min, res.duration_min, res.buffer_min, res.party_size,
				  res.guest_name, res.guest_contact, res.status, res.created_at, res.updated_at`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.StatusPending, domain.StatusCancelled,
	)
	if err != nil {
		return nil, fmt.Errorf("cancel stale pending: %w", err)
	}
	defer rows.Close()

	var res []*domain.Reservation
	for rows.Next() {
		rec, err := scanReservation(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, rec)
	}

	return res, rows.Err()
}

const selectReservation = `SELECT id, venue_id, shift_id, resource_id, res_date, start_min, duration_min, buffer_min,
								  party_size, guest_name, guest_contact, status, created_at, updated_at
						   FROM reservations`

func (r *ReservationRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Reservation, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	var res []*domain.Reservation
	for rows.Next() {
		rec, err := scanReservation(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, rec)
	}

	return res, rows.Err()
}

func scanReservation(scan func(dest ...any) error) (*domain.Reservation, error) {
	var rec domain.Reservation
	var shiftID sql.NullString
	var date time.Time
	if err := scan(
		&rec.ID, &rec.VenueID, &shiftID, &rec.ResourceID, &date,
		&rec.StartMin, &rec.DurationMin, &rec.BufferMin,
		&rec.PartySize, &rec.GuestName, &rec.GuestContact, &rec.Status,
		&rec.CreatedAt, &rec.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("scan reservation: %w", err)
	}
	rec.ShiftID = shiftID.String
	rec.Date = date.Format(schedule.DateLayout)

	return &rec, nil
}
