package repository

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/sicparvisventures/reserve4you/internal/domain"
)

type ResourceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewResourceRepo(db *dbpg.DB) *ResourceRepository {
	return &ResourceRepository{db: db, strategy: readStrategy()}
}

func (r *ResourceRepository) Create(ctx context.Context, res *domain.Resource) error {
	query := `INSERT INTO resources (id, venue_id, name, capacity, combinable, group_id, active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		res.ID, res.VenueID, res.Name, res.Capacity,
		res.Combinable, res.GroupID, res.Active,
		res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert resource: %w", err)
	}

	return nil
}

// ListByVenue orders by id so best-fit tie-breaking stays deterministic.
func (r *ResourceRepository) ListByVenue(ctx context.Context, venueID string) ([]*domain.Resource, error) {
	query := `SELECT id, venue_id, name, capacity, combinable, group_id, active, created_at, updated_at
			  FROM resources
			  WHERE venue_id = $1
			  ORDER BY id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, venueID)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	defer rows.Close()

	var res []*domain.Resource
	for rows.Next() {
		var rc domain.Resource
		if err = rows.Scan(
			&rc.ID, &rc.VenueID, &rc.Name, &rc.Capacity,
			&rc.Combinable, &rc.GroupID, &rc.Active,
			&rc.CreatedAt, &rc.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan resource: %w", err)
		}
		res = append(res, &rc)
	}

	return res, rows.Err()
}
