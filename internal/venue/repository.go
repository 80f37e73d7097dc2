package venue

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type Repository interface {
	Create(ctx context.Context, ownerID int, req CreateVenueRequest) (*Venue, error)
	GetByID(ctx context.Context, id int) (*Venue, error)
	ListByStatus(ctx context.Context, status string) ([]Venue, error)
	ListByOwner(ctx context.Context, ownerID int) ([]Venue, error)
	Update(ctx context.Context, id int, req UpdateVenueRequest) (*Venue, error)
	UpdateStatus(ctx context.Context, id int, fromStatuses []string, to string) (bool, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const venueColumns = "id, owner_id, name, description, address, city, status, created_at, updated_at"

func (r *repository) Create(ctx context.Context, ownerID int, req CreateVenueRequest) (*Venue, error) {
	query := `
		INSERT INTO venues (owner_id, name, description, address, city, status)
		VALUES ($1, $2, $3, $4, $5, 'pending_approval')
		RETURNING ` + venueColumns

	var v Venue
	err := r.db.GetContext(ctx, &v, query, ownerID, req.Name, req.Description, req.Address, req.City)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE id = $1`

	var v Venue
	err := r.db.GetContext(ctx, &v, query, id)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

func (r *repository) ListByStatus(ctx context.Context, status string) ([]Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE status = $1 ORDER BY created_at DESC`

	var venues []Venue
	err := r.db.SelectContext(ctx, &venues, query, status)
	if err != nil {
		return nil, err
	}

	return venues, nil
}

func (r *repository) ListByOwner(ctx context.Context, ownerID int) ([]Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE owner_id = $1 ORDER BY created_at DESC`

	var venues []Venue
	err := r.db.SelectContext(ctx, &venues, query, ownerID)
	if err != nil {
		return nil, err
	}

	return venues, nil
}

func (r *repository) Update(ctx context.Context, id int, req UpdateVenueRequest) (*Venue, error) {
	query := `
		UPDATE venues
		SET name = $2, description = $3, address = $4, city = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + venueColumns

	var v Venue
	err := r.db.GetContext(ctx, &v, query, id, req.Name, req.Description, req.Address, req.City)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

// UpdateStatus moves a venue to the target status only when its current
// status is in fromStatuses. Returns false when no row matched, so callers
// can distinguish an invalid transition from a successful one.
func (r *repository) UpdateStatus(ctx context.Context, id int, fromStatuses []string, to string) (bool, error) {
	query := `
		UPDATE venues
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = ANY($3)
	`

	result, err := r.db.ExecContext(ctx, query, id, to, pq.Array(fromStatuses))
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
