package court

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	Create(ctx context.Context, venueID int, req CreateCourtRequest) (*Court, error)
	GetByID(ctx context.Context, id int) (*Court, error)
	ListByVenue(ctx context.Context, venueID int) ([]Court, error)
	Update(ctx context.Context, id int, req UpdateCourtRequest) (*Court, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const courtColumns = "id, venue_id, name, sport, price_per_hour, open_time, close_time, status, rating, total_reviews, created_at, updated_at"

func (r *repository) Create(ctx context.Context, venueID int, req CreateCourtRequest) (*Court, error) {
	query := `
		INSERT INTO courts (venue_id, name, sport, price_per_hour, open_time, close_time, status)
		VALUES ($1, $2, $3, $4, $5, $6, 'available')
		RETURNING ` + courtColumns

	var ct Court
	err := r.db.GetContext(ctx, &ct, query,
		venueID, req.Name, req.Sport, req.PricePerHour, req.OpenTime, req.CloseTime)
	if err != nil {
		return nil, err
	}

	return &ct, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Court, error) {
	query := `SELECT ` + courtColumns + ` FROM courts WHERE id = $1`

	var ct Court
	err := r.db.GetContext(ctx, &ct, query, id)
	if err != nil {
		return nil, err
	}

	return &ct, nil
}

func (r *repository) ListByVenue(ctx context.Context, venueID int) ([]Court, error) {
	query := `SELECT ` + courtColumns + ` FROM courts WHERE venue_id = $1 ORDER BY name ASC`

	var courts []Court
	err := r.db.SelectContext(ctx, &courts, query, venueID)
	if err != nil {
		return nil, err
	}

	return courts, nil
}

func (r *repository) Update(ctx context.Context, id int, req UpdateCourtRequest) (*Court, error) {
	query := `
		UPDATE courts
		SET name = $2, sport = $3, price_per_hour = $4, open_time = $5, close_time = $6, status = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + courtColumns

	var ct Court
	err := r.db.GetContext(ctx, &ct, query,
		id, req.Name, req.Sport, req.PricePerHour, req.OpenTime, req.CloseTime, req.Status)
	if err != nil {
		return nil, err
	}

	return &ct, nil
}
