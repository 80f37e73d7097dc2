package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var ErrAlreadyReviewed = errors.New("booking already reviewed by this user")

type Repository interface {
	// CreateWithRollup inserts the review and folds its rating into the
	// court's running mean in one transaction. The rollup is a single
	// UPDATE computed in SQL, so concurrent reviews on the same court
	// cannot lose each other's contribution.
	CreateWithRollup(ctx context.Context, r *Review) (*Review, error)

	ExistsForBooking(ctx context.Context, userID, bookingID int) (bool, error)
	ListByCourt(ctx context.Context, courtID int) ([]Review, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const reviewColumns = "id, court_id, user_id, booking_id, rating, comment, created_at"

func (r *repository) CreateWithRollup(ctx context.Context, rev *Review) (*Review, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertQuery := `
		INSERT INTO reviews (court_id, user_id, booking_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + reviewColumns

	var created Review
	err = tx.GetContext(ctx, &created, insertQuery,
		rev.CourtID, rev.UserID, rev.BookingID, rev.Rating, rev.Comment)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyReviewed
		}
		return nil, err
	}

	// Running mean recomputed in-place; the read and write happen inside
	// one statement, so there is no read-modify-write window.
	rollupQuery := `
		UPDATE courts
		SET rating = (rating * total_reviews + $2) / (total_reviews + 1),
		    total_reviews = total_reviews + 1,
		    updated_at = NOW()
		WHERE id = $1
	`
	if _, err := tx.ExecContext(ctx, rollupQuery, rev.CourtID, float64(rev.Rating)); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &created, nil
}

func (r *repository) ExistsForBooking(ctx context.Context, userID, bookingID int) (bool, error) {
	query := `
		SELECT EXISTS(SELECT 1 FROM reviews WHERE user_id = $1 AND booking_id = $2)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, userID, bookingID)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *repository) ListByCourt(ctx context.Context, courtID int) ([]Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE court_id = $1
		ORDER BY created_at DESC
	`

	var reviews []Review
	err := r.db.SelectContext(ctx, &reviews, query, courtID)
	if err != nil {
		return nil, err
	}

	return reviews, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
