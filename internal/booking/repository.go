package booking

import (
	"context"
	"errors"

	"github.com/BryanJericho/courtly-web-sub000/internal/db"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var ErrSlotTaken = errors.New("slot already has an active booking")

type repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &repository{db: database}
}

const bookingColumns = "id, user_id, court_id, venue_id, booking_date, start_time, end_time, total_price, status, payment_status, transaction_id, payment_type, created_at, updated_at"

func (r *repository) ListActiveForSlot(ctx context.Context, courtID int, date string) ([]Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE court_id = $1 AND booking_date = $2 AND status IN ('pending', 'confirmed')
		ORDER BY start_time ASC
	`

	var bookings []Booking
	err := r.db.SelectContext(ctx, &bookings, query, courtID, date)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) CreateIfFree(ctx context.Context, b *Booking) (*Booking, error) {
	var created Booking

	// The overlap re-check and the insert run in one SERIALIZABLE
	// transaction, so two writers racing for the same slot cannot both
	// commit. Half-open interval overlap: existing.start < new.end AND
	// existing.end > new.start.
	err := db.DoSerializable(ctx, r.db, func(tx *sqlx.Tx) error {
		var overlapping int
		countQuery := `
			SELECT COUNT(*)
			FROM bookings
			WHERE court_id = $1 AND booking_date = $2
			  AND status IN ('pending', 'confirmed')
			  AND start_time < $4 AND end_time > $3
		`
		if err := tx.GetContext(ctx, &overlapping, countQuery, b.CourtID, b.Date, b.StartTime, b.EndTime); err != nil {
			return err
		}
		if overlapping > 0 {
			return ErrSlotTaken
		}

		insertQuery := `
			INSERT INTO bookings (user_id, court_id, venue_id, booking_date, start_time, end_time, total_price, status, payment_status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, 'pending', 'pending')
			RETURNING ` + bookingColumns

		return tx.GetContext(ctx, &created, insertQuery,
			b.UserID, b.CourtID, b.VenueID, b.Date, b.StartTime, b.EndTime, b.TotalPrice)
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var b Booking
	err := r.db.GetContext(ctx, &b, query, id)
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *repository) ListByUser(ctx context.Context, userID int) ([]Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var bookings []Booking
	err := r.db.SelectContext(ctx, &bookings, query, userID)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) ListByVenue(ctx context.Context, venueID int) ([]Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE venue_id = $1
		ORDER BY booking_date DESC, start_time DESC
	`

	var bookings []Booking
	err := r.db.SelectContext(ctx, &bookings, query, venueID)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id int, fromStatuses []string, to string) (bool, error) {
	query := `
		UPDATE bookings
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

func (r *repository) ApplyNotification(ctx context.Context, id int, status, paymentStatus, transactionID, paymentType string) error {
	query := `
		UPDATE bookings
		SET status = COALESCE(NULLIF($2, ''), status),
		    payment_status = COALESCE(NULLIF($3, ''), payment_status),
		    transaction_id = $4,
		    payment_type = $5,
		    updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, id, status, paymentStatus, transactionID, paymentType)
	return err
}
