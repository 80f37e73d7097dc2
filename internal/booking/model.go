package booking

import (
	"database/sql"
	"time"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"

	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

const (
	DateFormat  = "2006-01-02"
	ClockFormat = "15:04"
)

// Booking reserves the half-open slot [StartTime, EndTime) on a court for a
// date. Date and clock values are stored as zero-padded strings, so they
// compare correctly as text and carry no time-zone ambiguity. Status and
// PaymentStatus advance independently: paying never confirms a booking.
type Booking struct {
	ID            int            `db:"id" json:"id"`
	UserID        int            `db:"user_id" json:"user_id"`
	CourtID       int            `db:"court_id" json:"court_id"`
	VenueID       int            `db:"venue_id" json:"venue_id"`
	Date          string         `db:"booking_date" json:"date"`
	StartTime     string         `db:"start_time" json:"start_time"`
	EndTime       string         `db:"end_time" json:"end_time"`
	TotalPrice    int64          `db:"total_price" json:"total_price"`
	Status        string         `db:"status" json:"status"`
	PaymentStatus string         `db:"payment_status" json:"payment_status"`
	TransactionID sql.NullString `db:"transaction_id" json:"transaction_id,omitempty" swaggertype:"string"`
	PaymentType   sql.NullString `db:"payment_type" json:"payment_type,omitempty" swaggertype:"string"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at" json:"updated_at"`
}

type CreateBookingRequest struct {
	CourtID       int    `json:"court_id" binding:"required"`
	VenueID       int    `json:"venue_id" binding:"required"`
	Date          string `json:"date" binding:"required"`
	StartTime     string `json:"start_time" binding:"required"`
	DurationHours int    `json:"duration_hours" binding:"required,gte=1"`
	TotalPrice    int64  `json:"total_price" binding:"required,gt=0"`
}

type AvailabilityResponse struct {
	Available bool   `json:"available"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}
