package court

import "time"

const (
	StatusAvailable   = "available"
	StatusMaintenance = "maintenance"
	StatusBooked      = "booked"
)

// Court is a single bookable lapangan. OpenTime/CloseTime bound the daily
// window in which slots may be booked, as zero-padded HH:MM strings.
type Court struct {
	ID           int       `db:"id" json:"id"`
	VenueID      int       `db:"venue_id" json:"venue_id"`
	Name         string    `db:"name" json:"name"`
	Sport        string    `db:"sport" json:"sport"`
	PricePerHour int64     `db:"price_per_hour" json:"price_per_hour"`
	OpenTime     string    `db:"open_time" json:"open_time"`
	CloseTime    string    `db:"close_time" json:"close_time"`
	Status       string    `db:"status" json:"status"`
	Rating       float64   `db:"rating" json:"rating"`
	TotalReviews int       `db:"total_reviews" json:"total_reviews"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type CreateCourtRequest struct {
	Name         string `json:"name" binding:"required"`
	Sport        string `json:"sport" binding:"required"`
	PricePerHour int64  `json:"price_per_hour" binding:"required,gt=0"`
	OpenTime     string `json:"open_time" binding:"required"`
	CloseTime    string `json:"close_time" binding:"required"`
}

type UpdateCourtRequest struct {
	Name         string `json:"name" binding:"required"`
	Sport        string `json:"sport" binding:"required"`
	PricePerHour int64  `json:"price_per_hour" binding:"required,gt=0"`
	OpenTime     string `json:"open_time" binding:"required"`
	CloseTime    string `json:"close_time" binding:"required"`
	Status       string `json:"status" binding:"required,oneof=available maintenance booked"`
}
