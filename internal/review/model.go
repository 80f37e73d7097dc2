package review

import "time"

const (
	MinRating        = 1
	MaxRating        = 5
	MinCommentLength = 10
	MaxCommentLength = 500
)

type Review struct {
	ID        int       `db:"id" json:"id"`
	CourtID   int       `db:"court_id" json:"court_id"`
	UserID    int       `db:"user_id" json:"user_id"`
	BookingID int       `db:"booking_id" json:"booking_id"`
	Rating    int       `db:"rating" json:"rating"`
	Comment   string    `db:"comment" json:"comment"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type CreateReviewRequest struct {
	BookingID int    `json:"booking_id" binding:"required" validate:"required"`
	CourtID   int    `json:"court_id" binding:"required" validate:"required"`
	Rating    int    `json:"rating" binding:"required" validate:"gte=1,lte=5"`
	Comment   string `json:"comment" binding:"required" validate:"min=10,max=500"`
}
