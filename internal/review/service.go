package review

import (
	"context"
	"database/sql"
	"errors"
	"unicode/utf8"

	"github.com/BryanJericho/courtly-web-sub000/internal/apperr"
	"github.com/BryanJericho/courtly-web-sub000/internal/booking"
	"github.com/BryanJericho/courtly-web-sub000/internal/metrics"
)

type Service interface {
	Create(ctx context.Context, userID int, req CreateReviewRequest) (*Review, error)
	ListByCourt(ctx context.Context, courtID int) ([]Review, error)
}

type service struct {
	repo        Repository
	bookingRepo booking.Repository
}

func NewService(repo Repository, bookingRepo booking.Repository) Service {
	return &service{repo: repo, bookingRepo: bookingRepo}
}

// Create gates review submission: the booking must exist, belong to the
// caller, be completed, and not already carry a review from this user.
func (s *service) Create(ctx context.Context, userID int, req CreateReviewRequest) (*Review, error) {
	if req.Rating < MinRating || req.Rating > MaxRating {
		return nil, apperr.Validationf("rating must be between %d and %d", MinRating, MaxRating)
	}
	if n := utf8.RuneCountInString(req.Comment); n < MinCommentLength || n > MaxCommentLength {
		return nil, apperr.Validationf("comment must be between %d and %d characters", MinCommentLength, MaxCommentLength)
	}

	b, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("booking not found")
		}
		return nil, apperr.Persistence("failed to load booking", err)
	}

	if b.UserID != userID {
		return nil, apperr.NotFound("booking not found")
	}
	if b.CourtID != req.CourtID {
		return nil, apperr.Validationf("booking is not for the given court")
	}
	if b.Status != booking.StatusCompleted {
		return nil, apperr.State("only completed bookings can be reviewed")
	}

	exists, err := s.repo.ExistsForBooking(ctx, userID, req.BookingID)
	if err != nil {
		return nil, apperr.Persistence("failed to check existing review", err)
	}
	if exists {
		return nil, apperr.Duplicate("booking already reviewed")
	}

	created, err := s.repo.CreateWithRollup(ctx, &Review{
		CourtID:   req.CourtID,
		UserID:    userID,
		BookingID: req.BookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		// The unique index is the real gate; the pre-check above only
		// gives a friendlier fast path.
		if errors.Is(err, ErrAlreadyReviewed) {
			return nil, apperr.Duplicate("booking already reviewed")
		}
		return nil, apperr.Persistence("failed to create review", err)
	}

	metrics.RecordReviewCreated()
	return created, nil
}

func (s *service) ListByCourt(ctx context.Context, courtID int) ([]Review, error) {
	reviews, err := s.repo.ListByCourt(ctx, courtID)
	if err != nil {
		return nil, apperr.Persistence("failed to list reviews", err)
	}
	return reviews, nil
}
