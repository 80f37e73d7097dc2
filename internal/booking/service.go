package booking

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/BryanJericho/courtly-web-sub000/internal/apperr"
	"github.com/BryanJericho/courtly-web-sub000/internal/court"
	"github.com/BryanJericho/courtly-web-sub000/internal/logger"
	"github.com/BryanJericho/courtly-web-sub000/internal/metrics"
	"github.com/BryanJericho/courtly-web-sub000/internal/user"
	"github.com/BryanJericho/courtly-web-sub000/internal/venue"
)

// Notifier delivers best-effort booking status emails. Implementations must
// not block the transition; failures are logged and dropped.
type Notifier interface {
	BookingConfirmed(ctx context.Context, email, name string, b *Booking) error
	BookingCancelled(ctx context.Context, email, name string, b *Booking) error
}

type Service interface {
	HasConflict(ctx context.Context, courtID int, date, startTime string, durationHours int) (bool, string, error)
	Create(ctx context.Context, userID int, req CreateBookingRequest) (*Booking, error)
	Get(ctx context.Context, actorID int, role string, id int) (*Booking, error)
	ListMine(ctx context.Context, userID int) ([]Booking, error)
	ListByVenue(ctx context.Context, actorID, venueID int) ([]Booking, error)
	Confirm(ctx context.Context, actorID, bookingID int) (*Booking, error)
	Reject(ctx context.Context, actorID, bookingID int) (*Booking, error)
	Cancel(ctx context.Context, actorID, bookingID int) (*Booking, error)
	Complete(ctx context.Context, actorID, bookingID int) (*Booking, error)
}

type service struct {
	repo      Repository
	courtRepo court.Repository
	venueRepo venue.Repository
	userRepo  user.Repository
	notifier  Notifier
	now       func() time.Time
}

func NewService(
	repo Repository,
	courtRepo court.Repository,
	venueRepo venue.Repository,
	userRepo user.Repository,
	notifier Notifier,
) Service {
	return &service{
		repo:      repo,
		courtRepo: courtRepo,
		venueRepo: venueRepo,
		userRepo:  userRepo,
		notifier:  notifier,
		now:       time.Now,
	}
}

// CheckConflict is the pure overlap test over already-fetched bookings. The
// candidate interval is [startTime, endTime); any intersecting active
// booking is a conflict.
func CheckConflict(existing []Booking, startTime, endTime string) bool {
	for _, b := range existing {
		if Overlaps(startTime, endTime, b.StartTime, b.EndTime) {
			return true
		}
	}
	return false
}

// HasConflict reports whether the requested slot collides with an active
// booking. A store failure propagates as an error: the caller must treat it
// as unknown and abort, never as a free slot.
func (s *service) HasConflict(ctx context.Context, courtID int, date, startTime string, durationHours int) (bool, string, error) {
	if err := validateDate(date); err != nil {
		return false, "", err
	}

	endTime, err := SlotEnd(startTime, durationHours)
	if err != nil {
		return false, "", apperr.Validationf("%v", err)
	}

	existing, err := s.repo.ListActiveForSlot(ctx, courtID, date)
	if err != nil {
		return false, "", apperr.Persistence("failed to check slot availability", err)
	}

	return CheckConflict(existing, startTime, endTime), endTime, nil
}

func (s *service) Create(ctx context.Context, userID int, req CreateBookingRequest) (*Booking, error) {
	if err := validateDate(req.Date); err != nil {
		return nil, err
	}

	endTime, err := SlotEnd(req.StartTime, req.DurationHours)
	if err != nil {
		return nil, apperr.Validationf("%v", err)
	}

	ct, err := s.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("court not found")
		}
		return nil, apperr.Persistence("failed to load court", err)
	}

	if ct.VenueID != req.VenueID {
		return nil, apperr.Validationf("court does not belong to the given venue")
	}

	if ct.Status == court.StatusMaintenance {
		return nil, apperr.State("court is under maintenance")
	}

	v, err := s.venueRepo.GetByID(ctx, ct.VenueID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("venue not found")
		}
		return nil, apperr.Persistence("failed to load venue", err)
	}

	if v.Status != venue.StatusActive {
		return nil, apperr.NotFound("venue is not accepting bookings")
	}

	if req.StartTime < ct.OpenTime || endTime > ct.CloseTime {
		return nil, apperr.Validationf("slot %s-%s is outside the court hours %s-%s",
			req.StartTime, endTime, ct.OpenTime, ct.CloseTime)
	}

	expectedPrice := ct.PricePerHour * int64(req.DurationHours)
	if req.TotalPrice != expectedPrice {
		return nil, apperr.Validationf("total_price must be %d for %d hour(s)", expectedPrice, req.DurationHours)
	}

	created, err := s.repo.CreateIfFree(ctx, &Booking{
		UserID:     userID,
		CourtID:    req.CourtID,
		VenueID:    req.VenueID,
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    endTime,
		TotalPrice: req.TotalPrice,
	})
	if err != nil {
		if errors.Is(err, ErrSlotTaken) {
			metrics.RecordBookingConflict()
			return nil, apperr.Conflict("slot " + req.StartTime + "-" + endTime + " on " + req.Date + " is already booked")
		}
		return nil, apperr.Persistence("failed to create booking", err)
	}

	metrics.RecordBookingCreated()
	return created, nil
}

func (s *service) Get(ctx context.Context, actorID int, role string, id int) (*Booking, error) {
	b, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if role == user.RoleAdmin || b.UserID == actorID {
		return b, nil
	}

	owns, err := s.ownsVenue(ctx, actorID, b.VenueID)
	if err != nil {
		return nil, err
	}
	if !owns {
		return nil, apperr.NotFound("booking not found")
	}

	return b, nil
}

func (s *service) ListMine(ctx context.Context, userID int) ([]Booking, error) {
	bookings, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Persistence("failed to list bookings", err)
	}
	return bookings, nil
}

func (s *service) ListByVenue(ctx context.Context, actorID, venueID int) ([]Booking, error) {
	owns, err := s.ownsVenue(ctx, actorID, venueID)
	if err != nil {
		return nil, err
	}
	if !owns {
		return nil, apperr.State("only the venue owner can list venue bookings")
	}

	bookings, err := s.repo.ListByVenue(ctx, venueID)
	if err != nil {
		return nil, apperr.Persistence("failed to list bookings", err)
	}
	return bookings, nil
}

// Confirm is the venue-owner approval: pending -> confirmed. Payment status
// plays no part here; money received does not authorize slot usage.
func (s *service) Confirm(ctx context.Context, actorID, bookingID int) (*Booking, error) {
	b, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := s.requireOwner(ctx, actorID, b.VenueID, "confirm"); err != nil {
		return nil, err
	}

	updated, err := s.transition(ctx, b, []string{StatusPending}, StatusConfirmed)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, updated, StatusConfirmed)
	return updated, nil
}

func (s *service) Reject(ctx context.Context, actorID, bookingID int) (*Booking, error) {
	b, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := s.requireOwner(ctx, actorID, b.VenueID, "reject"); err != nil {
		return nil, err
	}

	updated, err := s.transition(ctx, b, []string{StatusPending}, StatusCancelled)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, updated, StatusCancelled)
	return updated, nil
}

// Cancel is available to the booking's user and to the venue owner while the
// booking is pending or confirmed. No refund is issued here; payment status
// only changes through provider notifications.
func (s *service) Cancel(ctx context.Context, actorID, bookingID int) (*Booking, error) {
	b, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if b.UserID != actorID {
		if err := s.requireOwner(ctx, actorID, b.VenueID, "cancel"); err != nil {
			return nil, err
		}
	}

	updated, err := s.transition(ctx, b, []string{StatusPending, StatusConfirmed}, StatusCancelled)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, updated, StatusCancelled)
	return updated, nil
}

// Complete marks a confirmed booking as played. Allowed only to the
// booking's user and only once the slot's start has passed.
func (s *service) Complete(ctx context.Context, actorID, bookingID int) (*Booking, error) {
	b, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if b.UserID != actorID {
		return nil, apperr.State("only the booking's user can complete it")
	}

	start, err := time.ParseInLocation(DateFormat+" "+ClockFormat, b.Date+" "+b.StartTime, time.Local)
	if err != nil {
		return nil, apperr.Persistence("stored booking has malformed slot", err)
	}
	if s.now().Before(start) {
		return nil, apperr.State("booking cannot be completed before its start time")
	}

	return s.transition(ctx, b, []string{StatusConfirmed}, StatusCompleted)
}

func (s *service) load(ctx context.Context, id int) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("booking not found")
		}
		return nil, apperr.Persistence("failed to load booking", err)
	}
	return b, nil
}

func (s *service) ownsVenue(ctx context.Context, actorID, venueID int) (bool, error) {
	v, err := s.venueRepo.GetByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, apperr.NotFound("venue not found")
		}
		return false, apperr.Persistence("failed to load venue", err)
	}
	return v.OwnerID == actorID, nil
}

func (s *service) requireOwner(ctx context.Context, actorID, venueID int, action string) error {
	owns, err := s.ownsVenue(ctx, actorID, venueID)
	if err != nil {
		return err
	}
	if !owns {
		return apperr.State("only the venue owner can " + action + " this booking")
	}
	return nil
}

func (s *service) transition(ctx context.Context, b *Booking, from []string, to string) (*Booking, error) {
	moved, err := s.repo.UpdateStatus(ctx, b.ID, from, to)
	if err != nil {
		return nil, apperr.Persistence("failed to update booking status", err)
	}
	if !moved {
		return nil, apperr.State("booking cannot move from " + b.Status + " to " + to)
	}

	metrics.RecordBookingTransition(to)
	return s.load(ctx, b.ID)
}

func (s *service) notify(ctx context.Context, b *Booking, status string) {
	if s.notifier == nil {
		return
	}

	u, err := s.userRepo.GetByID(ctx, b.UserID)
	if err != nil {
		logger.Warnf("booking %d: skip %s email, failed to load user %d: %v", b.ID, status, b.UserID, err)
		return
	}

	switch status {
	case StatusConfirmed:
		err = s.notifier.BookingConfirmed(ctx, u.Email, u.Name, b)
	case StatusCancelled:
		err = s.notifier.BookingCancelled(ctx, u.Email, u.Name, b)
	}
	if err != nil {
		logger.Warnf("booking %d: failed to queue %s email: %v", b.ID, status, err)
	}
}

func validateDate(date string) error {
	parsed, err := time.Parse(DateFormat, date)
	if err != nil || parsed.Format(DateFormat) != date {
		return apperr.Validationf("date must be YYYY-MM-DD")
	}
	return nil
}
