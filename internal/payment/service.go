package payment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/BryanJericho/courtly-web-sub000/internal/apperr"
	"github.com/BryanJericho/courtly-web-sub000/internal/booking"
	"github.com/BryanJericho/courtly-web-sub000/internal/court"
	"github.com/BryanJericho/courtly-web-sub000/internal/logger"
	"github.com/BryanJericho/courtly-web-sub000/internal/metrics"
	"github.com/BryanJericho/courtly-web-sub000/internal/user"
)

type Service interface {
	CreateSession(ctx context.Context, actorID, bookingID int) (*Session, error)
	HandleNotification(ctx context.Context, n Notification) error
	SimulateApprove(ctx context.Context, orderID string) error
}

type service struct {
	gateway     Gateway
	bookingRepo booking.Repository
	courtRepo   court.Repository
	userRepo    user.Repository
}

func NewService(
	gateway Gateway,
	bookingRepo booking.Repository,
	courtRepo court.Repository,
	userRepo user.Repository,
) Service {
	return &service{
		gateway:     gateway,
		bookingRepo: bookingRepo,
		courtRepo:   courtRepo,
		userRepo:    userRepo,
	}
}

// CreateSession opens a hosted-payment session for a booking. The order id
// sent to the provider is the booking id, which is how the webhook finds
// the booking again.
func (s *service) CreateSession(ctx context.Context, actorID, bookingID int) (*Session, error) {
	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("booking not found")
		}
		return nil, apperr.Persistence("failed to load booking", err)
	}

	if b.UserID != actorID {
		return nil, apperr.NotFound("booking not found")
	}
	if b.Status == booking.StatusCancelled {
		return nil, apperr.State("booking is cancelled")
	}
	if b.PaymentStatus != booking.PaymentPending {
		return nil, apperr.State("booking is already paid")
	}

	u, err := s.userRepo.GetByID(ctx, b.UserID)
	if err != nil {
		return nil, apperr.Persistence("failed to load user", err)
	}

	ct, err := s.courtRepo.GetByID(ctx, b.CourtID)
	if err != nil {
		return nil, apperr.Persistence("failed to load court", err)
	}

	hours := int32((parseMinutes(b.EndTime) - parseMinutes(b.StartTime)) / 60)
	session, err := s.gateway.CreateTransaction(ctx,
		strconv.Itoa(b.ID),
		b.TotalPrice,
		Customer{Name: u.Name, Email: u.Email, Phone: u.Phone},
		[]Item{{
			ID:    fmt.Sprintf("court-%d", ct.ID),
			Name:  fmt.Sprintf("%s %s %s-%s", ct.Name, b.Date, b.StartTime, b.EndTime),
			Price: ct.PricePerHour,
			Qty:   hours,
		}},
	)
	if err != nil {
		metrics.RecordPaymentSession("error")
		logger.Errorf("payment: failed to create session for booking %d: %v", b.ID, err)
		return nil, apperr.PaymentProvider("payment provider rejected the transaction", err)
	}

	metrics.RecordPaymentSession("created")
	return session, nil
}

// HandleNotification applies a provider notification to the booking named
// by its order id. The mapped update is written as one atomic statement,
// so concurrent redeliveries of the same event land in the same state. An
// unknown order id is an error on purpose: the provider's retry mechanism
// must redeliver until the booking is visible.
func (s *service) HandleNotification(ctx context.Context, n Notification) error {
	bookingID, err := strconv.Atoi(n.OrderID)
	if err != nil {
		metrics.RecordPaymentNotification(n.TransactionStatus, "invalid")
		return apperr.Validationf("order_id must be a booking id")
	}

	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		metrics.RecordPaymentNotification(n.TransactionStatus, "error")
		if errors.Is(err, sql.ErrNoRows) {
			logger.Errorf("payment: notification for unknown order %s (status=%s)", n.OrderID, n.TransactionStatus)
			return apperr.Persistence("booking not found for order "+n.OrderID, err)
		}
		return apperr.Persistence("failed to load booking", err)
	}

	upd := MapNotification(n.TransactionStatus, n.FraudStatus)

	// A late success notification must not resurrect money state on a
	// booking the provider already refunded.
	if !upd.Terminal && b.PaymentStatus == booking.PaymentRefunded {
		upd.PaymentStatus = ""
	}

	err = s.bookingRepo.ApplyNotification(ctx, b.ID, upd.BookingStatus, upd.PaymentStatus, n.TransactionID, n.PaymentType)
	if err != nil {
		metrics.RecordPaymentNotification(n.TransactionStatus, "error")
		return apperr.Persistence("failed to apply notification", err)
	}

	metrics.RecordPaymentNotification(n.TransactionStatus, "applied")
	logger.Infof("payment: order %s %s/%s applied (booking=%q payment=%q)",
		n.OrderID, n.TransactionStatus, n.FraudStatus, upd.BookingStatus, upd.PaymentStatus)
	return nil
}

// SimulateApprove marks a booking paid with a synthetic transaction id,
// standing in for the provider in non-production environments.
func (s *service) SimulateApprove(ctx context.Context, orderID string) error {
	bookingID, err := strconv.Atoi(orderID)
	if err != nil {
		return apperr.Validationf("orderId must be a booking id")
	}

	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("booking not found")
		}
		return apperr.Persistence("failed to load booking", err)
	}

	err = s.bookingRepo.ApplyNotification(ctx, b.ID, "", booking.PaymentPaid, "SIMULATED-"+orderID, "simulation")
	if err != nil {
		return apperr.Persistence("failed to apply simulated payment", err)
	}

	metrics.RecordPaymentNotification("simulated", "applied")
	return nil
}

func parseMinutes(clock string) int {
	minutes, err := booking.ParseClock(clock)
	if err != nil {
		return 0
	}
	return minutes
}
