package email

import (
	"context"
	"os"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"

	"github.com/BryanJericho/courtly-web-sub000/internal/booking"
	"github.com/BryanJericho/courtly-web-sub000/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Init()

	code := m.Run()
	os.Exit(code)
}

func TestSend(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.Regexp().ExpectLPush("emails", `.*`).SetVal(1)

	svc := NewWithClient(db, "noreply@courtly.com", "Courtly Team")

	err := svc.Send(ctx, "user@example.com", "User", "Hello", "Test body")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingConfirmed(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.Regexp().ExpectLPush("emails", `.*Booking Confirmed.*`).SetVal(1)

	svc := NewWithClient(db, "noreply@courtly.com", "Courtly Team")

	b := &booking.Booking{ID: 42, Date: "2026-09-01", StartTime: "10:00", EndTime: "12:00"}
	err := svc.BookingConfirmed(ctx, "user@example.com", "Andi", b)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingCancelled(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.Regexp().ExpectLPush("emails", `.*Booking Cancelled.*`).SetVal(1)

	svc := NewWithClient(db, "noreply@courtly.com", "Courtly Team")

	b := &booking.Booking{ID: 42, Date: "2026-09-01", StartTime: "10:00", EndTime: "12:00"}
	err := svc.BookingCancelled(ctx, "user@example.com", "Andi", b)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueueLength(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.ExpectLLen("emails").SetVal(3)

	svc := NewWithClient(db, "noreply@courtly.com", "Courtly Team")

	assert.Equal(t, int64(3), svc.QueueLength(ctx))
	assert.NoError(t, mock.ExpectationsWereMet())
}
