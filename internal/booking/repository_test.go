package booking

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() {
		sqlxDB.Close()
	}

	return repo, mock, closer
}

func bookingRows(b Booking) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "user_id", "court_id", "venue_id", "booking_date", "start_time", "end_time",
		"total_price", "status", "payment_status", "transaction_id", "payment_type",
		"created_at", "updated_at",
	}).AddRow(b.ID, b.UserID, b.CourtID, b.VenueID, b.Date, b.StartTime, b.EndTime,
		b.TotalPrice, b.Status, b.PaymentStatus, nil, nil, now, now)
}

func TestCreateIfFree_InsertsWhenSlotFree(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\)`).
		WithArgs(7, "2026-09-01", "10:00", "12:00").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO bookings`).
		WithArgs(1, 7, 3, "2026-09-01", "10:00", "12:00", int64(200000)).
		WillReturnRows(bookingRows(Booking{
			ID: 42, UserID: 1, CourtID: 7, VenueID: 3,
			Date: "2026-09-01", StartTime: "10:00", EndTime: "12:00",
			TotalPrice: 200000, Status: StatusPending, PaymentStatus: PaymentPending,
		}))
	mock.ExpectCommit()

	b, err := repo.CreateIfFree(context.Background(), &Booking{
		UserID: 1, CourtID: 7, VenueID: 3,
		Date: "2026-09-01", StartTime: "10:00", EndTime: "12:00",
		TotalPrice: 200000,
	})
	require.NoError(t, err)
	require.Equal(t, 42, b.ID)
	require.Equal(t, StatusPending, b.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateIfFree_RejectsOverlap(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\)`).
		WithArgs(7, "2026-09-01", "10:00", "12:00").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	_, err := repo.CreateIfFree(context.Background(), &Booking{
		UserID: 1, CourtID: 7, VenueID: 3,
		Date: "2026-09-01", StartTime: "10:00", EndTime: "12:00",
		TotalPrice: 200000,
	})
	require.ErrorIs(t, err, ErrSlotTaken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_GuardsCurrentStatus(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectExec(`UPDATE bookings`).
		WithArgs(42, StatusConfirmed, pq.Array([]string{StatusPending})).
		WillReturnResult(sqlmock.NewResult(0, 1))

	moved, err := repo.UpdateStatus(context.Background(), 42, []string{StatusPending}, StatusConfirmed)
	require.NoError(t, err)
	require.True(t, moved)

	mock.ExpectExec(`UPDATE bookings`).
		WithArgs(42, StatusConfirmed, pq.Array([]string{StatusPending})).
		WillReturnResult(sqlmock.NewResult(0, 0))

	moved, err = repo.UpdateStatus(context.Background(), 42, []string{StatusPending}, StatusConfirmed)
	require.NoError(t, err)
	require.False(t, moved)
}

func TestApplyNotification_PassesFieldsThrough(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectExec(`UPDATE bookings`).
		WithArgs(42, "", PaymentPaid, "TXN-1", "qris").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.ApplyNotification(context.Background(), 42, "", PaymentPaid, "TXN-1", "qris")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListActiveForSlot(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	rows := bookingRows(Booking{
		ID: 1, UserID: 2, CourtID: 7, VenueID: 3,
		Date: "2026-09-01", StartTime: "10:00", EndTime: "12:00",
		TotalPrice: 200000, Status: StatusConfirmed, PaymentStatus: PaymentPaid,
	})

	mock.ExpectQuery(`SELECT .+ FROM bookings`).
		WithArgs(7, "2026-09-01").
		WillReturnRows(rows)

	list, err := repo.ListActiveForSlot(context.Background(), 7, "2026-09-01")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "10:00", list[0].StartTime)
}
