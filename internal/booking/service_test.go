package booking

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/BryanJericho/courtly-web-sub000/internal/apperr"
	"github.com/BryanJericho/courtly-web-sub000/internal/court"
	"github.com/BryanJericho/courtly-web-sub000/internal/user"
	"github.com/BryanJericho/courtly-web-sub000/internal/venue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock repositories
type MockBookingRepo struct{ mock.Mock }
type MockCourtRepo struct{ mock.Mock }
type MockVenueRepo struct{ mock.Mock }
type MockUserRepo struct{ mock.Mock }

func (m *MockBookingRepo) ListActiveForSlot(ctx context.Context, courtID int, date string) ([]Booking, error) {
	args := m.Called(ctx, courtID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Booking), args.Error(1)
}

func (m *MockBookingRepo) CreateIfFree(ctx context.Context, b *Booking) (*Booking, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockBookingRepo) GetByID(ctx context.Context, id int) (*Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockBookingRepo) ListByUser(ctx context.Context, userID int) ([]Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Booking), args.Error(1)
}

func (m *MockBookingRepo) ListByVenue(ctx context.Context, venueID int) ([]Booking, error) {
	args := m.Called(ctx, venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Booking), args.Error(1)
}

func (m *MockBookingRepo) UpdateStatus(ctx context.Context, id int, from []string, to string) (bool, error) {
	args := m.Called(ctx, id, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepo) ApplyNotification(ctx context.Context, id int, status, paymentStatus, transactionID, paymentType string) error {
	return m.Called(ctx, id, status, paymentStatus, transactionID, paymentType).Error(0)
}

func (m *MockCourtRepo) Create(ctx context.Context, venueID int, req court.CreateCourtRequest) (*court.Court, error) {
	args := m.Called(ctx, venueID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*court.Court), args.Error(1)
}

func (m *MockCourtRepo) GetByID(ctx context.Context, id int) (*court.Court, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*court.Court), args.Error(1)
}

func (m *MockCourtRepo) ListByVenue(ctx context.Context, venueID int) ([]court.Court, error) {
	args := m.Called(ctx, venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]court.Court), args.Error(1)
}

func (m *MockCourtRepo) Update(ctx context.Context, id int, req court.UpdateCourtRequest) (*court.Court, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*court.Court), args.Error(1)
}

func (m *MockVenueRepo) Create(ctx context.Context, ownerID int, req venue.CreateVenueRequest) (*venue.Venue, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*venue.Venue), args.Error(1)
}

func (m *MockVenueRepo) GetByID(ctx context.Context, id int) (*venue.Venue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*venue.Venue), args.Error(1)
}

func (m *MockVenueRepo) ListByStatus(ctx context.Context, status string) ([]venue.Venue, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]venue.Venue), args.Error(1)
}

func (m *MockVenueRepo) ListByOwner(ctx context.Context, ownerID int) ([]venue.Venue, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]venue.Venue), args.Error(1)
}

func (m *MockVenueRepo) Update(ctx context.Context, id int, req venue.UpdateVenueRequest) (*venue.Venue, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*venue.Venue), args.Error(1)
}

func (m *MockVenueRepo) UpdateStatus(ctx context.Context, id int, from []string, to string) (bool, error) {
	args := m.Called(ctx, id, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepo) Create(ctx context.Context, name, email, passwordHash, role, phone string) (*user.User, error) {
	args := m.Called(ctx, name, email, passwordHash, role, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func newTestService(repo *MockBookingRepo, courtRepo *MockCourtRepo, venueRepo *MockVenueRepo, userRepo *MockUserRepo) *service {
	return &service{
		repo:      repo,
		courtRepo: courtRepo,
		venueRepo: venueRepo,
		userRepo:  userRepo,
		now:       time.Now,
	}
}

func activeCourt() *court.Court {
	return &court.Court{
		ID:           7,
		VenueID:      3,
		Name:         "Court A",
		Sport:        "futsal",
		PricePerHour: 100_000,
		OpenTime:     "08:00",
		CloseTime:    "22:00",
		Status:       court.StatusAvailable,
	}
}

func activeVenue() *venue.Venue {
	return &venue.Venue{ID: 3, OwnerID: 9, Status: venue.StatusActive}
}

func validCreateRequest() CreateBookingRequest {
	return CreateBookingRequest{
		CourtID:       7,
		VenueID:       3,
		Date:          "2026-09-01",
		StartTime:     "10:00",
		DurationHours: 2,
		TotalPrice:    200_000,
	}
}

func TestCreateBooking_Success(t *testing.T) {
	repo := new(MockBookingRepo)
	courtRepo := new(MockCourtRepo)
	venueRepo := new(MockVenueRepo)
	svc := newTestService(repo, courtRepo, venueRepo, new(MockUserRepo))

	courtRepo.On("GetByID", mock.Anything, 7).Return(activeCourt(), nil)
	venueRepo.On("GetByID", mock.Anything, 3).Return(activeVenue(), nil)
	repo.On("CreateIfFree", mock.Anything, mock.MatchedBy(func(b *Booking) bool {
		return b.UserID == 1 && b.StartTime == "10:00" && b.EndTime == "12:00"
	})).Return(&Booking{ID: 42, UserID: 1, Status: StatusPending, PaymentStatus: PaymentPending}, nil)

	b, err := svc.Create(context.Background(), 1, validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, 42, b.ID)
	assert.Equal(t, StatusPending, b.Status)
	repo.AssertExpectations(t)
}

func TestCreateBooking_SlotTaken(t *testing.T) {
	repo := new(MockBookingRepo)
	courtRepo := new(MockCourtRepo)
	venueRepo := new(MockVenueRepo)
	svc := newTestService(repo, courtRepo, venueRepo, new(MockUserRepo))

	courtRepo.On("GetByID", mock.Anything, 7).Return(activeCourt(), nil)
	venueRepo.On("GetByID", mock.Anything, 3).Return(activeVenue(), nil)
	repo.On("CreateIfFree", mock.Anything, mock.Anything).Return(nil, ErrSlotTaken)

	_, err := svc.Create(context.Background(), 1, validCreateRequest())
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestCreateBooking_Validation(t *testing.T) {
	repo := new(MockBookingRepo)
	courtRepo := new(MockCourtRepo)
	venueRepo := new(MockVenueRepo)
	svc := newTestService(repo, courtRepo, venueRepo, new(MockUserRepo))

	courtRepo.On("GetByID", mock.Anything, 7).Return(activeCourt(), nil)
	venueRepo.On("GetByID", mock.Anything, 3).Return(activeVenue(), nil)

	t.Run("bad date", func(t *testing.T) {
		req := validCreateRequest()
		req.Date = "01-09-2026"
		_, err := svc.Create(context.Background(), 1, req)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("slot past midnight", func(t *testing.T) {
		req := validCreateRequest()
		req.StartTime = "23:00"
		_, err := svc.Create(context.Background(), 1, req)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("venue mismatch", func(t *testing.T) {
		req := validCreateRequest()
		req.VenueID = 99
		_, err := svc.Create(context.Background(), 1, req)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("outside court hours", func(t *testing.T) {
		req := validCreateRequest()
		req.StartTime = "21:00"
		_, err := svc.Create(context.Background(), 1, req)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("wrong price", func(t *testing.T) {
		req := validCreateRequest()
		req.TotalPrice = 150_000
		_, err := svc.Create(context.Background(), 1, req)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	repo.AssertNotCalled(t, "CreateIfFree", mock.Anything, mock.Anything)
}

func TestCreateBooking_CourtNotFound(t *testing.T) {
	repo := new(MockBookingRepo)
	courtRepo := new(MockCourtRepo)
	svc := newTestService(repo, courtRepo, new(MockVenueRepo), new(MockUserRepo))

	courtRepo.On("GetByID", mock.Anything, 7).Return(nil, sql.ErrNoRows)

	_, err := svc.Create(context.Background(), 1, validCreateRequest())
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestCreateBooking_CourtMaintenance(t *testing.T) {
	repo := new(MockBookingRepo)
	courtRepo := new(MockCourtRepo)
	svc := newTestService(repo, courtRepo, new(MockVenueRepo), new(MockUserRepo))

	ct := activeCourt()
	ct.Status = court.StatusMaintenance
	courtRepo.On("GetByID", mock.Anything, 7).Return(ct, nil)

	_, err := svc.Create(context.Background(), 1, validCreateRequest())
	assert.Equal(t, apperr.KindState, apperr.KindOf(err))
}

func TestCreateBooking_VenueNotActive(t *testing.T) {
	repo := new(MockBookingRepo)
	courtRepo := new(MockCourtRepo)
	venueRepo := new(MockVenueRepo)
	svc := newTestService(repo, courtRepo, venueRepo, new(MockUserRepo))

	v := activeVenue()
	v.Status = venue.StatusPendingApproval
	courtRepo.On("GetByID", mock.Anything, 7).Return(activeCourt(), nil)
	venueRepo.On("GetByID", mock.Anything, 3).Return(v, nil)

	_, err := svc.Create(context.Background(), 1, validCreateRequest())
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestHasConflict(t *testing.T) {
	repo := new(MockBookingRepo)
	svc := newTestService(repo, new(MockCourtRepo), new(MockVenueRepo), new(MockUserRepo))

	repo.On("ListActiveForSlot", mock.Anything, 7, "2026-09-01").Return([]Booking{
		{StartTime: "10:00", EndTime: "12:00", Status: StatusConfirmed},
	}, nil)

	taken, end, err := svc.HasConflict(context.Background(), 7, "2026-09-01", "11:00", 2)
	require.NoError(t, err)
	assert.True(t, taken)
	assert.Equal(t, "13:00", end)

	taken, end, err = svc.HasConflict(context.Background(), 7, "2026-09-01", "12:00", 1)
	require.NoError(t, err)
	assert.False(t, taken)
	assert.Equal(t, "13:00", end)
}

func TestHasConflict_StoreError(t *testing.T) {
	repo := new(MockBookingRepo)
	svc := newTestService(repo, new(MockCourtRepo), new(MockVenueRepo), new(MockUserRepo))

	repo.On("ListActiveForSlot", mock.Anything, 7, "2026-09-01").Return(nil, errors.New("connection reset"))

	_, _, err := svc.HasConflict(context.Background(), 7, "2026-09-01", "10:00", 1)
	require.Error(t, err)
	assert.Equal(t, apperr.KindPersistence, apperr.KindOf(err))
}

func TestConfirm_OwnerOnly(t *testing.T) {
	repo := new(MockBookingRepo)
	venueRepo := new(MockVenueRepo)
	userRepo := new(MockUserRepo)
	svc := newTestService(repo, new(MockCourtRepo), venueRepo, userRepo)

	pending := &Booking{ID: 42, UserID: 1, VenueID: 3, Status: StatusPending}
	confirmed := &Booking{ID: 42, UserID: 1, VenueID: 3, Status: StatusConfirmed}

	repo.On("GetByID", mock.Anything, 42).Return(pending, nil).Once()
	venueRepo.On("GetByID", mock.Anything, 3).Return(activeVenue(), nil)
	repo.On("UpdateStatus", mock.Anything, 42, []string{StatusPending}, StatusConfirmed).Return(true, nil)
	repo.On("GetByID", mock.Anything, 42).Return(confirmed, nil)
	userRepo.On("GetByID", mock.Anything, 1).Return(&user.User{ID: 1, Email: "a@b.c", Name: "Andi"}, nil)

	b, err := svc.Confirm(context.Background(), 9, 42)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, b.Status)

	// A non-owner actor is refused before any status change.
	repo2 := new(MockBookingRepo)
	venueRepo2 := new(MockVenueRepo)
	svc2 := newTestService(repo2, new(MockCourtRepo), venueRepo2, userRepo)
	repo2.On("GetByID", mock.Anything, 42).Return(pending, nil)
	venueRepo2.On("GetByID", mock.Anything, 3).Return(activeVenue(), nil)

	_, err = svc2.Confirm(context.Background(), 5, 42)
	assert.Equal(t, apperr.KindState, apperr.KindOf(err))
	repo2.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirm_AlreadyCancelled(t *testing.T) {
	repo := new(MockBookingRepo)
	venueRepo := new(MockVenueRepo)
	svc := newTestService(repo, new(MockCourtRepo), venueRepo, new(MockUserRepo))

	cancelled := &Booking{ID: 42, UserID: 1, VenueID: 3, Status: StatusCancelled}
	repo.On("GetByID", mock.Anything, 42).Return(cancelled, nil)
	venueRepo.On("GetByID", mock.Anything, 3).Return(activeVenue(), nil)
	repo.On("UpdateStatus", mock.Anything, 42, []string{StatusPending}, StatusConfirmed).Return(false, nil)

	_, err := svc.Confirm(context.Background(), 9, 42)
	assert.Equal(t, apperr.KindState, apperr.KindOf(err))
}

func TestCancel_UserAndOwner(t *testing.T) {
	confirmed := &Booking{ID: 42, UserID: 1, VenueID: 3, Status: StatusConfirmed}
	after := &Booking{ID: 42, UserID: 1, VenueID: 3, Status: StatusCancelled}

	t.Run("booking user", func(t *testing.T) {
		repo := new(MockBookingRepo)
		userRepo := new(MockUserRepo)
		svc := newTestService(repo, new(MockCourtRepo), new(MockVenueRepo), userRepo)

		repo.On("GetByID", mock.Anything, 42).Return(confirmed, nil).Once()
		repo.On("UpdateStatus", mock.Anything, 42, []string{StatusPending, StatusConfirmed}, StatusCancelled).Return(true, nil)
		repo.On("GetByID", mock.Anything, 42).Return(after, nil)
		userRepo.On("GetByID", mock.Anything, 1).Return(&user.User{ID: 1, Email: "a@b.c", Name: "Andi"}, nil)

		b, err := svc.Cancel(context.Background(), 1, 42)
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, b.Status)
	})

	t.Run("stranger refused", func(t *testing.T) {
		repo := new(MockBookingRepo)
		venueRepo := new(MockVenueRepo)
		svc := newTestService(repo, new(MockCourtRepo), venueRepo, new(MockUserRepo))

		repo.On("GetByID", mock.Anything, 42).Return(confirmed, nil)
		venueRepo.On("GetByID", mock.Anything, 3).Return(activeVenue(), nil)

		_, err := svc.Cancel(context.Background(), 777, 42)
		assert.Equal(t, apperr.KindState, apperr.KindOf(err))
	})
}

func TestComplete_TimeGuard(t *testing.T) {
	repo := new(MockBookingRepo)
	svc := newTestService(repo, new(MockCourtRepo), new(MockVenueRepo), new(MockUserRepo))

	confirmed := &Booking{
		ID: 42, UserID: 1, VenueID: 3,
		Date: "2026-09-01", StartTime: "10:00", EndTime: "12:00",
		Status: StatusConfirmed,
	}
	repo.On("GetByID", mock.Anything, 42).Return(confirmed, nil)

	// Clock frozen one hour before the slot starts.
	svc.now = func() time.Time {
		return time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local)
	}
	_, err := svc.Complete(context.Background(), 1, 42)
	assert.Equal(t, apperr.KindState, apperr.KindOf(err))

	// Once the slot has started it can be completed.
	svc.now = func() time.Time {
		return time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)
	}
	done := &Booking{ID: 42, UserID: 1, VenueID: 3, Status: StatusCompleted}
	repo.On("UpdateStatus", mock.Anything, 42, []string{StatusConfirmed}, StatusCompleted).Return(true, nil)
	repo.On("GetByID", mock.Anything, 42).Return(done, nil)

	b, err := svc.Complete(context.Background(), 1, 42)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, b.Status)
}

func TestComplete_WrongActor(t *testing.T) {
	repo := new(MockBookingRepo)
	svc := newTestService(repo, new(MockCourtRepo), new(MockVenueRepo), new(MockUserRepo))

	confirmed := &Booking{ID: 42, UserID: 1, VenueID: 3, Date: "2026-09-01", StartTime: "10:00", Status: StatusConfirmed}
	repo.On("GetByID", mock.Anything, 42).Return(confirmed, nil)

	_, err := svc.Complete(context.Background(), 9, 42)
	assert.Equal(t, apperr.KindState, apperr.KindOf(err))
}

func TestGet_Visibility(t *testing.T) {
	b := &Booking{ID: 42, UserID: 1, VenueID: 3, Status: StatusPending}

	repo := new(MockBookingRepo)
	venueRepo := new(MockVenueRepo)
	svc := newTestService(repo, new(MockCourtRepo), venueRepo, new(MockUserRepo))

	repo.On("GetByID", mock.Anything, 42).Return(b, nil)
	venueRepo.On("GetByID", mock.Anything, 3).Return(activeVenue(), nil)

	got, err := svc.Get(context.Background(), 1, user.RoleUser, 42)
	require.NoError(t, err)
	assert.Equal(t, 42, got.ID)

	_, err = svc.Get(context.Background(), 9, user.RolePenjaga, 42)
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), 777, user.RoleUser, 42)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = svc.Get(context.Background(), 777, user.RoleAdmin, 42)
	require.NoError(t, err)
}
