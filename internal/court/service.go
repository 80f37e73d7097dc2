package court

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/BryanJericho/courtly-web-sub000/internal/apperr"
	"github.com/BryanJericho/courtly-web-sub000/internal/venue"
)

type Service interface {
	Create(ctx context.Context, actorID, venueID int, req CreateCourtRequest) (*Court, error)
	Get(ctx context.Context, id int) (*Court, error)
	ListByVenue(ctx context.Context, venueID int) ([]Court, error)
	Update(ctx context.Context, actorID, courtID int, req UpdateCourtRequest) (*Court, error)
}

type service struct {
	repo      Repository
	venueRepo venue.Repository
}

func NewService(repo Repository, venueRepo venue.Repository) Service {
	return &service{repo: repo, venueRepo: venueRepo}
}

func (s *service) Create(ctx context.Context, actorID, venueID int, req CreateCourtRequest) (*Court, error) {
	if err := validateWindow(req.OpenTime, req.CloseTime); err != nil {
		return nil, err
	}

	v, err := s.venueRepo.GetByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("venue not found")
		}
		return nil, apperr.Persistence("failed to load venue", err)
	}

	if v.OwnerID != actorID {
		return nil, apperr.State("only the venue owner can add courts")
	}

	ct, err := s.repo.Create(ctx, venueID, req)
	if err != nil {
		return nil, apperr.Persistence("failed to create court", err)
	}
	return ct, nil
}

func (s *service) Get(ctx context.Context, id int) (*Court, error) {
	ct, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("court not found")
		}
		return nil, apperr.Persistence("failed to load court", err)
	}
	return ct, nil
}

func (s *service) ListByVenue(ctx context.Context, venueID int) ([]Court, error) {
	courts, err := s.repo.ListByVenue(ctx, venueID)
	if err != nil {
		return nil, apperr.Persistence("failed to list courts", err)
	}
	return courts, nil
}

func (s *service) Update(ctx context.Context, actorID, courtID int, req UpdateCourtRequest) (*Court, error) {
	if err := validateWindow(req.OpenTime, req.CloseTime); err != nil {
		return nil, err
	}

	ct, err := s.Get(ctx, courtID)
	if err != nil {
		return nil, err
	}

	v, err := s.venueRepo.GetByID(ctx, ct.VenueID)
	if err != nil {
		return nil, apperr.Persistence("failed to load venue", err)
	}

	if v.OwnerID != actorID {
		return nil, apperr.State("only the venue owner can update this court")
	}

	updated, err := s.repo.Update(ctx, courtID, req)
	if err != nil {
		return nil, apperr.Persistence("failed to update court", err)
	}
	return updated, nil
}

func validateWindow(openTime, closeTime string) error {
	if _, err := time.Parse("15:04", openTime); err != nil {
		return apperr.Validationf("open_time must be HH:MM")
	}
	if _, err := time.Parse("15:04", closeTime); err != nil {
		return apperr.Validationf("close_time must be HH:MM")
	}
	// Zero-padded HH:MM strings order lexicographically.
	if openTime >= closeTime {
		return apperr.Validationf("open_time must be before close_time")
	}
	return nil
}
