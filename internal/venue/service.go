package venue

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/BryanJericho/courtly-web-sub000/internal/apperr"
)

type Service interface {
	Create(ctx context.Context, ownerID int, req CreateVenueRequest) (*Venue, error)
	Get(ctx context.Context, id int) (*Venue, error)
	ListActive(ctx context.Context) ([]Venue, error)
	ListMine(ctx context.Context, ownerID int) ([]Venue, error)
	Update(ctx context.Context, actorID, venueID int, req UpdateVenueRequest) (*Venue, error)
	Approve(ctx context.Context, venueID int) (*Venue, error)
	Deactivate(ctx context.Context, venueID int) (*Venue, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, ownerID int, req CreateVenueRequest) (*Venue, error) {
	v, err := s.repo.Create(ctx, ownerID, req)
	if err != nil {
		return nil, apperr.Persistence("failed to create venue", err)
	}
	return v, nil
}

func (s *service) Get(ctx context.Context, id int) (*Venue, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("venue not found")
		}
		return nil, apperr.Persistence("failed to load venue", err)
	}
	return v, nil
}

func (s *service) ListActive(ctx context.Context) ([]Venue, error) {
	venues, err := s.repo.ListByStatus(ctx, StatusActive)
	if err != nil {
		return nil, apperr.Persistence("failed to list venues", err)
	}
	return venues, nil
}

func (s *service) ListMine(ctx context.Context, ownerID int) ([]Venue, error) {
	venues, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperr.Persistence("failed to list venues", err)
	}
	return venues, nil
}

func (s *service) Update(ctx context.Context, actorID, venueID int, req UpdateVenueRequest) (*Venue, error) {
	v, err := s.Get(ctx, venueID)
	if err != nil {
		return nil, err
	}

	if v.OwnerID != actorID {
		return nil, apperr.State("only the venue owner can update this venue")
	}

	updated, err := s.repo.Update(ctx, venueID, req)
	if err != nil {
		return nil, apperr.Persistence("failed to update venue", err)
	}
	return updated, nil
}

// Approve is the admin-exclusive pending_approval -> active transition.
func (s *service) Approve(ctx context.Context, venueID int) (*Venue, error) {
	return s.transition(ctx, venueID, []string{StatusPendingApproval}, StatusActive)
}

func (s *service) Deactivate(ctx context.Context, venueID int) (*Venue, error) {
	return s.transition(ctx, venueID, []string{StatusPendingApproval, StatusActive}, StatusInactive)
}

func (s *service) transition(ctx context.Context, venueID int, from []string, to string) (*Venue, error) {
	v, err := s.Get(ctx, venueID)
	if err != nil {
		return nil, err
	}

	moved, err := s.repo.UpdateStatus(ctx, venueID, from, to)
	if err != nil {
		return nil, apperr.Persistence("failed to update venue status", err)
	}
	if !moved {
		return nil, apperr.State(fmt.Sprintf("venue cannot move from %s to %s", v.Status, to))
	}

	return s.Get(ctx, venueID)
}
