package rescue

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) FindAll(ctx context.Context) ([]Rescue, error) {
	return s.repo.List(ctx)
}

// FindIfABookWasRequested reports whether any request, whatever its status,
// references bookID. Book edits and deletes are blocked on this.
func (s *Service) FindIfABookWasRequested(ctx context.Context, bookID string) (bool, error) {
	ok, err := s.repo.ExistsForBook(ctx, bookID)
	if err != nil {
		return false, fmt.Errorf("check requests of book %s: %w", bookID, err)
	}
	return ok, nil
}

func (s *Service) FindIfUserHasRequestedBook(ctx context.Context, bookID, userID string) (bool, error) {
	ok, err := s.repo.ExistsForBookAndUser(ctx, bookID, userID)
	if err != nil {
		return false, fmt.Errorf("check request of book %s by %s: %w", bookID, userID, err)
	}
	return ok, nil
}

func (s *Service) ListByBook(ctx context.Context, bookID string) ([]Rescue, error) {
	return s.repo.ListByBook(ctx, bookID)
}

func (s *Service) ListByRequester(ctx context.Context, requesterID string) ([]Rescue, error) {
	return s.repo.ListByRequester(ctx, requesterID)
}

// Create records a pending request. Owners cannot request their own books
// and a user holds at most one request per book.
func (s *Service) Create(ctx context.Context, bookID, requesterID string) (Rescue, error) {
	owner, err := s.repo.BookOwner(ctx, bookID)
	if err != nil {
		return Rescue{}, err
	}
	if owner == requesterID {
		return Rescue{}, ErrOwnBook
	}

	res := &Rescue{BookID: bookID, RequesterID: requesterID, Status: StatusPending}
	if err := s.repo.Create(ctx, res); err != nil {
		return Rescue{}, err
	}
	return *res, nil
}
