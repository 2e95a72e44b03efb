package genre

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

func (s *Service) List(ctx context.Context) ([]Genre, error) {
	return s.repo.List(ctx)
}

// FindAllByUserID returns the ids of the genres a user declared affinity with.
func (s *Service) FindAllByUserID(ctx context.Context, userID string) ([]string, error) {
	ids, err := s.repo.IDsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("genres of user %s: %w", userID, err)
	}
	return ids, nil
}

func (s *Service) FindAllByBookID(ctx context.Context, bookID string) ([]string, error) {
	ids, err := s.repo.IDsByBook(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("genres of book %s: %w", bookID, err)
	}
	return ids, nil
}

func (s *Service) FindAllByBookIDs(ctx context.Context, bookIDs []string) (map[string][]string, error) {
	ids, err := s.repo.IDsByBooks(ctx, bookIDs)
	if err != nil {
		return nil, fmt.Errorf("genres of %d books: %w", len(bookIDs), err)
	}
	return ids, nil
}

// FindGenderName returns the display names of a book's genres.
func (s *Service) FindGenderName(ctx context.Context, bookID string) ([]string, error) {
	names, err := s.repo.NamesByBook(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("genre names of book %s: %w", bookID, err)
	}
	return names, nil
}
