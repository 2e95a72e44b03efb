package bookstate

import (
	"context"
	"sync"
)

// Service serves book states. The table is seeded once and never edited
// through the API, so lookups are memoised per process.
type Service struct {
	repo Repository

	mu    sync.RWMutex
	names map[string]State
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, names: make(map[string]State)}
}

func (s *Service) FindOne(ctx context.Context, id string) (State, error) {
	s.mu.RLock()
	st, ok := s.names[id]
	s.mu.RUnlock()
	if ok {
		return st, nil
	}

	st, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return State{}, err
	}

	s.mu.Lock()
	s.names[id] = st
	s.mu.Unlock()
	return st, nil
}

func (s *Service) List(ctx context.Context) ([]State, error) {
	return s.repo.List(ctx)
}
