package user

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"sharebook/internal/platform/crypto"
	"sharebook/internal/platform/objectstore"
	"sharebook/internal/platform/postalcode"
)

type Service struct {
	repo    Repository
	storage PhotoStorage
	regions RegionResolver
}

func NewService(repo Repository, storage PhotoStorage, regions RegionResolver) *Service {
	return &Service{repo: repo, storage: storage, regions: regions}
}

// Register creates an account. The postal code must resolve to a region so
// every stored user can later be placed on the map.
func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return User{}, ErrAlreadyExists
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	postalCode := strings.TrimSpace(in.PostalCode)
	if _, err := s.regions.Resolve(ctx, postalCode); err != nil {
		if errors.Is(err, postalcode.ErrNotFound) {
			return User{}, fmt.Errorf("%w: %s", ErrUnknownPostalCode, postalCode)
		}
		return User{}, err
	}

	hashed, err := crypto.HashPassword(in.Password)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	u := &User{
		Email:      email,
		Name:       strings.TrimSpace(in.Name),
		Password:   hashed,
		City:       strings.TrimSpace(in.City),
		PostalCode: postalCode,
	}
	if err := s.repo.Create(ctx, u, in.GenreIDs); err != nil {
		return User{}, err
	}
	return *u, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (User, error) {
	return s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

// ListByIDs returns the users found among ids keyed by id. Missing ids are
// simply absent from the map.
func (s *Service) ListByIDs(ctx context.Context, ids []string) (map[string]User, error) {
	users, err := s.repo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make(map[string]User, len(users))
	for _, u := range users {
		out[u.ID] = u
	}
	return out, nil
}

// UpdatePhoto stores a new profile photo under a fresh key and drops the
// previous object once the row points at the new one.
func (s *Service) UpdatePhoto(ctx context.Context, userID string, data []byte) (User, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return User{}, err
	}

	key := uuid.NewString()
	if err := s.storage.Put(ctx, objectstore.UserImages, key, data, http.DetectContentType(data)); err != nil {
		return User{}, err
	}
	if err := s.repo.UpdatePhoto(ctx, userID, key); err != nil {
		if rmErr := s.storage.Remove(ctx, objectstore.UserImages, key); rmErr != nil {
			log.Warn().Err(rmErr).Str("key", key).Msg("orphaned profile photo")
		}
		return User{}, err
	}
	if u.ProfilePhoto != "" {
		if err := s.storage.Remove(ctx, objectstore.UserImages, u.ProfilePhoto); err != nil {
			log.Warn().Err(err).Str("key", u.ProfilePhoto).Msg("could not remove previous profile photo")
		}
	}

	u.ProfilePhoto = key
	return u, nil
}

// PhotoURL resolves the display URL of a user's profile photo.
func (s *Service) PhotoURL(ctx context.Context, u User) (string, error) {
	return s.storage.URL(ctx, objectstore.UserImages, u.ProfilePhoto)
}
