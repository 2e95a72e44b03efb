package session

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

type Service struct {
	repo          Repository
	blacklistRepo BlacklistRepository
}

func NewService(repo Repository, blacklistRepo BlacklistRepository) *Service {
	return &Service{
		repo:          repo,
		blacklistRepo: blacklistRepo,
	}
}

func (s *Service) ListByUserID(ctx context.Context, userID string) ([]Session, error) {
	return s.repo.ListByUserID(ctx, userID)
}

func (s *Service) DeleteForUser(ctx context.Context, sessionID, userID string) error {
	return s.repo.DeleteForUser(ctx, sessionID, userID)
}

func (s *Service) Create(ctx context.Context, session *Session) error {
	return s.repo.Create(ctx, session)
}

func (s *Service) GetByTokenHash(ctx context.Context, hash string) (Session, error) {
	return s.repo.GetByTokenHash(ctx, hash)
}

func (s *Service) DeleteByTokenHash(ctx context.Context, hash string) error {
	return s.repo.DeleteByTokenHash(ctx, hash)
}

func (s *Service) Touch(ctx context.Context, sessionID string) error {
	return s.repo.UpdateLastUsed(ctx, sessionID)
}

func (s *Service) AddToBlacklist(ctx context.Context, jti, userID string, expiresAt time.Time) error {
	return s.blacklistRepo.AddToken(ctx, jti, userID, expiresAt)
}

func (s *Service) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	return s.blacklistRepo.IsBlacklisted(ctx, jti)
}

// Cleanup drops expired sessions and blacklist entries.
func (s *Service) Cleanup(ctx context.Context) error {
	sessions, err := s.repo.CleanupExpired(ctx)
	if err != nil {
		return err
	}
	tokens, err := s.blacklistRepo.CleanupExpired(ctx)
	if err != nil {
		return err
	}
	if sessions > 0 || tokens > 0 {
		log.Info().Int64("sessions", sessions).Int64("tokens", tokens).Msg("expired auth records removed")
	}
	return nil
}

// RunCleanup calls Cleanup every interval until ctx is done. Failures are
// logged and retried on the next tick.
func (s *Service) RunCleanup(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := s.Cleanup(ctx); err != nil && ctx.Err() == nil {
				log.Warn().Err(err).Msg("auth cleanup failed")
			}
		}
	}
}
