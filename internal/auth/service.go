package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sharebook/internal/platform/crypto"
	"sharebook/internal/session"
)

var ErrUnauthorized = errors.New("unauthorized")

const (
	accessTokenTTL     = 15 * time.Minute
	refreshTokenTTL    = 30 * 24 * time.Hour
	rememberMeTokenTTL = 90 * 24 * time.Hour
	refreshTokenBytes  = 32
)

// Tokens is the pair returned by Login and RefreshToken.
type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

type Service struct {
	secret   string
	users    UserFinder
	sessions SessionStore
	now      func() time.Time
}

func NewService(secret string, users UserFinder, sessions SessionStore) *Service {
	return &Service{
		secret:   secret,
		users:    users,
		sessions: sessions,
		now:      time.Now,
	}
}

func sessionTTL(rememberMe bool) time.Duration {
	if rememberMe {
		return rememberMeTokenTTL
	}
	return refreshTokenTTL
}

func (s *Service) Login(ctx context.Context, email, password string, rememberMe bool, userAgent, ipAddress string) (Tokens, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil || !crypto.VerifyPassword(u.Password, password) {
		return Tokens{}, ErrUnauthorized
	}

	sess := &session.Session{
		UserID:     u.ID,
		UserAgent:  userAgent,
		IPAddress:  ipAddress,
		RememberMe: rememberMe,
	}
	return s.issue(ctx, sess)
}

// RefreshToken rotates a refresh token: the presented one is consumed and a
// new session row carries the replacement.
func (s *Service) RefreshToken(ctx context.Context, refreshToken string) (Tokens, error) {
	tokenHash := crypto.HashToken(refreshToken)
	sess, err := s.sessions.GetByTokenHash(ctx, tokenHash)
	if err != nil {
		return Tokens{}, ErrUnauthorized
	}

	if _, err := s.users.GetByID(ctx, sess.UserID); err != nil {
		return Tokens{}, ErrUnauthorized
	}

	if err := s.sessions.DeleteByTokenHash(ctx, tokenHash); err != nil {
		return Tokens{}, fmt.Errorf("consume refresh token: %w", err)
	}

	next := &session.Session{
		UserID:     sess.UserID,
		UserAgent:  sess.UserAgent,
		IPAddress:  sess.IPAddress,
		RememberMe: sess.RememberMe,
	}
	return s.issue(ctx, next)
}

func (s *Service) issue(ctx context.Context, sess *session.Session) (Tokens, error) {
	accessToken, _, err := crypto.GenerateToken(s.secret, sess.UserID, accessTokenTTL)
	if err != nil {
		return Tokens{}, fmt.Errorf("sign access token: %w", err)
	}

	refreshToken, err := crypto.RandomToken(refreshTokenBytes)
	if err != nil {
		return Tokens{}, fmt.Errorf("generate refresh token: %w", err)
	}
	sess.RefreshTokenHash = crypto.HashToken(refreshToken)
	sess.ExpiresAt = s.now().Add(sessionTTL(sess.RememberMe))

	if err := s.sessions.Create(ctx, sess); err != nil {
		return Tokens{}, err
	}

	return Tokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(accessTokenTTL.Seconds()),
	}, nil
}

// Logout blacklists the access token until it would have expired anyway.
func (s *Service) Logout(ctx context.Context, token, userID string) error {
	claims, err := crypto.ParseToken(s.secret, token)
	if err != nil {
		return ErrUnauthorized
	}

	expiresAt := s.now().Add(accessTokenTTL)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return s.sessions.AddToBlacklist(ctx, claims.ID, userID, expiresAt)
}
