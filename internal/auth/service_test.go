package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sharebook/internal/platform/crypto"
	"sharebook/internal/session"
	"sharebook/internal/user"
)

const testSecret = "test-secret"

func newTestService(t *testing.T) (*Service, *MockUserFinder, *MockSessionStore) {
	ctrl := gomock.NewController(t)
	users := NewMockUserFinder(ctrl)
	sessions := NewMockSessionStore(ctrl)
	return NewService(testSecret, users, sessions), users, sessions
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := crypto.HashPassword("Secret123")
	require.NoError(t, err)
	u := user.User{ID: "user-1", Email: "ana@example.com", Password: hash}

	t.Run("success", func(t *testing.T) {
		service, users, sessions := newTestService(t)
		users.EXPECT().GetByEmail(ctx, "ana@example.com").Return(u, nil)
		var stored *session.Session
		sessions.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s *session.Session) error {
			stored = s
			return nil
		})

		tokens, err := service.Login(ctx, "ana@example.com", "Secret123", true, "curl", "1.2.3.4")

		require.NoError(t, err)
		assert.Equal(t, 900, tokens.ExpiresIn)
		claims, err := crypto.ParseToken(testSecret, tokens.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.Sub)

		require.NotNil(t, stored)
		assert.Equal(t, crypto.HashToken(tokens.RefreshToken), stored.RefreshTokenHash)
		assert.True(t, stored.ExpiresAt.After(time.Now().Add(60*24*time.Hour)))
	})

	t.Run("wrong password", func(t *testing.T) {
		service, users, _ := newTestService(t)
		users.EXPECT().GetByEmail(ctx, "ana@example.com").Return(u, nil)

		_, err := service.Login(ctx, "ana@example.com", "nope", false, "", "")

		assert.True(t, errors.Is(err, ErrUnauthorized))
	})

	t.Run("unknown user", func(t *testing.T) {
		service, users, _ := newTestService(t)
		users.EXPECT().GetByEmail(ctx, "x@example.com").Return(user.User{}, user.ErrNotFound)

		_, err := service.Login(ctx, "x@example.com", "Secret123", false, "", "")

		assert.True(t, errors.Is(err, ErrUnauthorized))
	})
}

func TestService_RefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("rotates", func(t *testing.T) {
		service, users, sessions := newTestService(t)
		oldHash := crypto.HashToken("old")
		sessions.EXPECT().GetByTokenHash(ctx, oldHash).Return(session.Session{ID: "s1", UserID: "user-1"}, nil)
		users.EXPECT().GetByID(ctx, "user-1").Return(user.User{ID: "user-1"}, nil)
		sessions.EXPECT().DeleteByTokenHash(ctx, oldHash).Return(nil)
		sessions.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		tokens, err := service.RefreshToken(ctx, "old")

		require.NoError(t, err)
		assert.NotEqual(t, "old", tokens.RefreshToken)
		assert.NotEmpty(t, tokens.AccessToken)
	})

	t.Run("unknown token", func(t *testing.T) {
		service, _, sessions := newTestService(t)
		sessions.EXPECT().GetByTokenHash(ctx, gomock.Any()).Return(session.Session{}, session.ErrNotFound)

		_, err := service.RefreshToken(ctx, "missing")

		assert.True(t, errors.Is(err, ErrUnauthorized))
	})
}

func TestService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("blacklists jti", func(t *testing.T) {
		service, _, sessions := newTestService(t)
		token, jti, err := crypto.GenerateToken(testSecret, "user-1", time.Minute)
		require.NoError(t, err)
		sessions.EXPECT().AddToBlacklist(ctx, jti, "user-1", gomock.Any()).Return(nil)

		assert.NoError(t, service.Logout(ctx, token, "user-1"))
	})

	t.Run("invalid token", func(t *testing.T) {
		service, _, _ := newTestService(t)

		err := service.Logout(ctx, "garbage", "user-1")

		assert.True(t, errors.Is(err, ErrUnauthorized))
	})
}
