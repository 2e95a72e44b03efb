package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"sharebook/internal/httpx"
)

func TestService_Cleanup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	mockBlacklist := NewMockBlacklistRepository(ctrl)
	service := NewService(mockRepo, mockBlacklist)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().CleanupExpired(ctx).Return(int64(3), nil)
		mockBlacklist.EXPECT().CleanupExpired(ctx).Return(int64(1), nil)

		assert.NoError(t, service.Cleanup(ctx))
	})

	t.Run("session cleanup fails", func(t *testing.T) {
		mockRepo.EXPECT().CleanupExpired(ctx).Return(int64(0), errors.New("db down"))

		assert.Error(t, service.Cleanup(ctx))
	})
}

func TestService_RunCleanupStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	service := NewService(NewMockRepository(ctrl), NewMockBlacklistRepository(ctrl))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, service.RunCleanup(ctx, time.Hour))
}

func TestHTTPHandler_DeleteSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	handler := NewHTTPHandler(NewService(mockRepo, NewMockBlacklistRepository(ctrl)))

	const sessionID = "7f1c2a9e-3b4d-4e5f-8a6b-9c0d1e2f3a4b"
	newRequest := func(id string) *http.Request {
		r := httptest.NewRequest(http.MethodDelete, "/v1/me/sessions/"+id, nil)
		r.SetPathValue("id", id)
		return r.WithContext(httpx.ContextWithUser(r.Context(), "user-1"))
	}

	t.Run("deleted", func(t *testing.T) {
		mockRepo.EXPECT().DeleteForUser(gomock.Any(), sessionID, "user-1").Return(nil)

		w := httptest.NewRecorder()
		handler.DeleteSession(w, newRequest(sessionID))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("foreign session", func(t *testing.T) {
		mockRepo.EXPECT().DeleteForUser(gomock.Any(), sessionID, "user-1").Return(ErrNotFound)

		w := httptest.NewRecorder()
		handler.DeleteSession(w, newRequest(sessionID))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.DeleteSession(w, newRequest("s1"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHTTPHandler_ListSessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	handler := NewHTTPHandler(NewService(mockRepo, NewMockBlacklistRepository(ctrl)))

	mockRepo.EXPECT().ListByUserID(gomock.Any(), "user-1").Return([]Session{{ID: "s1", UserAgent: "curl"}}, nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/v1/me/sessions", nil)
	r = r.WithContext(httpx.ContextWithUser(r.Context(), "user-1"))

	handler.ListSessions(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_agent":"curl"`)
}
