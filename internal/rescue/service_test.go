package rescue

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)
	ctx := context.Background()

	t.Run("pending request", func(t *testing.T) {
		mockRepo.EXPECT().BookOwner(ctx, "b1").Return("u1", nil)
		mockRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r *Rescue) error {
			r.ID = "r1"
			return nil
		})

		res, err := service.Create(ctx, "b1", "u2")

		require.NoError(t, err)
		assert.Equal(t, "r1", res.ID)
		assert.Equal(t, StatusPending, res.Status)
		assert.Equal(t, "u2", res.RequesterID)
	})

	t.Run("own book", func(t *testing.T) {
		mockRepo.EXPECT().BookOwner(ctx, "b1").Return("u1", nil)

		_, err := service.Create(ctx, "b1", "u1")

		assert.True(t, errors.Is(err, ErrOwnBook))
	})

	t.Run("missing book", func(t *testing.T) {
		mockRepo.EXPECT().BookOwner(ctx, "b9").Return("", ErrBookNotFound)

		_, err := service.Create(ctx, "b9", "u2")

		assert.True(t, errors.Is(err, ErrBookNotFound))
	})

	t.Run("duplicate", func(t *testing.T) {
		mockRepo.EXPECT().BookOwner(ctx, "b1").Return("u1", nil)
		mockRepo.EXPECT().Create(ctx, gomock.Any()).Return(ErrAlreadyRequested)

		_, err := service.Create(ctx, "b1", "u2")

		assert.True(t, errors.Is(err, ErrAlreadyRequested))
	})
}

func TestService_Guards(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)
	ctx := context.Background()

	t.Run("book requested", func(t *testing.T) {
		mockRepo.EXPECT().ExistsForBook(ctx, "b1").Return(true, nil)

		ok, err := service.FindIfABookWasRequested(ctx, "b1")

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("user requested", func(t *testing.T) {
		mockRepo.EXPECT().ExistsForBookAndUser(ctx, "b1", "u2").Return(false, nil)

		ok, err := service.FindIfUserHasRequestedBook(ctx, "b1", "u2")

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("error wrapped", func(t *testing.T) {
		mockRepo.EXPECT().ExistsForBook(ctx, "b1").Return(false, context.Canceled)

		_, err := service.FindIfABookWasRequested(ctx, "b1")

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("find all", func(t *testing.T) {
		mockRepo.EXPECT().List(ctx).Return([]Rescue{{ID: "r1"}, {ID: "r2"}}, nil)

		all, err := service.FindAll(ctx)

		require.NoError(t, err)
		assert.Len(t, all, 2)
	})
}
