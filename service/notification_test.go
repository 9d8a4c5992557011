package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/models/entities"
	"github.com/Xushengqwer/content_service/models/enums"
	"github.com/Xushengqwer/content_service/myErrors"
	"github.com/Xushengqwer/content_service/pkg/core"
)

type notificationEnv struct {
	svc              NotificationService
	notificationRepo *fakeNotificationRepo
	userRepo         *fakeUserRepo
	user             *entities.User
	other            *entities.User
	admin            *entities.User
}

func newNotificationEnv(t *testing.T) *notificationEnv {
	t.Helper()
	env := &notificationEnv{
		notificationRepo: newFakeNotificationRepo(),
		userRepo:         newFakeUserRepo(),
	}
	env.svc = NewNotificationService(env.notificationRepo, env.userRepo, core.NewNopLogger())
	env.user = seedUser(t, env.userRepo, "recipient", enums.RoleUser)
	env.other = seedUser(t, env.userRepo, "bystander", enums.RoleUser)
	env.admin = seedUser(t, env.userRepo, "admin", enums.RoleAdmin)
	return env
}

func TestNotificationService_CreateNotification(t *testing.T) {
	ctx := context.Background()
	env := newNotificationEnv(t)

	t.Run("user creates for self", func(t *testing.T) {
		n, err := env.svc.CreateNotification(ctx, env.user.ID, enums.RoleUser, &dto.CreateNotificationRequest{
			UserID:  env.user.ID,
			Message: "welcome",
		})
		require.NoError(t, err)
		assert.Equal(t, env.user.ID, n.UserID)
		assert.False(t, n.IsRead)
	})

	t.Run("user cannot create for others", func(t *testing.T) {
		_, err := env.svc.CreateNotification(ctx, env.user.ID, enums.RoleUser, &dto.CreateNotificationRequest{
			UserID:  env.other.ID,
			Message: "nope",
		})
		assert.ErrorIs(t, err, myErrors.ErrForbidden)
	})

	t.Run("admin creates for anyone", func(t *testing.T) {
		n, err := env.svc.CreateNotification(ctx, env.admin.ID, enums.RoleAdmin, &dto.CreateNotificationRequest{
			UserID:  env.other.ID,
			Message: "announcement",
		})
		require.NoError(t, err)
		assert.Equal(t, env.other.ID, n.UserID)
	})

	t.Run("missing recipient rejected", func(t *testing.T) {
		_, err := env.svc.CreateNotification(ctx, env.admin.ID, enums.RoleAdmin, &dto.CreateNotificationRequest{
			UserID:  9999,
			Message: "ghost",
		})
		assert.ErrorIs(t, err, myErrors.ErrNotFound)
	})
}

func TestNotificationService_Listing(t *testing.T) {
	ctx := context.Background()
	env := newNotificationEnv(t)

	for _, msg := range []string{"first", "second"} {
		_, err := env.svc.CreateNotification(ctx, env.user.ID, enums.RoleUser, &dto.CreateNotificationRequest{
			UserID:  env.user.ID,
			Message: msg,
		})
		require.NoError(t, err)
	}
	_, err := env.svc.CreateNotification(ctx, env.other.ID, enums.RoleUser, &dto.CreateNotificationRequest{
		UserID:  env.other.ID,
		Message: "elsewhere",
	})
	require.NoError(t, err)

	t.Run("regular user sees only own", func(t *testing.T) {
		list, err := env.svc.ListNotifications(ctx, env.user.ID, enums.RoleUser)
		require.NoError(t, err)
		require.Len(t, list, 2)
		for _, n := range list {
			assert.Equal(t, env.user.ID, n.UserID)
		}
	})

	t.Run("admin sees everything", func(t *testing.T) {
		list, err := env.svc.ListNotifications(ctx, env.admin.ID, enums.RoleAdmin)
		require.NoError(t, err)
		assert.Len(t, list, 3)
	})

	t.Run("unread list shrinks after reading", func(t *testing.T) {
		unread, err := env.svc.ListUnreadNotifications(ctx, env.user.ID)
		require.NoError(t, err)
		require.Len(t, unread, 2)

		_, err = env.svc.MarkAsRead(ctx, env.user.ID, enums.RoleUser, unread[0].ID)
		require.NoError(t, err)

		unread, err = env.svc.ListUnreadNotifications(ctx, env.user.ID)
		require.NoError(t, err)
		assert.Len(t, unread, 1)
	})
}

func TestNotificationService_MarkAsRead(t *testing.T) {
	ctx := context.Background()
	env := newNotificationEnv(t)

	n, err := env.svc.CreateNotification(ctx, env.user.ID, enums.RoleUser, &dto.CreateNotificationRequest{
		UserID:  env.user.ID,
		Message: "unseen",
	})
	require.NoError(t, err)

	t.Run("stranger forbidden", func(t *testing.T) {
		_, err := env.svc.MarkAsRead(ctx, env.other.ID, enums.RoleUser, n.ID)
		assert.ErrorIs(t, err, myErrors.ErrForbidden)
	})

	t.Run("owner marks read, repeat is a no-op", func(t *testing.T) {
		read, err := env.svc.MarkAsRead(ctx, env.user.ID, enums.RoleUser, n.ID)
		require.NoError(t, err)
		assert.True(t, read.IsRead)

		again, err := env.svc.MarkAsRead(ctx, env.user.ID, enums.RoleUser, n.ID)
		require.NoError(t, err)
		assert.True(t, again.IsRead)
	})

	t.Run("missing notification", func(t *testing.T) {
		_, err := env.svc.MarkAsRead(ctx, env.user.ID, enums.RoleUser, 9999)
		assert.ErrorIs(t, err, myErrors.ErrNotFound)
	})
}

func TestNotificationService_MarkAllAsRead(t *testing.T) {
	ctx := context.Background()
	env := newNotificationEnv(t)

	for _, msg := range []string{"a", "b", "c"} {
		_, err := env.svc.CreateNotification(ctx, env.user.ID, enums.RoleUser, &dto.CreateNotificationRequest{
			UserID:  env.user.ID,
			Message: msg,
		})
		require.NoError(t, err)
	}

	result, err := env.svc.MarkAllAsRead(ctx, env.user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.Updated)

	repeat, err := env.svc.MarkAllAsRead(ctx, env.user.ID)
	require.NoError(t, err)
	assert.Zero(t, repeat.Updated)

	unread, err := env.svc.ListUnreadNotifications(ctx, env.user.ID)
	require.NoError(t, err)
	assert.Empty(t, unread)
}

func TestNotificationService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	env := newNotificationEnv(t)

	n, err := env.svc.CreateNotification(ctx, env.user.ID, enums.RoleUser, &dto.CreateNotificationRequest{
		UserID:  env.user.ID,
		Message: "original",
	})
	require.NoError(t, err)

	t.Run("stranger cannot update", func(t *testing.T) {
		_, err := env.svc.UpdateNotification(ctx, env.other.ID, enums.RoleUser, n.ID, &dto.UpdateNotificationRequest{
			Message: ptr("tampered"),
		})
		assert.ErrorIs(t, err, myErrors.ErrForbidden)
	})

	t.Run("owner updates message and read state", func(t *testing.T) {
		updated, err := env.svc.UpdateNotification(ctx, env.user.ID, enums.RoleUser, n.ID, &dto.UpdateNotificationRequest{
			Message: ptr("rewritten"),
			IsRead:  ptr(true),
		})
		require.NoError(t, err)
		assert.Equal(t, "rewritten", updated.Message)
		assert.True(t, updated.IsRead)
	})

	t.Run("stranger cannot delete", func(t *testing.T) {
		assert.ErrorIs(t, env.svc.DeleteNotification(ctx, env.other.ID, enums.RoleUser, n.ID), myErrors.ErrForbidden)
	})

	t.Run("owner deletes", func(t *testing.T) {
		require.NoError(t, env.svc.DeleteNotification(ctx, env.user.ID, enums.RoleUser, n.ID))
		_, err := env.svc.GetNotificationByID(ctx, env.user.ID, enums.RoleUser, n.ID)
		assert.ErrorIs(t, err, myErrors.ErrNotFound)
	})
}
