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

type subscriptionEnv struct {
	svc          SubscriptionService
	subRepo      *fakeSubscriptionRepo
	userRepo     *fakeUserRepo
	categoryRepo *fakeCategoryRepo
	reader       *entities.User
	writer       *entities.User
	admin        *entities.User
	category     *entities.Category
}

func newSubscriptionEnv(t *testing.T) *subscriptionEnv {
	t.Helper()
	env := &subscriptionEnv{
		subRepo:      newFakeSubscriptionRepo(),
		userRepo:     newFakeUserRepo(),
		categoryRepo: newFakeCategoryRepo(),
	}
	env.svc = NewSubscriptionService(env.subRepo, env.userRepo, env.categoryRepo, core.NewNopLogger())
	env.reader = seedUser(t, env.userRepo, "reader", enums.RoleUser)
	env.writer = seedUser(t, env.userRepo, "writer", enums.RoleUser)
	env.admin = seedUser(t, env.userRepo, "admin", enums.RoleAdmin)
	env.category = seedCategory(t, env.categoryRepo, "Tech", "tech")
	return env
}

func TestSubscriptionService_CreateSubscription(t *testing.T) {
	ctx := context.Background()
	env := newSubscriptionEnv(t)

	t.Run("requires at least one target", func(t *testing.T) {
		_, err := env.svc.CreateSubscription(ctx, env.reader.ID, enums.RoleUser, &dto.CreateSubscriptionRequest{
			SubscriberID: env.reader.ID,
		})
		assert.ErrorIs(t, err, myErrors.ErrConflict)
	})

	t.Run("regular user cannot subscribe on behalf of others", func(t *testing.T) {
		_, err := env.svc.CreateSubscription(ctx, env.reader.ID, enums.RoleUser, &dto.CreateSubscriptionRequest{
			SubscriberID: env.writer.ID,
			AuthorID:     &env.writer.ID,
		})
		assert.ErrorIs(t, err, myErrors.ErrForbidden)
	})

	t.Run("missing author target rejected", func(t *testing.T) {
		_, err := env.svc.CreateSubscription(ctx, env.reader.ID, enums.RoleUser, &dto.CreateSubscriptionRequest{
			SubscriberID: env.reader.ID,
			AuthorID:     ptr(uint64(9999)),
		})
		assert.ErrorIs(t, err, myErrors.ErrNotFound)
	})

	t.Run("missing category target rejected", func(t *testing.T) {
		_, err := env.svc.CreateSubscription(ctx, env.reader.ID, enums.RoleUser, &dto.CreateSubscriptionRequest{
			SubscriberID: env.reader.ID,
			CategoryID:   ptr(uint64(9999)),
		})
		assert.ErrorIs(t, err, myErrors.ErrNotFound)
	})

	t.Run("author-only subscription succeeds", func(t *testing.T) {
		sub, err := env.svc.CreateSubscription(ctx, env.reader.ID, enums.RoleUser, &dto.CreateSubscriptionRequest{
			SubscriberID: env.reader.ID,
			AuthorID:     &env.writer.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, env.reader.ID, sub.SubscriberID)
		require.NotNil(t, sub.AuthorID)
		assert.Equal(t, env.writer.ID, *sub.AuthorID)
		assert.Nil(t, sub.CategoryID)
	})

	t.Run("exact duplicate conflicts", func(t *testing.T) {
		_, err := env.svc.CreateSubscription(ctx, env.reader.ID, enums.RoleUser, &dto.CreateSubscriptionRequest{
			SubscriberID: env.reader.ID,
			AuthorID:     &env.writer.ID,
		})
		assert.ErrorIs(t, err, myErrors.ErrConflict)
	})

	t.Run("narrower author plus category tuple is a separate subscription", func(t *testing.T) {
		sub, err := env.svc.CreateSubscription(ctx, env.reader.ID, enums.RoleUser, &dto.CreateSubscriptionRequest{
			SubscriberID: env.reader.ID,
			AuthorID:     &env.writer.ID,
			CategoryID:   &env.category.ID,
		})
		require.NoError(t, err)
		require.NotNil(t, sub.CategoryID)
		assert.Equal(t, env.category.ID, *sub.CategoryID)
	})

	t.Run("admin subscribes on behalf of another user", func(t *testing.T) {
		sub, err := env.svc.CreateSubscription(ctx, env.admin.ID, enums.RoleAdmin, &dto.CreateSubscriptionRequest{
			SubscriberID: env.writer.ID,
			CategoryID:   &env.category.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, env.writer.ID, sub.SubscriberID)
	})
}

func TestSubscriptionService_ListSubscriptions(t *testing.T) {
	ctx := context.Background()
	env := newSubscriptionEnv(t)

	_, err := env.svc.CreateSubscription(ctx, env.reader.ID, enums.RoleUser, &dto.CreateSubscriptionRequest{
		SubscriberID: env.reader.ID,
		AuthorID:     &env.writer.ID,
	})
	require.NoError(t, err)
	_, err = env.svc.CreateSubscription(ctx, env.writer.ID, enums.RoleUser, &dto.CreateSubscriptionRequest{
		SubscriberID: env.writer.ID,
		CategoryID:   &env.category.ID,
	})
	require.NoError(t, err)

	t.Run("regular user is pinned to own subscriptions", func(t *testing.T) {
		subs, err := env.svc.ListSubscriptions(ctx, env.reader.ID, enums.RoleUser, &dto.ListSubscriptionsQuery{
			SubscriberID: &env.writer.ID,
		})
		require.NoError(t, err)
		require.Len(t, subs, 1)
		assert.Equal(t, env.reader.ID, subs[0].SubscriberID)
	})

	t.Run("admin sees everything", func(t *testing.T) {
		subs, err := env.svc.ListSubscriptions(ctx, env.admin.ID, enums.RoleAdmin, &dto.ListSubscriptionsQuery{})
		require.NoError(t, err)
		assert.Len(t, subs, 2)
	})

	t.Run("admin filter by category", func(t *testing.T) {
		subs, err := env.svc.ListSubscriptions(ctx, env.admin.ID, enums.RoleAdmin, &dto.ListSubscriptionsQuery{
			CategoryID: &env.category.ID,
		})
		require.NoError(t, err)
		require.Len(t, subs, 1)
		assert.Equal(t, env.writer.ID, subs[0].SubscriberID)
	})
}

func TestSubscriptionService_GetAndCheck(t *testing.T) {
	ctx := context.Background()
	env := newSubscriptionEnv(t)

	sub, err := env.svc.CreateSubscription(ctx, env.reader.ID, enums.RoleUser, &dto.CreateSubscriptionRequest{
		SubscriberID: env.reader.ID,
		AuthorID:     &env.writer.ID,
	})
	require.NoError(t, err)

	t.Run("owner and admin can fetch, stranger cannot", func(t *testing.T) {
		fetched, err := env.svc.GetSubscriptionByID(ctx, env.reader.ID, enums.RoleUser, sub.ID)
		require.NoError(t, err)
		assert.Equal(t, sub.ID, fetched.ID)

		_, err = env.svc.GetSubscriptionByID(ctx, env.writer.ID, enums.RoleUser, sub.ID)
		assert.ErrorIs(t, err, myErrors.ErrForbidden)

		_, err = env.svc.GetSubscriptionByID(ctx, env.admin.ID, enums.RoleAdmin, sub.ID)
		assert.NoError(t, err)
	})

	t.Run("check requires a target", func(t *testing.T) {
		_, err := env.svc.CheckSubscription(ctx, env.reader.ID, nil, nil)
		assert.ErrorIs(t, err, myErrors.ErrValidation)
	})

	t.Run("check reports subscription state", func(t *testing.T) {
		subscribed, err := env.svc.CheckSubscription(ctx, env.reader.ID, &env.writer.ID, nil)
		require.NoError(t, err)
		assert.True(t, subscribed.Subscribed)

		notSubscribed, err := env.svc.CheckSubscription(ctx, env.reader.ID, nil, &env.category.ID)
		require.NoError(t, err)
		assert.False(t, notSubscribed.Subscribed)
	})
}

func TestSubscriptionService_UpdateSubscription(t *testing.T) {
	ctx := context.Background()
	env := newSubscriptionEnv(t)

	authorSub, err := env.svc.CreateSubscription(ctx, env.reader.ID, enums.RoleUser, &dto.CreateSubscriptionRequest{
		SubscriberID: env.reader.ID,
		AuthorID:     &env.writer.ID,
	})
	require.NoError(t, err)
	categorySub, err := env.svc.CreateSubscription(ctx, env.reader.ID, enums.RoleUser, &dto.CreateSubscriptionRequest{
		SubscriberID: env.reader.ID,
		CategoryID:   &env.category.ID,
	})
	require.NoError(t, err)

	t.Run("stranger forbidden", func(t *testing.T) {
		_, err := env.svc.UpdateSubscription(ctx, env.writer.ID, enums.RoleUser, authorSub.ID, &dto.UpdateSubscriptionRequest{
			CategoryID: &env.category.ID,
		})
		assert.ErrorIs(t, err, myErrors.ErrForbidden)
	})

	t.Run("regular user cannot transfer to another subscriber", func(t *testing.T) {
		_, err := env.svc.UpdateSubscription(ctx, env.reader.ID, enums.RoleUser, authorSub.ID, &dto.UpdateSubscriptionRequest{
			SubscriberID: &env.writer.ID,
		})
		assert.ErrorIs(t, err, myErrors.ErrForbidden)
	})

	t.Run("owner widens the tuple with a category", func(t *testing.T) {
		updated, err := env.svc.UpdateSubscription(ctx, env.reader.ID, enums.RoleUser, authorSub.ID, &dto.UpdateSubscriptionRequest{
			CategoryID: &env.category.ID,
		})
		require.NoError(t, err)
		require.NotNil(t, updated.AuthorID)
		require.NotNil(t, updated.CategoryID)
		assert.Equal(t, env.category.ID, *updated.CategoryID)
	})

	t.Run("update onto an existing tuple conflicts", func(t *testing.T) {
		_, err := env.svc.UpdateSubscription(ctx, env.reader.ID, enums.RoleUser, categorySub.ID, &dto.UpdateSubscriptionRequest{
			AuthorID: &env.writer.ID,
		})
		assert.ErrorIs(t, err, myErrors.ErrConflict)
	})

	t.Run("update with a missing target rejected", func(t *testing.T) {
		_, err := env.svc.UpdateSubscription(ctx, env.reader.ID, enums.RoleUser, categorySub.ID, &dto.UpdateSubscriptionRequest{
			CategoryID: ptr(uint64(9999)),
		})
		assert.ErrorIs(t, err, myErrors.ErrNotFound)
	})

	t.Run("missing subscription", func(t *testing.T) {
		_, err := env.svc.UpdateSubscription(ctx, env.reader.ID, enums.RoleUser, 9999, &dto.UpdateSubscriptionRequest{
			CategoryID: &env.category.ID,
		})
		assert.ErrorIs(t, err, myErrors.ErrNotFound)
	})
}

func TestSubscriptionService_DeleteSubscription(t *testing.T) {
	ctx := context.Background()
	env := newSubscriptionEnv(t)

	sub, err := env.svc.CreateSubscription(ctx, env.reader.ID, enums.RoleUser, &dto.CreateSubscriptionRequest{
		SubscriberID: env.reader.ID,
		AuthorID:     &env.writer.ID,
	})
	require.NoError(t, err)

	assert.ErrorIs(t, env.svc.DeleteSubscription(ctx, env.writer.ID, enums.RoleUser, sub.ID), myErrors.ErrForbidden)

	require.NoError(t, env.svc.DeleteSubscription(ctx, env.reader.ID, enums.RoleUser, sub.ID))

	_, err = env.svc.GetSubscriptionByID(ctx, env.reader.ID, enums.RoleUser, sub.ID)
	assert.ErrorIs(t, err, myErrors.ErrNotFound)

	t.Run("unsubscribe frees the tuple for a fresh subscription", func(t *testing.T) {
		recreated, err := env.svc.CreateSubscription(ctx, env.reader.ID, enums.RoleUser, &dto.CreateSubscriptionRequest{
			SubscriberID: env.reader.ID,
			AuthorID:     &env.writer.ID,
		})
		require.NoError(t, err)
		require.NotNil(t, recreated.AuthorID)
		assert.Equal(t, env.writer.ID, *recreated.AuthorID)
	})
}
