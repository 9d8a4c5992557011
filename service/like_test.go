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

type likeEnv struct {
	svc      LikeService
	likeRepo *fakeLikeRepo
	postRepo *fakePostRepo
	userRepo *fakeUserRepo
	fan      *entities.User
	stranger *entities.User
	admin    *entities.User
	post     *entities.Post
}

func newLikeEnv(t *testing.T) *likeEnv {
	t.Helper()
	env := &likeEnv{
		likeRepo: newFakeLikeRepo(),
		postRepo: newFakePostRepo(),
		userRepo: newFakeUserRepo(),
	}
	env.svc = NewLikeService(env.likeRepo, env.postRepo, env.userRepo, nil, core.NewNopLogger())
	env.fan = seedUser(t, env.userRepo, "fan", enums.RoleUser)
	env.stranger = seedUser(t, env.userRepo, "stranger", enums.RoleUser)
	env.admin = seedUser(t, env.userRepo, "admin", enums.RoleAdmin)
	env.post = seedPost(t, env.postRepo, env.admin.ID, "Popular", "popular", true)
	return env
}

func TestLikeService_CreateLike(t *testing.T) {
	ctx := context.Background()
	env := newLikeEnv(t)

	t.Run("missing post rejected", func(t *testing.T) {
		_, err := env.svc.CreateLike(ctx, env.fan.ID, &dto.CreateLikeRequest{PostID: 9999})
		assert.ErrorIs(t, err, myErrors.ErrNotFound)
	})

	t.Run("creates with projections", func(t *testing.T) {
		like, err := env.svc.CreateLike(ctx, env.fan.ID, &dto.CreateLikeRequest{PostID: env.post.ID})
		require.NoError(t, err)
		assert.Equal(t, env.fan.ID, like.UserID)
		assert.Equal(t, env.post.ID, like.PostID)
		require.NotNil(t, like.User)
		assert.Equal(t, "fan", like.User.Username)
	})

	t.Run("second like on the same post conflicts", func(t *testing.T) {
		_, err := env.svc.CreateLike(ctx, env.fan.ID, &dto.CreateLikeRequest{PostID: env.post.ID})
		assert.ErrorIs(t, err, myErrors.ErrConflict)
	})
}

func TestLikeService_Queries(t *testing.T) {
	ctx := context.Background()
	env := newLikeEnv(t)

	_, err := env.svc.CreateLike(ctx, env.fan.ID, &dto.CreateLikeRequest{PostID: env.post.ID})
	require.NoError(t, err)
	_, err = env.svc.CreateLike(ctx, env.stranger.ID, &dto.CreateLikeRequest{PostID: env.post.ID})
	require.NoError(t, err)

	t.Run("check user like", func(t *testing.T) {
		liked, err := env.svc.CheckUserLike(ctx, env.fan.ID, env.post.ID)
		require.NoError(t, err)
		assert.True(t, liked.Liked)

		notLiked, err := env.svc.CheckUserLike(ctx, env.admin.ID, env.post.ID)
		require.NoError(t, err)
		assert.False(t, notLiked.Liked)
	})

	t.Run("count likes", func(t *testing.T) {
		count, err := env.svc.CountLikes(ctx, env.post.ID)
		require.NoError(t, err)
		assert.Equal(t, env.post.ID, count.PostID)
		assert.Equal(t, int64(2), count.Count)
	})

	t.Run("list by post and by user", func(t *testing.T) {
		byPost, err := env.svc.ListLikesByPostID(ctx, env.post.ID)
		require.NoError(t, err)
		assert.Len(t, byPost, 2)

		byUser, err := env.svc.ListLikesByUserID(ctx, env.fan.ID)
		require.NoError(t, err)
		require.Len(t, byUser, 1)
		assert.Equal(t, env.post.ID, byUser[0].PostID)
	})
}

func TestLikeService_RemoveLikeByUserAndPost(t *testing.T) {
	ctx := context.Background()
	env := newLikeEnv(t)

	_, err := env.svc.CreateLike(ctx, env.fan.ID, &dto.CreateLikeRequest{PostID: env.post.ID})
	require.NoError(t, err)

	require.NoError(t, env.svc.RemoveLikeByUserAndPost(ctx, env.fan.ID, env.post.ID))

	liked, err := env.svc.CheckUserLike(ctx, env.fan.ID, env.post.ID)
	require.NoError(t, err)
	assert.False(t, liked.Liked)

	assert.ErrorIs(t, env.svc.RemoveLikeByUserAndPost(ctx, env.fan.ID, env.post.ID), myErrors.ErrNotFound)

	t.Run("unlike frees the pair for a fresh like", func(t *testing.T) {
		relike, err := env.svc.CreateLike(ctx, env.fan.ID, &dto.CreateLikeRequest{PostID: env.post.ID})
		require.NoError(t, err)
		assert.Equal(t, env.post.ID, relike.PostID)

		liked, err := env.svc.CheckUserLike(ctx, env.fan.ID, env.post.ID)
		require.NoError(t, err)
		assert.True(t, liked.Liked)
	})
}

func TestLikeService_RemoveLike(t *testing.T) {
	ctx := context.Background()
	env := newLikeEnv(t)

	mine, err := env.svc.CreateLike(ctx, env.fan.ID, &dto.CreateLikeRequest{PostID: env.post.ID})
	require.NoError(t, err)
	other, err := env.svc.CreateLike(ctx, env.stranger.ID, &dto.CreateLikeRequest{PostID: env.post.ID})
	require.NoError(t, err)

	assert.ErrorIs(t, env.svc.RemoveLike(ctx, env.stranger.ID, enums.RoleUser, mine.ID), myErrors.ErrForbidden)

	require.NoError(t, env.svc.RemoveLike(ctx, env.fan.ID, enums.RoleUser, mine.ID))
	_, err = env.svc.GetLikeByID(ctx, mine.ID)
	assert.ErrorIs(t, err, myErrors.ErrNotFound)

	require.NoError(t, env.svc.RemoveLike(ctx, env.admin.ID, enums.RoleAdmin, other.ID))

	assert.ErrorIs(t, env.svc.RemoveLike(ctx, env.fan.ID, enums.RoleUser, 9999), myErrors.ErrNotFound)

	// 按 ID 删除同样要释放组合，双方都能重新点赞
	_, err = env.svc.CreateLike(ctx, env.fan.ID, &dto.CreateLikeRequest{PostID: env.post.ID})
	assert.NoError(t, err)
	_, err = env.svc.CreateLike(ctx, env.stranger.ID, &dto.CreateLikeRequest{PostID: env.post.ID})
	assert.NoError(t, err)
}
