package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/models/enums"
	"github.com/Xushengqwer/content_service/myErrors"
	"github.com/Xushengqwer/content_service/pkg/core"
)

func newUserServiceForTest() (UserService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	jwtCfg := core.JWTConfig{Secret: "test-secret", Issuer: "content_service", ExpireMinutes: 60}
	return NewUserService(repo, jwtCfg, core.NewNopLogger()), repo
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserServiceForTest()

	t.Run("registers with default role and hides password", func(t *testing.T) {
		user, err := svc.Register(ctx, &dto.RegisterRequest{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.NotZero(t, user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, enums.RoleUser, user.Role)
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		_, err := svc.Register(ctx, &dto.RegisterRequest{
			Username: "alice",
			Email:    "other@example.com",
			Password: "secret123",
		})
		assert.ErrorIs(t, err, myErrors.ErrConflict)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, err := svc.Register(ctx, &dto.RegisterRequest{
			Username: "bob",
			Email:    "alice@example.com",
			Password: "secret123",
		})
		assert.ErrorIs(t, err, myErrors.ErrConflict)
	})
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserServiceForTest()

	registered, err := svc.Register(ctx, &dto.RegisterRequest{
		Username: "carol",
		Email:    "carol@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	t.Run("valid credentials issue a parsable token", func(t *testing.T) {
		token, err := svc.Login(ctx, &dto.LoginRequest{Username: "carol", Password: "secret123"})
		require.NoError(t, err)
		assert.NotEmpty(t, token.AccessToken)
		assert.Equal(t, registered.ID, token.User.ID)

		var claims UserClaims
		parsed, err := jwt.ParseWithClaims(token.AccessToken, &claims, func(*jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		require.NoError(t, err)
		assert.True(t, parsed.Valid)
		assert.Equal(t, registered.ID, claims.UserID)
		assert.Equal(t, enums.RoleUser, claims.Role)
	})

	t.Run("wrong password is forbidden", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{Username: "carol", Password: "wrong"})
		assert.ErrorIs(t, err, myErrors.ErrForbidden)
	})

	t.Run("unknown user is forbidden, not notfound", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{Username: "nobody", Password: "secret123"})
		assert.ErrorIs(t, err, myErrors.ErrForbidden)
		assert.NotErrorIs(t, err, myErrors.ErrNotFound)
	})
}

func TestUserService_GetUserByID(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserServiceForTest()

	registered, err := svc.Register(ctx, &dto.RegisterRequest{
		Username: "dave",
		Email:    "dave@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	found, err := svc.GetUserByID(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "dave", found.Username)

	_, err = svc.GetUserByID(ctx, 9999)
	assert.ErrorIs(t, err, myErrors.ErrNotFound)
}
