package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/content_service/models/entities"
	"github.com/Xushengqwer/content_service/models/enums"
)

// 测试共用的种子数据与小工具。

func ptr[T any](v T) *T {
	return &v
}

func seedUser(t *testing.T, repo *fakeUserRepo, username string, role enums.UserRole) *entities.User {
	t.Helper()
	u := &entities.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
		Role:     role,
	}
	require.NoError(t, repo.CreateUser(context.Background(), u))
	return u
}

func seedCategory(t *testing.T, repo *fakeCategoryRepo, name, slug string) *entities.Category {
	t.Helper()
	c := &entities.Category{Name: name, Slug: slug}
	require.NoError(t, repo.CreateCategory(context.Background(), c))
	return c
}

func seedPost(t *testing.T, repo *fakePostRepo, authorID uint64, title, slug string, published bool) *entities.Post {
	t.Helper()
	p := &entities.Post{
		Title:       title,
		Slug:        slug,
		Content:     "content",
		AuthorID:    authorID,
		IsPublished: published,
	}
	require.NoError(t, repo.CreatePost(context.Background(), p))
	return p
}

func seedComment(t *testing.T, repo *fakeCommentRepo, postID, userID uint64, text string, approved bool) *entities.Comment {
	t.Helper()
	c := &entities.Comment{
		PostID:      postID,
		UserID:      userID,
		CommentText: text,
		IsApproved:  approved,
	}
	require.NoError(t, repo.CreateComment(context.Background(), c))
	return c
}
