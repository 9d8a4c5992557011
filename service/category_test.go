package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/myErrors"
	"github.com/Xushengqwer/content_service/pkg/core"
)

func TestCategoryService_CreateCategory(t *testing.T) {
	ctx := context.Background()
	svc := NewCategoryService(newFakeCategoryRepo(), core.NewNopLogger())

	t.Run("derives slug from name", func(t *testing.T) {
		cat, err := svc.CreateCategory(ctx, &dto.CreateCategoryRequest{Name: "Tech News"})
		require.NoError(t, err)
		assert.Equal(t, "Tech News", cat.Name)
		assert.Equal(t, "tech-news", cat.Slug)
	})

	t.Run("duplicate slug conflicts", func(t *testing.T) {
		_, err := svc.CreateCategory(ctx, &dto.CreateCategoryRequest{Name: "Tech   News!"})
		require.Error(t, err)
		assert.ErrorIs(t, err, myErrors.ErrConflict)
	})

	t.Run("explicit slug wins over derivation", func(t *testing.T) {
		cat, err := svc.CreateCategory(ctx, &dto.CreateCategoryRequest{Name: "Gaming", Slug: "play"})
		require.NoError(t, err)
		assert.Equal(t, "play", cat.Slug)
	})

	t.Run("explicit slug is checked for uniqueness", func(t *testing.T) {
		_, err := svc.CreateCategory(ctx, &dto.CreateCategoryRequest{Name: "Unrelated", Slug: "tech-news"})
		assert.ErrorIs(t, err, myErrors.ErrConflict)
	})
}

func TestCategoryService_Lookups(t *testing.T) {
	ctx := context.Background()
	svc := NewCategoryService(newFakeCategoryRepo(), core.NewNopLogger())

	created, err := svc.CreateCategory(ctx, &dto.CreateCategoryRequest{Name: "Sports"})
	require.NoError(t, err)

	byID, err := svc.GetCategoryByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "sports", byID.Slug)

	bySlug, err := svc.GetCategoryBySlug(ctx, "sports")
	require.NoError(t, err)
	assert.Equal(t, created.ID, bySlug.ID)

	_, err = svc.GetCategoryByID(ctx, 9999)
	assert.ErrorIs(t, err, myErrors.ErrNotFound)

	_, err = svc.GetCategoryBySlug(ctx, "missing")
	assert.ErrorIs(t, err, myErrors.ErrNotFound)

	list, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCategoryService_UpdateCategory(t *testing.T) {
	ctx := context.Background()
	svc := NewCategoryService(newFakeCategoryRepo(), core.NewNopLogger())

	first, err := svc.CreateCategory(ctx, &dto.CreateCategoryRequest{Name: "Movies"})
	require.NoError(t, err)
	_, err = svc.CreateCategory(ctx, &dto.CreateCategoryRequest{Name: "Music"})
	require.NoError(t, err)

	t.Run("rename re-derives the slug", func(t *testing.T) {
		updated, err := svc.UpdateCategory(ctx, first.ID, &dto.UpdateCategoryRequest{Name: ptr("Movies and TV")})
		require.NoError(t, err)
		assert.Equal(t, "Movies and TV", updated.Name)
		assert.Equal(t, "movies-and-tv", updated.Slug)
	})

	t.Run("rename onto an occupied slug conflicts", func(t *testing.T) {
		_, err := svc.UpdateCategory(ctx, first.ID, &dto.UpdateCategoryRequest{Name: ptr("Music")})
		assert.ErrorIs(t, err, myErrors.ErrConflict)
	})

	t.Run("explicit slug overrides derivation from name", func(t *testing.T) {
		updated, err := svc.UpdateCategory(ctx, first.ID, &dto.UpdateCategoryRequest{
			Name: ptr("Screen Stuff"),
			Slug: ptr("screens"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Screen Stuff", updated.Name)
		assert.Equal(t, "screens", updated.Slug)
	})

	t.Run("explicit slug onto occupied slug conflicts", func(t *testing.T) {
		_, err := svc.UpdateCategory(ctx, first.ID, &dto.UpdateCategoryRequest{Slug: ptr("music")})
		assert.ErrorIs(t, err, myErrors.ErrConflict)
	})

	t.Run("same name keeps the record untouched", func(t *testing.T) {
		updated, err := svc.UpdateCategory(ctx, first.ID, &dto.UpdateCategoryRequest{Name: ptr("Screen Stuff")})
		require.NoError(t, err)
		assert.Equal(t, "screens", updated.Slug)
	})

	t.Run("missing category", func(t *testing.T) {
		_, err := svc.UpdateCategory(ctx, 9999, &dto.UpdateCategoryRequest{Name: ptr("Anything")})
		assert.ErrorIs(t, err, myErrors.ErrNotFound)
	})
}

func TestCategoryService_DeleteCategory(t *testing.T) {
	ctx := context.Background()
	svc := NewCategoryService(newFakeCategoryRepo(), core.NewNopLogger())

	created, err := svc.CreateCategory(ctx, &dto.CreateCategoryRequest{Name: "Temporary"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCategory(ctx, created.ID))

	_, err = svc.GetCategoryByID(ctx, created.ID)
	assert.ErrorIs(t, err, myErrors.ErrNotFound)

	assert.ErrorIs(t, svc.DeleteCategory(ctx, created.ID), myErrors.ErrNotFound)
}
