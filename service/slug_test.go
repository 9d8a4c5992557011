package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/content_service/models/entities"
	"github.com/Xushengqwer/content_service/myErrors"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"Tech News", "tech-news"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Already-Hyphenated-Title", "already-hyphenated-title"},
		{"Multiple   spaces!!!and,punctuation", "multiple-spaces-and-punctuation"},
		{"Ends with punctuation!!!", "ends-with-punctuation"},
		{"123 Numbers first", "123-numbers-first"},
		{"", ""},
		{"!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestEnsureUniqueSlug(t *testing.T) {
	ctx := context.Background()
	repo := newFakePostRepo()
	require.NoError(t, repo.CreatePost(ctx, &entities.Post{Title: "Taken", Slug: "taken", Content: "x", AuthorID: 1}))

	t.Run("free slug passes", func(t *testing.T) {
		assert.NoError(t, EnsureUniqueSlug(ctx, repo, "post", "free", 0))
	})

	t.Run("taken slug conflicts", func(t *testing.T) {
		err := EnsureUniqueSlug(ctx, repo, "post", "taken", 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, myErrors.ErrConflict)
		assert.Contains(t, err.Error(), "post with slug 'taken' already exists")
	})

	t.Run("record excludes itself on update", func(t *testing.T) {
		assert.NoError(t, EnsureUniqueSlug(ctx, repo, "post", "taken", 1))
	})
}
