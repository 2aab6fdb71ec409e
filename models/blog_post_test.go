package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveSlug(t *testing.T) {
	t.Run("Lowercases and hyphenates", func(t *testing.T) {
		assert.Equal(t, "hitek-launches-new-ai-platform", DeriveSlug("Hitek Launches New AI Platform"))
	})

	t.Run("Collapses punctuation runs", func(t *testing.T) {
		assert.Equal(t, "what-s-next-go-rust", DeriveSlug("What's next?? Go & Rust!"))
	})

	t.Run("Strips diacritics", func(t *testing.T) {
		assert.Equal(t, "cafe-resume", DeriveSlug("Café Résumé"))
	})
}

func TestNormalizePublication(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("Empty status defaults to draft", func(t *testing.T) {
		post := BlogPost{Title: "Untitled"}
		post.NormalizePublication(now)

		assert.Equal(t, BlogStatusDraft, post.Status)
		assert.Nil(t, post.PublishedAt)
	})

	t.Run("Publishing stamps the timestamp", func(t *testing.T) {
		post := BlogPost{Status: BlogStatusPublished}
		post.NormalizePublication(now)

		require.NotNil(t, post.PublishedAt)
		assert.Equal(t, now, *post.PublishedAt)
	})

	t.Run("Already published posts keep their original timestamp", func(t *testing.T) {
		original := now.Add(-48 * time.Hour)
		post := BlogPost{Status: BlogStatusPublished, PublishedAt: &original}
		post.NormalizePublication(now)

		require.NotNil(t, post.PublishedAt)
		assert.Equal(t, original, *post.PublishedAt)
	})

	t.Run("Unpublishing clears the timestamp", func(t *testing.T) {
		published := now.Add(-time.Hour)
		post := BlogPost{Status: BlogStatusDraft, PublishedAt: &published}
		post.NormalizePublication(now)

		assert.Nil(t, post.PublishedAt)
	})

	t.Run("Archiving clears the timestamp", func(t *testing.T) {
		published := now.Add(-time.Hour)
		post := BlogPost{Status: BlogStatusArchived, PublishedAt: &published}
		post.NormalizePublication(now)

		assert.Nil(t, post.PublishedAt)
	})
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(BlogStatusDraft))
	assert.True(t, ValidStatus(BlogStatusPublished))
	assert.True(t, ValidStatus(BlogStatusArchived))
	assert.False(t, ValidStatus("scheduled"))
	assert.False(t, ValidStatus(""))
}
