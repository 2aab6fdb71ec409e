package database

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hitekgroup/hitek-site-backend/models"
)

func seedBlogPost(t *testing.T, repo *BlogPostRepo, title, status string) *models.BlogPost {
	t.Helper()

	post := models.BlogPost{
		ID:      uuid.New(),
		Title:   title,
		Content: "Body of " + title,
		Status:  status,
	}
	require.NoError(t, repo.Add(&post))
	return &post
}

func TestBlogPostUpdate(t *testing.T) {
	t.Run("Title edits never rewrite the slug", func(t *testing.T) {
		repo := NewBlogPostRepo(newTestDB(t))
		post := seedBlogPost(t, repo, "Hitek Opens New Office", models.BlogStatusPublished)
		assert.Equal(t, "hitek-opens-new-office", post.Slug)

		edited := models.BlogPost{
			ID:      post.ID,
			Title:   "Hitek Opens Second Office In Hanoi",
			Content: post.Content,
			Status:  post.Status,
		}
		require.NoError(t, repo.Update(&edited))

		stored, err := repo.FindByID(post.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "Hitek Opens Second Office In Hanoi", stored.Title)
		assert.Equal(t, "hitek-opens-new-office", stored.Slug)
	})

	t.Run("Views and creation time survive edits", func(t *testing.T) {
		repo := NewBlogPostRepo(newTestDB(t))
		post := seedBlogPost(t, repo, "View Counter", models.BlogStatusPublished)
		require.NoError(t, repo.IncrementViews(post.ID))
		require.NoError(t, repo.IncrementViews(post.ID))

		edited := models.BlogPost{
			ID:      post.ID,
			Title:   "View Counter",
			Content: "rewritten body",
			Status:  post.Status,
			Views:   9000, // client-supplied counters are ignored
		}
		require.NoError(t, repo.Update(&edited))

		stored, err := repo.FindByID(post.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, 2, stored.Views)
		assert.Equal(t, post.CreatedAt.UTC().Truncate(time.Second), stored.CreatedAt.UTC().Truncate(time.Second))
	})

	t.Run("Publish timestamp survives while published and clears on unpublish", func(t *testing.T) {
		repo := NewBlogPostRepo(newTestDB(t))
		post := seedBlogPost(t, repo, "Lifecycle", models.BlogStatusPublished)

		stored, err := repo.FindByID(post.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		require.NotNil(t, stored.PublishedAt)
		originallyPublished := *stored.PublishedAt

		edited := models.BlogPost{ID: post.ID, Title: "Lifecycle", Content: "v2", Status: models.BlogStatusPublished}
		require.NoError(t, repo.Update(&edited))

		stored, err = repo.FindByID(post.ID)
		require.NoError(t, err)
		require.NotNil(t, stored.PublishedAt)
		assert.Equal(t, originallyPublished.UTC().Truncate(time.Second), stored.PublishedAt.UTC().Truncate(time.Second))

		drafted := models.BlogPost{ID: post.ID, Title: "Lifecycle", Content: "v3", Status: models.BlogStatusDraft}
		require.NoError(t, repo.Update(&drafted))

		stored, err = repo.FindByID(post.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Nil(t, stored.PublishedAt)
	})

	t.Run("Updating a missing post reports not found", func(t *testing.T) {
		repo := NewBlogPostRepo(newTestDB(t))

		ghost := models.BlogPost{ID: uuid.New(), Title: "Ghost", Content: "boo", Status: models.BlogStatusDraft}
		err := repo.Update(&ghost)
		assert.Error(t, err)
	})
}

func TestIncrementViews(t *testing.T) {
	t.Run("Counts up from zero", func(t *testing.T) {
		repo := NewBlogPostRepo(newTestDB(t))
		post := seedBlogPost(t, repo, "Popular Post", models.BlogStatusPublished)

		require.NoError(t, repo.IncrementViews(post.ID))

		stored, err := repo.FindByID(post.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, 1, stored.Views)
	})

	t.Run("Missing post reports not found", func(t *testing.T) {
		repo := NewBlogPostRepo(newTestDB(t))
		assert.Error(t, repo.IncrementViews(uuid.New()))
	})
}
