package database

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hitekgroup/hitek-site-backend/models"
)

type BlogPostRepo struct {
	db *gorm.DB
}

func NewBlogPostRepo(db *gorm.DB) *BlogPostRepo {
	return &BlogPostRepo{db}
}

// FindAll returns all blog posts with their author, newest first.
func (r *BlogPostRepo) FindAll() ([]*models.BlogPost, error) {
	var posts []*models.BlogPost
	err := r.db.Preload("Author").Order("created_at DESC").Find(&posts).Error
	return posts, err
}

// FindPublished returns published posts only, most recently published first.
func (r *BlogPostRepo) FindPublished() ([]*models.BlogPost, error) {
	var posts []*models.BlogPost
	err := r.db.Preload("Author").
		Where("status = ?", models.BlogStatusPublished).
		Order("published_at DESC").
		Find(&posts).Error
	return posts, err
}

// FindByID returns a blog post by its ID. Returns (nil, nil) when no row exists.
func (r *BlogPostRepo) FindByID(id uuid.UUID) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.Preload("Author").First(&post, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// FindBySlug returns a blog post by its slug. Returns (nil, nil) when no row exists.
func (r *BlogPostRepo) FindBySlug(slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.Preload("Author").First(&post, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Add inserts a new blog post. The slug is derived from the title when the
// client did not supply one, and the publication invariant is normalized
// before the row is written.
func (r *BlogPostRepo) Add(post *models.BlogPost) error {
	if post.Slug == "" {
		post.Slug = models.DeriveSlug(post.Title)
	}
	post.NormalizePublication(time.Now().UTC())
	return r.db.Omit("Author").Create(post).Error
}

// Update fully replaces an existing post's fields, keeping the slug, creation
// time and view counter from the stored row. The publish timestamp survives
// for posts that were already published and is cleared when the post leaves
// the published state.
func (r *BlogPostRepo) Update(post *models.BlogPost) error {
	existing, err := r.FindByID(post.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return gorm.ErrRecordNotFound
	}

	// Slug stability: a title edit never rewrites a published URL.
	post.Slug = existing.Slug
	post.CreatedAt = existing.CreatedAt
	post.Views = existing.Views
	post.PublishedAt = existing.PublishedAt
	post.NormalizePublication(time.Now().UTC())
	post.UpdatedAt = time.Now().UTC()

	return r.db.Omit("Author").Save(post).Error
}

// Delete removes a blog post from the database by id.
func (r *BlogPostRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.BlogPost{}, "id = ?", id).Error
}

// IncrementViews bumps the view counter atomically in the database rather
// than read-modify-write from the client.
func (r *BlogPostRepo) IncrementViews(id uuid.UUID) error {
	result := r.db.Model(&models.BlogPost{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
