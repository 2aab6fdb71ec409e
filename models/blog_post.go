package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// Blog post publication states.
const (
	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"
	BlogStatusArchived  = "archived"
)

// BlogPost represents a complete article with SEO metadata. The slug is derived
// from the title once, on creation, and never regenerated afterwards so
// published URLs stay stable across title edits.
type BlogPost struct {
	ID              uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title           string     `json:"title" db:"title" gorm:"type:text;not null"`
	Slug            string     `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex:idx_blog_post_slug"`
	Subtitle        *string    `json:"subtitle,omitempty" db:"subtitle" gorm:"type:text"`
	Excerpt         *string    `json:"excerpt,omitempty" db:"excerpt" gorm:"type:text"`
	Content         string     `json:"content" db:"content" gorm:"type:text;not null"`
	ThumbnailURL    *string    `json:"thumbnail_url,omitempty" db:"thumbnail_url" gorm:"type:text"`
	CoverImageURL   *string    `json:"cover_image_url,omitempty" db:"cover_image_url" gorm:"type:text"`
	EventDate       *time.Time `json:"event_date,omitempty" db:"event_date" gorm:"type:timestamp"`
	Location        *string    `json:"location,omitempty" db:"location" gorm:"type:text"`
	Status          string     `json:"status" db:"status" gorm:"type:text;not null;default:'draft';index:idx_blog_post_status"`
	Views           int        `json:"views" db:"views" gorm:"not null;default:0"`
	MetaTitle       *string    `json:"meta_title,omitempty" db:"meta_title" gorm:"type:text"`
	MetaDescription *string    `json:"meta_description,omitempty" db:"meta_description" gorm:"type:text"`
	AuthorID        *uuid.UUID `json:"author_id,omitempty" db:"author_id" gorm:"type:uuid;index:idx_blog_post_author_id"`
	PublishedAt     *time.Time `json:"published_at,omitempty" db:"published_at" gorm:"type:timestamp"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`

	Author *BlogAuthor `json:"author,omitempty" gorm:"foreignKey:AuthorID;references:ID"`
}

// ValidStatus reports whether s is one of the three publication states.
func ValidStatus(s string) bool {
	switch s {
	case BlogStatusDraft, BlogStatusPublished, BlogStatusArchived:
		return true
	}
	return false
}

// DeriveSlug turns a title into its URL-safe slug: lowercased, diacritics
// stripped, non-alphanumeric runs collapsed to single hyphens, edges trimmed.
func DeriveSlug(title string) string {
	return slug.Make(title)
}

// NormalizePublication enforces the invariant that published_at is set exactly
// when status is "published". The timestamp is stamped on the transition to
// published and cleared whenever the post leaves that state; an already
// published post keeps its original publish time.
func (b *BlogPost) NormalizePublication(now time.Time) {
	if b.Status == "" {
		b.Status = BlogStatusDraft
	}
	if b.Status == BlogStatusPublished {
		if b.PublishedAt == nil {
			b.PublishedAt = &now
		}
		return
	}
	b.PublishedAt = nil
}
