package models

import "github.com/google/uuid"

// BlogAuthor is reference data for attributing blog posts.
type BlogAuthor struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	AvatarURL *string   `json:"avatar_url,omitempty" db:"avatar_url" gorm:"type:text"`
	Bio       *string   `json:"bio,omitempty" db:"bio" gorm:"type:text"`
}
