package models

import (
	"time"

	"github.com/google/uuid"
)

// PresetQuestion is a question offered to visitors by the chat widget.
// Questions form a shallow tree via ParentID; IsFinal marks leaves that map
// directly to a canned response.
type PresetQuestion struct {
	ID           uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	QuestionText string     `json:"question_text" db:"question_text" gorm:"type:text;not null"`
	Category     *string    `json:"category,omitempty" db:"category" gorm:"type:text"`
	DisplayOrder int        `json:"display_order" db:"display_order" gorm:"not null;default:0"`
	IsActive     bool       `json:"is_active" db:"is_active" gorm:"not null;default:true"`
	ParentID     *uuid.UUID `json:"parent_id,omitempty" db:"parent_id" gorm:"type:uuid"`
	IsFinal      *bool      `json:"is_final,omitempty" db:"is_final"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
