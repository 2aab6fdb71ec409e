package models

import (
	"time"

	"github.com/google/uuid"
)

// ChatResponse is a canned reply. It either answers a preset question directly
// (QuestionID set) or is matched against free-form messages by keyword.
type ChatResponse struct {
	ID           uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	QuestionID   *uuid.UUID `json:"question_id,omitempty" db:"question_id" gorm:"type:uuid;index:idx_chat_response_question_id"`
	ResponseText string     `json:"response_text" db:"response_text" gorm:"type:text;not null"`
	Keywords     []string   `json:"keywords,omitempty" db:"keywords" gorm:"serializer:json;type:jsonb"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
