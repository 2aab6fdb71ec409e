package models

import (
	"time"

	"github.com/google/uuid"
)

// ChatHistory is one exchange between a visitor and the chat widget. Rows are
// append-only: the admin API reads them but never edits or deletes.
type ChatHistory struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	UserMessage string    `json:"user_message" db:"user_message" gorm:"type:text;not null"`
	BotResponse string    `json:"bot_response" db:"bot_response" gorm:"type:text;not null"`
	SessionID   *string   `json:"session_id,omitempty" db:"session_id" gorm:"type:text;index:idx_chat_history_session_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
