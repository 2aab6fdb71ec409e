package database

import (
	"gorm.io/gorm"

	"github.com/hitekgroup/hitek-site-backend/models"
)

// ChatHistoryRepo exposes the history log. The collection is append-only:
// there are no update or delete operations on purpose.
type ChatHistoryRepo struct {
	db *gorm.DB
}

func NewChatHistoryRepo(db *gorm.DB) *ChatHistoryRepo {
	return &ChatHistoryRepo{db}
}

// FindAll returns history entries, newest first, optionally filtered by
// session. An empty sessionID means no filter.
func (r *ChatHistoryRepo) FindAll(sessionID string) ([]models.ChatHistory, error) {
	query := r.db.Order("created_at DESC")
	if sessionID != "" {
		query = query.Where("session_id = ?", sessionID)
	}

	var history []models.ChatHistory
	err := query.Find(&history).Error
	return history, err
}

// Add appends one exchange to the log.
func (r *ChatHistoryRepo) Add(entry *models.ChatHistory) error {
	return r.db.Create(entry).Error
}
