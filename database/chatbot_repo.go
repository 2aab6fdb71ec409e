package database

import (
	"gorm.io/gorm"

	"github.com/hitekgroup/hitek-site-backend/models"
)

type ChatbotRepo struct {
	db *gorm.DB
}

func NewChatbotRepo(db *gorm.DB) *ChatbotRepo {
	return &ChatbotRepo{db}
}

// FindAll returns all chatbot descriptors.
func (r *ChatbotRepo) FindAll() ([]models.Chatbot, error) {
	var bots []models.Chatbot
	err := r.db.Order("id ASC").Find(&bots).Error
	return bots, err
}

// Add inserts a new chatbot descriptor.
func (r *ChatbotRepo) Add(bot *models.Chatbot) error {
	return r.db.Create(bot).Error
}

// Update saves an existing chatbot descriptor in place.
func (r *ChatbotRepo) Update(bot *models.Chatbot) error {
	return r.db.Save(bot).Error
}

// Delete removes a chatbot descriptor by id.
func (r *ChatbotRepo) Delete(id int) error {
	return r.db.Delete(&models.Chatbot{}, id).Error
}
