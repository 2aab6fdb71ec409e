package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hitekgroup/hitek-site-backend/models"
)

type ChatResponseRepo struct {
	db *gorm.DB
}

func NewChatResponseRepo(db *gorm.DB) *ChatResponseRepo {
	return &ChatResponseRepo{db}
}

// FindAll returns all canned responses, newest first.
func (r *ChatResponseRepo) FindAll() ([]models.ChatResponse, error) {
	var responses []models.ChatResponse
	err := r.db.Order("created_at DESC").Find(&responses).Error
	return responses, err
}

// FindByID returns a canned response by ID. Returns (nil, nil) when no row exists.
func (r *ChatResponseRepo) FindByID(id uuid.UUID) (*models.ChatResponse, error) {
	var response models.ChatResponse
	err := r.db.First(&response, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// FindByQuestionID returns the canned response answering a preset question.
// Returns (nil, nil) when no row exists.
func (r *ChatResponseRepo) FindByQuestionID(questionID uuid.UUID) (*models.ChatResponse, error) {
	var response models.ChatResponse
	err := r.db.First(&response, "question_id = ?", questionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// Add inserts a new canned response.
func (r *ChatResponseRepo) Add(response *models.ChatResponse) error {
	return r.db.Create(response).Error
}

// Update saves an existing canned response in place.
func (r *ChatResponseRepo) Update(response *models.ChatResponse) error {
	return r.db.Save(response).Error
}

// Delete removes a canned response by id.
func (r *ChatResponseRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ChatResponse{}, "id = ?", id).Error
}
