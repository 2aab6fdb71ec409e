package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hitekgroup/hitek-site-backend/models"
)

type PresetQuestionRepo struct {
	db *gorm.DB
}

func NewPresetQuestionRepo(db *gorm.DB) *PresetQuestionRepo {
	return &PresetQuestionRepo{db}
}

// FindAll returns all preset questions ordered for display.
func (r *PresetQuestionRepo) FindAll() ([]models.PresetQuestion, error) {
	var questions []models.PresetQuestion
	err := r.db.Order("display_order ASC").Find(&questions).Error
	return questions, err
}

// FindActive returns only the questions the public widget should offer.
func (r *PresetQuestionRepo) FindActive() ([]models.PresetQuestion, error) {
	var questions []models.PresetQuestion
	err := r.db.Where("is_active = ?", true).Order("display_order ASC").Find(&questions).Error
	return questions, err
}

// FindByID returns a preset question by ID. Returns (nil, nil) when no row exists.
func (r *PresetQuestionRepo) FindByID(id uuid.UUID) (*models.PresetQuestion, error) {
	var question models.PresetQuestion
	err := r.db.First(&question, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// Add inserts a new preset question.
func (r *PresetQuestionRepo) Add(question *models.PresetQuestion) error {
	return r.db.Create(question).Error
}

// Update saves an existing preset question in place.
func (r *PresetQuestionRepo) Update(question *models.PresetQuestion) error {
	return r.db.Save(question).Error
}

// Delete removes a preset question by id.
func (r *PresetQuestionRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.PresetQuestion{}, "id = ?", id).Error
}
