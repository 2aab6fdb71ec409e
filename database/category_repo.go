package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/hitekgroup/hitek-site-backend/models"
)

type CategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db}
}

// FindAll returns all categories ordered by display name. When the backing
// table holds no rows the fixed six-category set is served instead; a query
// failure still propagates as an error.
func (r *CategoryRepo) FindAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return models.CategoriesOrFallback(categories), nil
}

// FindByID returns a category by its slug. Returns (nil, nil) when no row exists.
func (r *CategoryRepo) FindByID(id string) (*models.Category, error) {
	var category models.Category
	err := r.db.Where("id = ?", id).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}
