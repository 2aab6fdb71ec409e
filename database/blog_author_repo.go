package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hitekgroup/hitek-site-backend/models"
)

type BlogAuthorRepo struct {
	db *gorm.DB
}

func NewBlogAuthorRepo(db *gorm.DB) *BlogAuthorRepo {
	return &BlogAuthorRepo{db}
}

// FindAll returns all blog authors ordered by name.
func (r *BlogAuthorRepo) FindAll() ([]models.BlogAuthor, error) {
	var authors []models.BlogAuthor
	err := r.db.Order("name ASC").Find(&authors).Error
	return authors, err
}

// FindByID returns an author by ID. Returns (nil, nil) when no row exists.
func (r *BlogAuthorRepo) FindByID(id uuid.UUID) (*models.BlogAuthor, error) {
	var author models.BlogAuthor
	err := r.db.First(&author, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// Add inserts a new blog author.
func (r *BlogAuthorRepo) Add(author *models.BlogAuthor) error {
	return r.db.Create(author).Error
}
