package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hitekgroup/hitek-site-backend/models"
)

type ProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{db}
}

// FindByEmail returns the profile registered under the given email.
// Returns (nil, nil) when no row exists.
func (r *ProfileRepo) FindByEmail(email string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindByID returns a profile by ID. Returns (nil, nil) when no row exists.
func (r *ProfileRepo) FindByID(id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Add inserts a new profile.
func (r *ProfileRepo) Add(profile *models.Profile) error {
	return r.db.Create(profile).Error
}
