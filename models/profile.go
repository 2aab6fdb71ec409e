package models

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Profile is an admin user. Sign-in verifies the submitted password against
// PasswordHash only; there is no hardcoded credential path.
type Profile struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Email        string    `json:"email" db:"email" gorm:"type:text;not null;uniqueIndex:idx_profile_email"`
	Name         string    `json:"name" db:"name" gorm:"type:text;not null"`
	Role         string    `json:"role" db:"role" gorm:"type:text;not null;default:'admin'"`
	PasswordHash string    `json:"-" db:"password_hash" gorm:"type:text;not null"`
}

// SetPassword hashes and stores the given password.
func (p *Profile) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	p.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the given password matches the stored hash.
func (p Profile) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)) == nil
}
