package db

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Admin is the single backend operator account. It is provisioned out of
// band (scripts/initadmin) and only ever read by the login flow.
type Admin struct {
	gorm.Model
	Email    string `gorm:"size:255;unique;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"`
	Name     string `gorm:"size:255" json:"name"`
}

// EnsureAdmin creates a bcrypt-hashed admin account if the email and
// password are both non-empty and no account with that email exists yet.
func EnsureAdmin(email, password, name string) error {
	trimmedEmail := strings.ToLower(strings.TrimSpace(email))
	trimmedPassword := strings.TrimSpace(password)
	if trimmedEmail == "" || trimmedPassword == "" {
		return nil
	}

	if DB == nil {
		return errors.New("database not initialized")
	}

	var existing Admin
	if err := DB.Where("email = ?", trimmedEmail).First(&existing).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(trimmedPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		return DB.Create(&Admin{
			Email:    trimmedEmail,
			Password: string(hashed),
			Name:     strings.TrimSpace(name),
		}).Error
	}

	return nil
}
