package db

import "gorm.io/gorm"

// Contact is one submitted contact form entry. Records are append-only:
// they are never mutated after submission, only listed and deleted.
type Contact struct {
	gorm.Model
	Name           string `gorm:"size:255;not null" json:"name"`
	Email          string `gorm:"size:255;not null" json:"email"`
	Phone          string `gorm:"size:50" json:"phone"`
	Message        string `gorm:"type:text;not null" json:"message"`
	CompanyName    string `gorm:"size:255" json:"companyName"`
	CompanyWebsite string `gorm:"size:500" json:"companyWebsite"`
}
