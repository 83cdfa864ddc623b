package db

import "gorm.io/gorm"

// About holds the single profile record served on the public about page.
// Only one record is treated as authoritative (IsActive), but uniqueness
// is by convention, not enforced by the schema.
type About struct {
	gorm.Model
	Role         string      `gorm:"size:255" json:"role"`
	Description  StringList  `gorm:"type:text" json:"description"`
	Quote        string      `gorm:"size:500" json:"quote"`
	ProfileImage string      `gorm:"size:500" json:"profileImage"`
	ResumePDF    string      `gorm:"size:500" json:"resumePdf"`
	ContactEmail string      `gorm:"size:255" json:"contactEmail"`
	ContactPhone string      `gorm:"size:50" json:"contactPhone"`
	Address      string      `gorm:"size:255" json:"address"`
	SocialLinks  SocialLinks `gorm:"type:text" json:"socialLinks"`
	IsActive     bool        `gorm:"default:true" json:"isActive"`
}
