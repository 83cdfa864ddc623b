package db

import "gorm.io/gorm"

// Skill is one technology entry displayed on the skills grid.
// SkillIcon holds the remote asset reference and is required at creation.
type Skill struct {
	gorm.Model
	SkillName     string `gorm:"size:100;not null" json:"skillName"`
	SkillCategory string `gorm:"size:100;not null" json:"skillCategory"`
	SkillIcon     string `gorm:"size:500;not null" json:"skillIcon"`
}
