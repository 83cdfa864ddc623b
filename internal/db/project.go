package db

import "gorm.io/gorm"

// Project is one portfolio project entry.
type Project struct {
	gorm.Model
	ProjectName        string     `gorm:"size:255;not null" json:"projectName"`
	ProjectDuration    string     `gorm:"size:100" json:"projectDuration"`
	ProjectImage       string     `gorm:"size:500" json:"projectImage"`
	ProjectDescription StringList `gorm:"type:text" json:"projectDescription"`
	ProjectTechStack   StringList `gorm:"type:text" json:"projectTechStack"`
	ProjectClient      string     `gorm:"size:255" json:"projectClient"`
	TargetAudience     StringList `gorm:"type:text" json:"targetAudience"`
	ProjectFeatures    StringList `gorm:"type:text" json:"projectFeatures"`
	ProjectRole        string     `gorm:"size:255" json:"projectRole"`
	GithubLink         string     `gorm:"size:500" json:"GithubLink"`
	ProjectLink        string     `gorm:"size:500" json:"projectLink"`
}
