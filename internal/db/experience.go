package db

import "gorm.io/gorm"

// Work mode values accepted on experience records.
const (
	WorkModeOnSite = "On-site"
	WorkModeRemote = "Remote"
	WorkModeHybrid = "Hybrid"
)

// Experience is one employment entry on the experience timeline.
type Experience struct {
	gorm.Model
	CompanyName           string     `gorm:"size:255;not null" json:"companyName"`
	WorkedRole            string     `gorm:"size:255" json:"workedRole"`
	ExperienceDuration    string     `gorm:"size:100" json:"experienceDuration"`
	ExperienceDescription StringList `gorm:"type:text" json:"experienceDescription"`
	ExperienceImage       string     `gorm:"size:500" json:"experienceImage"`
	Location              string     `gorm:"size:255" json:"location"`
	CompanyAddress        string     `gorm:"size:255" json:"companyAddress"`
	CompanyType           string     `gorm:"size:100" json:"companyType"`
	CompanyWebsite        string     `gorm:"size:500" json:"companyWebsite"`
	KeyResponsibilities   StringList `gorm:"type:text" json:"keyResponsibilities"`
	TechnologiesUsed      StringList `gorm:"type:text" json:"technologiesUsed"`
	WorkMode              string     `gorm:"size:20" json:"workMode"`
}
