package db

import (
	"time"

	"gorm.io/gorm"
)

// Certification is one completed course or certificate.
// Listings order by CourseCompletedDate, not the record timestamps.
type Certification struct {
	gorm.Model
	CourseName          string     `gorm:"size:255;not null" json:"courseName"`
	CourseMode          string     `gorm:"size:100;not null" json:"courseMode"`
	CourseProvider      string     `gorm:"size:255" json:"courseProvider"`
	CourseDuration      string     `gorm:"size:100" json:"courseDuration"`
	CourseCompletedDate *time.Time `json:"courseCompletedDate"`
	KeyLearnings        StringList `gorm:"type:text" json:"keyLearnings"`
	CertificatePDF      string     `gorm:"size:500" json:"certificatePdf"`
}
