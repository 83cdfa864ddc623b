package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/folioapi/internal/asset"
	"github.com/folioapi/internal/db"
	"github.com/folioapi/internal/fieldutil"
	"gorm.io/gorm"
)

const certificationNamespace = "certifications"

var (
	ErrCertificationNotFound     = errors.New("certification not found")
	ErrCertificationInvalidInput = errors.New("course name and mode are required")
)

// CertificationService handles certification CRUD.
type CertificationService struct {
	db     *gorm.DB
	assets asset.Store
}

// NewCertificationService creates a CertificationService instance.
func NewCertificationService(gdb *gorm.DB, store asset.Store) *CertificationService {
	return &CertificationService{db: gdb, assets: store}
}

// CertificationInput represents the fields accepted when creating or
// updating a certification. CourseCompletedDate accepts RFC3339 or a
// plain 2006-01-02 date; anything else is treated as absent.
type CertificationInput struct {
	CourseName          string
	CourseMode          string
	CourseProvider      string
	CourseDuration      string
	CourseCompletedDate string
	KeyLearnings        interface{}
	Certificate         *asset.File
}

// Create persists a new certification, storing the PDF first if one was
// attached.
func (s *CertificationService) Create(ctx context.Context, input CertificationInput) (*db.Certification, error) {
	if strings.TrimSpace(input.CourseName) == "" || strings.TrimSpace(input.CourseMode) == "" {
		return nil, ErrCertificationInvalidInput
	}

	certRef := ""
	if input.Certificate != nil {
		ref, err := s.assets.Upload(ctx, certificationNamespace, *input.Certificate)
		if err != nil {
			return nil, fmt.Errorf("upload certificate: %w", err)
		}
		certRef = ref
	}

	certification := db.Certification{
		CourseName:          input.CourseName,
		CourseMode:          input.CourseMode,
		CourseProvider:      input.CourseProvider,
		CourseDuration:      input.CourseDuration,
		CourseCompletedDate: parseCompletedDate(input.CourseCompletedDate),
		KeyLearnings:        fieldutil.Normalize(input.KeyLearnings, nil),
		CertificatePDF:      certRef,
	}
	if err := s.db.Create(&certification).Error; err != nil {
		return nil, fmt.Errorf("create certification: %w", err)
	}
	return &certification, nil
}

// List returns all certifications ordered by completion date, most
// recent first. Records without a completion date sort last.
func (s *CertificationService) List() ([]db.Certification, error) {
	var certifications []db.Certification
	if err := s.db.Order("course_completed_date desc").Find(&certifications).Error; err != nil {
		return nil, fmt.Errorf("list certifications: %w", err)
	}
	return certifications, nil
}

// Get fetches a certification by id.
func (s *CertificationService) Get(id uint) (*db.Certification, error) {
	var certification db.Certification
	if err := s.db.First(&certification, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCertificationNotFound
		}
		return nil, fmt.Errorf("get certification: %w", err)
	}
	return &certification, nil
}

// Update overwrites the mutable fields and replaces the stored PDF when
// a new one is supplied.
func (s *CertificationService) Update(ctx context.Context, id uint, input CertificationInput) (*db.Certification, error) {
	certification, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	certRef, err := asset.Replace(ctx, s.assets, certification.CertificatePDF, input.Certificate, certificationNamespace)
	if err != nil {
		return nil, fmt.Errorf("replace certificate: %w", err)
	}

	certification.CertificatePDF = certRef
	certification.CourseName = input.CourseName
	certification.CourseMode = input.CourseMode
	certification.CourseProvider = input.CourseProvider
	certification.CourseDuration = input.CourseDuration
	certification.CourseCompletedDate = parseCompletedDate(input.CourseCompletedDate)
	certification.KeyLearnings = fieldutil.Normalize(input.KeyLearnings, certification.KeyLearnings)

	if err := s.db.Save(certification).Error; err != nil {
		return nil, fmt.Errorf("update certification: %w", err)
	}
	return certification, nil
}

// Delete removes the certification after a best-effort delete of its PDF.
func (s *CertificationService) Delete(ctx context.Context, id uint) error {
	certification, err := s.Get(id)
	if err != nil {
		return err
	}

	if publicID := asset.PublicID(certification.CertificatePDF); publicID != "" {
		if err := s.assets.Delete(ctx, certificationNamespace, publicID); err != nil {
			log.Printf("certification: failed to delete pdf %s/%s: %v", certificationNamespace, publicID, err)
		}
	}

	if err := s.db.Delete(certification).Error; err != nil {
		return fmt.Errorf("delete certification: %w", err)
	}
	return nil
}

func parseCompletedDate(raw string) *time.Time {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return &parsed
		}
	}
	return nil
}
