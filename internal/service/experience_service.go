package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/folioapi/internal/asset"
	"github.com/folioapi/internal/db"
	"github.com/folioapi/internal/fieldutil"
	"gorm.io/gorm"
)

const experienceNamespace = "experiences"

var (
	ErrExperienceNotFound        = errors.New("experience not found")
	ErrExperienceCompanyRequired = errors.New("company name is required")
	ErrExperienceWorkModeInvalid = errors.New("work mode must be On-site, Remote or Hybrid")
)

// ExperienceService handles experience CRUD.
type ExperienceService struct {
	db     *gorm.DB
	assets asset.Store
}

// NewExperienceService creates an ExperienceService instance.
func NewExperienceService(gdb *gorm.DB, store asset.Store) *ExperienceService {
	return &ExperienceService{db: gdb, assets: store}
}

// ExperienceInput represents the fields accepted when creating or
// updating an experience. List fields stay untyped until normalization
// because they may arrive as arrays, encoded strings or bare strings.
type ExperienceInput struct {
	CompanyName           string
	WorkedRole            string
	ExperienceDuration    string
	ExperienceDescription interface{}
	Location              string
	CompanyAddress        string
	CompanyType           string
	CompanyWebsite        string
	KeyResponsibilities   interface{}
	TechnologiesUsed      interface{}
	WorkMode              string
	Image                 *asset.File
}

// Create persists a new experience, storing the image first if one was
// attached.
func (s *ExperienceService) Create(ctx context.Context, input ExperienceInput) (*db.Experience, error) {
	if strings.TrimSpace(input.CompanyName) == "" {
		return nil, ErrExperienceCompanyRequired
	}
	if err := validateWorkMode(input.WorkMode); err != nil {
		return nil, err
	}

	imageRef := ""
	if input.Image != nil {
		ref, err := s.assets.Upload(ctx, experienceNamespace, *input.Image)
		if err != nil {
			return nil, fmt.Errorf("upload experience image: %w", err)
		}
		imageRef = ref
	}

	experience := db.Experience{
		CompanyName:           input.CompanyName,
		WorkedRole:            input.WorkedRole,
		ExperienceDuration:    input.ExperienceDuration,
		ExperienceDescription: fieldutil.Normalize(input.ExperienceDescription, nil),
		ExperienceImage:       imageRef,
		Location:              input.Location,
		CompanyAddress:        input.CompanyAddress,
		CompanyType:           input.CompanyType,
		CompanyWebsite:        input.CompanyWebsite,
		KeyResponsibilities:   fieldutil.Normalize(input.KeyResponsibilities, nil),
		TechnologiesUsed:      fieldutil.Normalize(input.TechnologiesUsed, nil),
		WorkMode:              input.WorkMode,
	}
	if err := s.db.Create(&experience).Error; err != nil {
		return nil, fmt.Errorf("create experience: %w", err)
	}
	return &experience, nil
}

// List returns all experiences, newest first.
func (s *ExperienceService) List() ([]db.Experience, error) {
	var experiences []db.Experience
	if err := s.db.Order("created_at desc").Find(&experiences).Error; err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}
	return experiences, nil
}

// Get fetches an experience by id.
func (s *ExperienceService) Get(id uint) (*db.Experience, error) {
	var experience db.Experience
	if err := s.db.First(&experience, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, fmt.Errorf("get experience: %w", err)
	}
	return &experience, nil
}

// Update overwrites the mutable fields. Scalar fields take the request
// value as-is; list fields degrade to the stored value on malformed input.
func (s *ExperienceService) Update(ctx context.Context, id uint, input ExperienceInput) (*db.Experience, error) {
	experience, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := validateWorkMode(input.WorkMode); err != nil {
		return nil, err
	}

	imageRef, err := asset.Replace(ctx, s.assets, experience.ExperienceImage, input.Image, experienceNamespace)
	if err != nil {
		return nil, fmt.Errorf("replace experience image: %w", err)
	}

	experience.ExperienceImage = imageRef
	experience.CompanyName = input.CompanyName
	experience.WorkedRole = input.WorkedRole
	experience.ExperienceDuration = input.ExperienceDuration
	experience.ExperienceDescription = fieldutil.Normalize(input.ExperienceDescription, experience.ExperienceDescription)
	experience.Location = input.Location
	experience.CompanyAddress = input.CompanyAddress
	experience.CompanyType = input.CompanyType
	experience.CompanyWebsite = input.CompanyWebsite
	experience.KeyResponsibilities = fieldutil.Normalize(input.KeyResponsibilities, experience.KeyResponsibilities)
	experience.TechnologiesUsed = fieldutil.Normalize(input.TechnologiesUsed, experience.TechnologiesUsed)
	experience.WorkMode = input.WorkMode

	if err := s.db.Save(experience).Error; err != nil {
		return nil, fmt.Errorf("update experience: %w", err)
	}
	return experience, nil
}

// Delete removes the experience after a best-effort delete of its image.
func (s *ExperienceService) Delete(ctx context.Context, id uint) error {
	experience, err := s.Get(id)
	if err != nil {
		return err
	}

	if publicID := asset.PublicID(experience.ExperienceImage); publicID != "" {
		if err := s.assets.Delete(ctx, experienceNamespace, publicID); err != nil {
			log.Printf("experience: failed to delete image %s/%s: %v", experienceNamespace, publicID, err)
		}
	}

	if err := s.db.Delete(experience).Error; err != nil {
		return fmt.Errorf("delete experience: %w", err)
	}
	return nil
}

func validateWorkMode(mode string) error {
	switch mode {
	case "", db.WorkModeOnSite, db.WorkModeRemote, db.WorkModeHybrid:
		return nil
	default:
		return ErrExperienceWorkModeInvalid
	}
}
