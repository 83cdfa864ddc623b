package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/folioapi/internal/asset"
	"github.com/folioapi/internal/db"
	"gorm.io/gorm"
)

const skillNamespace = "skills"

var (
	ErrSkillNotFound     = errors.New("skill not found")
	ErrSkillIconRequired = errors.New("skill icon is required")
	ErrSkillInvalidInput = errors.New("skill name and category are required")
)

// SkillService handles skill CRUD and the icon asset lifecycle.
type SkillService struct {
	db     *gorm.DB
	assets asset.Store
}

// NewSkillService creates a SkillService instance.
func NewSkillService(gdb *gorm.DB, store asset.Store) *SkillService {
	return &SkillService{db: gdb, assets: store}
}

// SkillInput represents the fields accepted when creating or updating a skill.
type SkillInput struct {
	SkillName     string
	SkillCategory string
	Icon          *asset.File
}

// Create stores the icon and persists a new skill. The icon is the one
// required upload in the whole API.
func (s *SkillService) Create(ctx context.Context, input SkillInput) (*db.Skill, error) {
	name := strings.TrimSpace(input.SkillName)
	category := strings.TrimSpace(input.SkillCategory)
	if name == "" || category == "" {
		return nil, ErrSkillInvalidInput
	}
	if input.Icon == nil {
		return nil, ErrSkillIconRequired
	}

	iconRef, err := s.assets.Upload(ctx, skillNamespace, *input.Icon)
	if err != nil {
		return nil, fmt.Errorf("upload skill icon: %w", err)
	}

	skill := db.Skill{
		SkillName:     name,
		SkillCategory: category,
		SkillIcon:     iconRef,
	}
	if err := s.db.Create(&skill).Error; err != nil {
		return nil, fmt.Errorf("create skill: %w", err)
	}
	return &skill, nil
}

// List returns all skills, newest first.
func (s *SkillService) List() ([]db.Skill, error) {
	var skills []db.Skill
	if err := s.db.Order("created_at desc").Find(&skills).Error; err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	return skills, nil
}

// Get fetches a skill by id.
func (s *SkillService) Get(id uint) (*db.Skill, error) {
	var skill db.Skill
	if err := s.db.First(&skill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, fmt.Errorf("get skill: %w", err)
	}
	return &skill, nil
}

// Update overwrites the mutable fields and replaces the stored icon when
// a new one is supplied.
func (s *SkillService) Update(ctx context.Context, id uint, input SkillInput) (*db.Skill, error) {
	skill, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	iconRef, err := asset.Replace(ctx, s.assets, skill.SkillIcon, input.Icon, skillNamespace)
	if err != nil {
		return nil, fmt.Errorf("replace skill icon: %w", err)
	}

	skill.SkillIcon = iconRef
	skill.SkillName = input.SkillName
	skill.SkillCategory = input.SkillCategory

	if err := s.db.Save(skill).Error; err != nil {
		return nil, fmt.Errorf("update skill: %w", err)
	}
	return skill, nil
}

// Delete removes the skill after a best-effort delete of its icon.
func (s *SkillService) Delete(ctx context.Context, id uint) error {
	skill, err := s.Get(id)
	if err != nil {
		return err
	}

	if publicID := asset.PublicID(skill.SkillIcon); publicID != "" {
		if err := s.assets.Delete(ctx, skillNamespace, publicID); err != nil {
			log.Printf("skill: failed to delete icon %s/%s: %v", skillNamespace, publicID, err)
		}
	}

	if err := s.db.Delete(skill).Error; err != nil {
		return fmt.Errorf("delete skill: %w", err)
	}
	return nil
}
