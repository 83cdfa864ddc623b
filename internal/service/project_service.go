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

const projectNamespace = "projects"

var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrProjectNameRequired = errors.New("project name is required")
)

// ProjectService handles project CRUD.
type ProjectService struct {
	db     *gorm.DB
	assets asset.Store
}

// NewProjectService creates a ProjectService instance.
func NewProjectService(gdb *gorm.DB, store asset.Store) *ProjectService {
	return &ProjectService{db: gdb, assets: store}
}

// ProjectInput represents the fields accepted when creating or updating
// a project.
type ProjectInput struct {
	ProjectName        string
	ProjectDuration    string
	ProjectDescription interface{}
	ProjectTechStack   interface{}
	ProjectClient      string
	TargetAudience     interface{}
	ProjectFeatures    interface{}
	ProjectRole        string
	GithubLink         string
	ProjectLink        string
	Image              *asset.File
}

// Create persists a new project, storing the image first if one was
// attached.
func (s *ProjectService) Create(ctx context.Context, input ProjectInput) (*db.Project, error) {
	if strings.TrimSpace(input.ProjectName) == "" {
		return nil, ErrProjectNameRequired
	}

	imageRef := ""
	if input.Image != nil {
		ref, err := s.assets.Upload(ctx, projectNamespace, *input.Image)
		if err != nil {
			return nil, fmt.Errorf("upload project image: %w", err)
		}
		imageRef = ref
	}

	project := db.Project{
		ProjectName:        input.ProjectName,
		ProjectDuration:    input.ProjectDuration,
		ProjectImage:       imageRef,
		ProjectDescription: fieldutil.Normalize(input.ProjectDescription, nil),
		ProjectTechStack:   fieldutil.Normalize(input.ProjectTechStack, nil),
		ProjectClient:      input.ProjectClient,
		TargetAudience:     fieldutil.Normalize(input.TargetAudience, nil),
		ProjectFeatures:    fieldutil.Normalize(input.ProjectFeatures, nil),
		ProjectRole:        input.ProjectRole,
		GithubLink:         input.GithubLink,
		ProjectLink:        input.ProjectLink,
	}
	if err := s.db.Create(&project).Error; err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return &project, nil
}

// List returns all projects, newest first.
func (s *ProjectService) List() ([]db.Project, error) {
	var projects []db.Project
	if err := s.db.Order("created_at desc").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// Get fetches a project by id.
func (s *ProjectService) Get(id uint) (*db.Project, error) {
	var project db.Project
	if err := s.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &project, nil
}

// Update overwrites the mutable fields and replaces the stored image
// when a new one is supplied.
func (s *ProjectService) Update(ctx context.Context, id uint, input ProjectInput) (*db.Project, error) {
	project, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	imageRef, err := asset.Replace(ctx, s.assets, project.ProjectImage, input.Image, projectNamespace)
	if err != nil {
		return nil, fmt.Errorf("replace project image: %w", err)
	}

	project.ProjectImage = imageRef
	project.ProjectName = input.ProjectName
	project.ProjectDuration = input.ProjectDuration
	project.ProjectDescription = fieldutil.Normalize(input.ProjectDescription, project.ProjectDescription)
	project.ProjectTechStack = fieldutil.Normalize(input.ProjectTechStack, project.ProjectTechStack)
	project.ProjectClient = input.ProjectClient
	project.TargetAudience = fieldutil.Normalize(input.TargetAudience, project.TargetAudience)
	project.ProjectFeatures = fieldutil.Normalize(input.ProjectFeatures, project.ProjectFeatures)
	project.ProjectRole = input.ProjectRole
	project.GithubLink = input.GithubLink
	project.ProjectLink = input.ProjectLink

	if err := s.db.Save(project).Error; err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return project, nil
}

// Delete removes the project after a best-effort delete of its image.
func (s *ProjectService) Delete(ctx context.Context, id uint) error {
	project, err := s.Get(id)
	if err != nil {
		return err
	}

	if publicID := asset.PublicID(project.ProjectImage); publicID != "" {
		if err := s.assets.Delete(ctx, projectNamespace, publicID); err != nil {
			log.Printf("project: failed to delete image %s/%s: %v", projectNamespace, publicID, err)
		}
	}

	if err := s.db.Delete(project).Error; err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}
