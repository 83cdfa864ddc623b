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

const (
	resumeNamespace       = "resumes"
	profileImageNamespace = "profile-images"
)

var (
	ErrAboutNotFound          = errors.New("about information not found")
	ErrResumeRequired         = errors.New("resume PDF is required")
	ErrResumeMissing          = errors.New("no resume found to delete")
	ErrProfileImageRequired   = errors.New("profile image is required")
	ErrProfileImageMissing    = errors.New("no profile image found to delete")
	ErrProfileImageNotAnImage = errors.New("only image files are allowed for profile image")
)

// socialLinkKeys is the fixed key set accepted on the social-link map.
var socialLinkKeys = []string{"linkedin", "github", "twitter", "instagram", "portfolio"}

// AboutService maintains the singleton-by-convention about record.
// All lookups funnel through firstRecord so the "first matching record"
// rule lives in one place.
type AboutService struct {
	db     *gorm.DB
	assets asset.Store
}

// NewAboutService creates an AboutService instance.
func NewAboutService(gdb *gorm.DB, store asset.Store) *AboutService {
	return &AboutService{db: gdb, assets: store}
}

// AboutInput represents the fields accepted by the create-or-update
// operation. Quote is a pointer because an explicitly empty quote must
// clear the stored one, while an absent quote must leave it alone.
type AboutInput struct {
	Role         string
	Description  interface{}
	Quote        *string
	ContactEmail string
	ContactPhone string
	Address      string
	SocialLinks  interface{}
	File         *asset.File
}

// GetActive returns the record flagged active.
func (s *AboutService) GetActive() (*db.About, error) {
	var about db.About
	if err := s.db.Where("is_active = ?", true).First(&about).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAboutNotFound
		}
		return nil, fmt.Errorf("get about: %w", err)
	}
	return &about, nil
}

// CreateOrUpdate creates the about record on first use, and otherwise
// merges the supplied fields over the existing ones: non-empty scalars
// win, the social link map merges key by key, and an attached file
// replaces the resume or the profile image depending on its type.
func (s *AboutService) CreateOrUpdate(ctx context.Context, input AboutInput) (*db.About, error) {
	description := fieldutil.Normalize(input.Description, nil)
	links := filterSocialLinks(fieldutil.Links(input.SocialLinks))

	about, err := s.firstRecord()
	if err != nil && !errors.Is(err, ErrAboutNotFound) {
		return nil, err
	}

	if about == nil {
		about = &db.About{
			Role:         input.Role,
			Description:  description,
			ContactEmail: input.ContactEmail,
			ContactPhone: input.ContactPhone,
			Address:      input.Address,
			SocialLinks:  links,
		}
		if input.Quote != nil {
			about.Quote = *input.Quote
		}
	} else {
		if strings.TrimSpace(input.Role) != "" {
			about.Role = input.Role
		}
		if len(description) > 0 {
			about.Description = description
		}
		if input.Quote != nil {
			about.Quote = *input.Quote
		}
		if strings.TrimSpace(input.ContactEmail) != "" {
			about.ContactEmail = input.ContactEmail
		}
		if strings.TrimSpace(input.ContactPhone) != "" {
			about.ContactPhone = input.ContactPhone
		}
		if strings.TrimSpace(input.Address) != "" {
			about.Address = input.Address
		}

		if len(links) > 0 {
			merged := db.SocialLinks{}
			for key, value := range about.SocialLinks {
				merged[key] = value
			}
			for key, value := range links {
				merged[key] = value
			}
			about.SocialLinks = merged
		}
	}

	if err := s.applyFile(ctx, about, input.File); err != nil {
		return nil, err
	}

	if err := s.db.Save(about).Error; err != nil {
		return nil, fmt.Errorf("save about: %w", err)
	}
	return about, nil
}

// UpdateResume replaces just the stored résumé, creating a stub record
// when none exists yet.
func (s *AboutService) UpdateResume(ctx context.Context, file *asset.File) (*db.About, error) {
	if file == nil {
		return nil, ErrResumeRequired
	}

	about, err := s.firstOrStub()
	if err != nil {
		return nil, err
	}

	ref, err := asset.Replace(ctx, s.assets, about.ResumePDF, file, resumeNamespace)
	if err != nil {
		return nil, fmt.Errorf("replace resume: %w", err)
	}
	about.ResumePDF = ref

	if err := s.db.Save(about).Error; err != nil {
		return nil, fmt.Errorf("save about: %w", err)
	}
	return about, nil
}

// DeleteResume removes the stored résumé reference after a best-effort
// delete of the remote document.
func (s *AboutService) DeleteResume(ctx context.Context) error {
	about, err := s.firstRecord()
	if err != nil {
		return err
	}
	if about.ResumePDF == "" {
		return ErrResumeMissing
	}

	s.deleteRemote(ctx, resumeNamespace, about.ResumePDF)
	about.ResumePDF = ""

	if err := s.db.Save(about).Error; err != nil {
		return fmt.Errorf("save about: %w", err)
	}
	return nil
}

// UpdateProfileImage replaces just the profile image, creating a stub
// record when none exists yet. Non-image uploads are rejected.
func (s *AboutService) UpdateProfileImage(ctx context.Context, file *asset.File) (*db.About, error) {
	if file == nil {
		return nil, ErrProfileImageRequired
	}
	if !strings.HasPrefix(file.ContentType, "image/") {
		return nil, ErrProfileImageNotAnImage
	}

	about, err := s.firstOrStub()
	if err != nil {
		return nil, err
	}

	ref, err := asset.Replace(ctx, s.assets, about.ProfileImage, file, profileImageNamespace)
	if err != nil {
		return nil, fmt.Errorf("replace profile image: %w", err)
	}
	about.ProfileImage = ref

	if err := s.db.Save(about).Error; err != nil {
		return nil, fmt.Errorf("save about: %w", err)
	}
	return about, nil
}

// DeleteProfileImage removes the stored profile image reference after a
// best-effort delete of the remote image.
func (s *AboutService) DeleteProfileImage(ctx context.Context) error {
	about, err := s.firstRecord()
	if err != nil {
		return err
	}
	if about.ProfileImage == "" {
		return ErrProfileImageMissing
	}

	s.deleteRemote(ctx, profileImageNamespace, about.ProfileImage)
	about.ProfileImage = ""

	if err := s.db.Save(about).Error; err != nil {
		return fmt.Errorf("save about: %w", err)
	}
	return nil
}

// ToggleActive flips the active flag and returns the new value.
func (s *AboutService) ToggleActive() (bool, error) {
	about, err := s.firstRecord()
	if err != nil {
		return false, err
	}

	about.IsActive = !about.IsActive
	if err := s.db.Save(about).Error; err != nil {
		return false, fmt.Errorf("save about: %w", err)
	}
	return about.IsActive, nil
}

// firstRecord fetches the oldest record regardless of the active flag.
func (s *AboutService) firstRecord() (*db.About, error) {
	var about db.About
	if err := s.db.Order("id asc").First(&about).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAboutNotFound
		}
		return nil, fmt.Errorf("get about: %w", err)
	}
	return &about, nil
}

func (s *AboutService) firstOrStub() (*db.About, error) {
	about, err := s.firstRecord()
	if errors.Is(err, ErrAboutNotFound) {
		return &db.About{
			Role:        "Your Role",
			Description: db.StringList{"Add your description here"},
		}, nil
	}
	return about, err
}

func (s *AboutService) applyFile(ctx context.Context, about *db.About, file *asset.File) error {
	if file == nil {
		return nil
	}

	// A single generic upload field serves both assets here, so dispatch
	// on the declared content type rather than the field name.
	switch {
	case file.IsPDF():
		ref, err := asset.Replace(ctx, s.assets, about.ResumePDF, file, resumeNamespace)
		if err != nil {
			return fmt.Errorf("replace resume: %w", err)
		}
		about.ResumePDF = ref
	case strings.HasPrefix(file.ContentType, "image/"):
		ref, err := asset.Replace(ctx, s.assets, about.ProfileImage, file, profileImageNamespace)
		if err != nil {
			return fmt.Errorf("replace profile image: %w", err)
		}
		about.ProfileImage = ref
	}
	return nil
}

func (s *AboutService) deleteRemote(ctx context.Context, namespace, reference string) {
	publicID := asset.PublicID(reference)
	if publicID == "" {
		return
	}
	if err := s.assets.Delete(ctx, namespace, publicID); err != nil {
		log.Printf("about: failed to delete %s/%s: %v", namespace, publicID, err)
	}
}

func filterSocialLinks(raw map[string]string) db.SocialLinks {
	links := db.SocialLinks{}
	for _, key := range socialLinkKeys {
		if value, ok := raw[key]; ok {
			links[key] = value
		}
	}
	return links
}
