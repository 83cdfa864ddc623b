package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/folioapi/internal/asset"
	"github.com/folioapi/internal/db"
)

func TestAboutCreateOrUpdateCreatesFirstRecord(t *testing.T) {
	gdb, cleanup := setupTestDB(t, &db.About{})
	defer cleanup()

	svc := NewAboutService(gdb, &fakeStore{})
	quote := "ship it"

	about, err := svc.CreateOrUpdate(context.Background(), AboutInput{
		Role:        "Backend Engineer",
		Description: `["first paragraph","second paragraph"]`,
		Quote:       &quote,
		SocialLinks: `{"github":"https://github.com/me"}`,
	})
	if err != nil {
		t.Fatalf("failed to create about: %v", err)
	}
	if about.Role != "Backend Engineer" || len(about.Description) != 2 {
		t.Fatalf("unexpected record %+v", about)
	}
	if about.SocialLinks["github"] != "https://github.com/me" {
		t.Fatalf("expected social link persisted, got %v", about.SocialLinks)
	}
}

func TestAboutMergeKeepsExistingValues(t *testing.T) {
	gdb, cleanup := setupTestDB(t, &db.About{})
	defer cleanup()

	svc := NewAboutService(gdb, &fakeStore{})

	if _, err := svc.CreateOrUpdate(context.Background(), AboutInput{
		Role:         "Backend Engineer",
		Description:  `["original"]`,
		ContactEmail: "me@example.com",
		SocialLinks:  `{"linkedin":"l"}`,
	}); err != nil {
		t.Fatalf("failed to create about: %v", err)
	}

	about, err := svc.CreateOrUpdate(context.Background(), AboutInput{
		SocialLinks: `{"github":"g"}`,
	})
	if err != nil {
		t.Fatalf("failed to update about: %v", err)
	}

	if about.Role != "Backend Engineer" || about.ContactEmail != "me@example.com" {
		t.Fatalf("expected empty fields to keep stored values, got %+v", about)
	}
	if len(about.Description) != 1 || about.Description[0] != "original" {
		t.Fatalf("expected description kept, got %v", about.Description)
	}
	if about.SocialLinks["linkedin"] != "l" || about.SocialLinks["github"] != "g" {
		t.Fatalf("expected key-by-key merge, got %v", about.SocialLinks)
	}
}

func TestAboutFileDispatchByContentType(t *testing.T) {
	gdb, cleanup := setupTestDB(t, &db.About{})
	defer cleanup()

	store := &fakeStore{}
	svc := NewAboutService(gdb, store)

	about, err := svc.CreateOrUpdate(context.Background(), AboutInput{
		Role: "Backend Engineer",
		File: &asset.File{Name: "cv.pdf", ContentType: "application/pdf", Reader: strings.NewReader("pdf")},
	})
	if err != nil {
		t.Fatalf("failed to upload resume: %v", err)
	}
	if about.ResumePDF == "" || about.ProfileImage != "" {
		t.Fatalf("expected pdf routed to resume slot, got %+v", about)
	}

	about, err = svc.CreateOrUpdate(context.Background(), AboutInput{
		File: &asset.File{Name: "face.png", ContentType: "image/png", Reader: strings.NewReader("png")},
	})
	if err != nil {
		t.Fatalf("failed to upload profile image: %v", err)
	}
	if about.ProfileImage == "" {
		t.Fatalf("expected image routed to profile slot, got %+v", about)
	}

	if store.uploads[0] != "resumes" || store.uploads[1] != "profile-images" {
		t.Fatalf("expected namespace dispatch by content type, got %v", store.uploads)
	}
}

func TestAboutGetActiveAndToggle(t *testing.T) {
	gdb, cleanup := setupTestDB(t, &db.About{})
	defer cleanup()

	svc := NewAboutService(gdb, &fakeStore{})

	if _, err := svc.GetActive(); !errors.Is(err, ErrAboutNotFound) {
		t.Fatalf("expected ErrAboutNotFound, got %v", err)
	}

	if _, err := svc.CreateOrUpdate(context.Background(), AboutInput{Role: "Backend Engineer"}); err != nil {
		t.Fatalf("failed to create about: %v", err)
	}

	about, err := svc.GetActive()
	if err != nil {
		t.Fatalf("expected active record, got %v", err)
	}
	if !about.IsActive {
		t.Fatalf("expected new record active by default")
	}

	active, err := svc.ToggleActive()
	if err != nil {
		t.Fatalf("failed to toggle: %v", err)
	}
	if active {
		t.Fatalf("expected toggle to deactivate")
	}
	if _, err := svc.GetActive(); !errors.Is(err, ErrAboutNotFound) {
		t.Fatalf("expected no active record after toggle, got %v", err)
	}
}

func TestAboutResumeLifecycle(t *testing.T) {
	gdb, cleanup := setupTestDB(t, &db.About{})
	defer cleanup()

	store := &fakeStore{}
	svc := NewAboutService(gdb, store)

	if _, err := svc.UpdateResume(context.Background(), nil); !errors.Is(err, ErrResumeRequired) {
		t.Fatalf("expected ErrResumeRequired, got %v", err)
	}

	about, err := svc.UpdateResume(context.Background(), &asset.File{
		Name: "cv.pdf", ContentType: "application/pdf", Reader: strings.NewReader("pdf"),
	})
	if err != nil {
		t.Fatalf("failed to update resume: %v", err)
	}
	if about.ResumePDF == "" {
		t.Fatalf("expected resume reference persisted")
	}
	if about.Role != "Your Role" {
		t.Fatalf("expected stub record created, got %+v", about)
	}

	if err := svc.DeleteResume(context.Background()); err != nil {
		t.Fatalf("failed to delete resume: %v", err)
	}
	if err := svc.DeleteResume(context.Background()); !errors.Is(err, ErrResumeMissing) {
		t.Fatalf("expected ErrResumeMissing on second delete, got %v", err)
	}
	if len(store.deletes) != 1 || !strings.HasPrefix(store.deletes[0], "resumes/") {
		t.Fatalf("expected one remote resume delete, got %v", store.deletes)
	}
}

func TestAboutProfileImageRejectsNonImage(t *testing.T) {
	gdb, cleanup := setupTestDB(t, &db.About{})
	defer cleanup()

	svc := NewAboutService(gdb, &fakeStore{})

	_, err := svc.UpdateProfileImage(context.Background(), &asset.File{
		Name: "cv.pdf", ContentType: "application/pdf", Reader: strings.NewReader("pdf"),
	})
	if !errors.Is(err, ErrProfileImageNotAnImage) {
		t.Fatalf("expected ErrProfileImageNotAnImage, got %v", err)
	}
}
