package service

import (
	"context"
	"errors"
	"testing"

	"github.com/folioapi/internal/db"
)

func TestExperienceWorkModeValidation(t *testing.T) {
	gdb, cleanup := setupTestDB(t, &db.Experience{})
	defer cleanup()

	svc := NewExperienceService(gdb, &fakeStore{})

	_, err := svc.Create(context.Background(), ExperienceInput{CompanyName: "Acme", WorkMode: "Nomadic"})
	if !errors.Is(err, ErrExperienceWorkModeInvalid) {
		t.Fatalf("expected ErrExperienceWorkModeInvalid, got %v", err)
	}

	experience, err := svc.Create(context.Background(), ExperienceInput{
		CompanyName:      "Acme",
		WorkMode:         db.WorkModeRemote,
		TechnologiesUsed: `["Go"]`,
	})
	if err != nil {
		t.Fatalf("failed to create experience: %v", err)
	}
	if experience.WorkMode != db.WorkModeRemote {
		t.Fatalf("expected work mode persisted, got %s", experience.WorkMode)
	}
}

func TestExperienceCreateRequiresCompany(t *testing.T) {
	gdb, cleanup := setupTestDB(t, &db.Experience{})
	defer cleanup()

	svc := NewExperienceService(gdb, &fakeStore{})

	if _, err := svc.Create(context.Background(), ExperienceInput{WorkedRole: "Engineer"}); !errors.Is(err, ErrExperienceCompanyRequired) {
		t.Fatalf("expected ErrExperienceCompanyRequired, got %v", err)
	}
}

func TestExperienceUpdateKeepsListsOnMalformedInput(t *testing.T) {
	gdb, cleanup := setupTestDB(t, &db.Experience{})
	defer cleanup()

	svc := NewExperienceService(gdb, &fakeStore{})

	experience, err := svc.Create(context.Background(), ExperienceInput{
		CompanyName:         "Acme",
		KeyResponsibilities: []string{"ship features", "review code"},
	})
	if err != nil {
		t.Fatalf("failed to create experience: %v", err)
	}

	// An encoded value that is valid JSON but not an array must not
	// wipe stored values; scalar fields still take the request value
	// verbatim.
	updated, err := svc.Update(context.Background(), experience.ID, ExperienceInput{
		CompanyName:         "Acme Corp",
		KeyResponsibilities: `{"oops":true}`,
	})
	if err != nil {
		t.Fatalf("failed to update experience: %v", err)
	}
	if updated.CompanyName != "Acme Corp" {
		t.Fatalf("expected company overwritten, got %s", updated.CompanyName)
	}
	if len(updated.KeyResponsibilities) != 2 || updated.KeyResponsibilities[0] != "ship features" {
		t.Fatalf("expected stored responsibilities kept, got %v", updated.KeyResponsibilities)
	}
}

func TestExperienceUpdateMissing(t *testing.T) {
	gdb, cleanup := setupTestDB(t, &db.Experience{})
	defer cleanup()

	svc := NewExperienceService(gdb, &fakeStore{})

	if _, err := svc.Update(context.Background(), 42, ExperienceInput{CompanyName: "Acme"}); !errors.Is(err, ErrExperienceNotFound) {
		t.Fatalf("expected ErrExperienceNotFound, got %v", err)
	}
}
