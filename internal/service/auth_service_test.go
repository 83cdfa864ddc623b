package service

import (
	"errors"
	"testing"

	"github.com/folioapi/internal/db"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthLogin(t *testing.T) {
	gdb, cleanup := setupTestDB(t, &db.Admin{})
	defer cleanup()

	hashed, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if err := gdb.Create(&db.Admin{Email: "admin@example.com", Password: string(hashed), Name: "Sam"}).Error; err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}

	svc := NewAuthService(gdb, []byte("test-secret"))

	if _, _, err := svc.Login("missing@example.com", "hunter2"); !errors.Is(err, ErrAdminNotFound) {
		t.Fatalf("expected ErrAdminNotFound, got %v", err)
	}
	if _, _, err := svc.Login("admin@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	token, admin, err := svc.Login("admin@example.com", "hunter2")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected signed token")
	}
	if admin.Name != "Sam" {
		t.Fatalf("expected admin returned, got %+v", admin)
	}

	id, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("failed to verify issued token: %v", err)
	}
	if id != admin.ID {
		t.Fatalf("expected token subject %d, got %d", admin.ID, id)
	}
}

func TestAuthVerifyRejectsTampered(t *testing.T) {
	gdb, cleanup := setupTestDB(t, &db.Admin{})
	defer cleanup()

	svc := NewAuthService(gdb, []byte("test-secret"))
	other := NewAuthService(gdb, []byte("other-secret"))

	hashed, _ := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.DefaultCost)
	if err := gdb.Create(&db.Admin{Email: "admin@example.com", Password: string(hashed)}).Error; err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}

	token, _, err := other.Login("admin@example.com", "hunter2")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if _, err := svc.VerifyToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for foreign signature, got %v", err)
	}
	if _, err := svc.VerifyToken("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for garbage, got %v", err)
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName(&db.Admin{Email: "admin@example.com", Name: "Sam"}); got != "Sam" {
		t.Fatalf("expected explicit name, got %s", got)
	}
	if got := DisplayName(&db.Admin{Email: "admin@example.com"}); got != "admin" {
		t.Fatalf("expected email local part fallback, got %s", got)
	}
}
