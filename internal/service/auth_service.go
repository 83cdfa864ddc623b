package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/folioapi/internal/db"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrAdminNotFound      = errors.New("admin not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// tokenTTL bounds how long an issued bearer token stays valid. There is
// no server-side revocation; a logged-out token lives out its expiry.
const tokenTTL = 7 * 24 * time.Hour

// AuthService authenticates the admin account and issues bearer tokens.
type AuthService struct {
	db     *gorm.DB
	secret []byte
}

// NewAuthService creates an AuthService signing tokens with secret.
func NewAuthService(gdb *gorm.DB, secret []byte) *AuthService {
	return &AuthService{db: gdb, secret: secret}
}

// Login verifies the credentials and returns a signed token plus the
// matched admin. A missing account and a wrong password are distinct
// failures so the handler can map them to 404 and 401.
func (s *AuthService) Login(email, password string) (string, *db.Admin, error) {
	var admin db.Admin
	lookup := strings.ToLower(strings.TrimSpace(email))
	if err := s.db.Where("email = ?", lookup).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrAdminNotFound
		}
		return "", nil, fmt.Errorf("find admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(admin.ID), 10),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	return token, &admin, nil
}

// VerifyToken parses a bearer token and returns the admin id it embeds.
func (s *AuthService) VerifyToken(tokenString string) (uint, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return 0, ErrInvalidToken
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 32)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}

// DisplayName resolves the name shown to the client after login, falling
// back to the local part of the email when the account has no name set.
func DisplayName(admin *db.Admin) string {
	if name := strings.TrimSpace(admin.Name); name != "" {
		return name
	}
	if idx := strings.Index(admin.Email, "@"); idx > 0 {
		return admin.Email[:idx]
	}
	return admin.Email
}
