package config

import (
	"fmt"
	"os"
	"strings"
)

// AppConfig collects everything the server process needs from the environment.
type AppConfig struct {
	ListenAddr          string
	Port                string
	DatabasePath        string
	GinMode             string
	JWTSecret           string
	AllowedOrigins      []string
	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	BrevoAPIKey         string
	MailSender          string
	MailSenderName      string
}

// Load reads the application config from environment variables, filling in
// safe defaults for anything that is missing.
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "5000"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "folio.db"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	jwtSecret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if jwtSecret == "" {
		jwtSecret = "folio-dev-secret"
	}

	origins := splitOrigins(os.Getenv("ALLOWED_ORIGINS"))
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173"}
	}

	mailSenderName := strings.TrimSpace(os.Getenv("MAIL_SENDER_NAME"))
	if mailSenderName == "" {
		mailSenderName = "Portfolio Contact"
	}

	return AppConfig{
		ListenAddr:          listenAddr,
		Port:                port,
		DatabasePath:        databasePath,
		GinMode:             ginMode,
		JWTSecret:           jwtSecret,
		AllowedOrigins:      origins,
		CloudinaryCloudName: strings.TrimSpace(os.Getenv("CLOUDINARY_CLOUD_NAME")),
		CloudinaryAPIKey:    strings.TrimSpace(os.Getenv("CLOUDINARY_API_KEY")),
		CloudinaryAPISecret: strings.TrimSpace(os.Getenv("CLOUDINARY_API_SECRET")),
		BrevoAPIKey:         strings.TrimSpace(os.Getenv("BREVO_API_KEY")),
		MailSender:          strings.TrimSpace(os.Getenv("MAIL_SENDER")),
		MailSenderName:      mailSenderName,
	}
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
