package main

import (
	"log"
	"net/http"

	"github.com/folioapi/internal/asset"
	"github.com/folioapi/internal/config"
	"github.com/folioapi/internal/db"
	"github.com/folioapi/internal/handler"
	"github.com/folioapi/internal/mailer"
	"github.com/folioapi/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Missing .env is fine in production; the environment is set there.
	_ = godotenv.Load()

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("init database: %v", err)
	}

	store := asset.NewCloudinary(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	mail := mailer.NewBrevo(cfg.BrevoAPIKey, cfg.MailSender, cfg.MailSenderName)

	api := handler.NewAPI(db.DB, store, mail, handler.Options{
		JWTSecret:     cfg.JWTSecret,
		OperatorEmail: cfg.MailSender,
		SenderName:    cfg.MailSenderName,
	})

	engine := router.Setup(api)

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	log.Printf("listening on %s", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, corsMiddleware.Handler(engine)); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
