// Command initadmin provisions the single admin account. Run it once
// after deployment with ADMIN_EMAIL and ADMIN_PASSWORD set; an existing
// account with the same email is left untouched.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/folioapi/internal/config"
	"github.com/folioapi/internal/db"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("init database: %v", err)
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	name := os.Getenv("ADMIN_NAME")
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	if err := db.EnsureAdmin(email, password, name); err != nil {
		log.Fatalf("create admin: %v", err)
	}

	fmt.Printf("admin account ready for %s\n", email)
}
