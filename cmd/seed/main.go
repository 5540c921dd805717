package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"infracore/internal/config"
	"infracore/internal/db"
	"infracore/internal/model"
	"infracore/internal/repository"
)

const bcryptCost = 10

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Admin{}, &model.NotificationSettings{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	adminRepo := repository.NewAdminRepository(gormDB)
	settingsRepo := repository.NewSettingsRepository(gormDB)

	// SEED_ADMINS is a comma-separated list of email:password pairs.
	for _, pair := range strings.Split(os.Getenv("SEED_ADMINS"), ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		email, password, ok := strings.Cut(pair, ":")
		if !ok {
			log.Printf("Skipping malformed admin entry %q", pair)
			continue
		}

		if _, err := adminRepo.FindByEmail(ctx, email); err == nil {
			log.Printf("Admin %s already exists, skipping", email)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
		if err != nil {
			log.Fatalf("Failed to hash password for %s: %v", email, err)
		}
		admin := &model.Admin{
			ID:           uuid.New(),
			Email:        email,
			PasswordHash: string(hash),
		}
		if err := adminRepo.Create(ctx, admin); err != nil {
			log.Fatalf("Failed to insert admin %s: %v", email, err)
		}
		log.Printf("Added admin: %s", email)
	}

	// Ensure the single notification settings row exists.
	if _, err := settingsRepo.Get(ctx); err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to read notification settings: %v", err)
		}
		settings := &model.NotificationSettings{
			ID:                   uuid.New(),
			EmailNotifications:   true,
			DesktopNotifications: true,
			GetInTouch:           true,
			GetQuote:             true,
		}
		if err := settingsRepo.Create(ctx, settings); err != nil {
			log.Fatalf("Failed to insert notification settings: %v", err)
		}
		log.Println("Created default notification settings row")
	} else {
		log.Println("Notification settings row already present")
	}

	log.Println("Seed complete")
}
