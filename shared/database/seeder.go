package database

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"jobpilot-backend/shared/config"
)

// SeedDemoUser creates the configured demo user if it does not already
// exist. Used by cmd/seed for local development.
func SeedDemoUser(db *gorm.DB, cfg *config.Config) error {
	store := NewCredentialStore(db)

	id, err := store.Register(context.Background(), RegisterInput{
		FullName: "Demo User",
		Mobile:   "5550000000",
		OrgEmail: cfg.SeedUserEmail,
		Gender:   "other",
		Password: cfg.SeedUserPassword,
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateUser) {
			log.Printf("✅ Demo user already exists: %s", cfg.SeedUserEmail)
			return nil
		}
		return err
	}

	log.Printf("✅ Demo user created: %s (%s)", cfg.SeedUserEmail, id)
	return nil
}
