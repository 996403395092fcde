package main

import (
	"log"

	"jobpilot-backend/shared/config"
	"jobpilot-backend/shared/database"
)

func main() {
	log.Println("🌱 Starting database seeding...")

	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close(db)

	if err := database.SeedDemoUser(db, cfg); err != nil {
		log.Fatalf("Failed to seed demo user: %v", err)
	}

	log.Println("✅ Database seeding completed successfully!")
}
