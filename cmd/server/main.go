package main

import (
	"log"

	"jobpilot-backend/server"
	"jobpilot-backend/server/services"
	"jobpilot-backend/shared/config"
	"jobpilot-backend/shared/database"
	"jobpilot-backend/shared/session"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close(db)

	sessions, err := session.NewRedisManager(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize session store: %v", err)
	}
	defer sessions.Close()

	uploads, err := services.NewUploadService(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize upload relay: %v", err)
	}

	credentials := database.NewCredentialStore(db)

	router := server.NewRouter(cfg, server.Dependencies{
		Credentials: credentials,
		Onboarding:  database.NewOnboardingStore(db),
		Uploads:     uploads,
		Sessions:    sessions,
		Users:       credentials,
	})

	log.Printf("Onboarding service starting on port %s...", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
