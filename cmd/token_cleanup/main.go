package main

import (
	"context"
	"log"
	"os"
	"time"

	"userhub/internal/database"
	"userhub/internal/repository"
)

// Run periodically (cron) to drop refresh tokens past their expiry. Rotation
// and logout delete rows on the hot path; this sweeps up abandoned sessions.
func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	refreshRepo := repository.NewRefreshTokenRepository(db)

	deleted, err := refreshRepo.DeleteExpired(context.Background(), time.Now())
	if err != nil {
		log.Fatalf("cleanup refresh_tokens failed: %v", err)
	}

	log.Printf("auth cleanup completed: refresh_tokens=%d", deleted)
}
