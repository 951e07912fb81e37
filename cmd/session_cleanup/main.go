package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"festivalapi/internal/database"
	"festivalapi/internal/repository"
)

func main() {
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	sessions := repository.NewSessionRepository(db)

	deleted, err := sessions.DeleteExpired(context.Background(), time.Now())
	if err != nil {
		log.Fatalf("session cleanup failed: %v", err)
	}

	log.Printf("session cleanup completed: deleted=%d", deleted)
}
