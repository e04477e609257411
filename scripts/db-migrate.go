package main

import (
	"log"

	"github.com/tradepilot-api/config"
	"github.com/tradepilot-api/database"
)

func main() {
	log.Println("Starting database migration...")

	config.LoadEnv()

	dbURL := config.GetEnv("DATABASE_URL", "")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	log.Println("Database migration completed successfully!")
}
