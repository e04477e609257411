package database

import (
	"fmt"
	"log"

	"github.com/tradepilot-api/models"
	"gorm.io/gorm"
)

// Models lists every table in dependency order
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Project{},
		&models.Bid{},
		&models.Deliverable{},
	}
}

// Migrate migrates the database schema
func Migrate(db *gorm.DB) error {
	log.Println("Migrating database schema...")
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Println("✅ Database schema migrated")
	return nil
}
