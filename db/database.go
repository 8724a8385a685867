package db

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the shared handle; Initialize must run before any query.
var DB *gorm.DB

// Initialize opens the sqlite database at dbPath. WAL journaling keeps
// document-generation writes from blocking directory reads, and the busy
// timeout covers the brief lock contention WAL still allows on checkpoints.
func Initialize(dbPath string, environment string) error {
	logLevel := logger.Info
	if environment == "production" {
		logLevel = logger.Warn
	}

	dsn := dbPath + "?_journal_mode=WAL&_busy_timeout=5000"

	var err error
	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return fmt.Errorf("failed to open database at %s: %w", dbPath, err)
	}

	log.Printf("Database opened at %s (WAL mode)", dbPath)
	return nil
}

// AutoMigrate applies the schema for the given models
func AutoMigrate(models ...interface{}) error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}

	if err := DB.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	log.Println("Schema migrations applied")
	return nil
}

// Close releases the underlying connection pool
func Close() error {
	if DB == nil {
		return nil
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to access underlying connection: %w", err)
	}

	return sqlDB.Close()
}
