package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"Farolero/models/sqlite"

	sqlitedriver "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectGORM returns a GORM DB instance over the local sqlite save file.
// The path comes from SQLITE_PATH (default farolero.db).
func ConnectGORM() (*gorm.DB, error) {
	path := os.Getenv("SQLITE_PATH")
	if path == "" {
		path = "farolero.db"
	}

	gormConfig := &gorm.Config{}
	if os.Getenv("VERBOSE_SQLITE") == "true" {
		newLogger := logger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Info,
				IgnoreRecordNotFoundError: false,
				Colorful:                  true,
			},
		)
		gormConfig.Logger = newLogger
	}

	db, err := gorm.Open(sqlitedriver.Open(path), gormConfig)
	if err != nil {
		log.Printf("Error opening sqlite database %s: %v", path, err)
		return nil, err
	}

	log.Printf("Successfully opened sqlite database %s", path)
	return db, nil
}

// MigrateDatabase migrates the GORM models to the sqlite database
func MigrateDatabase(db *gorm.DB) error {
	err := db.AutoMigrate(sqlite.SavedRun{})
	if err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	log.Println("sqlite database migrated successfully")

	return nil
}
