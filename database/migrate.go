package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/config"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/models"
)

var gormDB *gorm.DB

// ConnectGorm opens the GORM connection configured in config.yaml.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate migrates every model.
func AutoMigrate() error {
	db, err := ConnectGorm()
	if err != nil {
		return err
	}
	return Migrate(db)
}

// Migrate runs schema migration against the given connection.
func Migrate(db *gorm.DB) error {
	log.Println("Running database migrations...")
	return db.AutoMigrate(
		&models.User{},
		&models.Talent{},
		&models.Client{},
		&models.Request{},
		&models.Payment{},
		&models.Ad{},
		&models.Contact{},
	)
}
