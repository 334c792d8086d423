package db

import (
	"fmt"

	"github.com/diewo77/go-notes/internal/models"
	"gorm.io/gorm"
)

// Migrate applies GORM auto-migrations for every model.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Permission{},
		&models.Role{},
		&models.User{},
		&models.Note{},
		&models.Contact{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
