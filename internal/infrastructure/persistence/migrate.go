// Package persistence holds the gorm models and schema management for the
// volunteer store.
package persistence

import (
	"fmt"

	"gorm.io/gorm"

	"volunteerhub/internal/infrastructure/persistence/models"
)

// AutoMigrate creates or updates the schema for all persistence models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.UserModel{},
		&models.EventModel{},
		&models.EventVolunteerModel{},
		&models.AnnouncementModel{},
		&models.AnnouncementRecipientModel{},
		&models.AnnouncementReadModel{},
	); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	return nil
}
