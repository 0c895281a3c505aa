package database

import (
	"fmt"

	"korus_backend/internal/logger"
	"korus_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate выполняет миграцию всех моделей. Порядок важен:
// компании создаются раньше зависимых таблиц.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Company{},
		&models.Job{},
		&models.Review{},
		&models.EmployeeToken{},
		&models.SupportOrganization{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}

	logger.Info("AutoMigrate completed")
	return nil
}
