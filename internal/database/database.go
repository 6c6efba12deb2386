package database

import (
	"fmt"

	"feedlooply-api/internal/config"
	"feedlooply-api/internal/models"
	"feedlooply-api/pkg/logging"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDatabase initializes the local audit-log database. The spreadsheet is
// the primary durable store; this database only keeps a local trail of email
// sends and webinar registrations.
func InitDatabase() error {
	var err error

	if dsn := config.AppConfig.DatabaseURL; dsn != "" {
		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
	} else {
		logging.Infof("DATABASE_URL not set, using SQLite for the audit log")
		DB, err = gorm.Open(sqlite.Open("feedlooply-api.db"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
	}
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if err := DB.AutoMigrate(&models.EmailLog{}, &models.WebinarRegistration{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}

// SaveEmailLog records an email send outcome, best-effort
func SaveEmailLog(entry *models.EmailLog) {
	if DB == nil {
		return
	}
	if err := DB.Create(entry).Error; err != nil {
		logging.Errorf("failed to save email log: %v", err)
	}
}

// SaveWebinarRegistration records a webinar signup, best-effort
func SaveWebinarRegistration(reg *models.WebinarRegistration) {
	if DB == nil {
		return
	}
	if err := DB.Create(reg).Error; err != nil {
		logging.Errorf("failed to save webinar registration: %v", err)
	}
}
