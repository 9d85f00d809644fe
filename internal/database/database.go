package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/casetrack/case-management-api/internal/config"
)

var DB *gorm.DB

// Connect opens the database selected by DB_DRIVER and keeps the handle in
// the package variable used by GetDB.
func Connect(cfg *config.Config) error {
	var dialector gorm.Dialector
	switch cfg.DB.Driver {
	case "mysql":
		dialector = mysql.Open(cfg.DB.DSN())
	default:
		dialector = postgres.Open(cfg.DB.DSN())
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	return nil
}

func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (used for testing)
func SetDB(db *gorm.DB) {
	DB = db
}
