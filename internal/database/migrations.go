package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/casetrack/case-management-api/internal/models"
)

// Migrate creates the schema and the indexes the query paths depend on.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Case{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return addIndexes(db)
}

// addIndexes adds filtering and uniqueness indexes beyond what AutoMigrate
// derives from struct tags.
func addIndexes(db *gorm.DB) error {
	indexes := []struct {
		name    string
		columns string
	}{
		{"idx_cases_status", "status"},
		{"idx_cases_created_at", "created_at"},
	}

	for _, idx := range indexes {
		if db.Migrator().HasIndex(&models.Case{}, idx.name) {
			continue
		}
		sql := fmt.Sprintf("CREATE INDEX %s ON cases (%s)", idx.name, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	// Per-owner case-insensitive title uniqueness among live rows. The
	// service layer checks this fail-fast as well; the partial index closes
	// the race between two concurrent creates. Partial expression indexes
	// are postgres-only.
	if db.Dialector.Name() == "postgres" {
		sql := `CREATE UNIQUE INDEX IF NOT EXISTS uniq_cases_owner_title
			ON cases (created_by, lower(title)) WHERE deleted = false`
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create unique title index: %w", err)
		}
	}

	return nil
}
