package database

import (
	"fmt"
	"log"

	"github.com/olls-san/tecopos-helpcenter/models"

	"gorm.io/gorm"
)

// extraColumns are the struct fields added to the article table after the
// initial deployment. Databases created before these columns existed get them
// backfilled additively at startup; the gorm field tags carry the column type
// and default.
var extraColumns = []string{
	"PrimaryCategory",
	"Description",
	"StepsText",
	"AnswerText",
	"TagsText",
}

// Migrate ensures the article table exists and carries the full column set.
// Table creation uses AutoMigrate (which builds the complete current schema),
// so EnsureExtraColumns only ever has work to do on tables created by an
// older release.
func Migrate(db *gorm.DB) error {
	log.Println("INFO: [Database] Running database migrations...")
	if !db.Migrator().HasTable(&models.ArticleRow{}) {
		if err := db.AutoMigrate(&models.ArticleRow{}); err != nil {
			return fmt.Errorf("failed to auto-migrate database: %w", err)
		}
		log.Println("INFO: [Database] Article table created.")
	}

	added := EnsureExtraColumns(db)
	if added > 0 {
		log.Printf("INFO: [Database] Added %d missing column(s) to the article table.", added)
	}
	log.Println("INFO: [Database] Database migration completed.")
	return nil
}

// EnsureExtraColumns adds any missing extended column to the article table
// and returns how many were added. It is idempotent: a schema that already
// has every column results in zero ALTER statements. Inspection problems are
// logged and skipped rather than failing startup; reconciliation is
// best-effort.
func EnsureExtraColumns(db *gorm.DB) int {
	migrator := db.Migrator()
	if !migrator.HasTable(&models.ArticleRow{}) {
		// Nothing to reconcile against; leave it to table creation.
		return 0
	}

	added := 0
	for _, field := range extraColumns {
		if migrator.HasColumn(&models.ArticleRow{}, field) {
			continue
		}
		if err := migrator.AddColumn(&models.ArticleRow{}, field); err != nil {
			log.Printf("WARN: [Database] Failed to add column for field '%s': %v. Continuing startup.", field, err)
			continue
		}
		log.Printf("INFO: [Database] Added missing column for field '%s'.", field)
		added++
	}
	return added
}
