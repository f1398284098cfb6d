package database

import (
	"fmt"
	"strings"
	"testing"

	"github.com/olls-san/tecopos-helpcenter/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// legacyArticleRow mirrors the article table as the first release created it,
// before the multi-type columns existed.
type legacyArticleRow struct {
	ID               uint   `gorm:"primaryKey"`
	Type             string `gorm:"type:varchar(50);not null;default:error"`
	Title            string `gorm:"type:varchar(255);not null"`
	ShortDescription string `gorm:"type:varchar(255);not null"`
	Category         string `gorm:"type:varchar(100);not null"`
	IsCommon         bool   `gorm:"default:false"`
	ClientMessage    string `gorm:"type:varchar(255);not null"`

	CausesText        string `gorm:"type:text;default:''"`
	QuickStepsText    string `gorm:"type:text;default:''"`
	InternalStepsText string `gorm:"type:text;default:''"`
	ImagesText        string `gorm:"type:text;default:''"`

	VideoURL *string `gorm:"type:varchar(500)"`
}

func (legacyArticleRow) TableName() string {
	return "errors"
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func TestMigrateCreatesTableOnFreshDatabase(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))

	migrator := db.Migrator()
	assert.True(t, migrator.HasTable(&models.ArticleRow{}))
	for _, field := range extraColumns {
		assert.True(t, migrator.HasColumn(&models.ArticleRow{}, field), "missing column for field %s", field)
	}

	// A freshly created table already carries every column.
	assert.Equal(t, 0, EnsureExtraColumns(db))
}

func TestEnsureExtraColumnsBackfillsLegacyTable(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.AutoMigrate(&legacyArticleRow{}))

	added := EnsureExtraColumns(db)
	assert.Equal(t, len(extraColumns), added)

	migrator := db.Migrator()
	for _, field := range extraColumns {
		assert.True(t, migrator.HasColumn(&models.ArticleRow{}, field), "missing column for field %s", field)
	}
}

func TestEnsureExtraColumnsIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.AutoMigrate(&legacyArticleRow{}))

	first := EnsureExtraColumns(db)
	assert.Equal(t, len(extraColumns), first)

	// Second run against the reconciled schema issues no additive statements.
	assert.Equal(t, 0, EnsureExtraColumns(db))
}

func TestEnsureExtraColumnsSkipsWhenTableAbsent(t *testing.T) {
	db := openTestDB(t)
	assert.Equal(t, 0, EnsureExtraColumns(db))
}

func TestLegacyRowsReadableAfterReconciliation(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.AutoMigrate(&legacyArticleRow{}))
	require.NoError(t, db.Create(&legacyArticleRow{
		Type:          "error",
		Title:         "fila antigua",
		Category:      "errores-comunes",
		IsCommon:      true,
		ClientMessage: "mensaje",
	}).Error)

	EnsureExtraColumns(db)

	var row models.ArticleRow
	require.NoError(t, db.First(&row).Error)
	article := row.ToArticle()
	assert.Equal(t, "fila antigua", article.Title)
	// Pre-existing rows fall back to the default navigation section.
	assert.Equal(t, models.CategoryErrors, article.PrimaryCategory)
}
