package repository

import (
	"errors"
	"fmt"
	"log"

	"github.com/olls-san/tecopos-helpcenter/models"

	"gorm.io/gorm"
)

// ArticleRepository defines the interface for interacting with help-center
// article data. There is deliberately no update operation: articles are
// created, read and hard-deleted only.
type ArticleRepository interface {
	ListAll() ([]*models.Article, error)
	GetByID(id uint) (*models.Article, error)
	Create(draft *models.ArticleDraft) (*models.Article, error)
	Delete(id uint) error
}

type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new instance of ArticleRepository.
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

// ListAll retrieves every article ordered by id descending (newest first).
func (r *articleRepository) ListAll() ([]*models.Article, error) {
	var rows []models.ArticleRow
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Order("id desc").Find(&rows).Error
	})
	if err != nil {
		log.Printf("ERROR: [ArticleRepository] Failed to list articles: %v", err)
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}

	articles := make([]*models.Article, 0, len(rows))
	for i := range rows {
		articles = append(articles, rows[i].ToArticle())
	}
	return articles, nil
}

// GetByID retrieves a single article by its id. A missing id is not an
// error: it returns (nil, nil).
func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var row models.ArticleRow
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.First(&row, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("INFO: [ArticleRepository] Article with ID %d not found.", id)
			return nil, nil // Not found
		}
		log.Printf("ERROR: [ArticleRepository] Failed to retrieve article ID %d: %v", id, err)
		return nil, fmt.Errorf("failed to retrieve article ID %d: %w", id, err)
	}
	return row.ToArticle(), nil
}

// Create inserts a new article from a draft and returns the materialized
// record including the store-assigned id.
func (r *articleRepository) Create(draft *models.ArticleDraft) (*models.Article, error) {
	if draft == nil {
		log.Printf("ERROR: [ArticleRepository] Create: draft cannot be nil")
		return nil, errors.New("draft cannot be nil")
	}

	row := draft.ToRow()
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(row).Error
	})
	if err != nil {
		log.Printf("ERROR: [ArticleRepository] Failed to create article '%s': %v", draft.Title, err)
		return nil, fmt.Errorf("failed to create article '%s': %w", draft.Title, err)
	}

	log.Printf("INFO: [ArticleRepository] Successfully created article ID %d ('%s').", row.ID, row.Title)
	return row.ToArticle(), nil
}

// Delete removes the article with the given id. Deleting a nonexistent id is
// a no-op, not an error.
func (r *articleRepository) Delete(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&models.ArticleRow{}, id).Error
	})
	if err != nil {
		log.Printf("ERROR: [ArticleRepository] Failed to delete article ID %d: %v", id, err)
		return fmt.Errorf("failed to delete article ID %d: %w", id, err)
	}
	log.Printf("INFO: [ArticleRepository] Deleted article ID %d (no-op if it did not exist).", id)
	return nil
}
