package services

import (
	"sort"
	"strings"

	"github.com/olls-san/tecopos-helpcenter/models"
	"github.com/olls-san/tecopos-helpcenter/repository"
)

// ArticleService exposes the read and write paths of the help center. Every
// listing operation loads the full article set and filters it in memory;
// nothing is pushed down to the store.
type ArticleService interface {
	// Home returns the articles for the landing page together with the
	// distinct sorted set of visible categories. Without a category the page
	// shows featured (is_common) articles; a non-empty category replaces that
	// default with an exact category match. A non-empty q further restricts
	// by case-insensitive substring over title, short description and client
	// message.
	Home(q, category string) ([]*models.Article, []string, error)
	// ErrorsList behaves like Home but without the featured default: all
	// articles show unless a category is given.
	ErrorsList(q, category string) ([]*models.Article, []string, error)
	// DocsByType returns the articles whose type equals the given token and
	// whose primary category matches the token's navigation section. Unknown
	// tokens yield an empty result, not an error.
	DocsByType(docType string) ([]*models.Article, error)
	// CategoryCounts returns article counts grouped by visible category,
	// sorted by category name ascending.
	CategoryCounts() ([]models.CategoryCount, error)
	// Detail returns the article with the given id, or (nil, nil) if absent.
	Detail(id uint) (*models.Article, error)
	// AdminList returns every article, newest first, for the admin panel.
	AdminList() ([]*models.Article, error)
	Create(draft *models.ArticleDraft) (*models.Article, error)
	Delete(id uint) error
}

type articleService struct {
	repo repository.ArticleRepository
}

// NewArticleService creates a new instance of ArticleService.
func NewArticleService(repo repository.ArticleRepository) ArticleService {
	return &articleService{repo: repo}
}

func (s *articleService) Home(q, category string) ([]*models.Article, []string, error) {
	all, err := s.repo.ListAll()
	if err != nil {
		return nil, nil, err
	}

	var filtered []*models.Article
	if category != "" {
		filtered = filterByCategory(all, category)
	} else {
		// Default view: only featured articles.
		filtered = filterCommon(all)
	}
	filtered = filterByQuery(filtered, q)

	return filtered, visibleCategories(all), nil
}

func (s *articleService) ErrorsList(q, category string) ([]*models.Article, []string, error) {
	all, err := s.repo.ListAll()
	if err != nil {
		return nil, nil, err
	}

	filtered := all
	if category != "" {
		filtered = filterByCategory(filtered, category)
	}
	filtered = filterByQuery(filtered, q)

	return filtered, visibleCategories(all), nil
}

func (s *articleService) DocsByType(docType string) ([]*models.Article, error) {
	all, err := s.repo.ListAll()
	if err != nil {
		return nil, err
	}

	expected := models.PrimaryCategoryFor(docType)
	filtered := []*models.Article{}
	for _, item := range all {
		if item.Type == docType && item.PrimaryCategory == expected {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

func (s *articleService) CategoryCounts() ([]models.CategoryCount, error) {
	all, err := s.repo.ListAll()
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	for _, item := range all {
		counts[item.Category]++
	}

	result := make([]models.CategoryCount, 0, len(counts))
	for name, count := range counts {
		result = append(result, models.CategoryCount{Name: name, Count: count})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (s *articleService) Detail(id uint) (*models.Article, error) {
	return s.repo.GetByID(id)
}

func (s *articleService) AdminList() ([]*models.Article, error) {
	return s.repo.ListAll()
}

func (s *articleService) Create(draft *models.ArticleDraft) (*models.Article, error) {
	return s.repo.Create(draft)
}

func (s *articleService) Delete(id uint) error {
	return s.repo.Delete(id)
}

func filterCommon(items []*models.Article) []*models.Article {
	filtered := []*models.Article{}
	for _, item := range items {
		if item.IsCommon {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func filterByCategory(items []*models.Article, category string) []*models.Article {
	filtered := []*models.Article{}
	for _, item := range items {
		if item.Category == category {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// filterByQuery restricts to articles whose title, short description or
// client message contains q as a case-insensitive substring. An empty q
// returns the input unchanged.
func filterByQuery(items []*models.Article, q string) []*models.Article {
	if q == "" {
		return items
	}
	qLower := strings.ToLower(q)

	filtered := []*models.Article{}
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Title), qLower) ||
			strings.Contains(strings.ToLower(item.ShortDescription), qLower) ||
			strings.Contains(strings.ToLower(item.ClientMessage), qLower) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// visibleCategories returns the distinct set of visible category values
// across all articles, sorted ascending, for the navigation section.
func visibleCategories(items []*models.Article) []string {
	seen := map[string]bool{}
	categories := []string{}
	for _, item := range items {
		if !seen[item.Category] {
			seen[item.Category] = true
			categories = append(categories, item.Category)
		}
	}
	sort.Strings(categories)
	return categories
}
