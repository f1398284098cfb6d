package services

import (
	"testing"

	"github.com/olls-san/tecopos-helpcenter/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSeedInitialDataInsertsTwoArticlesOnEmptyTable(t *testing.T) {
	repo := new(MockArticleRepository)
	repo.On("ListAll").Return([]*models.Article{}, nil)
	repo.On("Create", mock.AnythingOfType("*models.ArticleDraft")).
		Return(article(1, models.ArticleDraft{Type: models.DocTypeError, Title: "seed"}), nil)

	err := SeedInitialData(repo)
	assert.NoError(t, err)
	repo.AssertNumberOfCalls(t, "Create", 2)
}

func TestSeedInitialDataSkipsWhenRowsExist(t *testing.T) {
	repo := new(MockArticleRepository)
	repo.On("ListAll").Return(fixtureArticles(), nil)

	err := SeedInitialData(repo)
	assert.NoError(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestSeedArticlesAreFeaturedErrors(t *testing.T) {
	repo := new(MockArticleRepository)
	repo.On("ListAll").Return([]*models.Article{}, nil)

	var drafts []*models.ArticleDraft
	repo.On("Create", mock.AnythingOfType("*models.ArticleDraft")).
		Run(func(args mock.Arguments) {
			drafts = append(drafts, args.Get(0).(*models.ArticleDraft))
		}).
		Return(article(1, models.ArticleDraft{Type: models.DocTypeError, Title: "seed"}), nil)

	assert.NoError(t, SeedInitialData(repo))
	if assert.Len(t, drafts, 2) {
		for _, draft := range drafts {
			assert.Equal(t, models.DocTypeError, draft.Type)
			assert.Equal(t, models.CategoryErrors, draft.PrimaryCategory)
			assert.True(t, draft.IsCommon)
			assert.NotEmpty(t, draft.Causes)
		}
	}
}
