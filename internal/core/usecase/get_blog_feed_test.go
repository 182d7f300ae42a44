package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/domain"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/usecase"
)

func blogFixture() *fakeContentSource {
	return &fakeContentSource{
		blogIDs: []string{"1", "2"},
		blogs: map[string]domain.BlogArticle{
			"1": {ID: "1", Tag: "Market", PreviewTitle: "Prices in Kochi", PreviewImage: "images/b1.jpg"},
			"2": {ID: "2", Tag: "Guide", PreviewTitle: "Buying a Plot", PreviewImage: "images/b2.jpg"},
		},
		failOn: map[string]error{},
	}
}

func TestGetBlogFeed(t *testing.T) {
	t.Parallel()

	uc := usecase.NewGetBlogFeedUseCase(blogFixture())

	previews, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, previews, 2)
	assert.Equal(t, "Prices in Kochi", previews[0].Title)
	assert.Equal(t, "blog.html#1", previews[0].ArticleLink)
	assert.Equal(t, "2", previews[1].ID)
}

func TestGetBlogFeedAllOrNothing(t *testing.T) {
	t.Parallel()

	source := blogFixture()
	source.failOn["2"] = fmt.Errorf("fetch blog 2: %w", domain.ErrParse)
	uc := usecase.NewGetBlogFeedUseCase(source)

	previews, err := uc.Execute(context.Background())
	assert.Nil(t, previews)
	assert.ErrorIs(t, err, domain.ErrParse)
}

func TestGetBlogArticle(t *testing.T) {
	t.Parallel()

	uc := usecase.NewGetBlogArticleUseCase(blogFixture())

	article, err := uc.Execute(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Market", article.Tag)

	_, err = uc.Execute(context.Background(), "99")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetPageContent(t *testing.T) {
	t.Parallel()

	source := blogFixture()
	source.pages = map[string]domain.PageContent{
		"index": {"hero_title": "Find your home", "hero_subtitle": ""},
	}
	uc := usecase.NewGetPageContentUseCase(source)

	content, err := uc.Execute(context.Background(), "index")
	require.NoError(t, err)
	assert.Equal(t, "Find your home", content.Value("hero_title"))
	// отсутствующий ключ резолвится в пустую строку
	assert.Equal(t, "", content.Value("footer_note"))

	_, err = uc.Execute(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
