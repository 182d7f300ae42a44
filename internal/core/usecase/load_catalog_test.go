package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/domain"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/usecase"
)

// fakeContentSource возвращает заранее подготовленные документы и
// падает на идентификаторах из failOn.
type fakeContentSource struct {
	propertyIDs []string
	properties  map[string]domain.PropertyRecord
	blogIDs     []string
	blogs       map[string]domain.BlogArticle
	pages       map[string]domain.PageContent
	failOn      map[string]error
	indexErr    error
}

func (f *fakeContentSource) FetchPropertyIndex(ctx context.Context) ([]string, error) {
	if f.indexErr != nil {
		return nil, f.indexErr
	}
	return f.propertyIDs, nil
}

func (f *fakeContentSource) FetchProperty(ctx context.Context, propertyID string) (*domain.PropertyRecord, error) {
	if err, ok := f.failOn[propertyID]; ok {
		return nil, err
	}
	record, ok := f.properties[propertyID]
	if !ok {
		return nil, fmt.Errorf("property %s: %w", propertyID, domain.ErrNotFound)
	}
	return &record, nil
}

func (f *fakeContentSource) FetchBlogIndex(ctx context.Context) ([]string, error) {
	if f.indexErr != nil {
		return nil, f.indexErr
	}
	return f.blogIDs, nil
}

func (f *fakeContentSource) FetchBlogArticle(ctx context.Context, blogID string) (*domain.BlogArticle, error) {
	if err, ok := f.failOn[blogID]; ok {
		return nil, err
	}
	article, ok := f.blogs[blogID]
	if !ok {
		return nil, fmt.Errorf("blog %s: %w", blogID, domain.ErrNotFound)
	}
	return &article, nil
}

func (f *fakeContentSource) FetchPageContent(ctx context.Context, pageName string) (domain.PageContent, error) {
	content, ok := f.pages[pageName]
	if !ok {
		return nil, fmt.Errorf("page %s: %w", pageName, domain.ErrNotFound)
	}
	return content, nil
}

func catalogFixture() *fakeContentSource {
	return &fakeContentSource{
		propertyIDs: []string{"1", "2", "3"},
		properties: map[string]domain.PropertyRecord{
			"1": {ID: "1", Type: "House", Price: 100, DateAdded: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
			"2": {ID: "2", Type: "Plot", Price: 50, DateAdded: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
			"3": {ID: "3", Type: "House", Price: 70, DateAdded: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		},
		failOn: map[string]error{},
	}
}

func TestCatalogLoaderPreservesIndexOrder(t *testing.T) {
	t.Parallel()

	loader := usecase.NewCatalogLoader(catalogFixture())

	records, err := loader.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "1", records[0].ID)
	assert.Equal(t, "2", records[1].ID)
	assert.Equal(t, "3", records[2].ID)
}

func TestCatalogLoaderAllOrNothing(t *testing.T) {
	t.Parallel()

	source := catalogFixture()
	source.failOn["2"] = fmt.Errorf("fetch property 2: %w", domain.ErrNetwork)
	loader := usecase.NewCatalogLoader(source)

	records, err := loader.LoadAll(context.Background())
	require.Error(t, err)
	assert.Nil(t, records)
	assert.ErrorIs(t, err, domain.ErrNetwork)
}

func TestCatalogLoaderIndexError(t *testing.T) {
	t.Parallel()

	source := catalogFixture()
	source.indexErr = fmt.Errorf("fetch index: %w", domain.ErrParse)
	loader := usecase.NewCatalogLoader(source)

	_, err := loader.LoadAll(context.Background())
	assert.ErrorIs(t, err, domain.ErrParse)
}

func TestCatalogLoaderEmptyIndex(t *testing.T) {
	t.Parallel()

	source := &fakeContentSource{failOn: map[string]error{}}
	loader := usecase.NewCatalogLoader(source)

	records, err := loader.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}
