package domain_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/domain"
)

func searchRecords() []domain.PropertyRecord {
	return []domain.PropertyRecord{
		{ID: "1", Name: "Hillside House", LocationCity: "Kochi"},
		{ID: "2", Name: "Riverside Plot", LocationCity: "Thrissur"},
		{ID: "3", Name: "Kochi Waterfront Villa", LocationCity: "Ernakulam"},
	}
}

func TestSearchCatalogEmptyQuery(t *testing.T) {
	t.Parallel()

	result := domain.SearchCatalog(searchRecords(), "")
	assert.Empty(t, result.Suggestions)
	assert.False(t, result.NoResults)

	result = domain.SearchCatalog(searchRecords(), "   ")
	assert.Empty(t, result.Suggestions)
	assert.False(t, result.NoResults)
}

func TestSearchCatalogMatchesCityOrName(t *testing.T) {
	t.Parallel()

	result := domain.SearchCatalog(searchRecords(), "kochi")
	require.Len(t, result.Suggestions, 2)
	assert.Equal(t, "1", result.Suggestions[0].ID)
	assert.Equal(t, "3", result.Suggestions[1].ID)
	assert.False(t, result.NoResults)
}

func TestSearchCatalogCaseInsensitive(t *testing.T) {
	t.Parallel()

	result := domain.SearchCatalog(searchRecords(), "  RIVERSIDE ")
	require.Len(t, result.Suggestions, 1)
	assert.Equal(t, "2", result.Suggestions[0].ID)
	assert.Equal(t, "Riverside Plot", result.Suggestions[0].Title)
	assert.Equal(t, "Thrissur", result.Suggestions[0].Location)
}

func TestSearchCatalogNoResults(t *testing.T) {
	t.Parallel()

	result := domain.SearchCatalog(searchRecords(), "bungalow")
	assert.Empty(t, result.Suggestions)
	assert.True(t, result.NoResults)
}

func TestSearchCatalogTruncatesAfterFiltering(t *testing.T) {
	t.Parallel()

	var records []domain.PropertyRecord
	for i := 0; i < 10; i++ {
		records = append(records, domain.PropertyRecord{
			ID:           fmt.Sprintf("%d", i),
			Name:         fmt.Sprintf("Beach House %d", i),
			LocationCity: "Alappuzha",
		})
	}
	// несовпадающая запись в начале не занимает слот в выдаче
	records = append([]domain.PropertyRecord{{ID: "x", Name: "Office", LocationCity: "Kollam"}}, records...)

	result := domain.SearchCatalog(records, "beach")
	require.Len(t, result.Suggestions, domain.MaxSuggestions)
	for i, suggestion := range result.Suggestions {
		assert.Equal(t, fmt.Sprintf("%d", i), suggestion.ID)
	}
	assert.False(t, result.NoResults)
}
