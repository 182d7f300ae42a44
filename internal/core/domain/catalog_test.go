package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/domain"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func sampleRecords() []domain.PropertyRecord {
	return []domain.PropertyRecord{
		{ID: "1", Type: "House", Price: 100, DateAdded: day("2024-01-01"), Name: "Hillside House", LocationCity: "Kochi"},
		{ID: "2", Type: "Plot", Price: 50, DateAdded: day("2024-06-01"), Name: "Riverside Plot", LocationCity: "Thrissur"},
	}
}

func visibleIDs(c *domain.CatalogState) []string {
	ids := make([]string, 0, len(c.GetVisible()))
	for _, record := range c.GetVisible() {
		ids = append(ids, record.ID)
	}
	return ids
}

func TestNewCatalogStateDefaults(t *testing.T) {
	t.Parallel()

	catalog := domain.NewCatalogState(sampleRecords())

	assert.Equal(t, domain.CategoryAll, catalog.Category())
	assert.Equal(t, domain.SortNewest, catalog.Sort())
	// newest first
	assert.Equal(t, []string{"2", "1"}, visibleIDs(catalog))
}

func TestSetSortOrders(t *testing.T) {
	t.Parallel()

	catalog := domain.NewCatalogState(sampleRecords())

	catalog.SetSort(domain.SortPriceLow)
	assert.Equal(t, []string{"2", "1"}, visibleIDs(catalog))

	catalog.SetSort(domain.SortPriceHigh)
	assert.Equal(t, []string{"1", "2"}, visibleIDs(catalog))

	catalog.SetSort(domain.SortOldest)
	assert.Equal(t, []string{"1", "2"}, visibleIDs(catalog))

	catalog.SetSort(domain.SortNewest)
	assert.Equal(t, []string{"2", "1"}, visibleIDs(catalog))
}

func TestSetSortUnknownFallsBackToNewest(t *testing.T) {
	t.Parallel()

	catalog := domain.NewCatalogState(sampleRecords())
	catalog.SetSort("cheapest-first")

	assert.Equal(t, domain.SortNewest, catalog.Sort())
	assert.Equal(t, []string{"2", "1"}, visibleIDs(catalog))
}

func TestSetCategoryFilters(t *testing.T) {
	t.Parallel()

	catalog := domain.NewCatalogState(sampleRecords())

	catalog.SetCategory("house")
	require.Equal(t, []string{"1"}, visibleIDs(catalog))

	catalog.SetCategory(domain.CategoryAll)
	assert.Equal(t, []string{"2", "1"}, visibleIDs(catalog))

	catalog.SetCategory("")
	assert.Equal(t, domain.CategoryAll, catalog.Category())
}

func TestSetCategoryUnknownYieldsEmpty(t *testing.T) {
	t.Parallel()

	catalog := domain.NewCatalogState(sampleRecords())
	catalog.SetCategory("castle")

	assert.Empty(t, catalog.GetVisible())
}

func TestFilterThenSortComposes(t *testing.T) {
	t.Parallel()

	records := append(sampleRecords(),
		domain.PropertyRecord{ID: "3", Type: "House", Price: 70, DateAdded: day("2024-03-01")},
	)
	catalog := domain.NewCatalogState(records)

	catalog.SetCategory("house")
	catalog.SetSort(domain.SortPriceLow)
	assert.Equal(t, []string{"3", "1"}, visibleIDs(catalog))

	// порядок мутаций не влияет на итоговый видимый список
	other := domain.NewCatalogState(records)
	other.SetSort(domain.SortPriceLow)
	other.SetCategory("house")
	assert.Equal(t, visibleIDs(catalog), visibleIDs(other))
}

func TestSetSortIdempotent(t *testing.T) {
	t.Parallel()

	catalog := domain.NewCatalogState(sampleRecords())
	catalog.SetSort(domain.SortPriceLow)
	first := visibleIDs(catalog)

	catalog.SetSort(domain.SortPriceLow)
	assert.Equal(t, first, visibleIDs(catalog))
}

func TestStableSortKeepsLoadOrderOnTies(t *testing.T) {
	t.Parallel()

	records := []domain.PropertyRecord{
		{ID: "a", Type: "House", Price: 100, DateAdded: day("2024-02-01")},
		{ID: "b", Type: "House", Price: 100, DateAdded: day("2024-02-01")},
		{ID: "c", Type: "House", Price: 100, DateAdded: day("2024-02-01")},
	}
	catalog := domain.NewCatalogState(records)

	catalog.SetSort(domain.SortPriceLow)
	assert.Equal(t, []string{"a", "b", "c"}, visibleIDs(catalog))

	catalog.SetSort(domain.SortPriceHigh)
	assert.Equal(t, []string{"a", "b", "c"}, visibleIDs(catalog))
}

func TestTypeSlug(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "house", domain.PropertyRecord{Type: "House"}.TypeSlug())
	assert.Equal(t, "house-plot", domain.PropertyRecord{Type: "House & Plot"}.TypeSlug())
	assert.Equal(t, "plot", domain.PropertyRecord{Type: "Plot"}.TypeSlug())
}
