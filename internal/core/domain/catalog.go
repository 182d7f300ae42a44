package domain

import "sort"

// Ключи сортировки каталога.
const (
	SortNewest    = "newest"
	SortOldest    = "oldest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
)

// CategoryAll - значение фильтра, пропускающее все объекты.
const CategoryAll = "all"

// CatalogState хранит полный загруженный список объектов и текущие
// параметры отображения. Видимый список всегда равен
// sort(filter(all, category), sortKey) и пересчитывается целиком
// при каждой мутации - инкрементальных обновлений нет.
type CatalogState struct {
	all      []PropertyRecord
	category string
	sortKey  string
	visible  []PropertyRecord
}

// NewCatalogState создает состояние каталога поверх загруженного списка.
// Порядок records (порядок индексного документа) считается исходным.
func NewCatalogState(records []PropertyRecord) *CatalogState {
	c := &CatalogState{
		all:      records,
		category: CategoryAll,
		sortKey:  SortNewest,
	}
	c.recompute()
	return c
}

// SetCategory заменяет текущий фильтр категории и пересчитывает видимый список.
// Принимается "all" или любой slug; значение не валидируется по справочнику -
// несуществующая категория дает пустой результат, а не ошибку.
func (c *CatalogState) SetCategory(category string) {
	if category == "" {
		category = CategoryAll
	}
	c.category = category
	c.recompute()
}

// SetSort заменяет ключ сортировки и пересчитывает видимый список.
// Неизвестный ключ трактуется как SortNewest.
func (c *CatalogState) SetSort(sortKey string) {
	switch sortKey {
	case SortNewest, SortOldest, SortPriceLow, SortPriceHigh:
		c.sortKey = sortKey
	default:
		c.sortKey = SortNewest
	}
	c.recompute()
}

// GetVisible возвращает текущий видимый список. Чистое чтение.
func (c *CatalogState) GetVisible() []PropertyRecord {
	return c.visible
}

// Category возвращает текущий фильтр категории.
func (c *CatalogState) Category() string {
	return c.category
}

// Sort возвращает текущий ключ сортировки.
func (c *CatalogState) Sort() string {
	return c.sortKey
}

func (c *CatalogState) recompute() {
	filtered := make([]PropertyRecord, 0, len(c.all))
	for _, record := range c.all {
		if c.category == CategoryAll || record.TypeSlug() == c.category {
			filtered = append(filtered, record)
		}
	}

	// Стабильная сортировка: при равных ключах сохраняется исходный
	// порядок индексного документа, результат детерминирован.
	switch c.sortKey {
	case SortOldest:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].DateAdded.Before(filtered[j].DateAdded)
		})
	case SortPriceLow:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price > filtered[j].Price
		})
	default: // SortNewest
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].DateAdded.After(filtered[j].DateAdded)
		})
	}

	c.visible = filtered
}
