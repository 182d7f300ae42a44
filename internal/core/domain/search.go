package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MaxSuggestions - максимум подсказок в выдаче поиска.
const MaxSuggestions = 5

var titleCaser = cases.Title(language.English)

// Suggestion - одна поисковая подсказка для отображения.
type Suggestion struct {
	ID       string
	Title    string
	Location string
}

// SearchResult - результат поиска по каталогу. NoResults взводится только
// когда непустой запрос не нашел совпадений: пустой запрос и отсутствие
// результатов - разные наблюдаемые состояния.
type SearchResult struct {
	Suggestions []Suggestion
	NoResults   bool
}

// SearchCatalog ищет подстроку запроса в городе или названии объекта
// (без учета регистра). Возвращаются первые MaxSuggestions совпадений
// в порядке загрузки: усечение применяется после фильтрации, не до нее.
// Релевантность не считается, токенизации нет.
func SearchCatalog(records []PropertyRecord, query string) SearchResult {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return SearchResult{}
	}

	var matched []Suggestion
	for _, record := range records {
		location := strings.ToLower(record.LocationCity)
		title := strings.ToLower(record.Name)
		if !strings.Contains(location, term) && !strings.Contains(title, term) {
			continue
		}
		matched = append(matched, Suggestion{
			ID:       record.ID,
			Title:    titleCaser.String(title),
			Location: titleCaser.String(location),
		})
	}

	if len(matched) == 0 {
		return SearchResult{NoResults: true}
	}
	if len(matched) > MaxSuggestions {
		matched = matched[:MaxSuggestions]
	}
	return SearchResult{Suggestions: matched}
}
