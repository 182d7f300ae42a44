package port

import (
	"context"

	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/domain"
)

// ContentSourcePort - источник контентных JSON-документов сайта.
// Реализации: удаленный HTTP-источник и локальная директория контента.
// Каждый метод возвращает ошибку, обернутую в одну из категорий
// domain.ErrNetwork / ErrParse / ErrNotFound.
type ContentSourcePort interface {
	// FetchPropertyIndex загружает индексный документ каталога
	// вида {"properties": [id, ...]} и возвращает идентификаторы
	// в порядке документа.
	FetchPropertyIndex(ctx context.Context) ([]string, error)

	// FetchProperty загружает и валидирует документ одного объекта.
	FetchProperty(ctx context.Context, propertyID string) (*domain.PropertyRecord, error)

	// FetchBlogIndex загружает индекс блога вида {"blogs": [id, ...]}.
	FetchBlogIndex(ctx context.Context) ([]string, error)

	// FetchBlogArticle загружает и валидирует документ одной статьи.
	FetchBlogArticle(ctx context.Context, blogID string) (*domain.BlogArticle, error)

	// FetchPageContent загружает CMS-документ страницы.
	FetchPageContent(ctx context.Context, pageName string) (domain.PageContent, error)
}
