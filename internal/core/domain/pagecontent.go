package domain

// PageContent - плоский CMS-документ страницы: ключ -> текст/ссылка.
type PageContent map[string]string

// Value возвращает значение ключа. Отсутствующий ключ резолвится
// в пустую строку - это определенный fallback, а не ошибка.
func (p PageContent) Value(key string) string {
	return p[key]
}
