package domain

import "errors"

// Базовые категории ошибок сервиса. Адаптеры оборачивают свои ошибки
// через %w, REST-слой разбирает их через errors.Is.
var (
	// ErrNetwork - запрос к источнику контента не удался или вернул не-2xx статус.
	ErrNetwork = errors.New("network failure")

	// ErrParse - тело ответа не является валидным JSON или не проходит схему.
	ErrParse = errors.New("parse failure")

	// ErrNotFound - документ с запрошенным идентификатором отсутствует.
	ErrNotFound = errors.New("not found")

	// ErrValidation - некорректный ответ OAuth-провайдера или невалидный запрос.
	ErrValidation = errors.New("validation failure")
)
