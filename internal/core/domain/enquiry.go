package domain

// Enquiry - обращение из контактной формы, пересылаемое во внешний
// форм-бэкенд. Сервис ничего не сохраняет.
type Enquiry struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}
