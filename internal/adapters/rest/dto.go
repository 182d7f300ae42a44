package rest

// CardResponse - карточка объекта в списке каталога.
type CardResponse struct {
	ID               string `json:"id"`
	Badge            string `json:"badge"`
	CategorySlug     string `json:"categorySlug"`
	Location         string `json:"location"`
	Title            string `json:"title"`
	ShortDescription string `json:"shortDescription"`
	PriceDisplay     string `json:"priceDisplay"`
	Image            string `json:"image"`
	DetailTarget     string `json:"detailTarget"`
}

// CatalogResponse - ответ на просмотр каталога.
type CatalogResponse struct {
	Count    int            `json:"count"`
	Category string         `json:"category"`
	Sort     string         `json:"sort"`
	Data     []CardResponse `json:"data"`
}

// SuggestionResponse - одна поисковая подсказка.
type SuggestionResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Location string `json:"location"`
}

// SuggestResponse - ответ поиска. NoResults=true отличает "ничего не
// найдено" от пустого запроса.
type SuggestResponse struct {
	NoResults bool                 `json:"noResults"`
	Data      []SuggestionResponse `json:"data"`
}

// SpecItemResponse - строка характеристик детальной страницы.
type SpecItemResponse struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// DetailResponse - детальное представление объекта.
type DetailResponse struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	LocationFull    string             `json:"locationFull"`
	PriceDisplay    string             `json:"priceDisplay"`
	Status          string             `json:"status"`
	StatusLabel     string             `json:"statusLabel"`
	LongDescription string             `json:"longDescription"`
	Specifications  []SpecItemResponse `json:"specifications"`
	Amenities       []string           `json:"amenities"`
	NearbyLandmarks []string           `json:"nearbyLandmarks"`
	OtherFeatures   []string           `json:"otherFeatures"`
	Images          []string           `json:"images"`
}

// BlogPreviewResponse - карточка ленты блога.
type BlogPreviewResponse struct {
	ID          string `json:"id"`
	Tag         string `json:"tag"`
	Date        string `json:"date"`
	Title       string `json:"title"`
	Image       string `json:"image"`
	ArticleLink string `json:"articleLink"`
}

// BlogFeedResponse - ответ ленты блога.
type BlogFeedResponse struct {
	Count int                   `json:"count"`
	Data  []BlogPreviewResponse `json:"data"`
}

// BlogArticleResponse - полная статья.
type BlogArticleResponse struct {
	ID           string `json:"id"`
	Tag          string `json:"tag"`
	Date         string `json:"date"`
	ArticleTitle string `json:"articleTitle"`
	ArticleImage string `json:"articleImage"`
	Content      string `json:"content"`
}

// EnquiryRequest - тело POST /api/v1/enquiries.
type EnquiryRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,min=5"`
	Subject string `json:"subject" validate:"omitempty,max=200"`
	Message string `json:"message" validate:"required,min=10"`
}

// NotFoundRedirectResponse - 404 с целью редиректа, как на исходном
// сайте (alert + возврат на список).
type NotFoundRedirectResponse struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect"`
}
