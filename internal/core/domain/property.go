package domain

import (
	"strings"
	"time"
)

// Статусы объекта недвижимости.
const (
	StatusAvailable   = "available"
	StatusSold        = "sold"
	StatusNegotiation = "negotiation"
)

// Specifications - характеристики, зависящие от типа объекта.
// Для участков (Plot) поля Bedrooms/Bathrooms/Floors остаются нулевыми.
type Specifications struct {
	BuiltUpArea string
	PlotSize    string
	Bedrooms    int
	Bathrooms   int
	Floors      int
}

// PropertyRecord - загруженная карточка объекта. После загрузки не мутируется.
type PropertyRecord struct {
	ID               string
	Type             string
	Price            float64
	PriceDisplay     string
	DateAdded        time.Time
	LocationCity     string
	LocationFull     string
	Name             string
	ShortDescription string
	LongDescription  string
	FeaturedImage    string
	AdditionalImages []string
	Amenities        []string
	NearbyLandmarks  []string
	OtherFeatures    []string
	Status           string
	Specs            Specifications
}

// TypeSlug нормализует тип объекта в ключ фильтрации:
// "House & Plot" -> "house-plot".
func (p PropertyRecord) TypeSlug() string {
	return strings.ReplaceAll(strings.ToLower(p.Type), " & ", "-")
}

// NormalizedStatus возвращает статус объекта, подставляя
// StatusAvailable для пустого или неизвестного значения.
func (p PropertyRecord) NormalizedStatus() string {
	switch p.Status {
	case StatusSold, StatusNegotiation:
		return p.Status
	default:
		return StatusAvailable
	}
}

// Images возвращает полный список изображений: обложка + дополнительные.
func (p PropertyRecord) Images() []string {
	images := make([]string, 0, len(p.AdditionalImages)+1)
	if p.FeaturedImage != "" {
		images = append(images, p.FeaturedImage)
	}
	images = append(images, p.AdditionalImages...)
	return images
}
