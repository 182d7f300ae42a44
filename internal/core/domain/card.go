package domain

import "fmt"

// Card - компактная проекция объекта для списка каталога.
// Чистая структура данных без разметки: привязка к представлению
// остается на стороне потребителя.
type Card struct {
	ID               string
	Badge            string
	CategorySlug     string
	Location         string
	Title            string
	ShortDescription string
	PriceDisplay     string
	Image            string
	DetailTarget     string
}

// NewCard проецирует PropertyRecord в карточку списка.
func NewCard(p PropertyRecord) Card {
	return Card{
		ID:               p.ID,
		Badge:            p.Type,
		CategorySlug:     p.TypeSlug(),
		Location:         p.LocationCity,
		Title:            p.Name,
		ShortDescription: p.ShortDescription,
		PriceDisplay:     p.PriceDisplay,
		Image:            p.FeaturedImage,
		DetailTarget:     fmt.Sprintf("property-details.html?id=%s", p.ID),
	}
}

// SpecItem - одна строка характеристик на детальной странице.
type SpecItem struct {
	Label string
	Value string
}

// DetailView - развернутая проекция объекта для детальной страницы.
type DetailView struct {
	ID              string
	Name            string
	LocationFull    string
	PriceDisplay    string
	Status          string
	StatusLabel     string
	LongDescription string
	Specifications  []SpecItem
	Amenities       []string
	NearbyLandmarks []string
	OtherFeatures   []string
	Images          []string
}

// NewDetailView проецирует PropertyRecord в детальное представление.
// Характеристики фильтруются по типу объекта: у участков нет спален,
// санузлов и этажей, пустые поля не попадают в список.
func NewDetailView(p PropertyRecord) DetailView {
	specs := []SpecItem{{Label: "Type", Value: p.Type}}
	if p.Specs.BuiltUpArea != "" {
		specs = append(specs, SpecItem{Label: "Built-up Area", Value: p.Specs.BuiltUpArea})
	}
	if p.Specs.PlotSize != "" {
		specs = append(specs, SpecItem{Label: "Plot Size", Value: p.Specs.PlotSize})
	}
	if p.Specs.Bedrooms > 0 {
		specs = append(specs, SpecItem{Label: "Bedrooms", Value: fmt.Sprintf("%d", p.Specs.Bedrooms)})
	}
	if p.Specs.Bathrooms > 0 {
		specs = append(specs, SpecItem{Label: "Bathrooms", Value: fmt.Sprintf("%d", p.Specs.Bathrooms)})
	}
	if p.Specs.Floors > 0 {
		specs = append(specs, SpecItem{Label: "Floors", Value: fmt.Sprintf("%d", p.Specs.Floors)})
	}

	status := p.NormalizedStatus()

	return DetailView{
		ID:              p.ID,
		Name:            p.Name,
		LocationFull:    p.LocationFull,
		PriceDisplay:    p.PriceDisplay,
		Status:          status,
		StatusLabel:     statusLabel(status),
		LongDescription: p.LongDescription,
		Specifications:  specs,
		Amenities:       p.Amenities,
		NearbyLandmarks: p.NearbyLandmarks,
		OtherFeatures:   p.OtherFeatures,
		Images:          p.Images(),
	}
}

func statusLabel(status string) string {
	switch status {
	case StatusSold:
		return "Sold Out"
	case StatusNegotiation:
		return "Temporarily Reserved"
	default:
		return "Available"
	}
}
