package contentsource

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/abin-codes/orukachavadakaran-realestate/internal/contracts"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/domain"
)

// toDomainProperty валидирует сырой документ по схеме и маппит его
// в доменную запись. Любая проблема с телом - это domain.ErrParse.
func toDomainProperty(raw []byte) (*domain.PropertyRecord, error) {
	if err := contracts.ValidateDocument(contracts.KindPropertyRecord, raw); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrParse)
	}

	var doc propertyDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode property document: %v: %w", err, domain.ErrParse)
	}

	dateAdded, err := parseDocumentDate(doc.DateAdded)
	if err != nil {
		return nil, fmt.Errorf("invalid date_added %q: %w", doc.DateAdded, domain.ErrParse)
	}

	return &domain.PropertyRecord{
		ID:               string(doc.PropertyID),
		Type:             doc.Type,
		Price:            doc.Price,
		PriceDisplay:     doc.PriceDisplay,
		DateAdded:        dateAdded,
		LocationCity:     doc.LocationCity,
		LocationFull:     doc.LocationFull,
		Name:             doc.Name,
		ShortDescription: doc.ShortDescription,
		LongDescription:  doc.LongDescription,
		FeaturedImage:    doc.FeaturedImage,
		AdditionalImages: doc.AdditionalImages,
		Amenities:        doc.Amenities,
		NearbyLandmarks:  doc.NearbyLandmarks,
		OtherFeatures:    doc.OtherFeatures,
		Status:           doc.Status,
		Specs: domain.Specifications{
			BuiltUpArea: doc.BuiltUpArea,
			PlotSize:    doc.PlotSize,
			Bedrooms:    doc.Bedrooms,
			Bathrooms:   doc.Bathrooms,
			Floors:      doc.Floors,
		},
	}, nil
}

func toDomainArticle(raw []byte) (*domain.BlogArticle, error) {
	if err := contracts.ValidateDocument(contracts.KindBlogArticle, raw); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrParse)
	}

	var doc blogDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode blog document: %v: %w", err, domain.ErrParse)
	}

	return &domain.BlogArticle{
		ID:           string(doc.BlogID),
		Tag:          doc.Tag,
		Date:         doc.Date,
		PreviewTitle: doc.PreviewTitle,
		PreviewImage: doc.PreviewImage,
		ArticleTitle: doc.ArticleTitle,
		ArticleImage: doc.ArticleImage,
		Content:      doc.Content,
	}, nil
}

func toDomainPageContent(raw []byte) (domain.PageContent, error) {
	var flat map[string]string
	if err := json.Unmarshal(raw, &flat); err != nil {
		return nil, fmt.Errorf("failed to decode page document: %v: %w", err, domain.ErrParse)
	}
	return domain.PageContent(flat), nil
}

func parsePropertyIndex(raw []byte) ([]string, error) {
	var doc propertyIndexDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode property index: %v: %w", err, domain.ErrParse)
	}
	return idsToStrings(doc.Properties), nil
}

func parseBlogIndex(raw []byte) ([]string, error) {
	var doc blogIndexDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode blog index: %v: %w", err, domain.ErrParse)
	}
	return idsToStrings(doc.Blogs), nil
}

func idsToStrings(ids []documentID) []string {
	result := make([]string, len(ids))
	for i, id := range ids {
		result[i] = string(id)
	}
	return result
}

// parseDocumentDate разбирает дату документа. CMS пишет "2006-01-02",
// но встречаются и полные timestamp.
func parseDocumentDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
