package contentsource

import (
	"encoding/json"
	"fmt"
)

// documentID принимает и строковые, и числовые идентификаторы:
// индексные документы исторически содержат оба варианта.
type documentID string

func (d *documentID) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		*d = documentID(asString)
		return nil
	}

	var asNumber json.Number
	if err := json.Unmarshal(data, &asNumber); err == nil {
		*d = documentID(asNumber.String())
		return nil
	}

	return fmt.Errorf("id must be a string or a number, got %s", string(data))
}

// propertyIndexDocument - документ content/property-list.json.
type propertyIndexDocument struct {
	Properties []documentID `json:"properties"`
}

// blogIndexDocument - документ content/blog-list.json.
type blogIndexDocument struct {
	Blogs []documentID `json:"blogs"`
}

// propertyDocument - сырой документ одного объекта, поля как в CMS.
type propertyDocument struct {
	PropertyID       documentID `json:"property_id"`
	Type             string     `json:"type"`
	Price            float64    `json:"price"`
	PriceDisplay     string     `json:"priceDisplay"`
	DateAdded        string     `json:"date_added"`
	LocationCity     string     `json:"location_city"`
	LocationFull     string     `json:"location_full"`
	Name             string     `json:"name"`
	ShortDescription string     `json:"short_description"`
	LongDescription  string     `json:"long_description"`
	FeaturedImage    string     `json:"featured_image"`
	AdditionalImages []string   `json:"additional_images"`
	Amenities        []string   `json:"amenities"`
	NearbyLandmarks  []string   `json:"nearbyLandmarks"`
	OtherFeatures    []string   `json:"otherFeatures"`
	Status           string     `json:"status"`
	BuiltUpArea      string     `json:"builtUpArea"`
	PlotSize         string     `json:"plotSize"`
	Bedrooms         int        `json:"bedrooms"`
	Bathrooms        int        `json:"bathrooms"`
	Floors           int        `json:"floors"`
}

// blogDocument - сырой документ одной статьи блога.
type blogDocument struct {
	BlogID       documentID `json:"blog_id"`
	Tag          string     `json:"tag"`
	Date         string     `json:"date"`
	PreviewTitle string     `json:"preview_title"`
	PreviewImage string     `json:"preview_image"`
	ArticleTitle string     `json:"article_title"`
	ArticleImage string     `json:"article_image"`
	Content      string     `json:"content"`
}
