package types

import "time"

// FeedVersion is the home feed schema version. Bump on breaking shape changes.
const FeedVersion = 1

type SectionType string

const (
	SectionTypeCategoryGrid   SectionType = "category_grid"
	SectionTypeVendorCarousel SectionType = "vendor_carousel"
)

// VendorCard is a vendor enriched with its category tags and thumbnail,
// constructed fresh per feed response. Never persisted.
type VendorCard struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Summary         *string     `json:"summary"`
	RegionPrimary   *string     `json:"regionPrimary"`
	RegionSecondary *string     `json:"regionSecondary"`
	PriceMin        *int64      `json:"priceMin"`
	PriceMax        *int64      `json:"priceMax"`
	RatingAvg       *float64    `json:"ratingAvg"`
	ReviewCount     int         `json:"reviewCount"`
	Categories      []*Category `json:"categories"`
	Thumbnail       *ImageRef   `json:"thumbnail"`
}

// Section is one titled block of the home feed. Items holds either
// []*Category (category_grid) or []*VendorCard (vendor_carousel).
type Section struct {
	ID       string      `json:"id"`
	Type     SectionType `json:"type"`
	Title    string      `json:"title"`
	Category *Category   `json:"category,omitempty"`
	Items    any         `json:"items"`
}

type FeedResponse struct {
	Version     int       `json:"version"`
	GeneratedAt time.Time `json:"generatedAt"`
	Sections    []Section `json:"sections"`
}
