package types

import "time"

type VendorStatus string

const (
	VendorStatusPending   VendorStatus = "pending"
	VendorStatusApproved  VendorStatus = "approved"
	VendorStatusSuspended VendorStatus = "suspended"
)

// Vendor is a service provider listed on the marketplace. Summary, rating and
// region fields are nullable: a bare profile is a valid, lower-quality state,
// not an error.
type Vendor struct {
	ID              string       `db:"id" json:"id"`
	OwnerUserID     *string      `db:"owner_user_id" json:"-"`
	Name            string       `db:"name" json:"name"`
	Summary         *string      `db:"summary" json:"summary"`
	Description     *string      `db:"description" json:"description,omitempty"`
	RegionPrimary   *string      `db:"region_primary" json:"regionPrimary"`
	RegionSecondary *string      `db:"region_secondary" json:"regionSecondary"`
	PriceMin        *int64       `db:"price_min" json:"priceMin"`
	PriceMax        *int64       `db:"price_max" json:"priceMax"`
	RatingAvg       *float64     `db:"rating_avg" json:"ratingAvg"`
	ReviewCount     int          `db:"review_count" json:"reviewCount"`
	Status          VendorStatus `db:"status" json:"status"`
	CreatedAt       time.Time    `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time    `db:"updated_at" json:"updatedAt"`
}

type VendorSort string

const (
	VendorSortRecommended VendorSort = "recommended"
	VendorSortPopular     VendorSort = "popular"
	VendorSortReviewed    VendorSort = "reviewed"
	VendorSortNewest      VendorSort = "newest"
)

// ValidVendorSort reports whether s names one of the four ranking strategies.
func ValidVendorSort(s VendorSort) bool {
	switch s {
	case VendorSortRecommended, VendorSortPopular, VendorSortReviewed, VendorSortNewest:
		return true
	}
	return false
}

// VendorQuery parameterizes a ranked candidate fetch.
type VendorQuery struct {
	Sort           VendorSort
	CategoryID     string
	Limit          uint64
	MinReviewCount *int
}

// ImageRef points at a stored image. URL is the public CDN location recorded
// alongside the asset.
type ImageRef struct {
	FileID string `db:"file_id" json:"fileId"`
	URL    string `db:"url" json:"url"`
}
