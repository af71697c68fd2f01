package models

import "time"

// Chalet represents a rentable chalet listing. The catalog is owner-managed;
// the booking flow only ever reads it.
type Chalet struct {
	ID            int       `bson:"id" json:"id"`
	OwnerID       string    `bson:"owner_id" json:"ownerId"`
	Name          string    `bson:"name" json:"name"`
	SkiArea       string    `bson:"ski_area" json:"skiArea"`
	Description   string    `bson:"description" json:"description"`
	Capacity      int       `bson:"capacity" json:"capacity"`
	Bedrooms      int       `bson:"bedrooms" json:"bedrooms"`
	PricePerNight float64   `bson:"price_per_night" json:"pricePerNight"`
	Currency      string    `bson:"currency" json:"currency"`
	Amenities     []string  `bson:"amenities,omitempty" json:"amenities,omitempty"`
	ImageURLs     []string  `bson:"image_urls,omitempty" json:"imageUrls,omitempty"`
	Active        bool      `bson:"active" json:"active"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
}

// ChaletSearchQuery carries catalog search filters.
type ChaletSearchQuery struct {
	SkiArea  string  `json:"skiArea,omitempty"`
	Guests   int     `json:"guests,omitempty"`
	MinPrice float64 `json:"minPrice,omitempty"`
	MaxPrice float64 `json:"maxPrice,omitempty"`
	Page     int     `json:"page,omitempty"`
	PageSize int     `json:"pageSize,omitempty"`
}
