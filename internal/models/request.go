package models

// SearchRequest carries the caller's restaurant search parameters.
// Exactly one of Origin or PlaceName must resolve to a coordinate before
// the search proceeds; if neither is supplied resolution fails.
type SearchRequest struct {
	Origin       *Coordinate `json:"origin,omitempty"`
	PlaceName    string      `json:"place_name,omitempty"`
	Cuisines     []string    `json:"cuisines,omitempty" validate:"dive,min=1"`
	Keyword      string      `json:"keyword,omitempty"`
	RadiusMeters int         `json:"radius_meters,omitempty" validate:"omitempty,gt=0"`
	PriceLevel   int         `json:"price_level,omitempty" validate:"omitempty,min=1,max=4"`
	Language     string      `json:"language,omitempty"`
	MaxResults   int         `json:"max_results,omitempty" validate:"omitempty,min=1,max=15"`
}

// BookingInstructions is the mock reservation guidance returned for a place.
// No real booking is performed; the reference code is generated locally.
type BookingInstructions struct {
	PlaceID    string          `json:"place_id"`
	Name       string          `json:"name"`
	Platform   BookingPlatform `json:"platform"`
	Steps      []string        `json:"steps"`
	BookingURL string          `json:"booking_url,omitempty"`
	Phone      string          `json:"phone,omitempty"`
	Reference  string          `json:"reference"`
}
