package places

// SearchResponse represents the Google Places Nearby/Text Search API response.
type SearchResponse struct {
	HTMLAttributions []string      `json:"html_attributions"`
	Results          []PlaceResult `json:"results"`
	Status           string        `json:"status"`
	ErrorMessage     string        `json:"error_message,omitempty"`
	NextPageToken    string        `json:"next_page_token,omitempty"`
}

// PlaceResult represents a single coarse place result from a search call.
type PlaceResult struct {
	BusinessStatus   string        `json:"business_status,omitempty"`
	FormattedAddress string        `json:"formatted_address,omitempty"`
	Geometry         *Geometry     `json:"geometry,omitempty"`
	Name             string        `json:"name"`
	OpeningHours     *OpeningHours `json:"opening_hours,omitempty"`
	PlaceID          string        `json:"place_id"`
	PriceLevel       int           `json:"price_level,omitempty"`
	Rating           float64       `json:"rating,omitempty"`
	Types            []string      `json:"types,omitempty"`
	UserRatingsTotal int           `json:"user_ratings_total,omitempty"`
	Vicinity         string        `json:"vicinity,omitempty"`
}

// DetailsResponse represents the Place Details API response.
type DetailsResponse struct {
	HTMLAttributions []string     `json:"html_attributions"`
	Result           *PlaceDetail `json:"result,omitempty"`
	Status           string       `json:"status"`
	ErrorMessage     string       `json:"error_message,omitempty"`
}

// PlaceDetail is the full per-place record returned by the details call.
type PlaceDetail struct {
	PlaceID                  string         `json:"place_id"`
	Name                     string         `json:"name"`
	FormattedAddress         string         `json:"formatted_address,omitempty"`
	FormattedPhoneNumber     string         `json:"formatted_phone_number,omitempty"`
	InternationalPhoneNumber string         `json:"international_phone_number,omitempty"`
	Geometry                 *Geometry      `json:"geometry,omitempty"`
	Website                  string         `json:"website,omitempty"`
	URL                      string         `json:"url,omitempty"`
	Rating                   float64        `json:"rating,omitempty"`
	UserRatingsTotal         int            `json:"user_ratings_total,omitempty"`
	PriceLevel               int            `json:"price_level,omitempty"`
	Types                    []string       `json:"types,omitempty"`
	OpeningHours             *OpeningHours  `json:"opening_hours,omitempty"`
	Reviews                  []ReviewResult `json:"reviews,omitempty"`
	Reservable               bool           `json:"reservable,omitempty"`
	DineIn                   bool           `json:"dine_in,omitempty"`
	Takeout                  bool           `json:"takeout,omitempty"`
	Delivery                 bool           `json:"delivery,omitempty"`
	CurbsidePickup           bool           `json:"curbside_pickup,omitempty"`
	ServesBreakfast          bool           `json:"serves_breakfast,omitempty"`
	ServesLunch              bool           `json:"serves_lunch,omitempty"`
	ServesDinner             bool           `json:"serves_dinner,omitempty"`
	ServesBrunch             bool           `json:"serves_brunch,omitempty"`
	ServesBeer               bool           `json:"serves_beer,omitempty"`
	ServesWine               bool           `json:"serves_wine,omitempty"`
	ServesVegetarianFood     bool           `json:"serves_vegetarian_food,omitempty"`
}

// ReviewResult is a single user review from the details call.
type ReviewResult struct {
	AuthorName string  `json:"author_name"`
	Rating     float64 `json:"rating"`
	Text       string  `json:"text"`
	Time       int64   `json:"time"`
}

// GeocodeResponse represents the Geocoding API response.
type GeocodeResponse struct {
	Results      []GeocodeResult `json:"results"`
	Status       string          `json:"status"`
	ErrorMessage string          `json:"error_message,omitempty"`
}

// GeocodeResult is a single geocoding match, ranked by upstream relevance.
type GeocodeResult struct {
	FormattedAddress string    `json:"formatted_address,omitempty"`
	Geometry         *Geometry `json:"geometry,omitempty"`
	PlaceID          string    `json:"place_id,omitempty"`
}

// Geometry represents the geometry information of a place.
type Geometry struct {
	Location *LatLng `json:"location,omitempty"`
	Viewport *Bounds `json:"viewport,omitempty"`
}

// LatLng represents a geographic coordinate.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Bounds represents a geographic bounding box.
type Bounds struct {
	Northeast *LatLng `json:"northeast,omitempty"`
	Southwest *LatLng `json:"southwest,omitempty"`
}

// OpeningHours represents the opening hours of a place.
type OpeningHours struct {
	OpenNow     bool     `json:"open_now,omitempty"`
	WeekdayText []string `json:"weekday_text,omitempty"`
}
