package models

// Coordinate represents a geographic point in WGS84 degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// BookingPlatform identifies how a restaurant accepts reservations.
type BookingPlatform string

const (
	BookingPlatformOpenTable     BookingPlatform = "opentable"
	BookingPlatformResy          BookingPlatform = "resy"
	BookingPlatformYelp          BookingPlatform = "yelp"
	BookingPlatformWebsite       BookingPlatform = "restaurant_website"
	BookingPlatformGoogleReserve BookingPlatform = "google_reserve"
	BookingPlatformOther         BookingPlatform = "other"
	BookingPlatformNone          BookingPlatform = "none"
)

// BookingProfile is the derived reservation classification for a place.
// It is computed once from the website hostname and phone presence and
// never mutated afterwards.
type BookingProfile struct {
	IsReservable           bool            `json:"is_reservable"`
	OnlineBookingSupported bool            `json:"online_booking_supported"`
	PhoneRequired          bool            `json:"phone_required"`
	BookingURL             string          `json:"booking_url,omitempty"`
	Platform               BookingPlatform `json:"platform"`
}

// ServiceFlags captures the boolean service attributes reported upstream.
type ServiceFlags struct {
	DineIn            bool `json:"dine_in,omitempty"`
	Takeout           bool `json:"takeout,omitempty"`
	Delivery          bool `json:"delivery,omitempty"`
	CurbsidePickup    bool `json:"curbside_pickup,omitempty"`
	ServesBreakfast   bool `json:"serves_breakfast,omitempty"`
	ServesLunch       bool `json:"serves_lunch,omitempty"`
	ServesDinner      bool `json:"serves_dinner,omitempty"`
	ServesBrunch      bool `json:"serves_brunch,omitempty"`
	ServesBeer        bool `json:"serves_beer,omitempty"`
	ServesWine        bool `json:"serves_wine,omitempty"`
	ServesVegetarian  bool `json:"serves_vegetarian_food,omitempty"`
}

// OpeningStatus holds current open/closed state plus the weekly schedule text.
type OpeningStatus struct {
	OpenNow     bool     `json:"open_now"`
	WeekdayText []string `json:"weekday_text,omitempty"`
}

// Review is a single upstream user review. At most five are retained per place.
type Review struct {
	Author   string  `json:"author"`
	Rating   float64 `json:"rating"`
	Text     string  `json:"text"`
	Time     int64   `json:"time"`
}

// Place is the enriched internal representation of a restaurant.
// Constructed once per detail fetch (or served from cache); the only
// post-construction mutation is stamping DistanceMeters during a search.
type Place struct {
	PlaceID        string         `json:"place_id"`
	Name           string         `json:"name"`
	Address        string         `json:"address"`
	Location       Coordinate     `json:"location"`
	Rating         float64        `json:"rating"`
	UserRatings    int            `json:"user_ratings_total"`
	PriceLevel     int            `json:"price_level,omitempty"` // 1-4, 0 = unknown
	CuisineTags    []string       `json:"cuisine_tags,omitempty"`
	Phone          string         `json:"phone,omitempty"`
	Website        string         `json:"website,omitempty"`
	MapsURL        string         `json:"maps_url"`
	DistanceMeters float64        `json:"distance_meters,omitempty"`
	Booking        BookingProfile `json:"booking"`
	Services       ServiceFlags   `json:"services"`
	Opening        *OpeningStatus `json:"opening,omitempty"`
	Reviews        []Review       `json:"reviews,omitempty"`
}

// RankedPlace is a place with its heuristic score and human-readable reasons,
// produced by the ranking service from a search result set.
type RankedPlace struct {
	Place   Place    `json:"place"`
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons,omitempty"`
}

// Candidate is a coarse nearby-search result before detail enrichment.
// DistanceMeters is computed client-side from the coarse coordinate and is
// the distance stamped on the final Place (never recomputed from the
// detail-stage coordinate, which can differ slightly).
type Candidate struct {
	PlaceID        string
	Name           string
	Location       Coordinate
	Types          []string
	DistanceMeters float64
}
