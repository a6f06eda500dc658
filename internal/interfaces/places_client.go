// Package interfaces provides service interfaces for dependency injection.
package interfaces

import (
	"context"

	"github.com/ternarybob/mensa/internal/places"
)

// PlacesClient defines the upstream Google Places API operations the search
// pipeline depends on. Implemented by places.Client; faked in tests.
type PlacesClient interface {
	// NearbySearch returns coarse candidates around a location. The radius
	// is an upstream hint, not a guarantee.
	NearbySearch(ctx context.Context, p places.NearbyParams) ([]places.PlaceResult, error)

	// Details fetches the full record for one place.
	Details(ctx context.Context, placeID, language string) (*places.PlaceDetail, error)

	// Geocode resolves a free-text place name to coordinates, most relevant
	// match first.
	Geocode(ctx context.Context, query, language string) ([]places.GeocodeResult, error)
}
