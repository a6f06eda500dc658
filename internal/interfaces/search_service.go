package interfaces

import (
	"context"

	"github.com/ternarybob/mensa/internal/models"
)

// SearchService is the public search contract exposed to the MCP and HTTP
// front-ends.
type SearchService interface {
	// Search resolves the request origin, fetches and enriches nearby
	// candidates, and returns them sorted ascending by distance. An empty
	// slice is a valid outcome meaning no matches; a returned error means
	// origin resolution or the primary search call failed.
	Search(ctx context.Context, req *models.SearchRequest) ([]models.Place, error)

	// Lookup fetches full details for a single place by ID.
	Lookup(ctx context.Context, placeID, language string) (*models.Place, error)

	// Metrics returns the current performance snapshot.
	Metrics() models.PerformanceMetrics
}

// RankingService scores a search result set against the original request.
type RankingService interface {
	// Rank orders places by heuristic score, best first, keeping at most
	// limit entries. Each result carries human-readable scoring reasons.
	Rank(results []models.Place, req *models.SearchRequest, limit int) []models.RankedPlace
}

// BookingService produces mock reservation guidance for a place.
type BookingService interface {
	// Instructions returns deterministic step-by-step booking guidance
	// derived from the place's booking profile. No real booking occurs.
	Instructions(place *models.Place, partySize int, when string) *models.BookingInstructions
}
