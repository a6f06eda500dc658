// Package ranking scores search results with a weighted heuristic and
// returns the best matches with human-readable reasoning.
package ranking

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/mensa/internal/interfaces"
	"github.com/ternarybob/mensa/internal/models"
)

// Scoring weights. Rating quality dominates; distance and fit adjust.
const (
	weightRating      = 2.0
	weightPopularity  = 1.0
	weightDistance    = 1.5
	weightCuisine     = 1.0
	weightPrice       = 0.5
	openNowBonus      = 0.5
	popularityDamping = 500.0 // rating count at which popularity saturates
)

// DefaultLimit is the ranked subset size when the caller does not specify one.
const DefaultLimit = 5

// Service implements the heuristic ranking collaborator.
type Service struct {
	logger arbor.ILogger
}

var _ interfaces.RankingService = (*Service)(nil)

// NewService creates a ranking service.
func NewService(logger arbor.ILogger) *Service {
	return &Service{logger: logger}
}

// Rank scores each place against the request and returns the top entries,
// best first. Ties keep the input (distance) order.
func (s *Service) Rank(results []models.Place, req *models.SearchRequest, limit int) []models.RankedPlace {
	if limit <= 0 {
		limit = DefaultLimit
	}

	radius := float64(req.RadiusMeters)
	if radius <= 0 {
		radius = 2500
	}

	ranked := make([]models.RankedPlace, 0, len(results))
	for _, p := range results {
		score, reasons := s.score(&p, req, radius)
		ranked = append(ranked, models.RankedPlace{Place: p, Score: score, Reasons: reasons})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	if s.logger != nil {
		s.logger.Debug().
			Int("scored", len(results)).
			Int("returned", len(ranked)).
			Msg("Ranking completed")
	}

	return ranked
}

func (s *Service) score(p *models.Place, req *models.SearchRequest, radius float64) (float64, []string) {
	var score float64
	var reasons []string

	if p.Rating > 0 {
		score += weightRating * (p.Rating / 5.0)
		reasons = append(reasons, fmt.Sprintf("rated %.1f/5", p.Rating))
	}

	if p.UserRatings > 0 {
		// Log-damped so a thousand reviews beats fifty without drowning
		// everything else.
		pop := math.Log1p(float64(p.UserRatings)) / math.Log1p(popularityDamping)
		if pop > 1 {
			pop = 1
		}
		score += weightPopularity * pop
		if p.UserRatings >= 100 {
			reasons = append(reasons, fmt.Sprintf("%d reviews", p.UserRatings))
		}
	}

	// Closer is better, linear decay across the search radius.
	proximity := 1.0 - p.DistanceMeters/radius
	if proximity < 0 {
		proximity = 0
	}
	score += weightDistance * proximity
	if p.DistanceMeters > 0 {
		reasons = append(reasons, fmt.Sprintf("%.0f m away", p.DistanceMeters))
	}

	if matched := matchedCuisines(p.CuisineTags, req.Cuisines); len(matched) > 0 {
		score += weightCuisine
		reasons = append(reasons, "matches "+strings.Join(matched, ", "))
	}

	if req.PriceLevel > 0 && p.PriceLevel == req.PriceLevel {
		score += weightPrice
		reasons = append(reasons, fmt.Sprintf("price level %d as requested", p.PriceLevel))
	}

	if p.Opening != nil && p.Opening.OpenNow {
		score += openNowBonus
		reasons = append(reasons, "open now")
	}

	return score, reasons
}

// matchedCuisines returns the place tags that satisfy the requested cuisine
// filters, case-insensitively.
func matchedCuisines(tags, wanted []string) []string {
	if len(wanted) == 0 || len(tags) == 0 {
		return nil
	}
	var matched []string
	for _, tag := range tags {
		for _, w := range wanted {
			if strings.EqualFold(tag, w) {
				matched = append(matched, tag)
				break
			}
		}
	}
	return matched
}
