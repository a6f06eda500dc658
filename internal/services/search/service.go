// Package search implements the restaurant search pipeline: origin
// resolution, nearby candidate selection, concurrent detail enrichment, and
// the final distance-ordered result set.
package search

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/mensa/internal/cache"
	"github.com/ternarybob/mensa/internal/fetcher"
	"github.com/ternarybob/mensa/internal/geo"
	"github.com/ternarybob/mensa/internal/interfaces"
	"github.com/ternarybob/mensa/internal/models"
	"github.com/ternarybob/mensa/internal/places"
)

const (
	// DefaultRadiusMeters is used when the request does not set a radius.
	DefaultRadiusMeters = 2500

	// DefaultCandidateCap bounds how many candidates proceed to the
	// detail-fetch stage.
	DefaultCandidateCap = 15

	// DefaultConcurrency is the detail-fetch worker pool size.
	DefaultConcurrency = 6

	// DefaultCacheTTL is the detail cache entry lifetime.
	DefaultCacheTTL = 5 * time.Minute
)

// Options are the constructor-time tuning knobs. Zero values fall back to
// the package defaults.
type Options struct {
	RadiusMeters      int
	CandidateCap      int
	Concurrency       int
	CacheTTL          time.Duration
	FailureThreshold  int
	BreakerCooldown   time.Duration
	MaxLatencySamples int
}

// Service owns the search pipeline state: the upstream client, the detail
// cache, and the fetch breaker. Cache and breaker are shared across all
// requests served by this instance; construct isolated instances for
// isolated state.
type Service struct {
	client   interfaces.PlacesClient
	cache    *cache.TTLCache[*models.Place]
	fetcher  *fetcher.Fetcher
	validate *validator.Validate
	logger   arbor.ILogger
	opts     Options
}

// Compile-time assertion: Service implements the SearchService interface.
var _ interfaces.SearchService = (*Service)(nil)

// NewService creates a search service around the given upstream client.
func NewService(client interfaces.PlacesClient, logger arbor.ILogger, opts Options) *Service {
	if opts.RadiusMeters <= 0 {
		opts.RadiusMeters = DefaultRadiusMeters
	}
	if opts.CandidateCap <= 0 || opts.CandidateCap > DefaultCandidateCap {
		opts.CandidateCap = DefaultCandidateCap
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultCacheTTL
	}

	fetcherOpts := []fetcher.Option{}
	if opts.FailureThreshold > 0 {
		fetcherOpts = append(fetcherOpts, fetcher.WithFailureThreshold(opts.FailureThreshold))
	}
	if opts.BreakerCooldown > 0 {
		fetcherOpts = append(fetcherOpts, fetcher.WithCooldown(opts.BreakerCooldown))
	}
	if opts.MaxLatencySamples > 0 {
		fetcherOpts = append(fetcherOpts, fetcher.WithMaxSamples(opts.MaxLatencySamples))
	}

	return &Service{
		client:   client,
		cache:    cache.New[*models.Place](opts.CacheTTL),
		fetcher:  fetcher.New(fetcherOpts...),
		validate: validator.New(),
		logger:   logger,
		opts:     opts,
	}
}

// Search runs the full pipeline. Origin resolution failure aborts with
// ResolutionError and a failed primary search call aborts with
// UpstreamError; once enrichment starts, per-candidate failures only shrink
// the result set. The returned slice is sorted ascending by distance and may
// be empty, which is a valid "no matches" outcome.
func (s *Service) Search(ctx context.Context, req *models.SearchRequest) ([]models.Place, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid search request: %w", err)
	}

	origin, err := s.resolveOrigin(ctx, req)
	if err != nil {
		return nil, err
	}

	candidates, err := s.fetchCandidates(ctx, origin, req)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		s.logger.Info().Msg("No candidates within radius")
		return []models.Place{}, nil
	}

	tasks := make([]func() (*models.Place, error), len(candidates))
	for i, cand := range candidates {
		placeID := cand.PlaceID
		tasks[i] = func() (*models.Place, error) {
			return s.enrich(ctx, placeID, req.Language)
		}
	}
	enriched := fetcher.RunAll(ctx, tasks, s.opts.Concurrency)

	// Stamp each survivor with the precomputed candidate distance. The
	// detail-stage coordinate can differ slightly from the coarse one; the
	// coarse distance is the one the radius filter was applied to, so it is
	// the one reported.
	results := make([]models.Place, 0, len(enriched))
	for i, p := range enriched {
		if p == nil {
			continue
		}
		place := *p
		place.DistanceMeters = candidates[i].DistanceMeters
		results = append(results, place)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].DistanceMeters < results[j].DistanceMeters
	})

	s.logger.Info().
		Int("candidates", len(candidates)).
		Int("results", len(results)).
		Msg("Search completed")

	return results, nil
}

// Lookup fetches full details for a single place by ID, served through the
// same cache and breaker as the search pipeline. DistanceMeters is zero on
// the returned place since no origin is involved.
func (s *Service) Lookup(ctx context.Context, placeID, language string) (*models.Place, error) {
	if placeID == "" {
		return nil, fmt.Errorf("place id is required")
	}
	place, err := s.enrich(ctx, placeID, language)
	if err != nil {
		return nil, err
	}
	if place == nil {
		return nil, fmt.Errorf("place %s not found or unusable", placeID)
	}
	return place, nil
}

// Metrics returns the current performance snapshot.
func (s *Service) Metrics() models.PerformanceMetrics {
	m := s.fetcher.Metrics()
	return models.PerformanceMetrics{
		AvgLatencyMs: m.AvgLatencyMs,
		TotalSamples: m.TotalSamples,
		FailureCount: m.FailureCount,
		CircuitOpen:  m.CircuitOpen,
		CacheSize:    s.cache.Len(),
	}
}

// ResetBreaker clears the circuit breaker. Test hook only.
func (s *Service) ResetBreaker() {
	s.fetcher.Reset()
}

// resolveOrigin returns the search origin: the supplied coordinate, or the
// top geocoding match for the place name. The first (most relevant) match
// wins; there is no disambiguation.
func (s *Service) resolveOrigin(ctx context.Context, req *models.SearchRequest) (models.Coordinate, error) {
	if req.Origin != nil {
		return *req.Origin, nil
	}
	if req.PlaceName == "" {
		return models.Coordinate{}, &models.ResolutionError{Reason: "no origin coordinate or place name provided"}
	}

	results, err := s.client.Geocode(ctx, req.PlaceName, req.Language)
	if err != nil {
		return models.Coordinate{}, &models.ResolutionError{Query: req.PlaceName, Reason: err.Error()}
	}
	for _, r := range results {
		if r.Geometry != nil && r.Geometry.Location != nil {
			return models.Coordinate{
				Latitude:  r.Geometry.Location.Lat,
				Longitude: r.Geometry.Location.Lng,
			}, nil
		}
	}
	return models.Coordinate{}, &models.ResolutionError{Query: req.PlaceName, Reason: "no geocoding results"}
}

// fetchCandidates issues the nearby search and applies the client-side
// geometric filter: upstream treats the radius as a hint, so every raw
// result with coarse coordinates is re-checked against the origin, sorted
// ascending by distance, and truncated to the candidate cap. Filtering on
// the cheap coarse response happens before the expensive detail stage.
func (s *Service) fetchCandidates(ctx context.Context, origin models.Coordinate, req *models.SearchRequest) ([]models.Candidate, error) {
	radius := req.RadiusMeters
	if radius <= 0 {
		radius = s.opts.RadiusMeters
	}

	raw, err := s.client.NearbySearch(ctx, placesNearbyParams(origin, radius, req))
	if err != nil {
		return nil, err
	}

	candidates := make([]models.Candidate, 0, len(raw))
	for _, r := range raw {
		if r.PlaceID == "" || r.Geometry == nil || r.Geometry.Location == nil {
			continue
		}
		loc := models.Coordinate{Latitude: r.Geometry.Location.Lat, Longitude: r.Geometry.Location.Lng}
		dist := geo.Distance(origin, loc)
		if dist > float64(radius) {
			continue
		}
		candidates = append(candidates, models.Candidate{
			PlaceID:        r.PlaceID,
			Name:           r.Name,
			Location:       loc,
			Types:          r.Types,
			DistanceMeters: dist,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].DistanceMeters < candidates[j].DistanceMeters
	})

	limit := s.opts.CandidateCap
	if req.MaxResults > 0 && req.MaxResults < limit {
		limit = req.MaxResults
	}
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	return candidates, nil
}

func placesNearbyParams(origin models.Coordinate, radius int, req *models.SearchRequest) places.NearbyParams {
	return places.NearbyParams{
		Location:     origin,
		RadiusMeters: radius,
		Keyword:      composeQuery(req.Keyword, req.Cuisines),
		PriceLevel:   req.PriceLevel,
		Language:     req.Language,
	}
}
