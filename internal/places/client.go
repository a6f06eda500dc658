// Package places is the Google Places API boundary: nearby search, place
// details, and geocoding. Raw upstream shapes never leak past this package's
// response types.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"

	"github.com/ternarybob/mensa/internal/models"
)

const (
	// DefaultBaseURL is the base URL for the Google Maps web service APIs.
	DefaultBaseURL = "https://maps.googleapis.com/maps/api"

	// DefaultTimeout is the per-call HTTP timeout.
	DefaultTimeout = 10 * time.Second

	// DefaultRateLimit is the default request rate (requests per second).
	DefaultRateLimit = 10

	// detailFields is the field mask requested from the details call.
	detailFields = "place_id,name,formatted_address,formatted_phone_number," +
		"international_phone_number,geometry,website,url,rating," +
		"user_ratings_total,price_level,types,opening_hours,reviews," +
		"reservable,dine_in,takeout,delivery,curbside_pickup," +
		"serves_breakfast,serves_lunch,serves_dinner,serves_brunch," +
		"serves_beer,serves_wine,serves_vegetarian_food"
)

// statusOK is the upstream success status; ZERO_RESULTS is success with an
// empty result set, every other status is a failure.
const (
	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)

// NearbyParams are the parameters for a nearby search call.
type NearbyParams struct {
	Location     models.Coordinate
	RadiusMeters int
	Keyword      string
	PriceLevel   int // 1-4, 0 = no price filter
	Language     string
}

// Client is a rate-limited Google Places API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     arbor.ILogger
	limiter    *rate.Limiter
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets a logger.
func WithLogger(logger arbor.ILogger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets a custom rate limit.
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the per-call HTTP timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new Places API client.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NearbySearch issues a nearby search bounded by the radius hint. Upstream
// treats the radius as advisory and may return results outside it; callers
// enforce the radius client-side.
func (c *Client) NearbySearch(ctx context.Context, p NearbyParams) ([]PlaceResult, error) {
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", p.Location.Latitude, p.Location.Longitude))
	if p.RadiusMeters > 0 {
		params.Set("radius", strconv.Itoa(p.RadiusMeters))
	} else {
		params.Set("radius", "2500")
	}
	params.Set("type", "restaurant")
	if p.Keyword != "" {
		params.Set("keyword", p.Keyword)
	}
	if p.PriceLevel >= 1 && p.PriceLevel <= 4 {
		params.Set("minprice", strconv.Itoa(p.PriceLevel))
		params.Set("maxprice", strconv.Itoa(p.PriceLevel))
	}
	if p.Language != "" {
		params.Set("language", p.Language)
	}

	var resp SearchResponse
	if err := c.get(ctx, "/place/nearbysearch/json", params, &resp); err != nil {
		return nil, err
	}
	if resp.Status != statusOK && resp.Status != statusZeroResults {
		return nil, &models.UpstreamError{Operation: "nearby search", Status: upstreamStatus(resp.Status, resp.ErrorMessage)}
	}

	if c.logger != nil {
		c.logger.Info().
			Str("keyword", p.Keyword).
			Float64("latitude", p.Location.Latitude).
			Float64("longitude", p.Location.Longitude).
			Int("radius", p.RadiusMeters).
			Int("results_count", len(resp.Results)).
			Str("status", resp.Status).
			Msg("Nearby search completed")
	}

	return resp.Results, nil
}

// Details fetches the full record for a single place.
func (c *Client) Details(ctx context.Context, placeID, language string) (*PlaceDetail, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", detailFields)
	if language != "" {
		params.Set("language", language)
	}

	var resp DetailsResponse
	if err := c.get(ctx, "/place/details/json", params, &resp); err != nil {
		return nil, err
	}
	if resp.Status != statusOK {
		return nil, &models.UpstreamError{Operation: "place details", Status: upstreamStatus(resp.Status, resp.ErrorMessage)}
	}
	if resp.Result == nil {
		return nil, &models.UpstreamError{Operation: "place details", Status: "OK with empty result"}
	}

	return resp.Result, nil
}

// Geocode resolves a free-text place name or address to coordinates.
// Multiple matches are returned in upstream relevance order.
func (c *Client) Geocode(ctx context.Context, query, language string) ([]GeocodeResult, error) {
	params := url.Values{}
	params.Set("address", query)
	if language != "" {
		params.Set("language", language)
	}

	var resp GeocodeResponse
	if err := c.get(ctx, "/geocode/json", params, &resp); err != nil {
		return nil, err
	}
	if resp.Status != statusOK && resp.Status != statusZeroResults {
		return nil, &models.UpstreamError{Operation: "geocode", Status: upstreamStatus(resp.Status, resp.ErrorMessage)}
	}

	return resp.Results, nil
}

// get performs a rate-limited GET against the API and decodes the JSON body.
func (c *Client) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}

	params.Set("key", c.apiKey)
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if c.logger != nil {
		// Redact the API key in logs.
		redacted := url.Values{}
		for k, v := range params {
			redacted[k] = v
		}
		redacted.Set("key", "***REDACTED***")
		c.logger.Debug().
			Str("url", fmt.Sprintf("%s%s?%s", c.baseURL, path, redacted.Encode())).
			Msg("Calling Google Maps API")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &models.UpstreamError{Operation: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &models.UpstreamError{
			Operation: path,
			Status:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode API response: %w", err)
	}

	return nil
}

func upstreamStatus(status, message string) string {
	if message == "" {
		return status
	}
	return fmt.Sprintf("%s - %s", status, message)
}
