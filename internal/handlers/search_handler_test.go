package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/mensa/internal/models"
)

// stubSearchService returns canned results or errors.
type stubSearchService struct {
	results []models.Place
	err     error
}

func (s *stubSearchService) Search(ctx context.Context, req *models.SearchRequest) ([]models.Place, error) {
	return s.results, s.err
}

func (s *stubSearchService) Lookup(ctx context.Context, placeID, language string) (*models.Place, error) {
	return nil, fmt.Errorf("not implemented")
}

func (s *stubSearchService) Metrics() models.PerformanceMetrics {
	return models.PerformanceMetrics{}
}

type stubRankingService struct{}

func (s *stubRankingService) Rank(results []models.Place, req *models.SearchRequest, limit int) []models.RankedPlace {
	ranked := make([]models.RankedPlace, 0, len(results))
	for _, p := range results {
		ranked = append(ranked, models.RankedPlace{Place: p})
	}
	return ranked
}

func doSearch(t *testing.T, svc *stubSearchService, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewSearchHandler(svc, &stubRankingService{}, 5, arbor.NewLogger())
	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.SearchHandler(rec, req)
	return rec
}

// validationFailure reproduces the error shape the search service returns for
// a request that fails struct validation.
func validationFailure(t *testing.T) error {
	t.Helper()
	err := validator.New().Struct(&models.SearchRequest{PriceLevel: 7})
	require.Error(t, err)
	return fmt.Errorf("invalid search request: %w", err)
}

func TestSearchHandlerSuccess(t *testing.T) {
	svc := &stubSearchService{results: []models.Place{{PlaceID: "p1", Name: "Trattoria"}}}

	rec := doSearch(t, svc, `{"origin": {"latitude": 37.7, "longitude": -122.4}}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_results":1`)
}

func TestSearchHandlerValidationErrorIsBadRequest(t *testing.T) {
	svc := &stubSearchService{err: validationFailure(t)}

	rec := doSearch(t, svc, `{"origin": {"latitude": 37.7, "longitude": -122.4}, "price_level": 7}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchHandlerResolutionErrorIsBadRequest(t *testing.T) {
	svc := &stubSearchService{err: &models.ResolutionError{Query: "nowhere", Reason: "no geocoding results"}}

	rec := doSearch(t, svc, `{"place_name": "nowhere"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchHandlerUpstreamErrorIsBadGateway(t *testing.T) {
	svc := &stubSearchService{err: &models.UpstreamError{Operation: "nearby search", Status: "OVER_QUERY_LIMIT"}}

	rec := doSearch(t, svc, `{"origin": {"latitude": 37.7, "longitude": -122.4}}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestSearchHandlerMalformedBody(t *testing.T) {
	rec := doSearch(t, &stubSearchService{}, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchHandlerRejectsGet(t *testing.T) {
	h := NewSearchHandler(&stubSearchService{}, &stubRankingService{}, 5, arbor.NewLogger())
	req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
	rec := httptest.NewRecorder()
	h.SearchHandler(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
