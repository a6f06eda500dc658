package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/mensa/internal/models"
)

func newTestService() *Service {
	return NewService(arbor.NewLogger())
}

func place(id string, rating float64, ratings int, distance float64) models.Place {
	return models.Place{
		PlaceID:        id,
		Name:           id,
		Rating:         rating,
		UserRatings:    ratings,
		DistanceMeters: distance,
	}
}

func TestRankOrdersByScore(t *testing.T) {
	svc := newTestService()
	req := &models.SearchRequest{RadiusMeters: 2000}

	results := []models.Place{
		place("average", 3.5, 40, 500),
		place("excellent", 4.8, 600, 500),
		place("poor", 2.5, 5, 500),
	}

	ranked := svc.Rank(results, req, 10)
	require.Len(t, ranked, 3)

	assert.Equal(t, "excellent", ranked[0].Place.PlaceID)
	assert.Equal(t, "average", ranked[1].Place.PlaceID)
	assert.Equal(t, "poor", ranked[2].Place.PlaceID)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
}

func TestRankLimit(t *testing.T) {
	svc := newTestService()
	req := &models.SearchRequest{}

	var results []models.Place
	for i := 0; i < 8; i++ {
		results = append(results, place("p", 4.0, 50, float64(100*i)))
	}

	assert.Len(t, svc.Rank(results, req, 3), 3)
	// Zero limit falls back to the default.
	assert.Len(t, svc.Rank(results, req, 0), DefaultLimit)
	assert.Len(t, svc.Rank(results[:2], req, 5), 2)
}

func TestRankCuisineMatchBoost(t *testing.T) {
	svc := newTestService()
	req := &models.SearchRequest{Cuisines: []string{"italian"}}

	match := place("match", 4.0, 100, 500)
	match.CuisineTags = []string{"Italian"}
	other := place("other", 4.0, 100, 500)
	other.CuisineTags = []string{"Thai"}

	ranked := svc.Rank([]models.Place{other, match}, req, 5)
	require.Len(t, ranked, 2)
	assert.Equal(t, "match", ranked[0].Place.PlaceID)
	assert.Contains(t, ranked[0].Reasons, "matches Italian")
}

func TestRankOpenNowAndPriceBonuses(t *testing.T) {
	svc := newTestService()
	req := &models.SearchRequest{PriceLevel: 2}

	open := place("open", 4.0, 100, 500)
	open.Opening = &models.OpeningStatus{OpenNow: true}
	open.PriceLevel = 2
	closed := place("closed", 4.0, 100, 500)
	closed.Opening = &models.OpeningStatus{OpenNow: false}
	closed.PriceLevel = 3

	ranked := svc.Rank([]models.Place{closed, open}, req, 5)
	require.Len(t, ranked, 2)
	assert.Equal(t, "open", ranked[0].Place.PlaceID)
	assert.Contains(t, ranked[0].Reasons, "open now")
	assert.Contains(t, ranked[0].Reasons, "price level 2 as requested")
}

func TestRankTiesKeepInputOrder(t *testing.T) {
	svc := newTestService()
	req := &models.SearchRequest{}

	a := place("first", 4.0, 100, 300)
	b := place("second", 4.0, 100, 300)

	ranked := svc.Rank([]models.Place{a, b}, req, 5)
	require.Len(t, ranked, 2)
	assert.Equal(t, "first", ranked[0].Place.PlaceID)
	assert.Equal(t, "second", ranked[1].Place.PlaceID)
}

func TestRankEmptyInput(t *testing.T) {
	svc := newTestService()
	assert.Empty(t, svc.Rank(nil, &models.SearchRequest{}, 5))
}
