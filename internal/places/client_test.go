package places

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/mensa/internal/models"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient("test-key", WithBaseURL(srv.URL), WithRateLimit(1000))
	return srv, client
}

func TestNearbySearch(t *testing.T) {
	var gotQuery map[string]string
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/place/nearbysearch/json", r.URL.Path)
		q := r.URL.Query()
		gotQuery = map[string]string{
			"type":     q.Get("type"),
			"keyword":  q.Get("keyword"),
			"radius":   q.Get("radius"),
			"minprice": q.Get("minprice"),
			"maxprice": q.Get("maxprice"),
			"key":      q.Get("key"),
		}
		fmt.Fprint(w, `{
			"status": "OK",
			"results": [
				{"place_id": "p1", "name": "Trattoria", "geometry": {"location": {"lat": 37.79, "lng": -122.39}}, "types": ["restaurant", "italian_restaurant"]}
			]
		}`)
	})

	results, err := client.NearbySearch(context.Background(), NearbyParams{
		Location:     models.Coordinate{Latitude: 37.7955, Longitude: -122.3937},
		RadiusMeters: 1500,
		Keyword:      "pasta",
		PriceLevel:   2,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "p1", results[0].PlaceID)
	assert.Equal(t, "Trattoria", results[0].Name)

	assert.Equal(t, "restaurant", gotQuery["type"])
	assert.Equal(t, "pasta", gotQuery["keyword"])
	assert.Equal(t, "1500", gotQuery["radius"])
	assert.Equal(t, "2", gotQuery["minprice"])
	assert.Equal(t, "2", gotQuery["maxprice"])
	assert.Equal(t, "test-key", gotQuery["key"])
}

func TestNearbySearchZeroResults(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status": "ZERO_RESULTS", "results": []}`)
	})

	results, err := client.NearbySearch(context.Background(), NearbyParams{})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestNearbySearchErrorStatus(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status": "REQUEST_DENIED", "error_message": "invalid key"}`)
	})

	_, err := client.NearbySearch(context.Background(), NearbyParams{})
	require.Error(t, err)

	var upErr *models.UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.Contains(t, upErr.Status, "REQUEST_DENIED")
	assert.Contains(t, upErr.Status, "invalid key")
}

func TestDetails(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/place/details/json", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "p1", q.Get("place_id"))
		assert.Contains(t, q.Get("fields"), "formatted_phone_number")
		assert.Equal(t, "ja", q.Get("language"))
		fmt.Fprint(w, `{
			"status": "OK",
			"result": {
				"place_id": "p1",
				"name": "Trattoria",
				"formatted_address": "1 Main St",
				"geometry": {"location": {"lat": 37.79, "lng": -122.39}},
				"website": "https://www.opentable.com/trattoria",
				"serves_dinner": true
			}
		}`)
	})

	detail, err := client.Details(context.Background(), "p1", "ja")
	require.NoError(t, err)
	assert.Equal(t, "Trattoria", detail.Name)
	assert.Equal(t, "https://www.opentable.com/trattoria", detail.Website)
	assert.True(t, detail.ServesDinner)
}

func TestDetailsNotFound(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status": "NOT_FOUND"}`)
	})

	_, err := client.Details(context.Background(), "gone", "")
	require.Error(t, err)

	var upErr *models.UpstreamError
	assert.ErrorAs(t, err, &upErr)
}

func TestGeocode(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geocode/json", r.URL.Path)
		assert.Equal(t, "Ferry Building", r.URL.Query().Get("address"))
		fmt.Fprint(w, `{
			"status": "OK",
			"results": [
				{"formatted_address": "Ferry Building, San Francisco", "geometry": {"location": {"lat": 37.7955, "lng": -122.3937}}}
			]
		}`)
	})

	results, err := client.Geocode(context.Background(), "Ferry Building", "")
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NotNil(t, results[0].Geometry)
	assert.InDelta(t, 37.7955, results[0].Geometry.Location.Lat, 1e-9)
}

func TestHTTPErrorStatus(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	})

	_, err := client.Geocode(context.Background(), "anywhere", "")
	require.Error(t, err)

	var upErr *models.UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.Contains(t, upErr.Status, "HTTP 502")
}
