package geo

import (
	"math"
	"testing"

	"github.com/ternarybob/mensa/internal/models"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name      string
		a, b      models.Coordinate
		want      float64
		tolerance float64
	}{
		{
			name:      "same point",
			a:         models.Coordinate{Latitude: 37.7749, Longitude: -122.4194},
			b:         models.Coordinate{Latitude: 37.7749, Longitude: -122.4194},
			want:      0,
			tolerance: 0.001,
		},
		{
			name:      "sf to la",
			a:         models.Coordinate{Latitude: 37.7749, Longitude: -122.4194},
			b:         models.Coordinate{Latitude: 34.0522, Longitude: -118.2437},
			want:      559120,
			tolerance: 1000,
		},
		{
			name:      "one degree latitude at equator",
			a:         models.Coordinate{Latitude: 0, Longitude: 0},
			b:         models.Coordinate{Latitude: 1, Longitude: 0},
			want:      111195,
			tolerance: 50,
		},
		{
			name:      "short hop across san francisco",
			a:         models.Coordinate{Latitude: 37.7749, Longitude: -122.4194},
			b:         models.Coordinate{Latitude: 37.7793, Longitude: -122.4193},
			want:      489,
			tolerance: 5,
		},
		{
			name:      "antipodal points",
			a:         models.Coordinate{Latitude: 0, Longitude: 0},
			b:         models.Coordinate{Latitude: 0, Longitude: 180},
			want:      math.Pi * 6371000,
			tolerance: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.a, tt.b)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("Distance() = %.1f, want %.1f (±%.1f)", got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestDistanceSymmetry(t *testing.T) {
	a := models.Coordinate{Latitude: 51.5074, Longitude: -0.1278}
	b := models.Coordinate{Latitude: 48.8566, Longitude: 2.3522}

	if d1, d2 := Distance(a, b), Distance(b, a); math.Abs(d1-d2) > 1e-9 {
		t.Errorf("Distance not symmetric: %v vs %v", d1, d2)
	}
}
