package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeQuery(t *testing.T) {
	tests := []struct {
		name     string
		keyword  string
		cuisines []string
		want     string
	}{
		{"keyword only", "late night ramen", nil, "late night ramen"},
		{"cuisines only", "", []string{"Italian", "Sushi"}, "italian|sushi"},
		{"keyword wins with cuisines appended", "cheap eats", []string{"Thai"}, "cheap eats thai"},
		{"neither falls back to restaurant", "", nil, "restaurant"},
		{"blank terms skipped", "  ", []string{" ", "Greek", ""}, "greek"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, composeQuery(tt.keyword, tt.cuisines))
		})
	}
}

func TestDeriveCuisineTags(t *testing.T) {
	tests := []struct {
		name  string
		types []string
		want  []string
	}{
		{"mapped cuisine", []string{"italian_restaurant", "restaurant", "food"}, []string{"Italian"}},
		{"multiple cuisines keep upstream order", []string{"sushi_restaurant", "japanese_restaurant"}, []string{"Sushi", "Japanese"}},
		{"generic only", []string{"restaurant", "point_of_interest", "establishment"}, []string{"Restaurant"}},
		{"unknown types", []string{"laundry"}, nil},
		{"deduplicated", []string{"cafe", "cafe"}, []string{"Cafe"}},
		{"empty", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, deriveCuisineTags(tt.types))
		})
	}
}
