package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ternarybob/mensa/internal/models"
	"github.com/ternarybob/mensa/internal/places"
	"github.com/ternarybob/mensa/internal/services/booking"
)

// maxReviews bounds the number of reviews retained per place.
const maxReviews = 5

// errCircuitOpen marks a detail fetch skipped because the breaker is open.
// It surfaces as a dropped candidate, never as a request-level error.
var errCircuitOpen = errors.New("circuit breaker open, skipping detail fetch")

// enrich fetches and maps full details for one candidate, routed through the
// cache (placeID+language+fieldset key) and the fetch breaker. A nil place
// with nil error means the upstream record was fetched but unusable; the
// caller drops the slot. Errors are recorded for breaker accounting and
// likewise collapse to a dropped slot upstream.
func (s *Service) enrich(ctx context.Context, placeID, language string) (*models.Place, error) {
	key := fmt.Sprintf("%s|%s|ext", placeID, language)

	// Cache is consulted before the breaker: a warm entry costs nothing
	// upstream, so an open circuit only blocks fetches, not cached places.
	if place, ok := s.cache.Get(key); ok {
		return place, nil
	}
	if s.fetcher.ShouldSkip() {
		return nil, errCircuitOpen
	}

	return s.cache.GetOrFetch(ctx, key, func() (*models.Place, error) {
		start := time.Now()
		detail, err := s.client.Details(ctx, placeID, language)
		if err != nil {
			s.fetcher.RecordFailure()
			s.logger.Warn().
				Err(err).
				Str("place_id", placeID).
				Msg("Place detail fetch failed")
			return nil, err
		}
		s.fetcher.RecordSuccess(time.Since(start))

		// A malformed record maps to nil and is cached as such, so the TTL
		// window is honored for not-found results too.
		return mapDetail(detail), nil
	})
}

// mapDetail converts a raw upstream detail record to the internal Place.
// Records missing any required field (id, name, address, coordinate) map
// to nil rather than erroring.
func mapDetail(d *places.PlaceDetail) *models.Place {
	if d == nil || d.PlaceID == "" || d.Name == "" || d.FormattedAddress == "" {
		return nil
	}
	if d.Geometry == nil || d.Geometry.Location == nil {
		return nil
	}

	phone := d.FormattedPhoneNumber
	if phone == "" {
		phone = d.InternationalPhoneNumber
	}

	place := &models.Place{
		PlaceID: d.PlaceID,
		Name:    d.Name,
		Address: d.FormattedAddress,
		Location: models.Coordinate{
			Latitude:  d.Geometry.Location.Lat,
			Longitude: d.Geometry.Location.Lng,
		},
		Rating:      d.Rating,
		UserRatings: d.UserRatingsTotal,
		PriceLevel:  d.PriceLevel,
		CuisineTags: deriveCuisineTags(d.Types),
		Phone:       phone,
		Website:     d.Website,
		MapsURL:     d.URL,
		Booking:     booking.DeriveProfile(d.Website, phone),
		Services: models.ServiceFlags{
			DineIn:           d.DineIn,
			Takeout:          d.Takeout,
			Delivery:         d.Delivery,
			CurbsidePickup:   d.CurbsidePickup,
			ServesBreakfast:  d.ServesBreakfast,
			ServesLunch:      d.ServesLunch,
			ServesDinner:     d.ServesDinner,
			ServesBrunch:     d.ServesBrunch,
			ServesBeer:       d.ServesBeer,
			ServesWine:       d.ServesWine,
			ServesVegetarian: d.ServesVegetarianFood,
		},
	}

	if d.OpeningHours != nil {
		place.Opening = &models.OpeningStatus{
			OpenNow:     d.OpeningHours.OpenNow,
			WeekdayText: d.OpeningHours.WeekdayText,
		}
	}

	for i, r := range d.Reviews {
		if i == maxReviews {
			break
		}
		place.Reviews = append(place.Reviews, models.Review{
			Author: r.AuthorName,
			Rating: r.Rating,
			Text:   r.Text,
			Time:   r.Time,
		})
	}

	return place
}
