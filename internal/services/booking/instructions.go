package booking

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/mensa/internal/models"
)

// Service generates mock booking instructions from a place's booking
// profile. The reference code is produced locally; nothing is sent anywhere.
type Service struct {
	logger arbor.ILogger
}

// NewService creates a booking instructions service.
func NewService(logger arbor.ILogger) *Service {
	return &Service{logger: logger}
}

// NewReference generates a mock confirmation reference.
// Format: bk_<first uuid block>
func NewReference() string {
	return "bk_" + strings.SplitN(uuid.New().String(), "-", 2)[0]
}

// Instructions builds step-by-step reservation guidance for a place.
func (s *Service) Instructions(place *models.Place, partySize int, when string) *models.BookingInstructions {
	if partySize < 1 {
		partySize = 2
	}
	if when == "" {
		when = "your preferred time"
	}

	instr := &models.BookingInstructions{
		PlaceID:    place.PlaceID,
		Name:       place.Name,
		Platform:   place.Booking.Platform,
		BookingURL: place.Booking.BookingURL,
		Phone:      place.Phone,
		Reference:  NewReference(),
	}

	party := fmt.Sprintf("a party of %d", partySize)

	switch {
	case place.Booking.OnlineBookingSupported && place.Booking.Platform != models.BookingPlatformWebsite:
		instr.Steps = []string{
			fmt.Sprintf("Open %s and search for %q.", platformName(place.Booking.Platform), place.Name),
			fmt.Sprintf("Select %s at %s.", party, when),
			"Confirm the reservation and keep the confirmation email.",
			fmt.Sprintf("Quote reference %s if asked.", instr.Reference),
		}
	case place.Booking.Platform == models.BookingPlatformWebsite:
		instr.Steps = []string{
			fmt.Sprintf("Visit %s and look for a reservation or booking section.", place.Website),
			fmt.Sprintf("Request a table for %s at %s.", party, when),
			"If the form is unavailable, fall back to calling the restaurant.",
		}
	case place.Booking.PhoneRequired:
		instr.Steps = []string{
			fmt.Sprintf("Call %s at %s.", place.Name, place.Phone),
			fmt.Sprintf("Ask for a table for %s at %s.", party, when),
			"Note the name the reservation is held under.",
		}
	default:
		instr.Steps = []string{
			fmt.Sprintf("%s does not list a reservation channel.", place.Name),
			fmt.Sprintf("Walk in and ask for a table for %s; arrive early at busy hours.", party),
		}
	}

	if s.logger != nil {
		s.logger.Debug().
			Str("place_id", place.PlaceID).
			Str("platform", string(place.Booking.Platform)).
			Msg("Generated booking instructions")
	}

	return instr
}

func platformName(p models.BookingPlatform) string {
	switch p {
	case models.BookingPlatformOpenTable:
		return "OpenTable"
	case models.BookingPlatformResy:
		return "Resy"
	case models.BookingPlatformYelp:
		return "Yelp Reservations"
	case models.BookingPlatformGoogleReserve:
		return "Reserve with Google"
	default:
		return "the booking site"
	}
}
