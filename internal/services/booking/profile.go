// Package booking derives reservation profiles from place attributes and
// generates mock booking guidance. No real reservation is ever made.
package booking

import (
	"net/url"
	"strings"

	"github.com/ternarybob/mensa/internal/models"
)

// platformDomains maps known booking-platform hostnames to their platform.
// Matching is exact or by subdomain.
var platformDomains = map[string]models.BookingPlatform{
	"opentable.com":      models.BookingPlatformOpenTable,
	"resy.com":           models.BookingPlatformResy,
	"yelp.com":           models.BookingPlatformYelp,
	"reserve.google.com": models.BookingPlatformGoogleReserve,
	"sevenrooms.com":     models.BookingPlatformOther,
	"exploretock.com":    models.BookingPlatformOther,
}

// bookingKeywords are URL tokens that suggest the restaurant's own site
// takes reservations.
var bookingKeywords = []string{"reservation", "book", "table", "menu"}

// DeriveProfile classifies how a place can be reserved from its website URL
// and phone number. A detected online platform supersedes phone booking;
// a phone number alone yields a phone-required profile.
func DeriveProfile(website, phone string) models.BookingProfile {
	if website != "" {
		if platform, ok := matchPlatform(website); ok {
			return models.BookingProfile{
				IsReservable:           true,
				OnlineBookingSupported: true,
				PhoneRequired:          false,
				BookingURL:             website,
				Platform:               platform,
			}
		}
		if containsBookingKeyword(website) {
			return models.BookingProfile{
				IsReservable:           true,
				OnlineBookingSupported: true,
				PhoneRequired:          false,
				BookingURL:             website,
				Platform:               models.BookingPlatformWebsite,
			}
		}
	}

	if phone != "" {
		return models.BookingProfile{
			IsReservable:           true,
			OnlineBookingSupported: false,
			PhoneRequired:          true,
			Platform:               models.BookingPlatformNone,
		}
	}

	return models.BookingProfile{Platform: models.BookingPlatformNone}
}

// matchPlatform checks the website hostname against the known platform
// domains, exact or subdomain match.
func matchPlatform(website string) (models.BookingPlatform, bool) {
	host := hostOf(website)
	if host == "" {
		return models.BookingPlatformNone, false
	}
	for domain, platform := range platformDomains {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return platform, true
		}
	}
	return models.BookingPlatformNone, false
}

func containsBookingKeyword(website string) bool {
	lower := strings.ToLower(website)
	for _, kw := range bookingKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func hostOf(website string) string {
	raw := website
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(u.Hostname(), "www."))
}
