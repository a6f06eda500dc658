package main

import (
	"fmt"
	"strings"

	"github.com/ternarybob/mensa/internal/models"
)

// formatSearchResults formats ranked search results as markdown
func formatSearchResults(req *models.SearchRequest, ranked []models.RankedPlace, total int) string {
	var sb strings.Builder

	origin := req.PlaceName
	if req.Origin != nil {
		origin = fmt.Sprintf("%.5f, %.5f", req.Origin.Latitude, req.Origin.Longitude)
	}
	sb.WriteString(fmt.Sprintf("## Restaurants near %s (%d of %d shown)\n\n", origin, len(ranked), total))

	if len(ranked) == 0 {
		sb.WriteString("No restaurants found. Try a larger radius or fewer filters.\n")
		return sb.String()
	}

	for i, r := range ranked {
		p := r.Place
		sb.WriteString(fmt.Sprintf("### %d. %s\n", i+1, p.Name))
		sb.WriteString(fmt.Sprintf("**Place ID:** %s\n", p.PlaceID))
		sb.WriteString(fmt.Sprintf("**Address:** %s\n", p.Address))
		sb.WriteString(fmt.Sprintf("**Distance:** %s\n", formatDistance(p.DistanceMeters)))
		if p.Rating > 0 {
			sb.WriteString(fmt.Sprintf("**Rating:** %.1f (%d reviews)\n", p.Rating, p.UserRatings))
		}
		if p.PriceLevel > 0 {
			sb.WriteString(fmt.Sprintf("**Price:** %s\n", strings.Repeat("$", p.PriceLevel)))
		}
		if len(p.CuisineTags) > 0 {
			sb.WriteString(fmt.Sprintf("**Cuisine:** %s\n", strings.Join(p.CuisineTags, ", ")))
		}
		if p.Opening != nil {
			if p.Opening.OpenNow {
				sb.WriteString("**Open now:** yes\n")
			} else {
				sb.WriteString("**Open now:** no\n")
			}
		}
		sb.WriteString(fmt.Sprintf("**Booking:** %s\n", describeBooking(p.Booking, p.Phone)))
		if p.Website != "" {
			sb.WriteString(fmt.Sprintf("**Website:** %s\n", p.Website))
		}
		if len(r.Reasons) > 0 {
			sb.WriteString(fmt.Sprintf("**Why ranked here:** %s\n", strings.Join(r.Reasons, "; ")))
		}
		sb.WriteString("\n---\n\n")
	}

	return sb.String()
}

// formatBookingInstructions formats booking guidance as markdown
func formatBookingInstructions(instr *models.BookingInstructions) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Booking %s\n\n", instr.Name))
	sb.WriteString(fmt.Sprintf("**Platform:** %s\n", instr.Platform))
	if instr.BookingURL != "" {
		sb.WriteString(fmt.Sprintf("**Booking URL:** %s\n", instr.BookingURL))
	}
	if instr.Phone != "" {
		sb.WriteString(fmt.Sprintf("**Phone:** %s\n", instr.Phone))
	}
	sb.WriteString(fmt.Sprintf("**Reference:** %s\n\n", instr.Reference))

	sb.WriteString("### Steps\n\n")
	for i, step := range instr.Steps {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, step))
	}

	sb.WriteString("\n_This is guidance only; no reservation has been made._\n")
	return sb.String()
}

// formatMetrics formats the performance snapshot as markdown
func formatMetrics(m models.PerformanceMetrics) string {
	var sb strings.Builder
	sb.WriteString("## Search Pipeline Metrics\n\n")
	sb.WriteString(fmt.Sprintf("- **Avg upstream latency:** %.1f ms (%d samples)\n", m.AvgLatencyMs, m.TotalSamples))
	sb.WriteString(fmt.Sprintf("- **Failure count:** %d\n", m.FailureCount))
	if m.CircuitOpen {
		sb.WriteString("- **Circuit breaker:** OPEN (detail fetches are being skipped)\n")
	} else {
		sb.WriteString("- **Circuit breaker:** closed\n")
	}
	sb.WriteString(fmt.Sprintf("- **Cached places:** %d\n", m.CacheSize))
	return sb.String()
}

func formatDistance(meters float64) string {
	if meters >= 1000 {
		return fmt.Sprintf("%.1f km", meters/1000)
	}
	return fmt.Sprintf("%.0f m", meters)
}

func describeBooking(b models.BookingProfile, phone string) string {
	switch {
	case b.OnlineBookingSupported:
		return fmt.Sprintf("online via %s", b.Platform)
	case b.PhoneRequired && phone != "":
		return fmt.Sprintf("call %s", phone)
	case b.IsReservable:
		return "reservations accepted"
	default:
		return "walk-in"
	}
}
