package main

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/mensa/internal/interfaces"
	"github.com/ternarybob/mensa/internal/models"
)

// handleSearchRestaurants implements the search_restaurants tool
func handleSearchRestaurants(searchService interfaces.SearchService, rankingService interfaces.RankingService, topN int, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		req := &models.SearchRequest{
			PlaceName:    request.GetString("place_name", ""),
			Keyword:      request.GetString("keyword", ""),
			Cuisines:     request.GetStringSlice("cuisines", nil),
			RadiusMeters: request.GetInt("radius_meters", 0),
			PriceLevel:   request.GetInt("price_level", 0),
			Language:     request.GetString("language", ""),
			MaxResults:   request.GetInt("max_results", 0),
		}

		// A coordinate origin needs both halves; otherwise fall back to
		// place_name geocoding.
		lat := request.GetFloat("latitude", 0)
		lng := request.GetFloat("longitude", 0)
		if lat != 0 || lng != 0 {
			req.Origin = &models.Coordinate{Latitude: lat, Longitude: lng}
		}

		if req.Origin == nil && req.PlaceName == "" {
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent("Error: provide either latitude/longitude or place_name"),
				},
			}, nil
		}

		places, err := searchService.Search(ctx, req)
		if err != nil {
			logger.Error().Err(err).Msg("Search failed")
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent(fmt.Sprintf("Search error: %v", err)),
				},
			}, nil
		}

		limit := topN
		if req.MaxResults > 0 {
			limit = req.MaxResults
		}
		ranked := rankingService.Rank(places, req, limit)

		markdown := formatSearchResults(req, ranked, len(places))
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(markdown),
			},
		}, nil
	}
}

// handleBookingInstructions implements the get_booking_instructions tool
func handleBookingInstructions(searchService interfaces.SearchService, bookingService interfaces.BookingService, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		placeID, err := request.RequireString("place_id")
		if err != nil || placeID == "" {
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent("Error: place_id parameter is required"),
				},
			}, nil
		}

		partySize := request.GetInt("party_size", 2)
		when := request.GetString("when", "")

		place, err := searchService.Lookup(ctx, placeID, "")
		if err != nil {
			logger.Error().Err(err).Str("place_id", placeID).Msg("Place lookup failed")
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent(fmt.Sprintf("Place not found: %v", err)),
				},
			}, nil
		}

		instructions := bookingService.Instructions(place, partySize, when)

		markdown := formatBookingInstructions(instructions)
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(markdown),
			},
		}, nil
	}
}

// handleMetrics implements the get_performance_metrics tool
func handleMetrics(searchService interfaces.SearchService, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		metrics := searchService.Metrics()

		markdown := formatMetrics(metrics)
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(markdown),
			},
		}, nil
	}
}
