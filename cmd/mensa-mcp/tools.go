package main

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createSearchRestaurantsTool returns the search_restaurants tool definition
func createSearchRestaurantsTool() mcp.Tool {
	return mcp.NewTool("search_restaurants",
		mcp.WithDescription("Search for restaurants near a coordinate or named place, enriched with ratings, booking options, and distance"),
		mcp.WithNumber("latitude",
			mcp.Description("Origin latitude (WGS84 degrees); used together with longitude"),
		),
		mcp.WithNumber("longitude",
			mcp.Description("Origin longitude (WGS84 degrees); used together with latitude"),
		),
		mcp.WithString("place_name",
			mcp.Description("Named origin to geocode (e.g. 'Ferry Building, San Francisco'); used when no coordinate is given"),
		),
		mcp.WithArray("cuisines",
			mcp.WithStringItems(),
			mcp.Description("Cuisine filters (e.g. italian, sushi, thai)"),
		),
		mcp.WithString("keyword",
			mcp.Description("Free-text search keyword; takes priority over cuisines"),
		),
		mcp.WithNumber("radius_meters",
			mcp.Description("Search radius in meters (default: 2500)"),
		),
		mcp.WithNumber("price_level",
			mcp.Description("Price level filter 1-4 (1 = cheapest)"),
		),
		mcp.WithNumber("max_results",
			mcp.Description("Maximum results to return (default: 5, max: 15)"),
		),
		mcp.WithString("language",
			mcp.Description("Response language code (e.g. en, ja)"),
		),
	)
}

// createBookingInstructionsTool returns the get_booking_instructions tool definition
func createBookingInstructionsTool() mcp.Tool {
	return mcp.NewTool("get_booking_instructions",
		mcp.WithDescription("Get step-by-step reservation guidance for a restaurant by place ID. No real booking is made."),
		mcp.WithString("place_id",
			mcp.Required(),
			mcp.Description("Google place ID from a previous search_restaurants result"),
		),
		mcp.WithNumber("party_size",
			mcp.Description("Number of guests (default: 2)"),
		),
		mcp.WithString("when",
			mcp.Description("Desired time in plain words (e.g. 'Friday 7pm')"),
		),
	)
}

// createMetricsTool returns the get_performance_metrics tool definition
func createMetricsTool() mcp.Tool {
	return mcp.NewTool("get_performance_metrics",
		mcp.WithDescription("Report search pipeline health: upstream latency, failure count, circuit breaker state, and cache size"),
	)
}
