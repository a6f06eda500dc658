package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"
	arbor_models "github.com/ternarybob/arbor/models"

	"github.com/ternarybob/mensa/internal/common"
	"github.com/ternarybob/mensa/internal/places"
	"github.com/ternarybob/mensa/internal/services/booking"
	"github.com/ternarybob/mensa/internal/services/ranking"
	"github.com/ternarybob/mensa/internal/services/search"
)

func main() {
	// Load configuration
	configPath := os.Getenv("MENSA_CONFIG")
	if configPath == "" {
		if _, err := os.Stat("mensa.toml"); err == nil {
			configPath = "mensa.toml"
		}
	}

	config, err := common.LoadFromFile(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Minimal logger for the MCP server (console only, no file output)
	logger := arbor.NewLogger().WithConsoleWriter(arbor_models.WriterConfiguration{
		Type:             arbor_models.LogWriterTypeConsole,
		TimeFormat:       "15:04:05",
		DisableTimestamp: false,
	}).WithLevelFromString("warn") // Minimal logging to avoid cluttering MCP stdio

	if config.PlacesAPI.APIKey == "" {
		logger.Fatal().Msg("No Google Maps API key configured (places_api.api_key or MENSA_PLACES_API_KEY)")
	}

	// Wire the search pipeline
	clientOpts := []places.ClientOption{
		places.WithLogger(logger),
		places.WithRateLimit(config.PlacesAPI.RateLimit),
		places.WithTimeout(config.PlacesAPI.RequestTimeout.Std()),
	}
	if config.PlacesAPI.BaseURL != "" {
		clientOpts = append(clientOpts, places.WithBaseURL(config.PlacesAPI.BaseURL))
	}
	placesClient := places.NewClient(config.PlacesAPI.APIKey, clientOpts...)

	searchService := search.NewService(placesClient, logger, search.Options{
		RadiusMeters:      config.Search.RadiusMeters,
		CandidateCap:      config.Search.CandidateCap,
		Concurrency:       config.Search.Concurrency,
		CacheTTL:          config.Search.CacheTTL.Std(),
		FailureThreshold:  config.Search.FailureThreshold,
		BreakerCooldown:   config.Search.BreakerCooldown.Std(),
		MaxLatencySamples: config.Search.MaxLatencySamples,
	})
	rankingService := ranking.NewService(logger)
	bookingService := booking.NewService(logger)

	// Create MCP server
	mcpServer := server.NewMCPServer(
		"mensa",
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	// Register restaurant tools
	mcpServer.AddTool(createSearchRestaurantsTool(), handleSearchRestaurants(searchService, rankingService, config.Ranking.TopN, logger))
	mcpServer.AddTool(createBookingInstructionsTool(), handleBookingInstructions(searchService, bookingService, logger))
	mcpServer.AddTool(createMetricsTool(), handleMetrics(searchService, logger))

	// Start server (blocks on stdio)
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Fatal().Err(err).Msg("MCP server failed")
	}
}
