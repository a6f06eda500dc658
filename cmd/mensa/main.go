package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/mensa/internal/common"
	"github.com/ternarybob/mensa/internal/places"
	"github.com/ternarybob/mensa/internal/server"
	"github.com/ternarybob/mensa/internal/services/ranking"
	"github.com/ternarybob/mensa/internal/services/search"
)

var (
	configFile  = flag.String("config", "", "Configuration file path (default: mensa.toml if present)")
	serverPort  = flag.Int("port", 0, "Server port (overrides config)")
	serverHost  = flag.String("host", "", "Server host (overrides config)")
	showVersion = flag.Bool("version", false, "Print version information")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("Mensa version %s\n", common.GetVersion())
		os.Exit(0)
	}

	// Startup sequence (REQUIRED ORDER):
	// 1. Load config (defaults -> file -> env)
	// 2. Apply CLI overrides (highest priority)
	// 3. Initialize logger
	// 4. Print banner

	path := *configFile
	if path == "" {
		if _, err := os.Stat("mensa.toml"); err == nil {
			path = "mensa.toml"
		}
	}

	config, err := common.LoadFromFile(path)
	if err != nil {
		arbor.NewLogger().Fatal().Err(err).Str("path", path).Msg("Failed to load configuration")
		os.Exit(1)
	}

	if *serverPort != 0 {
		config.Server.Port = *serverPort
	}
	if *serverHost != "" {
		config.Server.Host = *serverHost
	}

	logger := common.InitLogger(config)
	common.PrintBanner(common.GetVersion())

	if config.PlacesAPI.APIKey == "" {
		logger.Fatal().Msg("No Google Maps API key configured (places_api.api_key or MENSA_PLACES_API_KEY)")
	}

	logger.Info().
		Str("config_file", path).
		Int("port", config.Server.Port).
		Str("host", config.Server.Host).
		Msg("Application configuration loaded")

	// Wire the pipeline: upstream client -> search service -> ranking -> HTTP.
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

	srv := server.New(config, logger, searchService, rankingService)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Fatal().Str("panic", fmt.Sprintf("%v", r)).Msg("Server goroutine panicked")
			}
		}()

		if err := srv.Start(); err != nil {
			logger.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	logger.Info().
		Str("url", fmt.Sprintf("http://%s:%d", config.Server.Host, config.Server.Port)).
		Msg("Server ready - Press Ctrl+C to stop")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info().Msg("Interrupt signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Server shutdown failed")
	}

	logger.Info().Msg("Server stopped")
}
