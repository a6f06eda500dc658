package common

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Duration decodes TOML duration strings like "10s" or "5m" via
// time.ParseDuration. go-toml cannot decode strings into time.Duration
// directly.
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config represents the application configuration
type Config struct {
	Environment string          `toml:"environment"` // "development" or "production"
	Server      ServerConfig    `toml:"server"`
	Logging     LoggingConfig   `toml:"logging"`
	PlacesAPI   PlacesAPIConfig `toml:"places_api"`
	Search      SearchConfig    `toml:"search"`
	Ranking     RankingConfig   `toml:"ranking"`
}

type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

type LoggingConfig struct {
	Level      string   `toml:"level"`       // "debug", "info", "warn", "error"
	Output     []string `toml:"output"`      // "stdout", "file"
	TimeFormat string   `toml:"time_format"` // Time format for logs
}

// PlacesAPIConfig contains Google Maps web service configuration
type PlacesAPIConfig struct {
	APIKey         string   `toml:"api_key"`         // Google Maps API key
	BaseURL        string   `toml:"base_url"`        // Override for tests; empty = production endpoint
	RateLimit      int      `toml:"rate_limit"`      // Requests per second
	RequestTimeout Duration `toml:"request_timeout"` // Per-call HTTP timeout, e.g. "10s"
}

// SearchConfig contains the search pipeline tuning knobs
type SearchConfig struct {
	RadiusMeters      int      `toml:"radius_meters"`       // Default search radius
	CandidateCap      int      `toml:"candidate_cap"`       // Max candidates enriched per search (hard cap 15)
	Concurrency       int      `toml:"concurrency"`         // Detail-fetch worker pool size
	CacheTTL          Duration `toml:"cache_ttl"`           // Detail cache entry lifetime, e.g. "5m"
	FailureThreshold  int      `toml:"failure_threshold"`   // Failures that open the circuit
	BreakerCooldown   Duration `toml:"breaker_cooldown"`    // How long the circuit stays open, e.g. "30s"
	MaxLatencySamples int      `toml:"max_latency_samples"` // Rolling latency window size
}

// RankingConfig contains result ranking configuration
type RankingConfig struct {
	TopN int `toml:"top_n"` // Ranked subset size returned to callers
}

// NewDefaultConfig creates a configuration with default values.
// Only user-facing settings should be exposed in mensa.toml.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port: 8080,
			Host: "localhost",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Output: []string{"stdout", "file"},
		},
		PlacesAPI: PlacesAPIConfig{
			APIKey:         "", // User must provide API key in config file
			RateLimit:      10,
			RequestTimeout: Duration(10 * time.Second),
		},
		Search: SearchConfig{
			RadiusMeters:      2500,
			CandidateCap:      15,
			Concurrency:       6,
			CacheTTL:          Duration(5 * time.Minute),
			FailureThreshold:  5,
			BreakerCooldown:   Duration(30 * time.Second),
			MaxLatencySamples: 100,
		},
		Ranking: RankingConfig{
			TopN: 5,
		},
	}
}

// LoadFromFile loads configuration with priority: defaults -> file -> env.
func LoadFromFile(path string) (*Config, error) {
	config := NewDefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("MENSA_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	if port := os.Getenv("MENSA_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("MENSA_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if level := os.Getenv("MENSA_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if key := os.Getenv("MENSA_PLACES_API_KEY"); key != "" {
		config.PlacesAPI.APIKey = key
	}
	if key := os.Getenv("GOOGLE_MAPS_API_KEY"); key != "" && config.PlacesAPI.APIKey == "" {
		config.PlacesAPI.APIKey = key
	}
}
