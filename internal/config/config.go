package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// Config aggregates application-wide configuration values.
type Config struct {
	GoogleAPIKey    string
	GeminiAPIKey    string
	GeminiModel     string
	Port            string
	AllowedOrigins  []string
	RateLimitSearch RateLimitConfig
	SearchRadiusM   int
	ContextRadiusM  int
	BroadRadiusM    int
}

// Load reads configuration from environment variables and applies sane defaults.
// Missing API keys are not a startup error: the affected endpoints report the
// missing capability per request instead.
func Load() (*Config, error) {
	cfg := &Config{
		GoogleAPIKey:   os.Getenv("GOOGLE_API_KEY"),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-1.5-pro"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: splitOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		SearchRadiusM:  parseMeters(getEnv("SEARCH_RADIUS_M", "10000"), 10000),
		ContextRadiusM: parseMeters(getEnv("CONTEXT_RADIUS_M", "5000"), 5000),
		BroadRadiusM:   parseMeters(getEnv("BROAD_RADIUS_M", "15000"), 15000),
	}

	rl, err := parseRateLimit(getEnv("RATE_LIMIT_SEARCH", "30/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_SEARCH value: %w", err)
	}
	cfg.RateLimitSearch = rl

	return cfg, nil
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func splitOrigins(value string) []string {
	parts := strings.Split(value, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseMeters(input string, fallback int) int {
	m, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || m <= 0 {
		return fallback
	}
	return m
}
