package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// Server
	Port           int
	AllowedOrigins []string

	// Upstream credentials
	TMDBAPIKey   string
	GeminiAPIKey string

	// Home region used for "local" discovery and provider availability
	Region string

	// Provider cache TTL in hours
	CacheTTLHours int

	// Subscriber store location
	SubscribersPath string

	// Optional rotated log file; empty means stdout only
	LogPath string
}

// Load reads configuration from environment variables, falling back to
// defaults suitable for a local deployment.
func Load() *Config {
	return &Config{
		Port:            getEnvInt("PORT", 5174),
		AllowedOrigins:  splitCSV(os.Getenv("ALLOWED_ORIGINS")),
		TMDBAPIKey:      strings.TrimSpace(os.Getenv("TMDB_API_KEY")),
		GeminiAPIKey:    strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		Region:          getEnv("TMDB_REGION", "NG"),
		CacheTTLHours:   getEnvInt("CACHE_TTL_HOURS", 24),
		SubscribersPath: getEnv("SUBSCRIBERS_PATH", "data/subscribers.json"),
		LogPath:         os.Getenv("LOG_PATH"),
	}
}

// getEnv returns the value of an environment variable or a default value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func splitCSV(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
