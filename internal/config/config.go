// Package config loads runtime configuration from the environment.
//
// All settings are optional. A missing GEMINI_API_KEY disables real
// generation; the CLI falls back to the placeholder generator and campaign
// messaging. An .env file in the working directory is honored when main
// loads it via godotenv before calling FromEnv.
package config

import (
	"os"
	"strconv"
	"time"
)

// DefaultRequestTimeout bounds one generation API call.
const DefaultRequestTimeout = 120 * time.Second

// Config holds environment-derived settings.
type Config struct {
	// GeminiAPIKey authenticates generation API calls. Empty disables them.
	GeminiAPIKey string

	// GeminiBaseURL overrides the API endpoint, mostly for testing.
	GeminiBaseURL string

	// FontsDir points at bundled fonts used before system fallbacks.
	FontsDir string

	// RequestTimeout bounds one generation API call.
	RequestTimeout time.Duration
}

// FromEnv reads configuration from environment variables.
func FromEnv() Config {
	cfg := Config{
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL:  os.Getenv("GEMINI_BASE_URL"),
		FontsDir:       os.Getenv("CREATIVES_FONTS_DIR"),
		RequestTimeout: DefaultRequestTimeout,
	}
	if s := os.Getenv("CREATIVES_REQUEST_TIMEOUT_SECONDS"); s != "" {
		if secs, err := strconv.Atoi(s); err == nil && secs > 0 {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
	return cfg
}
