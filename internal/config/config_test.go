package config

import (
	"testing"
	"time"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "key-123")
	t.Setenv("GEMINI_BASE_URL", "http://localhost:9999")
	t.Setenv("CREATIVES_FONTS_DIR", "/opt/fonts")
	t.Setenv("CREATIVES_REQUEST_TIMEOUT_SECONDS", "15")

	cfg := FromEnv()
	if cfg.GeminiAPIKey != "key-123" {
		t.Errorf("GeminiAPIKey = %q", cfg.GeminiAPIKey)
	}
	if cfg.GeminiBaseURL != "http://localhost:9999" {
		t.Errorf("GeminiBaseURL = %q", cfg.GeminiBaseURL)
	}
	if cfg.FontsDir != "/opt/fonts" {
		t.Errorf("FontsDir = %q", cfg.FontsDir)
	}
	if cfg.RequestTimeout != 15*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.RequestTimeout)
	}
}

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("CREATIVES_REQUEST_TIMEOUT_SECONDS", "")

	cfg := FromEnv()
	if cfg.GeminiAPIKey != "" {
		t.Errorf("GeminiAPIKey = %q, want empty", cfg.GeminiAPIKey)
	}
	if cfg.RequestTimeout != DefaultRequestTimeout {
		t.Errorf("RequestTimeout = %v, want default", cfg.RequestTimeout)
	}
}

func TestFromEnvIgnoresBadTimeout(t *testing.T) {
	for _, v := range []string{"abc", "-5", "0"} {
		t.Setenv("CREATIVES_REQUEST_TIMEOUT_SECONDS", v)
		if got := FromEnv().RequestTimeout; got != DefaultRequestTimeout {
			t.Errorf("timeout %q: got %v, want default", v, got)
		}
	}
}
