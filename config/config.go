package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "http://127.0.0.1:8000/api"

type Config struct {
	// BaseURL is the REST backend root, e.g. https://crm.example.com/api.
	BaseURL string
	// HTTPTimeout bounds every gateway request.
	HTTPTimeout time.Duration
	// ListDebounce is the coalescing window for list filter changes.
	ListDebounce time.Duration
	// TokenPath is the file holding the persisted access/refresh token pair.
	TokenPath string
}

func Load() *Config {
	cfg := &Config{
		BaseURL:      strings.TrimRight(getEnv("PULSE_API_BASE_URL", defaultBaseURL), "/"),
		HTTPTimeout:  time.Duration(getEnvInt("PULSE_HTTP_TIMEOUT_SECONDS", 30)) * time.Second,
		ListDebounce: time.Duration(getEnvInt("PULSE_LIST_DEBOUNCE_MS", 350)) * time.Millisecond,
		TokenPath:    getEnv("PULSE_TOKEN_PATH", defaultTokenPath()),
	}
	return cfg
}

func defaultTokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "ecom-pulse-tokens.json"
	}
	return filepath.Join(home, ".ecom-pulse", "tokens.json")
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
