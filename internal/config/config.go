// Package config loads apothecary configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds runtime defaults. Command-line flags override these.
type Config struct {
	Directory     string // directory scanned for source documents
	Output        string // JSON artifact path
	ContextWindow int    // context radius in bytes around a herb mention
}

// Load reads configuration from APOTHECARY_* environment variables, with a
// .env file honored when present, and validates the result.
func Load() (*Config, error) {
	// Missing .env is fine; env vars still apply.
	_ = godotenv.Load()

	cfg := &Config{
		Directory:     getEnvWithDefault("APOTHECARY_DIRECTORY", "."),
		Output:        getEnvWithDefault("APOTHECARY_OUTPUT", "extracted_herbs.json"),
		ContextWindow: getIntEnvWithDefault("APOTHECARY_CONTEXT_WINDOW", 500),
	}

	if cfg.ContextWindow <= 0 {
		return nil, fmt.Errorf("invalid APOTHECARY_CONTEXT_WINDOW: must be positive, got %d", cfg.ContextWindow)
	}
	if cfg.Output == "" {
		return nil, fmt.Errorf("invalid APOTHECARY_OUTPUT: must not be empty")
	}

	return cfg, nil
}

func getEnvWithDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getIntEnvWithDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
