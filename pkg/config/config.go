// Package config loads process configuration from the environment, failing
// closed on any missing or malformed secret rather than falling back to an
// insecure default.
package config

import (
	"errors"
	"os"
	"strconv"
)

type Config struct {
	SessionSecret string
	Port          string
	Jobs          int
}

// Load loads configuration from environment variables.
// Returns an error if SESSION_SECRET is not set, is the placeholder value,
// or is too short to be a usable HMAC key.
func Load() (*Config, error) {
	secret := os.Getenv("SESSION_SECRET")

	if secret == "" {
		return nil, errors.New("SECURITY ERROR: SESSION_SECRET environment variable is required but not set")
	}

	if secret == "changeme" {
		return nil, errors.New("SECURITY ERROR: SESSION_SECRET cannot be 'changeme' - please set a secure secret")
	}

	if len(secret) < 32 {
		return nil, errors.New("SECURITY ERROR: SESSION_SECRET must be at least 32 characters long")
	}

	jobs := 0
	if v := os.Getenv("WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			jobs = n
		}
	}

	return &Config{
		SessionSecret: secret,
		Port:          getEnv("PORT", "8080"),
		Jobs:          jobs,
	}, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
