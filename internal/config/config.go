package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	Env  string
	Port string

	// Base URL of the storefront REST API this dashboard administers.
	APIBaseURL string

	SessionSecret []byte
	SessionTTL    time.Duration
	SecureCookies bool
}

func Load() (Config, error) {
	cfg := Config{
		Env:           getEnv("APP_ENV", "dev"),
		Port:          getEnv("APP_PORT", "8080"),
		APIBaseURL:    os.Getenv("API_BASE_URL"),
		SecureCookies: os.Getenv("SECURE_COOKIES") == "1",
		SessionTTL:    12 * time.Hour,
	}

	if cfg.APIBaseURL == "" {
		return Config{}, fmt.Errorf("API_BASE_URL environment variable is required")
	}

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		if cfg.Env == "prod" {
			return Config{}, fmt.Errorf("SESSION_SECRET is required in prod")
		}
		secret = "dev-only-insecure-secret"
	}
	cfg.SessionSecret = []byte(secret)

	if ttl := os.Getenv("SESSION_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SESSION_TTL: %w", err)
		}
		cfg.SessionTTL = d
	}

	return cfg, nil
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
