// internal/config/config.go
package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config carries everything the process needs from the environment. It is
// loaded once in main and injected; nothing reads ambient env state at
// call time.
type Config struct {
	Addr            string
	ShopifyURL      string
	ShopifyToken    string
	UpstreamTimeout time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		Addr:            getenv("ADDR", ":8080"),
		ShopifyURL:      os.Getenv("SHOPIFY_URL"),
		ShopifyToken:    os.Getenv("SHOPIFY_TOKEN"),
		UpstreamTimeout: 10 * time.Second,
	}
	if cfg.ShopifyURL == "" {
		return nil, errors.New("SHOPIFY_URL is required")
	}
	if cfg.ShopifyToken == "" {
		return nil, errors.New("SHOPIFY_TOKEN is required")
	}
	if raw := os.Getenv("UPSTREAM_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, errors.Wrap(err, "parsing UPSTREAM_TIMEOUT")
		}
		cfg.UpstreamTimeout = d
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
