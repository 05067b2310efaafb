package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Port            string
	UpstreamTimeout time.Duration

	// Blob store backend: memory, redis or postgres.
	KVBackend   string
	RedisAddr   string
	PostgresDSN string

	// Remote collaborators
	AuthURL    string
	CatalogURL string

	// Service-account credential exchanged for the session token after a
	// local sign-in match (demo defaults from the frontend).
	AuthUsername string
	AuthPassword string

	// CORS
	CORSAllowOrigins []string
}

func Load() Config {
	cfg := Config{
		Port:            getenv("PORT", "8080"),
		UpstreamTimeout: parseDuration(getenv("UPSTREAM_TIMEOUT", "10s"), 10*time.Second),

		KVBackend:   getenv("KV_BACKEND", "memory"),
		RedisAddr:   getenv("REDIS_ADDR", "localhost:6379"),
		PostgresDSN: getenv("POSTGRES_DSN", ""),

		AuthURL:    getenv("AUTH_URL", "https://apis.ccbp.in"),
		CatalogURL: getenv("CATALOG_URL", "https://apis.ccbp.in"),

		AuthUsername: getenv("AUTH_USERNAME", "rahul"),
		AuthPassword: getenv("AUTH_PASSWORD", "rahul@2021"),

		CORSAllowOrigins: splitCSV(getenv("CORS_ALLOW_ORIGINS", "*")),
	}

	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
