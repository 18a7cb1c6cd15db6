package config

import (
	"os"
	"strconv"
	"time"
)

var (
	// ServerPort is the port the HTTP server listens on.
	ServerPort = getEnv("PORT", "8000")

	// BaseURL is the public origin used for absolute links (sitemap).
	BaseURL = getEnv("BASE_URL", "https://journal.example.com")

	ServerReadTimeout  = getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second)
	ServerWriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second)

	// Global rate limit, per client IP
	ServerRateLimitMax = getEnvInt("RATE_LIMIT_MAX", 60)
	ServerRateLimitExp = getEnvDuration("RATE_LIMIT_EXPIRATION", time.Minute)

	// PageCacheTTL is how long a rendered page stays in the page cache.
	PageCacheTTL = getEnvDuration("PAGE_CACHE_TTL", time.Hour)

	TailwindCSSURL = getEnv("TAILWIND_CSS_URL", "https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css")
	HTMXURL        = getEnv("HTMX_URL", "https://unpkg.com/htmx.org@1.9.10")
)

const (
	// DisplayModeCookie holds the visitor's light/dark preference.
	DisplayModeCookie = "display_mode"

	DisplayModeCookieMaxAge = 365 * 24 * 60 * 60 // 1 year
)

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
