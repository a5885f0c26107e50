package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port string

	// Env is "dev" (default) or "prod". When "prod", HSTS is sent on every response.
	Env string

	// TLSCertFile and TLSKeyFile enable HTTPS when both are set.
	// When empty, the API listens with plain HTTP.
	TLSCertFile string
	TLSKeyFile  string

	// LogFormat is "text" (default) or "json" for structured logging.
	LogFormat string

	// CORSAllowedOrigins is a list of origins allowed for CORS (e.g. https://app.example.com, http://localhost:3000).
	// Set via CORS_ALLOWED_ORIGINS (comma-separated). When empty, no CORS headers are sent (same-origin only).
	CORSAllowedOrigins []string

	// DefaultOccurrences is how many occurrences are listed when a request does not ask (default 5).
	DefaultOccurrences int
	// MaxOccurrences caps the count a request may ask for (default 50).
	MaxOccurrences int

	// PresetsFile is an optional YAML file replacing the built-in presets.
	PresetsFile string

	// RateLimitPerMinute and RateLimitBurst bound requests per client IP.
	RateLimitPerMinute int
	RateLimitBurst     int

	// TrustedProxies lists IPs or CIDRs (e.g. 127.0.0.1, 10.0.0.0/8) whose
	// X-Forwarded-For is used to find the client IP. Set via TRUSTED_PROXIES
	// (comma-separated). When empty, the client is always RemoteAddr.
	TrustedProxies []string

	// MaxBodyBytes limits POST bodies (default 64 KiB).
	MaxBodyBytes int
}

func Load() Config {
	cfg := Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "dev"),

		// Optional TLS configuration for HTTPS.
		TLSCertFile: getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:  getEnv("TLS_KEY_FILE", ""),

		LogFormat: getEnv("LOG_FORMAT", "text"),

		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "")),

		DefaultOccurrences: getEnvInt("DEFAULT_OCCURRENCES", 5),
		MaxOccurrences:     getEnvInt("MAX_OCCURRENCES", 50),

		PresetsFile: getEnv("PRESETS_FILE", ""),

		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 20),
		TrustedProxies:     splitList(getEnv("TRUSTED_PROXIES", "")),

		MaxBodyBytes: getEnvInt("MAX_BODY_BYTES", 64<<10),
	}
	if cfg.DefaultOccurrences > cfg.MaxOccurrences {
		cfg.DefaultOccurrences = cfg.MaxOccurrences
	}
	return cfg
}

// IsProd reports whether Env is "prod".
func (c Config) IsProd() bool { return strings.EqualFold(c.Env, "prod") }

// splitList splits a comma-separated list and trims spaces. Empty strings are omitted.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if o := strings.TrimSpace(p); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
