package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Session store backends for the admin dashboard.
const (
	SessionStoreRedis  = "redis"
	SessionStoreMemory = "memory"
)

// Config holds all application configuration.
type Config struct {
	ServerPort string
	GinMode    string
	LogLevel   string
	LogFormat  string

	// APIBaseURL is the remote API every form and admin call is relayed to.
	APIBaseURL string
	APITimeout time.Duration

	RedisURL      string
	SessionStore  string
	SessionSecret string
	SessionTTL    time.Duration
	CookieSecure  bool

	RateLimitPerMinute int
	// AdminTokenFile is where cmd/admin keeps the bearer token. Empty means the
	// per-user config directory.
	AdminTokenFile string

	// AllowedOrigins controls HTTP CORS.
	// Empty slice means all origins are permitted (dev default).
	AllowedOrigins []string
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // .env is optional

	return &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		GinMode:            getEnv("GIN_MODE", "debug"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "pretty"),
		APIBaseURL:         strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:5000"), "/"),
		APITimeout:         getEnvDuration("API_TIMEOUT", 15*time.Second),
		RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379/0"),
		SessionStore:       getEnv("SESSION_STORE", SessionStoreRedis),
		SessionSecret:      getEnv("SESSION_SECRET", "change-this-to-a-secure-random-string"),
		SessionTTL:         time.Duration(getEnvInt("SESSION_TTL_HOURS", 12)) * time.Hour,
		CookieSecure:       getEnv("COOKIE_SECURE", "false") == "true",
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
		AdminTokenFile:     getEnv("ADMIN_TOKEN_FILE", ""),
		AllowedOrigins:     parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// parseOrigins splits a comma-separated origins string into a trimmed slice.
// Returns nil (allow-all) if the input is empty.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
