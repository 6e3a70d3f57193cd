package cli

import (
	"os"
	"time"
)

type Config struct {
	Instance     string // Required for login: base URL of the target instance
	Session      string // Session name to operate on (default: "default")
	DatabaseFile string // Path to SQLite session database (default: ./masto.db)
	ClientName   string // Application name sent during registration
	Website      string // Optional: application website sent during registration

	Env         string        // Environment (dev, staging, prod) (default: dev)
	LogLevel    string        // Log level (debug, info, warn, error) (default: info)
	LogFormat   string        // Log format (json, text) (default: text)
	HTTPTimeout time.Duration // Per-request timeout (default: 30s)
}

func LoadConfig() Config {
	return Config{
		Instance:     os.Getenv("MASTO_INSTANCE"),
		Session:      getEnvOrDefault("MASTO_SESSION", "default"),
		DatabaseFile: getEnvOrDefault("MASTO_DATABASE_FILE", "masto.db"),
		ClientName:   getEnvOrDefault("MASTO_CLIENT_NAME", "mastoctl"),
		Website:      os.Getenv("MASTO_WEBSITE"),
		Env:          getEnvOrDefault("ENV", "dev"),
		LogLevel:     getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:    getEnvOrDefault("LOG_FORMAT", "text"),
		HTTPTimeout:  getEnvDurationOrDefault("MASTO_HTTP_TIMEOUT", 30*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
