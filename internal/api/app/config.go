package app

import (
	"os"
	"strconv"
	"time"

	"github.com/clipstack/clipstack/pkg/jwtx"
)

type Config struct {
	Issuer              string        // Issuer claim for tokens (default: clipstack)
	AccessTokenSecret   string        // Required: HS256 secret for access tokens
	RefreshTokenSecret  string        // Required: HS256 secret for refresh tokens
	AccessTokenTTL      time.Duration // Optional: access token lifetime (default: 15m)
	RefreshTokenTTL     time.Duration // Optional: refresh token lifetime (default: 7d)
	DatabaseFile        string        // Optional: path to SQLite database file (default: ./clipstack.db)
	PepperFile          string        // Optional: path to password hashing pepper file (default: ./pepper)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		Issuer:              getEnvOrDefault("CLIPSTACK_ISSUER", "clipstack"),
		AccessTokenSecret:   os.Getenv("CLIPSTACK_ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret:  os.Getenv("CLIPSTACK_REFRESH_TOKEN_SECRET"),
		AccessTokenTTL:      getEnvDurationOrDefault("CLIPSTACK_ACCESS_TOKEN_TTL", jwtx.DefaultAccessTokenTTL),
		RefreshTokenTTL:     getEnvDurationOrDefault("CLIPSTACK_REFRESH_TOKEN_TTL", jwtx.DefaultRefreshTokenTTL),
		DatabaseFile:        getEnvOrDefault("CLIPSTACK_DATABASE_FILE", "clipstack.db"),
		PepperFile:          getEnvOrDefault("CLIPSTACK_PEPPER_FILE", "pepper"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
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
