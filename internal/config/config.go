package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration, loaded from the environment
type Config struct {
	Port         string
	MongoURI     string
	MongoDB      string
	MongoTimeout time.Duration

	JWTSecret   string
	JWTDuration time.Duration

	LogLevel    string
	Environment string
}

// Load reads configuration from .env (when present) and the environment
func Load() (*Config, error) {
	// A missing .env file is fine in production
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		MongoURI:     getEnv("MONGO_URI", ""),
		MongoDB:      getEnv("MONGO_DATABASE", "rifq"),
		MongoTimeout: 30 * time.Second,
		JWTSecret:    getEnv("JWT_SECRET", ""),
		JWTDuration:  24 * time.Hour,
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		Environment:  getEnv("ENVIRONMENT", "development"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	return cfg, nil
}

// UseMongo reports whether a Mongo connection is configured; without one the
// server falls back to the in-memory store.
func (c *Config) UseMongo() bool {
	return c.MongoURI != ""
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
