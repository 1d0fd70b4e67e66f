package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"
)

const (
	defaultJWTSecret = "dev-secret-change-in-production"

	// DefaultDataDir is where exports are saved when DATA_DIR is unset.
	DefaultDataDir = "./exports"
)

var ErrDefaultSecret = errors.New("JWT_SECRET must be set in production environment")

type Config struct {
	Port              string
	Env               string
	DatabaseDSN       string
	JWTSecret         string
	JWTExpiry         time.Duration
	AdminPasswordHash string
	RateLimitRPS      float64
	RateLimitBurst    int
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		Env:               getEnv("ENV", "development"),
		DatabaseDSN:       getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/passgen?parseTime=true"),
		JWTSecret:         getEnv("JWT_SECRET", defaultJWTSecret),
		JWTExpiry:         getDuration("JWT_EXPIRY", 24*time.Hour),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		RateLimitRPS:      getFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:    getInt("RATE_LIMIT_BURST", 20),
	}

	if cfg.Env == "production" && cfg.JWTSecret == defaultJWTSecret {
		return cfg, ErrDefaultSecret
	}

	return cfg, nil
}

// DataDir returns DATA_DIR, or DefaultDataDir when it is unset.
func DataDir() string {
	return getEnv("DATA_DIR", DefaultDataDir)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		slog.Warn("invalid number, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return f
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid integer, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}
