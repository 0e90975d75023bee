package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

const devJWTSecret = "dev-secret-change-in-production"

type Config struct {
	Port        string
	Env         string
	DatabaseDSN string
	JWTSecret   string
	JWTExpiry   time.Duration

	// MinPasswordScore is the lowest strength score accepted at registration.
	MinPasswordScore int
	// GenerateLength is used when a caller does not ask for a length.
	GenerateLength int

	RateLimitRPS   float64
	RateLimitBurst int
}

func Load() Config {
	cfg := Config{
		Port:             getEnv("PORT", "8080"),
		Env:              getEnv("ENV", "development"),
		DatabaseDSN:      getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/passcheck?parseTime=true"),
		JWTSecret:        getEnv("JWT_SECRET", devJWTSecret),
		JWTExpiry:        getEnvDuration("JWT_EXPIRY", 24*time.Hour),
		MinPasswordScore: getEnvInt("MIN_PASSWORD_SCORE", 6),
		GenerateLength:   getEnvInt("GENERATE_LENGTH", 12),
		RateLimitRPS:     getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:   getEnvInt("RATE_LIMIT_BURST", 10),
	}

	if cfg.Env == "production" && cfg.JWTSecret == devJWTSecret {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
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
		slog.Warn("invalid integer in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("invalid number in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return f
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}
