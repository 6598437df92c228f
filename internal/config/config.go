package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPPort          string
	UpstreamBaseURL   string
	UpstreamTimeout   time.Duration
	RequestTimeout    time.Duration
	RedisAddr         string
	RedisPassword     string
	CandidateCacheTTL time.Duration
	LoginRateLimit    int
	LoginRateWindow   time.Duration
	LogLevel          string
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		UpstreamBaseURL:   getEnv("UPSTREAM_BASE_URL", ""),
		UpstreamTimeout:   getDuration("UPSTREAM_TIMEOUT", 5*time.Second),
		RequestTimeout:    getDuration("REQUEST_TIMEOUT", 10*time.Second),
		RedisAddr:         getEnv("REDIS_ADDR", ""),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		CandidateCacheTTL: getDuration("CANDIDATE_CACHE_TTL", 5*time.Minute),
		LoginRateLimit:    getInt("LOGIN_RATE_LIMIT", 5),
		LoginRateWindow:   getDuration("LOGIN_RATE_WINDOW", time.Minute),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
	}

	if cfg.UpstreamBaseURL == "" {
		log.Fatal("UPSTREAM_BASE_URL is required")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}
