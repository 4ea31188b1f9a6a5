package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Env              string
	HTTPPort         string
	JWTAccessSecret  string
	JWTRefreshSecret string
	JWTIssuer        string
	AccessTTL        time.Duration
	RefreshTTL       time.Duration
	RateRPS          int
	SeedDemo         bool
}

func Load() Config {
	return Config{
		Env:              get("APP_ENV", "dev"),
		HTTPPort:         get("HTTP_PORT", "8080"),
		JWTAccessSecret:  get("JWT_ACCESS_SECRET", "changeme-access"),
		JWTRefreshSecret: get("JWT_REFRESH_SECRET", "changeme-refresh"),
		JWTIssuer:        get("JWT_ISSUER", "nexpay-backend"),
		AccessTTL:        getDuration("JWT_ACCESS_TTL", 15*time.Minute),
		RefreshTTL:       getDuration("JWT_REFRESH_TTL", 7*24*time.Hour),
		RateRPS:          getInt("RATE_RPS", 100),
		SeedDemo:         getBool("APP_SEED_DEMO", true),
	}
}

func get(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
