package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/goliatone/go-tenant-api/cache"
)

// Config holds the server configuration, loaded from environment variables
// with an optional .env file.
type Config struct {
	Addr     string
	DBDriver string
	DBDSN    string
	Seed     bool
	Cache    cache.Config
}

// Load reads the configuration from the environment. A missing .env file is
// not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Addr:     getEnv("ADDR", ":8080"),
		DBDriver: getEnv("DB_DRIVER", "sqlite3"),
		DBDSN:    getEnv("DB_DSN", "file:tenantapi.db?_fk=1"),
		Seed:     getEnvBool("SEED", true),
		Cache:    cache.DefaultConfig(),
	}

	cfg.Cache.Capacity = getEnvInt("CACHE_CAPACITY", cfg.Cache.Capacity)
	cfg.Cache.NumShards = getEnvInt("CACHE_SHARDS", cfg.Cache.NumShards)
	cfg.Cache.TTL = getEnvDuration("CACHE_TTL", cfg.Cache.TTL)

	if err := cfg.Cache.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
