package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all environment variables for the storefront.
type Config struct {
	Env        string
	Port       string
	MongoURL   string
	MongoDB    string
	RedisURL   string
	SessionTTL time.Duration
}

// Load reads configuration from the environment, falling back to defaults.
// A .env file is honoured when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Env:        getEnv("ENV", "development"),
		Port:       getEnv("PORT", "8080"),
		MongoURL:   getEnv("MONGO_URL", "mongodb://localhost:27017"),
		MongoDB:    getEnv("MONGO_DB", "online-shop"),
		RedisURL:   getEnv("REDIS_URL", "redis://localhost:6379"),
		SessionTTL: getDuration("SESSION_TTL", 2*24*time.Hour),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
