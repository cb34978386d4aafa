package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all service configuration, fixed at startup.
type Config struct {
	Port              string
	DatabaseDSN       string
	RedisAddr         string
	UploadDir         string
	AllowedExtensions []string
	SessionSecret     string
	SessionTTL        time.Duration
	ClassifierAddr    string
	ModelID           string
	ModelDevice       string
}

// Load reads configuration from the environment, falling back to
// development defaults. A .env file is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:              getEnv("PORT", "8080"),
		DatabaseDSN:       getEnv("DATABASE_DSN", "host=postgres user=postgres password=postgres dbname=photoproof port=5432 sslmode=disable"),
		RedisAddr:         getEnv("REDIS_ADDR", "redis:6379"),
		UploadDir:         getEnv("UPLOAD_DIR", "static/uploads"),
		AllowedExtensions: splitCSV(getEnv("ALLOWED_EXTENSIONS", "png,jpg,jpeg,webp")),
		SessionSecret:     getEnv("SESSION_SECRET", "dev-secret"),
		SessionTTL:        time.Duration(getEnvAsInt("SESSION_TTL_HOURS", 24)) * time.Hour,
		ClassifierAddr:    getEnv("CLASSIFIER_ADDR", "classifier:50051"),
		ModelID:           getEnv("MODEL_ID", "deepfake-detector-v2"),
		ModelDevice:       getEnv("MODEL_DEVICE", "cpu"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.ToLower(strings.TrimSpace(p)); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
