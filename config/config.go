package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	BackendMemory = "memory"
	BackendMongo  = "mongo"
)

// Config is read once at startup from the environment (and .env, if present).
type Config struct {
	Port    string
	GinMode string

	StoreBackend  string
	MongoURI      string
	MongoDatabase string

	RedisAddress     string
	RedisPassword    string
	SubmitLimitQueue string
	SubmitLimit      int

	CORSAllowedOrigins []string
	LogLevel           string
}

func getEnv(key, def string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Load builds a Config from environment variables.
func Load() *Config {
	return &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "debug"),

		StoreBackend:  strings.ToLower(getEnv("STORE_BACKEND", BackendMemory)),
		MongoURI:      os.Getenv("MONGODB_URI"),
		MongoDatabase: getEnv("MONGODB_DATABASE", "wastetrack"),

		RedisAddress:     os.Getenv("REDIS_ADDRESS"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		SubmitLimitQueue: getEnv("REDIS_QUEUE_FOR_SUBMIT_LIMIT", "submit-limit"),
		SubmitLimit:      getEnvInt("SUBMIT_LIMIT_PER_DAY", 20),

		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}
}
