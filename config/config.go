package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

var (
	PORT        string
	DB_URL      string
	CORS_ORIGIN string

	AI_BASE_URL    string
	AI_API_KEY     string
	AI_CUSTOMER_ID string
	AI_MODEL       string
	AI_TIMEOUT     time.Duration
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	// Empty DB_URL selects the in-memory stores.
	DB_URL = getEnv("DB_URL", "")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:3000")

	AI_BASE_URL = getEnv("AI_BASE_URL", "")
	AI_API_KEY = getEnv("AI_API_KEY", "")
	AI_CUSTOMER_ID = getEnv("AI_CUSTOMER_ID", "")
	AI_MODEL = getEnv("AI_MODEL", "")
	AI_TIMEOUT = getDuration("AI_TIMEOUT", 30*time.Second)
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("Invalid duration in %s: %q", key, value)
	}
	return d
}
