package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	IterableAPIKey string
	IterableAPIURL string
	AuthUser       string
	AuthPassword   string
	DefaultBrand   string
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file")
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		IterableAPIKey: getEnv("ITERABLE_API_KEY", ""),
		IterableAPIURL: getEnv("ITERABLE_API_URL", "https://api.iterable.com/api"),
		AuthUser:       getEnv("AUTH_USER", "demo"),
		AuthPassword:   getEnv("AUTH_PASSWORD", "demo123"),
		DefaultBrand:   getEnv("DEFAULT_BRAND", "access-hire"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
