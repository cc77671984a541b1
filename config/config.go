package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file found, using environment variables")
	}
}

// Config returns the value of the given environment key.
func Config(key string) string {
	return os.Getenv(key)
}

// ConfigDefault returns the value of the given key or fallback when unset.
func ConfigDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
