package utils

import (
	"os"

	"github.com/joho/godotenv"
)

// Getenv retrieves the value of the environment variable named by the key.
// If the variable is not present or its value is empty, Getenv returns the fallback string.
func Getenv(key, fallback string) string {
	value := os.Getenv(key)
	if len(value) == 0 {
		return fallback
	}
	return value
}

// LoadDotenv loads a .env file if one exists in the working directory.
// A missing file is not an error; explicit environment variables always win.
func LoadDotenv() {
	if err := godotenv.Load(); err == nil {
		LogDebug("Loaded configuration from .env file")
	}
}
