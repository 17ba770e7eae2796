package main

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the server configuration loaded from environment variables.
type Config struct {
	// OrganizationURL is the Azure DevOps organization base URL,
	// e.g. https://dev.azure.com/myorg.
	OrganizationURL string
	// AccessToken is a personal access token with extension data access.
	AccessToken string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// LoadConfig loads configuration from environment variables.
// It loads a .env file if present (silent fail if not found).
//
// Missing values are not an error here: the server must stay up and report
// configuration problems per call, as tool error results.
func LoadConfig() *Config {
	godotenv.Load()

	return &Config{
		OrganizationURL: os.Getenv("AZDO_ORG_URL"),
		AccessToken:     os.Getenv("AZDO_PAT"),
		LogLevel:        getEnvOrDefault("EXTDATA_LOG_LEVEL", "info"),
	}
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
