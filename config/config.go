package config

import (
	"github.com/joho/godotenv"
	"log/slog"
	"os"
)

type Config struct {
	ConnectionString string
	ContainerName    string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn(".env file not found, using environment variables only")
	}

	config := &Config{
		ConnectionString: getEnv("AZURE_STORAGE_CONNECTION_STRING", ""),
		ContainerName:    getEnv("AZURE_STORAGE_CONTAINER", ""),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
