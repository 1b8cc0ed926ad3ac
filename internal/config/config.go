package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig
	Dataset     DatasetConfig
	HuggingFace HuggingFaceConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
	AllowedMethods string
	AllowedHeaders string
}

// DatasetConfig holds the building dataset configuration
type DatasetConfig struct {
	// Path to the GeoJSON feature collection read once at startup.
	Path string
}

// HuggingFaceConfig holds HuggingFace Inference API configuration
type HuggingFaceConfig struct {
	APIKey string
	APIURL string
	// Timeout for a single inference call, in seconds.
	Timeout int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			AllowedMethods: getEnv("CORS_ALLOWED_METHODS", "GET,POST,PUT,DELETE,OPTIONS"),
			AllowedHeaders: getEnv("CORS_ALLOWED_HEADERS", "Content-Type,Authorization"),
		},
		Dataset: DatasetConfig{
			Path: getEnv("GEOJSON_PATH", "Buildings_20250414.geojson"),
		},
		HuggingFace: HuggingFaceConfig{
			APIKey:  getEnv("HUGGINGFACE_API_KEY", ""),
			APIURL:  getEnv("HUGGINGFACE_API_URL", "https://api-inference.huggingface.co/models/mistralai/Mistral-7B-Instruct-v0.1"),
			Timeout: getEnvAsInt("HUGGINGFACE_TIMEOUT", 30),
		},
	}

	return cfg, nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}
