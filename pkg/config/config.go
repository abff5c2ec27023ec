package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Model    ModelConfig
}

// ServerConfig holds server configuration.
type ServerConfig struct {
	Port         string
	ReadTimeout  int
	WriteTimeout int
	Debug        bool
}

// DatabaseConfig holds database configuration.
type DatabaseConfig struct {
	Path        string
	MaxIdleConn int
	MaxOpenConn int
}

// ModelConfig holds the suitability model artifact location.
type ModelConfig struct {
	Path string
}

// Load loads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getEnvInt("READ_TIMEOUT", 15),
			WriteTimeout: getEnvInt("WRITE_TIMEOUT", 15),
			Debug:        getEnvBool("DEBUG", false),
		},
		Database: DatabaseConfig{
			Path:        getEnv("DATABASE_PATH", "diet_planner.db"),
			MaxIdleConn: getEnvInt("DB_MAX_IDLE_CONN", 10),
			MaxOpenConn: getEnvInt("DB_MAX_OPEN_CONN", 100),
		},
		Model: ModelConfig{
			Path: getEnv("MODEL_PATH", "suitability_model.json"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
