package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Data     DataConfig
	Reload   ReloadConfig
	CORS     CORSConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// DataConfig holds the locations of the raw export files.
type DataConfig struct {
	// Dir contains the bank export and the vacations export.
	Dir string
	// PurchasesDir contains one CSV per year of online purchases.
	PurchasesDir string
	// FirstPurchaseYear is the earliest year for which a purchases file is
	// looked up; the range extends through next year.
	FirstPurchaseYear int
}

// ReloadConfig controls the periodic re-ingestion of the export files.
type ReloadConfig struct {
	// Schedule is a cron expression; empty disables the reload job.
	Schedule string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	firstYear, err := strconv.Atoi(getEnv("FIRST_PURCHASE_YEAR", "2017"))
	if err != nil {
		return nil, fmt.Errorf("invalid FIRST_PURCHASE_YEAR: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8000"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/finanzas.db"),
		},
		Data: DataConfig{
			Dir:               getEnv("DATA_DIR", "."),
			PurchasesDir:      getEnv("PURCHASES_DIR", "./Compras-online"),
			FirstPurchaseYear: firstYear,
		},
		Reload: ReloadConfig{
			Schedule: getEnv("RELOAD_SCHEDULE", ""),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
