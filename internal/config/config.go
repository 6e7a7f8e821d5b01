package config

import (
	"os"
)

// Config holds application configuration
type Config struct {
	Port      string
	CSVPath   string
	DBPath    string
	JWTSecret string
}

// Load reads configuration from the environment with defaults that need no
// setup: the dataset store lives in memory and nothing is written to disk.
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	csvPath := os.Getenv("CSV_PATH")
	if csvPath == "" {
		csvPath = "./data/routes/us_airline_routes.csv"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = ":memory:"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	return &Config{
		Port:      port,
		CSVPath:   csvPath,
		DBPath:    dbPath,
		JWTSecret: jwtSecret,
	}
}
