package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// External metadata API
	TMDBAPIKey  string
	TMDBBaseURL string

	// Database Configuration
	MongoURI string
	DBName   string

	// Security Configuration
	JWTSecret string
	JWTTTL    time.Duration

	// Server Configuration
	Port string
	Env  string
}

// LoadConfig loads the configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load environment file based on GO_ENV
	env := getEnvOrDefault("GO_ENV", "development")
	envFile := filepath.Join("environments", fmt.Sprintf(".env.%s", env))

	// The env file is optional; deployed environments inject variables directly
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading env file %s: %v", envFile, err)
	}

	cfg := &Config{
		// External metadata API
		TMDBAPIKey:  getEnvOrDefault("TMDB_API_KEY", ""),
		TMDBBaseURL: getEnvOrDefault("TMDB_BASE_URL", "https://api.themoviedb.org/3"),

		// Database Configuration
		MongoURI: getEnvOrDefault("MONGO_URI", ""),
		DBName:   getEnvOrDefault("DB_NAME", "moviediscoverydb"),

		// Security Configuration
		JWTSecret: getEnvOrDefault("JWT_SECRET", ""),
		JWTTTL:    time.Duration(getEnvIntOrDefault("JWT_TTL_HOURS", 24)) * time.Hour,

		// Server Configuration
		Port: getEnvOrDefault("PORT", "8080"),
		Env:  env,
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
