package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Port   string
	Env    string
	DBPath string
}

// Load reads configuration from environment variables, falling back to
// development defaults. A .env file is loaded first if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:   getEnv("PORT", "8008"),
		Env:    getEnv("ENV", "development"),
		DBPath: getEnv("DB_PATH", "message-board.db"),
	}
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
