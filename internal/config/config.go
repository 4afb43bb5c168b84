package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// placeholderAPIKey is the shipped dummy credential; it selects demo mode
// the same way a missing key does.
const placeholderAPIKey = "demo_key_replace_with_real_key"

// Config holds all configuration for the movie explorer service.
type Config struct {
	TMDB    TMDBConfig
	Redis   RedisConfig
	DataDir string
	Port    string
}

// TMDBConfig holds TMDB API configuration.
type TMDBConfig struct {
	APIKey  string
	BaseURL string
}

// Configured reports whether a real provider credential is present.
func (t TMDBConfig) Configured() bool {
	return t.APIKey != "" && t.APIKey != placeholderAPIKey
}

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	cfg := &Config{
		TMDB: TMDBConfig{
			APIKey:  getEnv("TMDB_API_KEY", ""),
			BaseURL: getEnv("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		DataDir: getEnv("DATA_DIR", "data"),
		Port:    getEnv("SERVER_PORT", "8080"),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
