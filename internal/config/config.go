package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/kallias/watchboard/internal/domain"
)

// Config holds application configuration
type Config struct {
	DatabasePath     string
	YahooBaseURL     string
	LogLevel         string
	Port             int
	DevMode          bool
	DefaultBenchmark string
	DefaultPeriod    string
	RiskFreeRate     float64
	CacheTTL         time.Duration
	CORSOrigins      string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnvAsInt("PORT", 8080),
		DevMode:          getEnvAsBool("DEV_MODE", false),
		DatabasePath:     getEnv("DATABASE_PATH", "./data/watchboard.db"),
		YahooBaseURL:     getEnv("YAHOO_BASE_URL", "https://query1.finance.yahoo.com"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		DefaultBenchmark: getEnv("DEFAULT_BENCHMARK", "^GSPC"),
		DefaultPeriod:    getEnv("DEFAULT_PERIOD", "1y"),
		RiskFreeRate:     getEnvAsFloat("RISK_FREE_RATE", 0.03),
		CacheTTL:         time.Duration(getEnvAsInt("CACHE_TTL_MINUTES", 15)) * time.Minute,
		CORSOrigins:      getEnv("CORS_ORIGINS", "*"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("DATABASE_PATH is required")
	}
	if c.YahooBaseURL == "" {
		return fmt.Errorf("YAHOO_BASE_URL is required")
	}
	if c.RiskFreeRate < 0 || c.RiskFreeRate >= 1 {
		return fmt.Errorf("RISK_FREE_RATE must be a decimal in [0, 1), got %v", c.RiskFreeRate)
	}
	if !domain.Period(c.DefaultPeriod).IsValid() {
		return fmt.Errorf("DEFAULT_PERIOD must be one of 1y, 3y, 5y, got %q", c.DefaultPeriod)
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
