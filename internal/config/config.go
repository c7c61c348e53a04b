package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string

	GeminiAPIKey string
	GeminiModel  string

	NewsBaseURL     string
	NewsHTTPTimeout time.Duration

	// StoreDriver is "memory" or "postgres"
	StoreDriver string
	DatabaseDSN string

	JobBoardsFile string

	AIRateLimitRPS   float64
	AIRateLimitBurst int

	CORSAllowOrigins []string
}

// Load reads the configuration from the environment. Call godotenv.Load first
// if values should come from a .env file.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		GinMode:       getEnv("GIN_MODE", "release"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		NewsBaseURL:   getEnv("NEWS_API_BASE_URL", "https://newsapi.org"),
		StoreDriver:   strings.ToLower(getEnv("STORE_DRIVER", "memory")),
		DatabaseDSN:   os.Getenv("DATABASE_DSN"),
		JobBoardsFile: os.Getenv("JOB_BOARDS_FILE"),
	}

	var err error
	if cfg.NewsHTTPTimeout, err = time.ParseDuration(getEnv("NEWS_HTTP_TIMEOUT", "10s")); err != nil {
		return nil, fmt.Errorf("NEWS_HTTP_TIMEOUT: %w", err)
	}
	if cfg.AIRateLimitRPS, err = strconv.ParseFloat(getEnv("AI_RATE_LIMIT_RPS", "2"), 64); err != nil {
		return nil, fmt.Errorf("AI_RATE_LIMIT_RPS: %w", err)
	}
	if cfg.AIRateLimitBurst, err = strconv.Atoi(getEnv("AI_RATE_LIMIT_BURST", "5")); err != nil {
		return nil, fmt.Errorf("AI_RATE_LIMIT_BURST: %w", err)
	}

	for _, origin := range strings.Split(getEnv("CORS_ALLOW_ORIGINS", "*"), ",") {
		if o := strings.TrimSpace(origin); o != "" {
			cfg.CORSAllowOrigins = append(cfg.CORSAllowOrigins, o)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.StoreDriver {
	case "memory":
	case "postgres":
		if c.DatabaseDSN == "" {
			return fmt.Errorf("DATABASE_DSN is required when STORE_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if c.NewsHTTPTimeout <= 0 {
		return fmt.Errorf("NEWS_HTTP_TIMEOUT must be positive")
	}
	if c.AIRateLimitRPS <= 0 || c.AIRateLimitBurst <= 0 {
		return fmt.Errorf("AI rate limit must be positive")
	}
	return nil
}

// AllowAllOrigins reports whether CORS should accept any origin: a lone "*"
// or no origins at all.
func (c *Config) AllowAllOrigins() bool {
	return len(c.CORSAllowOrigins) == 0 || (len(c.CORSAllowOrigins) == 1 && c.CORSAllowOrigins[0] == "*")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
