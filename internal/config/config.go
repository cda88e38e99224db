package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type Config struct {
	Server struct {
		Port         string
		ReadTimeout  time.Duration
		WriteTimeout time.Duration
		LogLevel     string
	}

	MetAPI struct {
		LocationForecastURL string
		OceanForecastURL    string
		AlertsURL           string
		KartverketURL       string
		UserAgent           string
		APIKey              string
		RateLimit           float64 // requests per second, per upstream
		RateBurst           int
		Timeout             time.Duration
	}

	Session struct {
		TTL             time.Duration
		MaxSessions     int
		PrefetchTimeout time.Duration
	}

	Scheduler struct {
		SweepSchedule string
	}

	Filter struct {
		DefaultMaxDistanceKm float64
		DefaultTempMin       int
		DefaultTempMax       int
		FetchConcurrency     int
	}

	CircuitBreaker struct {
		Threshold int
		Timeout   time.Duration
	}

	Retry struct {
		MaxRetries int
		Delay      time.Duration
		Multiplier float64
	}
}

func LoadConfig() (*Config, error) {
	// Load .env file if exists
	if err := godotenv.Load(); err != nil {
		zap.L().Info("No .env file found, using environment variables")
	}

	cfg := &Config{}

	// Server configuration
	cfg.Server.Port = getEnv("FIBER_PORT", "8080")
	cfg.Server.ReadTimeout = parseDuration(getEnv("FIBER_READ_TIMEOUT", "10s"))
	cfg.Server.WriteTimeout = parseDuration(getEnv("FIBER_WRITE_TIMEOUT", "60s"))
	cfg.Server.LogLevel = getEnv("LOG_LEVEL", "info")

	// MET Norway and Kartverket
	cfg.MetAPI.LocationForecastURL = getEnv("MET_LOCATIONFORECAST_URL", "https://api.met.no/weatherapi/locationforecast/2.0")
	cfg.MetAPI.OceanForecastURL = getEnv("MET_OCEANFORECAST_URL", "https://api.met.no/weatherapi/oceanforecast/2.0")
	cfg.MetAPI.AlertsURL = getEnv("MET_ALERTS_URL", "https://api.met.no/weatherapi/metalerts/2.0")
	cfg.MetAPI.KartverketURL = getEnv("KARTVERKET_URL", "https://api.kartverket.no/kommuneinfo/v1")
	cfg.MetAPI.UserAgent = getEnv("MET_USER_AGENT", "swimspot/1.0 github.com/bobby-s-dev/swimspot")
	cfg.MetAPI.APIKey = getEnv("MET_API_KEY", "")
	cfg.MetAPI.RateLimit = parseFloat(getEnv("MET_RATE_LIMIT", "10"))
	cfg.MetAPI.RateBurst = parseInt(getEnv("MET_RATE_BURST", "10"))
	cfg.MetAPI.Timeout = parseDuration(getEnv("HTTP_TIMEOUT", "10s"))

	// Session configuration
	cfg.Session.TTL = parseDuration(getEnv("SESSION_TTL", "30m"))
	cfg.Session.MaxSessions = parseInt(getEnv("MAX_SESSIONS", "1000"))
	cfg.Session.PrefetchTimeout = parseDuration(getEnv("PREFETCH_TIMEOUT", "60s"))

	// Scheduler configuration
	cfg.Scheduler.SweepSchedule = getEnv("SWEEP_SCHEDULE", "@every 1m")

	// Filter defaults
	cfg.Filter.DefaultMaxDistanceKm = parseFloat(getEnv("DEFAULT_MAX_DISTANCE_KM", "15"))
	cfg.Filter.DefaultTempMin = parseInt(getEnv("DEFAULT_TEMP_MIN", "0"))
	cfg.Filter.DefaultTempMax = parseInt(getEnv("DEFAULT_TEMP_MAX", "30"))
	cfg.Filter.FetchConcurrency = parseInt(getEnv("FETCH_CONCURRENCY", "8"))

	// Circuit breaker configuration
	cfg.CircuitBreaker.Threshold = parseInt(getEnv("CIRCUIT_BREAKER_THRESHOLD", "3"))
	cfg.CircuitBreaker.Timeout = parseDuration(getEnv("CIRCUIT_BREAKER_TIMEOUT", "30s"))

	// Retry configuration
	cfg.Retry.MaxRetries = parseInt(getEnv("MAX_RETRIES", "2"))
	cfg.Retry.Delay = parseDuration(getEnv("RETRY_DELAY", "500ms"))
	cfg.Retry.Multiplier = parseFloat(getEnv("RETRY_MULTIPLIER", "2"))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects settings the services cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("FIBER_PORT must not be empty")
	}
	if c.MetAPI.UserAgent == "" {
		return fmt.Errorf("MET_USER_AGENT must not be empty, api.met.no rejects anonymous clients")
	}
	if c.MetAPI.RateLimit <= 0 || c.MetAPI.RateBurst <= 0 {
		return fmt.Errorf("MET_RATE_LIMIT and MET_RATE_BURST must be positive")
	}
	if c.MetAPI.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.Session.MaxSessions <= 0 {
		return fmt.Errorf("MAX_SESSIONS must be positive")
	}
	if c.Session.PrefetchTimeout <= 0 {
		return fmt.Errorf("PREFETCH_TIMEOUT must be positive")
	}
	if c.Filter.DefaultTempMin > c.Filter.DefaultTempMax {
		return fmt.Errorf("DEFAULT_TEMP_MIN (%d) exceeds DEFAULT_TEMP_MAX (%d)",
			c.Filter.DefaultTempMin, c.Filter.DefaultTempMax)
	}
	if c.Filter.DefaultMaxDistanceKm < 0 {
		return fmt.Errorf("DEFAULT_MAX_DISTANCE_KM must not be negative")
	}
	if c.Filter.FetchConcurrency <= 0 {
		return fmt.Errorf("FETCH_CONCURRENCY must be positive")
	}
	if _, err := cron.ParseStandard(c.Scheduler.SweepSchedule); err != nil {
		return fmt.Errorf("SWEEP_SCHEDULE %q: %w", c.Scheduler.SweepSchedule, err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(value string) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		zap.L().Warn("Failed to parse duration", zap.String("value", value), zap.Error(err))
		return 0
	}
	return duration
}

func parseInt(value string) int {
	intValue, err := strconv.Atoi(value)
	if err != nil {
		zap.L().Warn("Failed to parse int", zap.String("value", value), zap.Error(err))
		return 0
	}
	return intValue
}

func parseFloat(value string) float64 {
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		zap.L().Warn("Failed to parse float", zap.String("value", value), zap.Error(err))
		return 0
	}
	return floatValue
}
