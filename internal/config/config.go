package config

import (
	"fmt"
	"time"
	_ "time/tzdata" // FARM_TIMEZONE must resolve on hosts without zoneinfo

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080" validate:"min=1,max=65535"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"INFO" validate:"oneof=DEBUG INFO WARN ERROR debug info warn error"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"json" validate:"oneof=json text"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"degenfarm"`
	Version     string `env:"VERSION" envDefault:"dev"`
	// LogDir adds a rotated session log file next to stdout when set
	LogDir string `env:"LOG_DIR"`

	// Local key-value state
	StateDBPath string `env:"STATE_DB_PATH" envDefault:"data/farm.db" validate:"required"`

	// Leaderboard database. Empty keeps the leaderboard in memory.
	DatabaseURL       string        `env:"DATABASE_URL"`
	DBMaxConns        int           `env:"DB_MAX_CONNS" envDefault:"10" validate:"min=1"`
	DBMaxConnIdle     time.Duration `env:"DB_MAX_CONN_IDLE" envDefault:"5m"`
	DBMaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`

	LeaderboardCacheTTL  time.Duration `env:"LEADERBOARD_CACHE_TTL" envDefault:"30s" validate:"gt=0"`
	LeaderboardCacheSize int           `env:"LEADERBOARD_CACHE_SIZE" envDefault:"16" validate:"min=1"`

	WorkerCount     int `env:"WORKER_COUNT" envDefault:"4" validate:"min=1,max=64"`
	WorkerQueueSize int `env:"WORKER_QUEUE_SIZE" envDefault:"256" validate:"min=1"`

	// Idle player sessions are dropped from memory after this long. 0 keeps them.
	SessionIdleTTL time.Duration `env:"SESSION_IDLE_TTL" envDefault:"30m" validate:"min=0"`

	// Farm rules
	Timezone           string  `env:"FARM_TIMEZONE" validate:"omitempty,timezone"`
	BaseCapacityHours  float64 `env:"BASE_CAPACITY_HOURS" envDefault:"0" validate:"min=0"`
	UpgradeCatalogPath string  `env:"UPGRADE_CATALOG_PATH"`

	// HTTP access. An empty API key leaves the API open.
	APIKey            string        `env:"API_KEY"`
	TrustedProxies    []string      `env:"TRUSTED_PROXIES" envSeparator:","`
	RateLimitRequests int           `env:"RATE_LIMIT_REQUESTS" envDefault:"1000" validate:"min=0"`
	RateLimitWindow   time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"5m" validate:"gt=0"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s" validate:"gt=0"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv parses and validates the process environment without reading .env
func FromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgParseEnv, err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidConfig, err)
	}
	return cfg, nil
}

// LeaderboardPersistent reports whether the leaderboard is backed by Postgres
func (c *Config) LeaderboardPersistent() bool {
	return c.DatabaseURL != ""
}

// Location returns the time zone that defines a farm day
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", ErrMsgInvalidTimezone, c.Timezone, err)
	}
	return loc, nil
}

// IsDevelopment reports whether the process runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvironmentDev || c.Environment == EnvironmentDevelopment
}
