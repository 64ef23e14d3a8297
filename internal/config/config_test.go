package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every key so host variables don't leak into a test.
// caarlos0/env treats an empty value as unset and applies the default.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "LOG_LEVEL", "LOG_FORMAT", "ENVIRONMENT", "SERVICE_NAME", "VERSION",
		"STATE_DB_PATH", "DATABASE_URL", "DB_MAX_CONNS", "DB_MAX_CONN_IDLE", "DB_MAX_CONN_LIFETIME",
		"LEADERBOARD_CACHE_TTL", "LEADERBOARD_CACHE_SIZE", "WORKER_COUNT", "WORKER_QUEUE_SIZE", "SESSION_IDLE_TTL",
		"FARM_TIMEZONE", "BASE_CAPACITY_HOURS", "UPGRADE_CATALOG_PATH", "SHUTDOWN_TIMEOUT",
		"API_KEY", "TRUSTED_PROXIES", "LOG_DIR", "RATE_LIMIT_REQUESTS", "RATE_LIMIT_WINDOW",
	} {
		t.Setenv(key, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "data/farm.db", cfg.StateDBPath)
	assert.Equal(t, 30*time.Second, cfg.LeaderboardCacheTTL)
	assert.Equal(t, 4, cfg.WorkerCount)
	assert.Equal(t, 30*time.Minute, cfg.SessionIdleTTL)
	assert.Equal(t, 0.0, cfg.BaseCapacityHours)
	assert.False(t, cfg.LeaderboardPersistent())
	assert.Empty(t, cfg.TrustedProxies)
	assert.Equal(t, 1000, cfg.RateLimitRequests)
	assert.Equal(t, 5*time.Minute, cfg.RateLimitWindow)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://farm@localhost/farm")
	t.Setenv("FARM_TIMEZONE", "Europe/Berlin")
	t.Setenv("BASE_CAPACITY_HOURS", "8")
	t.Setenv("LEADERBOARD_CACHE_TTL", "1m")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.1,10.0.0.2")
	t.Setenv("SESSION_IDLE_TTL", "0")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)

	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.LeaderboardPersistent())
	assert.Equal(t, 8.0, cfg.BaseCapacityHours)
	assert.Equal(t, time.Minute, cfg.LeaderboardCacheTTL)
	assert.Zero(t, cfg.SessionIdleTTL)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", loc.String())
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		msg   string
	}{
		{"port not a number", "PORT", "eighty", ErrMsgParseEnv},
		{"port out of range", "PORT", "70000", ErrMsgInvalidConfig},
		{"unknown log format", "LOG_FORMAT", "xml", ErrMsgInvalidConfig},
		{"unknown timezone", "FARM_TIMEZONE", "Mars/Olympus", ErrMsgInvalidConfig},
		{"negative capacity", "BASE_CAPACITY_HOURS", "-1", ErrMsgInvalidConfig},
		{"zero workers", "WORKER_COUNT", "0", ErrMsgInvalidConfig},
		{"negative session ttl", "SESSION_IDLE_TTL", "-1m", ErrMsgInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := FromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestWarnings(t *testing.T) {
	cfg := &Config{Environment: EnvironmentProduction, LogFormat: "text", LogLevel: "debug"}
	assert.Equal(t, []string{WarnMsgLeaderboardInMemory, WarnMsgTextLogsInProd, WarnMsgDebugLogsInProd, WarnMsgOpenAPIInProd}, cfg.Warnings())

	cfg = &Config{Environment: EnvironmentDev, LogFormat: "text", DatabaseURL: "postgres://x"}
	assert.Empty(t, cfg.Warnings())
	assert.True(t, cfg.IsDevelopment())
}
