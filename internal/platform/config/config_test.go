package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PGSQL_URL", "postgres://ledger@localhost/ledger")
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,,")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("DB_MAX_CONNS", "24")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "postgres://ledger@localhost/ledger", cfg.DatabaseURL)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 90*time.Second, cfg.CacheTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
	assert.Equal(t, int32(24), cfg.DBMaxConns)
}

func TestLoadConfigFallsBackOnInvalidTTL(t *testing.T) {
	t.Setenv("CACHE_TTL", "soon")
	t.Setenv("DB_MAX_CONNS", "1")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "300-M", cfg.RateLimit)
	assert.Equal(t, int32(10), cfg.DBMaxConns)
}
