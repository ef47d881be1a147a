package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

func TestFromLookupDefaults(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "dev-secret", cfg.JWTSecret)
	assert.Equal(t, time.Hour, cfg.JWTTTL)
	assert.Equal(t, 5*time.Minute, cfg.DashboardCacheTTL)
	assert.True(t, cfg.AutoMigrate)
	assert.Contains(t, cfg.DatabaseURL, "dbname=tripplanner")
	assert.Empty(t, cfg.CORSAllowedOrigins)
}

func TestFromLookupOverrides(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{
		"POSTGRES_URL":         "postgres://u:p@db:5432/trips",
		"REDIS_ADDR":           "cache:6379",
		"REDIS_DB":             "2",
		"DASHBOARD_CACHE_TTL":  "0s",
		"CORS_ALLOWED_ORIGINS": "https://a.example, https://b.example ,",
	}))
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@db:5432/trips", cfg.DatabaseURL)
	assert.Equal(t, "cache:6379", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Zero(t, cfg.DashboardCacheTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestFromLookupErrors(t *testing.T) {
	_, err := FromLookup(lookupFrom(map[string]string{"APP_ENV": "release"}))
	assert.ErrorContains(t, err, "JWT_SECRET")

	_, err = FromLookup(lookupFrom(map[string]string{"JWT_TTL": "soon", "REDIS_DB": "x"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_TTL")
	assert.Contains(t, err.Error(), "REDIS_DB")
}
