package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, ":3001", cfg.AppAddr)
	assert.Equal(t, "http://127.0.0.1:3000", cfg.GotenbergURL)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_ADDR", ":9000")
	t.Setenv("PG_DSN", "postgres://user:pass@db:5432/records")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.AppAddr)
	assert.Equal(t, "postgres://user:pass@db:5432/records", cfg.PGDSN)
	assert.True(t, cfg.IsProduction())
}
