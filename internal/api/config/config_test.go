package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingDSN(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PULSE_DATABASE_DSN", "")

	_, err := Load(t.TempDir())
	require.ErrorIs(t, err, ErrMissingDSN)
}

func TestLoad_DatabaseURLFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "user:pw@tcp(127.0.0.1:3306)/pulse?parseTime=true")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "user:pw@tcp(127.0.0.1:3306)/pulse?parseTime=true", cfg.DB.DSN)
	assert.Equal(t, "mysql", cfg.DB.Driver)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30, cfg.Stats.DefaultWindowDays)
	assert.Equal(t, "@daily", cfg.Cron.ReconcileSpec)
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`
server:
  port: 9090
database:
  driver: postgres
  dsn: postgres://file/pulse
redis:
  addr: 127.0.0.1:6379
cors:
  allowed_origins:
    - http://localhost:3000
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PULSE_SERVER_PORT", "7070")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, "postgres://file/pulse", cfg.DB.DSN)
	assert.Equal(t, "127.0.0.1:6379", cfg.Redis.Addr)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Cors.AllowedOrigins)
}
