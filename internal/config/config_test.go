package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "vitstudent.ac.in", cfg.Auth.InstitutionalDomain)
	assert.InDelta(t, 0.06, cfg.Swap.CGPATolerance, 1e-9)
	assert.Equal(t, "batch_swap_session", cfg.Session.CookieName)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL())
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: "9090"
swap:
  cgpa_tolerance: 0.1
session:
  store: redis
  ttl: 1h
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.InDelta(t, 0.1, cfg.Swap.CGPATolerance, 1e-9)
	assert.Equal(t, "redis", cfg.Session.Store)
	assert.Equal(t, time.Hour, cfg.SessionTTL())
}

func TestEnvOverridesWin(t *testing.T) {
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("SWAP_CGPA_TOLERANCE", "0.2")
	t.Setenv("DB_MAX_OPEN_CONNS", "50")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.InDelta(t, 0.2, cfg.Swap.CGPATolerance, 1e-9)
	assert.Equal(t, 50, cfg.Database.MaxOpenConns)
}

func TestInvalidConfigRejected(t *testing.T) {
	t.Setenv("SESSION_STORE", "mongodb")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
