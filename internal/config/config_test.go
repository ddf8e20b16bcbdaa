package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "playtime.db", cfg.DBPath)
	assert.Equal(t, 30*time.Second, cfg.WatchdogInterval)
	assert.Equal(t, 2*time.Minute, cfg.LowTimeThreshold)
	assert.Equal(t, 15*time.Minute, cfg.MinReservation)
	assert.Equal(t, 3, cfg.BusyRetries)
	assert.Equal(t, 100*time.Millisecond, cfg.BusyBackoff)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PLAYTIME_DB_PATH", "/tmp/venue.db")
	t.Setenv("PLAYTIME_WATCHDOG_INTERVAL", "1m")
	t.Setenv("PLAYTIME_OPERATOR", "awa")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/venue.db", cfg.DBPath)
	assert.Equal(t, time.Minute, cfg.WatchdogInterval)
	assert.Equal(t, "awa", cfg.Operator)
}

func TestLoadDotenvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PLAYTIME_BUSY_RETRIES=5\n"), 0o600))
	t.Setenv("PLAYTIME_BUSY_RETRIES", "")
	os.Unsetenv("PLAYTIME_BUSY_RETRIES")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.BusyRetries)
}

func TestLoadMissingDotenvIsIgnored(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("PLAYTIME_WATCHDOG_INTERVAL", "0s")
	_, err := Load("")
	assert.Error(t, err)

	t.Setenv("PLAYTIME_WATCHDOG_INTERVAL", "not-a-duration")
	_, err = Load("")
	assert.ErrorContains(t, err, "parse env")
}
