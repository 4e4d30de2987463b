package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	unsetenv(t, "RITUALIST_POLL_INTERVAL", "RITUALIST_TIMEZONE", "RITUALIST_LOG_LEVEL", "RITUALIST_ENVIRONMENT")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 60*time.Second, cfg.PollInterval)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.Development())

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("RITUALIST_POLL_INTERVAL", "5s")
	t.Setenv("RITUALIST_TIMEZONE", "UTC")
	t.Setenv("RITUALIST_ENVIRONMENT", "development")
	t.Setenv("RITUALIST_DB_PATH", "/tmp/r.db")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.PollInterval)
	assert.Equal(t, "/tmp/r.db", cfg.DBPath)
	assert.True(t, cfg.Development())

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("RITUALIST_TIMEZONE", "Mars/Olympus")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("RITUALIST_TIMEZONE", "")
	t.Setenv("RITUALIST_POLL_INTERVAL", "0s")
	_, err = Load()
	require.Error(t, err)
}

// unsetenv clears keys for the duration of the test. envconfig treats a
// variable set to "" as present, so defaults only apply when it is absent.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		_ = os.Unsetenv(k)
	}
}
