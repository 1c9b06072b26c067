package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigFile(t *testing.T) {
	t.Cleanup(ResetConfig)

	path := writeConfig(t, `
APP_PORT: "9090"
DATA_DIR: /tmp/food
EXPIRY_HORIZON_DAYS: 5
STARTUP_ALERT_DELAY: 2s
SMTP_HOST: smtp.example.com
`)
	require.NoError(t, LoadConfigFile(path))

	assert.Equal(t, "9090", GetConfig("APP_PORT"))
	assert.Equal(t, "/tmp/food", GetConfig("DATA_DIR"))
	assert.Equal(t, "smtp.example.com", GetConfig("SMTP_HOST"))
	assert.Equal(t, 5, GetConfigInt("EXPIRY_HORIZON_DAYS", 3))
	assert.Equal(t, 2*time.Second, GetConfigDuration("STARTUP_ALERT_DELAY", time.Second))
	assert.Empty(t, GetConfig("UNKNOWN_KEY"))
}

func TestGetConfig_EnvironmentWins(t *testing.T) {
	t.Cleanup(ResetConfig)

	require.NoError(t, LoadConfigFile(writeConfig(t, "APP_PORT: \"9090\"\n")))
	t.Setenv("APP_PORT", "7070")

	assert.Equal(t, "7070", GetConfig("APP_PORT"))
}

func TestLoadConfigFile_Errors(t *testing.T) {
	t.Cleanup(ResetConfig)

	assert.Error(t, LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, LoadConfigFile(writeConfig(t, "APP_PORT: [unclosed\n")))
	assert.Empty(t, GetConfig("APP_PORT"))
}

func TestGetConfig_Defaults(t *testing.T) {
	ResetConfig()
	t.Setenv("EXPIRY_HORIZON_DAYS", "soon")
	t.Setenv("STARTUP_ALERT_DELAY", "later")

	assert.Equal(t, "8080", GetConfigString("APP_PORT", "8080"))
	assert.Equal(t, 3, GetConfigInt("EXPIRY_HORIZON_DAYS", 3))
	assert.Equal(t, 500*time.Millisecond, GetConfigDuration("STARTUP_ALERT_DELAY", 500*time.Millisecond))
}
