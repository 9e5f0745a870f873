package hvac_sizing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var config_env_keys = []string{
	"HVAC_SIZING_OUTPUT_DIR",
	"HVAC_SIZING_WORKERS",
	"HVAC_SIZING_DEBUG",
	"HVAC_SIZING_XLSX",
	"HVAC_SIZING_PDF",
}

// clearConfigEnv unsets the config variables for the test and restores them afterwards.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, k := range config_env_keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigEnvironment(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("HVAC_SIZING_OUTPUT_DIR", "out")
	t.Setenv("HVAC_SIZING_WORKERS", "8")
	t.Setenv("HVAC_SIZING_DEBUG", "true")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, 8, cfg.Workers)
	assert.True(t, cfg.Debug)
	assert.False(t, cfg.XLSX)
}

func TestLoadConfigDotEnv(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("HVAC_SIZING_WORKERS", "8")

	env := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(env, []byte("HVAC_SIZING_XLSX=true\nHVAC_SIZING_WORKERS=2\n"), 0644))

	cfg, err := LoadConfig(env)
	require.NoError(t, err)
	assert.True(t, cfg.XLSX)
	// the environment wins over the file
	assert.Equal(t, 8, cfg.Workers)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"HVAC_SIZING_WORKERS", "four"},
		{"HVAC_SIZING_DEBUG", "maybe"},
		{"HVAC_SIZING_PDF", "2"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearConfigEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
