package config

import (
	"os"
	"path/filepath"
	"testing"

	"mealplan/internal/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvOverrides(t *testing.T) {
	t.Run("log level and file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MEALPLAN_LOG_LEVEL", "warn")
		t.Setenv("MEALPLAN_LOG_FILE", "/tmp/mealplan.log")

		cfg := DefaultConfig()
		require.NoError(t, cfg.applyEnvOverrides())

		assert.Equal(t, "warn", cfg.Logging.Level)
		assert.Equal(t, "/tmp/mealplan.log", cfg.Logging.File)
	})

	t.Run("debug toggle", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MEALPLAN_DEBUG", "true")

		cfg := DefaultConfig()
		require.NoError(t, cfg.applyEnvOverrides())
		assert.True(t, cfg.Logging.DebugMode)
	})

	t.Run("invalid debug value", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MEALPLAN_DEBUG", "maybe")

		cfg := DefaultConfig()
		err := cfg.applyEnvOverrides()
		require.Error(t, err)
		assert.Equal(t, failure.KindConfig, failure.KindOf(err))
		assert.Equal(t, `invalid MEALPLAN_DEBUG value "maybe"`, err.Error())
	})

	t.Run("env wins over file", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "mealplan.yaml")
		require.NoError(t, os.WriteFile(path, []byte("output:\n  format: yaml\n"), 0644))
		t.Setenv("MEALPLAN_OUTPUT_FORMAT", "json")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.Output.Format)
	})

	t.Run("invalid env value fails validation", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MEALPLAN_OUTPUT_FORMAT", "csv")

		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid output.format")
	})
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	require.NoError(t, LoadEnvFile(filepath.Join(dir, ".env")), "missing .env is not an error")

	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("MEALPLAN_TEST_DOTENV=from-file\n"), 0644))
	t.Setenv("MEALPLAN_TEST_DOTENV", "")
	os.Unsetenv("MEALPLAN_TEST_DOTENV")

	require.NoError(t, LoadEnvFile(envPath))
	assert.Equal(t, "from-file", os.Getenv("MEALPLAN_TEST_DOTENV"))

	t.Setenv("MEALPLAN_TEST_DOTENV", "from-env")
	require.NoError(t, LoadEnvFile(envPath))
	assert.Equal(t, "from-env", os.Getenv("MEALPLAN_TEST_DOTENV"), "existing variables are not overridden")
}
