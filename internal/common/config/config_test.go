package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"BIKESHARE_SOURCE", "BIKESHARE_DATA_DIR", "BIKESHARE_PAGE_SIZE", "LOG_LEVEL", "LOG_FILE", "LOG_CONSOLE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, SourceCSV, cfg.Dataset.Source)
	assert.Equal(t, ".", cfg.Dataset.DataDir)
	assert.Equal(t, 5, cfg.Dataset.PageSize)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "bikeshare.log", cfg.Logging.FilePath)
	assert.False(t, cfg.Logging.Console)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BIKESHARE_SOURCE", "Postgres")
	t.Setenv("BIKESHARE_PAGE_SIZE", "10")
	t.Setenv("LOG_CONSOLE", "true")
	t.Setenv("DB_HOST", "db.internal")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, SourcePostgres, cfg.Dataset.Source)
	assert.Equal(t, 10, cfg.Dataset.PageSize)
	assert.True(t, cfg.Logging.Console)
	assert.Contains(t, cfg.Database.ConnectionString(), "host=db.internal")
	require.NoError(t, cfg.Validate())
}

func TestInvalidIntFallsBack(t *testing.T) {
	t.Setenv("BIKESHARE_PAGE_SIZE", "five")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Dataset.PageSize)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Dataset: DatasetConfig{Source: "excel", DataDir: ".", PageSize: 5}}
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg.Dataset.Source = SourceCSV
	cfg.Dataset.PageSize = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg.Dataset.Source = SourcePostgres
	cfg.Dataset.PageSize = 5
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestLoadEnvFile(t *testing.T) {
	require.NoError(t, LoadEnvFile(""))
	require.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("BIKESHARE_TEST_ONLY=from-file\n"), 0644))
	t.Setenv("BIKESHARE_TEST_ONLY", "")
	os.Unsetenv("BIKESHARE_TEST_ONLY")

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "from-file", os.Getenv("BIKESHARE_TEST_ONLY"))
}
