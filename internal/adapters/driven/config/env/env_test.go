package env

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ziwei/internal/core/domain"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ZIWEI_HOME", "")
	t.Setenv("ZIWEI_VERBOSE", "")
	t.Setenv("ZIWEI_STORAGE", "")
	t.Setenv("HOME", "/home/tester")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/tester", ".ziwei"), cfg.Home)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, domain.StorageBackend(""), cfg.Storage)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ZIWEI_HOME", "/srv/ziwei")
	t.Setenv("ZIWEI_VERBOSE", "true")
	t.Setenv("ZIWEI_STORAGE", "memory")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "/srv/ziwei", cfg.Home)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, domain.StorageMemory, cfg.Storage)
}

func TestLoad_BadBool(t *testing.T) {
	t.Setenv("ZIWEI_VERBOSE", "loud")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLoad_UnknownStorage(t *testing.T) {
	t.Setenv("ZIWEI_STORAGE", "postgres")

	_, err := Load()

	assert.ErrorIs(t, err, domain.ErrInvalidSetting)
}

func TestDatabasePath(t *testing.T) {
	assert.Equal(t, filepath.Join("/srv/ziwei", "data", "charts.db"), DatabasePath("/srv/ziwei"))
}
