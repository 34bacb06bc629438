package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "info", mgr.viper.GetString("logging.level"))
	assert.Equal(t, "file", mgr.viper.GetString("storage.backend"))
	assert.Equal(t, defaultAccentColor, mgr.viper.GetString("appearance.palette.accent"))
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = " DEBUG "
	cfg.Logging.Format = ""
	cfg.Storage.Backend = "SQLite"

	normalizeConfig(cfg)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, StorageBackendSQLite, cfg.Storage.Backend)
}

func TestManager_LoadCreatesDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	mgr, err := NewManagerWithDir(dir)
	require.NoError(t, err)

	require.NoError(t, mgr.Load())

	assert.FileExists(t, filepath.Join(dir, configName))
	assert.FileExists(t, filepath.Join(dir, schemaName))

	cfg := mgr.Get()
	assert.Equal(t, StorageBackendFile, cfg.Storage.Backend)
	assert.Equal(t, filepath.Join(dir, bindingsName), cfg.Storage.BindingsFile)
	assert.Equal(t, filepath.Join(dir, databaseName), cfg.Storage.DatabasePath)
	assert.Equal(t, DefaultConfig().Appearance, cfg.Appearance)
}

func TestManager_EnvOverride(t *testing.T) {
	t.Setenv("KEYSETUP_STORAGE_BACKEND", "sqlite")
	t.Setenv("KEYSETUP_LOG_LEVEL", "warn")

	mgr, err := NewManagerWithDir(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, StorageBackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestManager_LoadRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	content := `[storage]
backend = 'redis'

[appearance.palette]
accent = 'blue'
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, configName), []byte(content), filePerm))

	mgr, err := NewManagerWithDir(dir)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage.backend")
	assert.Contains(t, err.Error(), "appearance.palette.accent")
}

func TestManager_SaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	mgr, err := NewManagerWithDir(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Appearance.Palette.Accent = "#112233"
	cfg.Storage.Backend = StorageBackendSQLite
	require.NoError(t, mgr.Save(cfg))
	assert.Equal(t, "#112233", mgr.Get().Appearance.Palette.Accent)

	reloaded, err := NewManagerWithDir(dir)
	require.NoError(t, err)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, "#112233", reloaded.Get().Appearance.Palette.Accent)
	assert.Equal(t, StorageBackendSQLite, reloaded.Get().Storage.Backend)
}

func TestManager_SaveRejectsInvalid(t *testing.T) {
	mgr, err := NewManagerWithDir(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Logging.Format = "xml"

	err = mgr.Save(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.format")
	assert.Error(t, mgr.Save(nil))
}

func TestNewManagerWithDir_Empty(t *testing.T) {
	_, err := NewManagerWithDir("")
	assert.Error(t, err)
}

func TestManager_WatchReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	mgr, err := NewManagerWithDir(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	reloaded := make(chan *Config, 1)
	mgr.OnConfigChange(func(cfg *Config) {
		select {
		case reloaded <- cfg:
		default:
		}
	})
	require.NoError(t, mgr.Watch())
	// A second call is a no-op.
	require.NoError(t, mgr.Watch())

	updated := DefaultConfig()
	updated.Appearance.Palette.Accent = "#112233"
	path := filepath.Join(dir, configName)

	var got *Config
	require.Eventually(t, func() bool {
		_ = WriteConfigOrdered(updated, path)
		select {
		case got = <-reloaded:
			return true
		default:
			return false
		}
	}, 5*time.Second, 100*time.Millisecond)

	assert.Equal(t, "#112233", got.Appearance.Palette.Accent)
	assert.Equal(t, "#112233", mgr.Get().Appearance.Palette.Accent)
}
