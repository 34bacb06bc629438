package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool

	// configDir overrides the XDG directories when set.
	configDir string
}

// NewManager creates a new configuration manager rooted in the XDG config dir.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	m, err := newManager(configDir)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// NewManagerWithDir creates a manager whose config, bindings and database all
// live in dir.
func NewManagerWithDir(dir string) (*Manager, error) {
	if dir == "" {
		return nil, fmt.Errorf("config directory cannot be empty")
	}
	m, err := newManager(dir)
	if err != nil {
		return nil, err
	}
	m.configDir = dir
	return m, nil
}

func newManager(configDir string) (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	// KEYSETUP_STORAGE_BACKEND, KEYSETUP_APPEARANCE_PALETTE_ACCENT, ...
	v.SetEnvPrefix("KEYSETUP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "KEYSETUP_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind KEYSETUP_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "KEYSETUP_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind KEYSETUP_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A default config file is created on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ensureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := m.prepare(config); err != nil {
		return err
	}

	m.config = config
	return nil
}

func (m *Manager) ensureDirectories() error {
	if m.configDir != "" {
		return os.MkdirAll(m.configDir, dirPerm)
	}
	return EnsureDirectories()
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			configFile := m.viper.ConfigFileUsed()
			if configFile == "" {
				configFile = m.configFilePath()
			}
			return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
		}

		if createErr := m.createDefaultConfig(); createErr != nil {
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				m.configFilePath(),
				createErr,
			)
		}
		if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
			return fmt.Errorf(
				"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
				rereadErr,
			)
		}
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

// prepare fills derived paths, normalizes and validates a freshly read config.
func (m *Manager) prepare(config *Config) error {
	if err := m.ensureStoragePaths(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

func (m *Manager) ensureStoragePaths(config *Config) error {
	return ResolveStoragePaths(config, m.configDir)
}

// ResolveStoragePaths fills empty storage paths. With dir set both files
// live in dir, otherwise in the XDG config and data directories.
func ResolveStoragePaths(config *Config, dir string) error {
	if config.Storage.BindingsFile == "" {
		if dir != "" {
			config.Storage.BindingsFile = filepath.Join(dir, bindingsName)
		} else {
			path, err := GetBindingsFile()
			if err != nil {
				return fmt.Errorf("failed to get bindings path: %w", err)
			}
			config.Storage.BindingsFile = path
		}
	}

	if config.Storage.DatabasePath == "" {
		if dir != "" {
			config.Storage.DatabasePath = filepath.Join(dir, databaseName)
		} else {
			path, err := GetDatabaseFile()
			if err != nil {
				return fmt.Errorf("failed to get database path: %w", err)
			}
			config.Storage.DatabasePath = path
		}
	}
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = defaultLogFormat
	}

	switch StorageBackend(strings.ToLower(string(config.Storage.Backend))) {
	case "", StorageBackendFile:
		config.Storage.Backend = StorageBackendFile
	case StorageBackendSQLite:
		config.Storage.Backend = StorageBackendSQLite
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}

	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// Save saves the provided configuration to disk and updates Viper.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.viper.Set("logging.level", cfg.Logging.Level)
	m.viper.Set("logging.format", cfg.Logging.Format)
	m.viper.Set("storage.backend", string(cfg.Storage.Backend))
	m.viper.Set("storage.bindings_file", cfg.Storage.BindingsFile)
	m.viper.Set("storage.database_path", cfg.Storage.DatabasePath)
	m.viper.Set("appearance.palette.accent", cfg.Appearance.Palette.Accent)
	m.viper.Set("appearance.palette.text", cfg.Appearance.Palette.Text)
	m.viper.Set("appearance.palette.muted", cfg.Appearance.Palette.Muted)
	m.viper.Set("appearance.palette.border", cfg.Appearance.Palette.Border)
	m.viper.Set("appearance.palette.warning", cfg.Appearance.Palette.Warning)

	if err := WriteConfigOrdered(cfg, m.configFilePath()); err != nil {
		return err
	}

	// The watcher reloads on its own; otherwise reload now.
	if !m.watching {
		if err := m.reload(); err != nil {
			return err
		}
	}

	return nil
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return m.configFilePath()
}

func (m *Manager) configFilePath() string {
	if m.configDir != "" {
		return filepath.Join(m.configDir, configName)
	}
	path, err := GetConfigFile()
	if err != nil {
		return configName
	}
	return path
}

// createDefaultConfig writes the default configuration and its JSON schema.
func (m *Manager) createDefaultConfig() error {
	configFile := m.configFilePath()

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}

	schemaFile := filepath.Join(filepath.Dir(configFile), schemaName)
	if err := WriteSchemaFile(schemaFile); err != nil {
		return err
	}

	m.viper.SetConfigFile(configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	// Storage paths are resolved in Load.
	m.viper.SetDefault("storage.backend", string(defaults.Storage.Backend))
	m.viper.SetDefault("storage.bindings_file", "")
	m.viper.SetDefault("storage.database_path", "")

	m.viper.SetDefault("appearance.palette.accent", defaults.Appearance.Palette.Accent)
	m.viper.SetDefault("appearance.palette.text", defaults.Appearance.Palette.Text)
	m.viper.SetDefault("appearance.palette.muted", defaults.Appearance.Palette.Muted)
	m.viper.SetDefault("appearance.palette.border", defaults.Appearance.Palette.Border)
	m.viper.SetDefault("appearance.palette.warning", defaults.Appearance.Palette.Warning)
}
