package config

import (
	"github.com/bnema/keysetup/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionLogging    = "Logging"
	SectionStorage    = "Storage"
	SectionAppearance = "Appearance"
)

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKeyInfo, 0, 10)
	keys = append(keys, p.getLoggingKeys(defaults)...)
	keys = append(keys, p.getStorageKeys(defaults)...)
	keys = append(keys, p.getAppearanceKeys(defaults)...)
	return keys
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error", "disabled"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format",
			Values:      []string{"console", "json"},
			Section:     SectionLogging,
		},
	}
}

func (*SchemaProvider) getStorageKeys(defaults *Config) []entity.ConfigKeyInfo {
	bindingsPath := "$XDG_CONFIG_HOME/" + appName + "/" + bindingsName
	if path, err := GetBindingsFile(); err == nil {
		bindingsPath = path
	}
	dbPath := "$XDG_DATA_HOME/" + appName + "/" + databaseName
	if path, err := GetDatabaseFile(); err == nil {
		dbPath = path
	}

	return []entity.ConfigKeyInfo{
		{
			Key:         "storage.backend",
			Type:        "string",
			Default:     string(defaults.Storage.Backend),
			Description: "Where bindings are persisted",
			Values:      []string{string(StorageBackendFile), string(StorageBackendSQLite)},
			Section:     SectionStorage,
		},
		{
			Key:         "storage.bindings_file",
			Type:        "string",
			Default:     bindingsPath,
			Description: "TOML file used by the file backend",
			Section:     SectionStorage,
		},
		{
			Key:         "storage.database_path",
			Type:        "string",
			Default:     dbPath,
			Description: "SQLite file used by the sqlite backend",
			Section:     SectionStorage,
		},
	}
}

func (*SchemaProvider) getAppearanceKeys(defaults *Config) []entity.ConfigKeyInfo {
	p := defaults.Appearance.Palette
	color := func(name, def, desc string) entity.ConfigKeyInfo {
		return entity.ConfigKeyInfo{
			Key:         "appearance.palette." + name,
			Type:        "string",
			Default:     def,
			Description: desc,
			Section:     SectionAppearance,
		}
	}

	return []entity.ConfigKeyInfo{
		color("accent", p.Accent, "Headers, icons and highlighted values"),
		color("text", p.Text, "Regular text"),
		color("muted", p.Muted, "Secondary text"),
		color("border", p.Border, "Table and box borders"),
		color("warning", p.Warning, "Unbound action notices"),
	}
}
