package config

// Config represents the complete configuration for keysetup.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	// Storage selects where bindings are persisted.
	Storage    StorageConfig    `mapstructure:"storage" yaml:"storage" toml:"storage" json:"storage"`
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance" toml:"appearance" json:"appearance"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// StorageBackend selects the variable store implementation.
type StorageBackend string

const (
	StorageBackendFile   StorageBackend = "file"
	StorageBackendSQLite StorageBackend = "sqlite"
)

// StorageConfig holds persistence settings.
type StorageConfig struct {
	Backend StorageBackend `mapstructure:"backend" yaml:"backend" toml:"backend" json:"backend" jsonschema:"enum=file,enum=sqlite"`
	// BindingsFile is the TOML file used by the file backend.
	// Empty means bindings.toml in the config directory.
	BindingsFile string `mapstructure:"bindings_file" yaml:"bindings_file" toml:"bindings_file" json:"bindings_file"`
	// DatabasePath is the SQLite file used by the sqlite backend.
	// Empty means keysetup.sqlite in the data directory.
	DatabasePath string `mapstructure:"database_path" yaml:"database_path" toml:"database_path" json:"database_path"`
}

// AppearanceConfig holds CLI output preferences.
type AppearanceConfig struct {
	Palette PaletteConfig `mapstructure:"palette" yaml:"palette" toml:"palette" json:"palette"`
}

// PaletteConfig holds the CLI colours as #RRGGBB strings.
type PaletteConfig struct {
	Accent  string `mapstructure:"accent" yaml:"accent" toml:"accent" json:"accent"`
	Text    string `mapstructure:"text" yaml:"text" toml:"text" json:"text"`
	Muted   string `mapstructure:"muted" yaml:"muted" toml:"muted" json:"muted"`
	Border  string `mapstructure:"border" yaml:"border" toml:"border" json:"border"`
	Warning string `mapstructure:"warning" yaml:"warning" toml:"warning" json:"warning"`
}
