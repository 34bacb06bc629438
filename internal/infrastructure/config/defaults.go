package config

// Default configuration constants
const (
	defaultLogLevel  = "info"
	defaultLogFormat = "console"

	defaultStorageBackend = StorageBackendFile

	// Palette defaults
	defaultAccentColor  = "#4A90E2"
	defaultTextColor    = "#E6E6E6"
	defaultMutedColor   = "#8A8A8A"
	defaultBorderColor  = "#3C3C3C"
	defaultWarningColor = "#FFA500"
)

// DefaultConfig returns the default configuration.
// Storage paths are resolved on load.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Storage: StorageConfig{
			Backend: defaultStorageBackend,
		},
		Appearance: AppearanceConfig{
			Palette: PaletteConfig{
				Accent:  defaultAccentColor,
				Text:    defaultTextColor,
				Muted:   defaultMutedColor,
				Border:  defaultBorderColor,
				Warning: defaultWarningColor,
			},
		},
	}
}
