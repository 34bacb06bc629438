package entity

// ConfigKeyInfo describes a single configuration key for schema documentation.
type ConfigKeyInfo struct {
	// Key is the full dotted path to the config key (e.g., "storage.backend")
	Key string `json:"key"`

	// Type is the Go type name (e.g., "string")
	Type string `json:"type"`

	// Default is the default value as a string representation
	Default string `json:"default"`

	Description string `json:"description"`

	// Values contains valid enum values. Empty if not an enum type.
	Values []string `json:"values,omitempty"`

	// Section groups related keys (e.g., "Storage", "Logging")
	Section string `json:"section"`
}
