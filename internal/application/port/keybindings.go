package port

// KeybindingEntry represents a single action binding for display.
type KeybindingEntry struct {
	Action      string `json:"action"`
	Name        string `json:"name"`
	Label       string `json:"label"`
	Key         string `json:"key"`
	Code        int    `json:"code"`
	DefaultKey  string `json:"default_key"`
	DefaultCode int    `json:"default_code"`
	IsCustom    bool   `json:"is_custom"`
}

// KeybindingGroup represents the bindings of one exclusivity group.
type KeybindingGroup struct {
	Group       string            `json:"group"`
	DisplayName string            `json:"display_name"`
	Bindings    []KeybindingEntry `json:"bindings"`
}

// ToggleEntry represents a boolean control for display.
type ToggleEntry struct {
	Toggle  string `json:"toggle"`
	Enabled bool   `json:"enabled"`
}

// KeybindingsView represents the whole keyboard configuration for display.
type KeybindingsView struct {
	Groups    []KeybindingGroup `json:"groups"`
	Toggles   []ToggleEntry     `json:"toggles"`
	JoybSpeed int               `json:"joybspeed"`
}
