package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPaths renders the files keysetup reads and writes.
func (r *ConfigRenderer) RenderPaths(configFile, backend, storePath string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Normal

	return fmt.Sprintf(
		"\n  %s %s %s\n  %s %s %s\n",
		iconStyle.Render(IconConfig),
		keyStyle.Render("Config  "),
		valStyle.Render(configFile),
		iconStyle.Render(IconDatabase),
		keyStyle.Render(fmt.Sprintf("%-8s", backend)),
		valStyle.Render(storePath),
	)
}

// RenderSchemaWritten renders the schema export confirmation.
func (r *ConfigRenderer) RenderSchemaWritten(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("\n  %s Schema written to %s\n", iconStyle.Render(IconCheck), r.theme.Subtle.Render(path))
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	return fmt.Sprintf("\n  %s %s\n",
		r.theme.ErrorStyle.Render(IconX),
		r.theme.ErrorStyle.Render(err.Error()),
	)
}
