package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/keysetup/internal/application/port"
	"github.com/bnema/keysetup/internal/domain/entity"
	"github.com/bnema/keysetup/internal/domain/keybinding"
)

const bindingTableWidth = 80

// BindingsRenderer renders keyboard configuration output.
type BindingsRenderer struct {
	theme *Theme
}

// NewBindingsRenderer creates a new bindings renderer with the given theme.
func NewBindingsRenderer(theme *Theme) *BindingsRenderer {
	return &BindingsRenderer{theme: theme}
}

// RenderView renders every group as a table followed by the toggles.
func (r *BindingsRenderer) RenderView(view port.KeybindingsView) string {
	var sb strings.Builder
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	for _, group := range view.Groups {
		sb.WriteString(fmt.Sprintf("\n  %s %s %s\n",
			iconStyle.Render(IconKeyboard),
			r.theme.Title.Render(group.DisplayName),
			r.theme.Subtle.Render(fmt.Sprintf("(%d)", len(group.Bindings))),
		))

		rows := BindingRows(group.Bindings)
		// Header plus its border take two lines.
		tbl := NewStyledTable(r.theme, BindingTableColumns(), rows, bindingTableWidth, len(rows)+2)
		sb.WriteString(indent(tbl.View(), "  "))
		sb.WriteString("\n")
	}

	sb.WriteString(r.renderToggles(view))
	return sb.String()
}

// RenderGroup renders a single group, used by the watch view.
func (r *BindingsRenderer) RenderGroup(group port.KeybindingGroup) string {
	return r.RenderView(port.KeybindingsView{Groups: []port.KeybindingGroup{group}})
}

func (r *BindingsRenderer) renderToggles(view port.KeybindingsView) string {
	if len(view.Toggles) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  %s\n", r.theme.Title.Render("Toggles")))
	for _, toggle := range view.Toggles {
		icon := lipgloss.NewStyle().Foreground(r.theme.Muted).Render(IconToggleOff)
		state := r.theme.Subtle.Render("off")
		if toggle.Enabled {
			icon = lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconToggleOn)
			state = r.theme.Highlight.Render("on")
		}
		sb.WriteString(fmt.Sprintf("    %s %-26s %s\n", icon, toggle.Toggle, state))
	}
	sb.WriteString(fmt.Sprintf("    %s %-26s %s\n",
		r.theme.Subtle.Render(IconInfo),
		entity.VarJoybSpeed,
		r.theme.Normal.Render(fmt.Sprintf("%d", view.JoybSpeed)),
	))
	return sb.String()
}

// RenderCapture renders the outcome of binding a key.
func (r *BindingsRenderer) RenderCapture(res keybinding.CaptureResult) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	keyStyle := r.theme.Highlight

	var sb strings.Builder
	if res.Code == entity.KeyUnbound {
		sb.WriteString(fmt.Sprintf("\n  %s %s is now %s\n",
			iconStyle.Render(IconCheck),
			r.theme.Title.Render(res.Action.Label()),
			r.theme.Subtle.Render(UnboundLabel),
		))
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("\n  %s %s %s %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Title.Render(res.Action.Label()),
		r.theme.Subtle.Render(IconArrow),
		keyStyle.Render(entity.KeyName(res.Code)),
	))
	sb.WriteString(r.renderCleared(res.Cleared, entity.KeyName(res.Code)))
	return sb.String()
}

func (r *BindingsRenderer) renderCleared(cleared []entity.Action, key string) string {
	if len(cleared) == 0 {
		return ""
	}

	warnStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)
	var sb strings.Builder
	for _, a := range cleared {
		sb.WriteString(fmt.Sprintf("    %s %s unbound (was %s)\n",
			warnStyle.Render(IconWarning),
			r.theme.Normal.Render(a.Label()),
			r.theme.Subtle.Render(key),
		))
	}
	return sb.String()
}

// RenderToggle renders the outcome of a toggle change.
func (r *BindingsRenderer) RenderToggle(res keybinding.ToggleResult) string {
	icon := IconToggleOff
	state := "off"
	if res.Enabled {
		icon = IconToggleOn
		state = "on"
	}
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  %s %s %s\n",
		iconStyle.Render(icon),
		r.theme.Title.Render(string(res.Toggle)),
		r.theme.Highlight.Render(state),
	))
	for _, d := range res.Derived {
		sb.WriteString(fmt.Sprintf("    %s %s = %s\n",
			r.theme.Subtle.Render(IconInfo),
			r.theme.Normal.Render(d.Name),
			r.theme.Highlight.Render(fmt.Sprintf("%d", d.Value)),
		))
	}
	return sb.String()
}

// RenderReset renders the outcome of restoring defaults.
func (r *BindingsRenderer) RenderReset(action string, all bool, cleared []entity.Action) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	target := action
	if all {
		target = "all bindings"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  %s Restored default for %s\n",
		iconStyle.Render(IconUndo),
		r.theme.Title.Render(target),
	))
	for _, a := range cleared {
		sb.WriteString(fmt.Sprintf("    %s %s unbound\n",
			lipgloss.NewStyle().Foreground(r.theme.Warning).Render(IconWarning),
			r.theme.Normal.Render(a.Label()),
		))
	}
	return sb.String()
}

// RenderSaved renders the persistence confirmation.
func (r *BindingsRenderer) RenderSaved(backend string) string {
	return fmt.Sprintf("  %s %s\n",
		r.theme.Subtle.Render(IconDatabase),
		r.theme.Subtle.Render("saved to "+backend),
	)
}

// RenderExported renders the export confirmation.
func (r *BindingsRenderer) RenderExported(path string, count int) string {
	return fmt.Sprintf("\n  %s Exported %s variables to %s\n",
		lipgloss.NewStyle().Foreground(r.theme.Success).Render(IconFile),
		r.theme.Highlight.Render(fmt.Sprintf("%d", count)),
		r.theme.Subtle.Render(path),
	)
}

// RenderWatching renders the hint shown while watching for changes.
func (r *BindingsRenderer) RenderWatching(path string) string {
	return fmt.Sprintf("\n  %s Watching %s (ctrl+c to stop)\n",
		lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconEye),
		r.theme.Subtle.Render(path),
	)
}

// RenderError renders an error message.
func (r *BindingsRenderer) RenderError(err error) string {
	return fmt.Sprintf("\n  %s %s\n",
		r.theme.ErrorStyle.Render(IconX),
		r.theme.ErrorStyle.Render(err.Error()),
	)
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
