package styles

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/keysetup/internal/application/port"
)

// UnboundLabel is shown for actions without a key.
const UnboundLabel = "unbound"

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	// Nothing is selectable in printed output.
	s.Selected = s.Cell.
		Foreground(theme.Text)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// BindingTableColumns returns columns for a group's binding table.
func BindingTableColumns() []table.Column {
	return []table.Column{
		{Title: "Action", Width: 24},
		{Title: "Key", Width: 12},
		{Title: "Default", Width: 12},
		{Title: "Variable", Width: 22},
	}
}

// BindingRow converts a binding entry to a table row.
func BindingRow(e port.KeybindingEntry) table.Row {
	key := e.Key
	if e.Code == 0 {
		key = UnboundLabel
	} else if e.IsCustom {
		key += " *"
	}
	def := e.DefaultKey
	if e.DefaultCode == 0 {
		def = UnboundLabel
	}
	return table.Row{e.Label, key, def, e.Name}
}

// BindingRows converts a group's entries to table rows.
func BindingRows(entries []port.KeybindingEntry) []table.Row {
	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, BindingRow(e))
	}
	return rows
}
