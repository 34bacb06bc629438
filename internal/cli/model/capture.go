package model

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/keysetup/internal/application/usecase"
	"github.com/bnema/keysetup/internal/cli/styles"
	"github.com/bnema/keysetup/internal/domain/entity"
	"github.com/bnema/keysetup/internal/domain/keybinding"
)

// CaptureModel waits for one key press and binds it to an action.
type CaptureModel struct {
	captureUC *usecase.CaptureKeyUseCase
	action    entity.Action

	result   *keybinding.CaptureResult
	canceled bool
	hint     string
	err      error

	theme *styles.Theme
	ctx   context.Context
}

// NewCaptureModel creates a capture model for action.
func NewCaptureModel(ctx context.Context, theme *styles.Theme, captureUC *usecase.CaptureKeyUseCase, action entity.Action) CaptureModel {
	return CaptureModel{
		captureUC: captureUC,
		action:    action,
		theme:     theme,
		ctx:       ctx,
	}
}

// Init implements tea.Model.
func (m CaptureModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m CaptureModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		m.canceled = true
		return m, tea.Quit
	}

	code, ok := KeyCodeFromMsg(keyMsg)
	if !ok {
		m.hint = fmt.Sprintf("%q cannot be bound, try another key", keyMsg.String())
		return m, nil
	}

	res, err := m.captureUC.Execute(m.ctx, usecase.CaptureKeyInput{
		Action: string(m.action),
		Key:    fmt.Sprintf("#%d", code),
	})
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	m.result = &res
	return m, tea.Quit
}

// View implements tea.Model.
func (m CaptureModel) View() string {
	renderer := styles.NewBindingsRenderer(m.theme)
	switch {
	case m.err != nil:
		return renderer.RenderError(m.err)
	case m.result != nil:
		return renderer.RenderCapture(*m.result)
	case m.canceled:
		return m.theme.Subtle.Render("\n  Canceled\n")
	}

	iconStyle := lipgloss.NewStyle().Foreground(m.theme.Accent)
	view := fmt.Sprintf("\n  %s Press a key for %s %s\n",
		iconStyle.Render(styles.IconKeyboard),
		m.theme.Title.Render(m.action.Label()),
		m.theme.Subtle.Render("(esc to cancel)"),
	)
	if m.hint != "" {
		view += "  " + m.theme.WarningStyle.Render(m.hint) + "\n"
	}
	return view
}

// Result returns the capture outcome, or nil when nothing was bound.
func (m CaptureModel) Result() *keybinding.CaptureResult {
	return m.result
}

// Canceled reports whether the user left without binding a key.
func (m CaptureModel) Canceled() bool {
	return m.canceled
}

// Err returns the capture error, if any.
func (m CaptureModel) Err() error {
	return m.err
}

var specialKeys = map[tea.KeyType]entity.KeyCode{
	tea.KeyUp:        entity.KeyUpArrow,
	tea.KeyDown:      entity.KeyDownArrow,
	tea.KeyLeft:      entity.KeyLeftArrow,
	tea.KeyRight:     entity.KeyRightArrow,
	tea.KeyEnter:     entity.KeyEnter,
	tea.KeyTab:       entity.KeyTab,
	tea.KeySpace:     entity.KeySpace,
	tea.KeyBackspace: entity.KeyBackspace,
	tea.KeyHome:      entity.KeyHome,
	tea.KeyEnd:       entity.KeyEnd,
	tea.KeyPgUp:      entity.KeyPgUp,
	tea.KeyPgDown:    entity.KeyPgDn,
	tea.KeyInsert:    entity.KeyIns,
	tea.KeyDelete:    entity.KeyDel,
	tea.KeyF1:        entity.KeyF1,
	tea.KeyF2:        entity.KeyF2,
	tea.KeyF3:        entity.KeyF3,
	tea.KeyF4:        entity.KeyF4,
	tea.KeyF5:        entity.KeyF5,
	tea.KeyF6:        entity.KeyF6,
	tea.KeyF7:        entity.KeyF7,
	tea.KeyF8:        entity.KeyF8,
	tea.KeyF9:        entity.KeyF9,
	tea.KeyF10:       entity.KeyF10,
	tea.KeyF11:       entity.KeyF11,
	tea.KeyF12:       entity.KeyF12,
}

// KeyCodeFromMsg maps a terminal key press to a key code. Modifier keys
// never reach the terminal on their own, so RCTRL and friends can only be
// bound by name.
func KeyCodeFromMsg(msg tea.KeyMsg) (entity.KeyCode, bool) {
	if code, ok := specialKeys[msg.Type]; ok {
		return code, true
	}
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 || msg.Alt {
		return entity.KeyUnbound, false
	}

	code, err := entity.ParseKey(string(msg.Runes[0]))
	if err != nil || code == entity.KeyUnbound {
		return entity.KeyUnbound, false
	}
	return code, true
}
