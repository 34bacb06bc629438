package model

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/keysetup/internal/application/usecase"
	"github.com/bnema/keysetup/internal/cli/styles"
	"github.com/bnema/keysetup/internal/domain/entity"
	"github.com/bnema/keysetup/internal/domain/keybinding"
	"github.com/bnema/keysetup/internal/infrastructure/config"
)

func newCaptureModel(controls *keybinding.Controls, action entity.Action) CaptureModel {
	theme := styles.NewTheme(config.DefaultConfig())
	return NewCaptureModel(context.Background(), theme, usecase.NewCaptureKeyUseCase(controls), action)
}

func TestKeyCodeFromMsg(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want entity.KeyCode
		ok   bool
	}{
		{"arrow", tea.KeyMsg{Type: tea.KeyUp}, entity.KeyUpArrow, true},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, entity.KeySpace, true},
		{"function key", tea.KeyMsg{Type: tea.KeyF6}, entity.KeyF6, true},
		{"letter is lowered", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'E'}}, 'e', true},
		{"punctuation", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{','}}, ',', true},
		{"alt combo", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}, entity.KeyUnbound, false},
		{"non ascii", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'é'}}, entity.KeyUnbound, false},
		{"ctrl combo", tea.KeyMsg{Type: tea.KeyCtrlA}, entity.KeyUnbound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := KeyCodeFromMsg(tt.msg)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, code)
		})
	}
}

func TestCaptureModel_BindsPressedKey(t *testing.T) {
	controls := keybinding.NewDefaultControls()
	m := newCaptureModel(controls, entity.ActionFire)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	require.NotNil(t, cmd)

	got := next.(CaptureModel)
	require.NotNil(t, got.Result())
	assert.Equal(t, entity.KeySpace, controls.Table().Get(entity.ActionFire))
	assert.Equal(t, entity.KeyUnbound, controls.Table().Get(entity.ActionUse))
	assert.Equal(t, []entity.Action{entity.ActionUse}, got.Result().Cleared)
	assert.Contains(t, got.View(), "SPACE")
}

func TestCaptureModel_Cancel(t *testing.T) {
	controls := keybinding.NewDefaultControls()
	before := controls.Table().Snapshot()
	m := newCaptureModel(controls, entity.ActionFire)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	got := next.(CaptureModel)
	assert.True(t, got.Canceled())
	assert.Nil(t, got.Result())
	assert.Equal(t, before, controls.Table().Snapshot())
}

func TestCaptureModel_UnsupportedKeyKeepsWaiting(t *testing.T) {
	m := newCaptureModel(keybinding.NewDefaultControls(), entity.ActionUse)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	assert.Nil(t, cmd)

	got := next.(CaptureModel)
	assert.Nil(t, got.Result())
	assert.False(t, got.Canceled())
	assert.Contains(t, got.View(), "cannot be bound")
	assert.Contains(t, got.View(), "Use")
}
