package keybinding

import (
	"fmt"

	"github.com/bnema/keysetup/internal/domain/entity"
)

// CaptureResult reports the outcome of a key capture.
type CaptureResult struct {
	Action entity.Action
	Code   entity.KeyCode
	// Cleared lists actions evicted to unbound by this capture.
	Cleared []entity.Action
}

// ToggleResult reports the outcome of a toggle change.
type ToggleResult struct {
	Toggle  entity.Toggle
	Enabled bool
	// Derived lists settings recomputed because of the toggle.
	Derived []entity.DerivedValue
}

// Controls owns the keyboard configuration state: the binding table, the
// always-run flag with its derived speed value, and the keyboard mapping flag.
type Controls struct {
	table          *Table
	alwaysRun      bool
	joybSpeed      int
	vanillaMapping bool
}

// NewControls wraps a table. Always-run starts off and the vanilla keyboard
// mapping starts on.
func NewControls(table *Table) *Controls {
	return &Controls{
		table:          table,
		joybSpeed:      entity.JoybSpeedFor(false),
		vanillaMapping: true,
	}
}

// NewDefaultControls creates controls over the compiled-in table.
func NewDefaultControls() *Controls {
	return NewControls(NewDefaultTable())
}

// Table exposes the underlying binding table.
func (c *Controls) Table() *Table {
	return c.table
}

// OnCapture binds code to action and reports any evicted actions.
func (c *Controls) OnCapture(action entity.Action, code entity.KeyCode) CaptureResult {
	cleared := c.table.Set(action, code)
	return CaptureResult{Action: action, Code: code, Cleared: cleared}
}

// OnToggle changes a boolean control and recomputes what depends on it.
func (c *Controls) OnToggle(toggle entity.Toggle, enabled bool) ToggleResult {
	res := ToggleResult{Toggle: toggle, Enabled: enabled}

	switch toggle {
	case entity.ToggleAlwaysRun:
		c.alwaysRun = enabled
		c.joybSpeed = entity.JoybSpeedFor(enabled)
		res.Derived = []entity.DerivedValue{{Name: entity.VarJoybSpeed, Value: c.joybSpeed}}
	case entity.ToggleVanillaKeyboardMapping:
		c.vanillaMapping = enabled
	default:
		panic(fmt.Sprintf("keybinding: unknown toggle %q", toggle))
	}

	return res
}

// ResetAll restores every binding and toggle to its compiled-in default.
func (c *Controls) ResetAll() {
	c.table.ResetAll()
	c.alwaysRun = false
	c.joybSpeed = entity.JoybSpeedFor(false)
	c.vanillaMapping = true
}

// AlwaysRun reports the always-run toggle state.
func (c *Controls) AlwaysRun() bool {
	return c.alwaysRun
}

// JoybSpeed returns the stored speed button value.
func (c *Controls) JoybSpeed() int {
	return c.joybSpeed
}

// VanillaKeyboardMapping reports whether the vanilla keyboard mapping is used.
func (c *Controls) VanillaKeyboardMapping() bool {
	return c.vanillaMapping
}

// ToggleState returns the current value of a toggle.
func (c *Controls) ToggleState(toggle entity.Toggle) bool {
	switch toggle {
	case entity.ToggleAlwaysRun:
		return c.alwaysRun
	case entity.ToggleVanillaKeyboardMapping:
		return c.vanillaMapping
	default:
		panic(fmt.Sprintf("keybinding: unknown toggle %q", toggle))
	}
}

// Bind registers every action and setting with the binder. Action setters
// go through OnCapture so loaded values keep groups exclusive. Loading
// joybspeed re-derives the always-run toggle.
func (c *Controls) Bind(b *Binder) error {
	for _, action := range c.table.Actions() {
		err := b.Register(action.Name(),
			func() int { return int(c.table.Get(action)) },
			func(v int) { c.OnCapture(action, entity.KeyCode(v)) },
		)
		if err != nil {
			return err
		}
	}

	err := b.Register(entity.VarJoybSpeed,
		func() int { return c.joybSpeed },
		func(v int) {
			c.joybSpeed = v
			c.alwaysRun = entity.AlwaysRunFromJoybSpeed(v)
		},
	)
	if err != nil {
		return err
	}

	return b.RegisterBool(entity.VarVanillaKeyboardMapping, &c.vanillaMapping)
}
