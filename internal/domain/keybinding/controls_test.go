package keybinding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/keysetup/internal/domain/entity"
	"github.com/bnema/keysetup/internal/domain/keybinding"
)

func TestControls_OnCapture(t *testing.T) {
	c := keybinding.NewDefaultControls()

	res := c.OnCapture(entity.ActionMapGrid, 'm')

	assert.Equal(t, entity.ActionMapGrid, res.Action)
	assert.Equal(t, entity.KeyCode('m'), res.Code)
	assert.Equal(t, []entity.Action{entity.ActionMapMark}, res.Cleared)
	assert.Equal(t, entity.KeyUnbound, c.Table().Get(entity.ActionMapMark))
}

func TestControls_OnToggle(t *testing.T) {
	t.Run("always run derives speed", func(t *testing.T) {
		c := keybinding.NewDefaultControls()
		require.False(t, c.AlwaysRun())
		require.Equal(t, 0, c.JoybSpeed())

		on := c.OnToggle(entity.ToggleAlwaysRun, true)
		assert.True(t, on.Enabled)
		assert.Equal(t, []entity.DerivedValue{{Name: entity.VarJoybSpeed, Value: 29}}, on.Derived)
		assert.Equal(t, 29, c.JoybSpeed())
		assert.True(t, c.AlwaysRun())

		off := c.OnToggle(entity.ToggleAlwaysRun, false)
		assert.Equal(t, []entity.DerivedValue{{Name: entity.VarJoybSpeed, Value: 0}}, off.Derived)
		assert.Equal(t, 0, c.JoybSpeed())
		assert.False(t, c.ToggleState(entity.ToggleAlwaysRun))
	})

	t.Run("vanilla keyboard mapping has no derived values", func(t *testing.T) {
		c := keybinding.NewDefaultControls()
		require.True(t, c.VanillaKeyboardMapping())

		res := c.OnToggle(entity.ToggleVanillaKeyboardMapping, false)

		assert.Empty(t, res.Derived)
		assert.False(t, c.VanillaKeyboardMapping())
		assert.False(t, c.ToggleState(entity.ToggleVanillaKeyboardMapping))
	})

	t.Run("unknown toggle panics", func(t *testing.T) {
		c := keybinding.NewDefaultControls()
		assert.Panics(t, func() { c.OnToggle("fly", true) })
	})
}

func TestControls_Bind(t *testing.T) {
	c := keybinding.NewDefaultControls()
	b := keybinding.NewBinder()

	require.NoError(t, c.Bind(b))
	assert.Equal(t, len(entity.Actions())+2, b.Len())

	t.Run("action variables mirror the table", func(t *testing.T) {
		v, ok := b.Lookup("key_up")
		require.True(t, ok)
		assert.Equal(t, int(entity.KeyUpArrow), v.Get())
	})

	t.Run("loading an action resolves conflicts", func(t *testing.T) {
		v, ok := b.Lookup("key_fire")
		require.True(t, ok)

		v.Set(int(entity.KeySpace))

		assert.Equal(t, entity.KeySpace, c.Table().Get(entity.ActionFire))
		assert.Equal(t, entity.KeyUnbound, c.Table().Get(entity.ActionUse))
	})

	t.Run("loading joybspeed derives always run", func(t *testing.T) {
		v, ok := b.Lookup(entity.VarJoybSpeed)
		require.True(t, ok)

		v.Set(25)
		assert.True(t, c.AlwaysRun())
		assert.Equal(t, 25, v.Get())

		v.Set(19)
		assert.False(t, c.AlwaysRun())
		assert.Equal(t, 19, c.JoybSpeed())
	})

	t.Run("vanilla mapping stored as 0/1", func(t *testing.T) {
		v, ok := b.Lookup(entity.VarVanillaKeyboardMapping)
		require.True(t, ok)
		assert.Equal(t, 1, v.Get())

		v.Set(0)
		assert.False(t, c.VanillaKeyboardMapping())
	})

	t.Run("binding twice fails", func(t *testing.T) {
		err := c.Bind(b)
		assert.ErrorIs(t, err, entity.ErrDuplicateVariable)
	})
}

func TestControls_ResetAll(t *testing.T) {
	c := keybinding.NewDefaultControls()
	c.OnCapture(entity.ActionFire, entity.KeySpace)
	c.OnToggle(entity.ToggleAlwaysRun, true)
	c.OnToggle(entity.ToggleVanillaKeyboardMapping, false)

	c.ResetAll()

	fresh := keybinding.NewDefaultControls()
	assert.Equal(t, fresh.Table().Snapshot(), c.Table().Snapshot())
	assert.False(t, c.AlwaysRun())
	assert.Equal(t, 0, c.JoybSpeed())
	assert.True(t, c.VanillaKeyboardMapping())
}
