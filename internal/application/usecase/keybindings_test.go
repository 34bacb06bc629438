package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/keysetup/internal/application/port/mocks"
	"github.com/bnema/keysetup/internal/application/usecase"
	"github.com/bnema/keysetup/internal/domain/entity"
	"github.com/bnema/keysetup/internal/domain/keybinding"
)

func boundControls(t *testing.T) (*keybinding.Controls, *keybinding.Binder) {
	t.Helper()
	controls := keybinding.NewDefaultControls()
	binder := keybinding.NewBinder()
	require.NoError(t, controls.Bind(binder))
	return controls, binder
}

func TestLoadBindingsUseCase_Execute(t *testing.T) {
	t.Run("applies stored values through the binder", func(t *testing.T) {
		// Arrange
		controls, binder := boundControls(t)
		store := mocks.NewMockVariableStore(t)
		store.EXPECT().Load(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, vars []entity.Variable) error {
				for _, v := range vars {
					switch v.Name {
					case "key_fire":
						v.Set(int(entity.KeySpace))
					case entity.VarJoybSpeed:
						v.Set(29)
					}
				}
				return nil
			})

		uc := usecase.NewLoadBindingsUseCase(store, binder)

		// Act
		err := uc.Execute(context.Background())

		// Assert
		require.NoError(t, err)
		table := controls.Table()
		assert.Equal(t, entity.KeySpace, table.Get(entity.ActionFire))
		assert.Equal(t, entity.KeyUnbound, table.Get(entity.ActionUse))
		assert.True(t, controls.AlwaysRun())
	})

	t.Run("passes every registered variable", func(t *testing.T) {
		// Arrange
		_, binder := boundControls(t)
		store := mocks.NewMockVariableStore(t)
		store.EXPECT().Load(mock.Anything, mock.MatchedBy(func(vars []entity.Variable) bool {
			return len(vars) == binder.Len()
		})).Return(nil)

		uc := usecase.NewLoadBindingsUseCase(store, binder)

		// Act
		err := uc.Execute(context.Background())

		// Assert
		require.NoError(t, err)
	})

	t.Run("wraps store errors", func(t *testing.T) {
		// Arrange
		_, binder := boundControls(t)
		store := mocks.NewMockVariableStore(t)
		storeErr := errors.New("disk gone")
		store.EXPECT().Load(mock.Anything, mock.Anything).Return(storeErr)

		uc := usecase.NewLoadBindingsUseCase(store, binder)

		// Act
		err := uc.Execute(context.Background())

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, storeErr)
	})

	t.Run("returns error when store is nil", func(t *testing.T) {
		// Arrange
		uc := usecase.NewLoadBindingsUseCase(nil, keybinding.NewBinder())

		// Act
		err := uc.Execute(context.Background())

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "store is nil")
	})
}

func TestSaveBindingsUseCase_Execute(t *testing.T) {
	t.Run("saves current values", func(t *testing.T) {
		// Arrange
		controls, binder := boundControls(t)
		controls.OnCapture(entity.ActionUse, 'e')
		controls.OnToggle(entity.ToggleAlwaysRun, true)

		saved := map[string]int{}
		store := mocks.NewMockVariableStore(t)
		store.EXPECT().Save(mock.Anything, mock.Anything).
			Run(func(_ context.Context, vars []entity.Variable) {
				for _, v := range vars {
					saved[v.Name] = v.Get()
				}
			}).
			Return(nil)

		uc := usecase.NewSaveBindingsUseCase(store, binder)

		// Act
		err := uc.Execute(context.Background())

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int('e'), saved["key_use"])
		assert.Equal(t, 29, saved[entity.VarJoybSpeed])
		assert.Equal(t, 1, saved[entity.VarVanillaKeyboardMapping])
		assert.Len(t, saved, binder.Len())
	})

	t.Run("wraps store errors", func(t *testing.T) {
		// Arrange
		_, binder := boundControls(t)
		store := mocks.NewMockVariableStore(t)
		store.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("read-only"))

		uc := usecase.NewSaveBindingsUseCase(store, binder)

		// Act
		err := uc.Execute(context.Background())

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "save bindings: read-only")
	})

	t.Run("returns error when binder is nil", func(t *testing.T) {
		// Arrange
		uc := usecase.NewSaveBindingsUseCase(mocks.NewMockVariableStore(t), nil)

		// Act
		err := uc.Execute(context.Background())

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "binder is nil")
	})
}

func TestCaptureKeyUseCase_Execute(t *testing.T) {
	t.Run("evicts the group member holding the key", func(t *testing.T) {
		// Arrange
		controls := keybinding.NewDefaultControls()
		uc := usecase.NewCaptureKeyUseCase(controls)

		// Act
		res, err := uc.Execute(context.Background(), usecase.CaptureKeyInput{
			Action: "fire",
			Key:    "space",
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, entity.ActionFire, res.Action)
		assert.Equal(t, entity.KeySpace, res.Code)
		assert.Equal(t, []entity.Action{entity.ActionUse}, res.Cleared)
		assert.Equal(t, entity.KeyUnbound, controls.Table().Get(entity.ActionUse))
	})

	t.Run("accepts persistence names and unbinds with none", func(t *testing.T) {
		// Arrange
		controls := keybinding.NewDefaultControls()
		uc := usecase.NewCaptureKeyUseCase(controls)

		// Act
		res, err := uc.Execute(context.Background(), usecase.CaptureKeyInput{
			Action: "key_map_grid",
			Key:    "none",
		})

		// Assert
		require.NoError(t, err)
		assert.Empty(t, res.Cleared)
		assert.Equal(t, entity.KeyUnbound, controls.Table().Get(entity.ActionMapGrid))
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		tests := []struct {
			name    string
			in      usecase.CaptureKeyInput
			wantErr error
		}{
			{"unknown action", usecase.CaptureKeyInput{Action: "jump", Key: "j"}, entity.ErrUnknownAction},
			{"invalid key", usecase.CaptureKeyInput{Action: "fire", Key: "HYPER"}, entity.ErrInvalidKey},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				// Arrange
				controls := keybinding.NewDefaultControls()
				before := controls.Table().Snapshot()
				uc := usecase.NewCaptureKeyUseCase(controls)

				// Act
				_, err := uc.Execute(context.Background(), tt.in)

				// Assert
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, before, controls.Table().Snapshot())
			})
		}
	})

	t.Run("returns error when controls is nil", func(t *testing.T) {
		uc := usecase.NewCaptureKeyUseCase(nil)
		_, err := uc.Execute(context.Background(), usecase.CaptureKeyInput{Action: "fire", Key: "f"})
		assert.Error(t, err)
	})
}

func TestToggleUseCase_Execute(t *testing.T) {
	t.Run("always run derives joybspeed", func(t *testing.T) {
		// Arrange
		controls := keybinding.NewDefaultControls()
		uc := usecase.NewToggleUseCase(controls)

		// Act
		res, err := uc.Execute(context.Background(), usecase.ToggleInput{Toggle: "always-run", Enabled: true})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, []entity.DerivedValue{{Name: entity.VarJoybSpeed, Value: 29}}, res.Derived)
		assert.Equal(t, 29, controls.JoybSpeed())
	})

	t.Run("rejects unknown toggle", func(t *testing.T) {
		// Arrange
		uc := usecase.NewToggleUseCase(keybinding.NewDefaultControls())

		// Act
		_, err := uc.Execute(context.Background(), usecase.ToggleInput{Toggle: "god-mode", Enabled: true})

		// Assert
		assert.ErrorIs(t, err, entity.ErrUnknownToggle)
	})
}

func TestResetBindingsUseCase_Execute(t *testing.T) {
	t.Run("resets a single action", func(t *testing.T) {
		// Arrange
		controls := keybinding.NewDefaultControls()
		controls.OnCapture(entity.ActionFire, 'f')
		controls.OnCapture(entity.ActionUse, entity.KeyRCtrl)
		uc := usecase.NewResetBindingsUseCase(controls)

		// Act
		out, err := uc.Execute(context.Background(), usecase.ResetBindingsInput{Action: "fire"})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, []entity.Action{entity.ActionUse}, out.Cleared)
		assert.Equal(t, entity.KeyRCtrl, controls.Table().Get(entity.ActionFire))
	})

	t.Run("resets everything", func(t *testing.T) {
		// Arrange
		controls := keybinding.NewDefaultControls()
		controls.OnCapture(entity.ActionMapGrid, 'm')
		uc := usecase.NewResetBindingsUseCase(controls)

		// Act
		_, err := uc.Execute(context.Background(), usecase.ResetBindingsInput{All: true})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, keybinding.NewDefaultTable().Snapshot(), controls.Table().Snapshot())
	})

	t.Run("requires an action", func(t *testing.T) {
		uc := usecase.NewResetBindingsUseCase(keybinding.NewDefaultControls())
		_, err := uc.Execute(context.Background(), usecase.ResetBindingsInput{})
		assert.ErrorIs(t, err, usecase.ErrActionRequired)
	})
}

func TestListBindingsUseCase_Execute(t *testing.T) {
	// Arrange
	controls := keybinding.NewDefaultControls()
	controls.OnCapture(entity.ActionFire, 'f')
	uc := usecase.NewListBindingsUseCase(controls, keybinding.DefaultRegistry())

	// Act
	view, err := uc.Execute(context.Background())

	// Assert
	require.NoError(t, err)
	require.Len(t, view.Groups, 5)

	ids := make([]string, len(view.Groups))
	for i, g := range view.Groups {
		ids[i] = g.Group
	}
	assert.Equal(t, []string{"controls", "menu-navigation", "shortcuts", "map", usecase.OtherGroupID}, ids)

	var fire, confirm *struct {
		key      string
		isCustom bool
	}
	for _, g := range view.Groups {
		for _, b := range g.Bindings {
			switch b.Action {
			case string(entity.ActionFire):
				fire = &struct {
					key      string
					isCustom bool
				}{b.Key, b.IsCustom}
				assert.Equal(t, "RCTRL", b.DefaultKey)
			case string(entity.ActionMenuConfirm):
				assert.Equal(t, usecase.OtherGroupID, g.Group)
				confirm = &struct {
					key      string
					isCustom bool
				}{b.Key, b.IsCustom}
			}
		}
	}
	require.NotNil(t, fire)
	assert.Equal(t, "F", fire.key)
	assert.True(t, fire.isCustom)
	require.NotNil(t, confirm)
	assert.Equal(t, "Y", confirm.key)
	assert.False(t, confirm.isCustom)

	require.Len(t, view.Toggles, 2)
	assert.Equal(t, "always-run", view.Toggles[0].Toggle)
	assert.False(t, view.Toggles[0].Enabled)
	assert.True(t, view.Toggles[1].Enabled)
	assert.Equal(t, 0, view.JoybSpeed)
}
