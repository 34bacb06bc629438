package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/keysetup/internal/application/port"
	"github.com/bnema/keysetup/internal/domain/entity"
	"github.com/bnema/keysetup/internal/domain/keybinding"
	"github.com/bnema/keysetup/internal/logging"
)

// ErrActionRequired is returned when a reset names no action and does not ask
// for a full reset.
var ErrActionRequired = errors.New("action is required")

// LoadBindingsUseCase fills the bound variables from a store.
type LoadBindingsUseCase struct {
	store  port.VariableStore
	binder *keybinding.Binder
}

// NewLoadBindingsUseCase creates a new LoadBindingsUseCase.
func NewLoadBindingsUseCase(store port.VariableStore, binder *keybinding.Binder) *LoadBindingsUseCase {
	return &LoadBindingsUseCase{store: store, binder: binder}
}

// Execute loads every registered variable. Names missing from the store keep
// their current values.
func (uc *LoadBindingsUseCase) Execute(ctx context.Context) error {
	if uc == nil || uc.store == nil {
		return fmt.Errorf("variable store is nil")
	}
	if uc.binder == nil {
		return fmt.Errorf("binder is nil")
	}

	ctx = logging.WithComponent(ctx, "bindings")
	vars := uc.binder.Variables()
	if err := uc.store.Load(ctx, vars); err != nil {
		return fmt.Errorf("load bindings: %w", err)
	}

	logging.FromContext(ctx).Debug().Int("variables", len(vars)).Msg("bindings loaded")
	return nil
}

// SaveBindingsUseCase writes the bound variables to a store.
type SaveBindingsUseCase struct {
	store  port.VariableStore
	binder *keybinding.Binder
}

// NewSaveBindingsUseCase creates a new SaveBindingsUseCase.
func NewSaveBindingsUseCase(store port.VariableStore, binder *keybinding.Binder) *SaveBindingsUseCase {
	return &SaveBindingsUseCase{store: store, binder: binder}
}

// Execute saves every registered variable.
func (uc *SaveBindingsUseCase) Execute(ctx context.Context) error {
	if uc == nil || uc.store == nil {
		return fmt.Errorf("variable store is nil")
	}
	if uc.binder == nil {
		return fmt.Errorf("binder is nil")
	}

	ctx = logging.WithComponent(ctx, "bindings")
	vars := uc.binder.Variables()
	if err := uc.store.Save(ctx, vars); err != nil {
		return fmt.Errorf("save bindings: %w", err)
	}

	logging.FromContext(ctx).Debug().Int("variables", len(vars)).Msg("bindings saved")
	return nil
}

// CaptureKeyInput names the action and the key to bind to it.
type CaptureKeyInput struct {
	Action string
	// Key accepts a key name ("UP"), a single character or a raw code.
	// "NONE" unbinds the action.
	Key string
}

// CaptureKeyUseCase binds a key to an action, evicting conflicting bindings.
type CaptureKeyUseCase struct {
	controls *keybinding.Controls
}

// NewCaptureKeyUseCase creates a new CaptureKeyUseCase.
func NewCaptureKeyUseCase(controls *keybinding.Controls) *CaptureKeyUseCase {
	return &CaptureKeyUseCase{controls: controls}
}

// Execute validates the input and applies the capture.
func (uc *CaptureKeyUseCase) Execute(ctx context.Context, in CaptureKeyInput) (keybinding.CaptureResult, error) {
	if uc == nil || uc.controls == nil {
		return keybinding.CaptureResult{}, fmt.Errorf("controls is nil")
	}

	action, err := parseTableAction(uc.controls.Table(), in.Action)
	if err != nil {
		return keybinding.CaptureResult{}, err
	}
	code, err := entity.ParseKey(in.Key)
	if err != nil {
		return keybinding.CaptureResult{}, err
	}

	res := uc.controls.OnCapture(action, code)

	log := logging.FromContext(logging.WithAction(ctx, string(action)))
	for _, cleared := range res.Cleared {
		log.Info().
			Str("cleared", string(cleared)).
			Str("key", entity.KeyName(code)).
			Msg("binding cleared")
	}
	log.Debug().Int("code", int(code)).Msg("key captured")

	return res, nil
}

// ToggleInput names a toggle and its new state.
type ToggleInput struct {
	Toggle  string
	Enabled bool
}

// ToggleUseCase changes a boolean control.
type ToggleUseCase struct {
	controls *keybinding.Controls
}

// NewToggleUseCase creates a new ToggleUseCase.
func NewToggleUseCase(controls *keybinding.Controls) *ToggleUseCase {
	return &ToggleUseCase{controls: controls}
}

// Execute validates the toggle name and applies the change.
func (uc *ToggleUseCase) Execute(ctx context.Context, in ToggleInput) (keybinding.ToggleResult, error) {
	if uc == nil || uc.controls == nil {
		return keybinding.ToggleResult{}, fmt.Errorf("controls is nil")
	}

	toggle, err := entity.ParseToggle(in.Toggle)
	if err != nil {
		return keybinding.ToggleResult{}, err
	}

	res := uc.controls.OnToggle(toggle, in.Enabled)

	log := logging.FromContext(ctx)
	for _, d := range res.Derived {
		log.Debug().Str("variable", d.Name).Int("value", d.Value).Msg("derived value updated")
	}

	return res, nil
}

// ResetBindingsInput selects what to reset.
type ResetBindingsInput struct {
	Action string
	All    bool
}

// ResetBindingsOutput lists the actions evicted by a single-action reset.
type ResetBindingsOutput struct {
	Cleared []entity.Action
}

// ResetBindingsUseCase restores compiled-in defaults.
type ResetBindingsUseCase struct {
	controls *keybinding.Controls
}

// NewResetBindingsUseCase creates a new ResetBindingsUseCase.
func NewResetBindingsUseCase(controls *keybinding.Controls) *ResetBindingsUseCase {
	return &ResetBindingsUseCase{controls: controls}
}

// Execute resets one action or, with All, the whole table.
func (uc *ResetBindingsUseCase) Execute(ctx context.Context, in ResetBindingsInput) (ResetBindingsOutput, error) {
	if uc == nil || uc.controls == nil {
		return ResetBindingsOutput{}, fmt.Errorf("controls is nil")
	}

	log := logging.FromContext(ctx)
	table := uc.controls.Table()

	if in.All {
		table.ResetAll()
		log.Info().Msg("all bindings reset to defaults")
		return ResetBindingsOutput{}, nil
	}

	if in.Action == "" {
		return ResetBindingsOutput{}, ErrActionRequired
	}

	action, err := parseTableAction(table, in.Action)
	if err != nil {
		return ResetBindingsOutput{}, err
	}

	cleared := table.Reset(action)
	logging.FromContext(logging.WithAction(ctx, string(action))).Info().
		Int("cleared", len(cleared)).
		Msg("binding reset to default")

	return ResetBindingsOutput{Cleared: cleared}, nil
}

// ListBindingsUseCase builds the grouped view of the current configuration.
type ListBindingsUseCase struct {
	controls *keybinding.Controls
	registry *keybinding.Registry
}

// NewListBindingsUseCase creates a new ListBindingsUseCase.
func NewListBindingsUseCase(controls *keybinding.Controls, registry *keybinding.Registry) *ListBindingsUseCase {
	return &ListBindingsUseCase{controls: controls, registry: registry}
}

// OtherGroupID holds the actions that belong to no exclusivity group.
const OtherGroupID = "other"

// Execute returns every group in registry order, followed by the ungrouped
// actions. An action in several groups is listed under each of them.
func (uc *ListBindingsUseCase) Execute(_ context.Context) (port.KeybindingsView, error) {
	if uc == nil || uc.controls == nil {
		return port.KeybindingsView{}, fmt.Errorf("controls is nil")
	}
	if uc.registry == nil {
		return port.KeybindingsView{}, fmt.Errorf("registry is nil")
	}

	table := uc.controls.Table()
	view := port.KeybindingsView{JoybSpeed: uc.controls.JoybSpeed()}

	for _, g := range uc.registry.Groups() {
		group := port.KeybindingGroup{Group: string(g.ID), DisplayName: g.Label}
		for _, a := range g.Actions {
			if !table.Has(a) {
				continue
			}
			group.Bindings = append(group.Bindings, entryFor(table, a))
		}
		view.Groups = append(view.Groups, group)
	}

	other := port.KeybindingGroup{Group: OtherGroupID, DisplayName: "Other keys"}
	for _, a := range table.Actions() {
		if !uc.registry.IsGrouped(a) {
			other.Bindings = append(other.Bindings, entryFor(table, a))
		}
	}
	if len(other.Bindings) > 0 {
		view.Groups = append(view.Groups, other)
	}

	for _, t := range entity.Toggles() {
		view.Toggles = append(view.Toggles, port.ToggleEntry{
			Toggle:  string(t),
			Enabled: uc.controls.ToggleState(t),
		})
	}

	return view, nil
}

func entryFor(table *keybinding.Table, a entity.Action) port.KeybindingEntry {
	code := table.Get(a)
	def := table.Default(a)
	return port.KeybindingEntry{
		Action:      string(a),
		Name:        a.Name(),
		Label:       a.Label(),
		Key:         entity.KeyName(code),
		Code:        int(code),
		DefaultKey:  entity.KeyName(def),
		DefaultCode: int(def),
		IsCustom:    code != def,
	}
}

func parseTableAction(table *keybinding.Table, s string) (entity.Action, error) {
	action, err := entity.ParseAction(s)
	if err != nil {
		return "", err
	}
	if !table.Has(action) {
		return "", &entity.UnknownError{Kind: entity.ErrUnknownAction, Value: s}
	}
	return action, nil
}
