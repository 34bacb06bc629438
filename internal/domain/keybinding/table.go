package keybinding

import (
	"fmt"

	"github.com/bnema/keysetup/internal/domain/entity"
)

// Table holds the current key code of every action. Set is its only
// mutation entry point; group exclusivity is enforced as a side effect.
//
// A Table is not safe for concurrent use. Updates are expected to arrive one
// at a time from a single event loop.
type Table struct {
	resolver *Resolver
	order    []entity.Action
	defaults Bindings
	current  Bindings
}

// NewTable creates a table for the given actions and their default codes.
// Defaults are applied through Set in order, so a later default evicts an
// earlier one that collides with it in a group.
func NewTable(registry *Registry, defaults []entity.Binding) *Table {
	t := &Table{
		resolver: NewResolver(registry),
		order:    make([]entity.Action, 0, len(defaults)),
		defaults: make(Bindings, len(defaults)),
		current:  make(Bindings, len(defaults)),
	}
	for _, b := range defaults {
		if _, dup := t.defaults[b.Action]; dup {
			panic(fmt.Sprintf("keybinding: action %q has two defaults", b.Action))
		}
		t.order = append(t.order, b.Action)
		t.defaults[b.Action] = b.Code
		t.current[b.Action] = entity.KeyUnbound
	}
	t.ResetAll()
	return t
}

// NewDefaultTable creates a table with the compiled-in groups and defaults.
func NewDefaultTable() *Table {
	return NewTable(DefaultRegistry(), DefaultBindings())
}

// Has reports whether the table knows the action.
func (t *Table) Has(a entity.Action) bool {
	_, ok := t.current[a]
	return ok
}

// Get returns the current code of an action, KeyUnbound when unbound.
func (t *Table) Get(a entity.Action) entity.KeyCode {
	t.mustHave(a)
	return t.current[a]
}

// Default returns the compiled-in code of an action.
func (t *Table) Default(a entity.Action) entity.KeyCode {
	t.mustHave(a)
	return t.defaults[a]
}

// Set overwrites the binding of a and resolves group conflicts. It returns
// the other actions that were cleared as a result.
func (t *Table) Set(a entity.Action, code entity.KeyCode) []entity.Action {
	t.mustHave(a)
	t.current[a] = code
	return t.resolver.Resolve(t.current, a, code)
}

// Reset restores the default code of a, resolving conflicts like Set.
func (t *Table) Reset(a entity.Action) []entity.Action {
	return t.Set(a, t.Default(a))
}

// ResetAll restores every default.
func (t *Table) ResetAll() {
	for _, a := range t.order {
		t.current[a] = entity.KeyUnbound
	}
	for _, a := range t.order {
		t.Set(a, t.defaults[a])
	}
}

// Actions returns the known actions in canonical order.
func (t *Table) Actions() []entity.Action {
	out := make([]entity.Action, len(t.order))
	copy(out, t.order)
	return out
}

// Snapshot returns the current bindings in canonical order.
func (t *Table) Snapshot() []entity.Binding {
	out := make([]entity.Binding, len(t.order))
	for i, a := range t.order {
		out[i] = entity.Binding{Action: a, Code: t.current[a]}
	}
	return out
}

func (t *Table) mustHave(a entity.Action) {
	if _, ok := t.current[a]; !ok {
		panic(fmt.Sprintf("keybinding: unknown action %q", a))
	}
}
