package keybinding

import "github.com/bnema/keysetup/internal/domain/entity"

// Bindings is the mutable action to key code map owned by a Table.
type Bindings map[entity.Action]entity.KeyCode

// Resolver enforces group exclusivity after a single binding change.
type Resolver struct {
	registry *Registry
}

// NewResolver creates a resolver over the given registry.
func NewResolver(registry *Registry) *Resolver {
	return &Resolver{registry: registry}
}

// Resolve clears every other member of the changed action's groups that
// holds code, and returns the cleared actions in group order.
//
// The newest assignment always wins. Clearing writes KeyUnbound directly,
// which can never conflict, so no further resolution is needed. Actions in
// other groups may keep the same code.
func (r *Resolver) Resolve(bindings Bindings, changed entity.Action, code entity.KeyCode) []entity.Action {
	if code == entity.KeyUnbound {
		return nil
	}

	var cleared []entity.Action
	r.registry.members(changed, func(other entity.Action) {
		if other == changed {
			return
		}
		if bindings[other] == code {
			bindings[other] = entity.KeyUnbound
			cleared = append(cleared, other)
		}
	})
	return cleared
}
