// Package keybinding holds the binding table and the group exclusivity rules
// applied whenever a binding changes.
package keybinding

import (
	"fmt"

	"github.com/bnema/keysetup/internal/domain/entity"
)

// Registry is the immutable set of exclusivity groups with a reverse index
// from action to the groups it belongs to.
type Registry struct {
	groups   []entity.Group
	byID     map[entity.GroupID]int
	byAction map[entity.Action][]int
}

// NewRegistry builds a registry from group definitions.
func NewRegistry(groups ...entity.Group) (*Registry, error) {
	r := &Registry{
		groups:   make([]entity.Group, 0, len(groups)),
		byID:     make(map[entity.GroupID]int, len(groups)),
		byAction: make(map[entity.Action][]int),
	}

	for _, g := range groups {
		if g.ID == "" {
			return nil, fmt.Errorf("%w: empty group id", entity.ErrInvalidGroup)
		}
		if _, exists := r.byID[g.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate group %q", entity.ErrInvalidGroup, g.ID)
		}

		seen := make(map[entity.Action]struct{}, len(g.Actions))
		for _, a := range g.Actions {
			if _, dup := seen[a]; dup {
				return nil, fmt.Errorf("%w: action %q listed twice in group %q", entity.ErrInvalidGroup, a, g.ID)
			}
			seen[a] = struct{}{}
		}

		idx := len(r.groups)
		r.groups = append(r.groups, g.Clone())
		r.byID[g.ID] = idx
		for _, a := range g.Actions {
			r.byAction[a] = append(r.byAction[a], idx)
		}
	}

	return r, nil
}

// MustNewRegistry is like NewRegistry but panics on malformed definitions.
func MustNewRegistry(groups ...entity.Group) *Registry {
	r, err := NewRegistry(groups...)
	if err != nil {
		panic(err)
	}
	return r
}

// GroupsContaining returns every group the action participates in.
func (r *Registry) GroupsContaining(a entity.Action) []entity.Group {
	indexes := r.byAction[a]
	if len(indexes) == 0 {
		return nil
	}
	out := make([]entity.Group, len(indexes))
	for i, idx := range indexes {
		out[i] = r.groups[idx].Clone()
	}
	return out
}

// IsGrouped reports whether the action is constrained by any group.
func (r *Registry) IsGrouped(a entity.Action) bool {
	return len(r.byAction[a]) > 0
}

// Groups returns all groups in definition order.
func (r *Registry) Groups() []entity.Group {
	out := make([]entity.Group, len(r.groups))
	for i, g := range r.groups {
		out[i] = g.Clone()
	}
	return out
}

// Group returns a group by id.
func (r *Registry) Group(id entity.GroupID) (entity.Group, bool) {
	idx, ok := r.byID[id]
	if !ok {
		return entity.Group{}, false
	}
	return r.groups[idx].Clone(), true
}

// members iterates the actions of every group containing a without copying.
func (r *Registry) members(a entity.Action, fn func(other entity.Action)) {
	for _, idx := range r.byAction[a] {
		for _, other := range r.groups[idx].Actions {
			fn(other)
		}
	}
}
