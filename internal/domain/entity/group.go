package entity

import "slices"

// GroupID identifies an exclusivity group.
type GroupID string

const (
	GroupControls  GroupID = "controls"
	GroupMenuNav   GroupID = "menu-navigation"
	GroupShortcuts GroupID = "shortcuts"
	GroupMap       GroupID = "map"
)

// Group is an ordered set of actions that must hold pairwise distinct
// non-zero key codes.
type Group struct {
	ID      GroupID
	Label   string
	Actions []Action
}

// Contains reports whether the action is a member of the group.
func (g Group) Contains(a Action) bool {
	return slices.Contains(g.Actions, a)
}

// Clone returns a copy that does not share the action slice.
func (g Group) Clone() Group {
	g.Actions = slices.Clone(g.Actions)
	return g
}
