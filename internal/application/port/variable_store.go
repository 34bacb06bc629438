package port

import (
	"context"

	"github.com/bnema/keysetup/internal/domain/entity"
)

// VariableStore persists named integer variables.
//
// Load calls the setter of every variable that has a stored value; absent
// names keep whatever value they already hold. Save writes the getter value
// of every variable as a single operation.
type VariableStore interface {
	Load(ctx context.Context, vars []entity.Variable) error
	Save(ctx context.Context, vars []entity.Variable) error
}

// WatchableStore is a VariableStore that can report external changes.
type WatchableStore interface {
	VariableStore
	Watch(ctx context.Context, onChange func()) error
}
