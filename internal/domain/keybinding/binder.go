package keybinding

import (
	"fmt"

	"github.com/bnema/keysetup/internal/domain/entity"
)

// Binder collects the named variables a persistence store loads at startup
// and writes back on save. It never performs I/O itself.
type Binder struct {
	vars  []entity.Variable
	index map[string]int
}

// NewBinder creates an empty binder.
func NewBinder() *Binder {
	return &Binder{index: make(map[string]int)}
}

// Register declares a variable under name.
func (b *Binder) Register(name string, get func() int, set func(int)) error {
	if name == "" || get == nil || set == nil {
		return fmt.Errorf("%w: %q", entity.ErrInvalidVariable, name)
	}
	if _, exists := b.index[name]; exists {
		return fmt.Errorf("%w: %s", entity.ErrDuplicateVariable, name)
	}
	b.index[name] = len(b.vars)
	b.vars = append(b.vars, entity.Variable{Name: name, Get: get, Set: set})
	return nil
}

// MustRegister registers a variable and panics on error.
func (b *Binder) MustRegister(name string, get func() int, set func(int)) {
	if err := b.Register(name, get, set); err != nil {
		panic(err)
	}
}

// RegisterInt binds an int directly.
func (b *Binder) RegisterInt(name string, p *int) error {
	if p == nil {
		return fmt.Errorf("%w: %q has nil target", entity.ErrInvalidVariable, name)
	}
	return b.Register(name,
		func() int { return *p },
		func(v int) { *p = v },
	)
}

// RegisterBool binds a bool stored as 0 or 1.
func (b *Binder) RegisterBool(name string, p *bool) error {
	if p == nil {
		return fmt.Errorf("%w: %q has nil target", entity.ErrInvalidVariable, name)
	}
	return b.Register(name,
		func() int { return boolToInt(*p) },
		func(v int) { *p = v != 0 },
	)
}

// Variables returns the registered variables in registration order.
func (b *Binder) Variables() []entity.Variable {
	out := make([]entity.Variable, len(b.vars))
	copy(out, b.vars)
	return out
}

// Lookup returns the variable registered under name.
func (b *Binder) Lookup(name string) (entity.Variable, bool) {
	i, ok := b.index[name]
	if !ok {
		return entity.Variable{}, false
	}
	return b.vars[i], true
}

// Len returns the number of registered variables.
func (b *Binder) Len() int {
	return len(b.vars)
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
