package sqlite

import (
	"context"
	"fmt"

	"github.com/bnema/keysetup/internal/application/port"
	"github.com/bnema/keysetup/internal/domain/entity"
	"github.com/bnema/keysetup/internal/logging"
)

const (
	selectVariablesSQL = `SELECT name, value FROM variables`
	upsertVariableSQL  = `INSERT INTO variables (name, value, updated_at)
VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
)

// VariableStore persists variables as rows of the variables table.
type VariableStore struct {
	provider port.DatabaseProvider
}

// Compile-time interface check.
var _ port.VariableStore = (*VariableStore)(nil)

// NewVariableStore creates a SQLite-backed variable store.
func NewVariableStore(provider port.DatabaseProvider) *VariableStore {
	return &VariableStore{provider: provider}
}

// Load applies every stored row to the variable of the same name.
// Variables without a row keep their values.
func (s *VariableStore) Load(ctx context.Context, vars []entity.Variable) error {
	log := logging.FromContext(ctx)

	db, err := s.provider.DB(ctx)
	if err != nil {
		return err
	}

	rows, err := db.QueryContext(ctx, selectVariablesSQL)
	if err != nil {
		return fmt.Errorf("failed to query variables: %w", err)
	}
	defer func() { _ = rows.Close() }()

	stored := make(map[string]int)
	for rows.Next() {
		var (
			name  string
			value int
		)
		if err := rows.Scan(&name, &value); err != nil {
			return fmt.Errorf("failed to scan variable: %w", err)
		}
		stored[name] = value
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read variables: %w", err)
	}

	applied := 0
	for _, v := range vars {
		if value, ok := stored[v.Name]; ok {
			v.Set(value)
			applied++
		}
	}

	log.Debug().Int("stored", len(stored)).Int("applied", applied).Msg("variables loaded from database")
	return nil
}

// Save writes every variable in a single transaction.
func (s *VariableStore) Save(ctx context.Context, vars []entity.Variable) error {
	db, err := s.provider.DB(ctx)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, upsertVariableSQL)
	if err != nil {
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, v := range vars {
		if _, err := stmt.ExecContext(ctx, v.Name, v.Get()); err != nil {
			return fmt.Errorf("failed to save variable %s: %w", v.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit variables: %w", err)
	}

	logging.FromContext(ctx).Debug().Int("variables", len(vars)).Msg("variables saved to database")
	return nil
}
