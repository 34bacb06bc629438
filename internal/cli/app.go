// Package cli wires the keysetup command line application.
package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/keysetup/internal/application/port"
	"github.com/bnema/keysetup/internal/application/usecase"
	"github.com/bnema/keysetup/internal/cli/styles"
	"github.com/bnema/keysetup/internal/domain/build"
	"github.com/bnema/keysetup/internal/domain/keybinding"
	"github.com/bnema/keysetup/internal/infrastructure/config"
	"github.com/bnema/keysetup/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/keysetup/internal/logging"
)

// Options tweaks how the App is built.
type Options struct {
	// ConfigDir replaces the XDG directories when set.
	ConfigDir string
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info

	Registry *keybinding.Registry
	Controls *keybinding.Controls
	Binder   *keybinding.Binder
	Store    port.VariableStore
	db       *sqlite.LazyDB

	// Use cases
	LoadBindingsUC  *usecase.LoadBindingsUseCase
	SaveBindingsUC  *usecase.SaveBindingsUseCase
	CaptureKeyUC    *usecase.CaptureKeyUseCase
	ToggleUC        *usecase.ToggleUseCase
	ResetBindingsUC *usecase.ResetBindingsUseCase
	ListBindingsUC  *usecase.ListBindingsUseCase

	// Context with logger
	ctx context.Context
}

// NewApp creates a new CLI application and loads the stored bindings.
func NewApp(opts Options) (*App, error) {
	mgr, cfg, cfgErr := loadConfig(opts.ConfigDir)

	level, format := logging.ApplyEnv(cfg.Logging.Level, cfg.Logging.Format)
	logger := logging.NewFromConfigValues(level, format)
	ctx := logging.WithContext(context.Background(), logger)

	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Msg("using default configuration")
	}

	registry := keybinding.DefaultRegistry()
	controls := keybinding.NewControls(keybinding.NewTable(registry, keybinding.DefaultBindings()))
	binder := keybinding.NewBinder()
	if err := controls.Bind(binder); err != nil {
		return nil, fmt.Errorf("bind variables: %w", err)
	}

	store, db, err := newStore(cfg, opts.ConfigDir)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:          cfg,
		ConfigManager:   mgr,
		Theme:           styles.NewTheme(cfg),
		Registry:        registry,
		Controls:        controls,
		Binder:          binder,
		Store:           store,
		db:              db,
		LoadBindingsUC:  usecase.NewLoadBindingsUseCase(store, binder),
		SaveBindingsUC:  usecase.NewSaveBindingsUseCase(store, binder),
		CaptureKeyUC:    usecase.NewCaptureKeyUseCase(controls),
		ToggleUC:        usecase.NewToggleUseCase(controls),
		ResetBindingsUC: usecase.NewResetBindingsUseCase(controls),
		ListBindingsUC:  usecase.NewListBindingsUseCase(controls, registry),
		ctx:             ctx,
	}

	if err := app.LoadBindingsUC.Execute(ctx); err != nil {
		_ = app.Close()
		return nil, err
	}

	logger.Debug().
		Str("backend", string(cfg.Storage.Backend)).
		Str("location", app.StoreLocation()).
		Int("variables", binder.Len()).
		Msg("bindings loaded")

	return app, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return logging.FromContext(a.ctx)
}

// Persist writes the current state through the configured store.
func (a *App) Persist() error {
	return a.SaveBindingsUC.Execute(a.ctx)
}

// Reload restores defaults and reapplies the stored values.
func (a *App) Reload() error {
	a.Controls.ResetAll()
	return a.LoadBindingsUC.Execute(a.ctx)
}

// StoreLocation returns the file backing the configured store.
func (a *App) StoreLocation() string {
	if a.Config.Storage.Backend == config.StorageBackendSQLite {
		return a.Config.Storage.DatabasePath
	}
	return a.Config.Storage.BindingsFile
}

// loadConfig loads configuration from the standard locations, or from dir
// when set. The defaults are returned alongside the error on failure.
func loadConfig(dir string) (*config.Manager, *config.Config, error) {
	var (
		mgr *config.Manager
		err error
	)
	if dir != "" {
		mgr, err = config.NewManagerWithDir(dir)
	} else {
		mgr, err = config.NewManager()
	}
	if err != nil {
		return nil, config.DefaultConfig(), err
	}

	if err := mgr.Load(); err != nil {
		return mgr, config.DefaultConfig(), err
	}

	return mgr, mgr.Get(), nil
}

// newStore builds the variable store selected by the storage backend.
func newStore(cfg *config.Config, dir string) (port.VariableStore, *sqlite.LazyDB, error) {
	if err := config.ResolveStoragePaths(cfg, dir); err != nil {
		return nil, nil, err
	}

	switch cfg.Storage.Backend {
	case config.StorageBackendSQLite:
		db := sqlite.NewLazyDB(cfg.Storage.DatabasePath)
		return sqlite.NewVariableStore(db), db, nil
	case config.StorageBackendFile, "":
		cfg.Storage.Backend = config.StorageBackendFile
		return config.NewFileVariableStore(cfg.Storage.BindingsFile), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
