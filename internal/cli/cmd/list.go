package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/keysetup/internal/application/port"
	"github.com/bnema/keysetup/internal/cli"
	"github.com/bnema/keysetup/internal/cli/styles"
	"github.com/bnema/keysetup/internal/infrastructure/config"
	"github.com/bnema/keysetup/internal/logging"
)

var (
	listJSON  bool
	listWatch bool
	listGroup string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show every binding by group",
	Long: `Show the bindings of every group, the keys outside any group and the
toggles.

Custom bindings are marked with '*'. With --watch the view is printed again
whenever the bindings file changes (file backend only), and restyled when
the palette in config.toml changes.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print the bindings as JSON")
	listCmd.Flags().BoolVarP(&listWatch, "watch", "w", false, "print again when the bindings file changes")
	listCmd.Flags().StringVarP(&listGroup, "group", "g", "", "only show one group (controls, menu-navigation, shortcuts, map, other)")
}

func runList(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	if err := printBindings(a); err != nil {
		return err
	}
	if !listWatch {
		return nil
	}
	return watchBindings(a)
}

func printBindings(a *cli.App) error {
	view, err := a.ListBindingsUC.Execute(a.Ctx())
	if err != nil {
		return err
	}

	if listGroup != "" {
		view, err = filterGroup(view, listGroup)
		if err != nil {
			return err
		}
	}

	if listJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}

	fmt.Println(styles.NewBindingsRenderer(a.Theme).RenderView(view))
	return nil
}

// filterGroup keeps only the named group and drops the toggles.
func filterGroup(view port.KeybindingsView, group string) (port.KeybindingsView, error) {
	for _, g := range view.Groups {
		if g.Group == group {
			return port.KeybindingsView{Groups: []port.KeybindingGroup{g}}, nil
		}
	}
	return port.KeybindingsView{}, fmt.Errorf("unknown group %q", group)
}

func watchBindings(a *cli.App) error {
	watchable, ok := a.Store.(port.WatchableStore)
	if !ok {
		return fmt.Errorf("--watch needs the file storage backend")
	}

	ctx, stop := signal.NotifyContext(a.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log := logging.FromContext(ctx)

	fmt.Println(styles.NewBindingsRenderer(a.Theme).RenderWatching(a.StoreLocation()))

	// Both watchers only signal; rendering stays on this goroutine.
	changed := make(chan struct{}, 1)
	configs := make(chan *config.Config, 1)

	if a.ConfigManager != nil {
		a.ConfigManager.OnConfigChange(func(cfg *config.Config) {
			select {
			case configs <- cfg:
			default:
			}
		})
		if err := a.ConfigManager.Watch(); err != nil {
			log.Warn().Err(err).Msg("config watch unavailable")
		}
	}

	done := make(chan error, 1)
	go func() {
		done <- watchable.Watch(ctx, func() {
			select {
			case changed <- struct{}{}:
			default:
			}
		})
	}()

	for {
		select {
		case err := <-done:
			return err
		case cfg := <-configs:
			a.Theme = styles.NewTheme(cfg)
			log.Debug().Msg("palette reloaded")
			if err := printBindings(a); err != nil {
				log.Warn().Err(err).Msg("render bindings")
			}
		case <-changed:
			if err := a.Reload(); err != nil {
				log.Warn().Err(err).Msg("reload bindings")
				fmt.Println(styles.NewBindingsRenderer(a.Theme).RenderError(err))
				continue
			}
			if err := printBindings(a); err != nil {
				log.Warn().Err(err).Msg("render bindings")
			}
		}
	}
}
