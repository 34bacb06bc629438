package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/keysetup/internal/application/usecase"
	"github.com/bnema/keysetup/internal/cli"
	"github.com/bnema/keysetup/internal/cli/model"
	"github.com/bnema/keysetup/internal/cli/styles"
	"github.com/bnema/keysetup/internal/domain/entity"
)

var bindCmd = &cobra.Command{
	Use:   "bind <action> [key]",
	Short: "Bind a key to an action",
	Long: `Bind a key to an action. Without a key, wait for a key press.

Keys are given by name (UP, SPACE, RCTRL, F5), as a single character, or as
a raw code with a '#' prefix (#157). Any other action of the same group that
used the key is unbound.

Actions accept their identifier (fire) or their variable name (key_fire).

Examples:
  keysetup bind fire           # Press the key to use
  keysetup bind fire RCTRL
  keysetup bind key_use e`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runBind,
}

var unbindCmd = &cobra.Command{
	Use:   "unbind <action>",
	Short: "Remove the key bound to an action",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		return captureAndSave(a, args[0], "NONE")
	},
}

func init() {
	rootCmd.AddCommand(bindCmd)
	rootCmd.AddCommand(unbindCmd)
}

func runBind(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	if len(args) == 2 {
		return captureAndSave(a, args[0], args[1])
	}
	return captureInteractive(a, args[0])
}

func captureAndSave(a *cli.App, action, key string) error {
	renderer := styles.NewBindingsRenderer(a.Theme)

	res, err := a.CaptureKeyUC.Execute(a.Ctx(), usecase.CaptureKeyInput{Action: action, Key: key})
	if err != nil {
		return err
	}
	fmt.Print(renderer.RenderCapture(res))

	return persist(a)
}

func captureInteractive(a *cli.App, action string) error {
	parsed, err := entity.ParseAction(action)
	if err != nil {
		return err
	}
	if !a.Controls.Table().Has(parsed) {
		return fmt.Errorf("action %q has no binding", action)
	}

	m := model.NewCaptureModel(a.Ctx(), a.Theme, a.CaptureKeyUC, parsed)
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return fmt.Errorf("capture key: %w", err)
	}

	captured, ok := final.(model.CaptureModel)
	if !ok {
		return fmt.Errorf("capture key: unexpected model %T", final)
	}
	if captured.Err() != nil {
		return captured.Err()
	}
	if captured.Result() == nil {
		return nil
	}

	return persist(a)
}

// persist saves the bindings and reports where they went.
func persist(a *cli.App) error {
	if err := a.Persist(); err != nil {
		return err
	}
	fmt.Print(styles.NewBindingsRenderer(a.Theme).RenderSaved(a.StoreLocation()))
	return nil
}
