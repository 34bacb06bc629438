package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/keysetup/internal/application/usecase"
	"github.com/bnema/keysetup/internal/cli/styles"
)

var resetAll bool

var resetCmd = &cobra.Command{
	Use:   "reset [action]",
	Short: "Restore default bindings",
	Long: `Restore the default key of one action, or every binding with --all.

Restoring a single default follows the same rule as binding a key: another
action of the group holding that key is unbound.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVarP(&resetAll, "all", "a", false, "restore every binding")
}

func runReset(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	in := usecase.ResetBindingsInput{All: resetAll}
	if len(args) == 1 {
		in.Action = args[0]
	}

	out, err := a.ResetBindingsUC.Execute(a.Ctx(), in)
	if err != nil {
		return err
	}
	fmt.Print(styles.NewBindingsRenderer(a.Theme).RenderReset(in.Action, in.All, out.Cleared))

	return persist(a)
}
