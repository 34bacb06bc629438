package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/keysetup/internal/cli/styles"
	"github.com/bnema/keysetup/internal/infrastructure/config"
)

const exportFilePerm = 0o644

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write every variable to a TOML file",
	Long: `Write every binding variable to a TOML file, whatever the storage
backend. The file can be loaded back with 'keysetup import'.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Load variables from a TOML file",
	Long: `Load binding variables from a TOML file and save them to the configured
store. Variables missing from the file keep their current value; a key that
conflicts inside its group unbinds the earlier holder.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	vars := a.Binder.Variables()
	data, err := config.EncodeVariables(vars)
	if err != nil {
		return err
	}
	if err := os.WriteFile(args[0], data, exportFilePerm); err != nil {
		return fmt.Errorf("write %s: %w", args[0], err)
	}

	fmt.Print(styles.NewBindingsRenderer(a.Theme).RenderExported(args[0], len(vars)))
	return nil
}

func runImport(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	if _, err := os.Stat(args[0]); err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	source := config.NewFileVariableStore(args[0])
	if err := source.Load(a.Ctx(), a.Binder.Variables()); err != nil {
		return err
	}

	return persist(a)
}
