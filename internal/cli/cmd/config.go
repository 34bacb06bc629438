package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/keysetup/internal/application/usecase"
	"github.com/bnema/keysetup/internal/cli/styles"
	"github.com/bnema/keysetup/internal/infrastructure/config"
)

var (
	schemaOutput string
	keysJSON     bool
	keysSection  string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show where keysetup keeps its files and export the config JSON schema.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file and the bindings store",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of config.toml",
	Long: `Print the JSON schema of config.toml, or write it to a file with
--output. Editors use it for completion and validation.`,
	Args: cobra.NoArgs,
	RunE: runConfigSchema,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List every config key with its default",
	Args:  cobra.NoArgs,
	RunE:  runConfigKeys,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configKeysCmd)
	configSchemaCmd.Flags().StringVarP(&schemaOutput, "output", "o", "", "write the schema to this file")
	configKeysCmd.Flags().BoolVar(&keysJSON, "json", false, "print the keys as JSON")
	configKeysCmd.Flags().StringVarP(&keysSection, "section", "s", "", "only list one section (Logging, Storage, Appearance)")
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	configFile := ""
	if a.ConfigManager != nil {
		configFile = a.ConfigManager.GetConfigFile()
	} else if configFile, err = config.GetConfigFile(); err != nil {
		return err
	}

	renderer := styles.NewConfigRenderer(a.Theme)
	fmt.Println(renderer.RenderPaths(configFile, string(a.Config.Storage.Backend), a.StoreLocation()))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	if schemaOutput != "" {
		if err := config.WriteSchemaFile(schemaOutput); err != nil {
			return err
		}
		renderer := styles.NewConfigRenderer(styles.NewTheme(nil))
		fmt.Println(renderer.RenderSchemaWritten(schemaOutput))
		return nil
	}

	data, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(append(data, '\n'))
	return err
}

func runConfigKeys(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	uc := usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider())
	out, err := uc.Execute(a.Ctx(), usecase.GetConfigSchemaInput{Section: keysSection})
	if err != nil {
		return err
	}

	renderer := styles.NewConfigSchemaRenderer(a.Theme)
	if keysJSON {
		js, err := renderer.RenderJSON(out.Keys)
		if err != nil {
			return err
		}
		fmt.Println(js)
		return nil
	}

	fmt.Println(renderer.Render(out.Keys))
	return nil
}
