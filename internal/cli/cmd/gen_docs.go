package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/keysetup/internal/application/usecase"
	"github.com/bnema/keysetup/internal/domain/entity"
	"github.com/bnema/keysetup/internal/domain/keybinding"
	"github.com/bnema/keysetup/internal/infrastructure/config"
)

const dirPerm = 0o755

const (
	docFormatMan      = "man"
	docFormatMarkdown = "markdown"
)

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Write man pages or markdown for keysetup",
	Long: `Write the command reference and the bindings reference.

The bindings reference lists every action with the variable name it is
stored under in bindings.toml, its default key and its exclusivity group.
In man format it becomes keysetup-bindings(5).

Man pages go to $XDG_DATA_HOME/man/man1 unless --output is set. Markdown
goes to ./docs.`,
	Example: `  keysetup gen-docs
  keysetup gen-docs --format markdown
  keysetup gen-docs --output ./man`,
	Args: cobra.NoArgs,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "output directory")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", docFormatMan, "man or markdown")
}

func runGenDocs(_ *cobra.Command, _ []string) error {
	outputDir, err := docsOutputDir(genDocsFormat, genDocsOutputDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	rootCmd.DisableAutoGenTag = true

	var refName string
	switch genDocsFormat {
	case docFormatMan:
		header := &doc.GenManHeader{
			Title:   "KEYSETUP",
			Section: "1",
			Source:  "keysetup " + buildInfo.Version,
			Manual:  "keysetup Manual",
			Date:    func() *time.Time { t := time.Now(); return &t }(),
		}
		if err := doc.GenManTree(rootCmd, header, outputDir); err != nil {
			return fmt.Errorf("generate man pages: %w", err)
		}
		refName = "keysetup-bindings.5"
	case docFormatMarkdown:
		if err := doc.GenMarkdownTree(rootCmd, outputDir); err != nil {
			return fmt.Errorf("generate markdown: %w", err)
		}
		refName = "keysetup_bindings.md"
	}

	refPath := filepath.Join(outputDir, refName)
	f, err := os.Create(refPath)
	if err != nil {
		return fmt.Errorf("create bindings reference: %w", err)
	}
	if err := writeBindingsReference(f, genDocsFormat); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Printf("Wrote %s docs to %s\n", genDocsFormat, outputDir)
	if genDocsFormat == docFormatMan {
		fmt.Println("Run 'mandb' if 'man keysetup' does not find them.")
	}
	return nil
}

func docsOutputDir(format, override string) (string, error) {
	switch format {
	case docFormatMan:
		if override != "" {
			return override, nil
		}
		dir, err := config.GetManDir()
		if err != nil {
			return "", fmt.Errorf("resolve man directory: %w", err)
		}
		return dir, nil
	case docFormatMarkdown:
		if override != "" {
			return override, nil
		}
		return "./docs", nil
	default:
		return "", fmt.Errorf("unsupported format %q (use: man, markdown)", format)
	}
}

// referenceSection is one group of actions in the bindings reference.
type referenceSection struct {
	title   string
	actions []entity.Action
}

func referenceSections(registry *keybinding.Registry) []referenceSection {
	var sections []referenceSection
	for _, g := range registry.Groups() {
		sections = append(sections, referenceSection{
			title:   fmt.Sprintf("%s (%s)", g.Label, g.ID),
			actions: g.Actions,
		})
	}

	var other []entity.Action
	for _, a := range entity.Actions() {
		if !registry.IsGrouped(a) {
			other = append(other, a)
		}
	}
	if len(other) > 0 {
		sections = append(sections, referenceSection{
			title:   fmt.Sprintf("Other keys (%s)", usecase.OtherGroupID),
			actions: other,
		})
	}
	return sections
}

// writeBindingsReference documents every action, its stored variable name
// and default key, grouped by exclusivity group.
func writeBindingsReference(w io.Writer, format string) error {
	defaults := make(map[entity.Action]entity.KeyCode)
	for _, b := range keybinding.DefaultBindings() {
		defaults[b.Action] = b.Code
	}
	sections := referenceSections(keybinding.DefaultRegistry())

	var b strings.Builder
	switch format {
	case docFormatMarkdown:
		b.WriteString("# keysetup bindings\n\n")
		b.WriteString("Keys inside one group never share a code. Binding a taken key unbinds the previous holder.\n")
		for _, s := range sections {
			fmt.Fprintf(&b, "\n## %s\n\n", s.title)
			b.WriteString("| Action | Variable | Default |\n|---|---|---|\n")
			for _, a := range s.actions {
				fmt.Fprintf(&b, "| `%s` | `%s` | %s |\n", a, a.Name(), defaultKeyLabel(defaults[a]))
			}
		}
		b.WriteString("\n## Settings\n\n")
		fmt.Fprintf(&b, "- `%s`: 29 when always-run is on, 0 when off. Values of 20 or more read as on.\n", entity.VarJoybSpeed)
		fmt.Fprintf(&b, "- `%s`: 1 to use the vanilla keyboard mapping, 0 otherwise.\n", entity.VarVanillaKeyboardMapping)
	case docFormatMan:
		b.WriteString(".TH \"KEYSETUP-BINDINGS\" \"5\" \"\" \"keysetup\" \"keysetup Manual\"\n")
		b.WriteString(".SH NAME\nkeysetup-bindings \\- actions and variables stored in bindings.toml\n")
		b.WriteString(".SH DESCRIPTION\nKeys inside one group never share a code. Binding a taken key unbinds the previous holder.\n")
		for _, s := range sections {
			fmt.Fprintf(&b, ".SH %s\n", strings.ToUpper(s.title))
			for _, a := range s.actions {
				fmt.Fprintf(&b, ".TP\n\\fB%s\\fR (%s)\ndefault %s\n", a.Name(), a, defaultKeyLabel(defaults[a]))
			}
		}
		b.WriteString(".SH SETTINGS\n")
		fmt.Fprintf(&b, ".TP\n\\fB%s\\fR\n29 when always-run is on, 0 when off.\n", entity.VarJoybSpeed)
		fmt.Fprintf(&b, ".TP\n\\fB%s\\fR\n1 to use the vanilla keyboard mapping.\n", entity.VarVanillaKeyboardMapping)
	default:
		return fmt.Errorf("unsupported format %q (use: man, markdown)", format)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func defaultKeyLabel(code entity.KeyCode) string {
	if code == entity.KeyUnbound {
		return "unbound"
	}
	return entity.KeyName(code)
}
