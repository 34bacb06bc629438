package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/bnema/keysetup/internal/application/usecase"
	"github.com/bnema/keysetup/internal/cli/styles"
	"github.com/bnema/keysetup/internal/domain/entity"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle <name> [on|off]",
	Short: "Change a boolean control",
	Long: `Change a boolean control. Without a state the control is flipped.

Controls:
  always-run                 run permanently (sets joybspeed to 29, or 0)
  vanilla-keyboard-mapping   use the original keyboard layout

Examples:
  keysetup toggle always-run on
  keysetup toggle vanilla-keyboard-mapping`,
	Args:      cobra.RangeArgs(1, 2),
	ValidArgs: toggleNames(),
	RunE:      runToggle,
}

func init() {
	rootCmd.AddCommand(toggleCmd)
}

func runToggle(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	toggle, err := entity.ParseToggle(args[0])
	if err != nil {
		return err
	}

	enabled := !a.Controls.ToggleState(toggle)
	if len(args) == 2 {
		enabled, err = parseSwitch(args[1])
		if err != nil {
			return err
		}
	}

	res, err := a.ToggleUC.Execute(a.Ctx(), usecase.ToggleInput{Toggle: string(toggle), Enabled: enabled})
	if err != nil {
		return err
	}
	fmt.Print(styles.NewBindingsRenderer(a.Theme).RenderToggle(res))

	return persist(a)
}

// parseSwitch accepts on/off, yes/no and anything strconv.ParseBool takes.
func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "yes", "y", "enable", "enabled":
		return true, nil
	case "off", "no", "n", "disable", "disabled":
		return false, nil
	}
	v, err := cast.ToBoolE(s)
	if err != nil {
		return false, fmt.Errorf("invalid state %q (use on or off)", s)
	}
	return v, nil
}

func toggleNames() []string {
	toggles := entity.Toggles()
	names := make([]string, len(toggles))
	for i, t := range toggles {
		names[i] = string(t)
	}
	return names
}
