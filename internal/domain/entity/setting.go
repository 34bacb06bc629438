package entity

// Toggle identifies a boolean control.
type Toggle string

const (
	ToggleAlwaysRun              Toggle = "always-run"
	ToggleVanillaKeyboardMapping Toggle = "vanilla-keyboard-mapping"
)

// Toggles returns every known toggle.
func Toggles() []Toggle {
	return []Toggle{ToggleAlwaysRun, ToggleVanillaKeyboardMapping}
}

// ParseToggle validates a user supplied toggle identifier.
func ParseToggle(s string) (Toggle, error) {
	for _, t := range Toggles() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", &UnknownError{Kind: ErrUnknownToggle, Value: s}
}

// Persistence names of the non-key settings.
const (
	VarJoybSpeed              = "joybspeed"
	VarVanillaKeyboardMapping = "vanilla_keyboard_mapping"
)

const (
	// JoybSpeedAlwaysRun is the joystick speed button value that makes the
	// game run permanently. 29 works across every supported executable.
	JoybSpeedAlwaysRun = 29

	// alwaysRunThreshold is the lowest stored speed treated as "always run".
	alwaysRunThreshold = 20
)

// JoybSpeedFor maps the always-run toggle onto the stored speed value.
func JoybSpeedFor(alwaysRun bool) int {
	if alwaysRun {
		return JoybSpeedAlwaysRun
	}
	return 0
}

// AlwaysRunFromJoybSpeed derives the toggle state from a stored speed value.
func AlwaysRunFromJoybSpeed(v int) bool {
	return v >= alwaysRunThreshold
}

// DerivedValue is a setting recomputed from another control's state.
type DerivedValue struct {
	Name  string
	Value int
}

// Variable exposes one named integer to a persistence store.
type Variable struct {
	Name string
	Get  func() int
	Set  func(int)
}
