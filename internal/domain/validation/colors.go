package validation

import "regexp"

var hexColorRE = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// HexField names a colour value for error reporting.
type HexField struct {
	Name  string
	Value string
}

// ValidatePaletteHex reports every field under prefix that is not #RRGGBB.
func ValidatePaletteHex(prefix string, fields ...HexField) []string {
	var errs []string
	for _, f := range fields {
		if !IsHexColor(f.Value) {
			errs = append(errs, prefix+"."+f.Name+" must be a hex color like #RRGGBB")
		}
	}
	return errs
}
