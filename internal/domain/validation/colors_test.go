package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/keysetup/internal/domain/validation"
)

func TestIsHexColor(t *testing.T) {
	assert.True(t, validation.IsHexColor("#4A90E2"))
	assert.True(t, validation.IsHexColor("#ffffff"))
	assert.False(t, validation.IsHexColor("4A90E2"))
	assert.False(t, validation.IsHexColor("#fff"))
	assert.False(t, validation.IsHexColor("#GGGGGG"))
	assert.False(t, validation.IsHexColor(""))
}

func TestValidatePaletteHex(t *testing.T) {
	errs := validation.ValidatePaletteHex("appearance.palette",
		validation.HexField{Name: "accent", Value: "#4A90E2"},
		validation.HexField{Name: "text", Value: "white"},
	)

	assert.Equal(t, []string{"appearance.palette.text must be a hex color like #RRGGBB"}, errs)
	assert.Empty(t, validation.ValidatePaletteHex("x"))
}
