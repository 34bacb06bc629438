package config

import (
	"fmt"
	"strings"

	domainvalidation "github.com/bnema/keysetup/internal/domain/validation"
	"github.com/bnema/keysetup/internal/logging"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateStorage(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if _, err := logging.ParseLevel(config.Logging.Level); err != nil {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error, disabled (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	return validationErrors
}

func validateStorage(config *Config) []string {
	switch config.Storage.Backend {
	case StorageBackendFile, StorageBackendSQLite:
		return nil
	default:
		return []string{fmt.Sprintf("storage.backend must be file or sqlite (got %q)", config.Storage.Backend)}
	}
}

func validateAppearance(config *Config) []string {
	p := config.Appearance.Palette
	return domainvalidation.ValidatePaletteHex("appearance.palette",
		domainvalidation.HexField{Name: "accent", Value: p.Accent},
		domainvalidation.HexField{Name: "text", Value: p.Text},
		domainvalidation.HexField{Name: "muted", Value: p.Muted},
		domainvalidation.HexField{Name: "border", Value: p.Border},
		domainvalidation.HexField{Name: "warning", Value: p.Warning},
	)
}
