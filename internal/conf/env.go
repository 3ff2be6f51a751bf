// env.go - Environment variable configuration and validation for qwell
package conf

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/tphakala/qwell/internal/logger"
	"github.com/tphakala/qwell/internal/report"
	"github.com/tphakala/qwell/internal/well"
)

// envBinding holds metadata for environment variable bindings (internal use)
type envBinding struct {
	ConfigKey string             // Viper config key
	EnvVar    string             // Environment variable name
	Validate  func(string) error // Optional validation function
}

// getEnvBindings returns all environment variable bindings with validation
func getEnvBindings() []envBinding {
	return []envBinding{
		{"debug", "QWELL_DEBUG", validateEnvBool},

		// Physics
		{"physics.planck", "QWELL_PLANCK", validateEnvPositiveFloat},
		{"physics.defaultmass", "QWELL_DEFAULT_MASS", validateEnvPositiveFloat},

		// Well
		{"well.maxwavenumber", "QWELL_MAX_WAVENUMBER", validateEnvWavenumber},
		{"well.strictwavenumber", "QWELL_STRICT_WAVENUMBER", validateEnvBool},

		// Output
		{"output.format", "QWELL_FORMAT", validateEnvFormat},
		{"output.nowait", "QWELL_NO_WAIT", validateEnvBool},

		// Logging
		{"logging.level", "QWELL_LOG_LEVEL", validateEnvLogLevel},
	}
}

// bindEnvVars sets up environment variable bindings with validation (internal)
func bindEnvVars(v *viper.Viper) error {
	var warnings []string

	for _, binding := range getEnvBindings() {
		if err := v.BindEnv(binding.ConfigKey, binding.EnvVar); err != nil {
			warnings = append(warnings, fmt.Sprintf("Failed to bind %s: %v", binding.EnvVar, err))
			continue
		}

		if binding.Validate != nil {
			if envValue := os.Getenv(binding.EnvVar); envValue != "" {
				if err := binding.Validate(envValue); err != nil {
					warnings = append(warnings, fmt.Sprintf("Invalid %s value '%s': %v", binding.EnvVar, envValue, err))
				}
			}
		}
	}

	if len(warnings) > 0 {
		return fmt.Errorf("environment variable issues:\n  - %s", strings.Join(warnings, "\n  - "))
	}

	return nil
}

// Environment variable validation functions

// validateEnvBool validates boolean environment variables
func validateEnvBool(value string) error {
	if _, err := strconv.ParseBool(value); err != nil {
		return fmt.Errorf("invalid boolean value '%s': must be true/false, 1/0, t/f, TRUE/FALSE, T/F", value)
	}
	return nil
}

func validateEnvPositiveFloat(value string) error {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("invalid number: %w", err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return fmt.Errorf("must be a finite positive number, got %g", f)
	}
	return nil
}

func validateEnvWavenumber(value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid integer: %w", err)
	}
	if n < 1 || n > well.MaxWavenumberLimit {
		return fmt.Errorf("must be between 1 and %d, got %d", well.MaxWavenumberLimit, n)
	}
	return nil
}

func validateEnvFormat(value string) error {
	_, err := report.ParseFormat(value)
	return err
}

func validateEnvLogLevel(value string) error {
	if !logger.ValidLevel(strings.ToLower(value)) {
		return fmt.Errorf("must be one of trace, debug, info, warn, error")
	}
	return nil
}
