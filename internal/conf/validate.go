// conf/validate.go

package conf

import (
	"fmt"
	"math"
	"strings"

	"github.com/tphakala/qwell/internal/logger"
	"github.com/tphakala/qwell/internal/report"
	"github.com/tphakala/qwell/internal/well"
)

// ValidationError represents a collection of validation errors
type ValidationError struct {
	Errors []string
}

// Error returns a string representation of the validation errors
func (ve ValidationError) Error() string {
	return fmt.Sprintf("Validation errors: %v", ve.Errors)
}

// ValidateSettings validates the entire Settings struct. Format and log
// level names are normalized in place.
func ValidateSettings(settings *Settings) error {
	ve := ValidationError{}

	if err := validatePhysicsSettings(&settings.Physics); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if err := validateWellSettings(&settings.Well); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if err := validateOutputSettings(&settings.Output); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if err := validateLoggingSettings(&settings.Logging); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

func positiveFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f > 0
}

// validatePhysicsSettings validates the physical constants
func validatePhysicsSettings(settings *PhysicsSettings) error {
	var errs []string

	if !positiveFinite(settings.Planck) {
		errs = append(errs, fmt.Sprintf("physics.planck must be a finite positive number, got %g", settings.Planck))
	}
	if !positiveFinite(settings.DefaultMass) {
		errs = append(errs, fmt.Sprintf("physics.defaultmass must be a finite positive number, got %g", settings.DefaultMass))
	}

	if len(errs) > 0 {
		return fmt.Errorf("physics settings errors: %v", errs)
	}
	return nil
}

// validateWellSettings validates the wavenumber limit
func validateWellSettings(settings *WellSettings) error {
	if settings.MaxWavenumber < 1 || settings.MaxWavenumber > well.MaxWavenumberLimit {
		return fmt.Errorf("well.maxwavenumber must be between 1 and %d, got %d",
			well.MaxWavenumberLimit, settings.MaxWavenumber)
	}
	return nil
}

// validateOutputSettings validates and normalizes the output format
func validateOutputSettings(settings *OutputSettings) error {
	format, err := report.ParseFormat(settings.Format)
	if err != nil {
		return err
	}
	settings.Format = string(format)
	return nil
}

// validateLoggingSettings validates and normalizes log levels
func validateLoggingSettings(settings *LoggingSettings) error {
	var errs []string

	settings.Level = strings.ToLower(settings.Level)
	if !logger.ValidLevel(settings.Level) {
		errs = append(errs, fmt.Sprintf("logging.level %q is not a valid level", settings.Level))
	}

	for module, level := range settings.ModuleLevels {
		settings.ModuleLevels[module] = strings.ToLower(level)
		if !logger.ValidLevel(settings.ModuleLevels[module]) {
			errs = append(errs, fmt.Sprintf("logging.modulelevels.%s %q is not a valid level", module, level))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("logging settings errors: %v", errs)
	}
	return nil
}

// LoggingConfig converts the logging settings for the logger package
func (s *Settings) LoggingConfig() *logger.LoggingConfig {
	level := s.Logging.Level
	if s.Debug {
		level = string(logger.LogLevelDebug)
	}
	return &logger.LoggingConfig{
		Level:        level,
		ModuleLevels: s.Logging.ModuleLevels,
	}
}
