// config.go: settings struct and loading for qwell
package conf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/tphakala/qwell/internal/errors"
)

// PhysicsSettings holds the physical constants used by the evaluator
type PhysicsSettings struct {
	Planck      float64 `yaml:"planck"`      // Planck constant, J*s
	DefaultMass float64 `yaml:"defaultmass"` // particle mass used before user input, kg
}

// WellSettings controls how the wavenumber limit is accepted
type WellSettings struct {
	MaxWavenumber    int  `yaml:"maxwavenumber"`    // inclusive upper bound for the wavenumber limit
	StrictWavenumber bool `yaml:"strictwavenumber"` // true to require an integer in [1, MaxWavenumber]
}

// OutputSettings controls rendering of the result table
type OutputSettings struct {
	Format string `yaml:"format"` // text, json or yaml
	NoWait bool   `yaml:"nowait"` // true to skip the final acknowledgment prompt
}

// LoggingSettings controls the diagnostic logger
type LoggingSettings struct {
	Level        string            `yaml:"level"`        // trace, debug, info, warn, error
	ModuleLevels map[string]string `yaml:"modulelevels"` // per-module overrides
}

// Settings contains all configuration options for qwell
type Settings struct {
	Debug bool `yaml:"debug"` // true to log at debug level regardless of Logging.Level

	Physics PhysicsSettings `yaml:"physics"`
	Well    WellSettings    `yaml:"well"`
	Output  OutputSettings  `yaml:"output"`
	Logging LoggingSettings `yaml:"logging"`

	// Runtime value, not stored in config file
	ConfigFile string `yaml:"-" mapstructure:"-"` // config file that was read, empty if none
}

// NewViper returns a viper instance with defaults and environment bindings applied.
func NewViper() (*viper.Viper, error) {
	v := viper.New()
	setDefaultConfig(v)
	if err := bindEnvVars(v); err != nil {
		return nil, errors.New(err).
			Component("configuration").
			Category(errors.CategoryConfiguration).
			Build()
	}
	return v, nil
}

// Load reads the optional config file into v and unmarshals the result.
// An explicit configFile must exist; otherwise the default locations are
// searched and a missing file is not an error.
func Load(v *viper.Viper, configFile string) (*Settings, error) {
	configUsed, err := readConfig(v, configFile)
	if err != nil {
		return nil, err
	}

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, errors.New(fmt.Errorf("error unmarshaling config into struct: %w", err)).
			Component("configuration").
			Category(errors.CategoryConfiguration).
			Build()
	}
	settings.ConfigFile = configUsed

	if err := ValidateSettings(settings); err != nil {
		return nil, errors.New(fmt.Errorf("error validating settings: %w", err)).
			Component("configuration").
			Category(errors.CategoryConfiguration).
			Build()
	}

	return settings, nil
}

// readConfig reads the configuration file and returns its path
func readConfig(v *viper.Viper, configFile string) (string, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return "", errors.New(fmt.Errorf("error reading config file %s: %w", configFile, err)).
				Component("configuration").
				Category(errors.CategoryFileIO).
				Context("path", configFile).
				Build()
		}
		return v.ConfigFileUsed(), nil
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, path := range GetDefaultConfigPaths() {
		v.AddConfigPath(path)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", errors.New(fmt.Errorf("fatal error reading config file: %w", err)).
			Component("configuration").
			Category(errors.CategoryConfiguration).
			Build()
	}

	return v.ConfigFileUsed(), nil
}

// GetDefaultConfigPaths returns the directories searched for config.yaml,
// the working directory first.
func GetDefaultConfigPaths() []string {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "qwell"))
	}
	return paths
}
