// conf/defaults.go default values for settings
package conf

import (
	"github.com/spf13/viper"

	"github.com/tphakala/qwell/internal/logger"
	"github.com/tphakala/qwell/internal/well"
)

// Sets default values for the configuration.
func setDefaultConfig(v *viper.Viper) {
	v.SetDefault("debug", false)

	v.SetDefault("physics.planck", well.PlanckConstant)
	v.SetDefault("physics.defaultmass", well.ElectronMass)

	v.SetDefault("well.maxwavenumber", well.MaxWavenumber)
	v.SetDefault("well.strictwavenumber", false)

	v.SetDefault("output.format", "text")
	v.SetDefault("output.nowait", false)

	v.SetDefault("logging.level", logger.DefaultLogLevel)
	v.SetDefault("logging.modulelevels", map[string]string{})
}
