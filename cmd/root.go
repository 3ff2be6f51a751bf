package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tphakala/qwell/cmd/constants"
	"github.com/tphakala/qwell/cmd/levels"
	"github.com/tphakala/qwell/cmd/version"
	"github.com/tphakala/qwell/internal/buildinfo"
	"github.com/tphakala/qwell/internal/conf"
	"github.com/tphakala/qwell/internal/logger"
)

// RootCommand creates and returns the root command. Running it without a
// subcommand is the same as running "levels".
func RootCommand(v *viper.Viper, ctx *conf.Context, info *buildinfo.Context) *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "qwell",
		Short: "Energy levels of a particle in a cubic 3D infinite potential well",
		Long: `qwell prints the quantized energy levels of a particle confined to a cube
with infinitely high walls, E = h²(nx²+ny²+nz²)/(8mL²), grouped by state
and sorted by energy together with each level's degeneracy.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return levels.RunE(ctx, cmd)
		},
	}

	// Set up the global flags for the root command.
	if err := setupFlags(rootCmd, v, &configFile); err != nil {
		// flag names are static, binding only fails on programming errors
		panic(err)
	}
	levels.AddFlags(rootCmd.Flags())

	versionCmd := version.Command(info)

	rootCmd.AddCommand(
		levels.Command(ctx),
		constants.Command(ctx),
		versionCmd,
	)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Skip setup for the version command
		if cmd.Name() == versionCmd.Name() {
			return nil
		}
		return initialize(cmd, v, ctx, configFile)
	}

	return rootCmd
}

// initialize is called before any subcommands are run. It loads settings
// with command-line flags taking precedence and sets up the logger.
func initialize(cmd *cobra.Command, v *viper.Viper, ctx *conf.Context, configFile string) error {
	settings, err := conf.Load(v, configFile)
	if err != nil {
		return err
	}

	centralLogger, err := logger.NewCentralLoggerWithWriter(settings.LoggingConfig(), cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}

	ctx.Settings = settings
	ctx.Logger = centralLogger

	ctx.Log("main").Debug("settings loaded",
		logger.String("command", cmd.Name()),
		logger.String("config_file", settings.ConfigFile),
		logger.String("format", settings.Output.Format))

	return nil
}

// setupFlags defines flags that are global to the command line interface
// and binds them to their configuration keys.
func setupFlags(rootCmd *cobra.Command, v *viper.Viper, configFile *string) error {
	flags := rootCmd.PersistentFlags()
	flags.BoolP("debug", "d", false, "Enable debug output")
	flags.StringVar(configFile, "config", "", "Path to the config file, default locations are searched when empty")
	flags.StringP("format", "f", "text", "Output format: text, json or yaml")
	flags.Bool("no-wait", false, "Exit without waiting for a final key press")
	flags.Bool("strict", false, "Require the wavenumber limit to be an integer")
	flags.String("log-level", logger.DefaultLogLevel, "Log level: trace, debug, info, warn or error")

	bindings := map[string]string{
		"debug":                 "debug",
		"output.format":         "format",
		"output.nowait":         "no-wait",
		"well.strictwavenumber": "strict",
		"logging.level":         "log-level",
	}
	for key, name := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("error binding flag %s: %w", name, err)
		}
	}

	return nil
}
