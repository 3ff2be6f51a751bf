// constants.go constants command code
package constants

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tphakala/qwell/internal/conf"
	"github.com/tphakala/qwell/internal/report"
)

// Command creates the constants command
func Command(ctx *conf.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "constants",
		Short: "Print the physical constants and limits in effect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Print(cmd.OutOrStdout(), ctx.Settings)
		},
	}

	return cmd
}

// Print writes the effective settings to w
func Print(w io.Writer, settings *conf.Settings) error {
	configFile := settings.ConfigFile
	if configFile == "" {
		configFile = "(none)"
	}

	_, err := fmt.Fprintf(w,
		"Planck constant (J*s):\t%s\n"+
			"Default mass (kg):\t%s\n"+
			"Max wavenumber:\t\t%d\n"+
			"Strict wavenumber:\t%t\n"+
			"Output format:\t\t%s\n"+
			"Config file:\t\t%s\n",
		report.FormatEnergy(settings.Physics.Planck),
		report.FormatEnergy(settings.Physics.DefaultMass),
		settings.Well.MaxWavenumber,
		settings.Well.StrictWavenumber,
		settings.Output.Format,
		configFile)
	return err
}
