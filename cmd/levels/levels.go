// levels.go levels command code
package levels

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tphakala/qwell/internal/conf"
	"github.com/tphakala/qwell/internal/errors"
	"github.com/tphakala/qwell/internal/logger"
	"github.com/tphakala/qwell/internal/prompt"
	"github.com/tphakala/qwell/internal/report"
	"github.com/tphakala/qwell/internal/well"
)

const (
	bannerIntro  = "This program calculates quantized energy levels for a particle in a cubic 3D infinite potential well."
	bannerFormat = "Please enter all decimals in e-notation (e.g. 1*10^9 ==> 1e9)."

	promptLength     = "Enter the size of the quantum well (m): "
	promptMass       = "Enter the effective mass of the particle (kg): "
	promptWavenumber = "Enter the upper wavenumber limit (must be an integer between 1 and %d): "
	promptExit       = "Press any key to exit."
)

// Names of the input flags
const (
	FlagLength     = "length"
	FlagMass       = "mass"
	FlagWavenumber = "wavenumber"
)

// Inputs holds values given on the command line. A nil field is prompted for.
type Inputs struct {
	Length     *float64
	Mass       *float64
	Wavenumber *float64
}

// presetNames lists the flags that were given, in prompt order
func (in Inputs) presetNames() []string {
	names := make([]string, 0, 3)
	if in.Length != nil {
		names = append(names, FlagLength)
	}
	if in.Mass != nil {
		names = append(names, FlagMass)
	}
	if in.Wavenumber != nil {
		names = append(names, FlagWavenumber)
	}
	return names
}

// AddFlags defines the input flags on fs
func AddFlags(fs *pflag.FlagSet) {
	fs.Float64(FlagLength, 0, "Side length of the well in meters, skips the prompt")
	fs.Float64(FlagMass, 0, "Effective mass of the particle in kg, skips the prompt")
	fs.Float64(FlagWavenumber, 0, "Upper wavenumber limit, skips the prompt")
}

// InputsFromFlags collects the input flags the user actually set
func InputsFromFlags(fs *pflag.FlagSet) (Inputs, error) {
	var in Inputs
	for name, dst := range map[string]**float64{
		FlagLength:     &in.Length,
		FlagMass:       &in.Mass,
		FlagWavenumber: &in.Wavenumber,
	} {
		if !fs.Changed(name) {
			continue
		}
		v, err := fs.GetFloat64(name)
		if err != nil {
			return Inputs{}, err
		}
		*dst = &v
	}
	return in, nil
}

// Command creates the levels command
func Command(ctx *conf.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "levels",
		Short: "Print the energy levels of a particle in a cubic infinite well",
		Long: `Prompts for the well size, the particle mass and the upper wavenumber limit,
then prints every distinct state sorted by energy together with its degeneracy.
Values given as flags are not prompted for.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunE(ctx, cmd)
		},
	}

	AddFlags(cmd.Flags())

	return cmd
}

// RunE runs the levels pipeline for cmd using its flags and streams.
// The root command shares it so that running qwell without a subcommand
// behaves like "qwell levels".
func RunE(ctx *conf.Context, cmd *cobra.Command) error {
	inputs, err := InputsFromFlags(cmd.Flags())
	if err != nil {
		return err
	}

	r := &Runner{
		Settings: ctx.Settings,
		In:       cmd.InOrStdin(),
		Out:      cmd.OutOrStdout(),
		Console:  cmd.OutOrStdout(),
		Log:      ctx.Log("levels"),
	}
	if ctx.Settings.Output.Format != string(report.FormatText) {
		// keep stdout parseable
		r.Console = cmd.ErrOrStderr()
	}

	return r.Run(cmd.Context(), inputs)
}

// Runner executes one acquisition, evaluation and presentation pass.
type Runner struct {
	Settings *conf.Settings
	In       io.Reader
	Out      io.Writer // result table
	Console  io.Writer // banner, prompts and input errors
	Log      logger.Logger
}

// Run acquires the inputs, builds the energy table and renders it
func (r *Runner) Run(ctx context.Context, inputs Inputs) error {
	if ctx == nil {
		ctx = context.Background()
	}

	format, err := report.ParseFormat(r.Settings.Output.Format)
	if err != nil {
		return err
	}

	log := r.Log.With(logger.String("run_id", uuid.New().String()[:8]))
	acq := prompt.NewAcquirer(r.In, r.Console, log.Module("prompt"))

	if _, err := fmt.Fprintf(r.Console, "%s\n%s\n", bannerIntro, bannerFormat); err != nil {
		return consoleError(err)
	}

	length, err := r.acquire(ctx, acq, inputs.Length, FlagLength, promptLength, prompt.Above(0))
	if err != nil {
		return err
	}

	mass, err := r.acquire(ctx, acq, inputs.Mass, FlagMass, promptMass, prompt.Above(0))
	if err != nil {
		return err
	}

	maxN := r.Settings.Well.MaxWavenumber
	nBounds := prompt.AtMost(0, float64(maxN))
	nBounds.Integer = r.Settings.Well.StrictWavenumber
	nValue, err := r.acquire(ctx, acq, inputs.Wavenumber, FlagWavenumber, fmt.Sprintf(promptWavenumber, maxN), nBounds)
	if err != nil {
		return err
	}
	n := int(math.Trunc(nValue))

	constants, err := well.NewConstants(r.Settings.Physics.Planck, r.Settings.Physics.DefaultMass, length)
	if err != nil {
		return err
	}
	if constants, err = constants.WithMass(mass); err != nil {
		return err
	}

	log.Debug("constants resolved",
		logger.Float64("planck", constants.Planck()),
		logger.Float64("mass", constants.Mass()),
		logger.Float64("length", constants.Length()),
		logger.Float64("unit_energy", constants.GroundStateUnit()),
		logger.Int("wavenumber_limit", n),
		logger.Any("presets", inputs.presetNames()))

	start := time.Now()
	table := well.BuildTable(constants, n)

	log.Debug("energy table built",
		logger.Int("states", len(table)),
		logger.Int("total_degeneracy", table.TotalDegeneracy()),
		logger.Duration("elapsed", time.Since(start)))

	if err := report.Write(r.Out, format, constants, table); err != nil {
		return err
	}

	if r.Settings.Output.NoWait {
		return nil
	}
	return acq.WaitForKey(promptExit)
}

// acquire returns preset after validating it, or prompts when preset is nil.
// A preset that fails validation is fatal since nobody is there to re-enter it.
func (r *Runner) acquire(ctx context.Context, acq *prompt.Acquirer, preset *float64, flag, text string, b prompt.Bounds) (float64, error) {
	if preset == nil {
		return acq.GrabNumber(ctx, text, b)
	}

	value, err := prompt.Validate(formatFlagValue(*preset), b)
	if err != nil {
		return 0, errors.New(fmt.Errorf("invalid --%s: %w", flag, err)).
			Component("levels").
			Category(errors.CategoryConfiguration).
			Context("flag", flag).
			Build()
	}
	return value, nil
}

func formatFlagValue(v float64) string {
	return fmt.Sprintf("%v", v)
}

func consoleError(err error) error {
	return errors.New(fmt.Errorf("writing to console: %w", err)).
		Component("levels").
		Category(errors.CategoryFileIO).
		Build()
}
