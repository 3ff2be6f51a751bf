package levels

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/qwell/internal/conf"
	"github.com/tphakala/qwell/internal/errors"
	"github.com/tphakala/qwell/internal/logger"
	"github.com/tphakala/qwell/internal/report"
	"github.com/tphakala/qwell/internal/well"
)

const scenarioTable = report.Header + "\n" +
	"\t1 1 1\t\t1.8074e-19\t1\n" +
	"\t1 1 2\t\t3.6148e-19\t3\n" +
	"\t1 2 2\t\t5.4222e-19\t3\n" +
	"\t2 2 2\t\t7.2296e-19\t1\n"

func testSettings() *conf.Settings {
	return &conf.Settings{
		Physics: conf.PhysicsSettings{Planck: well.PlanckConstant, DefaultMass: well.ElectronMass},
		Well:    conf.WellSettings{MaxWavenumber: well.MaxWavenumber},
		Output:  conf.OutputSettings{Format: "text", NoWait: true},
		Logging: conf.LoggingSettings{Level: "warn"},
	}
}

func newRunner(settings *conf.Settings, input string) (*Runner, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	console := &bytes.Buffer{}
	return &Runner{
		Settings: settings,
		In:       strings.NewReader(input),
		Out:      out,
		Console:  console,
		Log:      logger.NewSlogLogger(io.Discard, logger.LogLevelError),
	}, out, console
}

func ptr(v float64) *float64 { return &v }

func TestRunInteractiveScenario(t *testing.T) {
	t.Parallel()

	r, out, console := newRunner(testSettings(), "1e-9\n9.1094e-31\n2\n")
	require.NoError(t, r.Run(context.Background(), Inputs{}))

	if diff := cmp.Diff(scenarioTable, out.String()); diff != "" {
		t.Errorf("table mismatch (-want +got):\n%s", diff)
	}

	wantConsole := bannerIntro + "\n" + bannerFormat + "\n" +
		promptLength + promptMass +
		"Enter the upper wavenumber limit (must be an integer between 1 and 6): "
	assert.Equal(t, wantConsole, console.String())
}

func TestRunRepromptsOnInvalidInput(t *testing.T) {
	t.Parallel()

	r, out, console := newRunner(testSettings(), "abc\n-5\n1e-9\n9.1094e-31\n7\n2\n")
	require.NoError(t, r.Run(context.Background(), Inputs{}))

	assert.Equal(t, scenarioTable, out.String())
	assert.Contains(t, console.String(), "Error: could not convert string to float: 'abc'\n")
	assert.Contains(t, console.String(), "Error: must be greater than 0.\n")
	assert.Contains(t, console.String(), "Error: must be less than 6.\n")
	assert.Equal(t, 3, strings.Count(console.String(), promptLength))
}

func TestRunWavenumberLimits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		strict     bool
		input      string
		wantStates int
		wantErr    string
	}{
		{"fraction below one yields empty table", false, "0.5\n", 0, ""},
		{"fraction is truncated", false, "2.9\n", 4, ""},
		{"maximum", false, "6\n", 56, ""},
		{"strict rejects fraction", true, "2.5\n3\n", 10, "Error: must be an integer.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			settings := testSettings()
			settings.Well.StrictWavenumber = tt.strict
			r, out, console := newRunner(settings, tt.input)

			err := r.Run(context.Background(), Inputs{Length: ptr(1e-9), Mass: ptr(well.ElectronMass)})
			require.NoError(t, err)

			lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
			require.Equal(t, report.Header, lines[0])
			assert.Len(t, lines[1:], tt.wantStates)
			if tt.wantErr != "" {
				assert.Contains(t, console.String(), tt.wantErr)
			}
		})
	}
}

func TestRunPresetsSkipPrompts(t *testing.T) {
	t.Parallel()

	r, out, console := newRunner(testSettings(), "")
	err := r.Run(context.Background(), Inputs{Length: ptr(1e-9), Mass: ptr(9.1094e-31), Wavenumber: ptr(2)})
	require.NoError(t, err)

	assert.Equal(t, scenarioTable, out.String())
	assert.NotContains(t, console.String(), "Enter the")
}

func TestRunInvalidPresetIsFatal(t *testing.T) {
	t.Parallel()

	r, out, _ := newRunner(testSettings(), "1\n1\n1\n")
	err := r.Run(context.Background(), Inputs{Length: ptr(-1)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --length: must be greater than 0.")
	assert.True(t, errors.IsCategory(err, errors.CategoryConfiguration))
	assert.Empty(t, out.String())
}

func TestRunEndOfInput(t *testing.T) {
	t.Parallel()

	r, out, _ := newRunner(testSettings(), "1e-9\n")
	err := r.Run(context.Background(), Inputs{})
	require.ErrorIs(t, err, io.EOF)
	assert.Empty(t, out.String())
}

func TestRunWaitsForAcknowledgment(t *testing.T) {
	t.Parallel()

	settings := testSettings()
	settings.Output.NoWait = false
	r, out, console := newRunner(settings, "\n")

	err := r.Run(context.Background(), Inputs{Length: ptr(1e-9), Mass: ptr(well.ElectronMass), Wavenumber: ptr(1)})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(console.String(), promptExit))
	assert.NotContains(t, out.String(), promptExit)
}

func TestRunCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, _, _ := newRunner(testSettings(), "1e-9\n")
	err := r.Run(ctx, Inputs{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunLogsTable(t *testing.T) {
	t.Parallel()

	logs := &bytes.Buffer{}
	r, _, _ := newRunner(testSettings(), "")
	r.Log = logger.NewSlogLogger(logs, logger.LogLevelDebug)

	err := r.Run(context.Background(), Inputs{Length: ptr(1e-9), Mass: ptr(well.ElectronMass), Wavenumber: ptr(3)})
	require.NoError(t, err)
	assert.Contains(t, logs.String(), `msg="energy table built"`)
	assert.Contains(t, logs.String(), "states=10 total_degeneracy=27 elapsed=")
	assert.Contains(t, logs.String(), "run_id=")
	assert.Contains(t, logs.String(), "unit_energy=6.02465642289634")
	assert.Contains(t, logs.String(), `presets="[length mass wavenumber]"`)
}

func TestCommandJSONKeepsPromptsOffStdout(t *testing.T) {
	t.Parallel()

	settings := testSettings()
	settings.Output.Format = "json"
	cmd := Command(&conf.Context{Settings: settings})

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetIn(strings.NewReader("9.1094e-31\n"))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs([]string{"--length", "1e-9", "--wavenumber", "2"})

	require.NoError(t, cmd.Execute())

	var doc struct {
		Constants struct {
			Length float64 `json:"length"`
		} `json:"constants"`
		States []struct {
			Wavenumbers [3]int `json:"wavenumbers"`
			Degeneracy  int    `json:"degeneracy"`
		} `json:"states"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &doc))
	assert.InDelta(t, 1e-9, doc.Constants.Length, 0)
	require.Len(t, doc.States, 4)
	assert.Equal(t, [3]int{1, 1, 2}, doc.States[1].Wavenumbers)
	assert.Equal(t, 3, doc.States[1].Degeneracy)

	assert.Contains(t, stderr.String(), promptMass)
	assert.NotContains(t, stderr.String(), promptLength)
}

func TestInputsFromFlags(t *testing.T) {
	t.Parallel()

	cmd := Command(&conf.Context{Settings: testSettings()})
	require.NoError(t, cmd.Flags().Parse([]string{"--mass", "2e-30"}))

	in, err := InputsFromFlags(cmd.Flags())
	require.NoError(t, err)
	assert.Nil(t, in.Length)
	assert.Nil(t, in.Wavenumber)
	require.NotNil(t, in.Mass)
	assert.InDelta(t, 2e-30, *in.Mass, 0)
}
