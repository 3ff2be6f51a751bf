package constants

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/qwell/internal/conf"
	"github.com/tphakala/qwell/internal/well"
)

func TestPrint(t *testing.T) {
	t.Parallel()

	settings := &conf.Settings{
		Physics: conf.PhysicsSettings{Planck: well.PlanckConstant, DefaultMass: well.ElectronMass},
		Well:    conf.WellSettings{MaxWavenumber: 6},
		Output:  conf.OutputSettings{Format: "yaml"},
	}

	out := &bytes.Buffer{}
	require.NoError(t, Print(out, settings))

	got := out.String()
	assert.Contains(t, got, "Planck constant (J*s):\t6.6261e-34\n")
	assert.Contains(t, got, "Default mass (kg):\t9.1094e-31\n")
	assert.Contains(t, got, "Max wavenumber:\t\t6\n")
	assert.Contains(t, got, "Output format:\t\tyaml\n")
	assert.Contains(t, got, "Config file:\t\t(none)\n")
}

func TestCommand(t *testing.T) {
	t.Parallel()

	settings := &conf.Settings{
		Physics:    conf.PhysicsSettings{Planck: 1, DefaultMass: 2},
		Well:       conf.WellSettings{MaxWavenumber: 3},
		Output:     conf.OutputSettings{Format: "text"},
		ConfigFile: "/etc/qwell/config.yaml",
	}

	cmd := Command(&conf.Context{Settings: settings})
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Planck constant (J*s):\t1.0\n")
	assert.Contains(t, out.String(), "Config file:\t\t/etc/qwell/config.yaml\n")
}
