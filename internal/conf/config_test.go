package conf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/qwell/internal/errors"
	"github.com/tphakala/qwell/internal/well"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	v, err := NewViper()
	require.NoError(t, err)
	settings, err := Load(v, writeConfig(t, "{}\n"))
	require.NoError(t, err)

	assert.False(t, settings.Debug)
	assert.InDelta(t, well.PlanckConstant, settings.Physics.Planck, 0)
	assert.InDelta(t, well.ElectronMass, settings.Physics.DefaultMass, 0)
	assert.Equal(t, well.MaxWavenumber, settings.Well.MaxWavenumber)
	assert.False(t, settings.Well.StrictWavenumber)
	assert.Equal(t, "text", settings.Output.Format)
	assert.False(t, settings.Output.NoWait)
	assert.Equal(t, "warn", settings.Logging.Level)
	assert.NotEmpty(t, settings.ConfigFile)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
debug: true
physics:
  planck: 6.62607015e-34
  defaultmass: 1.67262192e-27
well:
  maxwavenumber: 4
  strictwavenumber: true
output:
  format: YAML
  nowait: true
logging:
  level: INFO
  modulelevels:
    prompt: debug
`)

	v, err := NewViper()
	require.NoError(t, err)
	settings, err := Load(v, path)
	require.NoError(t, err)

	assert.True(t, settings.Debug)
	assert.InDelta(t, 6.62607015e-34, settings.Physics.Planck, 0)
	assert.InDelta(t, 1.67262192e-27, settings.Physics.DefaultMass, 0)
	assert.Equal(t, 4, settings.Well.MaxWavenumber)
	assert.True(t, settings.Well.StrictWavenumber)
	assert.Equal(t, "yaml", settings.Output.Format)
	assert.True(t, settings.Output.NoWait)
	assert.Equal(t, "info", settings.Logging.Level)
	assert.Equal(t, map[string]string{"prompt": "debug"}, settings.Logging.ModuleLevels)
	assert.Equal(t, path, settings.ConfigFile)

	// Debug overrides the configured level
	assert.Equal(t, "debug", settings.LoggingConfig().Level)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	v, err := NewViper()
	require.NoError(t, err)

	_, err = Load(v, filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.CategoryFileIO))
}

func TestLoadInvalidValues(t *testing.T) {
	path := writeConfig(t, `
physics:
  planck: -1
output:
  format: csv
`)

	v, err := NewViper()
	require.NoError(t, err)
	_, err = Load(v, path)
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.CategoryConfiguration))

	var ve ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Len(t, ve.Errors, 2)
}

func TestLoadRejectsOversizedWavenumber(t *testing.T) {
	path := writeConfig(t, "well:\n  maxwavenumber: 3000000\n")

	v, err := NewViper()
	require.NoError(t, err)
	settings, err := Load(v, path)
	require.Error(t, err)
	assert.Nil(t, settings)
	assert.Contains(t, err.Error(), "well.maxwavenumber must be between 1 and 100, got 3000000")
}

func TestEnvironmentRejectsOversizedWavenumber(t *testing.T) {
	t.Setenv("QWELL_MAX_WAVENUMBER", "3000000")

	_, err := NewViper()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "QWELL_MAX_WAVENUMBER")
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("QWELL_PLANCK", "1e-33")
	t.Setenv("QWELL_MAX_WAVENUMBER", "3")
	t.Setenv("QWELL_FORMAT", "json")
	t.Setenv("QWELL_NO_WAIT", "true")
	t.Setenv("QWELL_LOG_LEVEL", "ERROR")

	v, err := NewViper()
	require.NoError(t, err)
	settings, err := Load(v, writeConfig(t, "{}\n"))
	require.NoError(t, err)

	assert.InDelta(t, 1e-33, settings.Physics.Planck, 0)
	assert.Equal(t, 3, settings.Well.MaxWavenumber)
	assert.Equal(t, "json", settings.Output.Format)
	assert.True(t, settings.Output.NoWait)
	assert.Equal(t, "error", settings.Logging.Level)
}

func TestEnvironmentValidation(t *testing.T) {
	t.Setenv("QWELL_DEFAULT_MASS", "-2")
	t.Setenv("QWELL_DEBUG", "maybe")

	_, err := NewViper()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "QWELL_DEFAULT_MASS")
	assert.Contains(t, err.Error(), "QWELL_DEBUG")
	assert.True(t, errors.IsCategory(err, errors.CategoryConfiguration))
}

func TestGetDefaultConfigPaths(t *testing.T) {
	t.Parallel()

	paths := GetDefaultConfigPaths()
	require.NotEmpty(t, paths)
	assert.Equal(t, ".", paths[0])
}
