package lapsim

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScenario = `
[simulation]
mode = "frictionless"
samples = 501
substeps = 4
workers = 2

[booster]
factor = 1.5

[track]
loop_radius = 7.5
loop_max_time = 4

[[vehicles]]
name = "Test Car"
mass = 1000
acceleration = 8
height = 1.2
length = 4
width = 1.8
cx = 0.3
cz = 0.25
mu = 0.1
`

func TestConfigDefaults(t *testing.T) {
	conf, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, Resistive, conf.Mode)
	assert.Equal(t, 1, conf.Substeps)
	assert.Equal(t, 0, conf.Workers)
	assert.Equal(t, DefaultBoostFactor, conf.BoostFactor)
	assert.Equal(t, DefaultTrack(DefaultSamples), conf.Track)
	assert.Equal(t, Roster, conf.Vehicles)
	assert.Equal(t, Resistive.String(), conf.Dynamics().Name())
}

func TestConfigScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.toml")
	require.NoError(t, os.WriteFile(path, []byte(testScenario), 0644))
	conf, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, Frictionless, conf.Mode)
	assert.Equal(t, 4, conf.Substeps)
	assert.Equal(t, 2, conf.Workers)
	assert.Equal(t, 1.5, conf.BoostFactor)
	assert.Equal(t, 7.5, conf.Track.LoopRadius)
	assert.Equal(t, DefaultSlopeAngle, conf.Track.SlopeAngle)
	assert.Equal(t, Grid{DefaultMaxTime, 501}, conf.Track.SlopeGrid)
	assert.Equal(t, Grid{4, 501}, conf.Track.LoopGrid)
	assert.Equal(t, Grid{DefaultMaxTime, 501}, conf.Track.FinishGrid)
	require.Len(t, conf.Vehicles, 1)
	assert.Equal(t, VehicleSpec{Name: "Test Car", Mass: 1000, Acceleration: 8, Height: 1.2, Length: 4, Width: 1.8, Cx: 0.3, Cz: 0.25, Mu: 0.1}, conf.Vehicles[0])
	assert.Equal(t, FrictionlessDynamics{Substeps: 4}, conf.Dynamics())

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestConfigFlags(t *testing.T) {
	fs := pflag.NewFlagSet("lapsim", pflag.ContinueOnError)
	fs.Int("samples", DefaultSamples, "")
	fs.String("mode", Resistive.String(), "")
	require.NoError(t, fs.Parse([]string{"--samples=101"}))

	path := filepath.Join(t.TempDir(), "scenario.toml")
	require.NoError(t, os.WriteFile(path, []byte(testScenario), 0644))
	v, err := LoadViper(path)
	require.NoError(t, err)
	require.NoError(t, v.BindPFlag("simulation.samples", fs.Lookup("samples")))
	require.NoError(t, v.BindPFlag("simulation.mode", fs.Lookup("mode")))
	conf, err := ConfigFromViper(v)
	require.NoError(t, err)
	// A flag set on the command line wins over the scenario, a default one does not.
	assert.Equal(t, 101, conf.Track.RavineGrid.Samples)
	assert.Equal(t, Frictionless, conf.Mode)
}

func TestLoadViper(t *testing.T) {
	v, err := LoadViper("")
	require.NoError(t, err)
	assert.Equal(t, Resistive.String(), v.GetString("simulation.mode"))
	assert.Equal(t, DefaultSamples, v.GetInt("simulation.samples"))

	v, err = LoadViper(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
	assert.Nil(t, v)
}

func TestConfigInvalid(t *testing.T) {
	for name, override := range map[string]string{
		"mode":     "[simulation]\nmode = \"quantum\"",
		"substeps": "[simulation]\nsubsteps = 0",
		"samples":  "[simulation]\nsamples = 1",
		"factor":   "[booster]\nfactor = 1",
		"radius":   "[track]\nloop_radius = -2",
		"max time": "[track]\nravine_max_time = 0",
		"vehicle":  "[[vehicles]]\nname = \"Ghost\"\nmass = 0\nacceleration = 5\nheight = 1\nlength = 4\nwidth = 2",
	} {
		t.Run(name, func(t *testing.T) {
			v := NewViper()
			require.NoError(t, v.ReadConfig(strings.NewReader(override)))
			_, err := ConfigFromViper(v)
			assert.Error(t, err)
		})
	}

	v := NewViper()
	require.NoError(t, v.ReadConfig(strings.NewReader("[[vehicles]]\nname = \"Ghost\"\nmass = -1\nacceleration = 5\nheight = 1\nlength = 4\nwidth = 2")))
	_, err := ConfigFromViper(v)
	assert.ErrorIs(t, err, ErrInvalidVehicle)
}

func TestSampleScenario(t *testing.T) {
	conf, err := LoadConfig(filepath.Join("cmd", "lapsim", "scenario.toml"))
	require.NoError(t, err)
	assert.Equal(t, Resistive, conf.Mode)
	assert.Equal(t, 2, conf.Substeps)
	assert.Equal(t, Grid{2, 2001}, conf.Track.RavineGrid)
	assert.Equal(t, Grid{DefaultMaxTime, 2001}, conf.Track.SlopeGrid)
	require.Len(t, conf.Vehicles, 2)
	supra, err := VehicleSpecFromString("toyota supra")
	require.NoError(t, err)
	assert.Equal(t, supra, conf.Vehicles[0])
}
