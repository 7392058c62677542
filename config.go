package lapsim

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is a simulation scenario.
type Config struct {
	Mode        Mode
	Substeps    int
	Workers     int
	BoostFactor float64
	Track       Track
	Vehicles    []VehicleSpec
}

// NewViper returns a configuration registry with every default set. Scenario files and
// command line flags are layered on top of it.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetDefault("simulation.mode", Resistive.String())
	v.SetDefault("simulation.samples", DefaultSamples)
	v.SetDefault("simulation.substeps", 1)
	v.SetDefault("simulation.workers", 0)
	v.SetDefault("booster.factor", DefaultBoostFactor)
	v.SetDefault("track.slope_angle", DefaultSlopeAngle)
	v.SetDefault("track.slope_length", DefaultSlopeLength)
	v.SetDefault("track.loop_radius", DefaultLoopRadius)
	v.SetDefault("track.landing_height", DefaultLandingHeight)
	v.SetDefault("track.clearance", DefaultClearance)
	v.SetDefault("track.finish_line", DefaultFinishLine)
	v.SetDefault("track.max_time", DefaultMaxTime)
	return v
}

// LoadViper returns a registry from NewViper with the TOML scenario at the provided path
// read on top of the defaults. An empty path only sets the defaults.
func LoadViper(path string) (*viper.Viper, error) {
	v := NewViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return v, nil
}

// LoadConfig reads the TOML scenario at the provided path. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	v, err := LoadViper(path)
	if err != nil {
		return Config{}, err
	}
	return ConfigFromViper(v)
}

// ConfigFromViper builds a scenario from a registry returned by NewViper.
func ConfigFromViper(v *viper.Viper) (Config, error) {
	mode, err := ModeFromString(v.GetString("simulation.mode"))
	if err != nil {
		return Config{}, err
	}
	conf := Config{
		Mode:        mode,
		Substeps:    v.GetInt("simulation.substeps"),
		Workers:     v.GetInt("simulation.workers"),
		BoostFactor: v.GetFloat64("booster.factor"),
	}
	if conf.Substeps < 1 {
		return Config{}, fmt.Errorf("simulation.substeps must be at least 1 (got %d)", conf.Substeps)
	}
	if !(conf.BoostFactor > 1) {
		return Config{}, fmt.Errorf("booster.factor must be greater than one (got %f)", conf.BoostFactor)
	}

	samples := v.GetInt("simulation.samples")
	maxTime := v.GetFloat64("track.max_time")
	segmentGrid := func(phase Phase) Grid {
		key := fmt.Sprintf("track.%s_max_time", phase)
		if v.IsSet(key) {
			return Grid{v.GetFloat64(key), samples}
		}
		return Grid{maxTime, samples}
	}
	conf.Track = Track{
		SlopeAngle:    v.GetFloat64("track.slope_angle"),
		SlopeLength:   v.GetFloat64("track.slope_length"),
		LoopRadius:    v.GetFloat64("track.loop_radius"),
		LandingHeight: v.GetFloat64("track.landing_height"),
		Clearance:     v.GetFloat64("track.clearance"),
		FinishLine:    v.GetFloat64("track.finish_line"),
		SlopeGrid:     segmentGrid(PhaseSlope),
		LoopGrid:      segmentGrid(PhaseLoop),
		RavineGrid:    segmentGrid(PhaseRavine),
		FinishGrid:    segmentGrid(PhaseFinish),
	}
	if err := conf.Track.Validate(); err != nil {
		return Config{}, err
	}

	conf.Vehicles = Roster
	if v.IsSet("vehicles") {
		var specs []VehicleSpec
		if err := v.UnmarshalKey("vehicles", &specs); err != nil {
			return Config{}, fmt.Errorf("vehicles: %w", err)
		}
		for _, spec := range specs {
			if err := spec.Validate(); err != nil {
				return Config{}, err
			}
		}
		conf.Vehicles = specs
	}
	if len(conf.Vehicles) == 0 {
		return Config{}, fmt.Errorf("%w: empty roster", ErrInvalidVehicle)
	}
	return conf, nil
}

// Dynamics returns the dynamics selected by the scenario.
func (c Config) Dynamics() Dynamics {
	return NewDynamics(c.Mode, c.Substeps)
}
