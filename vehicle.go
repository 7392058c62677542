package lapsim

import (
	"fmt"
	"math"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const (
	// DefaultBoostFactor multiplies the engine acceleration while the booster is active (+30%).
	DefaultBoostFactor = 1.3

	// Rear wing modifiers.
	wingArea      = 0.8 // m²
	wingMass      = 30  // kg
	wingLiftScale = 1.1
	// Side skirt modifiers.
	skirtMass      = 15 // kg
	skirtDragScale = 0.95
)

// VehicleSpec is the base specification of a vehicle, before any add-on is installed.
type VehicleSpec struct {
	Name         string  `mapstructure:"name"`
	Mass         float64 `mapstructure:"mass"`         // kg
	Acceleration float64 `mapstructure:"acceleration"` // engine acceleration, m/s²
	Height       float64 `mapstructure:"height"`       // m
	Length       float64 `mapstructure:"length"`       // m
	Width        float64 `mapstructure:"width"`        // m
	Cx           float64 `mapstructure:"cx"`           // drag coefficient
	Cz           float64 `mapstructure:"cz"`           // lift coefficient
	Mu           float64 `mapstructure:"mu"`           // friction coefficient
}

// Validate returns an error if the specification cannot be simulated.
func (s VehicleSpec) Validate() error {
	if s.Mass <= 0 {
		return fmt.Errorf("%w: %s: mass must be positive (got %f)", ErrInvalidVehicle, s.Name, s.Mass)
	}
	if s.Acceleration <= 0 {
		return fmt.Errorf("%w: %s: engine acceleration must be positive (got %f)", ErrInvalidVehicle, s.Name, s.Acceleration)
	}
	if s.Height <= 0 || s.Length <= 0 || s.Width <= 0 {
		return fmt.Errorf("%w: %s: dimensions must be positive (got %fx%fx%f)", ErrInvalidVehicle, s.Name, s.Height, s.Length, s.Width)
	}
	if s.Cx < 0 || s.Cz < 0 || s.Mu < 0 {
		return fmt.Errorf("%w: %s: coefficients may not be negative", ErrInvalidVehicle, s.Name)
	}
	return nil
}

// Booster is a one-shot multiplier on the engine acceleration, gated by phase.
type Booster struct {
	Phase  Phase
	Factor float64
	used   bool
	saved  float64 // engine acceleration before the boost
}

// Used returns whether the booster is currently active.
func (b Booster) Used() bool {
	return b.used
}

func (b Booster) String() string {
	return fmt.Sprintf("booster(%s, x%.2f, used=%v)", b.Phase, b.Factor, b.used)
}

// Vehicle is a vehicle with its add-ons installed and its booster.
// A Vehicle is mutated by Boost and Deboost and must not be shared between concurrent laps.
type Vehicle struct {
	Name         string
	Wing, Skirt  bool
	mass         float64 // kg
	acceleration float64 // m/s²
	height       float64
	length       float64
	width        float64
	cx, cz, mu   float64
	frontalArea  float64 // m²
	planformArea float64 // m²
	dragFactor   float64 // 0.5 ρ Sf Cx / m
	frontalDrag  float64 // Sf Cx
	liftArea     float64 // Cz Sp
	booster      Booster
	logger       kitlog.Logger
}

// VehicleOption configures optional parts of a Vehicle.
type VehicleOption func(*Vehicle)

// WithLogger sets the logger of the vehicle.
func WithLogger(logger kitlog.Logger) VehicleOption {
	return func(v *Vehicle) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// WithBoostFactor overrides the default boost factor.
func WithBoostFactor(factor float64) VehicleOption {
	return func(v *Vehicle) {
		v.booster.Factor = factor
	}
}

// NewVehicle returns a new vehicle from its base specification, the add-ons to install
// and the phase its booster is assigned to.
func NewVehicle(spec VehicleSpec, wing, skirt bool, boost Phase, opts ...VehicleOption) (*Vehicle, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	v := &Vehicle{
		Name:         spec.Name,
		Wing:         wing,
		Skirt:        skirt,
		mass:         spec.Mass,
		acceleration: spec.Acceleration,
		height:       spec.Height,
		length:       spec.Length,
		width:        spec.Width,
		cx:           spec.Cx,
		cz:           spec.Cz,
		mu:           spec.Mu,
		booster:      Booster{Phase: boost, Factor: DefaultBoostFactor},
		logger:       kitlog.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(v)
	}
	if !(v.booster.Factor > 1) || math.IsInf(v.booster.Factor, 0) {
		return nil, fmt.Errorf("%w: %s: boost factor must be finite and greater than one (got %f)", ErrInvalidVehicle, spec.Name, v.booster.Factor)
	}
	v.logger = kitlog.With(v.logger, "vehicle", v.Name)

	v.frontalArea = v.height * v.width
	v.planformArea = v.length * v.width
	v.liftArea = v.cz * v.planformArea
	v.frontalDrag = v.cx * v.frontalArea
	if wing {
		v.planformArea += wingArea
		v.mass += wingMass
		v.cz *= wingLiftScale
		v.liftArea = v.cz * v.planformArea
	}
	if skirt {
		v.mass += skirtMass
		v.cx *= skirtDragScale
		v.frontalDrag = v.cx * v.frontalArea
	}
	// Last, so it reflects the mass of every installed add-on.
	v.computeDragFactor()
	return v, nil
}

func (v *Vehicle) computeDragFactor() {
	v.dragFactor = 0.5 * AirDensity * v.frontalArea * v.cx / v.mass
}

// Boost activates the booster if it is assigned to the provided phase.
func (v *Vehicle) Boost(phase Phase) {
	if v.booster.used || phase == PhaseNone || v.booster.Phase != phase {
		return
	}
	v.booster.saved = v.acceleration
	v.acceleration *= v.booster.Factor
	v.booster.used = true
	level.Debug(v.logger).Log("subsys", "booster", "status", "boost", "phase", phase, "acceleration", v.acceleration)
}

// Deboost deactivates a used booster, restoring the engine acceleration exactly.
// The booster is inert for the rest of the run.
func (v *Vehicle) Deboost() {
	if !v.booster.used {
		return
	}
	v.acceleration = v.booster.saved
	level.Debug(v.logger).Log("subsys", "booster", "status", "deboost", "phase", v.booster.Phase, "acceleration", v.acceleration)
	v.booster.Phase = PhaseNone
	v.booster.used = false
}

// Booster returns a copy of the booster state.
func (v *Vehicle) Booster() Booster {
	return v.booster
}

// Mass returns the total mass in kg, add-ons included.
func (v *Vehicle) Mass() float64 {
	return v.mass
}

// Acceleration returns the current engine acceleration in m/s², boost included.
func (v *Vehicle) Acceleration() float64 {
	return v.acceleration
}

// Length returns the length of the vehicle in m.
func (v *Vehicle) Length() float64 {
	return v.length
}

// Cx returns the drag coefficient.
func (v *Vehicle) Cx() float64 {
	return v.cx
}

// Cz returns the lift coefficient.
func (v *Vehicle) Cz() float64 {
	return v.cz
}

// Mu returns the friction coefficient.
func (v *Vehicle) Mu() float64 {
	return v.mu
}

// FrontalArea returns the frontal area in m².
func (v *Vehicle) FrontalArea() float64 {
	return v.frontalArea
}

// PlanformArea returns the planform area in m².
func (v *Vehicle) PlanformArea() float64 {
	return v.planformArea
}

// DragFactor returns the drag normalized by mass, 0.5 ρ Sf Cx / m.
func (v *Vehicle) DragFactor() float64 {
	return v.dragFactor
}

// FrontalDrag returns the frontal area times the drag coefficient.
func (v *Vehicle) FrontalDrag() float64 {
	return v.frontalDrag
}

// LiftArea returns the lift coefficient times the planform area.
func (v *Vehicle) LiftArea() float64 {
	return v.liftArea
}

func (v *Vehicle) String() string {
	return fmt.Sprintf("%s (m=%.1fkg a=%.2fm/s² wing=%v skirt=%v %s)", v.Name, v.mass, v.acceleration, v.Wing, v.Skirt, v.booster)
}
