package lapsim

import (
	"fmt"
	"strings"
)

// Mode selects the dynamics model used to simulate a lap.
type Mode uint8

const (
	// Resistive includes aerodynamic drag, lift and rolling friction.
	Resistive Mode = iota + 1
	// Frictionless ignores drag and friction and uses closed forms wherever possible.
	Frictionless
)

func (m Mode) String() string {
	switch m {
	case Resistive:
		return "resistive"
	case Frictionless:
		return "frictionless"
	}
	panic("cannot stringify unknown dynamics mode")
}

// ModeFromString returns the mode matching the provided name.
func ModeFromString(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "resistive":
		return Resistive, nil
	case "frictionless":
		return Frictionless, nil
	}
	return 0, fmt.Errorf("unknown dynamics mode `%s`", s)
}

// Dynamics solves the equations of motion of each track segment.
// Every solver boosts the vehicle for its own phase before integrating and deboosts it after,
// so a booster assigned to that segment only affects that call.
type Dynamics interface {
	Name() string
	// Slope integrates the velocity along an incline of the provided angle (radians, positive downhill).
	Slope(v *Vehicle, v0, angle float64, grid Grid) (VelocityTrajectory, PositionTrajectory, error)
	// Loop integrates the angle and angular velocity in a vertical loop of the provided radius.
	// The returned velocity is tangential, i.e. radius times angular velocity.
	Loop(v *Vehicle, θ0, ω0, radius float64, grid Grid) (AngleTrajectory, AngularVelocityTrajectory, error)
	// Ravine integrates the ballistic flight over the ravine from the provided velocity.
	Ravine(v *Vehicle, vx0, vy0 float64, grid Grid) (VelocityTrajectory, PathTrajectory, error)
	// Finish integrates the velocity on flat ground from the provided position.
	Finish(v *Vehicle, v0, x0 float64, grid Grid) (VelocityTrajectory, PositionTrajectory, error)
}

// NewDynamics returns the dynamics of the provided mode. Each grid interval of an
// integrated segment is split into substeps RK4 steps.
func NewDynamics(mode Mode, substeps int) Dynamics {
	switch mode {
	case Resistive:
		return ResistiveDynamics{Substeps: substeps}
	case Frictionless:
		return FrictionlessDynamics{Substeps: substeps}
	}
	panic(fmt.Errorf("unknown dynamics mode %d", mode))
}

func validateRadius(radius float64) error {
	if !(radius > 0) || !finite([]float64{radius}) {
		return fmt.Errorf("%w: loop radius must be positive (got %f)", ErrInvalidTrack, radius)
	}
	return nil
}
