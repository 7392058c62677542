package lapsim

import (
	"fmt"
	"math"
)

// ResistiveDynamics models aerodynamic drag, lift and rolling friction. All segments are integrated.
type ResistiveDynamics struct {
	Substeps int // RK4 steps per grid interval
}

// Name implements the Dynamics interface.
func (d ResistiveDynamics) Name() string {
	return Resistive.String()
}

// Slope implements the Dynamics interface.
func (d ResistiveDynamics) Slope(v *Vehicle, v0, angle float64, grid Grid) (vel VelocityTrajectory, pos PositionTrajectory, err error) {
	if err = grid.Validate(); err != nil {
		return
	}
	v.Boost(PhaseSlope)
	defer v.Deboost()
	a, k, μ := v.Acceleration(), v.DragFactor(), v.Mu()
	sα, cα := math.Sincos(angle)
	history, err := propagate(func(t float64, s []float64) []float64 {
		return []float64{a + Gravity*sα - μ*Gravity*cα - k*s[0]*s[0]}
	}, []float64{v0}, grid, d.Substeps)
	if err != nil {
		return vel, pos, fmt.Errorf("slope: %w", err)
	}
	t := grid.Times()
	speed := column(history, 0)
	if vel, err = NewVelocityTrajectory(t, speed, nil); err != nil {
		return
	}
	pos, err = NewPositionTrajectory(t, cumulative(speed, grid.Step(), 0))
	return
}

// Loop implements the Dynamics interface.
func (d ResistiveDynamics) Loop(v *Vehicle, θ0, ω0, radius float64, grid Grid) (angle AngleTrajectory, vel AngularVelocityTrajectory, err error) {
	if err = grid.Validate(); err != nil {
		return
	}
	if err = validateRadius(radius); err != nil {
		return
	}
	v.Boost(PhaseLoop)
	defer v.Deboost()
	a, k, μ, m := v.Acceleration(), v.DragFactor(), v.Mu(), v.Mass()
	history, err := propagate(func(t float64, s []float64) []float64 {
		θ, ω := s[0], s[1]
		vt := radius * ω
		sθ, cθ := math.Sincos(θ)
		return []float64{ω, (a - k*vt*vt/(2*m) - μ*Gravity*cθ - Gravity*sθ) / radius}
	}, []float64{θ0, ω0}, grid, d.Substeps)
	if err != nil {
		return angle, vel, fmt.Errorf("loop: %w", err)
	}
	t := grid.Times()
	tangential := column(history, 1)
	for i := range tangential {
		tangential[i] *= radius
	}
	if angle, err = NewAngleTrajectory(t, column(history, 0)); err != nil {
		return
	}
	vel, err = NewAngularVelocityTrajectory(t, tangential)
	return
}

// Ravine implements the Dynamics interface.
// The aerodynamic term is proportional to the speed times the difference between the
// frontal drag and the lift: its sign decides whether the vehicle is held up or pushed down.
func (d ResistiveDynamics) Ravine(v *Vehicle, vx0, vy0 float64, grid Grid) (vel VelocityTrajectory, path PathTrajectory, err error) {
	if err = grid.Validate(); err != nil {
		return
	}
	v.Boost(PhaseRavine)
	defer v.Deboost()
	c := AirDensity / (2 * v.Mass()) * (v.FrontalDrag() - v.LiftArea())
	history, err := propagate(func(t float64, s []float64) []float64 {
		vx, vy := s[0], s[1]
		aero := c * norm(vx, vy)
		return []float64{aero * vx, aero*vy - Gravity}
	}, []float64{vx0, vy0}, grid, d.Substeps)
	if err != nil {
		return vel, path, fmt.Errorf("ravine: %w", err)
	}
	vx, vy := column(history, 0), column(history, 1)
	if vel, err = NewVelocityTrajectory(grid.Times(), vx, vy); err != nil {
		return
	}
	dt := grid.Step()
	path, err = NewPathTrajectory(cumulative(vx, dt, 0), cumulative(vy, dt, 0))
	return
}

// Finish implements the Dynamics interface.
func (d ResistiveDynamics) Finish(v *Vehicle, v0, x0 float64, grid Grid) (vel VelocityTrajectory, pos PositionTrajectory, err error) {
	if err = grid.Validate(); err != nil {
		return
	}
	v.Boost(PhaseFinish)
	defer v.Deboost()
	a, k, μ := v.Acceleration(), v.DragFactor(), v.Mu()
	history, err := propagate(func(t float64, s []float64) []float64 {
		return []float64{a - μ*Gravity - k*s[0]*s[0]}
	}, []float64{v0}, grid, d.Substeps)
	if err != nil {
		return vel, pos, fmt.Errorf("finish: %w", err)
	}
	t := grid.Times()
	speed := column(history, 0)
	if vel, err = NewVelocityTrajectory(t, speed, nil); err != nil {
		return
	}
	pos, err = NewPositionTrajectory(t, cumulative(speed, grid.Step(), x0))
	return
}
