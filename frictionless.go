package lapsim

import (
	"fmt"
	"math"
)

// FrictionlessDynamics ignores drag, lift and friction. Slope, ravine and finish use
// exact closed forms; only the loop is integrated.
type FrictionlessDynamics struct {
	Substeps int // RK4 steps per grid interval of the loop
}

// Name implements the Dynamics interface.
func (d FrictionlessDynamics) Name() string {
	return Frictionless.String()
}

// uniformlyAccelerated returns the velocity and position of a constant acceleration motion.
func uniformlyAccelerated(t []float64, v0, x0, acc float64) (vel, pos []float64) {
	vel = make([]float64, len(t))
	pos = make([]float64, len(t))
	for i, ti := range t {
		vel[i] = v0 + acc*ti
		pos[i] = x0 + v0*ti + 0.5*acc*ti*ti
	}
	return
}

// Slope implements the Dynamics interface.
func (d FrictionlessDynamics) Slope(v *Vehicle, v0, angle float64, grid Grid) (vel VelocityTrajectory, pos PositionTrajectory, err error) {
	if err = grid.Validate(); err != nil {
		return
	}
	v.Boost(PhaseSlope)
	defer v.Deboost()
	t := grid.Times()
	speed, x := uniformlyAccelerated(t, v0, 0, v.Acceleration()+Gravity*math.Sin(angle))
	if vel, err = NewVelocityTrajectory(t, speed, nil); err != nil {
		return
	}
	pos, err = NewPositionTrajectory(t, x)
	return
}

// Loop implements the Dynamics interface.
func (d FrictionlessDynamics) Loop(v *Vehicle, θ0, ω0, radius float64, grid Grid) (angle AngleTrajectory, vel AngularVelocityTrajectory, err error) {
	if err = grid.Validate(); err != nil {
		return
	}
	if err = validateRadius(radius); err != nil {
		return
	}
	v.Boost(PhaseLoop)
	defer v.Deboost()
	a := v.Acceleration()
	history, err := propagate(func(t float64, s []float64) []float64 {
		return []float64{s[1], (a - Gravity*math.Sin(s[0])) / radius}
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

// Ravine implements the Dynamics interface: a pure ballistic flight.
func (d FrictionlessDynamics) Ravine(v *Vehicle, vx0, vy0 float64, grid Grid) (vel VelocityTrajectory, path PathTrajectory, err error) {
	if err = grid.Validate(); err != nil {
		return
	}
	v.Boost(PhaseRavine)
	defer v.Deboost()
	t := grid.Times()
	vx, x := uniformlyAccelerated(t, vx0, 0, 0)
	vy, y := uniformlyAccelerated(t, vy0, 0, -Gravity)
	if vel, err = NewVelocityTrajectory(t, vx, vy); err != nil {
		return
	}
	path, err = NewPathTrajectory(x, y)
	return
}

// Finish implements the Dynamics interface.
func (d FrictionlessDynamics) Finish(v *Vehicle, v0, x0 float64, grid Grid) (vel VelocityTrajectory, pos PositionTrajectory, err error) {
	if err = grid.Validate(); err != nil {
		return
	}
	v.Boost(PhaseFinish)
	defer v.Deboost()
	t := grid.Times()
	speed, x := uniformlyAccelerated(t, v0, x0, v.Acceleration())
	if vel, err = NewVelocityTrajectory(t, speed, nil); err != nil {
		return
	}
	pos, err = NewPositionTrajectory(t, x)
	return
}
