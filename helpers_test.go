package lapsim

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

const testε = 1e-9

func assertPanic(t *testing.T, f func()) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("code did not panic")
		}
	}()
	f()
}

func vectorsEqual(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !scalar.EqualWithinAbsOrRel(a[i], b[i], tol, tol) {
			return false
		}
	}
	return true
}

// testVehicle returns a roster vehicle without add-ons and with an unassigned booster.
func testVehicle(t *testing.T) *Vehicle {
	v, err := NewVehicle(Roster[0], false, false, PhaseNone)
	if err != nil {
		t.Fatalf("could not build vehicle: %s", err)
	}
	return v
}

// stubDynamics returns canned trajectories and records the initial conditions it was given.
type stubDynamics struct {
	slopeVel  VelocityTrajectory
	slopePos  PositionTrajectory
	loopAngle AngleTrajectory
	loopVel   AngularVelocityTrajectory
	ravineVel VelocityTrajectory
	path      PathTrajectory
	finishVel VelocityTrajectory
	finishPos PositionTrajectory

	loopω0, loopRadius float64
	ravineVx0          float64
	finishX0           float64
}

func (d *stubDynamics) Name() string { return "stub" }

func (d *stubDynamics) Slope(v *Vehicle, v0, angle float64, grid Grid) (VelocityTrajectory, PositionTrajectory, error) {
	return d.slopeVel, d.slopePos, nil
}

func (d *stubDynamics) Loop(v *Vehicle, θ0, ω0, radius float64, grid Grid) (AngleTrajectory, AngularVelocityTrajectory, error) {
	d.loopω0, d.loopRadius = ω0, radius
	return d.loopAngle, d.loopVel, nil
}

func (d *stubDynamics) Ravine(v *Vehicle, vx0, vy0 float64, grid Grid) (VelocityTrajectory, PathTrajectory, error) {
	d.ravineVx0 = vx0
	return d.ravineVel, d.path, nil
}

func (d *stubDynamics) Finish(v *Vehicle, v0, x0 float64, grid Grid) (VelocityTrajectory, PositionTrajectory, error) {
	d.finishX0 = x0
	return d.finishVel, d.finishPos, nil
}
