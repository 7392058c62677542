package lapsim

import "fmt"

/* Trajectory containers are built once from aligned samples and never modified. */

func clone(s []float64) []float64 {
	c := make([]float64, len(s))
	copy(c, s)
	return c
}

// series is a pair of aligned arrays: x is the independent variable.
type series struct {
	x, y []float64
}

func newSeries(x, y []float64) (series, error) {
	if len(x) != len(y) {
		return series{}, fmt.Errorf("%w: %d vs %d", ErrMismatchedSamples, len(x), len(y))
	}
	return series{clone(x), clone(y)}, nil
}

// Len returns the number of samples.
func (s series) Len() int {
	return len(s.x)
}

// At returns the i-th sample.
func (s series) At(i int) (x, y float64) {
	return s.x[i], s.y[i]
}

// VelocitySample is a single sample of a VelocityTrajectory.
type VelocitySample struct {
	T     float64 // s
	Vx    float64 // m/s
	Vy    float64 // m/s
	Speed float64 // m/s
}

func (s VelocitySample) String() string {
	return fmt.Sprintf("t=%.4fs vx=%.4f vy=%.4f |v|=%.4f", s.T, s.Vx, s.Vy, s.Speed)
}

// VelocityTrajectory is a velocity-vs-time trajectory. Along-track (one dimensional)
// motion is stored as the horizontal component.
type VelocityTrajectory struct {
	t, vx, vy, speed []float64
}

// NewVelocityTrajectory returns a new velocity trajectory. If vy is nil, the motion is
// one dimensional and the vertical component is zero.
func NewVelocityTrajectory(t, vx, vy []float64) (VelocityTrajectory, error) {
	if vy == nil {
		vy = make([]float64, len(vx))
	}
	if len(t) != len(vx) || len(t) != len(vy) {
		return VelocityTrajectory{}, fmt.Errorf("%w: t=%d vx=%d vy=%d", ErrMismatchedSamples, len(t), len(vx), len(vy))
	}
	traj := VelocityTrajectory{clone(t), clone(vx), clone(vy), make([]float64, len(t))}
	for i := range traj.speed {
		traj.speed[i] = norm(traj.vx[i], traj.vy[i])
	}
	return traj, nil
}

// Len returns the number of samples.
func (v VelocityTrajectory) Len() int {
	return len(v.t)
}

// At returns the i-th sample.
func (v VelocityTrajectory) At(i int) VelocitySample {
	return VelocitySample{v.t[i], v.vx[i], v.vy[i], v.speed[i]}
}

// Times returns a copy of the sampling times.
func (v VelocityTrajectory) Times() []float64 { return clone(v.t) }

// Vx returns a copy of the horizontal (or along-track) velocities.
func (v VelocityTrajectory) Vx() []float64 { return clone(v.vx) }

// Vy returns a copy of the vertical velocities.
func (v VelocityTrajectory) Vy() []float64 { return clone(v.vy) }

// Speeds returns a copy of the speed magnitudes.
func (v VelocityTrajectory) Speeds() []float64 { return clone(v.speed) }

// PositionTrajectory is a position-vs-time trajectory.
type PositionTrajectory struct{ series }

// NewPositionTrajectory returns a new position trajectory.
func NewPositionTrajectory(t, x []float64) (PositionTrajectory, error) {
	s, err := newSeries(t, x)
	return PositionTrajectory{s}, err
}

// Times returns a copy of the sampling times.
func (p PositionTrajectory) Times() []float64 { return clone(p.x) }

// Positions returns a copy of the positions.
func (p PositionTrajectory) Positions() []float64 { return clone(p.y) }

// AngleTrajectory is an angle-vs-time trajectory, in radians.
type AngleTrajectory struct{ series }

// NewAngleTrajectory returns a new angle trajectory.
func NewAngleTrajectory(t, θ []float64) (AngleTrajectory, error) {
	s, err := newSeries(t, θ)
	return AngleTrajectory{s}, err
}

// Times returns a copy of the sampling times.
func (a AngleTrajectory) Times() []float64 { return clone(a.x) }

// Angles returns a copy of the angles.
func (a AngleTrajectory) Angles() []float64 { return clone(a.y) }

// AngularVelocityTrajectory is the tangential velocity (radius times angular velocity)
// versus time of a circular motion.
type AngularVelocityTrajectory struct{ series }

// NewAngularVelocityTrajectory returns a new angular velocity trajectory.
func NewAngularVelocityTrajectory(t, v []float64) (AngularVelocityTrajectory, error) {
	s, err := newSeries(t, v)
	return AngularVelocityTrajectory{s}, err
}

// Times returns a copy of the sampling times.
func (a AngularVelocityTrajectory) Times() []float64 { return clone(a.x) }

// Velocities returns a copy of the tangential velocities.
func (a AngularVelocityTrajectory) Velocities() []float64 { return clone(a.y) }

// PathTrajectory is the height of the vehicle versus its horizontal position.
type PathTrajectory struct{ series }

// NewPathTrajectory returns a new path.
func NewPathTrajectory(x, y []float64) (PathTrajectory, error) {
	s, err := newSeries(x, y)
	return PathTrajectory{s}, err
}

// X returns a copy of the horizontal positions.
func (p PathTrajectory) X() []float64 { return clone(p.x) }

// Y returns a copy of the heights.
func (p PathTrajectory) Y() []float64 { return clone(p.y) }
