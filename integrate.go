package lapsim

import (
	"fmt"

	"github.com/ChristopherRabotin/ode"
	"gonum.org/v1/gonum/floats"
)

// derivative returns the time derivative of the state s at time t.
type derivative func(t float64, s []float64) []float64

// propagator samples the solution of an ODE on a Grid. It implements ode.Integrable.
type propagator struct {
	f        derivative
	state    []float64
	substeps int
	steps    int // total number of RK4 steps
	iter     int
	history  [][]float64 // one state per grid sample
	err      error
}

// propagate integrates f from s0 over the grid and returns the state at each grid time.
// Each grid interval is split into substeps RK4 steps.
func propagate(f derivative, s0 []float64, grid Grid, substeps int) ([][]float64, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	if !finite(s0) {
		return nil, fmt.Errorf("%w: non finite initial state %v", ErrDiverged, s0)
	}
	if substeps < 1 {
		substeps = 1
	}
	p := &propagator{
		f:        f,
		state:    clone(s0),
		substeps: substeps,
		steps:    (grid.Samples - 1) * substeps,
		history:  make([][]float64, 1, grid.Samples),
	}
	p.history[0] = clone(s0)
	ode.NewRK4(0, grid.Step()/float64(substeps), p).Solve() // Blocking.
	if p.err != nil {
		return nil, p.err
	}
	if len(p.history) != grid.Samples {
		return nil, fmt.Errorf("%w: integrator stopped after %d of %d samples", ErrDiverged, len(p.history), grid.Samples)
	}
	return p.history, nil
}

// GetState implements the ode.Integrable interface.
func (p *propagator) GetState() []float64 {
	return p.state
}

// SetState implements the ode.Integrable interface.
func (p *propagator) SetState(t float64, s []float64) {
	p.iter++
	if !finite(s) {
		p.err = fmt.Errorf("%w: state %v after %d steps", ErrDiverged, s, p.iter)
		return
	}
	p.state = s
	if p.iter%p.substeps == 0 {
		p.history = append(p.history, clone(s))
	}
}

// Stop implements the ode.Integrable interface.
func (p *propagator) Stop(t float64) bool {
	return p.err != nil || p.iter >= p.steps
}

// Func implements the ode.Integrable interface.
func (p *propagator) Func(t float64, s []float64) []float64 {
	return p.f(t, s)
}

// column extracts the j-th component of each state.
func column(history [][]float64, j int) []float64 {
	c := make([]float64, len(history))
	for i, s := range history {
		c[i] = s[j]
	}
	return c
}

// cumulative integrates the samples v as a running Riemann sum of spacing dt, offset by x0:
// x[i] = x0 + dt * (v[0] + ... + v[i]).
func cumulative(v []float64, dt, x0 float64) []float64 {
	x := floats.CumSum(make([]float64, len(v)), v)
	floats.Scale(dt, x)
	floats.AddConst(x0, x)
	return x
}
