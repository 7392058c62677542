package lapsim

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Grid is a uniform time grid over [0, MaxTime] with Samples points.
type Grid struct {
	MaxTime float64 // s
	Samples int
}

// NewGrid returns a validated Grid.
func NewGrid(maxTime float64, samples int) (Grid, error) {
	g := Grid{maxTime, samples}
	return g, g.Validate()
}

// Validate returns an error if the grid cannot be sampled.
func (g Grid) Validate() error {
	if !(g.MaxTime > 0) || !finite([]float64{g.MaxTime}) {
		return fmt.Errorf("%w: max time must be positive and finite (got %f)", ErrInvalidGrid, g.MaxTime)
	}
	if g.Samples < 2 {
		return fmt.Errorf("%w: at least two samples are required (got %d)", ErrInvalidGrid, g.Samples)
	}
	return nil
}

// Step returns the spacing between two samples.
func (g Grid) Step() float64 {
	return g.MaxTime / float64(g.Samples-1)
}

// Times returns the sampling times. The grid must be valid.
func (g Grid) Times() []float64 {
	return floats.Span(make([]float64, g.Samples), 0, g.MaxTime)
}

func (g Grid) String() string {
	return fmt.Sprintf("[0, %gs] x%d", g.MaxTime, g.Samples)
}
