package lapsim

import (
	"fmt"
	"math"
)

const (
	// DefaultSlopeAngle is the inclination of the slope in degrees.
	DefaultSlopeAngle = 3.69
	// DefaultSlopeLength is the distance from the start to the loop entry in m.
	DefaultSlopeLength = 31.0
	// DefaultLoopRadius is the radius of the vertical loop in m.
	DefaultLoopRadius = 6.0
	// DefaultLandingHeight is the height below the takeoff point at which the vehicle lands in m.
	DefaultLandingHeight = -1.0
	// DefaultClearance is subtracted from the landing position to get the finish start position in m.
	DefaultClearance = 9.0
	// DefaultFinishLine is the position of the finish line on the straight in m.
	DefaultFinishLine = 10.0
	// DefaultMaxTime is the simulated duration of each segment in s.
	DefaultMaxTime = 10.0
	// DefaultSamples is the number of samples of each segment.
	DefaultSamples = 10001
)

// Track defines the geometry of the four segments and how long each is simulated.
type Track struct {
	SlopeAngle    float64 // degrees, positive downhill
	SlopeLength   float64 // m
	LoopRadius    float64 // m
	LandingHeight float64 // m
	Clearance     float64 // m
	FinishLine    float64 // m
	SlopeGrid     Grid
	LoopGrid      Grid
	RavineGrid    Grid
	FinishGrid    Grid
}

// DefaultTrack returns the reference track with every segment simulated over
// DefaultMaxTime seconds with the provided number of samples.
func DefaultTrack(samples int) Track {
	grid := Grid{DefaultMaxTime, samples}
	return Track{
		SlopeAngle:    DefaultSlopeAngle,
		SlopeLength:   DefaultSlopeLength,
		LoopRadius:    DefaultLoopRadius,
		LandingHeight: DefaultLandingHeight,
		Clearance:     DefaultClearance,
		FinishLine:    DefaultFinishLine,
		SlopeGrid:     grid,
		LoopGrid:      grid,
		RavineGrid:    grid,
		FinishGrid:    grid,
	}
}

// Validate returns an error if the track cannot be simulated.
func (t Track) Validate() error {
	if !finite([]float64{t.SlopeAngle, t.SlopeLength, t.LandingHeight, t.Clearance, t.FinishLine}) {
		return fmt.Errorf("%w: non finite geometry", ErrInvalidTrack)
	}
	if t.SlopeLength <= 0 {
		return fmt.Errorf("%w: slope length must be positive (got %f)", ErrInvalidTrack, t.SlopeLength)
	}
	if err := validateRadius(t.LoopRadius); err != nil {
		return err
	}
	for i, g := range []Grid{t.SlopeGrid, t.LoopGrid, t.RavineGrid, t.FinishGrid} {
		if err := g.Validate(); err != nil {
			return fmt.Errorf("%s: %w", Segments[i], err)
		}
	}
	return nil
}

// Lap is the outcome of driving the four segments.
type Lap struct {
	Vehicle        string
	Splits         [4]float64 // s, in Segments order
	Total          float64    // s
	FinishStart    float64    // m
	SlopeVelocity  VelocityTrajectory
	SlopePosition  PositionTrajectory
	LoopAngle      AngleTrajectory
	LoopVelocity   AngularVelocityTrajectory
	RavineVelocity VelocityTrajectory
	RavinePath     PathTrajectory
	FinishVelocity VelocityTrajectory
	FinishPosition PositionTrajectory
}

// Split returns the duration of the provided segment.
func (l *Lap) Split(p Phase) float64 {
	switch p {
	case PhaseSlope:
		return l.Splits[0]
	case PhaseLoop:
		return l.Splits[1]
	case PhaseRavine:
		return l.Splits[2]
	case PhaseFinish:
		return l.Splits[3]
	}
	panic(fmt.Errorf("phase %s has no split", p))
}

func (l *Lap) String() string {
	return fmt.Sprintf("%s: %.4fs (slope %.4fs, loop %.4fs, ravine %.4fs, finish %.4fs)", l.Vehicle, l.Total, l.Splits[0], l.Splits[1], l.Splits[2], l.Splits[3])
}

func notReached(p Phase, what string, target float64) error {
	return fmt.Errorf("%s: %w: %s %g", p, ErrNotReached, what, target)
}

// RunLap drives the vehicle through the slope, the loop, the ravine and the finish straight,
// each segment starting from the exit conditions of the previous one.
func RunLap(d Dynamics, v *Vehicle, track Track) (*Lap, error) {
	if err := track.Validate(); err != nil {
		return nil, err
	}
	lap := &Lap{Vehicle: v.Name}
	var err error

	// Slope, from rest.
	if lap.SlopeVelocity, lap.SlopePosition, err = d.Slope(v, 0, Deg2rad(track.SlopeAngle), track.SlopeGrid); err != nil {
		return nil, err
	}
	slopeTime, ok := TimeAtPosition(lap.SlopePosition, track.SlopeLength)
	if !ok {
		return nil, notReached(PhaseSlope, "position", track.SlopeLength)
	}
	slopeExit, ok := VelocityAtPosition(lap.SlopePosition, lap.SlopeVelocity, track.SlopeLength)
	if !ok {
		return nil, notReached(PhaseSlope, "position", track.SlopeLength)
	}

	// Loop, entered at the slope exit speed.
	ω0 := slopeExit.Vx / track.LoopRadius
	if lap.LoopAngle, lap.LoopVelocity, err = d.Loop(v, 0, ω0, track.LoopRadius, track.LoopGrid); err != nil {
		return nil, err
	}
	loopTime, ok := TimeAtAngle(lap.LoopAngle, 2*math.Pi)
	if !ok {
		return nil, notReached(PhaseLoop, "angle", 2*math.Pi)
	}
	loopExit, ok := VelocityAtAngle(lap.LoopAngle, lap.LoopVelocity, 2*math.Pi)
	if !ok {
		return nil, notReached(PhaseLoop, "angle", 2*math.Pi)
	}

	// Ravine, horizontal takeoff at the loop exit speed.
	if lap.RavineVelocity, lap.RavinePath, err = d.Ravine(v, loopExit, 0, track.RavineGrid); err != nil {
		return nil, err
	}
	landing, ok := FirstBelow(lap.RavinePath, track.LandingHeight)
	if !ok || landing >= lap.RavineVelocity.Len() {
		return nil, notReached(PhaseRavine, "height", track.LandingHeight)
	}
	ravineTime := lap.RavineVelocity.At(landing).T
	landingX, _ := lap.RavinePath.At(landing)
	lap.FinishStart = landingX - track.Clearance

	// Finish straight, from rest at the landing spot.
	if lap.FinishVelocity, lap.FinishPosition, err = d.Finish(v, 0, lap.FinishStart, track.FinishGrid); err != nil {
		return nil, err
	}
	finish := track.FinishLine - v.Length()/2
	finishTime, ok := TimeAtPosition(lap.FinishPosition, finish)
	if !ok {
		return nil, notReached(PhaseFinish, "position", finish)
	}

	lap.Splits = [4]float64{slopeTime, loopTime, ravineTime, finishTime}
	lap.Total = slopeTime + loopTime + ravineTime + finishTime
	return lap, nil
}
