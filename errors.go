package lapsim

import "errors"

var (
	// ErrInvalidVehicle is returned when a vehicle specification is physically meaningless.
	ErrInvalidVehicle = errors.New("invalid vehicle")
	// ErrInvalidGrid is returned when a time grid cannot be sampled.
	ErrInvalidGrid = errors.New("invalid time grid")
	// ErrInvalidTrack is returned when the track geometry is meaningless.
	ErrInvalidTrack = errors.New("invalid track")
	// ErrMismatchedSamples is returned when trajectory arrays are not aligned.
	ErrMismatchedSamples = errors.New("mismatched sample lengths")
	// ErrDiverged is returned when the integrated state is no longer finite.
	ErrDiverged = errors.New("integration diverged")
	// ErrNotReached is returned when a segment never reaches its exit threshold.
	ErrNotReached = errors.New("threshold not reached")
	// ErrNoFeasibleConfiguration is returned when every configuration of a search failed.
	ErrNoFeasibleConfiguration = errors.New("no feasible configuration")
)
