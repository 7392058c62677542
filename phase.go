package lapsim

import (
	"fmt"
	"strings"
)

// Phase identifies a track segment. It is also the tag a Booster is assigned to.
type Phase uint8

const (
	// PhaseNone means the booster is not assigned to any segment.
	PhaseNone Phase = iota
	// PhaseSlope is the downhill slope.
	PhaseSlope
	// PhaseLoop is the vertical loop.
	PhaseLoop
	// PhaseRavine is the jump over the ravine.
	PhaseRavine
	// PhaseFinish is the final straight.
	PhaseFinish
)

// Phases lists every phase in enumeration order, PhaseNone included.
var Phases = []Phase{PhaseNone, PhaseSlope, PhaseLoop, PhaseRavine, PhaseFinish}

// Segments lists the four track segments in the order they are driven.
var Segments = []Phase{PhaseSlope, PhaseLoop, PhaseRavine, PhaseFinish}

func (p Phase) String() string {
	switch p {
	case PhaseNone:
		return "none"
	case PhaseSlope:
		return "slope"
	case PhaseLoop:
		return "loop"
	case PhaseRavine:
		return "ravine"
	case PhaseFinish:
		return "finish"
	}
	panic("cannot stringify unknown phase")
}

// PhaseFromString returns the phase matching the provided name.
func PhaseFromString(s string) (Phase, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return PhaseNone, nil
	case "slope":
		return PhaseSlope, nil
	case "loop":
		return PhaseLoop, nil
	case "ravine":
		return PhaseRavine, nil
	case "finish":
		return PhaseFinish, nil
	}
	return PhaseNone, fmt.Errorf("unknown phase `%s`", s)
}
