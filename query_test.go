package lapsim

import (
	"math"
	"testing"
)

func queryTrajectories(t *testing.T) (PositionTrajectory, VelocityTrajectory) {
	times := []float64{0, 1, 2, 3, 4}
	pos, err := NewPositionTrajectory(times, []float64{0, 2, 5, 9, 12})
	if err != nil {
		t.Fatal(err)
	}
	vel, err := NewVelocityTrajectory(times, []float64{1, 2, 3, 4, 5}, nil)
	if err != nil {
		t.Fatal(err)
	}
	return pos, vel
}

func TestTimeAtPosition(t *testing.T) {
	pos, _ := queryTrajectories(t)
	for target, exp := range map[float64]float64{-1: 0, 0: 0, 1: 1, 5: 2, 5.0001: 3, 10: 4, 12: 4} {
		got, ok := TimeAtPosition(pos, target)
		if !ok || got != exp {
			t.Fatalf("time at %f: got %f (%v), expected %f", target, got, ok, exp)
		}
	}
	if _, ok := TimeAtPosition(pos, 12.5); ok {
		t.Fatal("a target beyond every sample should not be reached")
	}
}

func TestVelocityAtPosition(t *testing.T) {
	pos, vel := queryTrajectories(t)
	s, ok := VelocityAtPosition(pos, vel, 9)
	if !ok || s.Vx != 4 || s.T != 3 {
		t.Fatalf("velocity at 9: %s (%v)", s, ok)
	}
	if _, ok := VelocityAtPosition(pos, vel, 13); ok {
		t.Fatal("a target beyond every sample should not be reached")
	}
	short, _ := NewVelocityTrajectory([]float64{0}, []float64{1}, nil)
	if _, ok := VelocityAtPosition(pos, short, 0); ok {
		t.Fatal("misaligned trajectories should not be queried")
	}
}

func TestAngleQueries(t *testing.T) {
	times := []float64{0, 0.5, 1, 1.5}
	angle, _ := NewAngleTrajectory(times, []float64{0, 3, 2 * math.Pi, 7})
	vel, _ := NewAngularVelocityTrajectory(times, []float64{12, 10, 11, 13})
	if tt, ok := TimeAtAngle(angle, 2*math.Pi); !ok || tt != 1 {
		t.Fatalf("time at 2π: %f (%v)", tt, ok)
	}
	if v, ok := VelocityAtAngle(angle, vel, 2*math.Pi); !ok || v != 11 {
		t.Fatalf("velocity at 2π: %f (%v)", v, ok)
	}
	if _, ok := TimeAtAngle(angle, 8); ok {
		t.Fatal("angle 8 should not be reached")
	}
	if _, ok := VelocityAtAngle(angle, vel, 8); ok {
		t.Fatal("angle 8 should not be reached")
	}
}

func TestFirstBelow(t *testing.T) {
	path, _ := NewPathTrajectory([]float64{0, 1, 2, 3, 4}, []float64{0, -0.5, -1, -1.2, -3})
	if i, ok := FirstBelow(path, -1); !ok || i != 3 {
		t.Fatalf("first below -1: %d (%v)", i, ok)
	}
	if _, ok := FirstBelow(path, -5); ok {
		t.Fatal("path never goes below -5")
	}
}
