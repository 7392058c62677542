package lapsim

import (
	"math"
	"testing"
)

func TestAngles(t *testing.T) {
	for deg, rad := range map[float64]float64{0: 0, 90: math.Pi / 2, 180: math.Pi, -45: -math.Pi / 4, 360: 2 * math.Pi} {
		if math.Abs(Deg2rad(deg)-rad) > testε {
			t.Fatalf("Deg2rad(%f)=%f != %f", deg, Deg2rad(deg), rad)
		}
		if math.Abs(Rad2deg(rad)-deg) > testε {
			t.Fatalf("Rad2deg(%f)=%f != %f", rad, Rad2deg(rad), deg)
		}
	}
}

func TestNorm(t *testing.T) {
	if norm(3, -4) != 5 {
		t.Fatal("invalid norm")
	}
	if norm(0, 0) != 0 {
		t.Fatal("invalid null norm")
	}
}

func TestFinite(t *testing.T) {
	if !finite([]float64{0, -1, 1e300}) {
		t.Fatal("finite values reported as non finite")
	}
	if !finite(nil) {
		t.Fatal("empty slice should be finite")
	}
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if finite([]float64{1, bad}) {
			t.Fatalf("%f reported as finite", bad)
		}
	}
}
