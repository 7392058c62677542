package lapsim

import "math"

const (
	// Gravity is the standard gravitational acceleration in m/s².
	Gravity = 9.81
	// AirDensity is the density of air at sea level in kg/m³.
	AirDensity = 1.225
	deg2rad    = math.Pi / 180
)

// Deg2rad converts degrees to radians.
func Deg2rad(a float64) float64 {
	return a * deg2rad
}

// Rad2deg converts radians to degrees.
func Rad2deg(a float64) float64 {
	return a / deg2rad
}

// norm returns the norm of a planar vector.
func norm(x, y float64) float64 {
	return math.Hypot(x, y)
}

// finite returns whether all the values are neither NaN nor infinite.
func finite(s []float64) bool {
	for _, val := range s {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return false
		}
	}
	return true
}
