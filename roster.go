package lapsim

import (
	"fmt"
	"strings"
)

// Roster is the fixed set of candidate vehicles.
var Roster = []VehicleSpec{
	{Name: "Dodge Charger", Mass: 1760, Acceleration: 5.1, Height: 1.35, Length: 5.28, Width: 1.95, Cx: 0.38, Cz: 0.3, Mu: 0.1},
	{Name: "Toyota Supra", Mass: 1615, Acceleration: 12, Height: 1.27, Length: 4.51, Width: 1.81, Cx: 0.29, Cz: 0.3, Mu: 0.1},
	{Name: "Chevrolet Impala", Mass: 1498, Acceleration: 5.3, Height: 1.41, Length: 5.37, Width: 1.91, Cx: 0.28, Cz: 0.3, Mu: 0.1},
	{Name: "Lamborghini Diablo", Mass: 1576, Acceleration: 13.1, Height: 1.11, Length: 4.46, Width: 2.04, Cx: 0.31, Cz: 0.3, Mu: 0.1},
	{Name: "Alfa Romeo Giulia", Mass: 1580, Acceleration: 6.2, Height: 1.44, Length: 4.63, Width: 1.87, Cx: 0.35, Cz: 0.3, Mu: 0.1},
	{Name: "Nissan Skyline", Mass: 1600, Acceleration: 8.2, Height: 1.36, Length: 4.6, Width: 1.79, Cx: 0.34, Cz: 0.3, Mu: 0.1},
}

// VehicleSpecFromString returns the roster entry matching the provided name (case insensitive).
func VehicleSpecFromString(name string) (VehicleSpec, error) {
	for _, spec := range Roster {
		if strings.EqualFold(spec.Name, strings.TrimSpace(name)) {
			return spec, nil
		}
	}
	return VehicleSpec{}, fmt.Errorf("unknown vehicle `%s`", name)
}
