package services

import "math"

// roundCoordinate snaps a coordinate to two decimals, roughly one kilometre.
func roundCoordinate(v float64) float64 {
	return math.Round(v*100) / 100
}
