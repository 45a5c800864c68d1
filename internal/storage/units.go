package storage

import "math"

// Per-unit mass conversion factors. Anything not listed falls back to
// defaultKgPerUnit.
var kgPerUnit = map[Unit]float64{
	UnitKg:       1.0,
	UnitServings: 0.3, // ~300g per serving
	UnitLiters:   1.0, // ~1kg per liter
	UnitPieces:   0.2, // ~200g per piece
}

const defaultKgPerUnit = 0.5

// EstimateKg converts a quantity to its estimated mass in kilograms.
func EstimateKg(q Quantity) float64 {
	factor, ok := kgPerUnit[q.Unit]
	if !ok {
		factor = defaultKgPerUnit
	}
	return q.Value * factor
}

// CompletionPoints is the donor reward for a completed listing.
func CompletionPoints(estimatedKg float64) int {
	return int(math.Ceil(estimatedKg * 10))
}
