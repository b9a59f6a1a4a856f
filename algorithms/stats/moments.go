package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/RyanBlaney/sonido-tftb/algorithms/common"
)

// MomentResult holds the first two moments of a density over an axis.
type MomentResult struct {
	Mean     float64 `json:"mean"`     // Σ w·a / Σ w
	Variance float64 `json:"variance"` // Σ w·(a-mean)² / Σ w
	StdDev   float64 `json:"std_dev"`  // sqrt of Variance, 0 when it is negative
	Mass     float64 `json:"mass"`     // Σ w
}

// WeightedMoments returns the mean and spread of axis under weights.
// Weights may be signed, as the real part of a Wigner-Ville column is,
// but must have a positive sum. A signed density can yield a negative
// variance; it is reported as is.
func WeightedMoments(axis, weights []float64) (MomentResult, error) {
	if len(axis) == 0 {
		return MomentResult{}, common.SignalError("axis", 0, "must not be empty")
	}
	if len(weights) != len(axis) {
		return MomentResult{}, common.SignalError("weights", len(weights), "must match the axis length")
	}

	mass := floats.Sum(weights)
	if !(mass > 0) {
		return MomentResult{}, common.SignalError("weights", mass, "must have a positive sum")
	}

	mean, variance := stat.PopMeanVariance(axis, weights)
	return MomentResult{
		Mean:     mean,
		Variance: variance,
		StdDev:   math.Sqrt(max(variance, 0)),
		Mass:     mass,
	}, nil
}
