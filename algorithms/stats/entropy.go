package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/RyanBlaney/sonido-tftb/algorithms/common"
)

// DefaultRenyiOrder is the order used for time-frequency information
// measures; odd integer orders stay real on distributions with negative
// interference terms.
const DefaultRenyiOrder = 3.0

// RenyiInformation returns the order-alpha Rényi information, in bits, of a
// distribution given as a flat slice of its cells (for a time-frequency
// representation, every time-frequency cell). The values are first
// normalised to unit sum; alpha == 1 gives the Shannon entropy. Signed
// densities, such as Wigner-Ville distributions, need an integer alpha.
func RenyiInformation(values []float64, alpha float64) (float64, error) {
	if len(values) == 0 {
		return 0, common.SignalError("values", 0, "must not be empty")
	}
	if alpha <= 0 || math.IsNaN(alpha) {
		return 0, common.ParamError("alpha", alpha, "must be > 0")
	}

	total := floats.Sum(values)
	if total <= 0 {
		return 0, common.SignalError("values", total, "must have a positive sum")
	}

	probabilities := make([]float64, len(values))
	floats.ScaleTo(probabilities, 1/total, values)

	// p^alpha has no real value for p < 0 unless alpha is an integer
	if alpha != math.Trunc(alpha) && floats.Min(probabilities) < 0 {
		return 0, common.ParamError("alpha", alpha, "must be an integer for a density with negative cells")
	}

	if alpha == 1 {
		return shannonEntropy(probabilities), nil
	}
	r := renyiEntropy(probabilities, alpha)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, common.SignalError("values", alpha, "interference cells dominate: the order-alpha sum is not positive")
	}
	return r, nil
}

// shannonEntropy computes -Σ p·log2(p) over the strictly positive cells.
func shannonEntropy(probabilities []float64) float64 {
	entropy := 0.0
	for _, p := range probabilities {
		if p > 0 {
			entropy -= p * math.Log2(p)
		}
	}
	return entropy
}

// renyiEntropy computes log2(Σ p^α) / (1-α).
func renyiEntropy(probabilities []float64, alpha float64) float64 {
	sum := 0.0
	for _, p := range probabilities {
		if p != 0 {
			sum += math.Pow(p, alpha)
		}
	}
	return math.Log2(sum) / (1 - alpha)
}
