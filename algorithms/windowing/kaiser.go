package windowing

import (
	"math"
)

// kaiser returns symmetric Kaiser coefficients w[i] = I0(β·√(1-a²)) / I0(β)
// with a running from -1 to 1 across the window.
func kaiser(size int, beta float64) []float64 {
	coefficients := make([]float64, size)
	denominator := float64(size - 1)

	i0Beta := besselI0(beta)

	for i := range size {
		arg := 2.0*float64(i)/denominator - 1.0
		coefficients[i] = besselI0(beta*math.Sqrt(1-arg*arg)) / i0Beta
	}

	return coefficients
}

// besselI0 computes the zero-order modified Bessel function of the first kind
// by power series; terms fall below 1e-12 long before 50 for |x| < 30.
func besselI0(x float64) float64 {
	sum := 1.0
	term := 1.0

	for i := 1; i < 50; i++ {
		term *= (x / (2.0 * float64(i))) * (x / (2.0 * float64(i)))
		sum += term

		if term < 1e-12*sum {
			break
		}
	}

	return sum
}
