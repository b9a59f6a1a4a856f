// Package generators produces canonical analytic test signals for
// time-frequency analysis: constant-frequency carriers, keyed modulations,
// impulses, steps and Lipschitz singularities.
//
// Deterministic shapes are package-level functions. Keyed modulations draw
// symbols from a caller-supplied random source through a Generator, so a
// fixed seed reproduces the same signal.
package generators

import (
	"math"
	"math/cmplx"

	"github.com/RyanBlaney/sonido-tftb/algorithms/common"
)

// FMConst returns the unit-amplitude complex exponential of normalised
// frequency fnorm, with zero phase at sample t0, and its instantaneous
// frequency law (constant fnorm).
func FMConst(n int, fnorm float64, t0 int) ([]complex128, []float64, error) {
	if err := validateLength(n); err != nil {
		return nil, nil, err
	}
	if math.Abs(fnorm) > 0.5 || math.IsNaN(fnorm) {
		return nil, nil, common.ParamError("fnorm", fnorm, "must be in [-0.5, 0.5]")
	}
	if t0 < 0 || t0 >= n {
		return nil, nil, common.ParamError("t0", t0, "must be in [0, n-1]")
	}

	y := make([]complex128, n)
	iflaw := make([]float64, n)
	for i := range y {
		y[i] = cmplx.Exp(complex(0, 2*math.Pi*fnorm*float64(i-t0)))
		iflaw[i] = fnorm
	}
	return y, iflaw, nil
}

func validateLength(n int) error {
	if n <= 0 {
		return common.ParamError("n", n, "must be > 0")
	}
	return nil
}

func validateCarrier(f0 float64) error {
	if f0 < 0 || f0 > 0.5 || math.IsNaN(f0) {
		return common.ParamError("f0", f0, "must be in [0, 0.5]")
	}
	return nil
}

// repeat holds each value for nComp samples and truncates to n samples.
func repeat(values []float64, nComp, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = values[i/nComp]
	}
	return out
}

// componentCount is the number of symbols needed to cover n samples.
func componentCount(n, nComp int) int {
	return (n + nComp - 1) / nComp
}

// resolveComponent applies the toolbox default of round(n/divisor) when
// nComp is zero.
func resolveComponent(n, nComp, divisor int) (int, error) {
	if nComp < 0 {
		return 0, common.ParamError("nComp", nComp, "must be >= 0")
	}
	if nComp == 0 {
		nComp = max(1, int(math.Round(float64(n)/float64(divisor))))
	}
	return nComp, nil
}
