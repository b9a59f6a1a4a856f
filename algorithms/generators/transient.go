package generators

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"

	"github.com/RyanBlaney/sonido-tftb/algorithms/common"
	"github.com/RyanBlaney/sonido-tftb/algorithms/spectral"
)

// Pulse returns the analytic projection of a unit impulse at sample ti.
func Pulse(n, ti int) ([]complex128, error) {
	if err := validateLength(n); err != nil {
		return nil, err
	}
	if ti < 0 || ti >= n {
		return nil, common.ParamError("ti", ti, "must be in [0, n-1]")
	}

	x := make([]float64, n)
	x[ti] = 1
	return spectral.Analytic(x)
}

// Step returns the analytic projection of a unit step that is 0 up to and
// including sample ti and 1 afterwards.
func Step(n, ti int) ([]complex128, error) {
	if err := validateLength(n); err != nil {
		return nil, err
	}
	if ti < 0 || ti >= n {
		return nil, common.ParamError("ti", ti, "must be in [0, n-1]")
	}

	x := make([]float64, n)
	for i := ti + 1; i < n; i++ {
		x[i] = 1
	}
	return spectral.Analytic(x)
}

// Singularity returns the analytic projection of an n-point Lipschitz
// singularity of strength h located at t0.
//
// For h > 0 the real signal is max|t-t0|^h - |t-t0|^h. For h <= 0 it is
// synthesised from the spectrum |f|^(-1-h)·exp(-2πi·f·t0) over the bins
// 0 < f < 1/2, then scaled to a peak of 1 and shifted to a minimum of 0.
func Singularity(n int, t0, h float64) ([]complex128, error) {
	if err := validateLength(n); err != nil {
		return nil, err
	}
	if t0 < 0 || t0 > float64(n-1) || math.IsNaN(t0) {
		return nil, common.ParamError("t0", t0, "must be in [0, n-1]")
	}
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return nil, common.ParamError("h", h, "must be finite")
	}

	var x []float64
	if h > 0 {
		x = make([]float64, n)
		for i := range x {
			x[i] = math.Pow(math.Abs(float64(i)-t0), h)
		}
		peak := floats.Max(x)
		for i := range x {
			x[i] = peak - x[i]
		}
	} else {
		if n < 4 {
			return nil, common.ParamError("n", n, "must be >= 4 when h <= 0")
		}
		spectrum := make([]complex128, n)
		for k := 1; k < n/2; k++ {
			f := float64(k) / float64(n)
			spectrum[k] = complex(math.Pow(f, -1-h), 0) * cmplx.Exp(complex(0, -2*math.Pi*f*t0))
		}
		x = spectral.NewFFT().ComputeInverseReal(spectrum)
		floats.Scale(1/floats.Max(x), x)
		floats.AddConst(-floats.Min(x), x)
	}

	return spectral.Analytic(x)
}
