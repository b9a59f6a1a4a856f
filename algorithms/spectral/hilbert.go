package spectral

import (
	"github.com/RyanBlaney/sonido-tftb/algorithms/common"
)

// Analytic returns the discrete analytic signal of x: the spectrum of x with
// negative-frequency bins removed and positive bins doubled. DC and, for an
// even length, the Nyquist bin are kept with unit weight, so real(y) == x.
func Analytic(x []float64) ([]complex128, error) {
	if len(x) == 0 {
		return nil, common.SignalError("signal", 0, "must not be empty")
	}

	f := NewFFT()
	spectrum := f.Compute(x)
	n := len(spectrum)

	half := (n + 1) / 2
	for k := 1; k < half; k++ {
		spectrum[k] *= 2
	}
	if n%2 == 0 {
		// Nyquist bin n/2 keeps unit weight
		half = n/2 + 1
	}
	for k := half; k < n; k++ {
		spectrum[k] = 0
	}

	return f.ComputeInverse(spectrum), nil
}

// HilbertTransform returns imag(Analytic(x)), the quadrature component.
func HilbertTransform(x []float64) ([]float64, error) {
	y, err := Analytic(x)
	if err != nil {
		return nil, err
	}
	return common.ImagPart(y), nil
}
