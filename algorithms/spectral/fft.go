package spectral

import (
	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// FFT provides Fast Fourier Transform functionality backed by mjibson/go-dsp.
// It is stateless and safe for concurrent use.
type FFT struct{}

// NewFFT creates a new FFT calculator
func NewFFT() *FFT {
	return &FFT{}
}

// Compute computes the forward transform of a real sequence.
func (f *FFT) Compute(x []float64) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}

	// go-dsp handles non-power-of-2 sizes through Bluestein
	return fft.FFTReal(x)
}

// ComputeComplex computes the forward transform of a complex sequence.
func (f *FFT) ComputeComplex(x []complex128) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}

	return fft.FFT(x)
}

// ComputeInverse computes the inverse FFT, scaled by 1/len(x).
func (f *FFT) ComputeInverse(x []complex128) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}

	return fft.IFFT(x)
}

// ComputeInverseReal computes inverse FFT and returns real part only
func (f *FFT) ComputeInverseReal(x []complex128) []float64 {
	if len(x) == 0 {
		return []float64{}
	}

	result := fft.IFFT(x)
	realResult := make([]float64, len(result))

	for i, val := range result {
		realResult[i] = real(val)
	}

	return realResult
}

// Plan is a fixed-length complex DFT with reusable work buffers.
// A Plan is not safe for concurrent use; give each goroutine its own.
type Plan struct {
	fft *fourier.CmplxFFT
	n   int
}

// NewPlan prepares a length-n forward transform.
func NewPlan(n int) *Plan {
	return &Plan{fft: fourier.NewCmplxFFT(n), n: n}
}

// Len returns the transform length.
func (p *Plan) Len() int {
	return p.n
}

// Forward writes X[k] = Σ x[n]·exp(-2πi·kn/N) into dst and returns it.
// len(seq) must equal Len(); dst is allocated when nil.
func (p *Plan) Forward(dst, seq []complex128) []complex128 {
	return p.fft.Coefficients(dst, seq)
}
