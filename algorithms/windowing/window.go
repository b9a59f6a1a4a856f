package windowing

import (
	"fmt"
	"slices"

	dspwindow "github.com/mjibson/go-dsp/window"
	gonumwindow "gonum.org/v1/gonum/dsp/window"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/RyanBlaney/sonido-tftb/algorithms/common"
)

// Type names a window shape.
type Type string

const (
	TypeRectangular Type = "rectangular"
	TypeHamming     Type = "hamming"
	TypeHann        Type = "hann"
	TypeBartlett    Type = "bartlett"
	TypeBlackman    Type = "blackman"
	TypeFlatTop     Type = "flattop"
	TypeGauss       Type = "gauss"
	TypeTukey       Type = "tukey"
	TypeKaiser      Type = "kaiser"
)

// Types lists every supported shape.
func Types() []Type {
	return []Type{
		TypeRectangular, TypeHamming, TypeHann, TypeBartlett, TypeBlackman,
		TypeFlatTop, TypeGauss, TypeTukey, TypeKaiser,
	}
}

// Params holds the shape parameters of the parametric windows.
// Zero values select the defaults.
type Params struct {
	Beta  float64 `json:"beta" mapstructure:"beta" yaml:"beta"`    // Kaiser
	Sigma float64 `json:"sigma" mapstructure:"sigma" yaml:"sigma"` // Gauss, relative to the half length
	Alpha float64 `json:"alpha" mapstructure:"alpha" yaml:"alpha"` // Tukey taper fraction in [0, 1]
}

const (
	DefaultKaiserBeta = 8.6
	DefaultGaussSigma = 0.4
	DefaultTukeyAlpha = 0.5
)

// Window is an odd-length window that is symmetric about its centre sample.
type Window struct {
	Type         Type      `json:"type"`
	Coefficients []float64 `json:"coefficients"`
}

// New builds a window of the given shape. length must be odd and positive
// so the window has a well-defined centre (zero lag).
func New(typ Type, length int, params Params) (*Window, error) {
	if length <= 0 {
		return nil, common.WindowError("length", length, "must be > 0")
	}
	if length%2 == 0 {
		return nil, common.WindowError("length", length, "must be odd")
	}

	coeffs, err := generate(typ, length, params)
	if err != nil {
		return nil, err
	}

	return &Window{Type: typ, Coefficients: coeffs}, nil
}

// FromCoefficients wraps caller-supplied weights after checking length and symmetry.
func FromCoefficients(coeffs []float64) (*Window, error) {
	n := len(coeffs)
	if n == 0 || n%2 == 0 {
		return nil, common.WindowError("length", n, "must be odd and > 0")
	}
	for i := range n / 2 {
		if !scalar.EqualWithinAbsOrRel(coeffs[i], coeffs[n-1-i], 1e-12, 1e-12) {
			return nil, common.WindowError("coefficients", i, "must be symmetric about the centre")
		}
	}
	return &Window{Type: "custom", Coefficients: slices.Clone(coeffs)}, nil
}

func generate(typ Type, length int, params Params) ([]float64, error) {
	if length == 1 {
		// every shape degenerates to its centre sample; the closed forms divide by length-1
		return []float64{1}, nil
	}

	switch typ {
	case TypeRectangular:
		return dspwindow.Rectangular(length), nil
	case TypeHamming:
		return dspwindow.Hamming(length), nil
	case TypeHann:
		return dspwindow.Hann(length), nil
	case TypeBartlett:
		return dspwindow.Bartlett(length), nil
	case TypeBlackman:
		return dspwindow.Blackman(length), nil
	case TypeFlatTop:
		return dspwindow.FlatTop(length), nil
	case TypeGauss:
		sigma := params.Sigma
		if sigma == 0 {
			sigma = DefaultGaussSigma
		}
		if sigma < 0 {
			return nil, common.WindowError("sigma", sigma, "must be > 0")
		}
		return gonumwindow.Gaussian{Sigma: sigma}.Transform(ones(length)), nil
	case TypeTukey:
		alpha := params.Alpha
		if alpha == 0 {
			alpha = DefaultTukeyAlpha
		}
		if alpha < 0 || alpha > 1 {
			return nil, common.WindowError("alpha", alpha, "must be in [0, 1]")
		}
		return gonumwindow.Tukey{Alpha: alpha}.Transform(ones(length)), nil
	case TypeKaiser:
		beta := params.Beta
		if beta == 0 {
			beta = DefaultKaiserBeta
		}
		if beta < 0 {
			return nil, common.WindowError("beta", beta, "must be >= 0")
		}
		return kaiser(length, beta), nil
	default:
		return nil, common.WindowError("type", typ, fmt.Sprintf("is not one of %v", Types()))
	}
}

func ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

// Len returns the number of coefficients.
func (w *Window) Len() int {
	return len(w.Coefficients)
}

// Half returns the largest lag the window covers, (Len()-1)/2.
func (w *Window) Half() int {
	return (len(w.Coefficients) - 1) / 2
}

// Center returns the zero-lag coefficient.
func (w *Window) Center() float64 {
	return w.Coefficients[w.Half()]
}

// At returns the coefficient at a signed offset from the centre.
// Offsets beyond Half() return 0.
func (w *Window) At(offset int) float64 {
	i := w.Half() + offset
	if i < 0 || i >= len(w.Coefficients) {
		return 0
	}
	return w.Coefficients[i]
}

// Sum returns the sum of the coefficients.
func (w *Window) Sum() float64 {
	return floats.Sum(w.Coefficients)
}

// Normalized returns a copy scaled so the centre coefficient is 1.
func (w *Window) Normalized() (*Window, error) {
	c := w.Center()
	if c == 0 {
		return nil, common.WindowError("center", c, "must be non-zero")
	}
	coeffs := slices.Clone(w.Coefficients)
	floats.Scale(1/c, coeffs)
	return &Window{Type: w.Type, Coefficients: coeffs}, nil
}

// Apply multiplies signal by the window into a new slice.
func (w *Window) Apply(signal []float64) ([]float64, error) {
	if len(signal) != len(w.Coefficients) {
		return nil, fmt.Errorf("signal length (%d) doesn't match window size (%d)", len(signal), len(w.Coefficients))
	}
	out := make([]float64, len(signal))
	floats.MulTo(out, signal, w.Coefficients)
	return out, nil
}
