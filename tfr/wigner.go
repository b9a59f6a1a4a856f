package tfr

import (
	"gonum.org/v1/gonum/mat"

	"github.com/RyanBlaney/sonido-tftb/algorithms/common"
	"github.com/RyanBlaney/sonido-tftb/algorithms/windowing"
	"github.com/RyanBlaney/sonido-tftb/logging"
)

// wignerKernel covers the plain, cross and pseudo Wigner-Ville
// distributions: h == nil is the rectangular lag window over the full
// clipped span, plus the Nyquist lag for even nfft.
type wignerKernel struct {
	x, y []complex128
	nfft int
	h    *windowing.Window
}

func (k *wignerKernel) lags(p *lagProduct, t int) {
	n := len(k.x)
	span := windowSpan(t, n, k.nfft, k.h)
	p.weights = lagWindow(p.weights, k.h, span)
	bilinear(p, k.x, k.y, t, span, p.weights)
	if k.h == nil {
		nyquistTerm(p, k.x, k.y, t, k.nfft)
	}
}

// smoothedKernel is the smoothed pseudo Wigner-Ville kernel: lag window h
// and time-smoothing window g. Time smoothing lets the span exceed the
// plain edge clip by the half length of g.
type smoothedKernel struct {
	x, y []complex128
	nfft int
	g, h *windowing.Window
}

func (k *smoothedKernel) lags(p *lagProduct, t int) {
	n := len(k.x)
	lg := k.g.Half()
	span := min(t+lg, n-1-t+lg, lagCap(k.nfft), k.h.Half())
	smoothedBilinear(p, k.x, k.y, t, max(span, 0), k.h, k.g)
}

// Compute returns the Wigner-Ville distribution of an analytic signal as an
// nfft × len(times) complex matrix. A nil times evaluates every sample.
func Compute(signal []complex128, times []int, nfft int) (*mat.CDense, error) {
	r, err := NewEngine().WignerVille(signal, times, nfft)
	if err != nil {
		return nil, err
	}
	return r.TFR, nil
}

// WignerVille computes W[k, j] = Σ_τ x[t+τ]·conj(x[t-τ])·exp(-2πi·kτ/nfft)
// at t = times[j], with τ clipped so both indices stay inside the signal.
func (e *Engine) WignerVille(x []complex128, times []int, nfft int) (*Result, error) {
	ts, err := e.validate(KindWignerVille, x, times, nfft)
	if err != nil {
		return nil, err
	}
	return e.compute(KindWignerVille, &wignerKernel{x: x, y: x, nfft: nfft}, ts, nfft, nil), nil
}

// CrossWignerVille computes the cross distribution of x and y, which must
// have the same length. CrossWignerVille(x, x, ...) equals WignerVille.
func (e *Engine) CrossWignerVille(x, y []complex128, times []int, nfft int) (*Result, error) {
	if len(y) != len(x) {
		err := common.SignalError("y", len(y), "must have the same length as x")
		e.logger.Error(err, "Invalid input", logging.Fields{"kind": KindCrossWignerVille})
		return nil, err
	}
	ts, err := e.validate(KindCrossWignerVille, x, times, nfft)
	if err != nil {
		return nil, err
	}
	return e.compute(KindCrossWignerVille, &wignerKernel{x: x, y: y, nfft: nfft}, ts, nfft, nil), nil
}

// PseudoWignerVille weights the lag product by the odd-length lag window h
// (rescaled to a unit centre). h must fit the lag budget
// min((len(x)-1)/2, (nfft-1)/2); near the edges it is clipped to the
// instant's span.
func (e *Engine) PseudoWignerVille(x []complex128, times []int, nfft int, h *windowing.Window) (*Result, error) {
	ts, err := e.validate(KindPseudoWignerVille, x, times, nfft)
	if err != nil {
		return nil, err
	}
	hn, err := prepareLagWindow(h, len(x), nfft)
	if err != nil {
		e.logger.Error(err, "Invalid lag window", logging.Fields{"kind": KindPseudoWignerVille})
		return nil, err
	}
	return e.compute(KindPseudoWignerVille, &wignerKernel{x: x, y: x, nfft: nfft, h: hn}, ts, nfft, nil), nil
}

// SmoothedPseudoWignerVille smooths the pseudo Wigner-Ville distribution in
// time with the odd-length window g, normalised to unit sum over the
// samples available at each instant and lag.
func (e *Engine) SmoothedPseudoWignerVille(x []complex128, times []int, nfft int, g, h *windowing.Window) (*Result, error) {
	ts, err := e.validate(KindSmoothedPseudoWignerVille, x, times, nfft)
	if err != nil {
		return nil, err
	}
	if err := checkTimeWindow(g, len(x)); err != nil {
		e.logger.Error(err, "Invalid time window", logging.Fields{"kind": KindSmoothedPseudoWignerVille})
		return nil, err
	}
	hn, err := prepareLagWindow(h, len(x), nfft)
	if err != nil {
		e.logger.Error(err, "Invalid lag window", logging.Fields{"kind": KindSmoothedPseudoWignerVille})
		return nil, err
	}
	k := &smoothedKernel{x: x, y: x, nfft: nfft, g: g, h: hn}
	return e.compute(KindSmoothedPseudoWignerVille, k, ts, nfft, nil), nil
}

func (e *Engine) validate(kind Kind, x []complex128, times []int, nfft int) ([]int, error) {
	ts, err := validateInput(x, times, nfft)
	if err != nil {
		e.logger.Error(err, "Invalid input", logging.Fields{"kind": kind, "samples": len(x)})
		return nil, err
	}
	return ts, nil
}
