package tfr

import (
	"math"
	"math/cmplx"

	"github.com/RyanBlaney/sonido-tftb/algorithms/windowing"
)

// lagProduct is the centred lag buffer of one time instant:
// values[half+τ] holds the product at lag τ for τ in [-half, half].
type lagProduct struct {
	values  []complex128
	weights []float64
	half    int

	// nyquist is the symmetrised product at τ = nfft/2, present only when
	// that lag fits inside the signal and nfft is even.
	nyquist    complex128
	hasNyquist bool
}

func (p *lagProduct) reset(half int) {
	n := 2*half + 1
	if cap(p.values) < n {
		p.values = make([]complex128, n)
	}
	p.values = p.values[:n]
	clear(p.values)
	p.half = half
	p.nyquist = 0
	p.hasNyquist = false
}

// bilinear fills p with w[span+τ]·x[t+τ]·conj(y[t-τ]) for |τ| <= span.
// The span is clamped again so no index leaves [0, len(x)-1].
func bilinear(p *lagProduct, x, y []complex128, t, span int, w []float64) {
	span = min(span, t, len(x)-1-t)
	p.reset(span)
	for tau := -span; tau <= span; tau++ {
		p.values[span+tau] = complex(w[len(w)/2+tau], 0) * x[t+tau] * cmplx.Conj(y[t-tau])
	}
}

// nyquistTerm adds the half-buffer lag of an even nfft when both t±nfft/2
// are inside the signal. Averaging the two orderings keeps the auto
// distribution real.
func nyquistTerm(p *lagProduct, x, y []complex128, t, nfft int) {
	if nfft%2 != 0 {
		return
	}
	m := nfft / 2
	if t-m < 0 || t+m > len(x)-1 {
		return
	}
	p.nyquist = 0.5 * (x[t+m]*cmplx.Conj(y[t-m]) + x[t-m]*cmplx.Conj(y[t+m]))
	p.hasNyquist = true
}

// smoothedBilinear fills p with h(τ)·R(t, τ), where R is the lag product
// averaged over time with g: Σ g[q]·x[t+τ-q]·conj(y[t-τ-q]) / Σ g[q], the
// sums running over the q that keep both indices inside the signal.
func smoothedBilinear(p *lagProduct, x, y []complex128, t, span int, h, g *windowing.Window) {
	n := len(x)
	lg := g.Half()
	p.reset(span)
	for tau := -span; tau <= span; tau++ {
		a := max(tau, -tau)
		qlo := max(-lg, t+a-(n-1))
		qhi := min(lg, t-a)

		var acc complex128
		norm := 0.0
		for q := qlo; q <= qhi; q++ {
			gq := g.At(q)
			acc += complex(gq, 0) * x[t+tau-q] * cmplx.Conj(y[t-tau-q])
			norm += gq
		}
		if norm == 0 {
			continue
		}
		p.values[span+tau] = complex(h.At(tau)/norm, 0) * acc
	}
}

// windowedSegment fills p with x[t+τ]·conj(h(τ))/‖h‖ for the lags that keep
// t+τ inside the signal, as the short-time Fourier transform needs. The
// range may be asymmetric near the edges; the missing side stays zero.
func windowedSegment(p *lagProduct, x []complex128, t, limit int, h *windowing.Window) {
	n := len(x)
	lo := min(limit, t)
	hi := min(limit, n-1-t)
	p.reset(max(lo, hi))

	energy := 0.0
	for tau := -lo; tau <= hi; tau++ {
		w := h.At(tau)
		energy += w * w
	}
	if energy == 0 {
		return
	}
	norm := 1 / math.Sqrt(energy)
	for tau := -lo; tau <= hi; tau++ {
		p.values[p.half+tau] = x[t+tau] * complex(h.At(tau)*norm, 0)
	}
}
