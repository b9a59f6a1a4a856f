package tfr

import (
	"fmt"

	"github.com/RyanBlaney/sonido-tftb/algorithms/common"
	"github.com/RyanBlaney/sonido-tftb/algorithms/windowing"
)

// lagCap is the largest |τ| whose +τ and -τ land on distinct bins of an
// nfft-long buffer.
func lagCap(nfft int) int {
	return (nfft - 1) / 2
}

// lagBudget is the largest |τ| any instant of an n-sample signal can use.
func lagBudget(n, nfft int) int {
	return min((n-1)/2, lagCap(nfft))
}

// lagSpan is the usable lag span at instant t: it shrinks symmetrically
// towards both edges so neither t+τ nor t-τ leaves [0, n-1].
func lagSpan(t, n, nfft int) int {
	span := min(t, n-1-t, lagCap(nfft))
	return max(span, 0)
}

// windowSpan clips the instant's lag span to the lag window's support.
func windowSpan(t, n, nfft int, h *windowing.Window) int {
	span := lagSpan(t, n, nfft)
	if h != nil {
		span = min(span, h.Half())
	}
	return span
}

// lagWindow writes the weights for lags -span..span into dst, growing it as
// needed. A nil window is rectangular (plain Wigner-Ville).
func lagWindow(dst []float64, h *windowing.Window, span int) []float64 {
	n := 2*span + 1
	if cap(dst) < n {
		dst = make([]float64, n)
	}
	dst = dst[:n]
	for tau := -span; tau <= span; tau++ {
		if h == nil {
			dst[span+tau] = 1
		} else {
			dst[span+tau] = h.At(tau)
		}
	}
	return dst
}

// prepareLagWindow checks h against the lag budget of an n-sample signal
// projected on nfft bins and returns it rescaled to a unit centre.
func prepareLagWindow(h *windowing.Window, n, nfft int) (*windowing.Window, error) {
	if err := checkOddWindow("lag window", h); err != nil {
		return nil, err
	}

	budget := lagBudget(n, nfft)
	if h.Half() > budget {
		return nil, common.WindowError("lag window length", h.Len(),
			fmt.Sprintf("exceeds the lag budget: at most %d for %d samples and nfft=%d", 2*budget+1, n, nfft))
	}

	return h.Normalized()
}

// checkTimeWindow accepts any odd window that does not reach past the signal.
func checkTimeWindow(g *windowing.Window, n int) error {
	if err := checkOddWindow("time window", g); err != nil {
		return err
	}
	if g.Half() > n-1 {
		return common.WindowError("time window length", g.Len(),
			fmt.Sprintf("must be at most %d for %d samples", 2*n-1, n))
	}
	return nil
}

func checkOddWindow(name string, w *windowing.Window) error {
	if w == nil || w.Len() == 0 {
		return common.WindowError(name, nil, "must not be empty")
	}
	if w.Len()%2 == 0 {
		return common.WindowError(name+" length", w.Len(), "must be odd")
	}
	return nil
}
