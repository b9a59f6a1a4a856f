package tfr

import (
	"fmt"

	"github.com/RyanBlaney/sonido-tftb/algorithms/common"
	"github.com/RyanBlaney/sonido-tftb/algorithms/windowing"
	"github.com/RyanBlaney/sonido-tftb/logging"
)

// spectrogramKernel windows the signal around t; the projection of that
// segment is the short-time Fourier transform at t.
type spectrogramKernel struct {
	x    []complex128
	nfft int
	h    *windowing.Window
}

func (k *spectrogramKernel) lags(p *lagProduct, t int) {
	windowedSegment(p, k.x, t, min(lagCap(k.nfft), k.h.Half()), k.h)
}

// Spectrogram computes |STFT|² of x with the odd-length analysis window h,
// normalised to unit energy over the samples available at each instant.
// Rows follow DFT order (see FrequencyAxis); the values are real and stored
// with zero imaginary part.
func (e *Engine) Spectrogram(x []complex128, times []int, nfft int, h *windowing.Window) (*Result, error) {
	ts, err := e.validate(KindSpectrogram, x, times, nfft)
	if err != nil {
		return nil, err
	}
	if err := checkSpectrogramWindow(h, nfft); err != nil {
		e.logger.Error(err, "Invalid analysis window", logging.Fields{"kind": KindSpectrogram})
		return nil, err
	}

	power := func(v complex128) complex128 {
		return complex(common.Abs2(v), 0)
	}
	return e.compute(KindSpectrogram, &spectrogramKernel{x: x, nfft: nfft, h: h}, ts, nfft, power), nil
}

func checkSpectrogramWindow(h *windowing.Window, nfft int) error {
	if err := checkOddWindow("analysis window", h); err != nil {
		return err
	}
	if h.Half() > lagCap(nfft) {
		return common.WindowError("analysis window length", h.Len(),
			fmt.Sprintf("must be at most %d for nfft=%d", 2*lagCap(nfft)+1, nfft))
	}
	return nil
}
