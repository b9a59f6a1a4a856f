package tfr

import (
	"github.com/RyanBlaney/sonido-tftb/algorithms/spectral"
)

// projector turns a centred lag buffer into an NFFT-bin spectrum.
// It owns its FFT plan and buffers; use one per goroutine.
type projector struct {
	plan *spectral.Plan
	buf  []complex128
	out  []complex128
}

func newProjector(nfft int) *projector {
	return &projector{
		plan: spectral.NewPlan(nfft),
		buf:  make([]complex128, nfft),
		out:  make([]complex128, nfft),
	}
}

// project zero-pads the lag buffer to NFFT, rotates it so lag τ sits at
// index τ mod NFFT (lag 0 at index 0), and applies the forward DFT.
// The returned slice is reused by the next call.
func (p *projector) project(lp *lagProduct) []complex128 {
	nfft := len(p.buf)
	clear(p.buf)
	for tau := -lp.half; tau <= lp.half; tau++ {
		p.buf[(tau+nfft)%nfft] = lp.values[lp.half+tau]
	}
	if lp.hasNyquist {
		p.buf[nfft/2] = lp.nyquist
	}
	return p.plan.Forward(p.out, p.buf)
}
