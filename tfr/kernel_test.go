package tfr

import (
	"errors"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/sonido-tftb/algorithms/common"
	"github.com/RyanBlaney/sonido-tftb/algorithms/windowing"
)

func TestLagSpanClipsSymmetricallyAtEdges(t *testing.T) {
	cases := []struct {
		t, n, nfft, want int
	}{
		{0, 128, 128, 0},
		{127, 128, 128, 0},
		{1, 128, 128, 1},
		{126, 128, 128, 1},
		{64, 128, 128, 63},
		{63, 128, 128, 63},
		{64, 128, 16, 7},
		{64, 128, 15, 7},
		{5, 10, 64, 4},
		{0, 1, 1, 0},
		{3, 10, 2, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, lagSpan(c.t, c.n, c.nfft), "t=%d n=%d nfft=%d", c.t, c.n, c.nfft)
	}
}

func TestLagBudget(t *testing.T) {
	assert.Equal(t, 63, lagBudget(128, 128))
	assert.Equal(t, 4, lagBudget(10, 64))
	assert.Equal(t, 7, lagBudget(128, 16))
	assert.Equal(t, 0, lagBudget(1, 64))
}

func TestLagWindowRectangularAndClipped(t *testing.T) {
	w := lagWindow(nil, nil, 2)
	assert.Equal(t, []float64{1, 1, 1, 1, 1}, w)

	h, err := windowing.FromCoefficients([]float64{0.1, 0.5, 1, 0.5, 0.1})
	require.NoError(t, err)
	w = lagWindow(w, h, 1)
	assert.Equal(t, []float64{0.5, 1, 0.5}, w)
}

func TestPrepareLagWindow(t *testing.T) {
	h, err := windowing.FromCoefficients([]float64{1, 2, 1})
	require.NoError(t, err)
	hn, err := prepareLagWindow(h, 16, 16)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1, 0.5}, hn.Coefficients)

	long, err := windowing.New(windowing.TypeHamming, 17, windowing.Params{})
	require.NoError(t, err)
	_, err = prepareLagWindow(long, 16, 64)
	assert.True(t, errors.Is(err, common.ErrInvalidWindow), "signal budget")
	_, err = prepareLagWindow(long, 64, 16)
	assert.True(t, errors.Is(err, common.ErrInvalidWindow), "nfft budget")

	_, err = prepareLagWindow(nil, 16, 16)
	assert.True(t, errors.Is(err, common.ErrInvalidWindow))

	_, err = prepareLagWindow(&windowing.Window{Coefficients: []float64{1, 1}}, 16, 16)
	assert.True(t, errors.Is(err, common.ErrInvalidWindow))
}

func TestBilinearProduct(t *testing.T) {
	x := []complex128{1, 2i, 3, 4 - 1i, 5}
	var p lagProduct

	bilinear(&p, x, x, 2, 2, lagWindow(nil, nil, 2))
	require.Equal(t, 2, p.half)
	// values[half+τ] = x[t+τ]·conj(x[t-τ])
	assert.Equal(t, x[4]*cmplx.Conj(x[0]), p.values[4])
	assert.Equal(t, x[3]*cmplx.Conj(x[1]), p.values[3])
	assert.Equal(t, complex(9, 0), p.values[2])
	assert.Equal(t, x[1]*cmplx.Conj(x[3]), p.values[1])
	assert.Equal(t, cmplx.Conj(p.values[4]), p.values[0], "auto product is Hermitian in τ")

	// a span that would reach outside the signal is clamped, never wrapped
	bilinear(&p, x, x, 1, 2, lagWindow(nil, nil, 2))
	assert.Equal(t, 1, p.half)
	assert.Len(t, p.values, 3)
}

func TestNyquistTerm(t *testing.T) {
	x := []complex128{1, 1i, 2, 3, 1 - 1i}
	var p lagProduct
	p.reset(0)

	nyquistTerm(&p, x, x, 2, 4)
	require.True(t, p.hasNyquist)
	want := 0.5 * (x[4]*cmplx.Conj(x[0]) + x[0]*cmplx.Conj(x[4]))
	assert.Equal(t, want, p.nyquist)
	assert.Zero(t, imag(p.nyquist))

	p.reset(0)
	nyquistTerm(&p, x, x, 1, 4)
	assert.False(t, p.hasNyquist, "t-2 is outside the signal")

	p.reset(0)
	nyquistTerm(&p, x, x, 2, 5)
	assert.False(t, p.hasNyquist, "odd nfft has no Nyquist lag")
}

func TestProjectorRotatesLagZeroToIndexZero(t *testing.T) {
	const nfft = 8
	pr := newProjector(nfft)

	// a lone zero-lag sample projects to a flat spectrum
	p := lagProduct{values: []complex128{0, 0, 3, 0, 0}, half: 2}
	for _, v := range pr.project(&p) {
		assert.InDelta(t, 3, real(v), 1e-12)
		assert.InDelta(t, 0, imag(v), 1e-12)
	}

	// lag +1 alone gives exp(-2πik/nfft): any misalignment shows up as a
	// linear phase error across bins
	p = lagProduct{values: []complex128{0, 0, 0, 1, 0}, half: 2}
	out := pr.project(&p)
	for k, v := range out {
		want := cmplx.Exp(complex(0, -2*3.141592653589793*float64(k)/nfft))
		assert.InDelta(t, 0, cmplx.Abs(v-want), 1e-12, "bin %d", k)
	}

	// lag -1 lands on index nfft-1
	p = lagProduct{values: []complex128{0, 1, 0, 0, 0}, half: 2}
	out = pr.project(&p)
	for k, v := range out {
		want := cmplx.Exp(complex(0, 2*3.141592653589793*float64(k)/nfft))
		assert.InDelta(t, 0, cmplx.Abs(v-want), 1e-12, "bin %d", k)
	}
}

func TestProjectorNyquistBin(t *testing.T) {
	pr := newProjector(4)
	p := lagProduct{values: []complex128{0}, half: 0, nyquist: 2, hasNyquist: true}
	out := pr.project(&p)
	// buffer [0, 0, 2, 0] transforms to 2·(-1)^k
	assert.InDeltaSlice(t, []float64{2, -2, 2, -2}, common.RealPart(out), 1e-12)
}

func TestWorkerCount(t *testing.T) {
	e := NewEngine(WithWorkers(4))
	assert.Equal(t, 4, e.workerCount(100))
	assert.Equal(t, 2, e.workerCount(2))
	assert.Equal(t, 1, e.workerCount(1))

	auto := NewEngine()
	assert.GreaterOrEqual(t, auto.workerCount(10), 1)
	assert.LessOrEqual(t, auto.workerCount(10), 10)
}
