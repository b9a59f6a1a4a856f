package spectral

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func naiveDFT(x []complex128) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	for k := range n {
		var acc complex128
		for i, v := range x {
			acc += v * cmplx.Exp(complex(0, -2*math.Pi*float64(k*i)/float64(n)))
		}
		out[k] = acc
	}
	return out
}

func TestPlanMatchesDirectDFT(t *testing.T) {
	for _, n := range []int{1, 5, 12, 64} {
		seq := make([]complex128, n)
		for i := range seq {
			seq[i] = complex(math.Cos(float64(i)), float64(i%4)-1.5)
		}
		p := NewPlan(n)
		require.Equal(t, n, p.Len())

		got := p.Forward(nil, seq)
		want := naiveDFT(seq)
		for k := range want {
			assert.InDelta(t, real(want[k]), real(got[k]), 1e-9, "n=%d k=%d", n, k)
			assert.InDelta(t, imag(want[k]), imag(got[k]), 1e-9, "n=%d k=%d", n, k)
		}
	}
}

func TestPlanAgreesWithGoDSP(t *testing.T) {
	const n = 48
	seq := make([]complex128, n)
	for i := range seq {
		seq[i] = complex(math.Sin(0.2*float64(i)), math.Cos(0.7*float64(i)))
	}
	a := NewPlan(n).Forward(make([]complex128, n), seq)
	b := NewFFT().ComputeComplex(seq)
	for k := range a {
		assert.InDelta(t, 0, cmplx.Abs(a[k]-b[k]), 1e-9)
	}
}

func TestInverseRoundTrip(t *testing.T) {
	x := []float64{1, -2, 3.5, 0, 0.25, 7}
	f := NewFFT()
	back := f.ComputeInverseReal(f.Compute(x))
	require.Len(t, back, len(x))
	for i := range x {
		assert.InDelta(t, x[i], back[i], 1e-12)
	}
	assert.Empty(t, f.Compute(nil))
	assert.Empty(t, f.ComputeInverse(nil))
}
