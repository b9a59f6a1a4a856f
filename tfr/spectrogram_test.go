package tfr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/sonido-tftb/algorithms/common"
	"github.com/RyanBlaney/sonido-tftb/algorithms/generators"
	"github.com/RyanBlaney/sonido-tftb/algorithms/windowing"
)

func TestSpectrogramTracksConstantFrequency(t *testing.T) {
	const n, nfft = 128, 128
	x, _, err := generators.FMConst(n, 0.125, 0)
	require.NoError(t, err)
	h, err := windowing.New(windowing.TypeHamming, 63, windowing.Params{})
	require.NoError(t, err)

	res, err := quietEngine().Spectrogram(x, nil, nfft, h)
	require.NoError(t, err)

	rows, cols := res.Dims()
	assert.Equal(t, nfft, rows)
	assert.Equal(t, n, cols)

	estimated := res.InstantaneousFrequency()
	for ti := 31; ti <= 96; ti++ {
		assert.Equal(t, 0.125, estimated[ti], "t=%d", ti)
	}
}

func TestSpectrogramIsNonNegativeAndEnergyPreserving(t *testing.T) {
	const nfft = 64
	x, _, err := generators.FMConst(100, -0.2, 10)
	require.NoError(t, err)
	h, err := windowing.New(windowing.TypeHann, 21, windowing.Params{})
	require.NoError(t, err)

	res, err := quietEngine().Spectrogram(x, nil, nfft, h)
	require.NoError(t, err)

	rows, cols := res.Dims()
	for j := range cols {
		for k := range rows {
			v := res.TFR.At(k, j)
			assert.GreaterOrEqual(t, real(v), 0.0)
			assert.Zero(t, imag(v))
		}
	}

	// a unit-modulus signal under a unit-energy window sums to nfft per
	// column, edges included
	for j, total := range res.TimeMarginal() {
		assert.InDelta(t, nfft, total, 1e-8, "col %d", j)
	}
}

func TestSpectrogramWindowErrors(t *testing.T) {
	x := randomSignal(64, 30)
	e := quietEngine()

	h, err := windowing.New(windowing.TypeHamming, 17, windowing.Params{})
	require.NoError(t, err)
	_, err = e.Spectrogram(x, nil, 16, h)
	assert.True(t, errors.Is(err, common.ErrInvalidWindow))

	_, err = e.Spectrogram(x, nil, 16, nil)
	assert.True(t, errors.Is(err, common.ErrInvalidWindow))

	_, err = e.Spectrogram(x, []int{64}, 16, h)
	assert.True(t, errors.Is(err, common.ErrInvalidParameter))
}

func TestSpectrogramMeanFrequency(t *testing.T) {
	x, _, err := generators.FMConst(128, 0.125, 0)
	require.NoError(t, err)
	h, err := windowing.New(windowing.TypeGauss, 63, windowing.Params{})
	require.NoError(t, err)

	res, err := quietEngine().Spectrogram(x, []int{40, 64, 88}, 128, h)
	require.NoError(t, err)
	for j, m := range res.FrequencyMoments() {
		assert.InDelta(t, 0.125, m.Mean, 0.01, "col %d", j)
		assert.InDelta(t, 128, m.Mass, 1e-8, "col %d", j)
	}
}
