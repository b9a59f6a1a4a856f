package stats

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/sonido-tftb/algorithms/common"
)

func TestRenyiUniformDistribution(t *testing.T) {
	// a uniform distribution over 2^k cells carries k bits at every order
	values := make([]float64, 64)
	for i := range values {
		values[i] = 3.5
	}
	for _, alpha := range []float64{0.5, 1, 2, 3} {
		r, err := RenyiInformation(values, alpha)
		require.NoError(t, err)
		assert.InDelta(t, 6.0, r, 1e-12, "alpha=%v", alpha)
	}
}

func TestRenyiSingleCell(t *testing.T) {
	values := make([]float64, 10)
	values[4] = 2
	r, err := RenyiInformation(values, DefaultRenyiOrder)
	require.NoError(t, err)
	assert.InDelta(t, 0, r, 1e-12)
}

func TestRenyiDecreasesWithConcentration(t *testing.T) {
	spread := []float64{1, 1, 1, 1}
	peaked := []float64{4, 1, 1, 1}
	a, err := RenyiInformation(spread, 3)
	require.NoError(t, err)
	b, err := RenyiInformation(peaked, 3)
	require.NoError(t, err)
	assert.Greater(t, a, b)
}

func TestRenyiToleratesNegativeCellsAtOddOrder(t *testing.T) {
	r, err := RenyiInformation([]float64{2, 2, -0.5, 0.5}, 3)
	require.NoError(t, err)
	assert.False(t, math.IsNaN(r))
}

func TestRenyiValidation(t *testing.T) {
	_, err := RenyiInformation(nil, 3)
	assert.True(t, errors.Is(err, common.ErrInvalidSignal))

	_, err = RenyiInformation([]float64{1, -1}, 3)
	assert.True(t, errors.Is(err, common.ErrInvalidSignal))

	_, err = RenyiInformation([]float64{1, 2}, 0)
	assert.True(t, errors.Is(err, common.ErrInvalidParameter))
}

func TestRenyiRejectsFractionalOrderOnSignedDensity(t *testing.T) {
	signed := []float64{2, -1, 2}

	_, err := RenyiInformation(signed, 2.5)
	assert.True(t, errors.Is(err, common.ErrInvalidParameter))

	r, err := RenyiInformation(signed, 3)
	require.NoError(t, err)
	assert.False(t, math.IsNaN(r))

	// a non-negative density accepts any positive order
	r, err = RenyiInformation([]float64{2, 1, 2}, 2.5)
	require.NoError(t, err)
	assert.False(t, math.IsNaN(r))
}

func TestRenyiRejectsNonPositiveOrderSum(t *testing.T) {
	// Σp = 1 but Σp³ < 0
	values := []float64{-1, 0.2, 0.2, 0.2, 0.2, 0.2, 0.2, 0.2, 0.2, 0.2, 0.2}
	_, err := RenyiInformation(values, 3)
	assert.True(t, errors.Is(err, common.ErrInvalidSignal))
}
