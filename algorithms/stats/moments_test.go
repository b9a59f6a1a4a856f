package stats

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/sonido-tftb/algorithms/common"
)

func TestWeightedMomentsUniform(t *testing.T) {
	m, err := WeightedMoments([]float64{1, 2, 3}, []float64{1, 1, 1})
	require.NoError(t, err)
	assert.InDelta(t, 2, m.Mean, 1e-12)
	assert.InDelta(t, 2.0/3, m.Variance, 1e-12)
	assert.InDelta(t, 3, m.Mass, 1e-12)
}

func TestWeightedMomentsPointMass(t *testing.T) {
	m, err := WeightedMoments([]float64{0, 0.1, 0.2, 0.3}, []float64{0, 0, 5, 0})
	require.NoError(t, err)
	assert.InDelta(t, 0.2, m.Mean, 1e-12)
	assert.InDelta(t, 0, m.Variance, 1e-12)
	assert.InDelta(t, 0, m.StdDev, 1e-6)
}

func TestWeightedMomentsSignedDensity(t *testing.T) {
	// interference terms make a Wigner-Ville column signed; a positive
	// total still gives a mean
	m, err := WeightedMoments([]float64{0, 1, 2}, []float64{2, -1, 2})
	require.NoError(t, err)
	assert.InDelta(t, 1, m.Mean, 1e-12)
	assert.InDelta(t, 4.0/3, m.Variance, 1e-12)
	assert.InDelta(t, math.Sqrt(4.0/3), m.StdDev, 1e-12)
}

func TestWeightedMomentsErrors(t *testing.T) {
	_, err := WeightedMoments(nil, nil)
	assert.True(t, errors.Is(err, common.ErrInvalidSignal))

	_, err = WeightedMoments([]float64{1, 2}, []float64{1})
	assert.True(t, errors.Is(err, common.ErrInvalidSignal))

	_, err = WeightedMoments([]float64{1, 2}, []float64{1, -1})
	assert.True(t, errors.Is(err, common.ErrInvalidSignal))
}
