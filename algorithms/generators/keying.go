package generators

import (
	"math"
	"math/cmplx"
	"math/rand"

	"github.com/RyanBlaney/sonido-tftb/algorithms/common"
)

// Generator draws keyed-modulation symbols from an explicit random source.
// A Generator is not safe for concurrent use, matching *rand.Rand.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator reading from src.
func New(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// NewSeeded is shorthand for New(rand.NewSource(seed)).
func NewSeeded(seed int64) *Generator {
	return New(rand.NewSource(seed))
}

// ASK returns an amplitude-shift-keyed carrier at f0 and its amplitude law.
// Each symbol lasts nComp samples (0 selects n/2) and takes an amplitude
// drawn uniformly from [0, 1).
func (g *Generator) ASK(n, nComp int, f0 float64) ([]complex128, []float64, error) {
	if err := validateLength(n); err != nil {
		return nil, nil, err
	}
	if err := validateCarrier(f0); err != nil {
		return nil, nil, err
	}
	nComp, err := resolveComponent(n, nComp, 2)
	if err != nil {
		return nil, nil, err
	}

	jumps := make([]float64, componentCount(n, nComp))
	for i := range jumps {
		jumps[i] = g.rng.Float64()
	}
	am := repeat(jumps, nComp, n)

	fm, _, err := FMConst(n, f0, 0)
	if err != nil {
		return nil, nil, err
	}
	return scale(fm, am), am, nil
}

// BPSK returns a binary phase-shift-keyed carrier at f0 and its ±1 symbol law.
// nComp == 0 selects n/5.
func (g *Generator) BPSK(n, nComp int, f0 float64) ([]complex128, []float64, error) {
	if err := validateLength(n); err != nil {
		return nil, nil, err
	}
	if err := validateCarrier(f0); err != nil {
		return nil, nil, err
	}
	nComp, err := resolveComponent(n, nComp, 5)
	if err != nil {
		return nil, nil, err
	}

	jumps := make([]float64, componentCount(n, nComp))
	for i := range jumps {
		jumps[i] = 2*math.Round(g.rng.Float64()) - 1
	}
	am := repeat(jumps, nComp, n)

	fm, _, err := FMConst(n, f0, 0)
	if err != nil {
		return nil, nil, err
	}
	return scale(fm, am), am, nil
}

// FSK returns a frequency-shift-keyed signal hopping between nbf frequencies
// spread evenly around 0.25, and its instantaneous frequency law.
// nComp == 0 selects n/5.
func (g *Generator) FSK(n, nComp, nbf int) ([]complex128, []float64, error) {
	if err := validateLength(n); err != nil {
		return nil, nil, err
	}
	if nbf < 1 {
		return nil, nil, common.ParamError("nbf", nbf, "must be >= 1")
	}
	nComp, err := resolveComponent(n, nComp, 5)
	if err != nil {
		return nil, nil, err
	}

	freqs := make([]float64, componentCount(n, nComp))
	offset := float64(nbf-1) / float64(2*nbf)
	for i := range freqs {
		level := math.Floor(float64(nbf) * g.rng.Float64())
		freqs[i] = 0.25 + 0.25*(level/float64(nbf)-offset)
	}
	iflaw := repeat(freqs, nComp, n)

	y := make([]complex128, n)
	phase := 0.0
	for i, f := range iflaw {
		phase += f
		y[i] = cmplx.Exp(complex(0, 2*math.Pi*phase))
	}
	return y, iflaw, nil
}

// QPSK returns a quaternary phase-shift-keyed carrier at f0 and its phase
// symbol law (multiples of π/2). nComp == 0 selects n/5.
func (g *Generator) QPSK(n, nComp int, f0 float64) ([]complex128, []float64, error) {
	if err := validateLength(n); err != nil {
		return nil, nil, err
	}
	if err := validateCarrier(f0); err != nil {
		return nil, nil, err
	}
	nComp, err := resolveComponent(n, nComp, 5)
	if err != nil {
		return nil, nil, err
	}

	jumps := make([]float64, componentCount(n, nComp))
	for i := range jumps {
		jumps[i] = float64(g.rng.Intn(4)) * math.Pi / 2
	}
	pm0 := repeat(jumps, nComp, n)

	y := make([]complex128, n)
	for i := range y {
		pm := 2*math.Pi*f0*float64(i-1) + pm0[i]
		y[i] = cmplx.Exp(complex(0, pm))
	}
	return y, pm0, nil
}

func scale(x []complex128, gain []float64) []complex128 {
	out := make([]complex128, len(x))
	for i := range x {
		out[i] = x[i] * complex(gain[i], 0)
	}
	return out
}
