package tfr

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/RyanBlaney/sonido-tftb/algorithms/common"
	"github.com/RyanBlaney/sonido-tftb/algorithms/stats"
)

// Kind identifies a distribution.
type Kind string

const (
	KindWignerVille               Kind = "wv"
	KindCrossWignerVille          Kind = "xwv"
	KindPseudoWignerVille         Kind = "pwv"
	KindSmoothedPseudoWignerVille Kind = "spwv"
	KindSpectrogram               Kind = "sp"
)

// Result holds a time-frequency representation and its axes.
type Result struct {
	Kind  Kind        `json:"kind"`
	TFR   *mat.CDense `json:"-"`     // NFFT x len(Times); row k pairs with Freqs[k]
	Times []int       `json:"times"` // evaluated time instants, one per column
	Freqs []float64   `json:"freqs"` // normalised frequency of each row
	NFFT  int         `json:"nfft"`
}

func newResult(kind Kind, tfr *mat.CDense, times []int, nfft int) *Result {
	return &Result{
		Kind:  kind,
		TFR:   tfr,
		Times: times,
		Freqs: FrequencyAxis(kind, nfft),
		NFFT:  nfft,
	}
}

// FrequencyAxis returns the normalised frequency of each of the nfft rows.
// Wigner-type rows span [0, 0.5) in steps of 1/(2·nfft); spectrogram rows
// follow the DFT ordering k/nfft, wrapping to [-0.5, 0) past the middle.
func FrequencyAxis(kind Kind, nfft int) []float64 {
	freqs := make([]float64, nfft)
	if kind == KindSpectrogram {
		for k := range freqs {
			if k < (nfft+1)/2 {
				freqs[k] = float64(k) / float64(nfft)
			} else {
				freqs[k] = float64(k-nfft) / float64(nfft)
			}
		}
		return freqs
	}
	if nfft == 1 {
		return freqs
	}
	floats.Span(freqs, 0, 0.5*float64(nfft-1)/float64(nfft))
	return freqs
}

// Dims returns (NFFT, number of time instants).
func (r *Result) Dims() (rows, cols int) {
	return r.TFR.Dims()
}

// Column returns a copy of the spectrum at column j.
func (r *Result) Column(j int) []complex128 {
	rows, _ := r.TFR.Dims()
	col := make([]complex128, rows)
	for k := range col {
		col[k] = r.TFR.At(k, j)
	}
	return col
}

// Real returns the real part of the distribution.
func (r *Result) Real() *mat.Dense {
	return r.apply(func(v complex128) float64 { return real(v) })
}

// Energy returns |tfr|² cell by cell.
func (r *Result) Energy() *mat.Dense {
	return r.apply(common.Abs2)
}

// Magnitude returns |tfr| cell by cell.
func (r *Result) Magnitude() *mat.Dense {
	return r.apply(cmplx.Abs)
}

func (r *Result) apply(fn func(complex128) float64) *mat.Dense {
	rows, cols := r.TFR.Dims()
	out := mat.NewDense(rows, cols, nil)
	for i := range rows {
		for j := range cols {
			out.Set(i, j, fn(r.TFR.At(i, j)))
		}
	}
	return out
}

// TimeMarginal sums the real part over frequency, one value per column.
func (r *Result) TimeMarginal() []float64 {
	re := r.Real()
	_, cols := re.Dims()
	out := make([]float64, cols)
	for j := range out {
		out[j] = floats.Sum(mat.Col(nil, j, re))
	}
	return out
}

// FrequencyMarginal sums the real part over time, one value per row.
func (r *Result) FrequencyMarginal() []float64 {
	re := r.Real()
	rows, _ := re.Dims()
	out := make([]float64, rows)
	for i := range out {
		out[i] = floats.Sum(mat.Row(nil, i, re))
	}
	return out
}

// InstantaneousFrequency returns, per column, the frequency of the row
// with the largest real part.
func (r *Result) InstantaneousFrequency() []float64 {
	re := r.Real()
	_, cols := re.Dims()
	out := make([]float64, cols)
	for j := range out {
		out[j] = r.Freqs[floats.MaxIdx(mat.Col(nil, j, re))]
	}
	return out
}

// FrequencyMoments returns, per column, the mean frequency and bandwidth
// of the real part. Columns without positive mass report NaN moments.
func (r *Result) FrequencyMoments() []stats.MomentResult {
	re := r.Real()
	_, cols := re.Dims()
	out := make([]stats.MomentResult, cols)
	for j := range out {
		out[j] = momentsOrNaN(r.Freqs, mat.Col(nil, j, re))
	}
	return out
}

// TimeMoments returns, per row, the mean time and duration of the real
// part over the evaluated instants.
func (r *Result) TimeMoments() []stats.MomentResult {
	axis := make([]float64, len(r.Times))
	for j, t := range r.Times {
		axis[j] = float64(t)
	}
	re := r.Real()
	rows, _ := re.Dims()
	out := make([]stats.MomentResult, rows)
	for i := range out {
		out[i] = momentsOrNaN(axis, mat.Row(nil, i, re))
	}
	return out
}

func momentsOrNaN(axis, weights []float64) stats.MomentResult {
	m, err := stats.WeightedMoments(axis, weights)
	if err != nil {
		nan := math.NaN()
		return stats.MomentResult{Mean: nan, Variance: nan, StdDev: nan, Mass: floats.Sum(weights)}
	}
	return m
}

// RenyiInformation returns the order-alpha Rényi information of the real
// part of the distribution, in bits.
func (r *Result) RenyiInformation(alpha float64) (float64, error) {
	re := r.Real()
	return stats.RenyiInformation(re.RawMatrix().Data, alpha)
}

// Threshold zeroes, in place, every entry of m that is <= frac·max(m).
// frac = 0.01 on Energy() is the usual display threshold.
func Threshold(m *mat.Dense, frac float64) error {
	if frac < 0 || frac > 1 {
		return common.ParamError("frac", frac, "must be in [0, 1]")
	}
	limit := mat.Max(m) * frac
	m.Apply(func(_, _ int, v float64) float64 {
		if v <= limit {
			return 0
		}
		return v
	}, m)
	return nil
}
