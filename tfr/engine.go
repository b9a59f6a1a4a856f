package tfr

import (
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/RyanBlaney/sonido-tftb/algorithms/common"
	"github.com/RyanBlaney/sonido-tftb/logging"
)

// Engine evaluates time-frequency distributions. It holds no per-call
// state, so one Engine may serve concurrent callers.
type Engine struct {
	workers int
	logger  logging.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithWorkers fixes the number of goroutines computing columns.
// n <= 0 restores the workload-based default; 1 is fully sequential.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		e.workers = n
	}
}

// WithLogger replaces the component logger.
func WithLogger(logger logging.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an Engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		logger: logging.Component("tfr"),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// kernel produces the lag buffer of one time instant. Implementations read
// only immutable inputs; all scratch lives in the lagProduct.
type kernel interface {
	lags(p *lagProduct, t int)
}

// columnWorker evaluates column(t) with goroutine-local buffers.
type columnWorker struct {
	k    kernel
	lag  lagProduct
	proj *projector
}

func newColumnWorker(k kernel, nfft int) *columnWorker {
	return &columnWorker{k: k, proj: newProjector(nfft)}
}

// column returns the NFFT-bin spectrum at instant t. The slice is reused.
func (w *columnWorker) column(t int) []complex128 {
	w.k.lags(&w.lag, t)
	return w.proj.project(&w.lag)
}

// validateInput applies the checks shared by every distribution and
// returns the resolved time instants (the full range when times is nil).
func validateInput(x []complex128, times []int, nfft int) ([]int, error) {
	n := len(x)
	if n == 0 {
		return nil, common.SignalError("signal", n, "must not be empty")
	}
	if nfft <= 0 {
		return nil, common.ParamError("nfft", nfft, "must be > 0")
	}

	if times == nil {
		all := make([]int, n)
		for i := range all {
			all[i] = i
		}
		return all, nil
	}
	if len(times) == 0 {
		return nil, common.ParamError("times", 0, "must not be empty when given")
	}

	for i, t := range times {
		if t < 0 || t > n-1 {
			return nil, common.ParamError(fmt.Sprintf("times[%d]", i), t, fmt.Sprintf("must lie in [0, %d]", n-1))
		}
	}
	resolved := make([]int, len(times))
	copy(resolved, times)
	return resolved, nil
}

// compute fills an nfft × len(times) matrix, one column per instant.
// post, when non-nil, maps every projected bin before it is stored.
func (e *Engine) compute(kind Kind, k kernel, times []int, nfft int, post func(complex128) complex128) *Result {
	out := mat.NewCDense(nfft, len(times), nil)
	workers := e.workerCount(len(times))

	logger := e.logger.WithFields(logging.Fields{
		"kind":    kind,
		"nfft":    nfft,
		"columns": len(times),
		"workers": workers,
	})
	logger.Debug("Computing distribution")

	// at most `workers` columns run at once; each borrows a column worker
	// (plan and buffers) from the pool and writes only its own column
	pool := sync.Pool{New: func() any { return newColumnWorker(k, nfft) }}
	var g errgroup.Group
	g.SetLimit(workers)
	for j, t := range times {
		g.Go(func() error {
			w := pool.Get().(*columnWorker)
			defer pool.Put(w)
			for f, v := range w.column(t) {
				if post != nil {
					v = post(v)
				}
				out.Set(f, j, v)
			}
			return nil
		})
	}
	_ = g.Wait() // column evaluation has no failure path

	logger.Debug("Distribution computed")

	return newResult(kind, out, times, nfft)
}

// workerCount picks the pool size for a number of columns.
func (e *Engine) workerCount(columns int) int {
	if columns <= 1 {
		return 1
	}
	if e.workers > 0 {
		return min(e.workers, columns)
	}

	numCPU := runtime.NumCPU()

	// small workloads do not amortise goroutine start-up
	if columns < 100 {
		return max(1, min(numCPU/2, columns))
	}

	if columns < 1000 {
		return min(numCPU, 8)
	}

	return numCPU
}
