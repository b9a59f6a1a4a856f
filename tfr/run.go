package tfr

import (
	"github.com/RyanBlaney/sonido-tftb/algorithms/common"
	"github.com/RyanBlaney/sonido-tftb/algorithms/windowing"
	"github.com/RyanBlaney/sonido-tftb/logging"
	"github.com/RyanBlaney/sonido-tftb/tfr/config"
)

// FromConfig builds an Engine with the worker count and log level of cfg.
func FromConfig(cfg *config.Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.Component("tfr")
	logger.SetLevel(level)
	return NewEngine(WithWorkers(cfg.Workers), WithLogger(logger)), nil
}

// Run computes the distribution selected by cfg. A zero NFFT uses the
// signal length. A zero lag or analysis window length uses
// DefaultLagLength(min(len(x), nfft)), which always fits the lag budget; a
// zero time window length uses DefaultTimeLength(len(x)).
func (e *Engine) Run(cfg *config.Config, x []complex128, times []int) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		e.logger.Error(err, "Invalid configuration")
		return nil, err
	}
	if len(x) == 0 {
		return e.WignerVille(x, times, cfg.NFFT)
	}

	nfft := cfg.NFFT
	if nfft == 0 {
		nfft = len(x)
	}

	lagLength := DefaultLagLength(min(len(x), nfft))

	switch cfg.Distribution {
	case config.DistributionWignerVille:
		return e.WignerVille(x, times, nfft)
	case config.DistributionPseudoWignerVille:
		h, err := buildWindow(cfg.LagWindow, lagLength)
		if err != nil {
			return nil, err
		}
		return e.PseudoWignerVille(x, times, nfft, h)
	case config.DistributionSmoothedPseudoWignerVille:
		h, err := buildWindow(cfg.LagWindow, lagLength)
		if err != nil {
			return nil, err
		}
		g, err := buildWindow(cfg.TimeWindow, DefaultTimeLength(len(x)))
		if err != nil {
			return nil, err
		}
		return e.SmoothedPseudoWignerVille(x, times, nfft, g, h)
	case config.DistributionSpectrogram:
		h, err := buildWindow(cfg.LagWindow, lagLength)
		if err != nil {
			return nil, err
		}
		return e.Spectrogram(x, times, nfft, h)
	default:
		return nil, common.ParamError("distribution", cfg.Distribution, "is not supported")
	}
}

func buildWindow(wc config.WindowConfig, fallback int) (*windowing.Window, error) {
	length := wc.Length
	if length == 0 {
		length = fallback
	}
	return windowing.New(windowing.Type(wc.Type), length, wc.Params())
}

// DefaultLagLength is the odd length nearest above n/4, the customary lag
// window for n samples or n frequency bins, whichever is smaller.
func DefaultLagLength(n int) int {
	return oddAtLeast(n / 4)
}

// DefaultTimeLength is the odd length nearest above n/10, the customary
// time-smoothing window for n samples.
func DefaultTimeLength(n int) int {
	return oddAtLeast(n / 10)
}

func oddAtLeast(l int) int {
	if l%2 == 0 {
		l++
	}
	return max(l, 1)
}
