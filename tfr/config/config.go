// Package config holds the engine configuration: which distribution to
// compute, its frequency resolution, its windows, the worker pool size and
// the log level. Configurations load from YAML, JSON or TOML files with
// TFTB_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/RyanBlaney/sonido-tftb/algorithms/common"
	"github.com/RyanBlaney/sonido-tftb/algorithms/windowing"
	"github.com/RyanBlaney/sonido-tftb/logging"
)

// Distribution names accepted in Config.Distribution.
const (
	DistributionWignerVille               = "wv"
	DistributionPseudoWignerVille         = "pwv"
	DistributionSmoothedPseudoWignerVille = "spwv"
	DistributionSpectrogram               = "sp"
)

// EnvPrefix prefixes environment overrides, e.g. TFTB_NFFT or TFTB_LAG_WINDOW_TYPE.
const EnvPrefix = "TFTB"

// Config configures a distribution run.
type Config struct {
	Distribution string       `json:"distribution" mapstructure:"distribution" yaml:"distribution"`
	NFFT         int          `json:"nfft" mapstructure:"nfft" yaml:"nfft"`          // 0 uses the signal length
	Workers      int          `json:"workers" mapstructure:"workers" yaml:"workers"` // 0 picks from the workload
	LogLevel     string       `json:"log_level" mapstructure:"log_level" yaml:"log_level"`
	LagWindow    WindowConfig `json:"lag_window" mapstructure:"lag_window" yaml:"lag_window"`
	TimeWindow   WindowConfig `json:"time_window" mapstructure:"time_window" yaml:"time_window"`
}

// WindowConfig selects a window from the windowing catalogue.
type WindowConfig struct {
	Type   string  `json:"type" mapstructure:"type" yaml:"type"`
	Length int     `json:"length" mapstructure:"length" yaml:"length"` // 0 derives an odd length from the signal
	Beta   float64 `json:"beta,omitempty" mapstructure:"beta" yaml:"beta,omitempty"`
	Sigma  float64 `json:"sigma,omitempty" mapstructure:"sigma" yaml:"sigma,omitempty"`
	Alpha  float64 `json:"alpha,omitempty" mapstructure:"alpha" yaml:"alpha,omitempty"`
}

// Params returns the shape parameters for windowing.New.
func (w WindowConfig) Params() windowing.Params {
	return windowing.Params{Beta: w.Beta, Sigma: w.Sigma, Alpha: w.Alpha}
}

// Default returns the plain Wigner-Ville configuration with Hamming
// windows for the variants that need them.
func Default() *Config {
	return &Config{
		Distribution: DistributionWignerVille,
		NFFT:         0,
		Workers:      0,
		LogLevel:     "info",
		LagWindow:    WindowConfig{Type: string(windowing.TypeHamming)},
		TimeWindow:   WindowConfig{Type: string(windowing.TypeHamming)},
	}
}

// Validate checks every field and returns the first violation.
func (c *Config) Validate() error {
	switch c.Distribution {
	case DistributionWignerVille, DistributionPseudoWignerVille,
		DistributionSmoothedPseudoWignerVille, DistributionSpectrogram:
	default:
		return common.ParamError("distribution", c.Distribution, "must be one of wv, pwv, spwv, sp")
	}
	if c.NFFT < 0 {
		return common.ParamError("nfft", c.NFFT, "must be >= 0")
	}
	if c.Workers < 0 {
		return common.ParamError("workers", c.Workers, "must be >= 0")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return common.ParamError("log_level", c.LogLevel, err.Error())
	}
	if err := c.LagWindow.validate("lag_window"); err != nil {
		return err
	}
	return c.TimeWindow.validate("time_window")
}

func (w WindowConfig) validate(name string) error {
	if !slices.Contains(windowing.Types(), windowing.Type(w.Type)) {
		return common.WindowError(name+".type", w.Type, fmt.Sprintf("must be one of %v", windowing.Types()))
	}
	if w.Length < 0 || (w.Length > 0 && w.Length%2 == 0) {
		return common.WindowError(name+".length", w.Length, "must be 0 or a positive odd number")
	}
	return nil
}

// Load reads a configuration file (format from its extension) on top of
// Default, then applies TFTB_* environment overrides. An empty path uses
// the defaults and the environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("distribution", d.Distribution)
	v.SetDefault("nfft", d.NFFT)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("log_level", d.LogLevel)
	for name, w := range map[string]WindowConfig{"lag_window": d.LagWindow, "time_window": d.TimeWindow} {
		v.SetDefault(name+".type", w.Type)
		v.SetDefault(name+".length", w.Length)
		v.SetDefault(name+".beta", w.Beta)
		v.SetDefault(name+".sigma", w.Sigma)
		v.SetDefault(name+".alpha", w.Alpha)
	}
}

// WriteYAML serialises the configuration.
func (c *Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return errors.Join(fmt.Errorf("failed to encode config: %w", err), enc.Close())
	}
	return enc.Close()
}
