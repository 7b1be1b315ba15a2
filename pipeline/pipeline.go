// Package pipeline runs the synthesize, transform and emit stages once, in
// order, on a single goroutine.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-tonefft/dsp/core"
	"github.com/cwbudde/algo-tonefft/dsp/signal"
	"github.com/cwbudde/algo-tonefft/dsp/spectrum"
	"github.com/cwbudde/algo-tonefft/dsp/transform"
	"github.com/cwbudde/algo-tonefft/stream/emit"
)

// Config holds every knob of a run. The zero value is not usable; start from
// DefaultConfig.
type Config struct {
	Amplitude      float64
	SampleInterval float64
	Samples        int
	Frequencies    []float64
	Delay          time.Duration
	Backend        string
	Component      spectrum.Component
	Format         emit.Format
}

// DefaultFrequencies returns the stock tone set: pi, pi/2 and 2*pi.
func DefaultFrequencies() []float64 {
	return []float64{math.Pi, math.Pi / 2, 2 * math.Pi}
}

// DefaultConfig returns amplitude 1, dt 0.1, 1024 samples, the default tone
// set, 10ms pacing, the auto backend and the real component in tuple format.
func DefaultConfig() Config {
	proc := core.DefaultProcessorConfig()
	return Config{
		Amplitude:      1,
		SampleInterval: proc.SampleInterval,
		Samples:        proc.Samples,
		Frequencies:    DefaultFrequencies(),
		Delay:          emit.DefaultDelay,
		Backend:        transform.NameAuto,
		Component:      spectrum.ComponentReal,
		Format:         emit.FormatTuple,
	}
}

// Validate checks the numeric constraints of cfg.
func (cfg Config) Validate() error {
	if cfg.Samples <= 0 {
		return fmt.Errorf("samples must be > 0: %d", cfg.Samples)
	}
	if !(cfg.SampleInterval > 0) || math.IsInf(cfg.SampleInterval, 0) {
		return fmt.Errorf("sample interval must be > 0: %v", cfg.SampleInterval)
	}
	if !core.IsFinite(cfg.Amplitude) {
		return fmt.Errorf("amplitude must be finite: %v", cfg.Amplitude)
	}
	if cfg.Delay < 0 {
		return fmt.Errorf("delay must be >= 0: %v", cfg.Delay)
	}
	return nil
}

// Result captures the intermediate products of a run.
type Result struct {
	Summed   []float64
	Spectrum spectrum.Spectrum
	Lines    int
}

// Synthesize produces the summed multi-tone signal for cfg.
func Synthesize(cfg Config) ([]float64, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := signal.NewGenerator(
		core.WithSampleInterval(cfg.SampleInterval),
		core.WithSamples(cfg.Samples),
	)
	return g.Multitone(cfg.Frequencies, cfg.Amplitude)
}

// Transform computes the DFT of summed with the configured backend.
func Transform(cfg Config, summed []float64) (spectrum.Spectrum, error) {
	backend, err := transform.New(cfg.Backend)
	if err != nil {
		return spectrum.Spectrum{}, err
	}
	return backend.Forward(summed)
}

// Run synthesizes the signal, transforms it and emits the selected component
// of every bin to w. A nil logger disables logging.
func Run(ctx context.Context, cfg Config, w io.Writer, logger *zap.Logger) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	summed, err := Synthesize(cfg)
	if err != nil {
		return Result{}, fmt.Errorf("synthesize: %w", err)
	}
	logger.Debug("signal synthesized",
		zap.Int("tones", len(cfg.Frequencies)),
		zap.Int("samples", len(summed)),
		zap.Float64("amplitude", cfg.Amplitude),
		zap.Float64("dt", cfg.SampleInterval),
	)

	spec, err := Transform(cfg, summed)
	if err != nil {
		return Result{Summed: summed}, fmt.Errorf("transform: %w", err)
	}
	logger.Debug("spectrum computed",
		zap.String("backend", backendName(cfg.Backend, len(summed))),
		zap.Int("bins", spec.Len()),
	)

	values, err := spec.Values(cfg.Component)
	if err != nil {
		return Result{Summed: summed, Spectrum: spec}, err
	}

	e := emit.New(w,
		emit.WithDelay(cfg.Delay),
		emit.WithFormat(cfg.Format),
		emit.WithLogger(logger),
	)
	lines, err := e.Emit(ctx, values)
	res := Result{Summed: summed, Spectrum: spec, Lines: lines}
	if err != nil {
		return res, err
	}

	logger.Info("run complete",
		zap.Int("lines", lines),
		zap.Stringer("component", cfg.Component),
	)
	return res, nil
}

func backendName(name string, n int) string {
	b, err := transform.New(name)
	if err != nil {
		return name
	}
	if auto, ok := b.(transform.Auto); ok {
		return auto.Name() + "/" + auto.Resolve(n).Name()
	}
	return b.Name()
}
