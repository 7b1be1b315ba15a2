package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-tonefft/dsp/core"
)

// Generator creates deterministic tone signals on a shared sampling grid.
type Generator struct {
	cfg core.ProcessorConfig
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{
		cfg: core.ApplyProcessorOptions(opts...),
	}
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Tone generates amplitude*sin(dt*i*freq) for i in [0, Samples).
//
// freq is an angular frequency in radians per unit time, so a tone at pi
// completes half a cycle per unit of the sample interval's time base.
func (g *Generator) Tone(freq, amplitude float64) ([]float64, error) {
	if err := g.validate(amplitude); err != nil {
		return nil, err
	}
	if !core.IsFinite(freq) {
		return nil, fmt.Errorf("tone frequency must be finite: %f", freq)
	}
	out := make([]float64, g.cfg.Samples)
	g.fillTone(out, freq, amplitude)
	return out, nil
}

// ToneMatrix returns one row per frequency, each holding that tone's samples.
// The result has shape len(freqs) x Samples; an empty frequency list yields an
// empty matrix.
func (g *Generator) ToneMatrix(freqs []float64, amplitude float64) ([][]float64, error) {
	if err := g.validate(amplitude); err != nil {
		return nil, err
	}
	if err := validateFrequencies(freqs); err != nil {
		return nil, err
	}

	n := g.cfg.Samples
	backing := make([]float64, len(freqs)*n)
	rows := make([][]float64, len(freqs))
	for j, f := range freqs {
		rows[j] = backing[j*n : (j+1)*n : (j+1)*n]
		g.fillTone(rows[j], f, amplitude)
	}
	return rows, nil
}

// Multitone returns the sample-wise sum of one tone per frequency, all at the
// same amplitude. With no frequencies the result is all zeros.
func (g *Generator) Multitone(freqs []float64, amplitude float64) ([]float64, error) {
	rows, err := g.ToneMatrix(freqs, amplitude)
	if err != nil {
		return nil, err
	}
	return SumColumns(nil, rows, g.cfg.Samples)
}

// SumColumns reduces rows column-wise into dst and returns it. dst is resized
// to n, reusing its capacity when possible. Every row must have length n.
func SumColumns(dst []float64, rows [][]float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("sum columns length must be > 0: %d", n)
	}
	out := core.EnsureLen(dst, n)
	core.Zero(out)
	for j, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("sum columns row %d length mismatch: %d != %d", j, len(row), n)
		}
		core.AddInto(out, row)
	}
	return out, nil
}

func (g *Generator) fillTone(dst []float64, freq, amplitude float64) {
	dt := g.cfg.SampleInterval
	for i := range dst {
		dst[i] = amplitude * math.Sin(dt*float64(i)*freq)
	}
}

func (g *Generator) validate(amplitude float64) error {
	if g.cfg.Samples <= 0 {
		return fmt.Errorf("tone samples must be > 0: %d", g.cfg.Samples)
	}
	if !(g.cfg.SampleInterval > 0) || math.IsInf(g.cfg.SampleInterval, 0) {
		return fmt.Errorf("tone sample interval must be > 0: %f", g.cfg.SampleInterval)
	}
	if !core.IsFinite(amplitude) {
		return fmt.Errorf("tone amplitude must be finite: %f", amplitude)
	}
	return nil
}

func validateFrequencies(freqs []float64) error {
	for j, f := range freqs {
		if !core.IsFinite(f) {
			return fmt.Errorf("tone frequency %d must be finite: %f", j, f)
		}
	}
	return nil
}
