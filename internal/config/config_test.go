package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-tonefft/dsp/spectrum"
	"github.com/cwbudde/algo-tonefft/pipeline"
	"github.com/cwbudde/algo-tonefft/stream/serial"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, 1.0, cfg.Amplitude)
	assert.Equal(t, 0.1, cfg.SampleInterval)
	assert.Equal(t, 1024, cfg.Samples)
	assert.Equal(t, []string{"pi", "pi/2", "2*pi"}, cfg.Frequencies)
	assert.Equal(t, 10*time.Millisecond, cfg.Delay)
	assert.Equal(t, "auto", cfg.Backend)
	assert.Equal(t, "real", cfg.Component)
	assert.Equal(t, "tuple", cfg.Format)
	assert.Equal(t, serial.Config{Baud: serial.DefaultBaud}, cfg.Serial)
	assert.Equal(t, "info", cfg.LogLevel)

	pc, err := cfg.Pipeline()
	require.NoError(t, err)
	def := pipeline.DefaultConfig()
	assert.Equal(t, def.Frequencies, pc.Frequencies)
	assert.Equal(t, def.Samples, pc.Samples)
	assert.Equal(t, def.Delay, pc.Delay)
	assert.Equal(t, spectrum.ComponentReal, pc.Component)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tonefft.yaml")
	doc := `
amplitude: 2.5
samples: 64
frequencies: [pi, 1.5, "pi/3"]
delay: 2ms
backend: gonum
component: magnitude
serial:
  port: /dev/ttyUSB0
  baud: 9600
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, 2.5, cfg.Amplitude)
	assert.Equal(t, 0.1, cfg.SampleInterval, "unset keys keep defaults")
	assert.Equal(t, 64, cfg.Samples)
	assert.Equal(t, 2*time.Millisecond, cfg.Delay)
	assert.Equal(t, serial.Config{Name: "/dev/ttyUSB0", Baud: 9600}, cfg.Serial)

	pc, err := cfg.Pipeline()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{math.Pi, 1.5, math.Pi / 3}, pc.Frequencies, 1e-15)
	assert.Equal(t, "gonum", pc.Backend)
	assert.Equal(t, spectrum.ComponentMagnitude, pc.Component)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDefaultFrequenciesMatchPipeline(t *testing.T) {
	freqs, err := ParseFrequencies(DefaultFrequencies())
	require.NoError(t, err)
	assert.InDeltaSlice(t, pipeline.DefaultFrequencies(), freqs, 1e-15)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TONEFFT_SAMPLES", "16")
	t.Setenv("TONEFFT_FREQUENCIES", "pi/4,3")
	t.Setenv("TONEFFT_SERIAL_PORT", "COM7")

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.Samples)
	assert.Equal(t, []string{"pi/4", "3"}, cfg.Frequencies)
	assert.Equal(t, "COM7", cfg.Serial.Name)
}

func TestEnvSpaceSeparatedFrequencies(t *testing.T) {
	t.Setenv("TONEFFT_FREQUENCIES", "1 2")

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"1 2"}, cfg.Frequencies)

	_, err = cfg.Pipeline()
	assert.ErrorContains(t, err, "unexpected space")
}

func TestPipelineErrors(t *testing.T) {
	base, err := Load(New(), "")
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"frequency", func(c *Config) { c.Frequencies = []string{"tau"} }},
		{"component", func(c *Config) { c.Component = "phase" }},
		{"format", func(c *Config) { c.Format = "csv" }},
		{"samples", func(c *Config) { c.Samples = 0 }},
		{"interval", func(c *Config) { c.SampleInterval = -1 }},
		{"delay", func(c *Config) { c.Delay = -time.Millisecond }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			_, err := cfg.Pipeline()
			assert.Error(t, err)
		})
	}
}

func TestYAML(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)

	out, err := cfg.YAML()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(out, &doc))
	assert.Equal(t, "10ms", doc["delay"])
	assert.Equal(t, 1024, doc["samples"])
	assert.Equal(t, []any{"pi", "pi/2", "2*pi"}, doc["frequencies"])
	assert.Equal(t, map[string]any{"port": "", "baud": 115200}, doc["serial"])
}
