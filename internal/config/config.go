// Package config loads tonefft settings from defaults, a YAML file,
// TONEFFT_* environment variables and command line flags, in increasing
// order of precedence.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-tonefft/dsp/spectrum"
	"github.com/cwbudde/algo-tonefft/internal/logging"
	"github.com/cwbudde/algo-tonefft/pipeline"
	"github.com/cwbudde/algo-tonefft/stream/emit"
	"github.com/cwbudde/algo-tonefft/stream/serial"
)

// EnvPrefix prefixes every environment override, e.g. TONEFFT_SAMPLES.
const EnvPrefix = "TONEFFT"

// Keys shared by the file, environment and flag layers.
const (
	KeyAmplitude      = "amplitude"
	KeySampleInterval = "sample_interval"
	KeySamples        = "samples"
	KeyFrequencies    = "frequencies"
	KeyDelay          = "delay"
	KeyBackend        = "backend"
	KeyComponent      = "component"
	KeyFormat         = "format"
	KeySerialPort     = "serial.port"
	KeySerialBaud     = "serial.baud"
	KeyLogLevel       = "log_level"
)

// Config is the flat, user-facing configuration.
type Config struct {
	Amplitude      float64       `mapstructure:"amplitude" yaml:"amplitude"`
	SampleInterval float64       `mapstructure:"sample_interval" yaml:"sample_interval"`
	Samples        int           `mapstructure:"samples" yaml:"samples"`
	Frequencies    []string      `mapstructure:"frequencies" yaml:"frequencies"`
	Delay          time.Duration `mapstructure:"delay" yaml:"-"`
	Backend        string        `mapstructure:"backend" yaml:"backend"`
	Component      string        `mapstructure:"component" yaml:"component"`
	Format         string        `mapstructure:"format" yaml:"format"`
	Serial         serial.Config `mapstructure:"serial" yaml:"serial"`
	LogLevel       string        `mapstructure:"log_level" yaml:"log_level"`
}

// DefaultFrequencies returns the textual form of pipeline.DefaultFrequencies.
func DefaultFrequencies() []string {
	return []string{"pi", "pi/2", "2*pi"}
}

// SetDefaults registers the stock settings on v.
func SetDefaults(v *viper.Viper) {
	def := pipeline.DefaultConfig()
	v.SetDefault(KeyAmplitude, def.Amplitude)
	v.SetDefault(KeySampleInterval, def.SampleInterval)
	v.SetDefault(KeySamples, def.Samples)
	v.SetDefault(KeyFrequencies, DefaultFrequencies())
	v.SetDefault(KeyDelay, def.Delay)
	v.SetDefault(KeyBackend, def.Backend)
	v.SetDefault(KeyComponent, def.Component.String())
	v.SetDefault(KeyFormat, emit.FormatNameTuple)
	v.SetDefault(KeySerialPort, "")
	v.SetDefault(KeySerialBaud, serial.DefaultBaud)
	v.SetDefault(KeyLogLevel, logging.DefaultLevel)
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads file into v when non-empty and decodes the merged settings.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	return cfg, nil
}

// Pipeline converts the textual settings into a validated pipeline.Config.
func (c Config) Pipeline() (pipeline.Config, error) {
	freqs, err := ParseFrequencies(c.Frequencies)
	if err != nil {
		return pipeline.Config{}, fmt.Errorf("config: %w", err)
	}
	component, err := spectrum.ParseComponent(c.Component)
	if err != nil {
		return pipeline.Config{}, fmt.Errorf("config: %w", err)
	}
	format, err := emit.ParseFormat(c.Format)
	if err != nil {
		return pipeline.Config{}, fmt.Errorf("config: %w", err)
	}

	pc := pipeline.Config{
		Amplitude:      c.Amplitude,
		SampleInterval: c.SampleInterval,
		Samples:        c.Samples,
		Frequencies:    freqs,
		Delay:          c.Delay,
		Backend:        c.Backend,
		Component:      component,
		Format:         format,
	}
	if err := pc.Validate(); err != nil {
		return pipeline.Config{}, fmt.Errorf("config: %w", err)
	}
	return pc, nil
}

// MarshalYAML renders the delay as a duration string rather than nanoseconds.
func (c Config) MarshalYAML() (any, error) {
	type plain Config
	return struct {
		plain `yaml:",inline"`
		Delay string `yaml:"delay"`
	}{plain(c), c.Delay.String()}, nil
}

// YAML renders c as a YAML document.
func (c Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: encode yaml: %w", err)
	}
	return out, nil
}
