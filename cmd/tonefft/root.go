package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-tonefft/internal/config"
	"github.com/cwbudde/algo-tonefft/internal/logging"
	"github.com/cwbudde/algo-tonefft/pipeline"
	"github.com/cwbudde/algo-tonefft/stream/emit"
	"github.com/cwbudde/algo-tonefft/stream/serial"
)

type app struct {
	v          *viper.Viper
	configFile string
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:   "tonefft",
		Short: "Stream the spectrum of a synthetic multi-tone signal",
		Long: `tonefft superposes sinusoids at the given angular frequencies,
computes the discrete Fourier transform of the sum and writes one spectral
value per line as "(<value>,)", pausing between lines.

Settings come from defaults, an optional YAML file (--config), TONEFFT_*
environment variables and flags, later sources overriding earlier ones.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          a.run,
	}

	def := pipeline.DefaultConfig()
	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "YAML config file")
	flags.Float64("amplitude", def.Amplitude, "shared tone amplitude")
	flags.Float64("dt", def.SampleInterval, "sample interval")
	flags.Int("samples", def.Samples, "number of samples (and spectrum bins)")
	flags.StringSlice("freq", config.DefaultFrequencies(), "angular tone frequency, repeatable (pi, pi/2, 2pi, 3.5)")
	flags.Duration("delay", def.Delay, "pause between output lines")
	flags.String("backend", def.Backend, "transform backend (see 'tonefft backends')")
	flags.String("component", def.Component.String(), "spectrum component to emit: real, imag, magnitude, power")
	flags.String("format", emit.FormatNameTuple, "line format: tuple or plain")
	flags.String("port", "", "serial port to write to instead of stdout")
	flags.Int("baud", serial.DefaultBaud, "serial baud rate")
	flags.String("log-level", logging.DefaultLevel, "log level (debug, info, warn, error)")

	bindFlags(a.v, flags, map[string]string{
		"amplitude": config.KeyAmplitude,
		"dt":        config.KeySampleInterval,
		"samples":   config.KeySamples,
		"freq":      config.KeyFrequencies,
		"delay":     config.KeyDelay,
		"backend":   config.KeyBackend,
		"component": config.KeyComponent,
		"format":    config.KeyFormat,
		"port":      config.KeySerialPort,
		"baud":      config.KeySerialBaud,
		"log-level": config.KeyLogLevel,
	})

	root.AddCommand(newConfigCmd(a), newBackendsCmd())
	return root
}

// bindFlags binds each flag to its viper key. Unset flags do not shadow values
// from the file or environment.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for name, key := range keys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", name, err))
		}
	}
}

func (a *app) load() (config.Config, error) {
	return config.Load(a.v, a.configFile)
}

func (a *app) run(cmd *cobra.Command, _ []string) error {
	cfg, err := a.load()
	if err != nil {
		return err
	}
	pc, err := cfg.Pipeline()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	out, closeOut, err := openOutput(cmd.OutOrStdout(), cfg.Serial)
	if err != nil {
		return err
	}
	defer closeOut()

	logger.Debug("starting run",
		zap.String("output", outputName(cfg.Serial)),
		zap.Strings("frequencies", cfg.Frequencies),
	)
	_, err = pipeline.Run(cmd.Context(), pc, out, logger)
	return err
}

func openOutput(stdout io.Writer, sc serial.Config) (io.Writer, func(), error) {
	if sc.Name == "" {
		return stdout, func() {}, nil
	}
	port, err := serial.Open(sc)
	if err != nil {
		return nil, nil, err
	}
	return port, func() { _ = port.Close() }, nil
}

func outputName(sc serial.Config) string {
	if sc.Name == "" {
		return "stdout"
	}
	return fmt.Sprintf("%s@%d", sc.Name, sc.Baud)
}
