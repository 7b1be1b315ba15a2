// Package serial opens serial ports as output sinks for the emitter.
package serial

import (
	"errors"
	"fmt"
	"io"

	goserial "github.com/tarm/goserial"
)

// DefaultBaud is the line rate used when Config.Baud is zero.
const DefaultBaud = 115200

// ErrNoPort is returned when no device name is configured.
var ErrNoPort = errors.New("serial: no port name configured")

// Config names a serial device and its line rate.
type Config struct {
	Name string `mapstructure:"port" yaml:"port"`
	Baud int    `mapstructure:"baud" yaml:"baud"`
}

var openPort = func(c *goserial.Config) (io.ReadWriteCloser, error) {
	return goserial.OpenPort(c)
}

// Open opens the configured port for writing.
func Open(cfg Config) (io.WriteCloser, error) {
	if cfg.Name == "" {
		return nil, ErrNoPort
	}
	if cfg.Baud == 0 {
		cfg.Baud = DefaultBaud
	}
	if cfg.Baud < 0 {
		return nil, fmt.Errorf("serial: baud must be > 0: %d", cfg.Baud)
	}

	port, err := openPort(&goserial.Config{Name: cfg.Name, Baud: cfg.Baud})
	if err != nil {
		return nil, fmt.Errorf("serial: open %s at %d baud: %w", cfg.Name, cfg.Baud, err)
	}
	return port, nil
}
