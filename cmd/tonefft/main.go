// Command tonefft synthesizes a multi-tone signal, computes its discrete
// Fourier transform and streams one spectral value per line to stdout or a
// serial port, pacing lines with a fixed delay.
//
// Usage:
//
//	tonefft [flags]
//	tonefft config [flags]
//	tonefft backends
//
// Examples:
//
//	tonefft
//	tonefft --port /dev/ttyACM0 --baud 115200
//	tonefft --freq pi --freq pi/2 --freq 2pi --samples 1024 --dt 0.1
//	tonefft --component magnitude --format plain --delay 0
//	tonefft --config tonefft.yaml config
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
