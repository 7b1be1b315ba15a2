package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-tonefft/dsp/transform"
)

var backendNotes = map[string]string{
	transform.NameAuto:    "algofft for power-of-two lengths, gonum otherwise",
	transform.NameAlgoFFT: "algo-fft plans, power-of-two lengths",
	transform.NameGonum:   "gonum dsp/fourier, any length",
	transform.NameGoDSP:   "mjibson/go-dsp, any length",
	transform.NameDirect:  "direct O(n^2) DFT sum, any length",
}

func newBackendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List transform backends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, name := range transform.Names() {
				if _, err := fmt.Fprintf(tw, "%s\t%s\n", name, backendNotes[name]); err != nil {
					return err
				}
			}
			return tw.Flush()
		},
	}
}
