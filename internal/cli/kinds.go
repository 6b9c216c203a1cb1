package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-wavesynth/dsp/waveform"
)

// kindParams lists the kind-specific request fields of each kind.
var kindParams = map[waveform.Kind][]string{
	waveform.KindSine:                 {"frequency", "phase_shift"},
	waveform.KindHalfWaveSine:         {"frequency", "phase_shift"},
	waveform.KindFullWaveSine:         {"frequency", "phase_shift"},
	waveform.KindUniformNoise:         nil,
	waveform.KindNormalNoise:          nil,
	waveform.KindSymmetricRectangular: {"frequency", "duty_cycle"},
	waveform.KindRectangular:          {"frequency", "duty_cycle"},
	waveform.KindTriangular:           {"frequency", "duty_cycle"},
	waveform.KindUnitJump:             {"flip_offset"},
	waveform.KindUnitPulse:            {"time_offset"},
	waveform.KindUnitNoise:            {"probability"},
}

// NewKindsCommand creates the kinds command.
func NewKindsCommand(_ *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "kinds",
		Short:        "List waveform kinds and their parameters",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			if _, err := fmt.Fprintf(tw, "Kind\tParameters\n----\t----------\n"); err != nil {
				return fmt.Errorf("writing header: %w", err)
			}
			for _, k := range waveform.Kinds() {
				params := append([]string{"duration", "start_offset", "amplitude"}, kindParams[k]...)
				if _, err := fmt.Fprintf(tw, "%s\t%s\n", k, strings.Join(params, ", ")); err != nil {
					return fmt.Errorf("writing row: %w", err)
				}
			}
			return tw.Flush()
		},
	}
}
