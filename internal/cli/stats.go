package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	timestats "github.com/cwbudde/algo-wavesynth/stats/time"
)

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	var index int

	cmd := &cobra.Command{
		Use:          "stats <request.yaml>",
		Short:        "Print time-domain statistics of the synthesized waveform",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _, err := synthesizeFile(rootOpts, args[0], index)
			if err != nil {
				return err
			}

			st := timestats.FromSeries(out)
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			rows := []struct {
				name  string
				value string
			}{
				{"Samples", fmt.Sprintf("%d", st.Length)},
				{"Start [s]", fmt.Sprintf("%g", st.Start)},
				{"End [s]", fmt.Sprintf("%g", st.End)},
				{"Min", fmt.Sprintf("%g", st.Min)},
				{"Max", fmt.Sprintf("%g", st.Max)},
				{"Mean", fmt.Sprintf("%g", st.DC)},
				{"RMS", fmt.Sprintf("%g", st.RMS)},
				{"Peak", fmt.Sprintf("%g", st.Peak)},
				{"Std dev", fmt.Sprintf("%g", st.StdDev)},
				{"Zero crossings", fmt.Sprintf("%d", st.ZeroCrossings)},
			}
			for _, r := range rows {
				if _, err := fmt.Fprintf(tw, "%s\t%s\n", r.name, r.value); err != nil {
					return fmt.Errorf("writing stats: %w", err)
				}
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVar(&index, "index", -1, "waveform index to sample (default first)")

	return cmd
}
