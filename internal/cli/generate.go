package cli

import (
	"io"

	"github.com/spf13/cobra"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	Output string
	Index  int
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{}

	cmd := &cobra.Command{
		Use:   "generate <request.yaml>",
		Short: "Write synthesized samples as CSV or JSON",
		Long: `Synthesize the waveform described by a request file and write its
(time, value) samples. Output goes to stdout unless --output is set.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().IntVar(&opts.Index, "index", -1, "waveform index to sample (default first)")

	return cmd
}

func runGenerate(rootOpts *RootOptions, opts *GenerateOptions, path string, cmd *cobra.Command) error {
	out, _, err := synthesizeFile(rootOpts, path, opts.Index)
	if err != nil {
		return err
	}

	if opts.Output == "" {
		return writeSeries(cmd.OutOrStdout(), rootOpts.Format, out)
	}

	err = writeFile(opts.Output, func(w io.Writer) error {
		return writeSeries(w, rootOpts.Format, out)
	})
	if err != nil {
		return err
	}

	rootOpts.Logger.Info("samples written", "path", opts.Output, "format", rootOpts.Format)
	return nil
}
