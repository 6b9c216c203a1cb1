package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-wavesynth/internal/render"
)

// PlotOptions holds flags for the plot command.
type PlotOptions struct {
	Output        string
	Index         int
	Width         int
	Height        int
	NoAnnotations bool
}

// NewPlotCommand creates the plot command.
func NewPlotCommand(rootOpts *RootOptions) *cobra.Command {
	def := render.DefaultOptions()
	opts := &PlotOptions{}

	cmd := &cobra.Command{
		Use:          "plot <request.yaml>",
		Short:        "Render the synthesized waveform as a PNG line plot",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(rootOpts, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output PNG file (required)")
	cmd.Flags().IntVar(&opts.Index, "index", -1, "waveform index to sample (default first)")
	cmd.Flags().IntVar(&opts.Width, "width", def.Width, "image width in pixels")
	cmd.Flags().IntVar(&opts.Height, "height", def.Height, "image height in pixels")
	cmd.Flags().BoolVar(&opts.NoAnnotations, "no-annotations", false, "disable text annotations")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runPlot(rootOpts *RootOptions, opts *PlotOptions, path string) error {
	out, s, err := synthesizeFile(rootOpts, path, opts.Index)
	if err != nil {
		return err
	}

	plotter, err := render.NewPlotter(render.Options{
		Width:      opts.Width,
		Height:     opts.Height,
		Title:      s.Waveforms()[selectedIndex(opts.Index)].String(),
		SampleRate: s.Config().SampleRate,
		Annotate:   !opts.NoAnnotations,
	})
	if err != nil {
		return err
	}

	err = writeFile(opts.Output, func(w io.Writer) error {
		return plotter.WritePNG(w, out)
	})
	if err != nil {
		return err
	}

	rootOpts.Logger.Info("plot written", "path", opts.Output, "width", opts.Width, "height", opts.Height)
	return nil
}
