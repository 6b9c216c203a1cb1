// Package cli implements the wavesynth command line interface.
package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "csv" | "json"

	Logger *slog.Logger
	Level  *slog.LevelVar
}

// ValidFormats defines the allowed sample output formats.
var ValidFormats = []string{"csv", "json"}

// NewRootCommand creates the root command. A nil logger discards logs.
func NewRootCommand(logger *slog.Logger, level *slog.LevelVar) *cobra.Command {
	if level == nil {
		level = new(slog.LevelVar)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	opts := &RootOptions{Logger: logger, Level: level}

	cmd := &cobra.Command{
		Use:   "wavesynth",
		Short: "Synthesize sampled waveforms",
		Long: `Synthesize discretely sampled waveforms over a uniform time grid.

Waveforms are described in a YAML request file. Only the first registered
waveform is sampled unless --index selects another one; every waveform
contributes to the grid length.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if opts.Verbose {
				opts.Level.Set(slog.LevelDebug)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "csv", "sample output format (csv|json)")

	cmd.AddCommand(NewGenerateCommand(opts))
	cmd.AddCommand(NewPlotCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewKindsCommand(opts))

	return cmd
}
