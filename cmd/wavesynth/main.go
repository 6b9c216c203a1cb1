// Command wavesynth synthesizes sampled waveforms described in a YAML
// request file.
//
// Usage:
//
//	wavesynth generate [-o out.csv] [--index N] request.yaml
//	wavesynth plot -o out.png [--width W] [--height H] request.yaml
//	wavesynth stats request.yaml
//	wavesynth kinds
//
// Example request:
//
//	sample_rate: 8000
//	seed: 42
//	waveforms:
//	  - kind: sine
//	    frequency: 440
//	    duration: 0.5
//	    amplitude: 0.8
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/cwbudde/algo-wavesynth/internal/cli"
)

func main() {
	var logLevel slog.LevelVar
	logLevel.Set(slog.LevelWarn)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: &logLevel}))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := cli.NewRootCommand(logger, &logLevel).ExecuteContext(ctx); err != nil {
		logger.Error(err.Error())

		cancel()
		os.Exit(1)
	}
}
