package cli

import (
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"

	"github.com/cwbudde/algo-wavesynth/dsp/core"
	"github.com/cwbudde/algo-wavesynth/dsp/synth"
	"github.com/cwbudde/algo-wavesynth/internal/render"
	"github.com/cwbudde/algo-wavesynth/internal/request"
)

// synthesizeFile loads the request at path and samples waveform index.
// A negative index selects the default (first) waveform.
func synthesizeFile(opts *RootOptions, path string, index int) (core.Series, *synth.Synthesizer, error) {
	log := opts.Logger

	doc, err := request.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("loading request: %w", err)
	}

	s, err := doc.Synthesizer()
	if err != nil {
		return nil, nil, fmt.Errorf("building synthesizer: %w", err)
	}

	log.Debug("request loaded",
		slog.String("path", path),
		slog.Int("waveforms", s.Len()),
		slog.String("sampleRate", render.HumanHz(s.Config().SampleRate)))

	var out core.Series
	if index < 0 {
		out, err = s.Synthesize()
	} else {
		out, err = s.SynthesizeIndex(index)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("synthesizing: %w", err)
	}

	log.Info("synthesized",
		slog.String("samples", humanize.Comma(int64(len(out)))),
		slog.Float64("start", s.Config().StartTime))

	return out, s, nil
}

func selectedIndex(index int) int {
	return max(index, 0)
}
