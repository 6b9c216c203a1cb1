package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/cwbudde/algo-wavesynth/dsp/core"
)

type jsonSample struct {
	Time  float64  `json:"time"`
	Value *float64 `json:"value"`
}

// writeSeries writes s in the given format.
func writeSeries(w io.Writer, format string, s core.Series) error {
	switch format {
	case "json":
		return writeJSON(w, s)
	default:
		return writeCSV(w, s)
	}
}

// writeFile creates path and hands it to write. A failed close is reported
// when write itself succeeded.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output: %w", cerr)
		}
	}()

	return write(f)
}

func writeCSV(w io.Writer, s core.Series) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time", "value"}); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, p := range s {
		rec := []string{formatFloat(p.Time), formatFloat(p.Value)}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeJSON encodes s as an array of {time, value} objects. JSON has no
// NaN or Inf, so non-finite values are written as null.
func writeJSON(w io.Writer, s core.Series) error {
	out := make([]jsonSample, len(s))
	for i, p := range s {
		out[i].Time = p.Time
		if core.IsFinite(p.Value) {
			v := p.Value
			out[i].Value = &v
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
