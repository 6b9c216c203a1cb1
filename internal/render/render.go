// Package render draws synthesized series as annotated PNG line plots.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/golang/freetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/cwbudde/algo-wavesynth/dsp/core"
	timestats "github.com/cwbudde/algo-wavesynth/stats/time"
)

const (
	dpi      float64 = 72
	fontSize float64 = 12
	spacing  float64 = 1.3
	margin           = 40
	minSize          = 2*margin + 16
)

var (
	backgroundColor = color.RGBA{R: 0x10, G: 0x12, B: 0x18, A: 0xff}
	axisColor       = color.RGBA{R: 0x60, G: 0x66, B: 0x70, A: 0xff}
	traceColor      = color.RGBA{R: 0x4f, G: 0xc3, B: 0xf7, A: 0xff}

	errEmptySeries = errors.New("render: series is empty")
)

// Options configures a Plotter.
type Options struct {
	Width      int
	Height     int
	Title      string
	SampleRate float64 // shown in the annotation when > 0
	Annotate   bool
}

// DefaultOptions returns a 1024x400 annotated plot.
func DefaultOptions() Options {
	return Options{
		Width:    1024,
		Height:   400,
		Annotate: true,
	}
}

// Plotter renders series into RGBA images.
type Plotter struct {
	opts    Options
	context *freetype.Context
}

// NewPlotter validates opts and prepares the annotation font.
func NewPlotter(opts Options) (*Plotter, error) {
	if opts.Width < minSize || opts.Height < minSize {
		return nil, fmt.Errorf("render: image must be at least %dx%d: %dx%d", minSize, minSize, opts.Width, opts.Height)
	}

	parsedFont, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}

	ctx := freetype.NewContext()
	ctx.SetDPI(dpi)
	ctx.SetFont(parsedFont)
	ctx.SetFontSize(fontSize)
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull)

	return &Plotter{opts: opts, context: ctx}, nil
}

// Render draws s and returns the image.
func (p *Plotter) Render(s core.Series) (*image.RGBA, error) {
	if len(s) == 0 {
		return nil, errEmptySeries
	}

	img := image.NewRGBA(image.Rect(0, 0, p.opts.Width, p.opts.Height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: backgroundColor}, image.Point{}, draw.Src)

	st := timestats.FromSeries(s)
	v := newViewport(p.opts.Width, p.opts.Height, st)

	p.drawAxes(img, v)
	p.drawTrace(img, v, s)

	if p.opts.Annotate {
		if err := p.annotate(img, st); err != nil {
			return nil, err
		}
	}
	return img, nil
}

// WritePNG renders s and encodes it as PNG into w.
func (p *Plotter) WritePNG(w io.Writer, s core.Series) error {
	img, err := p.Render(s)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// viewport maps sample coordinates to pixels inside the plot margins.
type viewport struct {
	x0, y0, x1, y1 int
	tMin, tMax     float64
	vMin, vMax     float64
}

func newViewport(width, height int, st timestats.Stats) viewport {
	v := viewport{
		x0: margin, y0: margin,
		x1: width - margin, y1: height - margin,
		tMin: st.Start, tMax: st.End,
		vMin: st.Min, vMax: st.Max,
	}
	if !core.IsFinite(v.vMin) || !core.IsFinite(v.vMax) {
		v.vMin, v.vMax = -1, 1
	}
	if v.tMax <= v.tMin {
		v.tMax = v.tMin + 1
	}
	if core.NearlyEqual(v.vMin, v.vMax, 0) {
		v.vMin, v.vMax = v.vMin-1, v.vMax+1
	}
	return v
}

func (v viewport) point(t, value float64) image.Point {
	fx := (t - v.tMin) / (v.tMax - v.tMin)
	fy := (value - v.vMin) / (v.vMax - v.vMin)
	return image.Point{
		X: v.x0 + int(math.Round(fx*float64(v.x1-v.x0))),
		Y: v.y1 - int(math.Round(fy*float64(v.y1-v.y0))),
	}
}

func (p *Plotter) drawAxes(img *image.RGBA, v viewport) {
	for x := v.x0; x <= v.x1; x++ {
		img.Set(x, v.y1, axisColor)
	}
	for y := v.y0; y <= v.y1; y++ {
		img.Set(v.x0, y, axisColor)
	}
	if v.vMin < 0 && v.vMax > 0 {
		zero := v.point(v.tMin, 0).Y
		for x := v.x0; x <= v.x1; x += 4 {
			img.Set(x, zero, axisColor)
		}
	}
}

func (p *Plotter) drawTrace(img *image.RGBA, v viewport, s core.Series) {
	var prev image.Point
	havePrev := false
	for _, smp := range s {
		if !core.IsFinite(smp.Value) {
			havePrev = false
			continue
		}
		pt := v.point(smp.Time, smp.Value)
		if havePrev {
			line(img, prev, pt, traceColor)
		} else {
			img.Set(pt.X, pt.Y, traceColor)
		}
		prev, havePrev = pt, true
	}
}

// line draws a Bresenham segment from a to b.
func line(img *image.RGBA, a, b image.Point, c color.Color) {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}

	e := dx + dy
	for {
		img.Set(a.X, a.Y, c)
		if a == b {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			a.X += sx
		}
		if e2 <= dx {
			e += dx
			a.Y += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func (p *Plotter) annotate(img *image.RGBA, st timestats.Stats) error {
	p.context.SetClip(img.Bounds())
	p.context.SetDst(img)

	lines := []string{}
	if p.opts.Title != "" {
		lines = append(lines, p.opts.Title)
	}
	info := fmt.Sprintf("%s samples, t = %.4g s to %.4g s", humanize.Comma(int64(st.Length)), st.Start, st.End)
	if p.opts.SampleRate > 0 {
		info += ", fs = " + HumanHz(p.opts.SampleRate)
	}
	lines = append(lines, info, fmt.Sprintf("min %.4g  max %.4g  rms %.4g", st.Min, st.Max, st.RMS))

	pt := freetype.Pt(margin+4, margin/2)
	for _, s := range lines {
		if _, err := p.context.DrawString(s, pt); err != nil {
			return fmt.Errorf("drawing annotation: %w", err)
		}
		pt.Y += p.context.PointToFixed(fontSize * spacing)
	}
	return nil
}

// HumanHz formats a frequency with an SI prefix, e.g. "48.00 kHz".
func HumanHz(hz float64) string {
	v, suffix := humanize.ComputeSI(hz)
	return fmt.Sprintf("%0.2f %sHz", v, suffix)
}
