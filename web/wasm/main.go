//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cwbudde/algo-wavesynth/dsp/core"
	"github.com/cwbudde/algo-wavesynth/dsp/grid"
	"github.com/cwbudde/algo-wavesynth/dsp/synth"
	"github.com/cwbudde/algo-wavesynth/dsp/waveform"
)

var (
	synthesizer *synth.Synthesizer
	funcs       []js.Func
)

// adders maps exported registration names to their waveform constructors.
// Arguments follow the constructor parameter order.
var adders = map[string]struct {
	arity int
	build func(a []float64) (waveform.Waveform, error)
}{
	"addSine": {5, func(a []float64) (waveform.Waveform, error) {
		return waveform.NewSine(a[0], a[1], a[2], a[3], a[4])
	}},
	"addHalfWaveSine": {5, func(a []float64) (waveform.Waveform, error) {
		return waveform.NewHalfWaveSine(a[0], a[1], a[2], a[3], a[4])
	}},
	"addFullWaveSine": {5, func(a []float64) (waveform.Waveform, error) {
		return waveform.NewFullWaveSine(a[0], a[1], a[2], a[3], a[4])
	}},
	"addUniformNoise": {3, func(a []float64) (waveform.Waveform, error) {
		return waveform.NewUniformNoise(a[0], a[1], a[2])
	}},
	"addNormalNoise": {3, func(a []float64) (waveform.Waveform, error) {
		return waveform.NewNormalNoise(a[0], a[1], a[2])
	}},
	"addRectangular": {5, func(a []float64) (waveform.Waveform, error) {
		return waveform.NewRectangular(a[0], a[1], a[2], a[3], a[4])
	}},
	"addSymmetricRectangular": {5, func(a []float64) (waveform.Waveform, error) {
		return waveform.NewSymmetricRectangular(a[0], a[1], a[2], a[3], a[4])
	}},
	"addTriangular": {5, func(a []float64) (waveform.Waveform, error) {
		return waveform.NewTriangular(a[0], a[1], a[2], a[3], a[4])
	}},
	"addUnitJump": {4, func(a []float64) (waveform.Waveform, error) {
		return waveform.NewUnitJump(a[0], a[1], a[2], a[3])
	}},
	"addUnitPulse": {4, func(a []float64) (waveform.Waveform, error) {
		return waveform.NewUnitPulse(a[0], a[1], a[2], a[3])
	}},
	"addUnitNoise": {4, func(a []float64) (waveform.Waveform, error) {
		return waveform.NewUnitNoise(a[0], a[1], a[2], a[3])
	}},
}

func main() {
	api := js.Global().Get("Object").New()
	api.Set("init", export(func(args []js.Value) any {
		opts := []core.Option{}
		if len(args) > 0 {
			opts = append(opts, core.WithSampleRate(args[0].Float()))
		}
		if len(args) > 1 {
			opts = append(opts, core.WithStartTime(args[1].Float()))
		}
		var synthOpts []synth.Option
		if len(args) > 2 && args[2].Type() == js.TypeNumber {
			synthOpts = append(synthOpts, synth.WithSeed(uint64(args[2].Int())))
		}
		synthesizer = synth.NewWithOptions(opts, synthOpts...)
		return js.Null()
	}))

	for name, a := range adders {
		api.Set(name, export(func(args []js.Value) any {
			if synthesizer == nil {
				return "synthesizer not initialized"
			}
			if len(args) < a.arity {
				return name + ": not enough arguments"
			}
			vals := make([]float64, a.arity)
			for i := range vals {
				vals[i] = args[i].Float()
			}
			w, err := a.build(vals)
			if err != nil {
				return err.Error()
			}
			synthesizer.Add(w)
			return js.Null()
		}))
	}

	api.Set("getSignal", export(func(args []js.Value) any {
		if synthesizer == nil {
			return js.Global().Get("Array").New(0)
		}
		var (
			out core.Series
			err error
		)
		if len(args) > 0 {
			out, err = synthesizer.SynthesizeIndex(args[0].Int())
		} else {
			out, err = synthesizer.Synthesize()
		}
		if err != nil {
			return err.Error()
		}
		arr := js.Global().Get("Array").New(len(out))
		for i, p := range out {
			pair := js.Global().Get("Object").New()
			pair.Set("x", p.Time)
			pair.Set("y", p.Value)
			arr.SetIndex(i, pair)
		}
		return arr
	}))

	api.Set("linspace", export(func(args []js.Value) any {
		if len(args) < 3 {
			return js.Global().Get("Float64Array").New(0)
		}
		times, err := grid.Build(args[0].Float(), args[1].Float(), args[2].Float())
		if err != nil {
			return err.Error()
		}
		arr := js.Global().Get("Float64Array").New(len(times))
		for i, t := range times {
			arr.SetIndex(i, t)
		}
		return arr
	}))

	api.Set("kinds", export(func(args []js.Value) any {
		kinds := waveform.Kinds()
		arr := js.Global().Get("Array").New(len(kinds))
		for i, k := range kinds {
			arr.SetIndex(i, k.String())
		}
		return arr
	}))

	js.Global().Set("WaveSynth", api)
	select {}
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
