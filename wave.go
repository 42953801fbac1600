// Package wave synthesizes mono sample buffers from parametric generators and
// composes them by mixing, scaling and sequencing. Each buffer carries a
// significance count of how many unit-scale voices were summed into it; divide
// by it before playback or export to restore unit amplitude.
package wave

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidParameter   = errors.New("param must be a number or a func(float64) float64")
	ErrInvalidArgument    = errors.New("duration must be non-negative and sample rate positive")
	ErrSampleRateMismatch = errors.New("sample rates differ")
	ErrNotMono            = errors.New("not a mono source")
)

// Wave is a mono signal buffer. Duration is nominal and may drift slightly
// from len(Samples)/SampleRate after composition. Significance is always >= 1.
// A Wave has one logical owner at a time: Scale and Append mutate unguarded.
type Wave struct {
	Samples      []float64
	SampleRate   int
	Duration     float64
	Significance int
}

// New synthesizes a buffer of duration seconds at sampleRate from a frequency
// and amplitude Param and a unit-period shape. With a constant frequency the
// phase at time t is simply t*f. A time-varying frequency is integrated by
// left Riemann sum, so its sample count follows the stepping loop and may
// exceed the constant-mode count by one at fractional boundaries.
func New(freq, amp Param, duration float64, sampleRate int, shape Shape) (*Wave, error) {
	if duration < 0 || sampleRate <= 0 {
		return nil, fmt.Errorf("duration %v, sample rate %d: %w", duration, sampleRate, ErrInvalidArgument)
	}
	w := &Wave{SampleRate: sampleRate, Duration: duration, Significance: 1}
	dt := 1 / float64(sampleRate)
	if freq.IsConst() {
		f := freq.At(0)
		w.Samples = make([]float64, int(float64(sampleRate)*duration))
		for i := range w.Samples {
			t := float64(i) * dt
			w.Samples[i] = shape(t*f) * amp.At(t)
		}
		return w, nil
	}
	var t, phase float64
	for t < duration {
		phase += freq.At(t) * dt
		w.Samples = append(w.Samples, shape(phase)*amp.At(t))
		t += dt
	}
	return w, nil
}

// Copy returns an independent buffer; the sample slice is duplicated.
func (w *Wave) Copy() *Wave {
	c := *w
	c.Samples = append([]float64(nil), w.Samples...)
	return &c
}

// Scale multiplies every sample by k in place and returns w for chaining.
// Significance is unchanged.
func (w *Wave) Scale(k float64) *Wave {
	for i := range w.Samples {
		w.Samples[i] *= k
	}
	return w
}

// Multiply returns a scaled copy, leaving w unmodified.
func (w *Wave) Multiply(k float64) *Wave {
	return w.Copy().Scale(k)
}

// Add mixes two buffers elementwise into a new Wave, treating indexes past
// the shorter buffer as zero. Significances sum, so the result still plays at
// unit scale after normalization. Neither operand is modified.
func (w *Wave) Add(other *Wave) (*Wave, error) {
	if w.SampleRate != other.SampleRate {
		return nil, fmt.Errorf("add %d Hz to %d Hz: %w", other.SampleRate, w.SampleRate, ErrSampleRateMismatch)
	}
	sum := &Wave{
		Samples:      make([]float64, max(len(w.Samples), len(other.Samples))),
		SampleRate:   w.SampleRate,
		Duration:     math.Max(w.Duration, other.Duration),
		Significance: w.Significance + other.Significance,
	}
	for i := range sum.Samples {
		var x, y float64
		if i < len(w.Samples) {
			x = w.Samples[i]
		}
		if i < len(other.Samples) {
			y = other.Samples[i]
		}
		sum.Samples[i] = x + y
	}
	return sum, nil
}

// Append sequences other after w in time. Both buffers are renormalized
// first, so their prior significance bookkeeping is discarded and w ends up
// with newSignificance (>= 1). Append consumes other: it is renormalized in
// place and its Significance reset to 1. Use AppendCopy to keep other intact.
func (w *Wave) Append(other *Wave, newSignificance int) error {
	if err := w.appendCheck(other, newSignificance); err != nil {
		return err
	}
	other.Scale(1 / float64(other.Significance))
	other.Significance = 1
	w.join(other.Samples, other.Duration, newSignificance)
	return nil
}

// AppendCopy is Append with a copy-first contract: a normalized copy of other
// is concatenated and other is never modified.
func (w *Wave) AppendCopy(other *Wave, newSignificance int) error {
	if err := w.appendCheck(other, newSignificance); err != nil {
		return err
	}
	norm := other.Multiply(1 / float64(other.Significance))
	w.join(norm.Samples, other.Duration, newSignificance)
	return nil
}

func (w *Wave) appendCheck(other *Wave, newSignificance int) error {
	if w.SampleRate != other.SampleRate {
		return fmt.Errorf("append %d Hz to %d Hz: %w", other.SampleRate, w.SampleRate, ErrSampleRateMismatch)
	}
	if newSignificance < 1 {
		return fmt.Errorf("significance %d: %w", newSignificance, ErrInvalidArgument)
	}
	return nil
}

func (w *Wave) join(samples []float64, duration float64, newSignificance int) {
	w.Duration += duration
	w.Scale(1 / float64(w.Significance))
	w.Samples = append(w.Samples, samples...)
	w.Significance = newSignificance
}
