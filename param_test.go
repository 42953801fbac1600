package wave

import (
	"errors"
	"math"
	"testing"
)

func TestParamOf(t *testing.T) {
	for _, c := range []struct {
		in   interface{}
		want float64
	}{
		{3, 3},
		{int16(-7), -7},
		{uint8(9), 9},
		{2.5, 2.5},
		{float32(1.5), 1.5},
		{func(t float64) float64 { return 2 * t }, 8},
	} {
		p, err := ParamOf(c.in)
		if err != nil {
			t.Fatalf("ParamOf(%v): %v", c.in, err)
		}
		if got := p.At(4); got != c.want {
			t.Errorf("ParamOf(%v).At(4) = %v, want %v", c.in, got, c.want)
		}
	}

	for _, in := range []interface{}{"440", nil, []float64{1}, func(int) int { return 0 }} {
		if _, err := ParamOf(in); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("ParamOf(%#v) = %v, want ErrInvalidParameter", in, err)
		}
	}
}

func TestConstIgnoresTime(t *testing.T) {
	p := Const(440)
	for _, tm := range []float64{0, .5, 1e6} {
		if p.At(tm) != 440 {
			t.Fatalf("At(%v) = %v", tm, p.At(tm))
		}
	}
	if !p.IsConst() {
		t.Error("Const not IsConst")
	}
	if Fn(func(float64) float64 { return 0 }).IsConst() {
		t.Error("Fn is IsConst")
	}
}

func TestSweep(t *testing.T) {
	p := Sweep(100, 200, 1)
	for _, c := range []struct{ t, want float64 }{
		{0, 100},
		{.5, 150},
		{1, 200},
		{2, 200},
	} {
		if got := p.At(c.t); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("At(%v) = %v, want %v", c.t, got, c.want)
		}
	}
	if got := Sweep(100, 200, 0).At(0); got != 200 {
		t.Errorf("zero-duration sweep At(0) = %v, want 200", got)
	}
}

func TestADSR(t *testing.T) {
	p := ADSR(.1, .1, .5, .2, 1)
	for _, c := range []struct{ t, want float64 }{
		{-1, 0},
		{0, 0},
		{.05, .5},
		{.1, 1},
		{.15, .75},
		{.2, .5},
		{.5, .5},
		{.9, .25},
		{1, 0},
	} {
		if got := p.At(c.t); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("At(%v) = %v, want %v", c.t, got, c.want)
		}
	}
}
