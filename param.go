package wave

import (
	"fmt"
	"reflect"
)

// Param is a frequency or amplitude argument: either a constant or a function
// of elapsed time in seconds. The zero Param is the constant 0. Immutable.
type Param struct {
	c  float64
	fn func(float64) float64
}

func Const(x float64) Param {
	return Param{c: x}
}

func Fn(f func(float64) float64) Param {
	return Param{fn: f}
}

// ParamOf adapts a dynamically typed value: any numeric kind becomes a
// constant, a func(float64) float64 becomes time-varying. Anything else fails
// with ErrInvalidParameter here, never at evaluation.
func ParamOf(v interface{}) (Param, error) {
	if f, ok := v.(func(float64) float64); ok {
		return Fn(f), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return Const(rv.Float()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Const(float64(rv.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Const(float64(rv.Uint())), nil
	}
	return Param{}, fmt.Errorf("%T: %w", v, ErrInvalidParameter)
}

// At evaluates the Param at time t.
func (p Param) At(t float64) float64 {
	if p.fn != nil {
		return p.fn(t)
	}
	return p.c
}

func (p Param) IsConst() bool {
	return p.fn == nil
}

// Sweep returns a frequency Param that moves linearly from f0 to f1 over
// duration seconds and holds f1 afterwards.
func Sweep(f0, f1, duration float64) Param {
	if duration <= 0 {
		return Const(f1)
	}
	return Fn(func(t float64) float64 {
		if t >= duration {
			return f1
		}
		return f0 + (f1-f0)*t/duration
	})
}
