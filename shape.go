package wave

import "math"

// Shape maps phase to amplitude and is expected to have period 1.
type Shape func(phase float64) float64

func Sine(phase float64) float64 {
	return math.Sin(2 * math.Pi * phase)
}

func Square(phase float64) float64 {
	if wrap(phase) < .5 {
		return 1
	}
	return -1
}

func Saw(phase float64) float64 {
	return 2*wrap(phase) - 1
}

func Triangle(phase float64) float64 {
	p := wrap(phase)
	if p < .5 {
		return 4*p - 1
	}
	return 3 - 4*p
}

func wrap(phase float64) float64 {
	_, p := math.Modf(phase)
	if p < 0 {
		p++
	}
	return p
}
