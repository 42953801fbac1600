package wave_test

import (
	"fmt"

	"github.com/audiolab/wave"
)

func Example() {
	a, _ := wave.New(wave.Const(440), wave.Const(1), 1, 8000, wave.Sine)
	e, _ := wave.New(wave.Const(660), wave.ADSR(.1, .2, .6, .3, 1), 1, 8000, wave.Saw)

	chord, _ := a.Add(e)
	tail, _ := wave.New(wave.Sweep(880, 220, .5), wave.Const(1), .5, 8000, wave.Triangle)
	chord.Append(tail, 1)

	fmt.Println(chord.Significance, chord.Duration)
	// Output: 1 1.5
}
