package wave

// ADSR returns an amplitude Param: linear attack to 1, linear decay to the
// sustain level, flat sustain, then a linear release that reaches 0 at
// duration. Outside [0, duration) it evaluates to 0.
func ADSR(attack, decay, sustain, release, duration float64) Param {
	return Fn(func(t float64) float64 {
		switch {
		case t < 0 || t >= duration:
			return 0
		case t < attack:
			return t / attack
		case t < attack+decay:
			return 1 + (sustain-1)*(t-attack)/decay
		case t < duration-release:
			return sustain
		default:
			return sustain * (duration - t) / release
		}
	})
}
