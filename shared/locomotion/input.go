package locomotion

// Axis folds a pair of digital directions and an analog reading into [-1, 1].
// Opposing digital inputs cancel. A nonzero analog value (already past the
// deadzone) wins over the digital pair so partial stick tilt is kept.
func Axis(negative, positive bool, analog float64) float64 {
	if analog != 0 {
		return clampUnit(analog)
	}
	var v float64
	if negative {
		v--
	}
	if positive {
		v++
	}
	return v
}

// Button maps a held flag to the 0/1 signal the controller expects.
func Button(pressed bool) float64 {
	if pressed {
		return 1
	}
	return 0
}

func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
