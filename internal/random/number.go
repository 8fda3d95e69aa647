package random

// Int returns random integer in [min, max)
func Int(min, max int) int {
	if max <= min {
		return min
	}
	return rnd.Intn(max-min) + min
}

// Float returns random float in [min, max)
func Float(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + rnd.Float64()*(max-min)
}

// Pick returns random element of given values
func Pick[T any](values ...T) T {
	return values[rnd.Intn(len(values))]
}
