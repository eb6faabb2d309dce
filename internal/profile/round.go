package profile

import "math"

// RoundSigfig rounds v to the given number of significant figures. NaN,
// infinities and non-positive sigfig values pass through untouched.
func RoundSigfig(v float64, sigfig int) float64 {
	if sigfig <= 0 || v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}

	digits := math.Ceil(math.Log10(math.Abs(v)))
	magnitude := math.Pow(10, float64(sigfig)-digits)
	return math.Round(v*magnitude) / magnitude
}

// roundDecimals rounds v to the given number of decimal places.
func roundDecimals(v float64, places int) float64 {
	if places < 0 {
		places = 0
	}
	magnitude := math.Pow(10, float64(places))
	return math.Round(v*magnitude) / magnitude
}
