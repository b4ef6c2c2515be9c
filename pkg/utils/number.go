package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// SafeRatio divide numer por denom retornando 0 quando o denominador é 0,
// nunca NaN ou Inf
func SafeRatio(numer, denom float64) float64 {
	if denom == 0 {
		return 0
	}

	return numer / denom
}
