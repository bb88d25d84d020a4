package rounding

import (
	"github.com/shopspring/decimal"
)

// Places rounds v to the given number of decimal places, with halves rounded away from zero.
// The shortest decimal representation of v is rounded, so 1.005 becomes 1.01.
func Places(v float64, places int32) float64 {
	rounded, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return rounded
}

// Hundredths rounds v to 2 decimal places.
func Hundredths(v float64) float64 {
	return Places(v, 2)
}

// Integer rounds v to the nearest integer, with halves rounded away from zero.
func Integer(v float64) int64 {
	return decimal.NewFromFloat(v).Round(0).IntPart()
}
