package calculator

import (
	"math"

	"github.com/shopspring/decimal"
)

// exactExponent holds every fractional digit of a float64
const exactExponent = -1100

// Round2 rounds v to two decimal places, half to even, working from v's exact
// binary value. Non-finite values are returned unchanged.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloatWithExponent(v, exactExponent).RoundBank(2).InexactFloat64()
}
