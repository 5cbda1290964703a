package estimator

import (
	"math"

	"github.com/shopspring/decimal"
)

// ceilTo snaps v up to the next multiple of step. Exact multiples stay put.
func ceilTo(v, step decimal.Decimal) decimal.Decimal {
	return v.Div(step).Ceil().Mul(step)
}

// roundTo2Decimals rounds half away from zero; used for all money amounts.
func roundTo2Decimals(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func roundTo1Decimal(v float64) float64 {
	return decimal.NewFromFloat(v).Round(1).InexactFloat64()
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
