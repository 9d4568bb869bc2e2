package factory

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

var (
	minLong = decimal.NewFromInt(math.MinInt64)
	maxLong = decimal.NewFromInt(math.MaxInt64)
)

// canonicalFloat returns the shortest decimal text that reads back as the same float of a given bit size.
func canonicalFloat(v float64, bits int) string {
	return strconv.FormatFloat(v, 'g', -1, bits)
}

// floatToLong truncates v toward zero. It fails for NaN, infinities and values out of int64 range.
func floatToLong(v float64) (int64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	t := math.Trunc(v)
	// float64(math.MaxInt64) rounds up to 2^63
	if t < math.MinInt64 || t >= math.MaxInt64 {
		return 0, false
	}
	return int64(t), true
}

// decimalToLong truncates d toward zero. It fails for values out of int64 range.
func decimalToLong(d decimal.Decimal) (int64, bool) {
	t := d.Truncate(0)
	if t.LessThan(minLong) || t.GreaterThan(maxLong) {
		return 0, false
	}
	return t.IntPart(), true
}
