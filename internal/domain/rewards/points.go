// Package rewards implements the loyalty points rule and the pure functions that
// aggregate and filter transactions into report rows. Nothing here mutates its
// inputs or keeps state between calls.
package rewards

import (
	"encoding/json"
	"math"

	"github.com/diillson/rewards-dashboard-go/internal/domain/entity"
	"github.com/shopspring/decimal"
)

const (
	lowerThreshold = 50.0
	upperThreshold = 100.0
	// pontos da faixa 50-100 quando o valor passa de 100
	middleTierCap = upperThreshold - lowerThreshold
)

// CalculateTransactionPoints converts an amount into reward points:
//
//	amount <= 50        -> 0
//	50 < amount <= 100  -> floor(amount - 50)
//	amount > 100        -> floor(50 + (amount - 100) * 2)
//
// The amount is coerced to a number first. Anything that does not coerce to a
// finite, non-negative number yields 0.
func CalculateTransactionPoints(amount any) int {
	v, ok := toNumber(amount)
	if !ok || v < 0 {
		return 0
	}
	switch {
	case v <= lowerThreshold:
		return 0
	case v <= upperThreshold:
		return int(math.Floor(v - lowerThreshold))
	default:
		return int(math.Floor(middleTierCap + (v-upperThreshold)*2))
	}
}

func toNumber(amount any) (float64, bool) {
	var v float64
	switch a := amount.(type) {
	case entity.Amount:
		return a.Float64()
	case *entity.Amount:
		if a == nil {
			return 0, false
		}
		return a.Float64()
	case float64:
		v = a
	case float32:
		v = float64(a)
	case int:
		v = float64(a)
	case int8:
		v = float64(a)
	case int16:
		v = float64(a)
	case int32:
		v = float64(a)
	case int64:
		v = float64(a)
	case uint:
		v = float64(a)
	case uint8:
		v = float64(a)
	case uint16:
		v = float64(a)
	case uint32:
		v = float64(a)
	case uint64:
		v = float64(a)
	case decimal.Decimal:
		v = a.InexactFloat64()
	case json.Number:
		return entity.ParseNumber(string(a))
	case string:
		return entity.ParseNumber(a)
	default:
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
