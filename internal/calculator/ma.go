package calculator

import (
	"errors"
	"math"
)

// ErrInsufficientData is returned when a series is too short for the
// requested indicator. Callers treat it as "indicator unavailable", not as a
// failure: scoring proceeds with neutral defaults.
var ErrInsufficientData = errors.New("not enough data")

// round2 rounds to 2 decimals, the precision all price-level values use.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// SMA computes the simple moving average over the last `period` values.
func SMA(values []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(values) < period {
		return 0, ErrInsufficientData
	}
	sum := 0.0
	for _, v := range values[len(values)-period:] {
		sum += v
	}
	return round2(sum / float64(period)), nil
}

// EMA computes the exponential moving average over the full series, seeded
// with the simple mean of the first `period` values.
func EMA(values []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(values) < period {
		return 0, ErrInsufficientData
	}
	k := 2.0 / float64(period+1)
	ema := 0.0
	for _, v := range values[:period] {
		ema += v
	}
	ema /= float64(period)
	for _, v := range values[period:] {
		ema = (v-ema)*k + ema
	}
	return round2(ema), nil
}
