package calculator

import "math"

const (
	macdFastPeriod   = 12
	macdSlowPeriod   = 26
	macdSignalPeriod = 9
)

// MACD computes the MACD line (EMA12 − EMA26) and its signal line (EMA9 of
// the MACD series). Needs at least 26 closes; the signal line stays 0 until
// the MACD series itself has 9 values, i.e. 35 closes.
//
// The MACD series is built incrementally from running fast/slow EMAs, which
// yields the same numbers as recomputing both EMAs from scratch for every
// prefix because all variants seed with the simple mean of the first period.
func MACD(closes []float64) (value, signal float64, bullish bool, err error) {
	if len(closes) < macdSlowPeriod {
		return 0, 0, false, ErrInsufficientData
	}

	kFast := 2.0 / float64(macdFastPeriod+1)
	kSlow := 2.0 / float64(macdSlowPeriod+1)

	var fast, slow float64
	for _, v := range closes[:macdFastPeriod] {
		fast += v
	}
	fast /= float64(macdFastPeriod)
	for _, v := range closes[:macdSlowPeriod] {
		slow += v
	}
	slow /= float64(macdSlowPeriod)

	for i := macdFastPeriod; i < macdSlowPeriod; i++ {
		fast = (closes[i]-fast)*kFast + fast
	}

	// Both EMAs are seeded at index 25; each later close extends the MACD
	// series by one point.
	var series []float64
	for i := macdSlowPeriod; i < len(closes); i++ {
		fast = (closes[i]-fast)*kFast + fast
		slow = (closes[i]-slow)*kSlow + slow
		series = append(series, round2(fast)-round2(slow))
	}

	value = round4(round2(fast) - round2(slow))

	if len(series) >= macdSignalPeriod {
		s, emaErr := EMA(series, macdSignalPeriod)
		if emaErr == nil {
			signal = round4(s)
		}
	}
	return value, signal, value > signal, nil
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
