package calculator

// RSI computes the Wilder-smoothed Relative Strength Index.
// Requires at least period+1 values. Result is rounded to 2 decimals and is
// exactly 100 when the smoothed average loss is zero.
func RSI(closes []float64, period int) (float64, error) {
	if period <= 0 || len(closes) < period+1 {
		return 0, ErrInsufficientData
	}

	changes := make([]float64, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		changes[i-1] = closes[i] - closes[i-1]
	}

	// Seed with the simple mean of the first `period` changes.
	var avgGain, avgLoss float64
	for _, c := range changes[:period] {
		if c > 0 {
			avgGain += c
		} else {
			avgLoss -= c
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	// Wilder smoothing over the remaining changes.
	for _, c := range changes[period:] {
		gain, loss := 0.0, 0.0
		if c > 0 {
			gain = c
		} else {
			loss = -c
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
	}

	if avgLoss == 0 {
		return 100.0, nil
	}
	rs := avgGain / avgLoss
	return round2(100.0 - 100.0/(1.0+rs)), nil
}
