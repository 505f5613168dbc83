// Package risk grades short, medium and long-term risk from volatility
// sensitivity (beta) and the current technical posture.
package risk

import "github.com/Dlanzas-cyber/PortfolioSentinel/internal/model"

// Inputs carries the indicator state the classifier consumes. RSI of 0 means
// the oscillator was unavailable and contributes nothing.
type Inputs struct {
	Beta               float64
	RSI                float64
	VolumeDeviationPct float64
	BollingerPosition  model.BandPosition
}

// Classify derives the three horizon risk levels via additive thresholds.
//
// Short-term risk is momentum-driven (RSI extremes, upper band, volume
// spikes); medium-term mixes beta and the band position; long-term weighs
// beta alone with higher cutoffs.
func Classify(in Inputs) model.RiskProfile {
	short := 0
	if in.RSI > 70 {
		short += 2
	} else if in.RSI > 0 && in.RSI < 30 {
		short++
	}
	if in.BollingerPosition == model.BandUpper {
		short += 2
	}
	if in.VolumeDeviationPct > 50 {
		short++
	}

	medium := 0
	if in.Beta > 1.5 {
		medium += 2
	} else if in.Beta > 1.0 {
		medium++
	}
	if in.BollingerPosition == model.BandUpper {
		medium++
	}

	long := 0
	if in.Beta > 1.8 {
		long += 2
	} else if in.Beta > 1.3 {
		long++
	}

	return model.RiskProfile{
		ShortTerm:  toLevel(short),
		MediumTerm: toLevel(medium),
		LongTerm:   toLevel(long),
	}
}

func toLevel(score int) model.RiskLevel {
	switch {
	case score >= 3:
		return model.RiskHigh
	case score >= 1:
		return model.RiskMedium
	default:
		return model.RiskLow
	}
}
