package calculator

import (
	"math"

	"github.com/Dlanzas-cyber/PortfolioSentinel/internal/model"
)

const (
	bollingerPeriod = 20
	bollingerK      = 2.0
)

// Bollinger computes the 20-session mean and ±2σ bands (population standard
// deviation) and classifies where the latest close sits.
func Bollinger(closes []float64) (*model.BollingerBands, error) {
	if len(closes) < bollingerPeriod {
		return nil, ErrInsufficientData
	}

	window := closes[len(closes)-bollingerPeriod:]
	current := closes[len(closes)-1]

	mean := 0.0
	for _, v := range window {
		mean += v
	}
	mean /= float64(len(window))

	variance := 0.0
	for _, v := range window {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(window))
	sigma := math.Sqrt(variance)

	bands := &model.BollingerBands{
		Upper:  round2(mean + bollingerK*sigma),
		Middle: round2(mean),
		Lower:  round2(mean - bollingerK*sigma),
	}
	switch {
	case current > bands.Upper:
		bands.Position = model.BandUpper
	case current < bands.Lower:
		bands.Position = model.BandLower
	default:
		bands.Position = model.BandMiddle
	}
	return bands, nil
}
