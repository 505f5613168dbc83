package calculator

import (
	"math"

	"github.com/Dlanzas-cyber/PortfolioSentinel/internal/model"
)

const volumeWindow = 30

// AnalyzeVolume compares the latest session volume against the trailing
// 30-day mean. Needs at least 30 bars.
func AnalyzeVolume(bars []model.PriceBar) (*model.VolumeAnalysis, error) {
	if len(bars) < volumeWindow {
		return nil, ErrInsufficientData
	}

	current := bars[len(bars)-1].Volume
	window := bars[len(bars)-volumeWindow:]
	avg := 0.0
	for _, b := range window {
		avg += b.Volume
	}
	avg /= float64(len(window))

	deviation := 0.0
	if avg > 0 {
		deviation = round2((current - avg) / avg * 100)
	}
	return &model.VolumeAnalysis{
		Current:      current,
		Average30d:   math.Round(avg),
		DeviationPct: deviation,
	}, nil
}
