package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Dlanzas-cyber/PortfolioSentinel/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		in     Inputs
		short  model.RiskLevel
		medium model.RiskLevel
		long   model.RiskLevel
	}{
		{
			name:   "calm defensive stock",
			in:     Inputs{Beta: 0.8, RSI: 50, BollingerPosition: model.BandMiddle},
			short:  model.RiskLow,
			medium: model.RiskLow,
			long:   model.RiskLow,
		},
		{
			name:   "overbought momentum spike",
			in:     Inputs{Beta: 0.9, RSI: 75, VolumeDeviationPct: 60, BollingerPosition: model.BandUpper},
			short:  model.RiskHigh,
			medium: model.RiskMedium,
			long:   model.RiskLow,
		},
		{
			name:   "high beta growth stock",
			in:     Inputs{Beta: 1.9, RSI: 55, BollingerPosition: model.BandMiddle},
			short:  model.RiskLow,
			medium: model.RiskMedium,
			long:   model.RiskMedium,
		},
		{
			name:   "moderate beta at upper band",
			in:     Inputs{Beta: 1.2, RSI: 65, BollingerPosition: model.BandUpper},
			short:  model.RiskMedium,
			medium: model.RiskMedium,
			long:   model.RiskLow,
		},
		{
			name:   "oversold counts as short-term risk",
			in:     Inputs{Beta: 1.0, RSI: 25, BollingerPosition: model.BandLower},
			short:  model.RiskMedium,
			medium: model.RiskLow,
			long:   model.RiskLow,
		},
		{
			name:   "missing RSI contributes nothing",
			in:     Inputs{Beta: 1.0, RSI: 0, BollingerPosition: model.BandMiddle},
			short:  model.RiskLow,
			medium: model.RiskLow,
			long:   model.RiskLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.in)
			assert.Equal(t, tt.short, got.ShortTerm, "short term")
			assert.Equal(t, tt.medium, got.MediumTerm, "medium term")
			assert.Equal(t, tt.long, got.LongTerm, "long term")
		})
	}
}

func TestToLevelBoundaries(t *testing.T) {
	assert.Equal(t, model.RiskLow, toLevel(0))
	assert.Equal(t, model.RiskMedium, toLevel(1))
	assert.Equal(t, model.RiskMedium, toLevel(2))
	assert.Equal(t, model.RiskHigh, toLevel(3))
	assert.Equal(t, model.RiskHigh, toLevel(5))
}
