package narrative

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dlanzas-cyber/PortfolioSentinel/internal/model"
)

func richSnapshot() *model.CompanySnapshot {
	return &model.CompanySnapshot{
		Ticker: "ACME",
		Profile: &model.CompanyProfile{
			Name: "Acme Corp", Sector: "Industrials", Beta: 1.45,
		},
		Fundamentals: &model.FundamentalSnapshot{
			PERatio: 30.0, PriceToBook: 7.2,
			GrossMargin5yAvg: 46.0, SalesGrowth5y: 14.0, EPSGrowth5y: 12.0,
			DebtToEquity: 1.6, PayoutRatio: 40, HasBuyback: true,
		},
		Sector: &model.SectorBenchmark{
			PE: 24.1, PB: 5.8, GrossMargin: 40.0, DebtToEquity: 1.0,
		},
		Dividends: &model.DividendProfile{YieldAtBuy: 2.1, Growth3y: 8, Growth5y: 6.5, PaysDividend: true},
		Shares:    &model.SharesTrend{Outstanding: 2.4e9, Trend3y: -3.2},
	}
}

func richBundle() *model.IndicatorBundle {
	return &model.IndicatorBundle{
		CurrentPrice: 224.7,
		MovingAverages: model.MovingAverages{
			MM200: &model.MovingAverage{Value: 194.85, PriceAbove: true},
		},
		RSI:       &model.RSISignal{Value: 72.5, Zone: model.RSIOverbought},
		MACD:      model.MACDSignal{Value: 2.1, Signal: 1.8, Bullish: true},
		Bollinger: &model.BollingerBands{Position: model.BandMiddle},
		EntryZone: model.EntryZone{Min: 194.85, Max: 218.39, State: model.EntryAwaitPull, DistancePct: 2.81},
	}
}

func TestRisks_TriggeredRules(t *testing.T) {
	risks := Risks(richSnapshot(), richBundle())

	joined := strings.Join(risks, "\n")
	assert.Contains(t, joined, "Endeudamiento superior al sector")
	assert.Contains(t, joined, "PER por encima de la media sectorial")
	assert.Contains(t, joined, "Beta elevada")
	assert.Contains(t, joined, "sobrecompra")
	assert.Contains(t, joined, "zona de entrada")
	assert.NotContains(t, joined, fallbackRisk)
}

func TestOpportunities_TriggeredRules(t *testing.T) {
	opps := Opportunities(richSnapshot(), richBundle())

	joined := strings.Join(opps, "\n")
	assert.Contains(t, joined, "Crecimiento de ventas sostenido")
	assert.Contains(t, joined, "recompra de acciones")
	assert.Contains(t, joined, "Reducción de acciones en circulación")
	assert.Contains(t, joined, "Márgenes brutos por encima del sector")
	assert.Contains(t, joined, "Crecimiento BPA fuerte")
	assert.Contains(t, joined, "Dividendo con crecimiento consistente")
	assert.NotContains(t, joined, fallbackOpportunity)
}

func TestFindings_FallbackWhenNothingTriggers(t *testing.T) {
	empty := &model.CompanySnapshot{Ticker: "ZZZ"}

	risks := Risks(empty, nil)
	require.Len(t, risks, 1)
	assert.Equal(t, fallbackRisk, risks[0])

	opps := Opportunities(empty, nil)
	require.Len(t, opps, 1)
	assert.Equal(t, fallbackOpportunity, opps[0])
}

func TestFindings_Deterministic(t *testing.T) {
	snap, ind := richSnapshot(), richBundle()
	assert.Equal(t, Risks(snap, ind), Risks(snap, ind))
	assert.Equal(t, Opportunities(snap, ind), Opportunities(snap, ind))
}

func TestExecutiveSummary_FullSnapshot(t *testing.T) {
	snap, ind := richSnapshot(), richBundle()
	score := model.ScoreBreakdown{Total: 75}

	paragraphs := ExecutiveSummary(snap, ind, score)
	require.GreaterOrEqual(t, len(paragraphs), 5)

	text := strings.Join(paragraphs, "\n")
	assert.Contains(t, text, "Acme Corp")
	assert.Contains(t, text, "PER de 30.0x frente al 24.1x")
	assert.Contains(t, text, "por encima de la media")
	assert.Contains(t, text, "margen bruto promedio")
	assert.Contains(t, text, "deuda/fondos propios")
	assert.Contains(t, text, "recompra de acciones")
	assert.Contains(t, text, "2.40B")
	assert.Contains(t, text, "han disminuido un 3.2%")
	assert.Contains(t, text, "media móvil de 200 sesiones")
	assert.Contains(t, text, "alcistas")
	assert.Contains(t, text, "sobrecompra")
	assert.Contains(t, text, "más volátil que el mercado")
}

func TestExecutiveSummary_ScoreTiers(t *testing.T) {
	snap, ind := richSnapshot(), richBundle()

	closing := func(total int) string {
		p := ExecutiveSummary(snap, ind, model.ScoreBreakdown{Total: total})
		return p[len(p)-1]
	}

	assert.Contains(t, closing(82), "alta calidad")
	assert.Contains(t, closing(70), "alta calidad")
	assert.Contains(t, closing(60), "potencial interesante")
	assert.Contains(t, closing(50), "potencial interesante")
	assert.Contains(t, closing(35), "desafíos significativos")
}

func TestExecutiveSummary_MinimalSnapshot(t *testing.T) {
	snap := &model.CompanySnapshot{Ticker: "XYZ"}
	paragraphs := ExecutiveSummary(snap, nil, model.ScoreBreakdown{Total: 45})

	require.NotEmpty(t, paragraphs)
	assert.Contains(t, paragraphs[0], "XYZ")
	// Closing synthesis is always present.
	assert.Contains(t, paragraphs[len(paragraphs)-1], "desafíos significativos")
}

func TestFormatShares(t *testing.T) {
	assert.Equal(t, "2.40B", formatShares(2.4e9))
	assert.Equal(t, "850M", formatShares(8.5e8))
}
