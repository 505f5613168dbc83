package notifier

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dlanzas-cyber/PortfolioSentinel/internal/model"
)

type captureSender struct {
	sent []string
}

func (c *captureSender) Send(text string) error {
	c.sent = append(c.sent, text)
	return nil
}

type failingSender struct {
	attempts int
}

func (f *failingSender) Send(string) error {
	f.attempts++
	return fmt.Errorf("telegram unreachable")
}

func pos(ticker string, score int) *model.Position {
	return &model.Position{Ticker: ticker, Score: score}
}

func TestMonitor_ScoreChangeAlerts(t *testing.T) {
	sender := &captureSender{}
	m := &Monitor{Sender: sender, Threshold: 5}

	previous := []*model.Position{pos("AAPL", 70), pos("MSFT", 60), pos("KO", 55)}
	current := []*model.Position{pos("AAPL", 76), pos("MSFT", 63), pos("KO", 50)}

	msgs := m.Compare(previous, current)

	// AAPL +6 and KO -5 cross the threshold, MSFT +3 does not.
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[0], "AAPL")
	assert.Contains(t, msgs[0], "+6 puntos")
	assert.Contains(t, msgs[1], "KO")
	assert.Contains(t, msgs[1], "-5 puntos")
	assert.Equal(t, msgs, sender.sent)
}

func TestMonitor_SendFailureDoesNotAbortDiff(t *testing.T) {
	sender := &failingSender{}
	m := &Monitor{Sender: sender, Threshold: 5}

	previous := []*model.Position{pos("AAPL", 70), pos("KO", 60)}
	current := []*model.Position{pos("AAPL", 78), pos("KO", 52)}

	// Every alert is still attempted and reported even when sends fail.
	msgs := m.Compare(previous, current)
	require.Len(t, msgs, 2)
	assert.Equal(t, 2, sender.attempts)
}

func TestMonitor_DefaultThreshold(t *testing.T) {
	m := &Monitor{}

	previous := []*model.Position{pos("AAPL", 70)}
	current := []*model.Position{pos("AAPL", 74)}
	assert.Empty(t, m.Compare(previous, current))

	current = []*model.Position{pos("AAPL", 75)}
	msgs := m.Compare(previous, current)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "Cambio en Score")
}

func TestMonitor_Top10EntryAndExit(t *testing.T) {
	previous := make([]*model.Position, 0, 11)
	for i := 0; i < 11; i++ {
		previous = append(previous, pos(fmt.Sprintf("T%02d", i), 90-i))
	}
	// T10 climbs past T09, pushing it out of the top 10.
	current := make([]*model.Position, 0, 11)
	for i := 0; i < 9; i++ {
		current = append(current, pos(fmt.Sprintf("T%02d", i), 90-i))
	}
	current = append(current, pos("T09", 79))
	current = append(current, pos("T10", 82))

	m := &Monitor{Threshold: 100}
	msgs := m.Compare(previous, current)

	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[0], "Nueva en Top 10")
	assert.Contains(t, msgs[0], "T10")
	assert.Contains(t, msgs[1], "Salida del Top 10")
	assert.Contains(t, msgs[1], "T09")
}

func TestMonitor_NoEntryAlertsOnFirstScan(t *testing.T) {
	current := []*model.Position{pos("AAPL", 80), pos("MSFT", 75)}
	m := &Monitor{}
	assert.Empty(t, m.Compare(nil, current))
}

func TestMonitor_NoExitAlertForRemovedPosition(t *testing.T) {
	previous := []*model.Position{pos("AAPL", 80), pos("MSFT", 75)}
	current := []*model.Position{pos("MSFT", 75)}

	m := &Monitor{Threshold: 100}
	msgs := m.Compare(previous, current)
	for _, msg := range msgs {
		assert.NotContains(t, msg, "Salida del Top 10")
	}
}

func TestFormatScoreChange(t *testing.T) {
	up := FormatScoreChange("AAPL", 60, 68)
	assert.True(t, strings.HasPrefix(up, "📈"))
	assert.Contains(t, up, "Score anterior: 60")
	assert.Contains(t, up, "Score nuevo: 68")
	assert.Contains(t, up, "+8 puntos")

	down := FormatScoreChange("AAPL", 68, 60)
	assert.True(t, strings.HasPrefix(down, "📉"))
	assert.Contains(t, down, "-8 puntos")
}

func TestFormatAnalysis(t *testing.T) {
	res := &model.AnalysisResult{
		Ticker: "ACME",
		Score: model.ScoreBreakdown{
			Valuation:         12,
			Dividend:          9,
			Growth:            11,
			FinancialStrength: 10,
			MovingAverages:    8,
			Oscillators:       6,
			Volume:            3,
			RiskContext:       5,
			SharesTrend:       4,
			Total:             68,
		},
		EntryZone:     model.EntryZone{State: model.EntryAwaitPull, Min: 194.85, Max: 218.39, DistancePct: 2.81},
		Risks:         []string{"RSI en sobrecompra"},
		Opportunities: []string{"Tendencia alcista confirmada"},
	}

	msg := FormatAnalysis(res)
	assert.Contains(t, msg, "Análisis de ACME")
	assert.Contains(t, msg, "Score: <b>68/100</b>")
	assert.Contains(t, msg, "Precio y valoración: 12/15")
	assert.Contains(t, msg, "Contexto acciones: 4/7")
	assert.Contains(t, msg, "retroceso necesario: 2.8%")
	assert.Contains(t, msg, "• RSI en sobrecompra")
	assert.Contains(t, msg, "• Tendencia alcista confirmada")
}

func TestFormatAnalysis_ActiveZone(t *testing.T) {
	res := &model.AnalysisResult{
		Ticker:    "ACME",
		EntryZone: model.EntryZone{State: model.EntryActive, Min: 90, Max: 100},
	}
	msg := FormatAnalysis(res)
	assert.Contains(t, msg, "Zona de entrada: <b>activa</b>")
	assert.Contains(t, msg, "$90.00 - $100.00")
}

func TestFormatPortfolioDigest(t *testing.T) {
	metrics := &model.PortfolioMetrics{
		Positions:   3,
		Invested:    9000,
		MarketValue: 10500,
		PnL:         1500,
		PnLPct:      16.7,
		AvgScore:    71.5,
	}
	top := []*model.Position{pos("AAPL", 82), pos("MSFT", 74), pos("KO", 58)}

	msg := FormatPortfolioDigest(metrics, top)
	assert.Contains(t, msg, "Resumen de Cartera")
	assert.Contains(t, msg, "Posiciones: 3")
	assert.Contains(t, msg, "Valor total: $10500")
	assert.Contains(t, msg, "📈 +16.7%")
	assert.Contains(t, msg, "Score medio: 71.5/100")
	assert.Contains(t, msg, "1. AAPL: 82/100")
	assert.Contains(t, msg, "3. KO: 58/100")
}

func TestFormatEntryZoneAlert(t *testing.T) {
	zone := model.EntryZone{State: model.EntryActive, Min: 194.85, Max: 218.39}
	msg := FormatEntryZoneAlert("ACME", 210.10, zone)
	assert.Contains(t, msg, "Zona de Entrada Activa")
	assert.Contains(t, msg, "Precio actual: $210.10")
	assert.Contains(t, msg, "$194.85 - $218.39")
}
