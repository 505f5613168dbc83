package notifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/Dlanzas-cyber/PortfolioSentinel/internal/model"
)

// FormatAnalysis formats a full analysis result into a Telegram message.
func FormatAnalysis(res *model.AnalysisResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>Análisis de %s</b> | %s\n\n", res.Ticker, time.Now().Format("02/01/2006")))
	b.WriteString(fmt.Sprintf("Score: <b>%d/100</b>\n\n", res.Score.Total))

	b.WriteString("<b>Desglose:</b>\n")
	b.WriteString(fmt.Sprintf("  Precio y valoración: %d/15\n", res.Score.Valuation))
	b.WriteString(fmt.Sprintf("  Dividendo y retribución: %d/15\n", res.Score.Dividend))
	b.WriteString(fmt.Sprintf("  Crecimiento: %d/15\n", res.Score.Growth))
	b.WriteString(fmt.Sprintf("  Fortaleza financiera: %d/15\n", res.Score.FinancialStrength))
	b.WriteString(fmt.Sprintf("  Medias móviles: %d/10\n", res.Score.MovingAverages))
	b.WriteString(fmt.Sprintf("  Osciladores: %d/10\n", res.Score.Oscillators))
	b.WriteString(fmt.Sprintf("  Volumen: %d/5\n", res.Score.Volume))
	b.WriteString(fmt.Sprintf("  Contexto beta: %d/8\n", res.Score.RiskContext))
	b.WriteString(fmt.Sprintf("  Contexto acciones: %d/7\n\n", res.Score.SharesTrend))

	if res.EntryZone.State == model.EntryActive {
		b.WriteString(fmt.Sprintf("🎯 Zona de entrada: <b>activa</b> ($%.2f - $%.2f)\n\n", res.EntryZone.Min, res.EntryZone.Max))
	} else if res.EntryZone.State == model.EntryAwaitPull {
		b.WriteString(fmt.Sprintf("⏳ Zona de entrada: $%.2f - $%.2f (retroceso necesario: %.1f%%)\n\n",
			res.EntryZone.Min, res.EntryZone.Max, res.EntryZone.DistancePct))
	}

	b.WriteString("⚠️ <b>Riesgos:</b>\n")
	for _, r := range res.Risks {
		b.WriteString(fmt.Sprintf("  • %s\n", r))
	}
	b.WriteString("\n✨ <b>Oportunidades:</b>\n")
	for _, o := range res.Opportunities {
		b.WriteString(fmt.Sprintf("  • %s\n", o))
	}

	return b.String()
}

// FormatScoreChange formats a significant score movement alert.
func FormatScoreChange(ticker string, oldScore, newScore int) string {
	diff := newScore - oldScore
	emoji := "📈"
	if diff < 0 {
		emoji = "📉"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s <b>Cambio en Score</b>\n\n", emoji))
	b.WriteString(fmt.Sprintf("<b>%s</b>\n", ticker))
	b.WriteString(fmt.Sprintf("Score anterior: %d\n", oldScore))
	b.WriteString(fmt.Sprintf("Score nuevo: %d\n", newScore))
	b.WriteString(fmt.Sprintf("Cambio: %+d puntos\n\n", diff))
	b.WriteString(fmt.Sprintf("Fecha: %s", time.Now().Format("02/01/2006 15:04")))
	return b.String()
}

// FormatEntryZoneAlert formats a buy-zone activation alert.
func FormatEntryZoneAlert(ticker string, price float64, zone model.EntryZone) string {
	var b strings.Builder
	b.WriteString("🎯 <b>Zona de Entrada Activa</b>\n\n")
	b.WriteString(fmt.Sprintf("<b>%s</b>\n\n", ticker))
	b.WriteString(fmt.Sprintf("Precio actual: $%.2f\n", price))
	b.WriteString(fmt.Sprintf("Zona ideal: $%.2f - $%.2f\n\n", zone.Min, zone.Max))
	b.WriteString("El precio está dentro de la zona de entrada técnicamente favorable.\n")
	b.WriteString("Considera revisar los fundamentales antes de comprar.")
	return b.String()
}

// FormatTop10Entry formats an alert for a position entering the top 10.
func FormatTop10Entry(ticker string, rank, score int) string {
	var b strings.Builder
	b.WriteString("🎯 <b>Nueva en Top 10</b>\n\n")
	b.WriteString(fmt.Sprintf("<b>%s</b> ha entrado en tu top 10\n\n", ticker))
	b.WriteString(fmt.Sprintf("Posición: #%d\n", rank))
	b.WriteString(fmt.Sprintf("Score: %d/100", score))
	return b.String()
}

// FormatTop10Exit formats an alert for a position leaving the top 10.
func FormatTop10Exit(ticker string, score int) string {
	var b strings.Builder
	b.WriteString("⚠️ <b>Salida del Top 10</b>\n\n")
	b.WriteString(fmt.Sprintf("<b>%s</b> ha salido de tu top 10\n\n", ticker))
	b.WriteString(fmt.Sprintf("Score actual: %d/100\n\n", score))
	b.WriteString("Puede ser momento de revisar esta posición.")
	return b.String()
}

// FormatPortfolioDigest formats the portfolio summary report.
func FormatPortfolioDigest(metrics *model.PortfolioMetrics, top []*model.Position) string {
	emoji := "📈"
	if metrics.PnLPct < 0 {
		emoji = "📉"
	}

	var b strings.Builder
	b.WriteString("📊 <b>Resumen de Cartera</b>\n\n")
	b.WriteString(fmt.Sprintf("Posiciones: %d\n", metrics.Positions))
	b.WriteString(fmt.Sprintf("Valor total: $%.0f\n", metrics.MarketValue))
	b.WriteString(fmt.Sprintf("Rendimiento: %s %+.1f%%\n", emoji, metrics.PnLPct))
	if metrics.AvgScore > 0 {
		b.WriteString(fmt.Sprintf("Score medio: %.1f/100\n", metrics.AvgScore))
	}

	if len(top) > 0 {
		b.WriteString("\n<b>Top por Score:</b>\n")
		for i, pos := range top {
			b.WriteString(fmt.Sprintf("%d. %s: %d/100\n", i+1, pos.Ticker, pos.Score))
		}
	}

	b.WriteString(fmt.Sprintf("\nFecha: %s", time.Now().Format("02/01/2006 15:04")))
	return b.String()
}
