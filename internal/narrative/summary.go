// Package narrative turns the numeric comparisons behind the score into
// Spanish prose: an executive summary plus risk and opportunity findings.
// Output is deterministic; identical inputs produce identical text.
package narrative

import (
	"fmt"
	"strings"

	"github.com/Dlanzas-cyber/PortfolioSentinel/internal/model"
)

// Score tiers drive the tone of the closing synthesis paragraph.
const (
	tierHighQuality = 70
	tierCautious    = 50
)

// ExecutiveSummary composes the ordered paragraphs covering valuation,
// profitability and growth, balance-sheet structure, share capital, the
// technical posture and a closing synthesis whose tone follows the score.
func ExecutiveSummary(snap *model.CompanySnapshot, ind *model.IndicatorBundle, score model.ScoreBreakdown) []string {
	name := snap.Name()
	f := snap.Fundamentals
	sec := snap.Sector

	var paragraphs []string

	// Valuation.
	var p strings.Builder
	fmt.Fprintf(&p, "%s presenta un perfil inversor que merece atención detallada. ", name)
	if f != nil && sec != nil && f.PERatio > 0 && sec.PE > 0 {
		if f.PERatio > sec.PE {
			fmt.Fprintf(&p, "Con un PER de %.1fx frente al %.1fx del sector, la valoración actual se sitúa por encima de la media, lo que indica que el mercado descuenta expectativas de crecimiento elevadas. ",
				f.PERatio, sec.PE)
		} else {
			fmt.Fprintf(&p, "Con un PER de %.1fx frente al %.1fx del sector, la valoración actual se mantiene por debajo del promedio sectorial, sugiriendo que la empresa podría estar infravalorada en relación a sus pares. ",
				f.PERatio, sec.PE)
		}
	}
	if f != nil && sec != nil && f.PriceToBook > 0 && sec.PB > 0 {
		if f.PriceToBook > sec.PB {
			fmt.Fprintf(&p, "El precio respecto al valor contable (%.1fx vs %.1fx del sector) refleja una prima que el mercado atribuye a la calidad o posicionamiento competitivo de la empresa.",
				f.PriceToBook, sec.PB)
		} else {
			fmt.Fprintf(&p, "El precio respecto al valor contable (%.1fx vs %.1fx del sector) se alinea con el sector, sin indicar sobrevaloración significativa.",
				f.PriceToBook, sec.PB)
		}
	}
	paragraphs = append(paragraphs, strings.TrimSpace(p.String()))

	// Profitability and growth.
	if f != nil {
		var g strings.Builder
		if f.GrossMargin5yAvg != 0 && sec != nil && sec.GrossMargin != 0 {
			comp := "por debajo"
			if f.GrossMargin5yAvg > sec.GrossMargin {
				comp = "por encima"
			}
			fmt.Fprintf(&g, "Desde el punto de vista de la rentabilidad, el margen bruto promedio de los últimos 5 años se sitúa en el %.1f%%, %s del %.1f%% del sector. ",
				f.GrossMargin5yAvg, comp, sec.GrossMargin)
		}
		switch {
		case f.SalesGrowth5y > 10:
			fmt.Fprintf(&g, "El crecimiento de ventas a 5 años del %.1f%% indica una expansión de negocio dinámica. ", f.SalesGrowth5y)
		case f.SalesGrowth5y > 0:
			fmt.Fprintf(&g, "El crecimiento de ventas a 5 años del %.1f%% refleja un crecimiento moderado. ", f.SalesGrowth5y)
		default:
			fmt.Fprintf(&g, "El crecimiento de ventas a 5 años muestra una contracción del %.1f%%, señal que debe valorarse en contexto. ", -f.SalesGrowth5y)
		}
		if f.EPSGrowth5y > 0 {
			fmt.Fprintf(&g, "El BPA ha crecido un %.1f%% en el mismo período, lo cual es relevante para evaluar la calidad de los beneficios generados.", f.EPSGrowth5y)
		} else {
			fmt.Fprintf(&g, "El BPA ha mostrado una evolución negativa del %.1f%%, un aspecto que requiere seguimiento cercano.", -f.EPSGrowth5y)
		}
		paragraphs = append(paragraphs, strings.TrimSpace(g.String()))
	}

	// Balance-sheet structure.
	if f != nil && sec != nil && sec.DebtToEquity > 0 {
		var d strings.Builder
		if f.DebtToEquity > sec.DebtToEquity {
			fmt.Fprintf(&d, "La estructura financiera muestra un ratio deuda/fondos propios de %.2fx, notablemente superior al sector (%.2fx). Este nivel de apalancamiento eleva el riesgo financiero y merece seguimiento cercano, especialmente en entornos de tipos de interés al alza. ",
				f.DebtToEquity, sec.DebtToEquity)
		} else {
			fmt.Fprintf(&d, "La estructura financiera muestra un ratio deuda/fondos propios de %.2fx, en línea o por debajo del sector (%.2fx). Esta posición indica una estructura de balance relativamente conservadora, lo cual aporta estabilidad en escenarios adversos. ",
				f.DebtToEquity, sec.DebtToEquity)
		}
		if f.HasBuyback {
			d.WriteString("El programa de recompra de acciones activo refuerza la confianza de la directiva en la empresa y contribuye directamente a la creación de valor para el accionista.")
		}
		paragraphs = append(paragraphs, strings.TrimSpace(d.String()))
	}

	// Share capital.
	if snap.Shares != nil && snap.Shares.Outstanding > 0 {
		trend := snap.Shares.Trend3y
		sharesStr := formatShares(snap.Shares.Outstanding)
		if trend < 0 {
			paragraphs = append(paragraphs, fmt.Sprintf("En cuanto al capital accionarial, las acciones en circulación (%s) han disminuido un %.1f%% en los últimos 3 años. Esta reducción es un indicador positivo, ya que sugiere que la empresa está devolviendo valor al accionista mediante recompras y que no recurre a ampliaciones dilutivas para financiar su crecimiento.",
				sharesStr, -trend))
		} else {
			paragraphs = append(paragraphs, fmt.Sprintf("En cuanto al capital accionarial, las acciones en circulación (%s) han aumentado un %.1f%% en los últimos 3 años, lo cual puede reflejar planes de retribución a empleados basados en acciones o necesidades de financiación externa. Es importante evaluar si este aumento afecta de manera significativa al valor por acción.",
				sharesStr, trend))
		}
	}

	// Technical posture.
	if ind != nil {
		var t strings.Builder
		above := "por debajo"
		if ind.MovingAverages.MM200 != nil && ind.MovingAverages.MM200.PriceAbove {
			above = "por encima"
		}
		macdTone := "bajistas"
		if ind.MACD.Bullish {
			macdTone = "alcistas"
		}
		fmt.Fprintf(&t, "El análisis técnico indica que el precio se encuentra %s de la media móvil de 200 sesiones, con señales %s en el MACD. ", above, macdTone)

		rsiValue := 50.0
		if ind.RSI != nil {
			rsiValue = ind.RSI.Value
		}
		switch {
		case rsiValue > 70:
			fmt.Fprintf(&t, "El RSI en %.1f se encuentra en zona de sobrecompra, lo que puede anticipar una corrección a corto plazo. ", rsiValue)
		case rsiValue < 30:
			fmt.Fprintf(&t, "El RSI en %.1f se encuentra en zona de sobreventa, presentando un potencial punto de rebote. ", rsiValue)
		default:
			fmt.Fprintf(&t, "El RSI en %.1f se sitúa en zona neutra, sin señales extremas. ", rsiValue)
		}

		if beta := snap.Beta(); beta > 1 {
			fmt.Fprintf(&t, "La beta de %.2f indica que la acción es más volátil que el mercado general, lo que amplifica tanto las subidas como las caídas y debe considerarse al dimensionar la posición.", beta)
		} else {
			fmt.Fprintf(&t, "La beta de %.2f indica que la acción tiende a moverse menos que el mercado, ofreciendo mayor estabilidad en entornos de incertidumbre.", beta)
		}
		paragraphs = append(paragraphs, strings.TrimSpace(t.String()))
	}

	// Synthesis, toned by score tier.
	switch {
	case score.Total >= tierHighQuality:
		paragraphs = append(paragraphs, fmt.Sprintf("En síntesis, %s se presenta como una empresa de alta calidad con fundamentales sólidos. El perfil de riesgo es manejable y la posición técnica actual permitiría considerar una entrada gradual, especialmente si se observa un retroceso hacia las zonas de soporte identificadas.", name))
	case score.Total >= tierCautious:
		paragraphs = append(paragraphs, fmt.Sprintf("En síntesis, %s presenta potencial interesante, aunque presenta áreas que requieren seguimiento cercano, especialmente en relación al endeudamiento y la evolución del capital accionarial. Se recomienda una entrada cautelosa.", name))
	default:
		paragraphs = append(paragraphs, fmt.Sprintf("En síntesis, %s presenta desafíos significativos, ya sea en su estructura financiera, valoración o dinámica de crecimiento. Se aconseja un análisis más profundo y esperar condiciones técnicas más favorables antes de tomar decisiones de inversión.", name))
	}

	return paragraphs
}

func formatShares(n float64) string {
	if n >= 1e9 {
		return fmt.Sprintf("%.2fB", n/1e9)
	}
	return fmt.Sprintf("%.0fM", n/1e6)
}
