package narrative

import (
	"fmt"

	"github.com/Dlanzas-cyber/PortfolioSentinel/internal/model"
)

// A finding rule pairs a trigger condition with the text it produces. Rules
// are evaluated in a fixed order so identical inputs always yield the same
// list. The condition thresholds mirror the ones the scoring bands use.
type findingRule struct {
	triggered func(snap *model.CompanySnapshot, ind *model.IndicatorBundle) bool
	text      func(snap *model.CompanySnapshot, ind *model.IndicatorBundle) string
}

const (
	fallbackRisk        = "Incertidumbre macroeconómica general del sector"
	fallbackOpportunity = "Posible expansión en mercados emergentes y nuevas líneas de negocio"
)

var riskRules = []findingRule{
	{
		triggered: func(s *model.CompanySnapshot, _ *model.IndicatorBundle) bool {
			f, b := s.Fundamentals, s.Sector
			return f != nil && b != nil && f.DebtToEquity > 0 && b.DebtToEquity > 0 &&
				f.DebtToEquity > b.DebtToEquity*1.3
		},
		text: func(s *model.CompanySnapshot, _ *model.IndicatorBundle) string {
			return fmt.Sprintf("Endeudamiento superior al sector (%.2fx vs %.2fx del sector)",
				s.Fundamentals.DebtToEquity, s.Sector.DebtToEquity)
		},
	},
	{
		triggered: func(s *model.CompanySnapshot, _ *model.IndicatorBundle) bool {
			f, b := s.Fundamentals, s.Sector
			return f != nil && b != nil && f.PERatio > 0 && b.PE > 0 && f.PERatio > b.PE*1.2
		},
		text: func(s *model.CompanySnapshot, _ *model.IndicatorBundle) string {
			return fmt.Sprintf("PER por encima de la media sectorial (%.1fx vs %.1fx)",
				s.Fundamentals.PERatio, s.Sector.PE)
		},
	},
	{
		triggered: func(s *model.CompanySnapshot, _ *model.IndicatorBundle) bool {
			return s.Beta() > 1.3
		},
		text: func(s *model.CompanySnapshot, _ *model.IndicatorBundle) string {
			return fmt.Sprintf("Beta elevada (%.2f): mayor sensibilidad a caídas del mercado general", s.Beta())
		},
	},
	{
		triggered: func(s *model.CompanySnapshot, _ *model.IndicatorBundle) bool {
			return s.Shares != nil && s.Shares.Trend3y > 3
		},
		text: func(s *model.CompanySnapshot, _ *model.IndicatorBundle) string {
			return fmt.Sprintf("Aumento de acciones en circulación (+%.1f%% en 3 años): posible dilución del valor por acción",
				s.Shares.Trend3y)
		},
	},
	{
		triggered: func(_ *model.CompanySnapshot, ind *model.IndicatorBundle) bool {
			return ind != nil && ind.RSI != nil && ind.RSI.Value > 70
		},
		text: func(_ *model.CompanySnapshot, ind *model.IndicatorBundle) string {
			return fmt.Sprintf("RSI en zona de sobrecompra (%.1f): riesgo de corrección técnica a corto plazo",
				ind.RSI.Value)
		},
	},
	{
		triggered: func(s *model.CompanySnapshot, _ *model.IndicatorBundle) bool {
			f, b := s.Fundamentals, s.Sector
			return f != nil && b != nil && f.GrossMargin5yAvg > 0 && b.GrossMargin > 0 &&
				f.GrossMargin5yAvg < b.GrossMargin*0.8
		},
		text: func(s *model.CompanySnapshot, _ *model.IndicatorBundle) string {
			return fmt.Sprintf("Márgenes brutos por debajo del sector (%.1f%% vs %.1f%%)",
				s.Fundamentals.GrossMargin5yAvg, s.Sector.GrossMargin)
		},
	},
	{
		triggered: func(_ *model.CompanySnapshot, ind *model.IndicatorBundle) bool {
			return ind != nil && ind.EntryZone.State == model.EntryAwaitPull
		},
		text: func(_ *model.CompanySnapshot, ind *model.IndicatorBundle) string {
			return fmt.Sprintf("Precio actual por encima de la zona de entrada (%.1f%% por encima de la zona ideal)",
				ind.EntryZone.DistancePct)
		},
	},
}

var opportunityRules = []findingRule{
	{
		triggered: func(s *model.CompanySnapshot, _ *model.IndicatorBundle) bool {
			return s.Fundamentals != nil && s.Fundamentals.SalesGrowth5y > 10
		},
		text: func(s *model.CompanySnapshot, _ *model.IndicatorBundle) string {
			return fmt.Sprintf("Crecimiento de ventas sostenido y fuerte (%.1f%% en 5 años)",
				s.Fundamentals.SalesGrowth5y)
		},
	},
	{
		triggered: func(s *model.CompanySnapshot, _ *model.IndicatorBundle) bool {
			return s.Fundamentals != nil && s.Fundamentals.HasBuyback
		},
		text: func(_ *model.CompanySnapshot, _ *model.IndicatorBundle) string {
			return "Programa de recompra de acciones activo: la empresa devuelve valor al accionista"
		},
	},
	{
		triggered: func(s *model.CompanySnapshot, _ *model.IndicatorBundle) bool {
			return s.Shares != nil && s.Shares.Trend3y < -2
		},
		text: func(s *model.CompanySnapshot, _ *model.IndicatorBundle) string {
			return fmt.Sprintf("Reducción de acciones en circulación (%.1f%% en 3 años): el valor por acción creciente beneficia al accionista",
				-s.Shares.Trend3y)
		},
	},
	{
		triggered: func(s *model.CompanySnapshot, _ *model.IndicatorBundle) bool {
			f, b := s.Fundamentals, s.Sector
			return f != nil && b != nil && f.GrossMargin5yAvg > 0 && b.GrossMargin > 0 &&
				f.GrossMargin5yAvg > b.GrossMargin*1.1
		},
		text: func(s *model.CompanySnapshot, _ *model.IndicatorBundle) string {
			return fmt.Sprintf("Márgenes brutos por encima del sector (%.1f%% vs %.1f%%): posicionamiento competitivo favorable",
				s.Fundamentals.GrossMargin5yAvg, s.Sector.GrossMargin)
		},
	},
	{
		triggered: func(s *model.CompanySnapshot, _ *model.IndicatorBundle) bool {
			return s.Fundamentals != nil && s.Fundamentals.EPSGrowth5y > 10
		},
		text: func(s *model.CompanySnapshot, _ *model.IndicatorBundle) string {
			return fmt.Sprintf("Crecimiento BPA fuerte (%.1f%% en 5 años): los beneficios generan valor real",
				s.Fundamentals.EPSGrowth5y)
		},
	},
	{
		triggered: func(_ *model.CompanySnapshot, ind *model.IndicatorBundle) bool {
			return ind != nil && ind.RSI != nil && ind.RSI.Value < 35
		},
		text: func(_ *model.CompanySnapshot, ind *model.IndicatorBundle) string {
			return fmt.Sprintf("RSI en zona de sobreventa (%.1f): potencial punto de rebote técnico",
				ind.RSI.Value)
		},
	},
	{
		triggered: func(_ *model.CompanySnapshot, ind *model.IndicatorBundle) bool {
			return ind != nil && ind.EntryZone.State == model.EntryActive
		},
		text: func(_ *model.CompanySnapshot, _ *model.IndicatorBundle) string {
			return "El precio actual se encuentra dentro de la zona de entrada técnica identificada"
		},
	},
	{
		triggered: func(s *model.CompanySnapshot, _ *model.IndicatorBundle) bool {
			return s.Dividends != nil && s.Dividends.Growth5y > 5
		},
		text: func(s *model.CompanySnapshot, _ *model.IndicatorBundle) string {
			return fmt.Sprintf("Dividendo con crecimiento consistente (%.1f%% en 5 años): retribución fiable al accionista",
				s.Dividends.Growth5y)
		},
	},
}

// Risks evaluates the risk rule table. The list is never empty: a generic
// macro finding is emitted when nothing triggers.
func Risks(snap *model.CompanySnapshot, ind *model.IndicatorBundle) []string {
	return evaluate(riskRules, snap, ind, fallbackRisk)
}

// Opportunities evaluates the opportunity rule table, with the same
// non-empty guarantee.
func Opportunities(snap *model.CompanySnapshot, ind *model.IndicatorBundle) []string {
	return evaluate(opportunityRules, snap, ind, fallbackOpportunity)
}

func evaluate(rules []findingRule, snap *model.CompanySnapshot, ind *model.IndicatorBundle, fallback string) []string {
	var findings []string
	for _, r := range rules {
		if r.triggered(snap, ind) {
			findings = append(findings, r.text(snap, ind))
		}
	}
	if len(findings) == 0 {
		findings = append(findings, fallback)
	}
	return findings
}
