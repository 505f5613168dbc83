package model

import "time"

// ScoreBreakdown is the 1-100 composite score with its nine sub-scores.
//
// Sub-score caps: valuation 15, dividend 15, growth 15, financial strength
// 15, moving averages 10, oscillators 10, volume 5, risk context 8, shares
// trend 7. Immutable once computed.
type ScoreBreakdown struct {
	Total             int `json:"score_total"`
	Valuation         int `json:"precio_valoracion"`
	Dividend          int `json:"dividendo_retribucion"`
	Growth            int `json:"crecimiento"`
	FinancialStrength int `json:"fortaleza_financiera"`
	MovingAverages    int `json:"medias_moviles"`
	Oscillators       int `json:"osciladores"`
	Volume            int `json:"volumen"`
	RiskContext       int `json:"contexto_beta"`
	SharesTrend       int `json:"contexto_acciones"`
}

// AnalysisResult is the externally visible output of the analysis pipeline.
type AnalysisResult struct {
	Ticker           string           `json:"ticker"`
	Score            ScoreBreakdown   `json:"score"`
	ExecutiveSummary []string         `json:"resumen_ejecutivo"`
	Risks            []string         `json:"riesgos"`
	Opportunities    []string         `json:"oportunidades"`
	EntryZone        EntryZone        `json:"zona_entrada"`
	Indicators       *IndicatorBundle `json:"indicadores,omitempty"`
	GeneratedAt      time.Time        `json:"generated_at"`
}
