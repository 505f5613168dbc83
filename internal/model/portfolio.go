package model

import "time"

// Position is one holding of the user's portfolio. Score is the latest
// composite score computed for the ticker, 0 until the first analysis.
type Position struct {
	Ticker       string    `json:"ticker"`
	Name         string    `json:"name"`
	Sector       string    `json:"sector"`
	Shares       float64   `json:"shares"`
	BuyPrice     float64   `json:"buy_price"`
	CurrentPrice float64   `json:"current_price"`
	Score        int       `json:"score"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Invested returns the cost basis of the position.
func (p Position) Invested() float64 {
	return p.Shares * p.BuyPrice
}

// MarketValue returns the current value of the position.
func (p Position) MarketValue() float64 {
	return p.Shares * p.CurrentPrice
}

// PortfolioMetrics aggregates the whole portfolio for digests and reports.
type PortfolioMetrics struct {
	Positions   int     `json:"positions"`
	Invested    float64 `json:"invested"`
	MarketValue float64 `json:"market_value"`
	PnL         float64 `json:"pnl"`
	PnLPct      float64 `json:"pnl_pct"`
	AvgScore    float64 `json:"avg_score"`
}
