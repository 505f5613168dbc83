// Package portfolio persists the user's holdings and their score history.
package portfolio

import "github.com/Dlanzas-cyber/PortfolioSentinel/internal/model"

// ScorePoint is one historical score observation for a ticker.
type ScorePoint struct {
	Ticker string
	Score  int
	At     int64 // unix seconds
}

// Store persists positions and score history.
type Store interface {
	Upsert(pos *model.Position) error
	Remove(ticker string) error
	Get(ticker string) (*model.Position, error)
	List() ([]*model.Position, error)

	// UpdateQuote refreshes the market price and score after a rescan and
	// appends a score history point.
	UpdateQuote(ticker string, price float64, score int) error
	ScoreHistory(ticker string, limit int) ([]ScorePoint, error)

	Metrics() (*model.PortfolioMetrics, error)
	Close() error
}

// ComputeMetrics aggregates a position list. Shared by store implementations.
func ComputeMetrics(positions []*model.Position) *model.PortfolioMetrics {
	m := &model.PortfolioMetrics{Positions: len(positions)}
	scoreSum := 0
	scored := 0
	for _, p := range positions {
		m.Invested += p.Invested()
		m.MarketValue += p.MarketValue()
		if p.Score > 0 {
			scoreSum += p.Score
			scored++
		}
	}
	m.PnL = m.MarketValue - m.Invested
	if m.Invested > 0 {
		m.PnLPct = m.PnL / m.Invested * 100
	}
	if scored > 0 {
		m.AvgScore = float64(scoreSum) / float64(scored)
	}
	return m
}
