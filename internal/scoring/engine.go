// Package scoring maps fundamentals, sector benchmarks, dividend data, the
// share-count trend and the technical indicator bundle into a weighted
// composite score between 1 and 100.
//
// The 100 points split into fundamentals (60: valuation, dividend, growth,
// financial strength at 15 each), technicals (25: moving averages 10,
// oscillators 10, volume 5) and context (15: risk 8, shares trend 7). Every
// factor falls back to a neutral default when its inputs are missing, so the
// total never fails to compute.
package scoring

import "github.com/Dlanzas-cyber/PortfolioSentinel/internal/model"

// Compute produces the full score breakdown for one company snapshot.
func Compute(snap *model.CompanySnapshot, ind *model.IndicatorBundle) model.ScoreBreakdown {
	b := model.ScoreBreakdown{
		Valuation:         scoreValuation(snap.Fundamentals, snap.Sector),
		Dividend:          scoreDividend(snap.Dividends, snap.Fundamentals),
		Growth:            scoreGrowth(snap.Fundamentals),
		FinancialStrength: scoreFinancialStrength(snap.Fundamentals, snap.Sector),
		MovingAverages:    scoreMovingAverages(ind),
		Oscillators:       scoreOscillators(ind),
		Volume:            scoreVolume(ind),
		RiskContext:       scoreRiskContext(ind),
		SharesTrend:       scoreSharesTrend(snap.Shares),
	}

	// A shrinking share count also reinforces the payout block.
	if snap.Shares != nil && snap.Shares.Trend3y < 0 {
		b.Dividend = capAt(b.Dividend+1, 15)
	}

	total := b.Valuation + b.Dividend + b.Growth + b.FinancialStrength +
		b.MovingAverages + b.Oscillators + b.Volume +
		b.RiskContext + b.SharesTrend
	b.Total = clamp(total, 1, 100)
	return b
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
