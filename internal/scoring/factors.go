package scoring

import "github.com/Dlanzas-cyber/PortfolioSentinel/internal/model"

// Each factor returns its capped sub-score. A nil input block scores the
// documented neutral default so the total is always computable.

// scoreValuation compares PER and P/B against the sector averages.
// Cap 15, neutral 7.
func scoreValuation(f *model.FundamentalSnapshot, s *model.SectorBenchmark) int {
	if f == nil || s == nil {
		return 7
	}

	points := 0

	// PER vs sector, up to 8. Lower ratio means a cheaper company.
	if f.PERatio > 0 && s.PE > 0 {
		switch ratio := f.PERatio / s.PE; {
		case ratio < 0.7:
			points += 8
		case ratio < 0.9:
			points += 6
		case ratio < 1.1:
			points += 4
		case ratio < 1.3:
			points += 2
		default:
			points++
		}
	} else {
		points += 4
	}

	// P/B vs sector, up to 7.
	if f.PriceToBook > 0 && s.PB > 0 {
		switch ratio := f.PriceToBook / s.PB; {
		case ratio < 0.7:
			points += 7
		case ratio < 0.9:
			points += 5
		case ratio < 1.1:
			points += 4
		case ratio < 1.3:
			points += 2
		default:
			points++
		}
	} else {
		points += 3
	}

	return capAt(points, 15)
}

// scoreDividend grades the shareholder-payout policy: yield, 3y/5y growth,
// payout-ratio sweet spot and buyback activity. Cap 15, neutral 5.
func scoreDividend(d *model.DividendProfile, f *model.FundamentalSnapshot) int {
	if d == nil {
		return 5
	}

	points := 0

	switch {
	case d.YieldAtBuy >= 4:
		points += 4
	case d.YieldAtBuy >= 2.5:
		points += 3
	case d.YieldAtBuy >= 1.5:
		points += 2
	case d.YieldAtBuy > 0:
		points++
	}

	switch {
	case d.Growth3y > 10 && d.Growth5y > 8:
		points += 4
	case d.Growth3y > 5 && d.Growth5y > 3:
		points += 3
	case d.Growth3y > 0 && d.Growth5y > 0:
		points += 2
	case d.Growth3y > 0 || d.Growth5y > 0:
		points++
	}

	// Payout between 30-60% is the sweet spot: pays out while retaining
	// enough to grow.
	payout := 0.0
	if f != nil {
		payout = f.PayoutRatio
	}
	switch {
	case payout >= 30 && payout <= 60:
		points += 3
	case (payout >= 20 && payout < 30) || (payout > 60 && payout <= 75):
		points += 2
	case payout > 0:
		points++
	}

	if f != nil && f.HasBuyback {
		points += 2
	}

	// Base point for shareholder retribution; the engine adds one more when
	// the share count is actually shrinking.
	points++

	return capAt(points, 15)
}

// scoreGrowth bands 5-year sales and EPS growth. Cap 15, neutral 7.
func scoreGrowth(f *model.FundamentalSnapshot) int {
	if f == nil {
		return 7
	}

	points := 0

	switch {
	case f.SalesGrowth5y > 20:
		points += 8
	case f.SalesGrowth5y > 10:
		points += 6
	case f.SalesGrowth5y > 5:
		points += 4
	case f.SalesGrowth5y > 0:
		points += 2
	case f.SalesGrowth5y > -5:
		points++
	}

	switch {
	case f.EPSGrowth5y > 25:
		points += 7
	case f.EPSGrowth5y > 15:
		points += 5
	case f.EPSGrowth5y > 8:
		points += 4
	case f.EPSGrowth5y > 0:
		points += 2
	case f.EPSGrowth5y > -5:
		points++
	}

	return capAt(points, 15)
}

// scoreFinancialStrength compares leverage and gross margin against the
// sector. Cap 15, neutral 7.
func scoreFinancialStrength(f *model.FundamentalSnapshot, s *model.SectorBenchmark) int {
	if f == nil || s == nil {
		return 7
	}

	points := 0

	// Debt/equity vs sector, up to 8: less leverage scores higher.
	if s.DebtToEquity > 0 {
		switch ratio := f.DebtToEquity / s.DebtToEquity; {
		case ratio < 0.5:
			points += 8
		case ratio < 0.8:
			points += 6
		case ratio < 1.0:
			points += 5
		case ratio < 1.3:
			points += 3
		case ratio < 1.8:
			points += 2
		default:
			points++
		}
	} else {
		points += 4
	}

	// Gross margin vs sector, up to 7: wider margins score higher.
	if s.GrossMargin > 0 {
		switch ratio := f.GrossMargin5yAvg / s.GrossMargin; {
		case ratio > 1.3:
			points += 7
		case ratio > 1.1:
			points += 5
		case ratio > 0.9:
			points += 4
		case ratio > 0.7:
			points += 2
		default:
			points++
		}
	} else {
		points += 3
	}

	return capAt(points, 15)
}

// scoreMovingAverages rewards price sitting above each moving average,
// weighted toward the long-term trend. Cap 10, neutral 5.
func scoreMovingAverages(ind *model.IndicatorBundle) int {
	if ind == nil {
		return 5
	}

	points := 0
	mm := ind.MovingAverages
	if mm.MM50 != nil && mm.MM50.PriceAbove {
		points += 2
	}
	if mm.MM100 != nil && mm.MM100.PriceAbove {
		points += 3
	}
	if mm.MM200 != nil && mm.MM200.PriceAbove {
		points += 5
	}
	return points
}

// scoreOscillators combines RSI band, MACD trend and Bollinger position.
// Cap 10, neutral 5.
func scoreOscillators(ind *model.IndicatorBundle) int {
	if ind == nil {
		return 5
	}

	points := 0

	if ind.RSI != nil {
		switch v := ind.RSI.Value; {
		case v < 40:
			points += 4 // oversold or close to it: rebound setup
		case v <= 60:
			points += 3
		case v <= 70:
			points += 2
		default:
			points++
		}
	}

	if ind.MACD.Bullish {
		points += 3
	} else {
		points++
	}

	if ind.Bollinger != nil {
		switch ind.Bollinger.Position {
		case model.BandLower:
			points += 3
		case model.BandMiddle:
			points += 2
		default:
			points++
		}
	}

	return capAt(points, 10)
}

// scoreVolume bands the 30-day volume deviation. Cap 5, neutral 2.
func scoreVolume(ind *model.IndicatorBundle) int {
	if ind == nil || ind.Volume == nil {
		return 2
	}

	switch dev := ind.Volume.DeviationPct; {
	case dev > 50:
		return 5
	case dev > 20:
		return 4
	case dev > 0:
		return 3
	case dev > -20:
		return 2
	default:
		return 1
	}
}

// scoreRiskContext sums points per horizon risk level. Cap 8, neutral 4.
func scoreRiskContext(ind *model.IndicatorBundle) int {
	if ind == nil {
		return 4
	}

	points := riskPoints(ind.Risk.ShortTerm) +
		riskPoints(ind.Risk.MediumTerm) +
		riskPoints(ind.Risk.LongTerm)
	return capAt(points, 8)
}

func riskPoints(level model.RiskLevel) int {
	switch level {
	case model.RiskLow:
		return 3
	case model.RiskHigh:
		return 0
	default:
		return 2
	}
}

// scoreSharesTrend bands the 3-year share-count change: buybacks score
// highest, heavy dilution scores zero. Cap 7, neutral 3.
func scoreSharesTrend(shares *model.SharesTrend) int {
	if shares == nil {
		return 3
	}

	switch t := shares.Trend3y; {
	case t < -5:
		return 7
	case t < -2:
		return 5
	case t < 0:
		return 4
	case t == 0:
		return 3
	case t < 3:
		return 2
	case t < 7:
		return 1
	default:
		return 0
	}
}

func capAt(points, cap int) int {
	if points > cap {
		return cap
	}
	return points
}
