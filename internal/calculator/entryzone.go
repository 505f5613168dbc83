package calculator

import "github.com/Dlanzas-cyber/PortfolioSentinel/internal/model"

// EntryZone derives the support-based acquisition range from the MM200 and
// the lower Bollinger band. The zone is active while price sits at or below
// its upper bound; otherwise the pullback distance is reported. With either
// support missing the zone is marked insufficient.
func EntryZone(currentPrice float64, mm200 *model.MovingAverage, bands *model.BollingerBands) model.EntryZone {
	if mm200 == nil || bands == nil {
		return model.EntryZone{State: model.EntryInsufficient}
	}

	lo, hi := mm200.Value, bands.Lower
	if lo > hi {
		lo, hi = hi, lo
	}

	zone := model.EntryZone{Min: round2(lo), Max: round2(hi)}
	if currentPrice <= zone.Max {
		zone.State = model.EntryActive
		return zone
	}
	zone.State = model.EntryAwaitPull
	if currentPrice > 0 {
		zone.DistancePct = round2((currentPrice - zone.Max) / currentPrice * 100)
	}
	return zone
}
