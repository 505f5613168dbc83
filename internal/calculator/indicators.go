// Package calculator computes the technical indicators the scoring and
// narrative stages consume: moving averages, RSI, MACD, Bollinger bands,
// volume deviation and the support-based entry zone.
//
// Every indicator degrades softly: too little history yields a nil signal
// (ErrInsufficientData internally), never a hard failure, so a partial
// bundle still lets scoring proceed with neutral defaults.
package calculator

import (
	"github.com/Dlanzas-cyber/PortfolioSentinel/internal/model"
	"github.com/Dlanzas-cyber/PortfolioSentinel/internal/risk"
)

// MinHistoryBars is the minimum series length for any indicator work.
const MinHistoryBars = 30

const rsiPeriod = 14

// ComputeAll builds the full indicator bundle from an ascending price series
// and the company beta. Returns nil when fewer than MinHistoryBars bars are
// available; individual indicators needing more history than provided are
// left nil inside the bundle.
func ComputeAll(bars []model.PriceBar, beta float64) *model.IndicatorBundle {
	if len(bars) < MinHistoryBars {
		return nil
	}

	closes := model.Closes(bars)
	current := closes[len(closes)-1]

	bundle := &model.IndicatorBundle{CurrentPrice: current}
	bundle.MovingAverages = model.MovingAverages{
		MM50:  movingAverage(closes, current, 50),
		MM100: movingAverage(closes, current, 100),
		MM200: movingAverage(closes, current, 200),
	}

	if v, err := RSI(closes, rsiPeriod); err == nil {
		bundle.RSI = &model.RSISignal{Value: v, Zone: rsiZone(v)}
	}

	if value, signal, bullish, err := MACD(closes); err == nil {
		bundle.MACD = model.MACDSignal{Value: value, Signal: signal, Bullish: bullish}
	}

	if bands, err := Bollinger(closes); err == nil {
		bundle.Bollinger = bands
	}

	if vol, err := AnalyzeVolume(bars); err == nil {
		bundle.Volume = vol
	}

	bundle.EntryZone = EntryZone(current, bundle.MovingAverages.MM200, bundle.Bollinger)

	rin := risk.Inputs{Beta: beta, BollingerPosition: model.BandMiddle}
	if bundle.RSI != nil {
		rin.RSI = bundle.RSI.Value
	}
	if bundle.Volume != nil {
		rin.VolumeDeviationPct = bundle.Volume.DeviationPct
	}
	if bundle.Bollinger != nil {
		rin.BollingerPosition = bundle.Bollinger.Position
	}
	bundle.Risk = risk.Classify(rin)

	return bundle
}

func movingAverage(closes []float64, current float64, period int) *model.MovingAverage {
	v, err := SMA(closes, period)
	if err != nil {
		return nil
	}
	return &model.MovingAverage{Value: v, PriceAbove: current > v}
}

func rsiZone(v float64) model.RSIZone {
	switch {
	case v > 70:
		return model.RSIOverbought
	case v < 30:
		return model.RSIOversold
	default:
		return model.RSINeutral
	}
}
