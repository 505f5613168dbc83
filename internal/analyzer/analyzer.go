// Package analyzer runs the full analysis pipeline for a company: technical
// indicators, composite score and the Spanish narrative.
package analyzer

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Dlanzas-cyber/PortfolioSentinel/internal/calculator"
	"github.com/Dlanzas-cyber/PortfolioSentinel/internal/model"
	"github.com/Dlanzas-cyber/PortfolioSentinel/internal/narrative"
	"github.com/Dlanzas-cyber/PortfolioSentinel/internal/scoring"
)

// DefaultConcurrency bounds the workers of AnalyzeMany.
const DefaultConcurrency = 4

// Analyze turns one snapshot into a complete analysis result. It never fails:
// missing data degrades individual sections to their neutral defaults, and a
// history shorter than the indicator minimum yields a result without
// indicators.
func Analyze(snap *model.CompanySnapshot) *model.AnalysisResult {
	ind := calculator.ComputeAll(snap.History, snap.Beta())
	if ind == nil {
		log.Warn().
			Str("ticker", snap.Ticker).
			Int("bars", len(snap.History)).
			Int("min_bars", calculator.MinHistoryBars).
			Msg("history too short, skipping technical indicators")
	}

	score := scoring.Compute(snap, ind)

	zone := model.EntryZone{State: model.EntryInsufficient}
	if ind != nil {
		zone = ind.EntryZone
	}

	return &model.AnalysisResult{
		Ticker:           snap.Ticker,
		Score:            score,
		ExecutiveSummary: narrative.ExecutiveSummary(snap, ind, score),
		Risks:            narrative.Risks(snap, ind),
		Opportunities:    narrative.Opportunities(snap, ind),
		EntryZone:        zone,
		Indicators:       ind,
		GeneratedAt:      time.Now(),
	}
}

// AnalyzeMany analyzes snapshots concurrently with a bounded worker pool and
// returns results in input order. A cancelled context stops dispatching new
// work; positions not analyzed stay nil.
func AnalyzeMany(ctx context.Context, snaps []*model.CompanySnapshot, concurrency int) []*model.AnalysisResult {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]*model.AnalysisResult, len(snaps))
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i, snap := range snaps {
		if ctx.Err() != nil {
			log.Warn().Err(ctx.Err()).Msg("batch analysis cancelled")
			wg.Wait()
			return results
		}
		select {
		case <-ctx.Done():
			log.Warn().Err(ctx.Err()).Msg("batch analysis cancelled")
			wg.Wait()
			return results
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(i int, snap *model.CompanySnapshot) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = Analyze(snap)
		}(i, snap)
	}

	wg.Wait()
	return results
}
