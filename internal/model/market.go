package model

import "time"

// PriceBar represents a single trading session, ordered ascending by date.
type PriceBar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// Closes extracts the close prices of a bar series in order.
func Closes(bars []PriceBar) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}

// CompanySnapshot bundles everything the analysis pipeline consumes for one
// ticker: the immutable input of a single Analyze call.
//
// Nil sub-snapshots mean the fetch layer could not provide that block; the
// scoring engine substitutes neutral defaults. Inside a non-nil block a zero
// numeric field also means "no signal": the fetch layer reports unavailable
// values as 0 and the pipeline does not try to tell them apart.
type CompanySnapshot struct {
	Ticker       string               `json:"ticker"`
	Profile      *CompanyProfile      `json:"profile,omitempty"`
	Fundamentals *FundamentalSnapshot `json:"fundamentals,omitempty"`
	Sector       *SectorBenchmark     `json:"sector,omitempty"`
	Dividends    *DividendProfile     `json:"dividends,omitempty"`
	Shares       *SharesTrend         `json:"shares_outstanding,omitempty"`
	History      []PriceBar           `json:"historical_prices,omitempty"`
	FetchedAt    time.Time            `json:"fetched_at"`
}

// Beta returns the profile beta, or 1.0 when no profile is available.
func (s *CompanySnapshot) Beta() float64 {
	if s.Profile == nil || s.Profile.Beta == 0 {
		return 1.0
	}
	return s.Profile.Beta
}

// Name returns a display name for narrative text.
func (s *CompanySnapshot) Name() string {
	if s.Profile != nil && s.Profile.Name != "" {
		return s.Profile.Name
	}
	if s.Ticker != "" {
		return s.Ticker
	}
	return "La empresa"
}
