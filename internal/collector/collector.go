package collector

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Dlanzas-cyber/PortfolioSentinel/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Profile      *model.CompanyProfile
	Fundamentals *model.FundamentalSnapshot
	Dividends    *model.DividendProfile
	Shares       *model.SharesTrend
	History      []model.PriceBar
	Sector       *model.SectorBenchmark

	BasePrice float64
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchProfile(_ string) (*model.CompanyProfile, error) {
	if m.Profile != nil {
		return m.Profile, nil
	}
	return &model.CompanyProfile{Name: "Mock Corp", Sector: "Technology", Beta: 1.0}, nil
}

func (m *MockFetcher) FetchFundamentals(_ string) (*model.FundamentalSnapshot, error) {
	if m.Fundamentals != nil {
		return m.Fundamentals, nil
	}
	return &model.FundamentalSnapshot{}, nil
}

func (m *MockFetcher) FetchDividends(_ string, _ float64) (*model.DividendProfile, error) {
	if m.Dividends != nil {
		return m.Dividends, nil
	}
	return &model.DividendProfile{}, nil
}

func (m *MockFetcher) FetchShares(_ string) (*model.SharesTrend, error) {
	if m.Shares != nil {
		return m.Shares, nil
	}
	return &model.SharesTrend{}, nil
}

func (m *MockFetcher) FetchHistory(_ string, days int) ([]model.PriceBar, error) {
	if m.History != nil {
		return m.History, nil
	}
	return GenerateMockBars(m.BasePrice, days), nil
}

func (m *MockFetcher) FetchSector(_ string) (*model.SectorBenchmark, error) {
	if m.Sector != nil {
		return m.Sector, nil
	}
	return &model.SectorBenchmark{}, nil
}

// GenerateMockBars builds a mildly trending synthetic series around basePrice.
func GenerateMockBars(basePrice float64, count int) []model.PriceBar {
	if basePrice <= 0 {
		basePrice = 100
	}
	bars := make([]model.PriceBar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.PriceBar{
			Date:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// Collector assembles complete company snapshots from a Fetcher.
type Collector struct {
	Fetcher     Fetcher
	HistoryDays int
}

// NewCollector creates a collector fetching one year of price history.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher, HistoryDays: historyYear}
}

// Collect fetches every data block for the ticker. Only a missing profile is
// fatal; any other block that fails is logged and left nil so the analysis
// degrades to its neutral defaults. buyPrice is the user's average purchase
// price, used for the yield-at-cost figure, and may be 0.
func (c *Collector) Collect(ticker string, buyPrice float64) (*model.CompanySnapshot, error) {
	profile, err := c.Fetcher.FetchProfile(ticker)
	if err != nil {
		return nil, fmt.Errorf("fetch profile %s: %w", ticker, err)
	}

	snap := &model.CompanySnapshot{
		Ticker:    ticker,
		Profile:   profile,
		FetchedAt: time.Now(),
	}

	if fund, err := c.Fetcher.FetchFundamentals(ticker); err != nil {
		log.Warn().Err(err).Str("ticker", ticker).Msg("fundamentals unavailable")
	} else {
		snap.Fundamentals = fund
	}

	if div, err := c.Fetcher.FetchDividends(ticker, buyPrice); err != nil {
		log.Warn().Err(err).Str("ticker", ticker).Msg("dividend history unavailable")
	} else {
		snap.Dividends = div
	}

	if shares, err := c.Fetcher.FetchShares(ticker); err != nil {
		log.Warn().Err(err).Str("ticker", ticker).Msg("shares outstanding unavailable")
	} else {
		snap.Shares = shares
	}

	if bars, err := c.Fetcher.FetchHistory(ticker, c.HistoryDays); err != nil {
		log.Warn().Err(err).Str("ticker", ticker).Msg("price history unavailable")
	} else {
		snap.History = bars
	}

	if sector, err := c.Fetcher.FetchSector(ticker); err != nil {
		log.Warn().Err(err).Str("ticker", ticker).Msg("sector benchmark unavailable")
	} else {
		snap.Sector = sector
	}

	return snap, nil
}
