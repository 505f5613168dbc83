package collector

import "github.com/Dlanzas-cyber/PortfolioSentinel/internal/model"

// Fetcher defines the interface for fetching company data.
//
// Each method covers one data block of a snapshot. A nil result with a nil
// error is not used; fetch failures return an error and the caller decides
// how to degrade.
type Fetcher interface {
	FetchProfile(ticker string) (*model.CompanyProfile, error)
	FetchFundamentals(ticker string) (*model.FundamentalSnapshot, error)
	FetchDividends(ticker string, buyPrice float64) (*model.DividendProfile, error)
	FetchShares(ticker string) (*model.SharesTrend, error)
	FetchHistory(ticker string, days int) ([]model.PriceBar, error)
	FetchSector(ticker string) (*model.SectorBenchmark, error)
	Name() string
}
