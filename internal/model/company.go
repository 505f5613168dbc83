package model

// CompanyProfile holds basic descriptive data about a listed company.
type CompanyProfile struct {
	Name      string  `json:"name"`
	Sector    string  `json:"sector"`
	Industry  string  `json:"industry"`
	Exchange  string  `json:"exchange"`
	Currency  string  `json:"currency"`
	MarketCap float64 `json:"market_cap"`
	Beta      float64 `json:"beta"`
}

// FundamentalSnapshot holds point-in-time derived ratios from the latest
// annual filing plus 5-year history. Unavailable fields are 0.
type FundamentalSnapshot struct {
	PERatio          float64 `json:"pe_ratio"`
	PriceToBook      float64 `json:"price_to_book"`
	GrossMargin5yAvg float64 `json:"gross_margin_5y_avg"`
	SalesGrowth5y    float64 `json:"sales_growth_5y"`
	EPSGrowth5y      float64 `json:"eps_growth_5y"`
	DebtToEquity     float64 `json:"debt_to_equity"`
	PayoutRatio      float64 `json:"payout_ratio"`
	HasBuyback       bool    `json:"has_buyback"`
	BuybackAmount    float64 `json:"buyback_amount"`
}

// SectorBenchmark holds peer-group averages, used only as denominators for
// ratio comparisons.
type SectorBenchmark struct {
	PE           float64 `json:"sector_pe"`
	PB           float64 `json:"sector_pb"`
	GrossMargin  float64 `json:"sector_gross_margin"`
	DebtToEquity float64 `json:"sector_debt_to_equity"`
}

// DividendProfile describes the shareholder-payout history of a company.
// Growth figures are percentages over the stated window.
type DividendProfile struct {
	YieldAtBuy   float64 `json:"dividend_yield_at_buy"`
	Growth3y     float64 `json:"dividend_growth_3y"`
	Growth5y     float64 `json:"dividend_growth_5y"`
	PaysDividend bool    `json:"pays_dividend"`
}

// SharesTrend tracks the share count and its 3-year percentage change.
// Negative trend means buybacks, positive means dilution.
type SharesTrend struct {
	Outstanding float64 `json:"shares_outstanding"`
	Trend3y     float64 `json:"shares_trend_3y"`
}
