package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"sort"
	"time"

	"golang.org/x/time/rate"

	"github.com/Dlanzas-cyber/PortfolioSentinel/internal/model"
)

const (
	// DefaultBaseURL points at the Financial Modeling Prep v3 API.
	DefaultBaseURL = "https://financialmodelingprep.com/api/v3"

	maxRetries  = 3
	maxPeers    = 5
	historyYear = 365
)

// FMPFetcher implements Fetcher against the Financial Modeling Prep API.
// Requests share a rate limiter so batch analyses stay inside the plan quota.
type FMPFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client

	limiter *rate.Limiter
}

// NewFMPFetcher creates an FMP fetcher. An empty baseURL selects the public
// endpoint; proxyURL is optional.
func NewFMPFetcher(baseURL, apiKey, proxyURL string) *FMPFetcher {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &FMPFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		limiter: rate.NewLimiter(rate.Every(250*time.Millisecond), 1),
	}
}

func (f *FMPFetcher) Name() string { return "fmp" }

// apiGet performs one rate-limited GET with retries on 429 and 5xx, decoding
// the JSON body into out.
func (f *FMPFetcher) apiGet(endpoint string, params url.Values, out interface{}) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("apikey", f.APIKey)
	u := fmt.Sprintf("%s/%s?%s", f.BaseURL, endpoint, params.Encode())

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
		if err := f.limiter.Wait(context.Background()); err != nil {
			return err
		}

		resp, err := f.Client.Get(u)
		if err != nil {
			lastErr = fmt.Errorf("fmp fetch: %w", err)
			continue
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("fmp read body: %w", err)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("fmp: status %d", resp.StatusCode)
			continue
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("fmp: status %d, body: %s", resp.StatusCode, string(body))
		}
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("fmp decode: %w", err)
		}
		return nil
	}
	return lastErr
}

type fmpProfileEntry struct {
	Profile struct {
		Name      string  `json:"name"`
		Sector    string  `json:"sector"`
		Industry  string  `json:"industry"`
		Exchange  string  `json:"exchange"`
		Currency  string  `json:"currency"`
		MarketCap float64 `json:"marketCap"`
		Beta      float64 `json:"beta"`
	} `json:"profile"`
}

func (f *FMPFetcher) FetchProfile(ticker string) (*model.CompanyProfile, error) {
	var entries []fmpProfileEntry
	if err := f.apiGet("profile/"+url.PathEscape(ticker), nil, &entries); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("fmp: no profile for %s", ticker)
	}
	p := entries[0].Profile
	return &model.CompanyProfile{
		Name:      p.Name,
		Sector:    p.Sector,
		Industry:  p.Industry,
		Exchange:  p.Exchange,
		Currency:  p.Currency,
		MarketCap: p.MarketCap,
		Beta:      p.Beta,
	}, nil
}

type fmpIncome struct {
	Revenue     float64 `json:"revenue"`
	GrossProfit float64 `json:"grossProfit"`
	EPS         float64 `json:"eps"`
}

type fmpBalance struct {
	TotalDebt         float64 `json:"totalDebt"`
	ShareholderEquity float64 `json:"totalShareholderEquity"`
	SharesOutstanding float64 `json:"commonStockSharesOutstanding"`
}

type fmpCashFlow struct {
	IssuanceOfStock float64 `json:"issuanceOfStock"`
}

type fmpRatios struct {
	PERatio         float64 `json:"peRatio"`
	PriceToBook     float64 `json:"priceToBookRatio"`
	PayoutRatio     float64 `json:"payoutRatio"`
	GrossProfitMgn  float64 `json:"grossProfitMargin"`
	DebtEquityRatio float64 `json:"debtEquityRatio"`
}

func annualParams(limit int) url.Values {
	return url.Values{"period": {"annual"}, "limit": {fmt.Sprint(limit)}}
}

func (f *FMPFetcher) FetchFundamentals(ticker string) (*model.FundamentalSnapshot, error) {
	t := url.PathEscape(ticker)

	var income []fmpIncome
	if err := f.apiGet("income-statement/"+t, annualParams(5), &income); err != nil {
		return nil, err
	}
	var balance []fmpBalance
	if err := f.apiGet("balance-sheet-statement/"+t, annualParams(5), &balance); err != nil {
		return nil, err
	}
	var cashflow []fmpCashFlow
	if err := f.apiGet("cash-flow-statement/"+t, annualParams(5), &cashflow); err != nil {
		return nil, err
	}
	var ratios []fmpRatios
	if err := f.apiGet("financial-ratios/"+t, annualParams(5), &ratios); err != nil {
		return nil, err
	}
	if len(income) == 0 || len(balance) == 0 || len(cashflow) == 0 {
		return nil, fmt.Errorf("fmp: no fundamentals for %s", ticker)
	}

	var margins []float64
	for _, year := range income {
		if year.Revenue > 0 {
			margins = append(margins, year.GrossProfit/year.Revenue*100)
		}
	}
	avgMargin := 0.0
	if len(margins) > 0 {
		sum := 0.0
		for _, m := range margins {
			sum += m
		}
		avgMargin = sum / float64(len(margins))
	}

	// Statements arrive newest first; 5-year growth compares index 4 with 0.
	salesGrowth := 0.0
	epsGrowth := 0.0
	if len(income) >= 5 {
		if oldest := income[4].Revenue; oldest > 0 {
			salesGrowth = (income[0].Revenue - oldest) / oldest * 100
		}
		if oldest := income[4].EPS; oldest > 0 {
			epsGrowth = (income[0].EPS - oldest) / oldest * 100
		}
	}

	debtToEquity := 0.0
	if eq := balance[0].ShareholderEquity; eq != 0 {
		debtToEquity = balance[0].TotalDebt / eq
	}

	snap := &model.FundamentalSnapshot{
		GrossMargin5yAvg: round2(avgMargin),
		SalesGrowth5y:    round2(salesGrowth),
		EPSGrowth5y:      round2(epsGrowth),
		DebtToEquity:     round2(debtToEquity),
	}
	if len(ratios) > 0 {
		snap.PERatio = ratios[0].PERatio
		snap.PriceToBook = ratios[0].PriceToBook
		snap.PayoutRatio = round2(ratios[0].PayoutRatio * 100)
	}
	if issuance := cashflow[0].IssuanceOfStock; issuance < 0 {
		snap.HasBuyback = true
		snap.BuybackAmount = -issuance
	}
	return snap, nil
}

type fmpDividend struct {
	PaymentDate string  `json:"paymentDate"`
	Dividend    float64 `json:"dividend"`
}

func (f *FMPFetcher) FetchDividends(ticker string, buyPrice float64) (*model.DividendProfile, error) {
	var payments []fmpDividend
	params := url.Values{"limit": {"20"}}
	if err := f.apiGet("dividend-history/"+url.PathEscape(ticker), params, &payments); err != nil {
		return nil, err
	}

	// Annual totals keyed by payment year.
	byYear := map[string]float64{}
	for _, p := range payments {
		if len(p.PaymentDate) >= 4 {
			byYear[p.PaymentDate[:4]] += p.Dividend
		}
	}
	if len(byYear) == 0 {
		return &model.DividendProfile{}, nil
	}

	years := make([]string, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(years)))

	latest := byYear[years[0]]
	div := &model.DividendProfile{PaysDividend: latest > 0}
	if buyPrice > 0 {
		div.YieldAtBuy = round2(latest / buyPrice * 100)
	}
	if len(years) >= 4 {
		if old := byYear[years[3]]; old > 0 {
			div.Growth3y = round2((latest - old) / old * 100)
		}
	}
	if len(years) >= 6 {
		if old := byYear[years[5]]; old > 0 {
			div.Growth5y = round2((latest - old) / old * 100)
		}
	}
	return div, nil
}

func (f *FMPFetcher) FetchShares(ticker string) (*model.SharesTrend, error) {
	var balance []fmpBalance
	if err := f.apiGet("balance-sheet-statement/"+url.PathEscape(ticker), annualParams(5), &balance); err != nil {
		return nil, err
	}
	if len(balance) < 2 {
		return &model.SharesTrend{}, nil
	}

	current := balance[0].SharesOutstanding
	idx := 3
	if idx > len(balance)-1 {
		idx = len(balance) - 1
	}
	trend := 0.0
	if old := balance[idx].SharesOutstanding; old > 0 {
		trend = (current - old) / old * 100
	}
	return &model.SharesTrend{
		Outstanding: current,
		Trend3y:     round2(trend),
	}, nil
}

type fmpHistory struct {
	Historical []struct {
		Date   string  `json:"date"`
		Open   float64 `json:"open"`
		High   float64 `json:"high"`
		Low    float64 `json:"low"`
		Close  float64 `json:"close"`
		Volume float64 `json:"volume"`
	} `json:"historical"`
}

func (f *FMPFetcher) FetchHistory(ticker string, days int) ([]model.PriceBar, error) {
	if days <= 0 {
		days = historyYear
	}
	now := time.Now()
	params := url.Values{
		"from": {now.AddDate(0, 0, -days).Format("2006-01-02")},
		"to":   {now.Format("2006-01-02")},
	}

	var hist fmpHistory
	if err := f.apiGet("historical-price-full/"+url.PathEscape(ticker), params, &hist); err != nil {
		return nil, err
	}
	if len(hist.Historical) == 0 {
		return nil, fmt.Errorf("fmp: no price history for %s", ticker)
	}

	bars := make([]model.PriceBar, 0, len(hist.Historical))
	for _, h := range hist.Historical {
		date, err := time.Parse("2006-01-02", h.Date)
		if err != nil {
			continue
		}
		bars = append(bars, model.PriceBar{
			Date:   date,
			Open:   h.Open,
			High:   h.High,
			Low:    h.Low,
			Close:  h.Close,
			Volume: h.Volume,
		})
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	return bars, nil
}

type fmpPeers struct {
	Peers []string `json:"peers"`
}

func (f *FMPFetcher) FetchSector(ticker string) (*model.SectorBenchmark, error) {
	var peerEntries []fmpPeers
	if err := f.apiGet("stock-peers/"+url.PathEscape(ticker), nil, &peerEntries); err != nil {
		return nil, err
	}
	if len(peerEntries) == 0 || len(peerEntries[0].Peers) == 0 {
		return nil, fmt.Errorf("fmp: no peers for %s", ticker)
	}

	peers := peerEntries[0].Peers
	if len(peers) > maxPeers {
		peers = peers[:maxPeers]
	}

	var pes, pbs, margins, debts []float64
	for _, peer := range peers {
		var ratios []fmpRatios
		if err := f.apiGet("financial-ratios/"+url.PathEscape(peer), annualParams(1), &ratios); err != nil {
			continue
		}
		if len(ratios) == 0 {
			continue
		}
		r := ratios[0]
		if r.PERatio > 0 {
			pes = append(pes, r.PERatio)
		}
		if r.PriceToBook > 0 {
			pbs = append(pbs, r.PriceToBook)
		}
		if r.GrossProfitMgn != 0 {
			margins = append(margins, r.GrossProfitMgn*100)
		}
		if r.DebtEquityRatio >= 0 {
			debts = append(debts, r.DebtEquityRatio)
		}
	}

	return &model.SectorBenchmark{
		PE:           avg(pes),
		PB:           avg(pbs),
		GrossMargin:  avg(margins),
		DebtToEquity: avg(debts),
	}, nil
}

func avg(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return round2(sum / float64(len(values)))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
