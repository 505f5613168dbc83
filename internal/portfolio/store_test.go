package portfolio

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dlanzas-cyber/PortfolioSentinel/internal/model"
)

func testStores(t *testing.T) map[string]Store {
	t.Helper()

	sqlite, err := NewSQLiteStore(filepath.Join(t.TempDir(), "portfolio.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqlite.Close() })

	return map[string]Store{
		"sqlite": sqlite,
		"memory": NewMemoryStore(),
	}
}

func TestStore_UpsertGetList(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			pos := &model.Position{
				Ticker: "AAPL", Name: "Apple Inc", Sector: "Technology",
				Shares: 100, BuyPrice: 185.20, CurrentPrice: 190.0, Score: 78,
			}
			require.NoError(t, store.Upsert(pos))

			got, err := store.Get("AAPL")
			require.NoError(t, err)
			assert.Equal(t, "Apple Inc", got.Name)
			assert.Equal(t, 100.0, got.Shares)
			assert.Equal(t, 78, got.Score)
			assert.False(t, got.CreatedAt.IsZero())

			// Upsert again updates in place.
			pos.Shares = 120
			pos.Score = 80
			require.NoError(t, store.Upsert(pos))

			got, err = store.Get("AAPL")
			require.NoError(t, err)
			assert.Equal(t, 120.0, got.Shares)
			assert.Equal(t, 80, got.Score)

			require.NoError(t, store.Upsert(&model.Position{Ticker: "MSFT", Shares: 10, BuyPrice: 400}))
			list, err := store.List()
			require.NoError(t, err)
			require.Len(t, list, 2)
			assert.Equal(t, "AAPL", list[0].Ticker)
			assert.Equal(t, "MSFT", list[1].Ticker)
		})
	}
}

func TestStore_Remove(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Upsert(&model.Position{Ticker: "KO", Shares: 50, BuyPrice: 60}))
			require.NoError(t, store.Remove("KO"))

			_, err := store.Get("KO")
			assert.Error(t, err)
			assert.Error(t, store.Remove("KO"))
		})
	}
}

func TestStore_UpdateQuoteAndHistory(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Upsert(&model.Position{Ticker: "JNJ", Shares: 30, BuyPrice: 150, Score: 60}))

			require.NoError(t, store.UpdateQuote("JNJ", 158.5, 66))
			require.NoError(t, store.UpdateQuote("JNJ", 160.0, 71))

			got, err := store.Get("JNJ")
			require.NoError(t, err)
			assert.Equal(t, 160.0, got.CurrentPrice)
			assert.Equal(t, 71, got.Score)

			history, err := store.ScoreHistory("JNJ", 10)
			require.NoError(t, err)
			require.Len(t, history, 2)
			// Most recent first.
			assert.Equal(t, 71, history[0].Score)
			assert.Equal(t, 66, history[1].Score)

			assert.Error(t, store.UpdateQuote("NOPE", 1, 1))
		})
	}
}

func TestStore_Metrics(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Upsert(&model.Position{Ticker: "A", Shares: 10, BuyPrice: 100, CurrentPrice: 110, Score: 80}))
			require.NoError(t, store.Upsert(&model.Position{Ticker: "B", Shares: 5, BuyPrice: 200, CurrentPrice: 180, Score: 60}))

			m, err := store.Metrics()
			require.NoError(t, err)
			assert.Equal(t, 2, m.Positions)
			assert.Equal(t, 2000.0, m.Invested)
			assert.Equal(t, 2000.0, m.MarketValue)
			assert.Equal(t, 0.0, m.PnL)
			assert.Equal(t, 70.0, m.AvgScore)
		})
	}
}

func TestComputeMetrics_Empty(t *testing.T) {
	m := ComputeMetrics(nil)
	assert.Equal(t, 0, m.Positions)
	assert.Zero(t, m.PnLPct)
	assert.Zero(t, m.AvgScore)
}
