package scheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dlanzas-cyber/PortfolioSentinel/internal/collector"
	"github.com/Dlanzas-cyber/PortfolioSentinel/internal/model"
	"github.com/Dlanzas-cyber/PortfolioSentinel/internal/notifier"
	"github.com/Dlanzas-cyber/PortfolioSentinel/internal/portfolio"
)

func newTestScheduler(t *testing.T) (*Scheduler, portfolio.Store) {
	t.Helper()
	store := portfolio.NewMemoryStore()
	col := collector.NewCollector(&collector.MockFetcher{BasePrice: 100})
	s := NewScheduler(context.Background(), col, store, nil, &notifier.Monitor{})
	return s, store
}

func TestHandleCommand_Agregar(t *testing.T) {
	s, store := newTestScheduler(t)

	reply := s.HandleCommand("/agregar aapl 10 95.50")
	assert.Contains(t, reply, "AAPL añadida a la cartera")

	pos, err := store.Get("AAPL")
	require.NoError(t, err)
	assert.Equal(t, "Mock Corp", pos.Name)
	assert.Equal(t, 10.0, pos.Shares)
	assert.Equal(t, 95.50, pos.BuyPrice)
	assert.Greater(t, pos.Score, 0)
	assert.Greater(t, pos.CurrentPrice, 0.0)
}

func TestHandleCommand_AgregarBadArgs(t *testing.T) {
	s, _ := newTestScheduler(t)

	assert.Equal(t, "Uso: /agregar TICKER ACCIONES PRECIO", s.HandleCommand("/agregar AAPL"))
	assert.Equal(t, "Acciones y precio deben ser números positivos", s.HandleCommand("/agregar AAPL diez 95"))
	assert.Equal(t, "Acciones y precio deben ser números positivos", s.HandleCommand("/agregar AAPL -5 95"))
	assert.Equal(t, "Acciones y precio deben ser números positivos", s.HandleCommand("/agregar AAPL 10 0"))
}

func TestHandleCommand_Cartera(t *testing.T) {
	s, store := newTestScheduler(t)

	require.NoError(t, store.Upsert(&model.Position{
		Ticker: "AAPL", Shares: 10, BuyPrice: 100, CurrentPrice: 110, Score: 72,
	}))

	reply := s.HandleCommand("/cartera")
	assert.Contains(t, reply, "Resumen de Cartera")
	assert.Contains(t, reply, "Posiciones: 1")
	assert.Contains(t, reply, "AAPL: 72/100")
}

func TestHandleCommand_Analizar(t *testing.T) {
	s, _ := newTestScheduler(t)

	assert.Equal(t, "Uso: /analizar TICKER", s.HandleCommand("/analizar"))

	reply := s.HandleCommand("/analizar msft")
	assert.Contains(t, reply, "Análisis de MSFT")
	assert.Contains(t, reply, "Desglose:")
}

func TestHandleCommand_Eliminar(t *testing.T) {
	s, store := newTestScheduler(t)

	require.NoError(t, store.Upsert(&model.Position{Ticker: "KO", Shares: 5, BuyPrice: 60}))

	assert.Contains(t, s.HandleCommand("/eliminar ko"), "KO eliminada")
	_, err := store.Get("KO")
	assert.Error(t, err)

	assert.Contains(t, s.HandleCommand("/eliminar KO"), "No se pudo eliminar")
}

func TestHandleCommand_Unknown(t *testing.T) {
	s, _ := newTestScheduler(t)

	assert.Equal(t, helpText, s.HandleCommand("/ayuda"))
	assert.Equal(t, helpText, s.HandleCommand(""))
}

func TestRegisterAll(t *testing.T) {
	s, _ := newTestScheduler(t)

	require.NoError(t, s.RegisterAll("0 0 22 * * 1-5", "0 0 9 * * 6"))
	assert.Error(t, s.RegisterAll("not a cron", "0 0 9 * * 6"))
}

func TestTopThree(t *testing.T) {
	positions := []*model.Position{
		{Ticker: "A", Score: 50},
		{Ticker: "B", Score: 80},
		{Ticker: "C", Score: 65},
		{Ticker: "D", Score: 90},
	}

	top := topThree(positions)
	require.Len(t, top, 3)
	assert.Equal(t, "D", top[0].Ticker)
	assert.Equal(t, "B", top[1].Ticker)
	assert.Equal(t, "C", top[2].Ticker)
}
