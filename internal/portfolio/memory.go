package portfolio

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Dlanzas-cyber/PortfolioSentinel/internal/model"
)

// MemoryStore is an in-memory Store for development and tests.
type MemoryStore struct {
	mu        sync.Mutex
	positions map[string]*model.Position
	history   []ScorePoint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{positions: make(map[string]*model.Position)}
}

func (m *MemoryStore) Upsert(pos *model.Position) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *pos
	now := time.Now()
	if existing, ok := m.positions[pos.Ticker]; ok {
		cp.CreatedAt = existing.CreatedAt
	} else {
		cp.CreatedAt = now
	}
	cp.UpdatedAt = now
	m.positions[pos.Ticker] = &cp
	return nil
}

func (m *MemoryStore) Remove(ticker string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.positions[ticker]; !ok {
		return fmt.Errorf("position %s not found", ticker)
	}
	delete(m.positions, ticker)
	return nil
}

func (m *MemoryStore) Get(ticker string) (*model.Position, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	pos, ok := m.positions[ticker]
	if !ok {
		return nil, fmt.Errorf("position %s not found", ticker)
	}
	cp := *pos
	return &cp, nil
}

func (m *MemoryStore) List() ([]*model.Position, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*model.Position, 0, len(m.positions))
	for _, pos := range m.positions {
		cp := *pos
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Ticker < out[j].Ticker })
	return out, nil
}

func (m *MemoryStore) UpdateQuote(ticker string, price float64, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	pos, ok := m.positions[ticker]
	if !ok {
		return fmt.Errorf("position %s not found", ticker)
	}
	pos.CurrentPrice = price
	pos.Score = score
	pos.UpdatedAt = time.Now()
	m.history = append(m.history, ScorePoint{Ticker: ticker, Score: score, At: time.Now().Unix()})
	return nil
}

func (m *MemoryStore) ScoreHistory(ticker string, limit int) ([]ScorePoint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var points []ScorePoint
	for i := len(m.history) - 1; i >= 0 && (limit <= 0 || len(points) < limit); i-- {
		if m.history[i].Ticker == ticker {
			points = append(points, m.history[i])
		}
	}
	return points, nil
}

func (m *MemoryStore) Metrics() (*model.PortfolioMetrics, error) {
	positions, err := m.List()
	if err != nil {
		return nil, err
	}
	return ComputeMetrics(positions), nil
}

func (m *MemoryStore) Close() error { return nil }
