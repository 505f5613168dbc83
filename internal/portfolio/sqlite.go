package portfolio

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"github.com/Dlanzas-cyber/PortfolioSentinel/internal/model"
)

// SQLiteStore persists the portfolio to a SQLite database.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore opens (or creates) the SQLite database and runs migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so reads during a rescan do not block writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info().Str("path", dbPath).Msg("sqlite portfolio store opened")
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS positions (
			ticker        TEXT PRIMARY KEY,
			name          TEXT,
			sector        TEXT,
			shares        REAL NOT NULL,
			buy_price     REAL NOT NULL,
			current_price REAL,
			score         INTEGER,
			created_at    INTEGER NOT NULL,
			updated_at    INTEGER NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS score_history (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			ticker    TEXT NOT NULL,
			score     INTEGER NOT NULL,
			timestamp INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_score_ticker_ts ON score_history(ticker, timestamp)`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

func (s *SQLiteStore) Upsert(pos *model.Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().Unix()
	_, err := s.db.Exec(`INSERT INTO positions
		(ticker, name, sector, shares, buy_price, current_price, score, created_at, updated_at)
		VALUES (?,?,?,?,?,?,?,?,?)
		ON CONFLICT(ticker) DO UPDATE SET
			name=excluded.name, sector=excluded.sector,
			shares=excluded.shares, buy_price=excluded.buy_price,
			current_price=excluded.current_price, score=excluded.score,
			updated_at=excluded.updated_at`,
		pos.Ticker, pos.Name, pos.Sector, pos.Shares, pos.BuyPrice,
		pos.CurrentPrice, pos.Score, now, now,
	)
	return err
}

func (s *SQLiteStore) Remove(ticker string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`DELETE FROM positions WHERE ticker = ?`, ticker)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("position %s not found", ticker)
	}
	return nil
}

func (s *SQLiteStore) Get(ticker string) (*model.Position, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := s.db.QueryRow(`SELECT ticker, name, sector, shares, buy_price,
		current_price, score, created_at, updated_at
		FROM positions WHERE ticker = ?`, ticker)
	return scanPosition(row)
}

func (s *SQLiteStore) List() ([]*model.Position, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT ticker, name, sector, shares, buy_price,
		current_price, score, created_at, updated_at
		FROM positions ORDER BY ticker`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var positions []*model.Position
	for rows.Next() {
		pos, err := scanPosition(rows)
		if err != nil {
			return nil, err
		}
		positions = append(positions, pos)
	}
	return positions, rows.Err()
}

func (s *SQLiteStore) UpdateQuote(ticker string, price float64, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().Unix()
	res, err := s.db.Exec(`UPDATE positions
		SET current_price = ?, score = ?, updated_at = ?
		WHERE ticker = ?`, price, score, now, ticker)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("position %s not found", ticker)
	}

	_, err = s.db.Exec(`INSERT INTO score_history (ticker, score, timestamp)
		VALUES (?,?,?)`, ticker, score, now)
	return err
}

func (s *SQLiteStore) ScoreHistory(ticker string, limit int) ([]ScorePoint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 {
		limit = 30
	}
	rows, err := s.db.Query(`SELECT ticker, score, timestamp FROM score_history
		WHERE ticker = ? ORDER BY timestamp DESC, id DESC LIMIT ?`, ticker, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []ScorePoint
	for rows.Next() {
		var p ScorePoint
		if err := rows.Scan(&p.Ticker, &p.Score, &p.At); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

func (s *SQLiteStore) Metrics() (*model.PortfolioMetrics, error) {
	positions, err := s.List()
	if err != nil {
		return nil, err
	}
	return ComputeMetrics(positions), nil
}

func (s *SQLiteStore) Close() error {
	log.Info().Msg("closing sqlite portfolio store")
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPosition(row rowScanner) (*model.Position, error) {
	var pos model.Position
	var created, updated int64
	err := row.Scan(&pos.Ticker, &pos.Name, &pos.Sector, &pos.Shares,
		&pos.BuyPrice, &pos.CurrentPrice, &pos.Score, &created, &updated)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("position not found")
	}
	if err != nil {
		return nil, err
	}
	pos.CreatedAt = time.Unix(created, 0)
	pos.UpdatedAt = time.Unix(updated, 0)
	return &pos, nil
}
