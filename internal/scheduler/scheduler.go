package scheduler

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/Dlanzas-cyber/PortfolioSentinel/internal/analyzer"
	"github.com/Dlanzas-cyber/PortfolioSentinel/internal/collector"
	"github.com/Dlanzas-cyber/PortfolioSentinel/internal/model"
	"github.com/Dlanzas-cyber/PortfolioSentinel/internal/notifier"
	"github.com/Dlanzas-cyber/PortfolioSentinel/internal/portfolio"
)

// Scheduler manages the cron tasks: the daily portfolio rescan and the
// weekly digest.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Store     portfolio.Store
	Notifier  *notifier.TelegramNotifier
	Monitor   *notifier.Monitor
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, store portfolio.Store, tn *notifier.TelegramNotifier, mon *notifier.Monitor) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Store:     store,
		Notifier:  tn,
		Monitor:   mon,
		Ctx:       ctx,
	}
}

// RegisterAll registers the daily rescan and the weekly digest.
func (s *Scheduler) RegisterAll(dailyCron, weeklyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.dailyRescan); err != nil {
		return fmt.Errorf("register daily rescan: %w", err)
	}
	if _, err := s.Cron.AddFunc(weeklyCron, s.weeklyDigest); err != nil {
		return fmt.Errorf("register weekly digest: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Info().Msg("scheduler stopped")
}

// RunRescanNow executes the daily rescan immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunRescanNow() {
	s.dailyRescan()
}

// dailyRescan re-analyzes every position, persists the refreshed scores and
// emits alerts for score moves, top-10 changes and newly active entry zones.
func (s *Scheduler) dailyRescan() {
	log.Info().Msg("running daily rescan")

	previous, err := s.Store.List()
	if err != nil {
		log.Error().Err(err).Msg("list positions")
		return
	}
	if len(previous) == 0 {
		log.Info().Msg("empty portfolio, nothing to rescan")
		return
	}

	for _, pos := range previous {
		select {
		case <-s.Ctx.Done():
			log.Warn().Msg("rescan cancelled")
			return
		default:
		}

		res, snap, err := s.analyzeTicker(pos.Ticker, pos.BuyPrice)
		if err != nil {
			log.Error().Err(err).Str("ticker", pos.Ticker).Msg("rescan analysis failed")
			continue
		}

		price := pos.CurrentPrice
		if n := len(snap.History); n > 0 {
			price = snap.History[n-1].Close
		}
		if err := s.Store.UpdateQuote(pos.Ticker, price, res.Score.Total); err != nil {
			log.Error().Err(err).Str("ticker", pos.Ticker).Msg("update quote")
		}

		if res.EntryZone.State == model.EntryActive {
			s.trySend(notifier.FormatEntryZoneAlert(pos.Ticker, price, res.EntryZone))
		}
	}

	current, err := s.Store.List()
	if err != nil {
		log.Error().Err(err).Msg("list positions after rescan")
		return
	}
	alerts := s.Monitor.Compare(previous, current)
	log.Info().Int("positions", len(current)).Int("alerts", len(alerts)).Msg("daily rescan finished")
}

// weeklyDigest sends the portfolio summary.
func (s *Scheduler) weeklyDigest() {
	log.Info().Msg("running weekly digest")

	metrics, err := s.Store.Metrics()
	if err != nil {
		log.Error().Err(err).Msg("portfolio metrics")
		return
	}
	positions, err := s.Store.List()
	if err != nil {
		log.Error().Err(err).Msg("list positions")
		return
	}
	top := topThree(positions)
	s.trySend(notifier.FormatPortfolioDigest(metrics, top))
}

func topThree(positions []*model.Position) []*model.Position {
	sorted := make([]*model.Position, len(positions))
	copy(sorted, positions)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Score > sorted[j].Score })
	if len(sorted) > 3 {
		sorted = sorted[:3]
	}
	return sorted
}

func (s *Scheduler) analyzeTicker(ticker string, buyPrice float64) (*model.AnalysisResult, *model.CompanySnapshot, error) {
	snap, err := s.Collector.Collect(ticker, buyPrice)
	if err != nil {
		return nil, nil, err
	}
	return analyzer.Analyze(snap), snap, nil
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return helpText
	}

	switch fields[0] {
	case "/cartera":
		metrics, err := s.Store.Metrics()
		if err != nil {
			return fmt.Sprintf("Error al leer la cartera: %v", err)
		}
		positions, err := s.Store.List()
		if err != nil {
			return fmt.Sprintf("Error al leer la cartera: %v", err)
		}
		return notifier.FormatPortfolioDigest(metrics, topThree(positions))

	case "/analizar":
		if len(fields) < 2 {
			return "Uso: /analizar TICKER"
		}
		ticker := strings.ToUpper(fields[1])
		buyPrice := 0.0
		if pos, err := s.Store.Get(ticker); err == nil {
			buyPrice = pos.BuyPrice
		}
		res, _, err := s.analyzeTicker(ticker, buyPrice)
		if err != nil {
			return fmt.Sprintf("No se pudo analizar %s: %v", ticker, err)
		}
		return notifier.FormatAnalysis(res)

	case "/agregar":
		if len(fields) < 4 {
			return "Uso: /agregar TICKER ACCIONES PRECIO"
		}
		ticker := strings.ToUpper(fields[1])
		shares, err1 := strconv.ParseFloat(fields[2], 64)
		buyPrice, err2 := strconv.ParseFloat(fields[3], 64)
		if err1 != nil || err2 != nil || shares <= 0 || buyPrice <= 0 {
			return "Acciones y precio deben ser números positivos"
		}
		res, snap, err := s.analyzeTicker(ticker, buyPrice)
		if err != nil {
			return fmt.Sprintf("No se pudo analizar %s: %v", ticker, err)
		}
		pos := &model.Position{
			Ticker:   ticker,
			Shares:   shares,
			BuyPrice: buyPrice,
			Score:    res.Score.Total,
		}
		if snap.Profile != nil {
			pos.Name = snap.Profile.Name
			pos.Sector = snap.Profile.Sector
		}
		if n := len(snap.History); n > 0 {
			pos.CurrentPrice = snap.History[n-1].Close
		}
		if err := s.Store.Upsert(pos); err != nil {
			return fmt.Sprintf("Error al guardar la posición: %v", err)
		}
		return fmt.Sprintf("✅ %s añadida a la cartera (score %d/100)", ticker, res.Score.Total)

	case "/eliminar":
		if len(fields) < 2 {
			return "Uso: /eliminar TICKER"
		}
		ticker := strings.ToUpper(fields[1])
		if err := s.Store.Remove(ticker); err != nil {
			return fmt.Sprintf("No se pudo eliminar %s: %v", ticker, err)
		}
		return fmt.Sprintf("🗑 %s eliminada de la cartera", ticker)

	case "/rescan":
		go s.dailyRescan()
		return "🔄 Reanálisis de cartera iniciado"

	default:
		return helpText
	}
}

const helpText = `Comandos disponibles:
• /cartera - resumen de la cartera
• /analizar TICKER - análisis completo de una empresa
• /agregar TICKER ACCIONES PRECIO - añadir posición
• /eliminar TICKER - eliminar posición
• /rescan - reanalizar toda la cartera`

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Error().Err(err).Msg("send notification")
	}
}
