package notifier

import (
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/Dlanzas-cyber/PortfolioSentinel/internal/model"
)

const topSize = 10

// Sender abstracts the Telegram notifier for monitoring.
type Sender interface {
	Send(text string) error
}

// Monitor compares portfolio states between rescans and emits alerts for
// significant score moves and top-10 membership changes.
type Monitor struct {
	Sender    Sender
	Threshold int // minimum absolute score change that triggers an alert
}

// Compare diffs the previous and current position sets and sends the
// resulting alerts. Returns the messages sent, for logging and tests.
func (m *Monitor) Compare(previous, current []*model.Position) []string {
	prevByTicker := map[string]*model.Position{}
	for _, p := range previous {
		prevByTicker[p.Ticker] = p
	}
	currByTicker := map[string]*model.Position{}
	for _, p := range current {
		currByTicker[p.Ticker] = p
	}

	var messages []string
	send := func(text string) {
		messages = append(messages, text)
		if m.Sender != nil {
			if err := m.Sender.Send(text); err != nil {
				log.Error().Err(err).Msg("send portfolio alert")
			}
		}
	}

	threshold := m.Threshold
	if threshold <= 0 {
		threshold = 5
	}

	for _, curr := range current {
		prev, ok := prevByTicker[curr.Ticker]
		if !ok {
			continue
		}
		diff := curr.Score - prev.Score
		if diff >= threshold || diff <= -threshold {
			send(FormatScoreChange(curr.Ticker, prev.Score, curr.Score))
		}
	}

	prevTop := topTickers(previous)
	currTop := topByScore(current)
	currTopSet := map[string]bool{}
	for _, p := range currTop {
		currTopSet[p.Ticker] = true
	}

	for rank, p := range currTop {
		if !prevTop[p.Ticker] && len(previous) > 0 {
			send(FormatTop10Entry(p.Ticker, rank+1, p.Score))
		}
	}
	for ticker := range prevTop {
		if !currTopSet[ticker] {
			if pos, stillHeld := currByTicker[ticker]; stillHeld {
				send(FormatTop10Exit(ticker, pos.Score))
			}
		}
	}

	return messages
}

func topByScore(positions []*model.Position) []*model.Position {
	sorted := make([]*model.Position, len(positions))
	copy(sorted, positions)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Score > sorted[j].Score })
	if len(sorted) > topSize {
		sorted = sorted[:topSize]
	}
	return sorted
}

func topTickers(positions []*model.Position) map[string]bool {
	set := map[string]bool{}
	for _, p := range topByScore(positions) {
		set[p.Ticker] = true
	}
	return set
}
