package cli

import (
	"sort"

	"go.uber.org/zap"

	"github.com/dominionfree/dominion-server-go/internal/game"
)

// EventLog mirrors engine events through the structured logger and keeps
// the per-card purchase tally shown in the end-of-game statistics.
type EventLog struct {
	logger *zap.Logger
	bought map[string]int
}

// NewEventLog creates an event log writing to the given logger.
func NewEventLog(logger *zap.Logger) *EventLog {
	return &EventLog{logger: logger, bought: make(map[string]int)}
}

// Attach subscribes the log to a game's event bus and returns the
// subscription handle.
func (l *EventLog) Attach(bus *game.EventBus) int {
	return bus.Subscribe(l.handle)
}

func (l *EventLog) handle(e game.Event) {
	if e.Type == game.EventBuyCard {
		l.bought[e.Card]++
	}
	l.logger.Info(string(e.Type),
		zap.String("player", e.Player),
		zap.String("card", e.Card),
		zap.Int("amount", e.Amount),
	)
}

// PurchaseCount is one line of the purchase statistics.
type PurchaseCount struct {
	Card  string
	Count int
}

// Purchases returns the per-card purchase tally, most bought first.
func (l *EventLog) Purchases() []PurchaseCount {
	counts := make([]PurchaseCount, 0, len(l.bought))
	for card, count := range l.bought {
		counts = append(counts, PurchaseCount{Card: card, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Card < counts[j].Card
	})
	return counts
}
