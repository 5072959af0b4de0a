package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/dominionfree/dominion-server-go/internal/game"
)

func TestEventLogPurchaseTally(t *testing.T) {
	log := NewEventLog(zap.NewNop())
	bus := game.NewEventBus()
	log.Attach(bus)

	bus.Publish(game.NewEventWithAmount(game.EventBuyCard, "alice", "Silver", 3))
	bus.Publish(game.NewEventWithAmount(game.EventBuyCard, "bob", "Silver", 3))
	bus.Publish(game.NewEventWithAmount(game.EventBuyCard, "alice", "Moat", 2))
	bus.Publish(game.NewEvent(game.EventPlayCard, "alice", "Copper"))

	purchases := log.Purchases()
	assert.Equal(t, []PurchaseCount{
		{Card: "Silver", Count: 2},
		{Card: "Moat", Count: 1},
	}, purchases, "sorted by count, plays are not purchases")
}

func TestEventLogTiesSortByName(t *testing.T) {
	log := NewEventLog(zap.NewNop())
	bus := game.NewEventBus()
	log.Attach(bus)

	bus.Publish(game.NewEvent(game.EventBuyCard, "alice", "Village"))
	bus.Publish(game.NewEvent(game.EventBuyCard, "alice", "Market"))

	purchases := log.Purchases()
	assert.Equal(t, []PurchaseCount{
		{Card: "Market", Count: 1},
		{Card: "Village", Count: 1},
	}, purchases)
}
