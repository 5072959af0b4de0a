package game

import "testing"

func TestEventBusSubscribeTyped(t *testing.T) {
	bus := NewEventBus()

	buys := 0
	blocks := 0

	handle1 := bus.SubscribeTyped(EventBuyCard, func(e Event) {
		buys++
	})
	handle2 := bus.SubscribeTyped(EventAttackBlocked, func(e Event) {
		blocks++
	})

	bus.Publish(NewEvent(EventBuyCard, "alice", CardSilver))
	if buys != 1 || blocks != 0 {
		t.Fatalf("expected buys=1 blocks=0, got buys=%d blocks=%d", buys, blocks)
	}

	bus.Publish(NewEvent(EventAttackBlocked, "bob", CardMilitia))
	if buys != 1 || blocks != 1 {
		t.Fatalf("expected buys=1 blocks=1, got buys=%d blocks=%d", buys, blocks)
	}

	bus.Unsubscribe(handle1)
	bus.Publish(NewEvent(EventBuyCard, "alice", CardGold))
	if buys != 1 {
		t.Fatalf("expected buys to stay 1 after unsubscribe, got %d", buys)
	}

	bus.Unsubscribe(handle2)
	bus.Publish(NewEvent(EventAttackBlocked, "bob", CardWitch))
	if blocks != 1 {
		t.Fatalf("expected blocks to stay 1 after unsubscribe, got %d", blocks)
	}
}

func TestEventBusSubscribeAll(t *testing.T) {
	bus := NewEventBus()

	var seen []EventType
	handle := bus.Subscribe(func(e Event) {
		seen = append(seen, e.Type)
	})

	bus.Publish(NewEvent(EventPlayCard, "alice", CardVillage))
	bus.Publish(NewEventWithAmount(EventBuyCard, "alice", CardSilver, 3))

	if len(seen) != 2 || seen[0] != EventPlayCard || seen[1] != EventBuyCard {
		t.Fatalf("unexpected events seen: %v", seen)
	}

	bus.Unsubscribe(handle)
	bus.Publish(NewEvent(EventTrashCard, "alice", CardCopper))
	if len(seen) != 2 {
		t.Fatalf("expected no delivery after unsubscribe, got %d events", len(seen))
	}
}

func TestNewEventWithAmount(t *testing.T) {
	e := NewEventWithAmount(EventSharedDraw, "bob", CardCouncilRoom, 1)
	if e.Amount != 1 || e.Player != "bob" || e.Card != CardCouncilRoom {
		t.Fatalf("unexpected event: %+v", e)
	}
	if e.Timestamp.IsZero() {
		t.Fatal("expected event to be timestamped")
	}
}
