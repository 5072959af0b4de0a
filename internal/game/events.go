package game

import (
	"sync"
	"time"
)

// EventType indicates the category of an engine event.
type EventType string

const (
	// Turn structure events
	EventTurnBegan    EventType = "TURN_BEGAN"
	EventPhaseChanged EventType = "PHASE_CHANGED"
	EventGameOver     EventType = "GAME_OVER"

	// Card movement events
	EventPlayCard    EventType = "PLAY_CARD"
	EventBuyCard     EventType = "BUY_CARD"
	EventGainCard    EventType = "GAIN_CARD"
	EventDrawCard    EventType = "DRAW_CARD"
	EventDiscardCard EventType = "DISCARD_CARD"
	EventTrashCard   EventType = "TRASH_CARD"
	EventShuffle     EventType = "SHUFFLE"

	// Interaction events
	EventSharedDraw     EventType = "SHARED_DRAW"
	EventAttackBlocked  EventType = "ATTACK_BLOCKED"
	EventCurseGained    EventType = "CURSE_GAINED"
	EventTreasureStolen EventType = "TREASURE_STOLEN"

	// Degraded-outcome events: an effect referenced a resource that was
	// not there (empty pile, no Copper to trash). The turn continues.
	EventSupplyShortfall EventType = "SUPPLY_SHORTFALL"
)

// Event is a single structured record emitted by the engine. How events are
// stored or displayed is the consumer's concern.
type Event struct {
	Type      EventType
	Player    string
	Card      string
	Amount    int
	Detail    string
	Timestamp time.Time
}

// NewEvent creates an event stamped with the current time.
func NewEvent(eventType EventType, player, card string) Event {
	return Event{
		Type:      eventType,
		Player:    player,
		Card:      card,
		Timestamp: time.Now(),
	}
}

// NewEventWithAmount creates an event carrying a numeric payload.
func NewEventWithAmount(eventType EventType, player, card string, amount int) Event {
	e := NewEvent(eventType, player, card)
	e.Amount = amount
	return e
}

// Listener receives published events.
type Listener func(Event)

// EventBus delivers events synchronously to subscribed listeners. The game
// is strictly turn-serial, so the mutex only guards subscription bookkeeping
// against misuse, not concurrent play.
type EventBus struct {
	mu           sync.Mutex
	nextHandle   int
	listeners    map[int]Listener
	typed        map[EventType]map[int]Listener
	typedHandles map[int]EventType
}

// NewEventBus creates an empty event bus.
func NewEventBus() *EventBus {
	return &EventBus{
		listeners:    make(map[int]Listener),
		typed:        make(map[EventType]map[int]Listener),
		typedHandles: make(map[int]EventType),
	}
}

// Subscribe registers a listener for every event. The returned handle
// unsubscribes it.
func (b *EventBus) Subscribe(fn Listener) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextHandle++
	b.listeners[b.nextHandle] = fn
	return b.nextHandle
}

// SubscribeTyped registers a listener for one event type only.
func (b *EventBus) SubscribeTyped(eventType EventType, fn Listener) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextHandle++
	if b.typed[eventType] == nil {
		b.typed[eventType] = make(map[int]Listener)
	}
	b.typed[eventType][b.nextHandle] = fn
	b.typedHandles[b.nextHandle] = eventType
	return b.nextHandle
}

// Unsubscribe removes a listener registered by Subscribe or SubscribeTyped.
func (b *EventBus) Unsubscribe(handle int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.listeners, handle)
	if eventType, ok := b.typedHandles[handle]; ok {
		delete(b.typed[eventType], handle)
		delete(b.typedHandles, handle)
	}
}

// Publish delivers an event to all matching listeners. Delivery order
// between listeners is not guaranteed.
func (b *EventBus) Publish(e Event) {
	b.mu.Lock()
	all := make([]Listener, 0, len(b.listeners)+len(b.typed[e.Type]))
	for _, fn := range b.listeners {
		all = append(all, fn)
	}
	for _, fn := range b.typed[e.Type] {
		all = append(all, fn)
	}
	b.mu.Unlock()

	for _, fn := range all {
		fn(e)
	}
}
