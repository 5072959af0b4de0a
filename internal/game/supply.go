package game

import (
	"errors"
	"fmt"
	"sort"
)

// Supply errors. Unknown pile and empty pile are distinct conditions: the
// first means the name was never stocked, the second that the pile ran out.
var (
	ErrUnknownPile = errors.New("no such supply pile")
	ErrPileEmpty   = errors.New("supply pile is empty")
)

// KingdomSize is the number of kingdom piles every game is stocked with.
const KingdomSize = 10

// pile is a countable set of identical card instances. Cards in a pile are
// interchangeable, so only the definition and a count are stored.
type pile struct {
	card      Card
	remaining int
}

// Supply is the shared pool of purchasable piles. The set of pile names is
// fixed at construction and counts only ever decrease.
type Supply struct {
	piles map[string]*pile
}

// NewSupply stocks a supply for the given player count and kingdom
// selection. The kingdom must name exactly KingdomSize distinct, known,
// non-basic cards; anything else fails setup outright.
//
// Pile sizes follow the published setup table: treasures and Action kingdom
// piles are fixed regardless of player count, Victory and Curse piles scale
// with it.
func NewSupply(playerCount int, kingdom []string) (*Supply, error) {
	if playerCount < 2 || playerCount > 4 {
		return nil, fmt.Errorf("unsupported player count %d (want 2-4)", playerCount)
	}
	if len(kingdom) != KingdomSize {
		return nil, fmt.Errorf("kingdom selection must name %d cards, got %d", KingdomSize, len(kingdom))
	}

	s := &Supply{piles: make(map[string]*pile, len(basicCards)+KingdomSize)}
	for _, name := range basicCards {
		s.piles[name] = &pile{card: mustCard(name), remaining: basicPileSize(name, playerCount)}
	}

	seen := make(map[string]bool, KingdomSize)
	for _, name := range kingdom {
		card, err := NewCard(name)
		if err != nil {
			return nil, fmt.Errorf("invalid kingdom selection: %w", err)
		}
		if IsBasic(name) {
			return nil, fmt.Errorf("invalid kingdom selection: %s is a basic card", name)
		}
		if seen[name] {
			return nil, fmt.Errorf("invalid kingdom selection: duplicate card %s", name)
		}
		seen[name] = true

		count := KingdomSize
		if card.Type == TypeVictory {
			// Victory kingdom piles (Gardens) scale like the basic
			// Victory piles.
			count = victoryPileSize(playerCount)
		}
		s.piles[name] = &pile{card: card, remaining: count}
	}
	return s, nil
}

// basicPileSize is the setup table for the always-present piles.
func basicPileSize(name string, playerCount int) int {
	switch name {
	case CardCopper:
		return 60
	case CardSilver:
		return 40
	case CardGold:
		return 30
	case CardEstate:
		if playerCount <= 2 {
			return 8
		}
		return 24
	case CardDuchy, CardProvince:
		return victoryPileSize(playerCount)
	case CardCurse:
		return 10 * (playerCount - 1)
	}
	panic(fmt.Sprintf("no pile size for basic card %s", name))
}

func victoryPileSize(playerCount int) int {
	if playerCount <= 2 {
		return 8
	}
	return 12
}

// Take removes one card from the named pile.
func (s *Supply) Take(name string) (Card, error) {
	p, ok := s.piles[name]
	if !ok {
		return Card{}, fmt.Errorf("%w: %s", ErrUnknownPile, name)
	}
	if p.remaining == 0 {
		return Card{}, fmt.Errorf("%w: %s", ErrPileEmpty, name)
	}
	p.remaining--
	return p.card, nil
}

// Peek reports the uniform cost and remaining count of the named pile
// without modifying it.
func (s *Supply) Peek(name string) (cost, remaining int, err error) {
	p, ok := s.piles[name]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %s", ErrUnknownPile, name)
	}
	return p.card.Cost, p.remaining, nil
}

// Has reports whether the named pile exists and is non-empty.
func (s *Supply) Has(name string) bool {
	p, ok := s.piles[name]
	return ok && p.remaining > 0
}

// EmptyPiles counts how many piles, of any kind, have run out.
func (s *Supply) EmptyPiles() int {
	empty := 0
	for _, p := range s.piles {
		if p.remaining == 0 {
			empty++
		}
	}
	return empty
}

// PileNames lists every stocked pile name in sorted order.
func (s *Supply) PileNames() []string {
	names := make([]string, 0, len(s.piles))
	for name := range s.piles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AffordablePiles lists the non-empty piles costing at most maxCoins,
// sorted by name for stable presentation to choice providers.
func (s *Supply) AffordablePiles(maxCoins int) []PileOption {
	var options []PileOption
	for _, name := range s.PileNames() {
		p := s.piles[name]
		if p.remaining > 0 && p.card.Cost <= maxCoins {
			options = append(options, PileOption{Name: name, Cost: p.card.Cost, Remaining: p.remaining})
		}
	}
	return options
}
