package game

import (
	"fmt"
	"math/rand"
)

// Player holds one player's four card zones and per-turn counters.
//
// Deck is ordered with the top of the draw pile at the end of the slice.
// Hand and Discard are unordered multisets; Trash never returns to play.
type Player struct {
	Name    string
	Deck    []Card
	Hand    []Card
	Discard []Card
	Trash   []Card

	Actions int
	Buys    int
	Coins   int
}

// NewPlayer creates a player with empty zones and the per-turn counters at
// their start-of-turn values.
func NewPlayer(name string) *Player {
	return &Player{
		Name:    name,
		Actions: 1,
		Buys:    1,
	}
}

// Draw moves up to n cards from the top of the deck into the hand,
// reshuffling the discard into the deck when the deck runs out. Drawing
// stops short silently once both piles are empty; a hand smaller than
// requested is a valid outcome, never an error.
func (p *Player) Draw(n int, rng *rand.Rand) int {
	drawn := 0
	for i := 0; i < n; i++ {
		if len(p.Deck) == 0 {
			if len(p.Discard) == 0 {
				break
			}
			p.reshuffle(rng)
		}
		top := p.Deck[len(p.Deck)-1]
		p.Deck = p.Deck[:len(p.Deck)-1]
		p.Hand = append(p.Hand, top)
		drawn++
	}
	return drawn
}

// reshuffle folds the discard pile into the deck and random-permutes the
// whole deck. This is the only point in the engine that consumes randomness.
func (p *Player) reshuffle(rng *rand.Rand) {
	p.Deck = append(p.Deck, p.Discard...)
	p.Discard = p.Discard[:0]
	rng.Shuffle(len(p.Deck), func(i, j int) {
		p.Deck[i], p.Deck[j] = p.Deck[j], p.Deck[i]
	})
}

// ShuffleDeck exposes reshuffle for game setup.
func (p *Player) ShuffleDeck(rng *rand.Rand) {
	p.reshuffle(rng)
}

// DiscardHand moves every card in hand to the discard pile.
func (p *Player) DiscardHand() {
	p.Discard = append(p.Discard, p.Hand...)
	p.Hand = p.Hand[:0]
}

// DiscardFromHand moves the card at hand index i to the discard pile.
func (p *Player) DiscardFromHand(i int) (Card, error) {
	card, err := p.removeFromHand(i)
	if err != nil {
		return Card{}, err
	}
	p.Discard = append(p.Discard, card)
	return card, nil
}

// TrashFromHand permanently removes the card at hand index i from play.
func (p *Player) TrashFromHand(i int) (Card, error) {
	card, err := p.removeFromHand(i)
	if err != nil {
		return Card{}, err
	}
	p.Trash = append(p.Trash, card)
	return card, nil
}

func (p *Player) removeFromHand(i int) (Card, error) {
	if i < 0 || i >= len(p.Hand) {
		return Card{}, fmt.Errorf("hand index %d out of range (hand size %d)", i, len(p.Hand))
	}
	card := p.Hand[i]
	p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
	return card, nil
}

// TrashCopper trashes one Copper from hand if any is present. The false
// return is the Moneylender no-op path, not an error.
func (p *Player) TrashCopper() bool {
	for i, card := range p.Hand {
		if card.Name == CardCopper {
			if _, err := p.TrashFromHand(i); err != nil {
				return false
			}
			return true
		}
	}
	return false
}

// IndexInHand returns the index of the first card with the given name,
// or -1 if the hand does not contain it.
func (p *Player) IndexInHand(name string) int {
	for i, card := range p.Hand {
		if card.Name == name {
			return i
		}
	}
	return -1
}

// HasActionCard reports whether the hand contains any Action-type card.
func (p *Player) HasActionCard() bool {
	for _, card := range p.Hand {
		if card.Type == TypeAction {
			return true
		}
	}
	return false
}

// HasMoat reports whether the player holds a Moat, which fully blocks
// attack effects resolved against them.
func (p *Player) HasMoat() bool {
	return p.IndexInHand(CardMoat) >= 0
}

// ActionCardNames lists the names of Action cards currently in hand.
func (p *Player) ActionCardNames() []string {
	var names []string
	for _, card := range p.Hand {
		if card.Type == TypeAction {
			names = append(names, card.Name)
		}
	}
	return names
}

// AllCards returns every card the player owns for scoring purposes:
// deck, hand and discard. Trashed cards never count.
func (p *Player) AllCards() []Card {
	all := make([]Card, 0, len(p.Deck)+len(p.Hand)+len(p.Discard))
	all = append(all, p.Deck...)
	all = append(all, p.Hand...)
	all = append(all, p.Discard...)
	return all
}

// Gain adds a card to the discard pile (purchases and gain effects both
// deliver to discard).
func (p *Player) Gain(card Card) {
	p.Discard = append(p.Discard, card)
}

// AddActions increases the action counter.
func (p *Player) AddActions(n int) { p.Actions += n }

// AddBuys increases the buy counter.
func (p *Player) AddBuys(n int) { p.Buys += n }

// AddCoins increases the coin counter.
func (p *Player) AddCoins(n int) { p.Coins += n }

// UseAction consumes one action. Driving the counter negative is a contract
// violation in the phase machine, not a recoverable condition.
func (p *Player) UseAction() {
	if p.Actions <= 0 {
		panic(fmt.Sprintf("player %s: action counter would go negative", p.Name))
	}
	p.Actions--
}

// UseBuy consumes one buy.
func (p *Player) UseBuy() {
	if p.Buys <= 0 {
		panic(fmt.Sprintf("player %s: buy counter would go negative", p.Name))
	}
	p.Buys--
}

// SpendCoins deducts a purchase cost. Affordability is checked by the buy
// phase before calling; going negative here is a programming fault.
func (p *Player) SpendCoins(n int) {
	if n > p.Coins {
		panic(fmt.Sprintf("player %s: coin counter would go negative (have %d, spend %d)", p.Name, p.Coins, n))
	}
	p.Coins -= n
}

// ResetForCleanup restores the per-turn counters to their start-of-turn
// values.
func (p *Player) ResetForCleanup() {
	p.Actions = 1
	p.Buys = 1
	p.Coins = 0
}
