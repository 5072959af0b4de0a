package game

import "math/rand"

// stubChoices is a scriptable ChoiceProvider for tests. Unset functions
// decline their choice, so a zero stub skips every decision point.
type stubChoices struct {
	actionFn  func(player string, playable []string) (string, bool)
	buyFn     func(player string, affordable []PileOption, coins int) (string, bool)
	discardFn func(player string, hand []Card, count int) []int
	trashFn   func(player string, hand []Card, max int) []int
	claimFn   func(player string, revealed []Card) (int, bool)
	gainFn    func(player string, options []PileOption, maxCost int) (string, bool)
}

func (s *stubChoices) ChooseActionCard(player string, playable []string) (string, bool) {
	if s.actionFn == nil {
		return "", false
	}
	return s.actionFn(player, playable)
}

func (s *stubChoices) ChooseBuy(player string, affordable []PileOption, coins int) (string, bool) {
	if s.buyFn == nil {
		return "", false
	}
	return s.buyFn(player, affordable, coins)
}

func (s *stubChoices) ChooseDiscards(player string, hand []Card, count int) []int {
	if s.discardFn == nil {
		return nil
	}
	return s.discardFn(player, hand, count)
}

func (s *stubChoices) ChooseTrashes(player string, hand []Card, max int) []int {
	if s.trashFn == nil {
		return nil
	}
	return s.trashFn(player, hand, max)
}

func (s *stubChoices) ChooseTreasureClaim(player string, revealed []Card) (int, bool) {
	if s.claimFn == nil {
		return 0, false
	}
	return s.claimFn(player, revealed)
}

func (s *stubChoices) ChooseGain(player string, options []PileOption, maxCost int) (string, bool) {
	if s.gainFn == nil {
		return "", false
	}
	return s.gainFn(player, options, maxCost)
}

// testKingdom is the default ten-pile selection used across tests.
func testKingdom() []string {
	return []string{
		CardVillage, CardWoodcutter, CardMilitia, CardMarket, CardSmithy,
		CardCouncilRoom, CardMoneylender, CardMoat, CardWorkshop, CardCellar,
	}
}

// testContext builds a resolution context around pre-seeded players. The
// first player acts.
func testContext(players []*Player, choices ChoiceProvider) *Context {
	supply, err := NewSupply(max(2, len(players)), testKingdom())
	if err != nil {
		panic(err)
	}
	if choices == nil {
		choices = &stubChoices{}
	}
	return &Context{
		Player:  players[0],
		Players: players,
		Supply:  supply,
		Choices: choices,
		Events:  NewEventBus(),
		Rand:    rand.New(rand.NewSource(1)),
	}
}

// handOf fills a player's hand with the named cards.
func handOf(p *Player, names ...string) {
	p.Hand = p.Hand[:0]
	for _, name := range names {
		p.Hand = append(p.Hand, mustCard(name))
	}
}

// deckOf sets a player's deck; the last name is the top of the deck.
func deckOf(p *Player, names ...string) {
	p.Deck = p.Deck[:0]
	for _, name := range names {
		p.Deck = append(p.Deck, mustCard(name))
	}
}

// zoneSize is the conservation measure: every card a player owns plus what
// they have trashed.
func zoneSize(p *Player) int {
	return len(p.Deck) + len(p.Hand) + len(p.Discard) + len(p.Trash)
}
