package game

import (
	"math/rand"
	"sort"
)

// Context carries everything an effect may touch while it resolves: the
// acting player, the full seating order, the supply, the choice provider and
// the event sink. It is always passed explicitly; effects never reach for
// ambient game state.
type Context struct {
	Player  *Player
	Players []*Player
	Supply  *Supply
	Choices ChoiceProvider
	Events  *EventBus
	Rand    *rand.Rand
}

// Opponents returns every player other than the acting one, in seating
// order starting after the acting player.
func (ctx *Context) Opponents() []*Player {
	actingIdx := 0
	for i, p := range ctx.Players {
		if p == ctx.Player {
			actingIdx = i
			break
		}
	}
	opponents := make([]*Player, 0, len(ctx.Players)-1)
	for i := 1; i < len(ctx.Players); i++ {
		opponents = append(opponents, ctx.Players[(actingIdx+i)%len(ctx.Players)])
	}
	return opponents
}

// Resolve applies the card's effect to the resolution context. The catalog
// is closed, so dispatch is an exhaustive switch over card names.
//
// Effects mutate state and emit events; they never fail. Missing resources
// (no Copper to trash, an empty pile) degrade to partial or no-op outcomes
// with a shortfall event.
func Resolve(card Card, ctx *Context) {
	if card.Type == TypeTreasure {
		// Treasures only touch the acting player's counters and never
		// need the wider context.
		playTreasure(card, ctx.Player)
		return
	}

	switch card.Name {
	case CardVillage:
		ctx.Player.Draw(1, ctx.Rand)
		ctx.Player.AddActions(2)
	case CardWoodcutter:
		ctx.Player.AddBuys(1)
		ctx.Player.AddCoins(2)
	case CardMarket:
		ctx.Player.Draw(1, ctx.Rand)
		ctx.Player.AddActions(1)
		ctx.Player.AddBuys(1)
		ctx.Player.AddCoins(1)
	case CardSmithy:
		ctx.Player.Draw(3, ctx.Rand)
	case CardLaboratory:
		ctx.Player.Draw(2, ctx.Rand)
		ctx.Player.AddActions(1)
	case CardMoat:
		ctx.Player.Draw(2, ctx.Rand)
	case CardCouncilRoom:
		resolveCouncilRoom(ctx)
	case CardMoneylender:
		resolveMoneylender(ctx)
	case CardCellar:
		resolveCellar(ctx)
	case CardChapel:
		resolveChapel(ctx)
	case CardWorkshop:
		chooseGain(ctx, ctx.Player, 4)
	case CardFeast:
		resolveFeast(ctx)
	case CardMilitia:
		resolveMilitia(ctx)
	case CardWitch:
		resolveWitch(ctx)
	case CardThief:
		resolveThief(ctx)
	default:
		// Victory cards have no active effect; playing one does nothing.
	}
}

// playTreasure adds the treasure's fixed coin value to the player.
func playTreasure(card Card, p *Player) {
	p.AddCoins(card.Coins)
}

func resolveCouncilRoom(ctx *Context) {
	ctx.Player.Draw(4, ctx.Rand)
	ctx.Player.AddBuys(1)
	// The shared draw benefits opponents and is not an attack, so Moat
	// does not block it.
	for _, opponent := range ctx.Opponents() {
		drawn := opponent.Draw(1, ctx.Rand)
		ctx.Events.Publish(NewEventWithAmount(EventSharedDraw, opponent.Name, CardCouncilRoom, drawn))
	}
}

func resolveMoneylender(ctx *Context) {
	if !ctx.Player.TrashCopper() {
		ctx.Events.Publish(NewEvent(EventSupplyShortfall, ctx.Player.Name, CardCopper))
		return
	}
	ctx.Player.AddCoins(3)
	ctx.Events.Publish(NewEvent(EventTrashCard, ctx.Player.Name, CardCopper))
}

func resolveCellar(ctx *Context) {
	ctx.Player.AddActions(1)
	indices := chooseValidDiscards(ctx, ctx.Player, len(ctx.Player.Hand), false)
	discardByIndex(ctx, ctx.Player, indices)
	ctx.Player.Draw(len(indices), ctx.Rand)
}

func resolveChapel(ctx *Context) {
	const maxTrashes = 4
	var indices []int
	for {
		indices = ctx.Choices.ChooseTrashes(ctx.Player.Name, ctx.Player.Hand, maxTrashes)
		if len(indices) <= maxTrashes && validIndexSet(indices, len(ctx.Player.Hand)) {
			break
		}
	}
	// Remove from the highest index down so earlier removals don't shift
	// the remaining selections.
	sort.Sort(sort.Reverse(sort.IntSlice(indices)))
	for _, i := range indices {
		card, err := ctx.Player.TrashFromHand(i)
		if err != nil {
			continue
		}
		ctx.Events.Publish(NewEvent(EventTrashCard, ctx.Player.Name, card.Name))
	}
}

func resolveFeast(ctx *Context) {
	// Feast trashes itself before granting the gain. The played copy is
	// still in hand at resolution time; if it is already gone (a second
	// Feast resolved oddly) the gain still happens.
	if i := ctx.Player.IndexInHand(CardFeast); i >= 0 {
		if _, err := ctx.Player.TrashFromHand(i); err == nil {
			ctx.Events.Publish(NewEvent(EventTrashCard, ctx.Player.Name, CardFeast))
		}
	}
	chooseGain(ctx, ctx.Player, 5)
}

func resolveMilitia(ctx *Context) {
	ctx.Player.AddCoins(2)
	for _, opponent := range ctx.Opponents() {
		if blocked(ctx, opponent, CardMilitia) {
			continue
		}
		if len(opponent.Hand) <= 3 {
			continue
		}
		need := len(opponent.Hand) - 3
		indices := chooseValidDiscards(ctx, opponent, need, true)
		discardByIndex(ctx, opponent, indices)
	}
}

func resolveWitch(ctx *Context) {
	ctx.Player.Draw(2, ctx.Rand)
	for _, opponent := range ctx.Opponents() {
		if blocked(ctx, opponent, CardWitch) {
			continue
		}
		curse, err := ctx.Supply.Take(CardCurse)
		if err != nil {
			ctx.Events.Publish(NewEvent(EventSupplyShortfall, opponent.Name, CardCurse))
			continue
		}
		opponent.Gain(curse)
		ctx.Events.Publish(NewEvent(EventCurseGained, opponent.Name, CardCurse))
	}
}

func resolveThief(ctx *Context) {
	for _, opponent := range ctx.Opponents() {
		if blocked(ctx, opponent, CardThief) {
			continue
		}
		revealed := revealTop(opponent, 2, ctx.Rand)
		if len(revealed) == 0 {
			continue
		}

		var treasures []Card
		var treasureIdx []int
		for i, card := range revealed {
			if card.Type == TypeTreasure {
				treasures = append(treasures, card)
				treasureIdx = append(treasureIdx, i)
			}
		}

		claimed := -1
		if len(treasures) > 0 {
			for {
				i, ok := ctx.Choices.ChooseTreasureClaim(ctx.Player.Name, treasures)
				if !ok {
					break
				}
				if i >= 0 && i < len(treasures) {
					claimed = treasureIdx[i]
					break
				}
			}
		}

		for i, card := range revealed {
			if i == claimed {
				ctx.Player.Gain(card)
				ctx.Events.Publish(NewEvent(EventTreasureStolen, opponent.Name, card.Name))
				continue
			}
			opponent.Discard = append(opponent.Discard, card)
		}
	}
}

// blocked checks the target for a Moat and, if held, emits the defense
// event. A blocked player's zones are left completely untouched.
func blocked(ctx *Context, target *Player, attack string) bool {
	if !target.HasMoat() {
		return false
	}
	ctx.Events.Publish(NewEvent(EventAttackBlocked, target.Name, attack))
	return true
}

// revealTop removes up to n cards from the top of the target's deck,
// reshuffling the discard in if the deck runs dry. Fewer cards are revealed
// when deck and discard are both exhausted.
func revealTop(target *Player, n int, rng *rand.Rand) []Card {
	var revealed []Card
	for i := 0; i < n; i++ {
		if len(target.Deck) == 0 {
			if len(target.Discard) == 0 {
				break
			}
			target.reshuffle(rng)
		}
		top := target.Deck[len(target.Deck)-1]
		target.Deck = target.Deck[:len(target.Deck)-1]
		revealed = append(revealed, top)
	}
	return revealed
}

// chooseGain asks the provider to pick a pile costing at most maxCost and
// moves one card from it to the gainer's discard. Declining, or having
// nothing gainable, is a valid no-op.
func chooseGain(ctx *Context, gainer *Player, maxCost int) {
	options := ctx.Supply.AffordablePiles(maxCost)
	if len(options) == 0 {
		ctx.Events.Publish(NewEvent(EventSupplyShortfall, gainer.Name, ""))
		return
	}
	for {
		name, ok := ctx.Choices.ChooseGain(gainer.Name, options, maxCost)
		if !ok {
			return
		}
		if !optionNamed(options, name) {
			continue
		}
		card, err := ctx.Supply.Take(name)
		if err != nil {
			continue
		}
		gainer.Gain(card)
		ctx.Events.Publish(NewEvent(EventGainCard, gainer.Name, card.Name))
		return
	}
}

func optionNamed(options []PileOption, name string) bool {
	for _, opt := range options {
		if opt.Name == name {
			return true
		}
	}
	return false
}

// chooseValidDiscards asks the provider for discard indices until the
// answer satisfies the constraints: distinct in-range indices, exactly
// `count` of them when forced, at most `count` otherwise.
func chooseValidDiscards(ctx *Context, target *Player, count int, forced bool) []int {
	for {
		indices := ctx.Choices.ChooseDiscards(target.Name, target.Hand, count)
		if !validIndexSet(indices, len(target.Hand)) {
			continue
		}
		if forced && len(indices) != count {
			continue
		}
		if !forced && len(indices) > count {
			continue
		}
		return indices
	}
}

// discardByIndex discards the selected hand cards, highest index first.
func discardByIndex(ctx *Context, target *Player, indices []int) {
	sorted := append([]int(nil), indices...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	for _, i := range sorted {
		card, err := target.DiscardFromHand(i)
		if err != nil {
			continue
		}
		ctx.Events.Publish(NewEvent(EventDiscardCard, target.Name, card.Name))
	}
}

// validIndexSet reports whether all indices are in [0, size) and distinct.
func validIndexSet(indices []int, size int) bool {
	seen := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i < 0 || i >= size || seen[i] {
			return false
		}
		seen[i] = true
	}
	return true
}
