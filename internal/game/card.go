package game

import (
	"fmt"
	"sort"
)

// CardType represents the category a card belongs to.
type CardType int

const (
	TypeTreasure CardType = iota
	TypeVictory
	TypeAction
)

var cardTypeNames = map[CardType]string{
	TypeTreasure: "TREASURE",
	TypeVictory:  "VICTORY",
	TypeAction:   "ACTION",
}

func (t CardType) String() string {
	if name, ok := cardTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("CARD_TYPE_%d", int(t))
}

// Card is an immutable card definition. Cards are value types keyed by name:
// any two instances of "Copper" are interchangeable, so zones hold plain Card
// values and snapshots only need to record names.
type Card struct {
	Name string
	Cost int
	Type CardType
	// Coins is the fixed coin value added when a Treasure is played.
	Coins int
	// VP is the intrinsic victory-point value counted at game end. Gardens
	// scores zero here; its count-dependent bonus lives in scoring.
	VP int
}

// Card name constants. The catalog is closed: the resolver dispatches over
// exactly this set.
const (
	CardCopper      = "Copper"
	CardSilver      = "Silver"
	CardGold        = "Gold"
	CardEstate      = "Estate"
	CardDuchy       = "Duchy"
	CardProvince    = "Province"
	CardCurse       = "Curse"
	CardGardens     = "Gardens"
	CardVillage     = "Village"
	CardWoodcutter  = "Woodcutter"
	CardMilitia     = "Militia"
	CardMarket      = "Market"
	CardSmithy      = "Smithy"
	CardCouncilRoom = "Council Room"
	CardMoneylender = "Moneylender"
	CardMoat        = "Moat"
	CardWorkshop    = "Workshop"
	CardCellar      = "Cellar"
	CardLaboratory  = "Laboratory"
	CardWitch       = "Witch"
	CardThief       = "Thief"
	CardChapel      = "Chapel"
	CardFeast       = "Feast"
)

// catalog holds every card the engine knows how to create.
var catalog = map[string]Card{
	CardCopper:   {Name: CardCopper, Cost: 0, Type: TypeTreasure, Coins: 1},
	CardSilver:   {Name: CardSilver, Cost: 3, Type: TypeTreasure, Coins: 2},
	CardGold:     {Name: CardGold, Cost: 6, Type: TypeTreasure, Coins: 3},
	CardEstate:   {Name: CardEstate, Cost: 2, Type: TypeVictory, VP: 1},
	CardDuchy:    {Name: CardDuchy, Cost: 5, Type: TypeVictory, VP: 3},
	CardProvince: {Name: CardProvince, Cost: 8, Type: TypeVictory, VP: 6},
	CardCurse:    {Name: CardCurse, Cost: 0, Type: TypeVictory, VP: -1},
	CardGardens:  {Name: CardGardens, Cost: 4, Type: TypeVictory},

	CardVillage:     {Name: CardVillage, Cost: 3, Type: TypeAction},
	CardWoodcutter:  {Name: CardWoodcutter, Cost: 3, Type: TypeAction},
	CardMilitia:     {Name: CardMilitia, Cost: 4, Type: TypeAction},
	CardMarket:      {Name: CardMarket, Cost: 5, Type: TypeAction},
	CardSmithy:      {Name: CardSmithy, Cost: 4, Type: TypeAction},
	CardCouncilRoom: {Name: CardCouncilRoom, Cost: 5, Type: TypeAction},
	CardMoneylender: {Name: CardMoneylender, Cost: 4, Type: TypeAction},
	CardMoat:        {Name: CardMoat, Cost: 2, Type: TypeAction},
	CardWorkshop:    {Name: CardWorkshop, Cost: 3, Type: TypeAction},
	CardCellar:      {Name: CardCellar, Cost: 2, Type: TypeAction},
	CardLaboratory:  {Name: CardLaboratory, Cost: 5, Type: TypeAction},
	CardWitch:       {Name: CardWitch, Cost: 5, Type: TypeAction},
	CardThief:       {Name: CardThief, Cost: 4, Type: TypeAction},
	CardChapel:      {Name: CardChapel, Cost: 2, Type: TypeAction},
	CardFeast:       {Name: CardFeast, Cost: 4, Type: TypeAction},
}

// basicCards are always in the supply regardless of kingdom selection.
var basicCards = []string{
	CardCopper, CardSilver, CardGold,
	CardEstate, CardDuchy, CardProvince, CardCurse,
}

// attackCards are the effects opponents may block with a Moat in hand.
var attackCards = map[string]bool{
	CardMilitia: true,
	CardWitch:   true,
	CardThief:   true,
}

// NewCard looks a card up in the catalog. An unknown name is a hard error:
// it can only come from a corrupt snapshot or an invalid kingdom selection,
// and the engine never substitutes a card.
func NewCard(name string) (Card, error) {
	card, ok := catalog[name]
	if !ok {
		return Card{}, fmt.Errorf("unknown card %q", name)
	}
	return card, nil
}

// mustCard is for catalog names the engine itself hard-codes (Copper, Curse).
func mustCard(name string) Card {
	card, err := NewCard(name)
	if err != nil {
		panic(err)
	}
	return card
}

// IsAttack reports whether playing the card subjects opponents to an attack.
func (c Card) IsAttack() bool {
	return attackCards[c.Name]
}

// IsBasic reports whether the card is part of every supply.
func IsBasic(name string) bool {
	for _, b := range basicCards {
		if b == name {
			return true
		}
	}
	return false
}

// KingdomCardNames returns the names of all catalog cards eligible for
// kingdom selection, sorted for stable presentation.
func KingdomCardNames() []string {
	names := make([]string, 0, len(catalog)-len(basicCards))
	for name := range catalog {
		if !IsBasic(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
