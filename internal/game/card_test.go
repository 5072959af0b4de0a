package game

import "testing"

func TestNewCardLookup(t *testing.T) {
	card, err := NewCard(CardMarket)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if card.Cost != 5 || card.Type != TypeAction {
		t.Fatalf("unexpected Market: %+v", card)
	}

	if _, err := NewCard("Throne Room"); err == nil {
		t.Fatal("expected an error for an unknown card name")
	}
}

func TestCardValues(t *testing.T) {
	cases := []struct {
		name  string
		cost  int
		coins int
		vp    int
	}{
		{CardCopper, 0, 1, 0},
		{CardSilver, 3, 2, 0},
		{CardGold, 6, 3, 0},
		{CardEstate, 2, 0, 1},
		{CardDuchy, 5, 0, 3},
		{CardProvince, 8, 0, 6},
		{CardCurse, 0, 0, -1},
		{CardGardens, 4, 0, 0},
	}
	for _, tc := range cases {
		card := mustCard(tc.name)
		if card.Cost != tc.cost || card.Coins != tc.coins || card.VP != tc.vp {
			t.Fatalf("%s: got %+v", tc.name, card)
		}
	}
}

func TestIsAttack(t *testing.T) {
	for _, name := range []string{CardMilitia, CardWitch, CardThief} {
		if !mustCard(name).IsAttack() {
			t.Fatalf("%s should be an attack", name)
		}
	}
	if mustCard(CardCouncilRoom).IsAttack() {
		t.Fatal("Council Room benefits opponents and is not an attack")
	}
}

func TestIsBasic(t *testing.T) {
	if !IsBasic(CardCopper) || !IsBasic(CardCurse) {
		t.Fatal("treasures and Curse are basic piles")
	}
	if IsBasic(CardVillage) {
		t.Fatal("kingdom cards are not basic")
	}
}

func TestKingdomCardNames(t *testing.T) {
	names := KingdomCardNames()
	if len(names) != 16 {
		t.Fatalf("expected 16 kingdom cards, got %d", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %q before %q", names[i-1], names[i])
		}
	}
	for _, name := range names {
		if IsBasic(name) {
			t.Fatalf("%s is basic and must not be listed as kingdom", name)
		}
	}
}
