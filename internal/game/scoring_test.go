package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameOverOnEmptyProvince(t *testing.T) {
	s, err := NewSupply(2, testKingdom())
	require.NoError(t, err)
	assert.False(t, IsGameOver(s))

	for s.Has(CardProvince) {
		_, err = s.Take(CardProvince)
		require.NoError(t, err)
	}
	assert.True(t, IsGameOver(s), "an empty Province pile ends the game by itself")
}

func TestGameOverOnThreeEmptyPiles(t *testing.T) {
	s, err := NewSupply(2, testKingdom())
	require.NoError(t, err)

	drain := func(name string) {
		for s.Has(name) {
			_, takeErr := s.Take(name)
			require.NoError(t, takeErr)
		}
	}

	drain(CardVillage)
	drain(CardMoat)
	assert.False(t, IsGameOver(s), "two empty piles are not enough")

	drain(CardCurse)
	assert.True(t, IsGameOver(s), "any three empty piles end the game")
}

func TestFinalScoresCountsAllOwnedZones(t *testing.T) {
	p := NewPlayer("alice")
	deckOf(p, CardEstate, CardEstate)
	handOf(p, CardDuchy)
	p.Discard = []Card{mustCard(CardProvince), mustCard(CardCurse)}
	p.Trash = []Card{mustCard(CardProvince)} // trashed cards are gone

	scores := FinalScores([]*Player{p})
	require.Len(t, scores, 1)
	assert.Equal(t, 1+1+3+6-1, scores[0].Points)
}

func TestFinalScoresGardens(t *testing.T) {
	p := NewPlayer("alice")
	// 23 cards total: 3 Estates, 1 Duchy, 2 Curses, 1 Gardens, 16 Coppers.
	// Gardens is worth floor(23/10) = 2; total 3 + 3 - 2 + 2 = 6.
	cards := []string{CardEstate, CardEstate, CardEstate, CardDuchy, CardCurse, CardCurse, CardGardens}
	for len(cards) < 23 {
		cards = append(cards, CardCopper)
	}
	deckOf(p, cards...)

	scores := FinalScores([]*Player{p})
	assert.Equal(t, 6, scores[0].Points)

	// Two more cards do not cross a ten-card threshold.
	deckOf(p, append(cards, CardCopper, CardCopper)...)
	scores = FinalScores([]*Player{p})
	assert.Equal(t, 6, scores[0].Points)

	// A second Gardens doubles the bonus, not the thresholds. 24 cards:
	// floor(24/10) = 2 per Gardens.
	deckOf(p, append(cards, CardGardens)...)
	scores = FinalScores([]*Player{p})
	assert.Equal(t, 3+3-2+2*2, scores[0].Points)
}

func TestFinalScoresRanking(t *testing.T) {
	alice := NewPlayer("alice")
	deckOf(alice, CardProvince) // 6
	bob := NewPlayer("bob")
	deckOf(bob, CardDuchy, CardDuchy) // 6
	carol := NewPlayer("carol")
	deckOf(carol, CardEstate) // 1

	scores := FinalScores([]*Player{carol, alice, bob})
	require.Len(t, scores, 3)

	assert.Equal(t, 6, scores[0].Points)
	assert.Equal(t, 1, scores[0].Rank)
	assert.Equal(t, 6, scores[1].Points)
	assert.Equal(t, 1, scores[1].Rank, "tied players share a rank")
	assert.Equal(t, "carol", scores[2].Player)
	assert.Equal(t, 3, scores[2].Rank, "the rank after a tie is skipped")
}
