package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSupplySetupTable(t *testing.T) {
	cases := []struct {
		players  int
		estate   int
		province int
		curse    int
	}{
		{players: 2, estate: 8, province: 8, curse: 10},
		{players: 3, estate: 24, province: 12, curse: 20},
		{players: 4, estate: 24, province: 12, curse: 30},
	}

	for _, tc := range cases {
		s, err := NewSupply(tc.players, testKingdom())
		require.NoError(t, err)

		_, copper, _ := s.Peek(CardCopper)
		assert.Equal(t, 60, copper, "players=%d", tc.players)
		_, estate, _ := s.Peek(CardEstate)
		assert.Equal(t, tc.estate, estate, "players=%d", tc.players)
		_, province, _ := s.Peek(CardProvince)
		assert.Equal(t, tc.province, province, "players=%d", tc.players)
		_, curse, _ := s.Peek(CardCurse)
		assert.Equal(t, tc.curse, curse, "players=%d", tc.players)
		_, village, _ := s.Peek(CardVillage)
		assert.Equal(t, 10, village, "kingdom piles are fixed-size, players=%d", tc.players)
	}
}

func TestNewSupplyGardensScalesAsVictory(t *testing.T) {
	kingdom := testKingdom()
	kingdom[0] = CardGardens

	s, err := NewSupply(2, kingdom)
	require.NoError(t, err)
	_, remaining, err := s.Peek(CardGardens)
	require.NoError(t, err)
	assert.Equal(t, 8, remaining)

	s, err = NewSupply(4, kingdom)
	require.NoError(t, err)
	_, remaining, err = s.Peek(CardGardens)
	require.NoError(t, err)
	assert.Equal(t, 12, remaining)
}

func TestNewSupplyRejectsBadSelections(t *testing.T) {
	_, err := NewSupply(5, testKingdom())
	assert.Error(t, err, "player count out of range")

	_, err = NewSupply(2, testKingdom()[:9])
	assert.Error(t, err, "short kingdom selection")

	kingdom := testKingdom()
	kingdom[3] = "Throne Room"
	_, err = NewSupply(2, kingdom)
	assert.Error(t, err, "unknown card")

	kingdom = testKingdom()
	kingdom[3] = CardCopper
	_, err = NewSupply(2, kingdom)
	assert.Error(t, err, "basic card in kingdom selection")

	kingdom = testKingdom()
	kingdom[3] = kingdom[4]
	_, err = NewSupply(2, kingdom)
	assert.Error(t, err, "duplicate kingdom card")
}

func TestTakeDepletesPile(t *testing.T) {
	s, err := NewSupply(2, testKingdom())
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		card, takeErr := s.Take(CardVillage)
		require.NoError(t, takeErr)
		assert.Equal(t, CardVillage, card.Name)
	}

	_, err = s.Take(CardVillage)
	assert.ErrorIs(t, err, ErrPileEmpty)

	_, err = s.Take("Throne Room")
	assert.ErrorIs(t, err, ErrUnknownPile)
}

func TestEmptyPilesCount(t *testing.T) {
	s, err := NewSupply(2, testKingdom())
	require.NoError(t, err)
	assert.Equal(t, 0, s.EmptyPiles())

	for i := 0; i < 10; i++ {
		_, _ = s.Take(CardVillage)
	}
	for i := 0; i < 10; i++ {
		_, _ = s.Take(CardMoat)
	}
	assert.Equal(t, 2, s.EmptyPiles())
}

func TestAffordablePiles(t *testing.T) {
	s, err := NewSupply(2, testKingdom())
	require.NoError(t, err)

	options := s.AffordablePiles(2)
	for _, opt := range options {
		assert.LessOrEqual(t, opt.Cost, 2)
		assert.Positive(t, opt.Remaining)
	}

	names := make(map[string]bool)
	for _, opt := range options {
		names[opt.Name] = true
	}
	assert.True(t, names[CardCopper])
	assert.True(t, names[CardMoat])
	assert.True(t, names[CardEstate])
	assert.False(t, names[CardSilver], "Silver costs 3")
}
