package game

import "sort"

// IsGameOver evaluates the end condition against the supply: the Province
// pile is empty, or at least three piles of any kind are empty. Supply
// counts are non-increasing, so the predicate is stable once tripped.
func IsGameOver(s *Supply) bool {
	if !s.Has(CardProvince) {
		return true
	}
	return s.EmptyPiles() >= 3
}

// Score is one player's final result.
type Score struct {
	Player string
	Points int
	// Rank is 1-based; tied players share a rank and the following rank
	// is skipped (1, 1, 3).
	Rank int
}

// FinalScores computes victory points for every player and ranks them
// descending. Points count every card in deck, hand and discard; trashed
// cards are gone for good.
//
// Gardens has no intrinsic value: each Gardens is worth one point per full
// ten cards owned, added once after the base sum.
func FinalScores(players []*Player) []Score {
	scores := make([]Score, 0, len(players))
	for _, p := range players {
		owned := p.AllCards()
		points := 0
		gardens := 0
		for _, card := range owned {
			points += card.VP
			if card.Name == CardGardens {
				gardens++
			}
		}
		points += (len(owned) / 10) * gardens
		scores = append(scores, Score{Player: p.Name, Points: points})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Points > scores[j].Points
	})
	for i := range scores {
		if i > 0 && scores[i].Points == scores[i-1].Points {
			scores[i].Rank = scores[i-1].Rank
			continue
		}
		scores[i].Rank = i + 1
	}
	return scores
}
