package game

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// Snapshot is the plain, re-entrant form of the full game state. Cards are
// recorded by name only: card values are interchangeable per name, so a
// collaborator can serialize a snapshot in any format and the engine will
// reconstruct instances from the catalog on restore.
type Snapshot struct {
	GameID        string           `json:"game_id"`
	Turn          int              `json:"turn"`
	CurrentPlayer int              `json:"current_player"`
	Players       []PlayerSnapshot `json:"players"`
	Supply        []PileSnapshot   `json:"supply"`
}

// PlayerSnapshot captures one player's zones (as ordered name lists; deck
// order matters, top last) and per-turn counters.
type PlayerSnapshot struct {
	Name    string   `json:"name"`
	Deck    []string `json:"deck"`
	Hand    []string `json:"hand"`
	Discard []string `json:"discard"`
	Trash   []string `json:"trash"`
	Actions int      `json:"actions"`
	Buys    int      `json:"buys"`
	Coins   int      `json:"coins"`
}

// PileSnapshot captures one supply pile's remaining count.
type PileSnapshot struct {
	Name      string `json:"name"`
	Remaining int    `json:"remaining"`
}

// Snapshot captures the game's full data model. The result shares nothing
// with the live game and stays valid as play continues.
func (g *Game) Snapshot() *Snapshot {
	snap := &Snapshot{
		GameID:        g.ID,
		Turn:          g.Turns.TurnNumber(),
		CurrentPlayer: g.Turns.CurrentPlayer(),
	}
	for _, p := range g.Players {
		snap.Players = append(snap.Players, PlayerSnapshot{
			Name:    p.Name,
			Deck:    cardNames(p.Deck),
			Hand:    cardNames(p.Hand),
			Discard: cardNames(p.Discard),
			Trash:   cardNames(p.Trash),
			Actions: p.Actions,
			Buys:    p.Buys,
			Coins:   p.Coins,
		})
	}
	for _, name := range g.Supply.PileNames() {
		_, remaining, _ := g.Supply.Peek(name)
		snap.Supply = append(snap.Supply, PileSnapshot{Name: name, Remaining: remaining})
	}
	return snap
}

// RestoreGame rebuilds a playable game from a snapshot. Any card name the
// catalog does not know fails the whole restore; the engine never guesses a
// substitute. The restored game resumes at the action phase of the saved
// player's turn.
func RestoreGame(snap *Snapshot, seed int64) (*Game, error) {
	if len(snap.Players) < 2 {
		return nil, fmt.Errorf("snapshot has %d players, need at least 2", len(snap.Players))
	}

	supply := &Supply{piles: make(map[string]*pile, len(snap.Supply))}
	for _, ps := range snap.Supply {
		card, err := NewCard(ps.Name)
		if err != nil {
			return nil, fmt.Errorf("restoring supply: %w", err)
		}
		if ps.Remaining < 0 {
			return nil, fmt.Errorf("restoring supply: negative pile count for %s", ps.Name)
		}
		supply.piles[ps.Name] = &pile{card: card, remaining: ps.Remaining}
	}
	if _, ok := supply.piles[CardProvince]; !ok {
		return nil, fmt.Errorf("restoring supply: missing Province pile")
	}

	g := &Game{
		ID:     snap.GameID,
		Supply: supply,
		Turns:  NewTurnManager(len(snap.Players)),
		Events: NewEventBus(),
		rng:    rand.New(rand.NewSource(seed)),
	}
	g.Turns.restore(snap.Turn, snap.CurrentPlayer)

	for _, ps := range snap.Players {
		p := NewPlayer(ps.Name)
		var err error
		if p.Deck, err = cardsFromNames(ps.Deck); err != nil {
			return nil, fmt.Errorf("restoring player %s: %w", ps.Name, err)
		}
		if p.Hand, err = cardsFromNames(ps.Hand); err != nil {
			return nil, fmt.Errorf("restoring player %s: %w", ps.Name, err)
		}
		if p.Discard, err = cardsFromNames(ps.Discard); err != nil {
			return nil, fmt.Errorf("restoring player %s: %w", ps.Name, err)
		}
		if p.Trash, err = cardsFromNames(ps.Trash); err != nil {
			return nil, fmt.Errorf("restoring player %s: %w", ps.Name, err)
		}
		p.Actions = ps.Actions
		p.Buys = ps.Buys
		p.Coins = ps.Coins
		g.Players = append(g.Players, p)
	}
	return g, nil
}

// Checksum computes a deterministic SHA-256 digest of the snapshot so
// collaborators can verify integrity across save and load. Identical states
// always hash identically regardless of map iteration order or timing.
func (snap *Snapshot) Checksum() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "GAME:%s|%d|%d\n", snap.GameID, snap.Turn, snap.CurrentPlayer)

	for _, p := range snap.Players {
		fmt.Fprintf(&buf, "PLAYER:%s|%d|%d|%d\n", p.Name, p.Actions, p.Buys, p.Coins)
		// Deck order is real state; hand, discard and trash are
		// multisets and are sorted for determinism.
		fmt.Fprintf(&buf, "  DECK:%s\n", strings.Join(p.Deck, ","))
		fmt.Fprintf(&buf, "  HAND:%s\n", strings.Join(sortedCopy(p.Hand), ","))
		fmt.Fprintf(&buf, "  DISCARD:%s\n", strings.Join(sortedCopy(p.Discard), ","))
		fmt.Fprintf(&buf, "  TRASH:%s\n", strings.Join(sortedCopy(p.Trash), ","))
	}

	piles := append([]PileSnapshot(nil), snap.Supply...)
	sort.Slice(piles, func(i, j int) bool { return piles[i].Name < piles[j].Name })
	for _, ps := range piles {
		fmt.Fprintf(&buf, "PILE:%s|%d\n", ps.Name, ps.Remaining)
	}

	sum := sha256.Sum256(buf.Bytes())
	return hex.EncodeToString(sum[:])
}

func cardNames(cards []Card) []string {
	names := make([]string, len(cards))
	for i, card := range cards {
		names[i] = card.Name
	}
	return names
}

func cardsFromNames(names []string) ([]Card, error) {
	cards := make([]Card, 0, len(names))
	for _, name := range names {
		card, err := NewCard(name)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func sortedCopy(names []string) []string {
	out := append([]string(nil), names...)
	sort.Strings(out)
	return out
}
