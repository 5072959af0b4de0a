package game

import "fmt"

// Phase represents the phases of a single turn.
type Phase int

const (
	PhaseAction Phase = iota
	PhaseBuy
	PhaseCleanup
)

var phaseNames = map[Phase]string{
	PhaseAction:  "ACTION",
	PhaseBuy:     "BUY",
	PhaseCleanup: "CLEANUP",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PHASE_%d", int(p))
}

// phaseSequence is the fixed order phases run in within a turn.
var phaseSequence = []Phase{PhaseAction, PhaseBuy, PhaseCleanup}

// TurnManager tracks the current phase, the current player and turn
// progression. The turn counter is 1-based and increments when play wraps
// back to player 0.
type TurnManager struct {
	orderIndex  int
	turnNumber  int
	current     int
	playerCount int
}

// NewTurnManager creates a turn manager at turn 1, action phase, player 0.
func NewTurnManager(playerCount int) *TurnManager {
	return &TurnManager{turnNumber: 1, playerCount: playerCount}
}

// CurrentPhase returns the phase currently in progress.
func (tm *TurnManager) CurrentPhase() Phase {
	return phaseSequence[tm.orderIndex]
}

// TurnNumber returns the current turn number (1-based).
func (tm *TurnManager) TurnNumber() int {
	return tm.turnNumber
}

// CurrentPlayer returns the index of the player whose turn it is.
func (tm *TurnManager) CurrentPlayer() int {
	return tm.current
}

// Advance moves to the next phase. When the sequence is exhausted the turn
// passes to the next player, and the turn number increments when play wraps
// back around to player 0. It returns the new phase and whether a new turn
// just began.
func (tm *TurnManager) Advance() (Phase, bool) {
	tm.orderIndex++
	if tm.orderIndex < len(phaseSequence) {
		return tm.CurrentPhase(), false
	}
	tm.orderIndex = 0
	tm.current = (tm.current + 1) % tm.playerCount
	if tm.current == 0 {
		tm.turnNumber++
	}
	return tm.CurrentPhase(), true
}

// restore rewinds the manager to a saved position. Used by snapshot loading;
// a restored turn always resumes at the action phase.
func (tm *TurnManager) restore(turnNumber, currentPlayer int) {
	tm.orderIndex = 0
	tm.turnNumber = turnNumber
	tm.current = currentPlayer
}
