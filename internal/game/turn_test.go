package game

import "testing"

func TestTurnManagerSequence(t *testing.T) {
	tm := NewTurnManager(2)

	expected := []Phase{PhaseAction, PhaseBuy, PhaseCleanup}
	for i, exp := range expected {
		if tm.CurrentPhase() != exp {
			t.Fatalf("phase %d: expected %s, got %s", i, exp, tm.CurrentPhase())
		}
		if i < len(expected)-1 {
			tm.Advance()
		}
	}
}

func TestTurnManagerAdvanceWrapsToNextPlayer(t *testing.T) {
	tm := NewTurnManager(3)

	tm.Advance() // buy
	tm.Advance() // cleanup
	phase, wrapped := tm.Advance()

	if !wrapped {
		t.Fatal("expected wrap after cleanup")
	}
	if phase != PhaseAction {
		t.Fatalf("expected new turn to start in ACTION, got %s", phase)
	}
	if tm.CurrentPlayer() != 1 {
		t.Fatalf("expected player 1 after wrap, got %d", tm.CurrentPlayer())
	}
	if tm.TurnNumber() != 1 {
		t.Fatalf("turn number should stay 1 until play returns to player 0, got %d", tm.TurnNumber())
	}
}

func TestTurnManagerTurnCounterIncrementsOnFullRound(t *testing.T) {
	tm := NewTurnManager(2)

	// Two full player turns complete round one.
	for i := 0; i < 6; i++ {
		tm.Advance()
	}
	if tm.CurrentPlayer() != 0 {
		t.Fatalf("expected play back at player 0, got %d", tm.CurrentPlayer())
	}
	if tm.TurnNumber() != 2 {
		t.Fatalf("expected turn 2 after a full round, got %d", tm.TurnNumber())
	}
}

func TestPhaseStringNames(t *testing.T) {
	cases := map[Phase]string{
		PhaseAction:  "ACTION",
		PhaseBuy:     "BUY",
		PhaseCleanup: "CLEANUP",
		Phase(9):     "PHASE_9",
	}
	for phase, want := range cases {
		if got := phase.String(); got != want {
			t.Fatalf("Phase(%d).String() = %q, want %q", int(phase), got, want)
		}
	}
}
