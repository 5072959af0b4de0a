package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/dominionfree/dominion-server-go/internal/game"
	"github.com/dominionfree/dominion-server-go/internal/repository"
)

// Session runs a local game to completion, offering the between-turn
// commands (save, stats) the engine itself knows nothing about.
type Session struct {
	engine  *game.Engine
	game    *game.Game
	console *Console
	saves   *repository.SaveRepository
	in      *bufio.Scanner
	out     io.Writer
	logger  *zap.Logger
}

// NewSession wires a session around one game. A nil save repository
// disables the save command. The console provider and the session share a
// single scanner so prompts never steal each other's input.
func NewSession(engine *game.Engine, g *game.Game, saves *repository.SaveRepository, in io.Reader, out io.Writer, logger *zap.Logger) *Session {
	sc := bufio.NewScanner(in)
	return &Session{
		engine:  engine,
		game:    g,
		console: &Console{in: sc, out: out},
		saves:   saves,
		in:      sc,
		out:     out,
		logger:  logger,
	}
}

// Run plays turns until the game ends, pausing between turns for session
// commands, and returns the final ranking.
func (s *Session) Run(ctx context.Context) []game.Score {
	for !s.game.IsGameOver() {
		s.engine.PlayTurn(s.game, s.console)
		if s.game.IsGameOver() {
			break
		}
		s.betweenTurns(ctx)
	}
	return s.engine.Finish(s.game)
}

func (s *Session) betweenTurns(ctx context.Context) {
	for {
		if s.saves != nil {
			fmt.Fprint(s.out, "\nEnter 'save <name>', 'stats', or press enter to continue: ")
		} else {
			fmt.Fprint(s.out, "\nEnter 'stats', or press enter to continue: ")
		}
		if !s.in.Scan() {
			return
		}
		line := strings.TrimSpace(s.in.Text())
		switch {
		case line == "":
			return
		case strings.EqualFold(line, "stats"):
			s.printStats()
		case s.saves != nil && strings.HasPrefix(strings.ToLower(line), "save"):
			name := strings.TrimSpace(line[len("save"):])
			if name == "" {
				name = "dominion_save"
			}
			s.saveGame(ctx, name)
		default:
			fmt.Fprintf(s.out, "Unknown command %q\n", line)
		}
	}
}

func (s *Session) saveGame(ctx context.Context, name string) {
	snap := s.game.Snapshot()
	id, err := s.saves.Save(ctx, name, snap)
	if err != nil {
		s.logger.Error("save failed", zap.String("save", name), zap.Error(err))
		fmt.Fprintf(s.out, "Save failed: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Saved game as %q (turn %d, id %s)\n", name, snap.Turn, id)
}

func (s *Session) printStats() {
	fmt.Fprintln(s.out, "\nSupply piles:")
	for _, name := range s.game.Supply.PileNames() {
		cost, remaining, err := s.game.Supply.Peek(name)
		if err != nil {
			continue
		}
		fmt.Fprintf(s.out, "  %-15s cost %d, %d left\n", name, cost, remaining)
	}
	fmt.Fprintln(s.out, "\nPlayers:")
	for _, p := range s.game.Players {
		fmt.Fprintf(s.out, "  %-15s deck %d, hand %d, discard %d, trash %d\n",
			p.Name, len(p.Deck), len(p.Hand), len(p.Discard), len(p.Trash))
	}
}
