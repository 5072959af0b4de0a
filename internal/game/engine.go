package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options configures a new game.
type Options struct {
	// PlayerNames seats 2-4 players in turn order.
	PlayerNames []string
	// Kingdom names the 10 kingdom piles for this game. How the ten are
	// picked (random, preset, manual) is the caller's concern; the engine
	// only validates them.
	Kingdom []string
	// Seed drives the shuffle randomness. Zero seeds from the clock;
	// tests pass a fixed seed for reproducible shuffles.
	Seed int64
}

// Game is the complete mutable state of one session: the supply, the seated
// players, and turn progression. All mutation happens through the Engine,
// strictly turn-serial.
type Game struct {
	ID      string
	Players []*Player
	Supply  *Supply
	Turns   *TurnManager
	Events  *EventBus

	rng  *rand.Rand
	over bool
}

// Engine drives games through their phase state machine.
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates an engine. A nil logger disables logging.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// NewGame stocks the supply, deals each player the starting deck of
// 7 Copper + 3 Estate, shuffles, and draws opening hands of 5.
func (e *Engine) NewGame(opts Options) (*Game, error) {
	if len(opts.PlayerNames) < 2 || len(opts.PlayerNames) > 4 {
		return nil, fmt.Errorf("need 2-4 players, got %d", len(opts.PlayerNames))
	}

	supply, err := NewSupply(len(opts.PlayerNames), opts.Kingdom)
	if err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		ID:     uuid.NewString(),
		Supply: supply,
		Turns:  NewTurnManager(len(opts.PlayerNames)),
		Events: NewEventBus(),
		rng:    rand.New(rand.NewSource(seed)),
	}

	for _, name := range opts.PlayerNames {
		p := NewPlayer(name)
		for i := 0; i < 7; i++ {
			card, takeErr := supply.Take(CardCopper)
			if takeErr != nil {
				return nil, fmt.Errorf("dealing starting deck: %w", takeErr)
			}
			p.Gain(card)
		}
		for i := 0; i < 3; i++ {
			card, takeErr := supply.Take(CardEstate)
			if takeErr != nil {
				return nil, fmt.Errorf("dealing starting deck: %w", takeErr)
			}
			p.Gain(card)
		}
		p.ShuffleDeck(g.rng)
		g.Events.Publish(NewEvent(EventShuffle, p.Name, ""))
		p.Draw(5, g.rng)
		g.Players = append(g.Players, p)
	}

	e.logger.Info("game created",
		zap.String("game_id", g.ID),
		zap.Int("players", len(g.Players)),
		zap.Strings("kingdom", opts.Kingdom),
	)
	return g, nil
}

// IsGameOver reports whether the end condition has tripped. Pile counts
// never increase, so once true it stays true for the same supply state.
func (g *Game) IsGameOver() bool {
	return IsGameOver(g.Supply)
}

// CurrentPlayer returns the player whose turn it is.
func (g *Game) CurrentPlayer() *Player {
	return g.Players[g.Turns.CurrentPlayer()]
}

// Run plays full turns until the end condition trips, then computes the
// final ranking.
func (e *Engine) Run(g *Game, choices ChoiceProvider) []Score {
	for !g.IsGameOver() {
		e.PlayTurn(g, choices)
	}
	return e.Finish(g)
}

// Finish marks the game over, emits the closing event and computes the
// final ranking. The state is read-only from here on.
func (e *Engine) Finish(g *Game) []Score {
	g.over = true
	g.Events.Publish(NewEvent(EventGameOver, "", ""))
	scores := FinalScores(g.Players)
	e.logger.Info("game over",
		zap.String("game_id", g.ID),
		zap.Int("turns", g.Turns.TurnNumber()),
	)
	return scores
}

// PlayTurn runs one full Action -> Buy -> Cleanup turn for the current
// player and advances to the next.
func (e *Engine) PlayTurn(g *Game, choices ChoiceProvider) {
	if g.over {
		return
	}
	p := g.CurrentPlayer()
	g.Events.Publish(NewEventWithAmount(EventTurnBegan, p.Name, "", g.Turns.TurnNumber()))
	e.logger.Debug("turn began",
		zap.Int("turn", g.Turns.TurnNumber()),
		zap.String("player", p.Name),
	)

	ctx := &Context{
		Player:  p,
		Players: g.Players,
		Supply:  g.Supply,
		Choices: choices,
		Events:  g.Events,
		Rand:    g.rng,
	}

	e.actionPhase(g, ctx)
	e.advancePhase(g)
	e.buyPhase(g, ctx)
	e.advancePhase(g)
	e.cleanupPhase(g, ctx)
	e.advancePhase(g)
}

func (e *Engine) advancePhase(g *Game) {
	phase, _ := g.Turns.Advance()
	g.Events.Publish(NewEvent(EventPhaseChanged, g.CurrentPlayer().Name, phase.String()))
}

// actionPhase loops while the player has actions left and holds at least
// one Action card, playing chosen cards through the resolver.
func (e *Engine) actionPhase(g *Game, ctx *Context) {
	p := ctx.Player
	for p.Actions > 0 && p.HasActionCard() {
		name, ok := ctx.Choices.ChooseActionCard(p.Name, p.ActionCardNames())
		if !ok {
			return
		}
		idx := p.IndexInHand(name)
		if idx < 0 || p.Hand[idx].Type != TypeAction {
			// Unknown or unplayable name: reject and re-ask. No
			// action is consumed.
			e.logger.Warn("rejected action choice",
				zap.String("player", p.Name),
				zap.String("card", name),
			)
			continue
		}
		card := p.Hand[idx]
		p.UseAction()
		g.Events.Publish(NewEvent(EventPlayCard, p.Name, card.Name))
		Resolve(card, ctx)
		// The played card goes to discard after resolution — unless its
		// own effect already removed it from hand (Feast trashes
		// itself). Copies are interchangeable, so discarding any copy
		// of the name is equivalent.
		if i := p.IndexInHand(card.Name); i >= 0 {
			p.DiscardFromHand(i)
		}
	}
}

// buyPhase auto-plays every treasure in hand, then loops purchase choices
// while buys remain. Invalid buys are rejected without consuming a buy.
func (e *Engine) buyPhase(g *Game, ctx *Context) {
	p := ctx.Player
	for i := 0; i < len(p.Hand); {
		if p.Hand[i].Type != TypeTreasure {
			i++
			continue
		}
		card, err := p.DiscardFromHand(i)
		if err != nil {
			i++
			continue
		}
		playTreasure(card, p)
		g.Events.Publish(NewEventWithAmount(EventPlayCard, p.Name, card.Name, card.Coins))
	}

	for p.Buys > 0 {
		name, ok := ctx.Choices.ChooseBuy(p.Name, g.Supply.AffordablePiles(p.Coins), p.Coins)
		if !ok {
			return
		}
		cost, remaining, err := g.Supply.Peek(name)
		if err != nil || remaining == 0 || cost > p.Coins {
			e.logger.Warn("rejected buy",
				zap.String("player", p.Name),
				zap.String("card", name),
				zap.Int("coins", p.Coins),
				zap.Error(err),
			)
			continue
		}
		card, err := g.Supply.Take(name)
		if err != nil {
			continue
		}
		p.Gain(card)
		p.UseBuy()
		p.SpendCoins(cost)
		g.Events.Publish(NewEventWithAmount(EventBuyCard, p.Name, card.Name, cost))
		e.logger.Debug("bought card",
			zap.String("player", p.Name),
			zap.String("card", card.Name),
			zap.Int("cost", cost),
		)
	}
}

// cleanupPhase discards the remaining hand, draws the next hand of 5 and
// resets the per-turn counters.
func (e *Engine) cleanupPhase(g *Game, ctx *Context) {
	p := ctx.Player
	p.DiscardHand()
	drawn := p.Draw(5, g.rng)
	p.ResetForCleanup()
	g.Events.Publish(NewEventWithAmount(EventDrawCard, p.Name, "", drawn))
}
