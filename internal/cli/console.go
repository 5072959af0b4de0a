package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dominionfree/dominion-server-go/internal/game"
)

// Console answers the engine's choice requests from an interactive text
// session. The engine validates every answer, so parsing here is best
// effort: a bad line simply comes back as another prompt.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewConsole creates a console provider reading from in and prompting on out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewScanner(in), out: out}
}

var _ game.ChoiceProvider = (*Console)(nil)

// ChooseActionCard prompts for an Action card name, or "skip".
func (c *Console) ChooseActionCard(player string, playable []string) (string, bool) {
	fmt.Fprintf(c.out, "\n[%s] Action cards in hand: %s\n", player, strings.Join(playable, ", "))
	fmt.Fprintf(c.out, "[%s] Play which card? (name, or 'skip'): ", player)
	line := c.readLine()
	if line == "" || strings.EqualFold(line, "skip") {
		return "", false
	}
	return matchName(line, playable), true
}

// ChooseBuy prompts for a pile to buy, or "done".
func (c *Console) ChooseBuy(player string, affordable []game.PileOption, coins int) (string, bool) {
	fmt.Fprintf(c.out, "\n[%s] Coins: %d. Affordable piles:\n", player, coins)
	writePileTable(c.out, affordable)
	fmt.Fprintf(c.out, "[%s] Buy which pile? (name, or 'done'): ", player)
	line := c.readLine()
	if line == "" || strings.EqualFold(line, "done") {
		return "", false
	}
	return matchPile(line, affordable), true
}

// ChooseDiscards prompts for space-separated 1-based hand positions.
func (c *Console) ChooseDiscards(player string, hand []game.Card, count int) []int {
	fmt.Fprintf(c.out, "\n[%s] Hand: %s\n", player, handLine(hand))
	fmt.Fprintf(c.out, "[%s] Discard up to %d cards (positions, e.g. '1 3', or empty): ", player, count)
	return c.readIndices()
}

// ChooseTrashes prompts for space-separated 1-based hand positions.
func (c *Console) ChooseTrashes(player string, hand []game.Card, max int) []int {
	fmt.Fprintf(c.out, "\n[%s] Hand: %s\n", player, handLine(hand))
	fmt.Fprintf(c.out, "[%s] Trash up to %d cards (positions, or empty to decline): ", player, max)
	return c.readIndices()
}

// ChooseTreasureClaim prompts for one revealed treasure, or "none".
func (c *Console) ChooseTreasureClaim(player string, revealed []game.Card) (int, bool) {
	fmt.Fprintf(c.out, "\n[%s] Revealed treasures: %s\n", player, handLine(revealed))
	fmt.Fprintf(c.out, "[%s] Claim which? (position, or 'none'): ", player)
	line := c.readLine()
	if line == "" || strings.EqualFold(line, "none") {
		return 0, false
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return -1, true
	}
	return n - 1, true
}

// ChooseGain prompts for a pile to gain, or "none".
func (c *Console) ChooseGain(player string, options []game.PileOption, maxCost int) (string, bool) {
	fmt.Fprintf(c.out, "\n[%s] Gain a card costing up to %d:\n", player, maxCost)
	writePileTable(c.out, options)
	fmt.Fprintf(c.out, "[%s] Gain which pile? (name, or 'none'): ", player)
	line := c.readLine()
	if line == "" || strings.EqualFold(line, "none") {
		return "", false
	}
	return matchPile(line, options), true
}

func (c *Console) readLine() string {
	if !c.in.Scan() {
		return ""
	}
	return strings.TrimSpace(c.in.Text())
}

// readIndices parses 1-based positions into 0-based indices. Unparseable
// tokens become -1 and are rejected by the engine's validation.
func (c *Console) readIndices() []int {
	line := c.readLine()
	if line == "" {
		return nil
	}
	fields := strings.Fields(line)
	indices := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			indices = append(indices, -1)
			continue
		}
		indices = append(indices, n-1)
	}
	return indices
}

// matchName resolves a case-insensitive name against the offered list,
// falling back to the raw input so the engine reports the rejection.
func matchName(input string, names []string) string {
	for _, name := range names {
		if strings.EqualFold(name, input) {
			return name
		}
	}
	return input
}

func matchPile(input string, options []game.PileOption) string {
	for _, opt := range options {
		if strings.EqualFold(opt.Name, input) {
			return opt.Name
		}
	}
	return input
}

func handLine(cards []game.Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = fmt.Sprintf("%d.%s", i+1, card.Name)
	}
	return strings.Join(parts, " ")
}

func writePileTable(out io.Writer, options []game.PileOption) {
	fmt.Fprintf(out, "  %-15s %5s %10s\n", "Card", "Cost", "Remaining")
	for _, opt := range options {
		fmt.Fprintf(out, "  %-15s %5d %10d\n", opt.Name, opt.Cost, opt.Remaining)
	}
}
