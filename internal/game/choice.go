package game

// PileOption describes one purchasable or gainable pile as presented to a
// choice provider.
type PileOption struct {
	Name      string
	Cost      int
	Remaining int
}

// ChoiceProvider answers the engine's decision points. It is implemented by
// the UI collaborator (console, script, test double); the engine never reads
// input itself.
//
// Every call is synchronous and blocks the turn until answered. Answers are
// validated by the engine, which re-asks on violation rather than trusting
// the provider, so implementations may return anything without corrupting
// game state.
type ChoiceProvider interface {
	// ChooseActionCard picks an Action card from the playable names, or
	// returns ok=false to end the action phase.
	ChooseActionCard(player string, playable []string) (name string, ok bool)

	// ChooseBuy picks a pile to buy from the affordable options, or
	// returns ok=false to end the buy phase.
	ChooseBuy(player string, affordable []PileOption, coins int) (name string, ok bool)

	// ChooseDiscards selects up to count distinct hand indices to
	// discard. Voluntary discards (Cellar) accept any number up to count;
	// forced discards (Militia) require exactly count and the engine
	// re-asks until satisfied.
	ChooseDiscards(player string, hand []Card, count int) []int

	// ChooseTrashes selects up to max hand indices to trash (Chapel).
	// An empty result declines.
	ChooseTrashes(player string, hand []Card, max int) []int

	// ChooseTreasureClaim picks one of the revealed treasures to claim
	// (Thief), or returns ok=false to claim nothing.
	ChooseTreasureClaim(player string, revealed []Card) (index int, ok bool)

	// ChooseGain picks a pile to gain from (Workshop, Feast), or returns
	// ok=false to decline the gain.
	ChooseGain(player string, options []PileOption, maxCost int) (name string, ok bool)
}
