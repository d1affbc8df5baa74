package engine

// moveReward returns the reward for the placement about to be counted: the
// number of cards already counted off, InitialCardsRemaining - CardsRemaining.
// Early placements earn little; late placements earn more.
func (g *GameState) moveReward() int {
	return g.Rules.InitialCardsRemaining - g.CardsRemaining
}

// MaxScore is the score of a fully cleared game: 0 + 1 + ... + (DeckSize-1).
const MaxScore = DeckSize * (DeckSize - 1) / 2

// Progress returns the fraction of the deck placed so far, in [0, 1].
func (g *GameState) Progress() float64 {
	return float64(g.Moves) / float64(DeckSize)
}
