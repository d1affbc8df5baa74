// Package env exposes a 99 Cards game as a reinforcement-learning
// environment: fixed-size observation vectors, legal-action masks and a
// Reset/Step loop. It contains no policy.
package env

import engine "github.com/jason-s-yu/ninetynine/engine"

const (
	// InputDim is the length of an encoded observation.
	InputDim = 22

	cardScale  = float32(engine.DescendingSeed)
	drawScale  = float32(engine.DeckSize - engine.HandSize)
	emptyBase  = engine.NumStacks + engine.HandSize // 12
	drawOffset = emptyBase + engine.HandSize        // 20
)

// Observation is an encoded game position.
type Observation [InputDim]float32

// Encode writes the feature vector for g into out.
// Layout (22 total):
//
//	[0-3]   foundation values / 100
//	[4-11]  hand values / 100 (0 for an empty slot)
//	[12-19] empty-slot mask (1 = empty)
//	[20]    draw pile size / 90
//	[21]    CardsRemaining / InitialCardsRemaining
//
// out is zeroed internally before writing.
func Encode(g *engine.GameState, out *Observation) {
	*out = Observation{}

	for i, c := range g.Foundations {
		out[i] = float32(c) / cardScale
	}
	for i, c := range g.Hand {
		if c.IsEmpty() {
			out[emptyBase+i] = 1.0
			continue
		}
		out[engine.NumStacks+i] = float32(c) / cardScale
	}

	out[drawOffset] = float32(g.DrawLen()) / drawScale
	if n := g.Rules.InitialCardsRemaining; n > 0 {
		out[drawOffset+1] = float32(g.CardsRemaining) / float32(n)
	}
}

// ActionMask returns the legal actions of g indexed by action index.
func ActionMask(g *engine.GameState) [engine.NumActions]bool {
	var mask [engine.NumActions]bool
	bits := g.LegalActions()
	for i := range mask {
		mask[i] = bits>>uint(i)&1 == 1
	}
	return mask
}
