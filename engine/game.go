// Package engine implements the 99 Cards solitaire rules.
//
// GameState is a flat value type with an owned RNG, so independent games can
// be copied, snapshotted and simulated in parallel without synchronization.
package engine

import "math/rand"

const (
	NumStacks  = 4
	HandSize   = 8
	DeckSize   = 98 // cards 2..99
	LayoutSize = NumStacks + HandSize

	minCard Card = 2
	maxCard Card = 99
)

// GameState holds the complete, self-contained state of a 99 Cards game.
type GameState struct {
	Foundations    [NumStacks]Card // 0..1 ascending, 2..3 descending
	Hand           [HandSize]Card  // NoCard marks an empty slot
	Draw           [DeckSize]Card  // face-down pile, consumed from DrawPos
	DrawPos        uint8
	DrawEnd        uint8
	CardsRemaining int
	Score          int
	Moves          int
	Seed           uint64 // effective seed; never 0
	RNG            uint64
	Rules          Rules
}

// ---------------------------------------------------------------------------
// xorshift64 RNG, inline, no interface
// ---------------------------------------------------------------------------

func (g *GameState) nextRand() uint64 {
	x := g.RNG
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	g.RNG = x
	return x
}

// randN returns a random number in [0, n).
func (g *GameState) randN(n uint64) uint64 {
	return g.nextRand() % n
}

// ---------------------------------------------------------------------------
// NewGame
// ---------------------------------------------------------------------------

// NewGame shuffles a fresh deck and deals the opening hand.
// A zero seed draws one from ambient randomness; the chosen value is kept in
// Seed so the game can be replayed.
func NewGame(seed uint64, rules Rules) GameState {
	for seed == 0 {
		seed = rand.Uint64()
	}

	var g GameState
	g.Seed = seed
	g.RNG = seed
	g.Rules = rules
	g.Foundations = [NumStacks]Card{AscendingSeed, AscendingSeed, DescendingSeed, DescendingSeed}

	var deck [DeckSize]Card
	for i := range deck {
		deck[i] = minCard + Card(i)
	}
	// Fisher-Yates shuffle.
	for i := DeckSize - 1; i > 0; i-- {
		j := int(g.randN(uint64(i + 1)))
		deck[i], deck[j] = deck[j], deck[i]
	}

	copy(g.Hand[:], deck[:HandSize])
	g.DrawEnd = uint8(copy(g.Draw[:], deck[HandSize:]))
	g.CardsRemaining = rules.InitialCardsRemaining

	return g
}

// ---------------------------------------------------------------------------
// Query methods
// ---------------------------------------------------------------------------

// Observable returns the public layout: 4 foundation values followed by the
// 8 hand slots, with 0 for an empty slot.
func (g *GameState) Observable() [LayoutSize]int {
	var out [LayoutSize]int
	for i, c := range g.Foundations {
		out[i] = int(c)
	}
	for i, c := range g.Hand {
		out[NumStacks+i] = int(c)
	}
	return out
}

// Slot returns the card in hand slot i and whether the slot holds one.
func (g *GameState) Slot(i int) (Card, bool) {
	if i < 0 || i >= HandSize || g.Hand[i].IsEmpty() {
		return NoCard, false
	}
	return g.Hand[i], true
}

// HandLen returns the number of occupied hand slots.
func (g *GameState) HandLen() int {
	n := 0
	for _, c := range g.Hand {
		if !c.IsEmpty() {
			n++
		}
	}
	return n
}

// DrawLen returns the number of cards left in the draw pile.
func (g *GameState) DrawLen() int { return int(g.DrawEnd) - int(g.DrawPos) }

// popDraw removes and returns the next draw card, or NoCard if exhausted.
func (g *GameState) popDraw() Card {
	if g.DrawPos >= g.DrawEnd {
		return NoCard
	}
	c := g.Draw[g.DrawPos]
	g.DrawPos++
	return c
}

// ---------------------------------------------------------------------------
// Snapshot Undo (Save / Restore)
// ---------------------------------------------------------------------------

// Snapshot is a complete value-copy of GameState.
type Snapshot GameState

// Save returns a snapshot of the current game state.
func (g *GameState) Save() Snapshot { return Snapshot(*g) }

// Restore replaces the game state with the given snapshot.
func (g *GameState) Restore(s Snapshot) { *g = GameState(s) }

// StateHash returns an FNV-1a hash of the visible layout, the remaining draw
// pile and the counters. Equal positions hash equally regardless of RNG state.
func (g *GameState) StateHash() uint64 {
	h := uint64(14695981039346656037) // FNV-1a offset basis
	const prime = uint64(1099511628211)

	for _, c := range g.Foundations {
		h ^= uint64(c)
		h *= prime
	}
	for _, c := range g.Hand {
		h ^= uint64(c)
		h *= prime
	}
	for i := g.DrawPos; i < g.DrawEnd; i++ {
		h ^= uint64(g.Draw[i])
		h *= prime
	}
	h ^= uint64(g.CardsRemaining) << 32
	h *= prime
	return h
}
