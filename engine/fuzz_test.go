package engine

import "testing"

// advance plays up to n placements, always the first legal one.
func advance(g *GameState, n int) {
	for i := 0; i < n; i++ {
		legal := g.LegalActionsList()
		if len(legal) == 0 {
			return
		}
		g.Play(int(legal[0].Stack), int(legal[0].Slot))
	}
}

// checkCounters verifies the bookkeeping that must hold after any sequence of
// placement attempts.
func checkCounters(t *testing.T, g *GameState) {
	t.Helper()
	if got := g.HandLen() + g.DrawLen() + g.Moves; got != DeckSize {
		t.Fatalf("hand %d + draw %d + moves %d = %d, want %d", g.HandLen(), g.DrawLen(), g.Moves, got, DeckSize)
	}
	if g.CardsRemaining != g.Rules.InitialCardsRemaining-g.Moves {
		t.Fatalf("CardsRemaining = %d after %d moves", g.CardsRemaining, g.Moves)
	}
	if want := g.Moves * (g.Moves - 1) / 2; g.Score != want {
		t.Fatalf("Score = %d after %d moves, want %d", g.Score, g.Moves, want)
	}
	// Occupied slots are a prefix of the hand.
	for i := g.HandLen(); i < HandSize; i++ {
		if !g.Hand[i].IsEmpty() {
			t.Fatalf("slot %d holds %d past the occupied prefix", i, g.Hand[i])
		}
	}
}

// FuzzIsValidAction checks IsValidAction over arbitrary ints and that its
// answer agrees with Play and with the legal-action mask.
func FuzzIsValidAction(f *testing.F) {
	f.Add(uint64(42), 0, 0, uint8(0))
	f.Add(uint64(7), 3, 7, uint8(20))
	f.Add(uint64(1), -1, 0, uint8(5))
	f.Add(uint64(99), 2, 8, uint8(90))
	f.Add(uint64(123456789), 1<<40, -1<<40, uint8(255))

	f.Fuzz(func(t *testing.T, seed uint64, stack, slot int, moves uint8) {
		if seed == 0 {
			seed = 1
		}
		g := NewGame(seed, DefaultRules())
		advance(&g, int(moves))
		before := g

		valid := g.IsValidAction(stack, slot)
		if g != before {
			t.Fatal("IsValidAction changed the game state")
		}
		inRange := stack >= 0 && stack < NumStacks && slot >= 0 && slot < HandSize
		if valid && !inRange {
			t.Fatalf("IsValidAction(%d, %d) = true for an out-of-range pair", stack, slot)
		}
		if inRange && slot < int(g.Rules.ActionSlots) {
			bit := g.LegalActions()>>EncodeAction(uint8(stack), uint8(slot))&1 == 1
			if bit != valid {
				t.Fatalf("IsValidAction(%d, %d) = %v, mask bit = %v", stack, slot, valid, bit)
			}
		}

		res := g.Play(stack, slot)
		if res.Accepted != valid {
			t.Fatalf("Play(%d, %d) accepted = %v, IsValidAction = %v", stack, slot, res.Accepted, valid)
		}
		if !valid {
			if res.Reward != g.Rules.InvalidReward {
				t.Fatalf("rejected reward = %d, want %d", res.Reward, g.Rules.InvalidReward)
			}
			if g != before {
				t.Fatal("rejected Play changed the game state")
			}
			return
		}
		if res.Reward != before.Moves {
			t.Fatalf("reward = %d, want %d", res.Reward, before.Moves)
		}
		checkCounters(t, &g)
	})
}

// FuzzPlay applies arbitrary action indices and checks the counters after
// every attempt.
func FuzzPlay(f *testing.F) {
	f.Add(uint64(42), []byte{0, 8, 16, 24, 1, 9, 17, 25})
	f.Add(uint64(3), []byte{7, 15, 23, 31, 31, 31})
	f.Add(uint64(2024), []byte{255, 32, 64, 3, 2, 1, 0})

	f.Fuzz(func(t *testing.T, seed uint64, actions []byte) {
		if seed == 0 {
			seed = 1
		}
		g := NewGame(seed, DefaultRules())
		for _, b := range actions {
			idx := uint16(b)
			a, ok := DecodeAction(idx)
			want := ok && g.IsValidAction(int(a.Stack), int(a.Slot))

			_, err := g.ApplyAction(idx)
			if (err == nil) != want {
				t.Fatalf("ApplyAction(%d) err = %v, IsValidAction = %v", idx, err, want)
			}
			checkCounters(t, &g)
		}
	})
}
