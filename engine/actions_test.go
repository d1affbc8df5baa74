package engine

import (
	"errors"
	"testing"
)

// TestPlayAccepted places 11 on the ascending seed and checks the refill.
func TestPlayAccepted(t *testing.T) {
	g := newTestGame(t, seedFoundations, [HandSize]Card{11, 22, 33, 44, 55, 66, 77, 88}, 9, 10)

	if !g.IsValidAction(0, 0) {
		t.Fatal("IsValidAction(0, 0) = false, want true (1 < 11)")
	}
	res := g.Play(0, 0)
	if !res.Accepted {
		t.Fatal("Play(0, 0) rejected")
	}
	if res.Reward != 0 {
		t.Errorf("Reward = %d, want 0", res.Reward)
	}

	want := [LayoutSize]int{11, 1, 100, 100, 22, 33, 44, 55, 66, 77, 88, 9}
	if got := g.Observable(); got != want {
		t.Errorf("Observable = %v, want %v", got, want)
	}
	if g.DrawLen() != 1 {
		t.Errorf("DrawLen = %d, want 1", g.DrawLen())
	}
	if g.CardsRemaining != 98 {
		t.Errorf("CardsRemaining = %d, want 98", g.CardsRemaining)
	}
	if g.Score != 0 || g.Moves != 1 {
		t.Errorf("Score, Moves = %d, %d; want 0, 1", g.Score, g.Moves)
	}
}

// TestPlayMiddleSlotShifts verifies later slots shift left by one.
func TestPlayMiddleSlotShifts(t *testing.T) {
	g := newTestGame(t, seedFoundations, [HandSize]Card{11, 22, 33, 44, 55, 66, 77, 88}, 9)

	if res := g.Play(StackDescA, 3); !res.Accepted {
		t.Fatal("Play(2, 3) rejected")
	}
	wantHand := [HandSize]Card{11, 22, 33, 55, 66, 77, 88, 9}
	if g.Hand != wantHand {
		t.Errorf("Hand = %v, want %v", g.Hand, wantHand)
	}
	if g.Foundations[StackDescA] != 44 {
		t.Errorf("Foundations[2] = %d, want 44", g.Foundations[StackDescA])
	}
}

// TestPlayExhaustedDraw verifies slot 7 becomes empty once the pile is gone.
func TestPlayExhaustedDraw(t *testing.T) {
	g := newTestGame(t, seedFoundations, [HandSize]Card{11, 22, 33, 0, 0, 0, 0, 0})

	g.Play(0, 0)
	wantHand := [HandSize]Card{22, 33, 0, 0, 0, 0, 0, 0}
	if g.Hand != wantHand {
		t.Errorf("Hand = %v, want %v", g.Hand, wantHand)
	}
	if _, ok := g.Slot(HandSize - 1); ok {
		t.Error("slot 7 holds a card after the draw pile ran out")
	}
}

func TestPlayRejected(t *testing.T) {
	g := newTestGame(t, [NumStacks]Card{50, 50, 50, 50}, [HandSize]Card{45, 55, 0, 0, 0, 0, 0, 0}, 9)
	before := g

	cases := []struct{ stack, slot int }{
		{0, 0},  // 45 below ascending 50
		{2, 1},  // 55 above descending 50
		{0, 2},  // empty slot
		{-1, 0}, // bad stack
		{0, 8},  // bad slot
	}
	for _, tc := range cases {
		res := g.Play(tc.stack, tc.slot)
		if res.Accepted {
			t.Errorf("Play(%d, %d) accepted", tc.stack, tc.slot)
		}
		if res.Reward != -1000 {
			t.Errorf("Play(%d, %d) reward = %d, want -1000", tc.stack, tc.slot, res.Reward)
		}
		if got := g.PlayAction(tc.stack, tc.slot); got != -1000 {
			t.Errorf("PlayAction(%d, %d) = %d, want -1000", tc.stack, tc.slot, got)
		}
	}
	if g != before {
		t.Error("rejected placements changed the game state")
	}
}

// TestRewardSequence verifies reward k equals the number of prior placements.
func TestRewardSequence(t *testing.T) {
	g := newTestGame(t, seedFoundations, [HandSize]Card{10, 20, 30, 40, 50, 60, 70, 80}, 90)

	wantScore := 0
	for k := 0; k < 5; k++ {
		before := g.CardsRemaining
		reward := g.PlayAction(0, 0)
		if reward != k {
			t.Errorf("move %d: reward = %d, want %d", k, reward, k)
		}
		if g.CardsRemaining != before-1 {
			t.Errorf("move %d: CardsRemaining = %d, want %d", k, g.CardsRemaining, before-1)
		}
		wantScore += reward
		if g.Score != wantScore {
			t.Errorf("move %d: Score = %d, want %d", k, g.Score, wantScore)
		}
	}
}

func TestApplyAction(t *testing.T) {
	g := newTestGame(t, seedFoundations, [HandSize]Card{11, 22, 0, 0, 0, 0, 0, 0})

	reward, err := g.ApplyAction(EncodeAction(StackAscB, 1))
	if err != nil {
		t.Fatalf("ApplyAction: %v", err)
	}
	if reward != 0 {
		t.Errorf("reward = %d, want 0", reward)
	}
	if g.Foundations[StackAscB] != 22 {
		t.Errorf("Foundations[1] = %d, want 22", g.Foundations[StackAscB])
	}

	before := g
	if _, err := g.ApplyAction(EncodeAction(StackAscB, 0)); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("ApplyAction(11 onto 22) err = %v, want ErrInvalidAction", err)
	}
	if _, err := g.ApplyAction(NumActions); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("ApplyAction(NumActions) err = %v, want ErrInvalidAction", err)
	}
	if g != before {
		t.Error("failed ApplyAction changed the game state")
	}
}

// TestPlayInvalidRewardRule verifies the rejection reward follows the rules.
func TestPlayInvalidRewardRule(t *testing.T) {
	g := newTestGame(t, seedFoundations, [HandSize]Card{})
	g.Rules.InvalidReward = -1

	if got := g.PlayAction(0, 0); got != -1 {
		t.Errorf("PlayAction on empty hand = %d, want -1", got)
	}
}
