package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidAction is returned by ApplyAction for a placement the rules reject.
var ErrInvalidAction = errors.New("invalid action")

// Play attempts to place the card in hand slot slot onto foundation stack.
// A rejected placement leaves the state untouched and reports
// Rules.InvalidReward.
func (g *GameState) Play(stack, slot int) Result {
	if !g.IsValidAction(stack, slot) {
		return Result{Accepted: false, Reward: g.Rules.InvalidReward}
	}

	g.Foundations[stack] = g.Hand[slot]
	g.removeSlot(uint8(slot))

	reward := g.moveReward()
	g.Score += reward
	g.CardsRemaining--
	g.Moves++

	return Result{Accepted: true, Reward: reward}
}

// PlayAction is the sentinel form of Play: it returns the reward of an
// accepted placement, or Rules.InvalidReward when the placement is rejected.
func (g *GameState) PlayAction(stack, slot int) int {
	return g.Play(stack, slot).Reward
}

// ApplyAction applies an action by index. Returns an error if the action is illegal.
func (g *GameState) ApplyAction(actionIdx uint16) (int, error) {
	a, ok := DecodeAction(actionIdx)
	if !ok {
		return 0, fmt.Errorf("%w: action index %d out of range", ErrInvalidAction, actionIdx)
	}
	res := g.Play(int(a.Stack), int(a.Slot))
	if !res.Accepted {
		return res.Reward, fmt.Errorf("%w: stack %d slot %d (foundation %d, card %d)",
			ErrInvalidAction, a.Stack, a.Slot, g.Foundations[a.Stack], g.Hand[a.Slot])
	}
	return res.Reward, nil
}

// removeSlot drops hand slot i, shifts later slots left and refills the last
// slot from the draw pile.
func (g *GameState) removeSlot(i uint8) {
	copy(g.Hand[i:], g.Hand[i+1:])
	g.Hand[HandSize-1] = g.popDraw()
}
