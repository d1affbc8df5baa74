package engine

// IsValidAction reports whether the card in hand slot slot may be placed on
// foundation stack. It is total: out-of-range indices and empty slots are
// simply not legal.
func (g *GameState) IsValidAction(stack, slot int) bool {
	if stack < 0 || stack >= NumStacks {
		return false
	}
	if slot < 0 || slot >= int(g.Rules.validationSlots()) {
		return false
	}
	return g.canPlace(uint8(stack), uint8(slot))
}

// ringSize is the length of the circular 1..100 ordering used by CircularWrap.
const ringSize = int(DescendingSeed)

// canPlace applies the placement rule. stack and slot must be in range.
func (g *GameState) canPlace(stack, slot uint8) bool {
	card := g.Hand[slot]
	if card.IsEmpty() {
		return false
	}
	top := g.Foundations[stack]

	diff := int(top) - int(card)
	if diff < 0 {
		diff = -diff
	}
	if w := int(g.Rules.WrapDistance); w != 0 {
		if diff == w || (g.Rules.CircularWrap && diff == ringSize-w) {
			return true
		}
	}
	if IsAscending(stack) {
		return top < card
	}
	return top > card
}

// LegalActions returns a bitmask of legal action indices.
// Bit i is set if action i is legal. Zero heap allocation.
func (g *GameState) LegalActions() uint32 {
	var mask uint32
	n := g.Rules.actionSlots()
	for stack := uint8(0); stack < NumStacks; stack++ {
		for slot := uint8(0); slot < n; slot++ {
			if g.canPlace(stack, slot) {
				mask |= 1 << EncodeAction(stack, slot)
			}
		}
	}
	return mask
}

// LegalActionsList returns legal actions in stack-major, slot-minor order.
// The list is rebuilt on every call.
func (g *GameState) LegalActionsList() []Action {
	mask := g.LegalActions()
	var actions []Action
	for i := uint16(0); i < NumActions; i++ {
		if mask>>i&1 == 1 {
			a, _ := DecodeAction(i)
			actions = append(actions, a)
		}
	}
	return actions
}

// HasLegalAction reports whether any enumerated placement is legal.
func (g *GameState) HasLegalAction() bool { return g.LegalActions() != 0 }
