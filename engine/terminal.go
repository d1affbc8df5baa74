package engine

// IsCleared returns true when every card has been placed.
func (g *GameState) IsCleared() bool {
	return g.DrawLen() == 0 && g.HandLen() == 0
}

// IsTerminal returns true when no enumerated placement is legal. The engine
// keeps no terminal flag; this is recomputed from the layout on every call.
func (g *GameState) IsTerminal() bool { return !g.HasLegalAction() }

// Status classifies the current position.
func (g *GameState) Status() Status {
	switch {
	case g.IsCleared():
		return StatusCleared
	case g.IsTerminal():
		return StatusStuck
	default:
		return StatusInProgress
	}
}
