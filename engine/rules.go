package engine

// Rules holds configurable game parameters.
type Rules struct {
	InitialCardsRemaining int   // counter start; also the reward base
	ActionSlots           uint8 // hand slots enumerated by LegalActions
	ValidationSlots       uint8 // hand slots accepted by IsValidAction
	WrapDistance          uint8 // distance that overrides stack direction; 0 disables
	CircularWrap          bool  // also measure WrapDistance around the 1..100 ring (95 -> 5)
	InvalidReward         int   // reward reported for a rejected placement
}

// DefaultRules returns the standard 99 Cards rules.
//
// LegalActions only enumerates slots 0..6 while IsValidAction accepts 0..7, and
// the counter starts at 99 although 98 cards are dealt. Both are kept as the
// reference behaviour; set ActionSlots to HandSize to expose slot 7.
func DefaultRules() Rules {
	return Rules{
		InitialCardsRemaining: 99,
		ActionSlots:           7,
		ValidationSlots:       HandSize,
		WrapDistance:          10,
		CircularWrap:          true,
		InvalidReward:         -1000,
	}
}

// actionSlots returns the enumerated slot count clamped to the hand size.
func (r *Rules) actionSlots() uint8 {
	if r.ActionSlots > HandSize {
		return HandSize
	}
	return r.ActionSlots
}

// validationSlots returns the validated slot count clamped to the hand size.
func (r *Rules) validationSlots() uint8 {
	if r.ValidationSlots > HandSize {
		return HandSize
	}
	return r.ValidationSlots
}
