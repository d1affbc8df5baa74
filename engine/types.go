package engine

// Card is a face value in 1..100. Only 2..99 are ever dealt; 1 and 100 are
// the foundation seeds.
type Card uint8

// NoCard marks an empty hand slot. It is never a valid card value.
const NoCard Card = 0

// IsEmpty reports whether c is the empty-slot marker.
func (c Card) IsEmpty() bool { return c == NoCard }

// Foundation stack indices.
const (
	StackAscA  = 0
	StackAscB  = 1
	StackDescA = 2
	StackDescB = 3
)

// Foundation seed values.
const (
	AscendingSeed  Card = 1
	DescendingSeed Card = 100
)

// IsAscending reports whether stack is one of the two ascending foundations.
func IsAscending(stack uint8) bool { return stack < 2 }

// ---------------------------------------------------------------------------
// Action index constants
// ---------------------------------------------------------------------------

// Action is a placement of the card in hand slot Slot onto foundation Stack.
type Action struct {
	Stack uint8
	Slot  uint8
}

const (
	// NumActions covers every (stack, slot) pair, including slot 7.
	NumActions uint16 = NumStacks * HandSize
)

// EncodeAction returns the action index for placing slot onto stack.
func EncodeAction(stack, slot uint8) uint16 { return uint16(stack)*HandSize + uint16(slot) }

// Index returns the action index of a.
func (a Action) Index() uint16 { return EncodeAction(a.Stack, a.Slot) }

// DecodeAction returns the (stack, slot) pair encoded by idx.
func DecodeAction(idx uint16) (a Action, ok bool) {
	if idx >= NumActions {
		return Action{}, false
	}
	return Action{Stack: uint8(idx / HandSize), Slot: uint8(idx % HandSize)}, true
}

// ---------------------------------------------------------------------------
// Placement results
// ---------------------------------------------------------------------------

// Result is the outcome of a placement attempt.
type Result struct {
	Accepted bool
	Reward   int
}

// Status classifies a game position.
type Status uint8

const (
	StatusInProgress Status = iota // 0
	StatusStuck                    // 1: cards left, no legal placement
	StatusCleared                  // 2: hand and draw pile empty
)

func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in_progress"
	case StatusStuck:
		return "stuck"
	case StatusCleared:
		return "cleared"
	}
	return "unknown"
}

// MarshalText encodes s by name.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
