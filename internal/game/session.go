// internal/game/session.go
package game

import (
	"sync"
	"time"

	"github.com/google/uuid"
	engine "github.com/jason-s-yu/ninetynine/engine"
	"github.com/sirupsen/logrus"
)

// EventType identifies a session event.
type EventType string

// Constants defining the events a Session emits.
const (
	EventMoveAccepted EventType = "move_accepted" // A placement was applied.
	EventMoveRejected EventType = "move_rejected" // A placement was refused; state unchanged.
	EventGameEnd      EventType = "game_end"      // No legal placement remains.
)

// MoveRecord is one placement attempt in a session's history.
type MoveRecord struct {
	Index    int         `json:"index"` // Sequential attempt number, from 0.
	Stack    int         `json:"stack"`
	Slot     int         `json:"slot"`
	Card     engine.Card `json:"card"` // Card in the slot at attempt time; 0 if empty or out of range.
	Accepted bool        `json:"accepted"`
	Reward   int         `json:"reward"`
}

// Event is delivered to OnEvent after every attempt and once when the game ends.
type Event struct {
	Type    EventType   `json:"type"`
	GameID  uuid.UUID   `json:"gameId"`
	Move    *MoveRecord `json:"move,omitempty"`
	Summary *Summary    `json:"summary,omitempty"`
}

// Summary is a snapshot of a session's progress.
type Summary struct {
	ID             uuid.UUID     `json:"id"`
	Seed           uint64        `json:"seed"`
	Status         engine.Status `json:"status"`
	Score          int           `json:"score"`
	Moves          int           `json:"moves"`
	Rejected       int           `json:"rejected"`
	CardsRemaining int           `json:"cardsRemaining"`
	Duration       time.Duration `json:"duration"`
}

// Session owns a single 99 Cards game and records everything played on it.
type Session struct {
	ID uuid.UUID // Unique identifier for this game instance.

	Engine  engine.GameState // The authoritative game state.
	History []MoveRecord     // Every placement attempt, in order.

	OnEvent   func(ev Event)    // Optional; called outside the lock.
	OnGameEnd func(sum Summary) // Optional; called once when the game ends.

	GameOver  bool
	StartedAt time.Time
	EndedAt   time.Time

	rejected int
	log      *logrus.Entry
	Mu       sync.Mutex // Protects all fields above.
}

// NewSession deals a new game. A nil logger uses the logrus standard logger.
func NewSession(seed uint64, rules engine.Rules, logger *logrus.Logger) *Session {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	id, _ := uuid.NewRandom()
	s := &Session{
		ID:        id,
		Engine:    engine.NewGame(seed, rules),
		StartedAt: time.Now(),
	}
	s.log = logger.WithFields(logrus.Fields{
		"game_id": s.ID,
		"seed":    s.Engine.Seed,
	})
	s.log.Info("Game started.")
	return s
}

// Play attempts a placement, records it and emits events. Rejected attempts
// are logged at warn level and leave the board unchanged.
func (s *Session) Play(stack, slot int) engine.Result {
	s.Mu.Lock()

	if s.GameOver {
		invalid := s.Engine.Rules.InvalidReward
		s.Mu.Unlock()
		s.log.WithFields(logrus.Fields{"stack": stack, "slot": slot}).Warn("Move ignored (game over).")
		return engine.Result{Reward: invalid}
	}

	card, _ := s.Engine.Slot(slot)
	res := s.Engine.Play(stack, slot)
	rec := MoveRecord{
		Index:    len(s.History),
		Stack:    stack,
		Slot:     slot,
		Card:     card,
		Accepted: res.Accepted,
		Reward:   res.Reward,
	}
	s.History = append(s.History, rec)

	fields := logrus.Fields{"stack": stack, "slot": slot, "card": card, "reward": res.Reward}
	events := make([]Event, 0, 2)
	if res.Accepted {
		s.log.WithFields(fields).Debug("Move accepted.")
		events = append(events, Event{Type: EventMoveAccepted, GameID: s.ID, Move: &rec})
	} else {
		s.rejected++
		s.log.WithFields(fields).Warn("Move rejected.")
		events = append(events, Event{Type: EventMoveRejected, GameID: s.ID, Move: &rec})
	}

	var ended *Summary
	if !s.Engine.HasLegalAction() {
		sum := s.endLocked()
		ended = &sum
		events = append(events, Event{Type: EventGameEnd, GameID: s.ID, Summary: ended})
	}
	onEvent, onEnd := s.OnEvent, s.OnGameEnd
	s.Mu.Unlock()

	if onEvent != nil {
		for _, ev := range events {
			onEvent(ev)
		}
	}
	if ended != nil && onEnd != nil {
		onEnd(*ended)
	}
	return res
}

// EndGame ends the session early. It is a no-op if the game is already over.
func (s *Session) EndGame() Summary {
	s.Mu.Lock()
	if s.GameOver {
		sum := s.summaryLocked()
		s.Mu.Unlock()
		s.log.Debug("EndGame called, but game is already over.")
		return sum
	}
	sum := s.endLocked()
	onEvent, onEnd := s.OnEvent, s.OnGameEnd
	s.Mu.Unlock()

	if onEvent != nil {
		onEvent(Event{Type: EventGameEnd, GameID: s.ID, Summary: &sum})
	}
	if onEnd != nil {
		onEnd(sum)
	}
	return sum
}

// endLocked marks the game over and logs the result. Caller holds Mu.
func (s *Session) endLocked() Summary {
	s.GameOver = true
	s.EndedAt = time.Now()
	sum := s.summaryLocked()
	s.log.WithFields(logrus.Fields{
		"status": sum.Status.String(),
		"score":  sum.Score,
		"moves":  sum.Moves,
	}).Info("Game ended.")
	return sum
}

func (s *Session) summaryLocked() Summary {
	end := s.EndedAt
	if end.IsZero() {
		end = time.Now()
	}
	return Summary{
		ID:             s.ID,
		Seed:           s.Engine.Seed,
		Status:         s.Engine.Status(),
		Score:          s.Engine.Score,
		Moves:          s.Engine.Moves,
		Rejected:       s.rejected,
		CardsRemaining: s.Engine.CardsRemaining,
		Duration:       end.Sub(s.StartedAt),
	}
}

// Summary returns the current progress.
func (s *Session) Summary() Summary {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	return s.summaryLocked()
}

// LegalActions returns the legal placements of the current position.
func (s *Session) LegalActions() []engine.Action {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	return s.Engine.LegalActionsList()
}

// IsValidAction reports whether a placement would be accepted.
func (s *Session) IsValidAction(stack, slot int) bool {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	return !s.GameOver && s.Engine.IsValidAction(stack, slot)
}

// Observable returns the public layout.
func (s *Session) Observable() [engine.LayoutSize]int {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	return s.Engine.Observable()
}

// IsOver reports whether the session has ended.
func (s *Session) IsOver() bool {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	return s.GameOver
}
