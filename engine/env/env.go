package env

import engine "github.com/jason-s-yu/ninetynine/engine"

// StepResult is the outcome of one Step.
type StepResult struct {
	Obs      Observation
	Reward   float32
	Done     bool
	Accepted bool
}

// Env wraps a single game for an agent loop. An Env is not safe for
// concurrent use; run one Env per goroutine.
type Env struct {
	rules engine.Rules
	game  engine.GameState
	steps int
}

// New returns an environment that deals games under rules. Call Reset before
// the first Step.
func New(rules engine.Rules) *Env {
	return &Env{rules: rules}
}

// Reset deals a new game and returns its first observation.
func (e *Env) Reset(seed uint64) Observation {
	e.game = engine.NewGame(seed, e.rules)
	e.steps = 0
	return e.Observe()
}

// Observe encodes the current position.
func (e *Env) Observe() Observation {
	var obs Observation
	Encode(&e.game, &obs)
	return obs
}

// Step applies the action at index actionIdx. A rejected action leaves the
// game untouched and reports Rules.InvalidReward.
func (e *Env) Step(actionIdx uint16) StepResult {
	e.steps++

	var res engine.Result
	if a, ok := engine.DecodeAction(actionIdx); ok {
		res = e.game.Play(int(a.Stack), int(a.Slot))
	} else {
		res = engine.Result{Reward: e.rules.InvalidReward}
	}

	return StepResult{
		Obs:      e.Observe(),
		Reward:   float32(res.Reward),
		Done:     e.game.IsTerminal(),
		Accepted: res.Accepted,
	}
}

// ActionMask returns the legal actions of the current position.
func (e *Env) ActionMask() [engine.NumActions]bool { return ActionMask(&e.game) }

// Steps returns the number of Step calls since the last Reset.
func (e *Env) Steps() int { return e.steps }

// Game returns the underlying game. Mutating it bypasses Step.
func (e *Env) Game() *engine.GameState { return &e.game }
