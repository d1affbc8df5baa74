// internal/rollout/policy.go
package rollout

import engine "github.com/jason-s-yu/ninetynine/engine"

// Policy picks one of the legal placements. legal is never empty and is in
// stack-major, slot-minor order.
type Policy interface {
	Choose(g *engine.GameState, legal []engine.Action) engine.Action
}

// PolicyFactory builds a fresh policy for one game. seed is the hash of the
// opening position, so runs are reproducible.
type PolicyFactory func(seed uint64) Policy

// UniformPolicy picks uniformly among legal placements. It is a baseline for
// smoke tests and throughput measurement.
type UniformPolicy struct {
	rng uint64
}

// NewUniformPolicy returns a UniformPolicy seeded with seed (0 is mapped to 1).
func NewUniformPolicy(seed uint64) *UniformPolicy {
	if seed == 0 {
		seed = 1 // xorshift can't start at 0
	}
	return &UniformPolicy{rng: seed}
}

// Choose implements Policy.
func (p *UniformPolicy) Choose(_ *engine.GameState, legal []engine.Action) engine.Action {
	x := p.rng
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	p.rng = x
	return legal[x%uint64(len(legal))]
}

// UniformFactory is a PolicyFactory for UniformPolicy.
func UniformFactory(seed uint64) Policy { return NewUniformPolicy(seed) }

// PolicyFunc adapts a function to Policy.
type PolicyFunc func(g *engine.GameState, legal []engine.Action) engine.Action

// Choose implements Policy.
func (f PolicyFunc) Choose(g *engine.GameState, legal []engine.Action) engine.Action {
	return f(g, legal)
}
