package explorer

import (
	"math/rand/v2"
)

// Action is what the explorer does on a step when it does not get out
type Action int

// Actions
const (
	TurnLeft Action = iota
	Walk
)

// String returns the string representation of an action
func (a Action) String() string {
	switch a {
	case TurnLeft:
		return "TurnLeft"
	case Walk:
		return "Walk"
	default:
		return "Unknown"
	}
}

// Randomizer picks the next action
type Randomizer interface {
	Next() Action
}

// randomRandomizer flips a fair coin between turning and walking
type randomRandomizer struct {
	rng *rand.Rand
}

// NewRandomizer creates a randomizer. Runs with the same seed pick the same actions.
func NewRandomizer(seed uint64) Randomizer {
	return &randomRandomizer{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Next implements Randomizer.Next
func (r *randomRandomizer) Next() Action {
	return Action(r.rng.IntN(2))
}
