package sim

import (
	"fmt"

	"lightcycle/internal/arena"
)

// Policy names.
const (
	PolicyStraight = "straight"
	PolicyReactive = "reactive"
)

// Policy drives the player in place of a human, one key per tick.
type Policy interface {
	Steer(w *arena.World) arena.Key
}

var headingKeys = [...]arena.Key{
	arena.North: arena.KeyUp,
	arena.East:  arena.KeyRight,
	arena.South: arena.KeyDown,
	arena.West:  arena.KeyLeft,
}

type straightPolicy struct{}

func (straightPolicy) Steer(*arena.World) arena.Key { return arena.KeyNone }

// reactivePolicy gives the player the agent's own reflexes.
type reactivePolicy struct {
	ai *arena.Reactive
}

func (p reactivePolicy) Steer(w *arena.World) arena.Key {
	player := w.Player()
	h := p.ai.DecideHeading(w.Config(), player, &w.Agent().Trail)
	if h == player.Heading {
		return arena.KeyNone
	}
	return headingKeys[h]
}

// NewPolicy builds a named policy; src seeds the reactive policy's turns.
func NewPolicy(name string, src arena.Source) (Policy, error) {
	switch name {
	case PolicyStraight:
		return straightPolicy{}, nil
	case PolicyReactive:
		return reactivePolicy{ai: arena.NewReactive(src)}, nil
	}
	return nil, fmt.Errorf("unknown policy %q (want %q or %q)", name, PolicyStraight, PolicyReactive)
}
