// Package arena is the light-cycle simulation: two vehicles, their trails,
// the agent's steering and the round state. It does no I/O; frontends drive
// Step at a fixed cadence and read the accessors between ticks.
package arena

import (
	"errors"
	"fmt"
)

// World bundles both vehicles, the round state and the constants they run on.
// It is not safe for concurrent use; step, input and rendering must be
// serialized on one goroutine.
type World struct {
	cfg    Config
	player Vehicle
	agent  Vehicle
	ctrl   Controller
	state  RoundState
	tick   int
	events *EventBus
}

// NewWorld validates cfg and spawns both vehicles.
func NewWorld(cfg Config, ctrl Controller) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new world: %w", err)
	}
	if ctrl == nil {
		return nil, errors.New("new world: nil agent controller")
	}
	w := &World{
		cfg:    cfg,
		ctrl:   ctrl,
		events: NewEventBus(),
	}
	w.spawn()
	return w, nil
}

func (w *World) spawn() {
	w.player.respawn(w.cfg.PlayerSpawn)
	w.agent.respawn(w.cfg.AgentSpawn)
	w.state = Playing
	w.tick = 0
}

// Reset starts a fresh round from any state.
func (w *World) Reset() {
	w.spawn()
	w.events.Emit(Event{Type: EventReset})
}

// Step advances the round by one tick. It does nothing once the round is over.
//
// The player moves and is judged before the agent, so a crash on the same
// tick by both riders is a loss.
func (w *World) Step() {
	if w.state != Playing {
		return
	}
	w.tick++

	// Trails grow before anyone moves: the cell just left becomes wall.
	w.player.Trail.Append(w.player.Pos)
	w.agent.Trail.Append(w.agent.Pos)

	w.player.Advance(w.cfg.Speed)

	if h := w.ctrl.DecideHeading(w.cfg, &w.agent, &w.player.Trail); h != w.agent.Heading {
		w.agent.Heading = h
		w.events.Emit(Event{Type: EventAgentTurn, Tick: w.tick, Rider: RiderAgent, Pos: w.agent.Pos, Heading: h})
	}
	w.agent.Advance(w.cfg.Speed)

	if w.crashed(&w.player, &w.agent) {
		w.state = Lost
		w.events.Emit(Event{Type: EventCrash, Tick: w.tick, Rider: RiderPlayer, Pos: w.player.Pos})
	}
	if w.crashed(&w.agent, &w.player) {
		if w.state != Lost {
			w.state = Won
		}
		w.events.Emit(Event{Type: EventCrash, Tick: w.tick, Rider: RiderAgent, Pos: w.agent.Pos})
	}
	if w.state.Terminal() {
		w.events.Emit(Event{Type: EventRoundOver, Tick: w.tick, State: w.state})
	}
}

func (w *World) crashed(v, other *Vehicle) bool {
	return IsColliding(w.cfg, v.Pos, &v.Trail, true) || IsColliding(w.cfg, v.Pos, &other.Trail, false)
}

func (w *World) Player() *Vehicle { return &w.player }
func (w *World) Agent() *Vehicle { return &w.agent }
func (w *World) State() RoundState { return w.state }

// Tick is the number of steps applied since the last reset.
func (w *World) Tick() int { return w.tick }
func (w *World) Config() Config { return w.cfg }
func (w *World) Events() *EventBus { return w.events }
