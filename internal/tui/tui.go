// Package tui runs the light-cycle round in a terminal: a tcell top-down view
// of the arena ticking at the world's fixed interval.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"lightcycle/internal/arena"
	"lightcycle/internal/settings"
)

// Game owns the world on the loop goroutine and mirrors it onto the screen.
type Game struct {
	screen tcell.Screen
	world  *arena.World
	sound  *Sound
	logger *log.Logger
	seed   uint64
}

// NewGame binds a world to a screen and hooks sound cues and log lines to
// its events.
func NewGame(screen tcell.Screen, world *arena.World, sound *Sound, logger *log.Logger, seed uint64) *Game {
	g := &Game{screen: screen, world: world, sound: sound, logger: logger, seed: seed}
	world.Events().SubscribeAll(g.onEvent)
	return g
}

func (g *Game) onEvent(e arena.Event) {
	if t, ok := cueFor(e); ok {
		g.sound.play(t)
	}
	switch e.Type {
	case arena.EventRoundOver:
		g.logger.Info("round over", "state", e.State, "tick", e.Tick)
	case arena.EventReset:
		g.logger.Info("round reset")
	case arena.EventCrash:
		g.logger.Debug("crash", "rider", e.Rider, "tick", e.Tick, "pos", e.Pos)
	case arena.EventAgentTurn:
		g.logger.Debug("agent turn", "heading", e.Heading, "tick", e.Tick)
	}
}

// HandleEvent applies one terminal event. It returns false when the player quits.
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		cmd, quit := translateKey(ev)
		if quit {
			return false
		}
		if cmd != arena.KeyNone {
			g.world.HandleKey(cmd)
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

// Draw renders the current frame.
func (g *Game) Draw() { draw(g.screen, g.world, g.seed) }

// Loop steps the world once per tick interval and applies input between
// ticks until the player quits or ctx ends.
func (g *Game) Loop(ctx context.Context) error {
	ticker := time.NewTicker(g.world.Config().TickInterval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	g.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !g.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			g.world.Step()
			g.Draw()
		}
	}
}

// Run opens the terminal, plays until quit and restores the terminal.
func Run(ctx context.Context, s settings.Settings, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcell init: %w", err)
	}
	defer screen.Fini()

	var sound *Sound
	if !s.Mute {
		sound, err = NewSound()
		if err != nil {
			logger.Warn("audio init failed, continuing without sound", "err", err)
			sound = nil
		}
	}
	defer sound.Close()

	world, err := arena.NewWorld(arena.DefaultConfig(), arena.NewReactive(arena.NewRand(s.Seed)))
	if err != nil {
		return err
	}
	logger.Info("round start", "seed", s.Seed, "frontend", settings.FrontendTUI)

	return NewGame(screen, world, sound, logger, s.Seed).Loop(ctx)
}
