package game

import (
	"github.com/charmbracelet/log"

	"lightcycle/internal/arena"
	"lightcycle/internal/scene"
)

// subscribeFeedback hooks camera shake, crash sparks, sound and log lines to
// world events.
func subscribeFeedback(bus *arena.EventBus, cam *scene.Camera, sparks *scene.ParticleSystem, audio *Audio, logger *log.Logger) {
	bus.Subscribe(arena.EventCrash, func(e arena.Event) {
		k, col := 1.0, scene.Palette.Player
		if e.Rider == arena.RiderAgent {
			k, col = 0.5, scene.Palette.Agent
		}
		cam.AddShake(CrashShakeIntensity*k, CrashShakeDuration)
		sparks.SpawnDerez(e.Pos, col)
		audio.Play(SoundCrash)
		logger.Debug("crash", "rider", e.Rider, "tick", e.Tick, "pos", e.Pos)
	})
	bus.Subscribe(arena.EventRoundOver, func(e arena.Event) {
		if e.State == arena.Won {
			audio.Play(SoundWin)
		} else {
			audio.Play(SoundLose)
		}
		logger.Info("round over", "state", e.State, "tick", e.Tick)
	})
	bus.Subscribe(arena.EventReset, func(e arena.Event) {
		sparks.Clear()
		audio.Play(SoundRespawn)
		logger.Info("round reset")
	})
	bus.Subscribe(arena.EventAgentTurn, func(e arena.Event) {
		audio.Play(SoundTurn)
		logger.Debug("agent turn", "heading", e.Heading, "tick", e.Tick, "pos", e.Pos)
	})
}
