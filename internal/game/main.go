package game

import (
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"lightcycle/internal/arena"
	"lightcycle/internal/scene"
	"lightcycle/internal/settings"
)

// RunDesktop opens the 3D window and runs one continuous round until the
// window closes or Escape is pressed.
func RunDesktop(s settings.Settings, logger *log.Logger) error {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	logger.Debug("gl ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	var audio *Audio
	if !s.Mute {
		audio, err = NewAudio()
		if err != nil {
			logger.Warn("audio init failed, continuing without sound", "err", err)
			audio = nil
		}
	}

	world, err := arena.NewWorld(arena.DefaultConfig(), arena.NewReactive(arena.NewRand(s.Seed)))
	if err != nil {
		return err
	}
	logger.Info("round start", "seed", s.Seed, "frontend", settings.FrontendGL)

	// GL state.
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Disable(gl.CULL_FACE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		return fmt.Errorf("font: %w", err)
	}

	var cam scene.Camera
	cam.Follow(world.Player().Pos)
	sparks := scene.NewParticleSystem(scene.MaxParticles, s.Seed^0xBEAD)
	subscribeFeedback(world.Events(), &cam, sparks, audio, logger)

	input := NewInput()
	clock := arena.NewClock(world.Config().TickInterval)
	var frame scene.Frame

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		for _, k := range input.Commands(window) {
			world.HandleKey(k)
			if k == arena.KeyReset {
				clock.Reset()
			}
		}

		for n := clock.Advance(time.Duration(dt * float64(time.Second))); n > 0; n-- {
			world.Step()
		}

		cam.Follow(world.Player().Pos)
		cam.UpdateShake(dt, s.Seed^math.Float64bits(now))
		sparks.Update(dt)

		frame.Build(world)
		frame.BuildSparks(sparks)
		rend.BeginFrame(fbW, fbH)
		rend.DrawScene(&frame, cam.ViewProjection(fbW, fbH))
		RenderHUD(rend, world, fbW, fbH)

		window.SwapBuffers()
	}
	logger.Info("window closed", "tick", world.Tick(), "state", world.State())
	return nil
}
