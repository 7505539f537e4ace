package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"lightcycle/internal/arena"
)

// keyBindings maps keyboard keys to arena commands. WASD and arrows both steer.
var keyBindings = []struct {
	key glfw.Key
	cmd arena.Key
}{
	{glfw.KeyW, arena.KeyUp},
	{glfw.KeyUp, arena.KeyUp},
	{glfw.KeyD, arena.KeyRight},
	{glfw.KeyRight, arena.KeyRight},
	{glfw.KeyS, arena.KeyDown},
	{glfw.KeyDown, arena.KeyDown},
	{glfw.KeyA, arena.KeyLeft},
	{glfw.KeyLeft, arena.KeyLeft},
	{glfw.KeyR, arena.KeyReset},
}

type Input struct {
	prevKeys map[glfw.Key]bool
	pending  []arena.Key
}

func NewInput() *Input {
	return &Input{
		prevKeys: make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// Commands returns the arena commands for keys pressed since the last call.
// The returned slice is reused on the next call.
func (in *Input) Commands(window *glfw.Window) []arena.Key {
	in.pending = in.pending[:0]
	for _, b := range keyBindings {
		if in.JustPressed(window, b.key) {
			in.pending = append(in.pending, b.cmd)
		}
	}
	return in.pending
}
