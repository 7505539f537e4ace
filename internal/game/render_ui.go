package game

import (
	"fmt"

	"lightcycle/internal/arena"
	"lightcycle/internal/scene"
)

const (
	hudScale      = float32(1.0)
	overlayGap    = 18
	hudMarginPx   = 10
	hudHintString = "WASD/Arrows steer   R reset   Esc quit"
)

// RenderHUD draws the corner status line and the centred round-over overlay.
func RenderHUD(r *Renderer, w *arena.World, fbW, fbH int) {
	dim := scene.Palette.Text.Scale(0.6)
	r.DrawString(fmt.Sprintf("T=%d", w.Tick()), hudMarginPx, hudMarginPx, hudScale, dim)
	r.DrawString(hudHintString, hudMarginPx, fbH-hudMarginPx-TextHeight(hudScale), hudScale, dim)

	lines := scene.Overlay(w.State())
	if len(lines) > 0 {
		total := 0
		for _, ln := range lines {
			total += TextHeight(ln.Scale) + overlayGap
		}
		y := fbH/2 - total/2
		for _, ln := range lines {
			r.DrawString(ln.Text, fbW/2-TextWidth(ln.Text, ln.Scale)/2, y, ln.Scale, ln.Color)
			y += TextHeight(ln.Scale) + overlayGap
		}
	}

	r.FlushText(fbW, fbH)
}
