package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"lightcycle/internal/arena"
	"lightcycle/internal/scene"
)

// Cells are roughly twice as tall as wide, so the square arena spans
// two columns per row.
const cellAspect = 2

const (
	trailRune  = '█'
	statusHint = "arrows/WASD steer  R reset  Esc quit"
)

var headRunes = [4]rune{'▲', '▶', '▼', '◀'}

// layout is the inner playfield rectangle in screen cells; the border sits
// one cell outside it.
type layout struct {
	x0, y0     int
	cols, rows int
}

// fieldLayout fits the largest aspect-corrected square inside a w x h screen,
// leaving the bottom row for the status line.
func fieldLayout(w, h int) layout {
	avail := h - 1
	side := avail - 2
	if byCols := (w - 2) / cellAspect; byCols < side {
		side = byCols
	}
	if side < 1 {
		side = 1
	}
	l := layout{rows: side, cols: side * cellAspect}
	l.x0 = (w - l.cols) / 2
	l.y0 = (avail - l.rows) / 2
	return l
}

// project maps an arena point to a playfield cell. North (-Z) is up.
func (l layout) project(cfg arena.Config, p arena.Point) (x, y int) {
	span := 2 * cfg.ArenaSize
	cx := int((p.X + cfg.ArenaSize) / span * float64(l.cols))
	cy := int((p.Z + cfg.ArenaSize) / span * float64(l.rows))
	return l.x0 + clampInt(cx, 0, l.cols-1), l.y0 + clampInt(cy, 0, l.rows-1)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func color(c scene.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	w, _ := s.Size()
	for _, r := range text {
		if x >= w {
			return
		}
		if x >= 0 {
			s.SetContent(x, y, r, nil, style)
		}
		x++
	}
}

// draw renders one frame of the world onto the screen.
func draw(s tcell.Screen, w *arena.World, seed uint64) {
	s.Clear()
	sw, sh := s.Size()
	l := fieldLayout(sw, sh)
	cfg := w.Config()

	bg := tcell.StyleDefault.Background(color(scene.Palette.Background))
	border := bg.Foreground(color(scene.Palette.Grid))
	for x := l.x0 - 1; x <= l.x0+l.cols; x++ {
		s.SetContent(x, l.y0-1, '─', nil, border)
		s.SetContent(x, l.y0+l.rows, '─', nil, border)
	}
	for y := l.y0 - 1; y <= l.y0+l.rows; y++ {
		s.SetContent(l.x0-1, y, '│', nil, border)
		s.SetContent(l.x0+l.cols, y, '│', nil, border)
	}
	s.SetContent(l.x0-1, l.y0-1, '┌', nil, border)
	s.SetContent(l.x0+l.cols, l.y0-1, '┐', nil, border)
	s.SetContent(l.x0-1, l.y0+l.rows, '└', nil, border)
	s.SetContent(l.x0+l.cols, l.y0+l.rows, '┘', nil, border)
	for y := l.y0; y < l.y0+l.rows; y++ {
		for x := l.x0; x < l.x0+l.cols; x++ {
			s.SetContent(x, y, ' ', nil, bg)
		}
	}

	riders := []struct {
		v *arena.Vehicle
		c scene.RGB
	}{
		{w.Player(), scene.Palette.Player},
		{w.Agent(), scene.Palette.Agent},
	}
	for _, r := range riders {
		style := bg.Foreground(color(r.c.Scale(0.75)))
		for _, p := range r.v.Trail.Points() {
			x, y := l.project(cfg, p)
			s.SetContent(x, y, trailRune, nil, style)
		}
	}
	for _, r := range riders {
		x, y := l.project(cfg, r.v.Pos)
		s.SetContent(x, y, headRunes[r.v.Heading], nil, bg.Foreground(color(r.c)).Bold(true))
	}

	status := fmt.Sprintf("T=%04d %-7s seed=%d  %s", w.Tick(), w.State(), seed, statusHint)
	drawText(s, 0, sh-1, status, tcell.StyleDefault.Foreground(color(scene.Palette.Text.Scale(0.6))))

	lines := scene.Overlay(w.State())
	y := sh/2 - len(lines)/2
	for _, ln := range lines {
		drawText(s, (sw-len(ln.Text))/2, y, ln.Text, tcell.StyleDefault.Foreground(color(ln.Color)).Bold(true))
		y++
	}

	s.Show()
}
