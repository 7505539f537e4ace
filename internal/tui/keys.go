package tui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"lightcycle/internal/arena"
)

// translateKey maps a terminal key press to an arena command. quit reports
// Escape, Ctrl-C or q.
func translateKey(ev *tcell.EventKey) (cmd arena.Key, quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return arena.KeyNone, true
	case tcell.KeyUp:
		return arena.KeyUp, false
	case tcell.KeyRight:
		return arena.KeyRight, false
	case tcell.KeyDown:
		return arena.KeyDown, false
	case tcell.KeyLeft:
		return arena.KeyLeft, false
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'w':
			return arena.KeyUp, false
		case 'd':
			return arena.KeyRight, false
		case 's':
			return arena.KeyDown, false
		case 'a':
			return arena.KeyLeft, false
		case 'r':
			return arena.KeyReset, false
		case 'q':
			return arena.KeyNone, true
		}
	}
	return arena.KeyNone, false
}
