package arena

// Key is a discrete command from an input collaborator.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyRight
	KeyDown
	KeyLeft
	KeyReset
)

var keyHeadings = map[Key]Heading{
	KeyUp:    North,
	KeyRight: East,
	KeyDown:  South,
	KeyLeft:  West,
}

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyRight:
		return "right"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyReset:
		return "reset"
	}
	return "none"
}

// HandleKey applies a player command. Direction keys that would reverse the
// player in place are ignored. Reset is accepted in every round state.
func (w *World) HandleKey(k Key) {
	if k == KeyReset {
		w.Reset()
		return
	}
	h, ok := keyHeadings[k]
	if !ok {
		return
	}
	if h == w.player.Heading.Reverse() {
		return
	}
	w.player.Heading = h
}
