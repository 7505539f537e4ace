package scene

import "lightcycle/internal/arena"

// Line is one row of overlay text.
type Line struct {
	Text  string
	Color RGB
	Scale float32
}

// Overlay returns the centred message for the round state, or nil while playing.
func Overlay(s arena.RoundState) []Line {
	switch s {
	case arena.Lost:
		return []Line{
			{Text: "DE-REZZED: AI WINS", Color: Palette.Lose, Scale: 2},
			{Text: "Press 'R' to Respawn", Color: Palette.Lose, Scale: 1.25},
		}
	case arena.Won:
		return []Line{
			{Text: "SYSTEM CLEARED: YOU WIN!", Color: Palette.Win, Scale: 2},
			{Text: "Press 'R' to Restart", Color: Palette.Win, Scale: 1.25},
		}
	}
	return nil
}
