package arena

// RoundState tracks the outcome of the current round.
type RoundState int

const (
	Playing RoundState = iota
	Won                // agent crashed, player still riding
	Lost               // player crashed (including mutual crashes)
)

func (s RoundState) Terminal() bool { return s == Won || s == Lost }

func (s RoundState) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "unknown"
}
