package sim

import (
	"fmt"
	"strings"

	"lightcycle/internal/arena"
)

// Entry is one recorded event during a headless round.
type Entry struct {
	Tick     int
	Rider    string // "player", "agent", or "--" for round-wide events
	Category string // turn, crash, round
	Value    string
}

// String formats the entry as a fixed-width line.
//
//	[T=0078] agent  turn   east
func (e Entry) String() string {
	return fmt.Sprintf("[T=%04d] %-6s %-6s %s", e.Tick, e.Rider, e.Category, e.Value)
}

// Log collects arena events for one round.
type Log struct {
	entries []Entry
}

// Attach subscribes the log to every event the world emits.
func (l *Log) Attach(bus *arena.EventBus) {
	bus.SubscribeAll(l.record)
}

func (l *Log) record(e arena.Event) {
	switch e.Type {
	case arena.EventAgentTurn:
		l.add(e.Tick, e.Rider.String(), "turn", e.Heading.String())
	case arena.EventCrash:
		l.add(e.Tick, e.Rider.String(), "crash", e.Pos.String())
	case arena.EventRoundOver:
		l.add(e.Tick, "--", "round", e.State.String())
	case arena.EventReset:
		l.add(0, "--", "round", "reset")
	}
}

func (l *Log) add(tick int, rider, category, value string) {
	l.entries = append(l.entries, Entry{Tick: tick, Rider: rider, Category: category, Value: value})
}

func (l *Log) Entries() []Entry { return l.entries }

// Filter returns entries of the given category.
func (l *Log) Filter(category string) []Entry {
	var out []Entry
	for _, e := range l.entries {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

func (l *Log) String() string {
	var b strings.Builder
	for _, e := range l.entries {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}
