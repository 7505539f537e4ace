package tui

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"lightcycle/internal/arena"
)

const sampleRate = beep.SampleRate(44100)

// tone is a single sine cue.
type tone struct {
	freq float64
	dur  time.Duration
}

// cueFor returns the tone for an event, or false when the event is silent.
func cueFor(e arena.Event) (tone, bool) {
	switch e.Type {
	case arena.EventCrash:
		return tone{freq: 110, dur: 180 * time.Millisecond}, true
	case arena.EventRoundOver:
		if e.State == arena.Won {
			return tone{freq: 880, dur: 250 * time.Millisecond}, true
		}
		return tone{freq: 196, dur: 400 * time.Millisecond}, true
	case arena.EventReset:
		return tone{freq: 660, dur: 80 * time.Millisecond}, true
	}
	return tone{}, false
}

// Sound plays short sine cues through the speaker. A nil Sound is silent.
type Sound struct{}

// NewSound initializes the speaker.
func NewSound() (*Sound, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Sound{}, nil
}

func (s *Sound) play(t tone) {
	if s == nil {
		return
	}
	sine, err := generators.SineTone(sampleRate, t.freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(t.dur), sine))
}

// Close releases the speaker.
func (s *Sound) Close() {
	if s == nil {
		return
	}
	speaker.Close()
}
