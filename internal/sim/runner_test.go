package sim

import (
	"context"
	"errors"
	"strings"
	"testing"

	"lightcycle/internal/arena"
	"lightcycle/internal/logging"
)

func runBatch(t *testing.T, opts Options) []Result {
	t.Helper()
	results, err := NewRunner(logging.Discard()).Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != opts.Runs {
		t.Fatalf("got %d results, want %d", len(results), opts.Runs)
	}
	return results
}

func TestRun_StraightPlayerLosesAfterDodge(t *testing.T) {
	opts := DefaultOptions()
	opts.Policy = PolicyStraight
	opts.Runs = 4

	for _, res := range runBatch(t, opts) {
		if res.State != arena.Lost || res.Ticks != 81 {
			t.Errorf("run %d (seed %d): %v at tick %d, want lost at 81", res.Run, res.Seed, res.State, res.Ticks)
		}
		turns := res.Log.Filter("turn")
		if len(turns) == 0 || turns[0].Tick != 78 || turns[0].Rider != "agent" {
			t.Errorf("run %d: first agent turn %v, want tick 78", res.Run, turns)
		}
		if res.AgentTurns != len(turns) {
			t.Errorf("run %d: AgentTurns = %d, log has %d", res.Run, res.AgentTurns, len(turns))
		}
		over := res.Log.Filter("round")
		if len(over) != 1 || over[0].Value != "lost" {
			t.Errorf("run %d: round entries %v", res.Run, over)
		}
	}
}

func TestRun_SeedsAdvance(t *testing.T) {
	opts := DefaultOptions()
	opts.Runs = 3
	opts.SeedBase = 10
	opts.SeedStep = 5

	for i, res := range runBatch(t, opts) {
		if want := uint64(10 + 5*i); res.Seed != want || res.Run != i+1 {
			t.Errorf("result %d: run %d seed %d, want run %d seed %d", i, res.Run, res.Seed, i+1, want)
		}
	}
}

func TestRun_Deterministic(t *testing.T) {
	opts := DefaultOptions()
	opts.Runs = 3

	a := runBatch(t, opts)
	b := runBatch(t, opts)
	for i := range a {
		if a[i].State != b[i].State || a[i].Ticks != b[i].Ticks || a[i].Log.String() != b[i].Log.String() {
			t.Fatalf("run %d differs between batches", i+1)
		}
	}
}

func TestRun_TickCap(t *testing.T) {
	opts := DefaultOptions()
	opts.Runs = 1
	opts.Ticks = 10

	res := runBatch(t, opts)[0]
	if res.State != arena.Playing || res.Ticks != 10 {
		t.Fatalf("got %v at %d, want unfinished at 10", res.State, res.Ticks)
	}
}

func TestRun_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Options)
	}{
		{"no runs", func(o *Options) { o.Runs = 0 }},
		{"no ticks", func(o *Options) { o.Ticks = -1 }},
		{"bad policy", func(o *Options) { o.Policy = "psychic" }},
		{"bad config", func(o *Options) { o.Config.Speed = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mod(&opts)
			if _, err := NewRunner(logging.Discard()).Run(context.Background(), opts); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := NewRunner(logging.Discard()).Run(ctx, DefaultOptions())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if len(results) != 0 {
		t.Fatalf("got %d results after cancel", len(results))
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]Result{
		{State: arena.Won, Ticks: 100},
		{State: arena.Lost, Ticks: 50},
		{State: arena.Lost, Ticks: 30},
		{State: arena.Playing, Ticks: 20},
	})
	want := Summary{Runs: 4, Won: 1, Lost: 2, Unfinished: 1, MeanTicks: 50}
	if s != want {
		t.Fatalf("Summarize = %+v, want %+v", s, want)
	}
	if (Summarize(nil) != Summary{}) {
		t.Fatal("empty batch should summarize to zero")
	}
}

func TestLog_Format(t *testing.T) {
	w, err := arena.NewWorld(arena.DefaultConfig(), arena.Straight{})
	if err != nil {
		t.Fatal(err)
	}
	l := &Log{}
	l.Attach(w.Events())
	for w.State() == arena.Playing {
		w.Step()
	}
	w.Reset()

	out := l.String()
	for _, want := range []string{
		"[T=0080] player crash  (0.00,0.00)",
		"[T=0080] --     round  lost",
		"[T=0000] --     round  reset",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}
