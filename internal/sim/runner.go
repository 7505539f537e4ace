// Package sim plays light-cycle rounds without a screen, for batch reports
// and regression checks of the agent.
package sim

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"lightcycle/internal/arena"
)

// Options configures a batch of headless rounds.
type Options struct {
	Runs     int
	Ticks    int // tick cap per round
	SeedBase uint64
	SeedStep uint64
	Policy   string
	Config   arena.Config
}

func DefaultOptions() Options {
	return Options{
		Runs:     5,
		Ticks:    3600,
		SeedBase: 42,
		SeedStep: 1,
		Policy:   PolicyReactive,
		Config:   arena.DefaultConfig(),
	}
}

// Result is the outcome of one round.
type Result struct {
	Run        int
	Seed       uint64
	State      arena.RoundState // Playing when the tick cap was hit
	Ticks      int
	AgentTurns int
	Log        *Log
}

// Summary aggregates a batch.
type Summary struct {
	Runs       int
	Won        int
	Lost       int
	Unfinished int
	MeanTicks  float64
}

// Runner plays batches of rounds.
type Runner struct {
	logger *log.Logger
}

func NewRunner(logger *log.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run plays opts.Runs rounds, stopping early if ctx is cancelled.
func (r *Runner) Run(ctx context.Context, opts Options) ([]Result, error) {
	if opts.Runs <= 0 {
		return nil, fmt.Errorf("runs must be > 0, got %d", opts.Runs)
	}
	if opts.Ticks <= 0 {
		return nil, fmt.Errorf("ticks must be > 0, got %d", opts.Ticks)
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	if _, err := NewPolicy(opts.Policy, arena.NewRand(0)); err != nil {
		return nil, err
	}

	results := make([]Result, 0, opts.Runs)
	for i := 0; i < opts.Runs; i++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		seed := opts.SeedBase + uint64(i)*opts.SeedStep
		res, err := r.play(i+1, seed, opts)
		if err != nil {
			return results, err
		}
		r.logger.Debug("round finished", "run", res.Run, "seed", res.Seed, "state", res.State, "ticks", res.Ticks)
		results = append(results, res)
	}
	return results, nil
}

func (r *Runner) play(run int, seed uint64, opts Options) (Result, error) {
	w, err := arena.NewWorld(opts.Config, arena.NewReactive(arena.NewRand(seed)))
	if err != nil {
		return Result{}, err
	}
	policy, err := NewPolicy(opts.Policy, arena.NewRand(seed^0x9E3779B185EBCA87))
	if err != nil {
		return Result{}, err
	}
	l := &Log{}
	l.Attach(w.Events())

	for w.State() == arena.Playing && w.Tick() < opts.Ticks {
		w.HandleKey(policy.Steer(w))
		w.Step()
	}
	return Result{
		Run:        run,
		Seed:       seed,
		State:      w.State(),
		Ticks:      w.Tick(),
		AgentTurns: len(l.Filter("turn")),
		Log:        l,
	}, nil
}

// Summarize aggregates results.
func Summarize(results []Result) Summary {
	s := Summary{Runs: len(results)}
	total := 0
	for _, res := range results {
		switch res.State {
		case arena.Won:
			s.Won++
		case arena.Lost:
			s.Lost++
		default:
			s.Unfinished++
		}
		total += res.Ticks
	}
	if s.Runs > 0 {
		s.MeanTicks = float64(total) / float64(s.Runs)
	}
	return s
}
