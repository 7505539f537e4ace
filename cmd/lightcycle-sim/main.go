// Command lightcycle-sim plays seeded light-cycle rounds headlessly and prints
// a per-run and aggregate report.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"lightcycle/internal/arena"
	"lightcycle/internal/logging"
	"lightcycle/internal/sim"
)

func main() {
	if err := newCommand(os.Stdout).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newCommand(out io.Writer) *cli.Command {
	def := sim.DefaultOptions()
	return &cli.Command{
		Name:  "lightcycle-sim",
		Usage: "run headless light-cycle rounds against the reactive agent",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "runs", Value: def.Runs, Usage: "number of rounds"},
			&cli.IntFlag{Name: "ticks", Value: def.Ticks, Usage: "tick cap per round"},
			&cli.Uint64Flag{Name: "seed-base", Value: def.SeedBase, Usage: "agent seed for run 1"},
			&cli.Uint64Flag{Name: "seed-step", Value: def.SeedStep, Usage: "seed increment between runs"},
			&cli.StringFlag{Name: "policy", Value: def.Policy, Usage: "player policy: straight or reactive"},
			&cli.BoolFlag{Name: "verbose", Usage: "print every round's event log"},
			&cli.StringFlag{Name: "log-level", Value: "warn", Usage: "log level on stderr"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger, err := logging.New(os.Stderr, cmd.String("log-level"))
			if err != nil {
				return err
			}
			opts := sim.Options{
				Runs:     cmd.Int("runs"),
				Ticks:    cmd.Int("ticks"),
				SeedBase: cmd.Uint64("seed-base"),
				SeedStep: cmd.Uint64("seed-step"),
				Policy:   cmd.String("policy"),
				Config:   arena.DefaultConfig(),
			}
			results, err := sim.NewRunner(logger).Run(ctx, opts)
			if err != nil {
				return err
			}
			report(out, opts, results, cmd.Bool("verbose"))
			return nil
		},
	}
}

func report(out io.Writer, opts sim.Options, results []sim.Result, verbose bool) {
	fmt.Fprintf(out, "=== Light-cycle Headless Report ===\n")
	fmt.Fprintf(out, "policy=%s runs=%d ticks=%d seed_base=%d seed_step=%d\n\n",
		opts.Policy, opts.Runs, opts.Ticks, opts.SeedBase, opts.SeedStep)

	for _, res := range results {
		fmt.Fprintf(out, "run %2d seed=%-6d outcome=%-8s ticks=%-5d agent_turns=%d\n",
			res.Run, res.Seed, outcome(res.State), res.Ticks, res.AgentTurns)
		if verbose {
			fmt.Fprint(out, res.Log.String())
		}
	}

	s := sim.Summarize(results)
	fmt.Fprintf(out, "\n--- aggregate ---\n")
	fmt.Fprintf(out, "won=%d lost=%d unfinished=%d mean_ticks=%.1f\n", s.Won, s.Lost, s.Unfinished, s.MeanTicks)
}

func outcome(s arena.RoundState) string {
	if s == arena.Playing {
		return "capped"
	}
	return s.String()
}
