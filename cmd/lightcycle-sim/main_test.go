package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestCommand_Report(t *testing.T) {
	var out bytes.Buffer
	args := []string{"lightcycle-sim", "--runs", "2", "--policy", "straight", "--seed-base", "7", "--verbose"}
	if err := newCommand(&out).Run(context.Background(), args); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"policy=straight runs=2",
		"seed_base=7",
		"run  1 seed=7",
		"run  2 seed=8",
		"outcome=lost",
		"ticks=81",
		"won=0 lost=2 unfinished=0 mean_ticks=81.0",
		"agent  turn",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q:\n%s", want, got)
		}
	}
}

func TestCommand_BadPolicy(t *testing.T) {
	var out bytes.Buffer
	err := newCommand(&out).Run(context.Background(), []string{"lightcycle-sim", "--policy", "psychic"})
	if err == nil {
		t.Fatal("expected error for unknown policy")
	}
}
