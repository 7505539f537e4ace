package arena

import "testing"

func TestReactive_KeepsHeadingWhenClear(t *testing.T) {
	cfg := DefaultConfig()
	ai := NewReactive(fixedSource(0))
	v := &Vehicle{Pos: Point{X: 0, Z: 0}, Heading: East}

	if got := ai.DecideHeading(cfg, v, &Trail{}); got != East {
		t.Fatalf("heading = %v, want east", got)
	}
}

func TestReactive_TurnsOnHazard(t *testing.T) {
	cfg := DefaultConfig()

	ownWall := &Trail{}
	ownWall.Append(Point{X: 0, Z: -1.25})
	for i := 0; i < cfg.Sensitivity+4; i++ {
		ownWall.Append(Point{X: 20 + float64(i), Z: 20})
	}

	tests := []struct {
		name     string
		v        Vehicle
		opponent *Trail
	}{
		{
			name:     "boundary ahead",
			v:        Vehicle{Pos: Point{X: 0, Z: -49}, Heading: North},
			opponent: &Trail{},
		},
		{
			name:     "opponent wall ahead",
			v:        Vehicle{Pos: Point{X: 0, Z: 0}, Heading: East},
			opponent: lineTrail(cfg.Sensitivity, 1.25, 0, 0.25),
		},
		{
			name:     "own old wall ahead",
			v:        Vehicle{Pos: Point{X: 0, Z: 0}, Heading: North, Trail: *ownWall},
			opponent: &Trail{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cw := NewReactive(fixedSource(0)).DecideHeading(cfg, &tt.v, tt.opponent)
			if cw != tt.v.Heading.Clockwise() {
				t.Errorf("draw 0 turned %v, want %v", cw, tt.v.Heading.Clockwise())
			}
			ccw := NewReactive(fixedSource(1)).DecideHeading(cfg, &tt.v, tt.opponent)
			if ccw != tt.v.Heading.CounterClockwise() {
				t.Errorf("draw 1 turned %v, want %v", ccw, tt.v.Heading.CounterClockwise())
			}
		})
	}
}

func TestReactive_IgnoresWallsInsideGrace(t *testing.T) {
	cfg := DefaultConfig()
	// A short opponent trail right in front is still invisible to the agent.
	opp := lineTrail(cfg.Sensitivity-1, 1.25, 0, 0.25)
	v := &Vehicle{Pos: Point{X: 0, Z: 0}, Heading: East}

	if got := NewReactive(fixedSource(0)).DecideHeading(cfg, v, opp); got != East {
		t.Fatalf("heading = %v, want east", got)
	}
}

func TestReactive_NeverReversesOrContinues(t *testing.T) {
	cfg := DefaultConfig()
	ai := NewReactive(NewRand(99))
	cw, ccw := 0, 0
	for _, h := range []Heading{North, East, South, West} {
		v := &Vehicle{Heading: h}
		// Park the vehicle one step short of the wall it faces.
		dx, dz := h.Delta(cfg.ArenaSize - 0.5)
		v.Pos = Point{X: dx, Z: dz}
		for i := 0; i < 200; i++ {
			switch got := ai.DecideHeading(cfg, v, &Trail{}); got {
			case h.Clockwise():
				cw++
			case h.CounterClockwise():
				ccw++
			default:
				t.Fatalf("facing %v the agent chose %v", h, got)
			}
		}
	}
	if cw == 0 || ccw == 0 {
		t.Fatalf("turns were one-sided: cw=%d ccw=%d", cw, ccw)
	}
}

func TestStraight_NeverTurns(t *testing.T) {
	cfg := DefaultConfig()
	v := &Vehicle{Pos: Point{X: 0, Z: -49.9}, Heading: North}
	if got := (Straight{}).DecideHeading(cfg, v, &Trail{}); got != North {
		t.Fatalf("heading = %v, want north", got)
	}
}
