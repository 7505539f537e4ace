package arena

import "testing"

func trailOf(pts ...Point) *Trail {
	t := &Trail{}
	for _, p := range pts {
		t.Append(p)
	}
	return t
}

// lineTrail lays n points along +X starting at (x0, z) with the given spacing.
func lineTrail(n int, x0, z, spacing float64) *Trail {
	t := &Trail{}
	for i := 0; i < n; i++ {
		t.Append(Point{X: x0 + float64(i)*spacing, Z: z})
	}
	return t
}

func TestIsColliding_Boundary(t *testing.T) {
	cfg := DefaultConfig()
	full := lineTrail(40, -10, 0, 0.25)

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"centre", Point{0, 30}, false},
		{"just inside", Point{49.99, -49.99}, false},
		{"on +x edge", Point{50, 0}, true},
		{"on -z edge", Point{0, -50}, true},
		{"beyond -x", Point{-60, 3}, true},
		{"beyond corner", Point{51, 51}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, trail := range []*Trail{{}, full} {
				for _, self := range []bool{true, false} {
					if got := IsColliding(cfg, tt.p, trail, self); got != tt.want {
						t.Errorf("IsColliding(%v, len=%d, self=%v) = %v, want %v", tt.p, trail.Len(), self, got, tt.want)
					}
				}
			}
		})
	}
}

func TestIsColliding_GracePeriod(t *testing.T) {
	cfg := DefaultConfig()
	trail := lineTrail(cfg.Sensitivity-1, 0, 0, 0.25)

	for i := 0; i < trail.Len(); i++ {
		p := trail.At(i)
		if IsColliding(cfg, p, trail, false) {
			t.Fatalf("point %d %v collided with a trail shorter than the warm-up", i, p)
		}
		if IsColliding(cfg, p, trail, true) {
			t.Fatalf("point %d %v self-collided with a trail shorter than the warm-up", i, p)
		}
	}

	trail.Append(Point{X: 10, Z: 10})
	if !IsColliding(cfg, trail.At(0), trail, false) {
		t.Fatal("expected contact once the trail reaches the warm-up length")
	}
}

func TestIsColliding_SelfExclusion(t *testing.T) {
	cfg := DefaultConfig()
	trail := lineTrail(cfg.Sensitivity+10, -20, 5, 0.25)
	last, _ := trail.Last()

	if IsColliding(cfg, last, trail, true) {
		t.Error("newest self point must be excluded")
	}
	if !IsColliding(cfg, last, trail, false) {
		t.Error("newest point must count against a foreign trail")
	}
	if !IsColliding(cfg, trail.At(0), trail, true) {
		t.Error("oldest self point must register")
	}

	// Every point inside the exclusion window is ignored, the one before it is not.
	window := trail.Len() - cfg.Sensitivity
	for i := window; i < trail.Len(); i++ {
		p := trail.At(i)
		// Keep clear of older points that sit within the contact radius.
		if p.Dist(trail.At(window-1)) < cfg.ContactRadius {
			continue
		}
		if IsColliding(cfg, p, trail, true) {
			t.Errorf("point %d inside the exclusion window registered", i)
		}
	}
}

func TestIsColliding_ExactSensitivityLength(t *testing.T) {
	cfg := DefaultConfig()
	trail := lineTrail(cfg.Sensitivity, 0, 0, 1)

	// With L == Sensitivity the self scan covers nothing.
	for i := 0; i < trail.Len(); i++ {
		if IsColliding(cfg, trail.At(i), trail, true) {
			t.Fatalf("self scan should be empty, point %d registered", i)
		}
	}
	if !IsColliding(cfg, trail.At(3), trail, false) {
		t.Fatal("foreign scan should cover the whole trail")
	}
}

func TestIsColliding_ContactRadius(t *testing.T) {
	cfg := DefaultConfig()
	trail := lineTrail(cfg.Sensitivity, 0, 0, 1)

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"coincident", Point{0, 0}, true},
		{"inside radius", Point{0, 0.59}, true},
		{"just outside radius", Point{0, 0.61}, false},
		{"outside radius", Point{-0.7, 0}, false},
		{"diagonal inside", Point{0.4, 0.4}, true},
		{"diagonal outside", Point{0.5, 0.5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsColliding(cfg, tt.p, trail, false); got != tt.want {
				t.Errorf("IsColliding(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestHeading_Turns(t *testing.T) {
	tests := []struct {
		h            Heading
		cw, ccw, rev Heading
		dx, dz       float64
	}{
		{North, East, West, South, 0, -1},
		{East, South, North, West, 1, 0},
		{South, West, East, North, 0, 1},
		{West, North, South, East, -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.h.String(), func(t *testing.T) {
			if got := tt.h.Clockwise(); got != tt.cw {
				t.Errorf("Clockwise = %v, want %v", got, tt.cw)
			}
			if got := tt.h.CounterClockwise(); got != tt.ccw {
				t.Errorf("CounterClockwise = %v, want %v", got, tt.ccw)
			}
			if got := tt.h.Reverse(); got != tt.rev {
				t.Errorf("Reverse = %v, want %v", got, tt.rev)
			}
			dx, dz := tt.h.Delta(1)
			if dx != tt.dx || dz != tt.dz {
				t.Errorf("Delta(1) = (%v,%v), want (%v,%v)", dx, dz, tt.dx, tt.dz)
			}
		})
	}
}

func TestTrail_ResetKeepsOrder(t *testing.T) {
	tr := trailOf(Point{1, 1}, Point{2, 2}, Point{3, 3})
	if got := tr.At(1); got != (Point{2, 2}) {
		t.Fatalf("At(1) = %v", got)
	}
	tr.Reset()
	if tr.Len() != 0 {
		t.Fatalf("Len after reset = %d", tr.Len())
	}
	if _, ok := tr.Last(); ok {
		t.Fatal("Last on empty trail reported a point")
	}
	tr.Append(Point{9, 9})
	if p, _ := tr.Last(); p != (Point{9, 9}) || tr.Len() != 1 {
		t.Fatalf("unexpected trail after reuse: %v", tr.Points())
	}
}
