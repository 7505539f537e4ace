package arena

import (
	"fmt"
	"math"
)

// Point is a position on the ground plane.
type Point struct {
	X, Z float64
}

func (p Point) String() string { return fmt.Sprintf("(%.2f,%.2f)", p.X, p.Z) }

// Dist returns the Euclidean distance between two points.
func (p Point) Dist(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Z-o.Z)
}

// Heading is an axis-aligned direction of travel, encoded 0..3 clockwise.
type Heading int

const (
	North Heading = iota
	East
	South
	West
)

func (h Heading) Valid() bool { return h >= North && h <= West }

// Delta returns the displacement for moving dist units along h.
// North runs towards negative Z.
func (h Heading) Delta(dist float64) (dx, dz float64) {
	switch h {
	case North:
		return 0, -dist
	case East:
		return dist, 0
	case South:
		return 0, dist
	case West:
		return -dist, 0
	}
	return 0, 0
}

func (h Heading) Reverse() Heading { return (h + 2) % 4 }
func (h Heading) Clockwise() Heading { return (h + 1) % 4 }
func (h Heading) CounterClockwise() Heading { return (h + 3) % 4 }

func (h Heading) String() string {
	switch h {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return fmt.Sprintf("heading(%d)", int(h))
}

// IsColliding tests p against the arena boundary and a trail.
//
// Trail contact is only considered once the trail holds at least
// cfg.Sensitivity points. When self is set the newest cfg.Sensitivity points
// are skipped so a vehicle never hits the wall it is laying right now.
func IsColliding(cfg Config, p Point, trail *Trail, self bool) bool {
	if !cfg.Inside(p) {
		return true
	}
	n := trail.Len()
	if n < cfg.Sensitivity {
		return false
	}
	limit := n
	if self {
		limit = n - cfg.Sensitivity
	}
	for _, q := range trail.points[:limit] {
		if p.Dist(q) < cfg.ContactRadius {
			return true
		}
	}
	return false
}
