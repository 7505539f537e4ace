package arena

// Trail is the ordered history of positions a vehicle has occupied since
// the last reset. It only ever grows until Reset.
type Trail struct {
	points []Point
}

func (t *Trail) Append(p Point) { t.points = append(t.points, p) }

func (t *Trail) Len() int { return len(t.points) }

func (t *Trail) At(i int) Point { return t.points[i] }

// Last returns the newest point, or false for an empty trail.
func (t *Trail) Last() (Point, bool) {
	if len(t.points) == 0 {
		return Point{}, false
	}
	return t.points[len(t.points)-1], true
}

// Points exposes the trail in chronological order for renderers.
// The slice is shared; callers must not modify it.
func (t *Trail) Points() []Point { return t.points }

// Reset clears the trail, keeping its backing storage for the next round.
func (t *Trail) Reset() { t.points = t.points[:0] }
