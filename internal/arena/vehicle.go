package arena

// Pose is a position plus heading, used for spawns.
type Pose struct {
	Pos     Point
	Heading Heading
}

// Vehicle is a light cycle and the wall it leaves behind.
type Vehicle struct {
	Pos     Point
	Heading Heading
	Trail   Trail
}

// Project returns where the vehicle would be after moving dist units straight ahead.
func (v *Vehicle) Project(dist float64) Point {
	dx, dz := v.Heading.Delta(dist)
	return Point{X: v.Pos.X + dx, Z: v.Pos.Z + dz}
}

func (v *Vehicle) Advance(speed float64) { v.Pos = v.Project(speed) }

func (v *Vehicle) respawn(p Pose) {
	v.Pos = p.Pos
	v.Heading = p.Heading
	v.Trail.Reset()
}
