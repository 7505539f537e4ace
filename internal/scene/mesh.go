package scene

import "lightcycle/internal/arena"

// Mesh dimensions.
const (
	VertexFloats = 6 // x, y, z, r, g, b

	GridStep     = 2.0
	WallHeight   = 1.2
	WallBaseDim  = 0.3 // base colour factor, fading up to full at the top
	BikeSize     = 0.8
	BikeLift     = 0.5
	FloorOffsetY = 0.0
)

func appendVertex(dst []float32, x, y, z float64, c RGB) []float32 {
	r, g, b := c.Float()
	return append(dst, float32(x), float32(y), float32(z), r, g, b)
}

// AppendGrid appends the floor grid as GL_LINES vertex pairs covering
// [-size, size] on both axes.
func AppendGrid(dst []float32, size float64, c RGB) []float32 {
	for i := -size; i <= size; i += GridStep {
		dst = appendVertex(dst, i, FloorOffsetY, -size, c)
		dst = appendVertex(dst, i, FloorOffsetY, size, c)
		dst = appendVertex(dst, -size, FloorOffsetY, i, c)
		dst = appendVertex(dst, size, FloorOffsetY, i, c)
	}
	return dst
}

// AppendWall appends a trail as a GL_TRIANGLE_STRIP: a dim vertex on the
// floor and a bright one at wall height for every trail point. Trails with
// fewer than two points produce nothing.
func AppendWall(dst []float32, pts []arena.Point, c RGB) []float32 {
	if len(pts) < 2 {
		return dst
	}
	base := c.Scale(WallBaseDim)
	for _, p := range pts {
		dst = appendVertex(dst, p.X, 0, p.Z, base)
		dst = appendVertex(dst, p.X, WallHeight, p.Z, c)
	}
	return dst
}

// cubeFaces lists the 12 triangles of a unit cube centred on the origin.
var cubeFaces = [36][3]float64{
	// -Z
	{-1, -1, -1}, {1, 1, -1}, {1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1},
	// +Z
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	// -X
	{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, -1, -1}, {-1, 1, 1}, {-1, 1, -1},
	// +X
	{1, -1, -1}, {1, 1, 1}, {1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1},
	// -Y
	{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, -1}, {1, -1, 1}, {-1, -1, 1},
	// +Y
	{-1, 1, -1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}, {-1, 1, 1}, {1, 1, 1},
}

// AppendBike appends a solid cube (GL_TRIANGLES) for a vehicle at p.
func AppendBike(dst []float32, p arena.Point, c RGB) []float32 {
	h := BikeSize / 2
	for _, v := range cubeFaces {
		dst = appendVertex(dst, p.X+v[0]*h, BikeLift+v[1]*h, p.Z+v[2]*h, c)
	}
	return dst
}

// Frame holds the per-frame vertex streams, reused between frames.
type Frame struct {
	Grid        []float32 // GL_LINES, rebuilt only when the arena size changes
	PlayerWall  []float32 // GL_TRIANGLE_STRIP
	AgentWall   []float32 // GL_TRIANGLE_STRIP
	Bikes       []float32 // GL_TRIANGLES
	Sparks      []float32 // GL_LINES
	gridForSize float64
}

// Build refills f from the world.
func (f *Frame) Build(w *arena.World) {
	size := w.Config().ArenaSize
	if f.Grid == nil || f.gridForSize != size {
		f.Grid = AppendGrid(f.Grid[:0], size, Palette.Grid)
		f.gridForSize = size
	}
	f.PlayerWall = AppendWall(f.PlayerWall[:0], w.Player().Trail.Points(), Palette.Player)
	f.AgentWall = AppendWall(f.AgentWall[:0], w.Agent().Trail.Points(), Palette.Agent)
	f.Bikes = AppendBike(f.Bikes[:0], w.Player().Pos, Palette.Player)
	f.Bikes = AppendBike(f.Bikes, w.Agent().Pos, Palette.Agent)
}

// BuildSparks refills the spark stream from ps.
func (f *Frame) BuildSparks(ps *ParticleSystem) {
	f.Sparks = ps.AppendSparks(f.Sparks[:0])
}

// Vertices returns the vertex count of a stream.
func Vertices(stream []float32) int32 { return int32(len(stream) / VertexFloats) }
