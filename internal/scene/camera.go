package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"lightcycle/internal/arena"
)

// Chase camera placement relative to the followed vehicle.
const (
	CameraHeight = 15.0
	CameraBack   = 25.0
	FieldOfView  = 45.0
	NearPlane    = 1.0
	FarPlane     = 200.0
)

// Camera follows a point on the ground from above and behind (+Z).
type Camera struct {
	X, Z float64 // followed ground position

	// Screen shake.
	ShakeX, ShakeZ float64 // current offset in world units
	ShakeTimer     float64 // remaining shake time
	ShakeIntensity float64 // max offset magnitude
}

// Follow moves the camera focus to p.
func (c *Camera) Follow(p arena.Point) {
	c.X, c.Z = p.X, p.Z
}

// AddShake triggers screen shake with given intensity and duration.
func (c *Camera) AddShake(intensity, duration float64) {
	if intensity > c.ShakeIntensity {
		c.ShakeIntensity = intensity
	}
	if duration > c.ShakeTimer {
		c.ShakeTimer = duration
	}
}

// UpdateShake decays shake and computes random offsets.
func (c *Camera) UpdateShake(dt float64, seed uint64) {
	if c.ShakeTimer <= 0 {
		c.ShakeX = 0
		c.ShakeZ = 0
		c.ShakeIntensity = 0
		return
	}
	c.ShakeTimer -= dt
	if c.ShakeTimer < 0 {
		c.ShakeTimer = 0
	}
	t := c.ShakeTimer
	rr := arena.NewRand(seed ^ uint64(t*10000))
	mag := c.ShakeIntensity * (t / (t + 0.08))
	c.ShakeX = (rr.Float64()*2 - 1) * mag
	c.ShakeZ = (rr.Float64()*2 - 1) * mag
}

// Eye returns the camera position with shake applied.
func (c *Camera) Eye() mgl32.Vec3 {
	return mgl32.Vec3{float32(c.X + c.ShakeX), CameraHeight, float32(c.Z + CameraBack + c.ShakeZ)}
}

// Target returns the point the camera looks at.
func (c *Camera) Target() mgl32.Vec3 {
	return mgl32.Vec3{float32(c.X + c.ShakeX), 0, float32(c.Z + c.ShakeZ)}
}

// ViewProjection returns the combined matrix for a framebuffer of the given size.
func (c *Camera) ViewProjection(fbW, fbH int) mgl32.Mat4 {
	aspect := float32(1)
	if fbW > 0 && fbH > 0 {
		aspect = float32(fbW) / float32(fbH)
	}
	proj := mgl32.Perspective(mgl32.DegToRad(FieldOfView), aspect, NearPlane, FarPlane)
	view := mgl32.LookAtV(c.Eye(), c.Target(), mgl32.Vec3{0, 1, 0})
	return proj.Mul4(view)
}

// Shaking reports whether an offset is currently applied.
func (c *Camera) Shaking() bool {
	return math.Abs(c.ShakeX) > 0 || math.Abs(c.ShakeZ) > 0
}
