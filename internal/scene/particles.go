package scene

import (
	"math"

	"lightcycle/internal/arena"
)

// Crash burst tuning, in world units and seconds.
const (
	MaxParticles = 512

	derezShards   = 64
	shardSpeedMin = 4.0
	shardSpeedMax = 12.0
	shardLiftMin  = 3.0
	shardLiftMax  = 9.0
	shardLifeMin  = 0.6
	shardLifeMax  = 1.4
	shardStreak   = 0.06 // seconds of motion drawn behind each shard

	particleGravity  = 18.0
	particleBounce   = 0.35
	particleAirDrag  = 1.2
	particleGroundXZ = 0.6
)

// Particle is one glowing shard of a de-rezzed vehicle.
type Particle struct {
	X, Y, Z    float64
	VX, VY, VZ float64

	Life    float64
	MaxLife float64

	Col RGB
}

// ParticleSystem holds crash shards. It is owned by the render loop.
type ParticleSystem struct {
	Max    int
	P      []Particle
	seed   uint64
	ovrIdx int // circular overwrite index when full
}

func NewParticleSystem(maxParticles int, seed uint64) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	if seed == 0 {
		seed = 1
	}
	return &ParticleSystem{
		Max:  maxParticles,
		P:    make([]Particle, 0, maxParticles),
		seed: seed,
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

func rangeF(r *arena.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// SpawnDerez bursts shards outward and upward from p at bike height.
func (ps *ParticleSystem) SpawnDerez(p arena.Point, col RGB) {
	ps.seed++
	r := arena.NewRand(ps.seed ^ math.Float64bits(p.X) ^ math.Float64bits(p.Z)<<1)
	for range derezShards {
		ang := rangeF(r, 0, math.Pi*2)
		spd := rangeF(r, shardSpeedMin, shardSpeedMax)
		ps.Add(Particle{
			X: p.X, Y: BikeLift, Z: p.Z,
			VX: math.Cos(ang) * spd, VZ: math.Sin(ang) * spd,
			VY:      rangeF(r, shardLiftMin, shardLiftMax),
			MaxLife: rangeF(r, shardLifeMin, shardLifeMax),
			Col:     col,
		})
	}
}

// Update advances shards by dt seconds, bouncing them on the floor and
// dropping expired ones.
func (ps *ParticleSystem) Update(dt float64) {
	if dt <= 0 {
		return
	}
	drag := math.Exp(-particleAirDrag * dt)
	for i := 0; i < len(ps.P); {
		p := &ps.P[i]
		p.Life += dt
		if p.Life >= p.MaxLife {
			ps.P[i] = ps.P[len(ps.P)-1]
			ps.P = ps.P[:len(ps.P)-1]
			continue
		}

		p.VY -= particleGravity * dt
		p.VX *= drag
		p.VZ *= drag
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Z += p.VZ * dt
		if p.Y < 0 {
			p.Y = 0
			p.VY = -p.VY * particleBounce
			p.VX *= particleGroundXZ
			p.VZ *= particleGroundXZ
		}
		i++
	}
	if ps.ovrIdx > len(ps.P) {
		ps.ovrIdx = 0
	}
}

// AppendSparks appends every shard as a GL_LINES streak fading with age.
func (ps *ParticleSystem) AppendSparks(dst []float32) []float32 {
	for _, p := range ps.P {
		t := p.Life / p.MaxLife
		c := p.Col.Scale(1 - t)
		dst = appendVertex(dst, p.X, p.Y, p.Z, c)
		dst = appendVertex(dst, p.X-p.VX*shardStreak, p.Y-p.VY*shardStreak, p.Z-p.VZ*shardStreak, c.Scale(0.4))
	}
	return dst
}
