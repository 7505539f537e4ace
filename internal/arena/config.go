package arena

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Arena defaults.
const (
	DefaultArenaSize     = 50.0
	DefaultSpeed         = 0.25
	DefaultSensitivity   = 25
	DefaultContactRadius = 0.6
	DefaultLookahead     = 5.0
	DefaultTickInterval  = 16 * time.Millisecond
)

// Frame clamp for the fixed-step clock.
const MaxFrameDelta = 100 * time.Millisecond

// ErrInvalidConfig is returned (wrapped) by Config.Validate.
var ErrInvalidConfig = errors.New("invalid arena config")

// Config holds the tunables of a round. They are fixed for the lifetime of a World.
type Config struct {
	ArenaSize     float64       // half-extent of the square boundary
	Speed         float64       // movement per tick
	Sensitivity   int           // trail warm-up length and self-exclusion window
	ContactRadius float64       // proximity collision radius
	Lookahead     float64       // AI projection multiplier on Speed
	TickInterval  time.Duration // fixed step cadence

	PlayerSpawn Pose
	AgentSpawn  Pose
}

func DefaultConfig() Config {
	return Config{
		ArenaSize:     DefaultArenaSize,
		Speed:         DefaultSpeed,
		Sensitivity:   DefaultSensitivity,
		ContactRadius: DefaultContactRadius,
		Lookahead:     DefaultLookahead,
		TickInterval:  DefaultTickInterval,
		PlayerSpawn:   Pose{Pos: Point{X: 0, Z: 20}, Heading: North},
		AgentSpawn:    Pose{Pos: Point{X: 0, Z: -20}, Heading: South},
	}
}

// Validate rejects configurations the stepper cannot run with.
func (c Config) Validate() error {
	switch {
	case !(c.ArenaSize > 0):
		return fmt.Errorf("%w: arena size %v must be positive", ErrInvalidConfig, c.ArenaSize)
	case !(c.Speed > 0):
		return fmt.Errorf("%w: speed %v must be positive", ErrInvalidConfig, c.Speed)
	case c.Sensitivity <= 0:
		return fmt.Errorf("%w: sensitivity %d must be positive", ErrInvalidConfig, c.Sensitivity)
	case !(c.ContactRadius > 0):
		return fmt.Errorf("%w: contact radius %v must be positive", ErrInvalidConfig, c.ContactRadius)
	case !(c.Lookahead > 0):
		return fmt.Errorf("%w: lookahead %v must be positive", ErrInvalidConfig, c.Lookahead)
	case c.TickInterval <= 0:
		return fmt.Errorf("%w: tick interval %v must be positive", ErrInvalidConfig, c.TickInterval)
	}
	if err := c.checkSpawn("player", c.PlayerSpawn); err != nil {
		return err
	}
	return c.checkSpawn("agent", c.AgentSpawn)
}

func (c Config) checkSpawn(who string, p Pose) error {
	if !p.Heading.Valid() {
		return fmt.Errorf("%w: %s spawn heading %d", ErrInvalidConfig, who, int(p.Heading))
	}
	if !c.Inside(p.Pos) {
		return fmt.Errorf("%w: %s spawn %v outside arena", ErrInvalidConfig, who, p.Pos)
	}
	return nil
}

// Inside reports whether p is strictly within the arena boundary.
func (c Config) Inside(p Point) bool {
	return math.Abs(p.X) < c.ArenaSize && math.Abs(p.Z) < c.ArenaSize
}
