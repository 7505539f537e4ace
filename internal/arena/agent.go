package arena

// Controller decides the agent's heading once per tick, before it moves.
type Controller interface {
	DecideHeading(cfg Config, self *Vehicle, opponent *Trail) Heading
}

// Reactive is the arena AI: it looks a few steps straight ahead and turns
// left or right at random when that spot is a wall. It never plans further
// than the projected spot, so it can still turn into trouble.
type Reactive struct {
	Rand Source
}

func NewReactive(src Source) *Reactive { return &Reactive{Rand: src} }

func (r *Reactive) DecideHeading(cfg Config, self *Vehicle, opponent *Trail) Heading {
	next := self.Project(cfg.Speed * cfg.Lookahead)
	if !IsColliding(cfg, next, &self.Trail, true) && !IsColliding(cfg, next, opponent, false) {
		return self.Heading
	}
	if r.Rand.Intn(2) == 0 {
		return self.Heading.Clockwise()
	}
	return self.Heading.CounterClockwise()
}

// Straight keeps the current heading forever.
type Straight struct{}

func (Straight) DecideHeading(_ Config, self *Vehicle, _ *Trail) Heading { return self.Heading }
