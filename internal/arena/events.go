package arena

type EventType int

const (
	EventCrash EventType = iota
	EventRoundOver
	EventReset
	EventAgentTurn
)

func (t EventType) String() string {
	switch t {
	case EventCrash:
		return "crash"
	case EventRoundOver:
		return "round_over"
	case EventReset:
		return "reset"
	case EventAgentTurn:
		return "agent_turn"
	}
	return "unknown"
}

// Rider identifies which vehicle an event concerns.
type Rider int

const (
	RiderPlayer Rider = iota
	RiderAgent
)

func (r Rider) String() string {
	if r == RiderAgent {
		return "agent"
	}
	return "player"
}

type Event struct {
	Type    EventType
	Tick    int
	Rider   Rider
	Pos     Point
	State   RoundState // EventRoundOver
	Heading Heading    // EventAgentTurn
}

type EventHandler func(Event)

// EventBus delivers events synchronously on the goroutine that steps the world.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// SubscribeAll registers fn for every event type.
func (eb *EventBus) SubscribeAll(fn EventHandler) {
	for _, t := range []EventType{EventCrash, EventRoundOver, EventReset, EventAgentTurn} {
		eb.Subscribe(t, fn)
	}
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
