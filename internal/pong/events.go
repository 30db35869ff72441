package pong

type EventType int

const (
	EventWallBounce EventType = iota
	EventPaddleHit
	EventPointScored
)

// Side identifies one of the two paddles.
type Side int

const (
	SideHuman Side = iota
	SideOpponent
)

func (s Side) String() string {
	if s == SideHuman {
		return "human"
	}
	return "opponent"
}

type Event struct {
	Type EventType
	X, Y float64
	Side Side // paddle hit, or the side that won the point
}

type EventHandler func(Event)

// EventBus delivers events synchronously, in subscription order.
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

func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
