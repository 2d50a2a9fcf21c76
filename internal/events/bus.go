// Package events is a lightweight in-process pub-sub channel for
// entity-change notifications. Consumers (metrics, logging) only get
// ids; they query the store for full records when needed.
package events

// Kind is the type of domain event produced by the service layer.
type Kind string

const (
	TurtleAdded     Kind = "turtle_added"
	TurtleUpdated   Kind = "turtle_updated"
	TurtleDeleted   Kind = "turtle_deleted"
	BeachAdded      Kind = "beach_added"
	BeachUpdated    Kind = "beach_updated"
	BeachDeleted    Kind = "beach_deleted"
	NestDeclared    Kind = "nest_declared"
	NestUpdated     Kind = "nest_updated"
	NestDeleted     Kind = "nest_deleted"
	VolunteerJoined Kind = "volunteer_joined"
)

// Event carries the minimum data consumers need.
type Event struct {
	Kind     Kind
	EntityID string
	ActorID  string // session identity that caused the change, if any
}

// Bus is a buffered-channel pub-sub with non-blocking publish.
type Bus struct {
	ch chan Event
}

// NewBus creates a bus with the given buffer size.
func NewBus(buffer int) *Bus {
	return &Bus{ch: make(chan Event, buffer)}
}

// Publish attempts to enqueue the event without blocking.
// Returns true if published, false if the buffer is full.
func (b *Bus) Publish(evt Event) bool {
	if b == nil {
		return false
	}
	select {
	case b.ch <- evt:
		return true
	default:
		return false
	}
}

// Subscribe returns the read-only consumer channel.
func (b *Bus) Subscribe() <-chan Event {
	return b.ch
}
