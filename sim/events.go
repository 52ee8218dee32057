package sim

import "github.com/jakecoffman/cp"

// EventKind identifies a presentation notification.
type EventKind string

const (
	EventKick  EventKind = "kick"
	EventWall  EventKind = "wall"
	EventLose  EventKind = "lose"
	EventBurst EventKind = "burst"
	EventScore EventKind = "score"
)

// Event is a fire-and-forget notification produced during a tick. Pos is only
// meaningful for bursts.
type Event struct {
	Kind EventKind
	Pos  cp.Vector
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Len reports the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
