package event

import (
	"github.com/lixenwraith/space-tanks/parameter"
)

// EventQueue is a fixed ring buffer of game events
// Single producer and consumer, both on the simulation goroutine
//
// Overflow: oldest events overwritten when full
type EventQueue struct {
	events [parameter.EventQueueSize]GameEvent
	head   uint64 // read index
	tail   uint64 // write index
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, dropping the oldest when full
func (eq *EventQueue) Push(ev GameEvent) {
	eq.events[eq.tail&parameter.EventBufferMask] = ev
	eq.tail++
	if eq.tail-eq.head > parameter.EventQueueSize {
		eq.head = eq.tail - parameter.EventQueueSize
	}
}

// Consume appends pending events to dst in FIFO order and empties the queue
func (eq *EventQueue) Consume(dst []GameEvent) []GameEvent {
	for ; eq.head < eq.tail; eq.head++ {
		dst = append(dst, eq.events[eq.head&parameter.EventBufferMask])
	}
	return dst
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	return int(eq.tail - eq.head)
}

// Reset discards pending events
func (eq *EventQueue) Reset() {
	eq.head = eq.tail
}
