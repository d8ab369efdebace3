// File: event/collector.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Single-consumer FIFO event queue backed by a ring-buffer queue.

package event

import (
	"github.com/eapache/queue"

	"github.com/momentics/hioload-reactor/api"
)

// Collector is the ordered, single-consumer queue of lifecycle events.
// It keeps the head event's context reachable until Pop and performs no
// deduplication of its own; duplicate suppression for selectable events
// belongs to the registry feeding it.
type Collector struct {
	events   *queue.Queue
	limit    int
	released bool
}

// NewCollector returns an empty collector. A limit greater than zero
// caps the number of queued events; zero means unbounded.
func NewCollector(limit int) *Collector {
	return &Collector{
		events: queue.New(),
		limit:  limit,
	}
}

// Put appends an event referencing ctx to the tail. When a capacity
// limit is configured and reached it returns a structured error
// matching api.ErrResourceExhausted; the caller decides whether and
// when to retry. After Release
// the collector is closed and Put is a no-op returning a nil event.
func (c *Collector) Put(typ Type, kind api.Kind, ctx any) (*Event, error) {
	if c.released {
		return nil, nil
	}
	if c.limit > 0 && c.events.Length() >= c.limit {
		return nil, api.NewError(api.ErrCodeResourceExhausted, "collector at capacity").
			WithContext("limit", c.limit).
			WithContext("type", typ.String())
	}
	ev := &Event{typ: typ, kind: kind, ctx: ctx}
	c.events.Add(ev)
	return ev, nil
}

// Peek returns the head event without removing it, or nil when the
// collector is empty or released.
func (c *Collector) Peek() *Event {
	if c.released || c.events.Length() == 0 {
		return nil
	}
	return c.events.Peek().(*Event)
}

// Pop removes the head event and drops the queue's reference to its
// context. Popping an empty collector is a programmer error and panics;
// callers must Peek first.
func (c *Collector) Pop() {
	if c.events.Length() == 0 {
		panic("event: Pop on empty collector")
	}
	c.events.Remove()
}

// Len returns the number of queued events.
func (c *Collector) Len() int {
	if c.released {
		return 0
	}
	return c.events.Length()
}

// Empty reports whether no events are queued.
func (c *Collector) Empty() bool { return c.Len() == 0 }

// Release drains all remaining events and closes the collector. Further
// Put calls become no-ops. Release is idempotent.
func (c *Collector) Release() {
	for c.events.Length() > 0 {
		c.events.Remove()
	}
	c.released = true
}
