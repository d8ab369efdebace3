// File: event/handler.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Handler contract and forward composition.

package event

// Handler consumes events for their side effects. The core never
// inspects a handler's result; exactly one resolved handler plus the
// global handler see each dispatched event.
type Handler interface {
	Dispatch(e *Event)
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(e *Event)

func (f HandlerFunc) Dispatch(e *Event) { f(e) }

// MultiHandler forwards every event to itself first (when a body is
// set) and then to each child in registration order. Composition
// internals are opaque to the dispatch loop, which only ever sees the
// top-level handler.
type MultiHandler struct {
	body     Handler
	children []Handler
}

// NewMulti returns a MultiHandler with an optional body handler.
func NewMulti(body Handler) *MultiHandler {
	return &MultiHandler{body: body}
}

// Add appends a child handler.
func (m *MultiHandler) Add(h Handler) {
	if h == nil {
		panic("event: MultiHandler.Add with nil handler")
	}
	m.children = append(m.children, h)
}

func (m *MultiHandler) Dispatch(e *Event) {
	if m.body != nil {
		m.body.Dispatch(e)
	}
	for _, child := range m.children {
		child.Dispatch(e)
	}
}
