// File: reactor/dispatch.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Handler resolution, dispatch hooks and reactor back-resolution.

package reactor

import (
	"github.com/momentics/hioload-reactor/api"
	"github.com/momentics/hioload-reactor/event"
	"github.com/momentics/hioload-reactor/timer"
)

// eventLink returns the link in scope for an event, or nil.
func eventLink(ev *event.Event) api.Link {
	switch ev.Kind() {
	case api.KindLink:
		l, _ := ev.Context().(api.Link)
		return l
	case api.KindDelivery:
		if d, ok := ev.Context().(api.Delivery); ok {
			return d.Link()
		}
	}
	return nil
}

// eventSession returns the session in scope for an event, or nil.
func eventSession(ev *event.Event) api.Session {
	if l := eventLink(ev); l != nil {
		return l.Session()
	}
	if ev.Kind() == api.KindSession {
		s, _ := ev.Context().(api.Session)
		return s
	}
	return nil
}

// eventConnection returns the connection in scope for an event, or nil.
func eventConnection(ev *event.Event) api.Connection {
	if s := eventSession(ev); s != nil {
		return s.Connection()
	}
	switch ev.Kind() {
	case api.KindConnection:
		c, _ := ev.Context().(api.Connection)
		return c
	case api.KindTransport:
		if t, ok := ev.Context().(api.Transport); ok {
			return t.Connection()
		}
	}
	return nil
}

// resolveHandler finds the most specific handler in scope for an
// event: link, then session, then connection, then the context's own
// handler for tasks and selectables, then the reactor default.
func (r *Reactor) resolveHandler(ev *event.Event) event.Handler {
	if l := eventLink(ev); l != nil {
		if h := RecordHandler(l.Attachments()); h != nil {
			return h
		}
	}
	if s := eventSession(ev); s != nil {
		if h := RecordHandler(s.Attachments()); h != nil {
			return h
		}
	}
	if c := eventConnection(ev); c != nil {
		if h := RecordHandler(c.Attachments()); h != nil {
			return h
		}
	}
	switch ev.Kind() {
	case api.KindTask:
		if t, ok := ev.Context().(*timer.Task); ok {
			if h := RecordHandler(t.Attachments()); h != nil {
				return h
			}
		}
	case api.KindSelectable:
		if s, ok := ev.Context().(*Selectable); ok {
			if h := RecordHandler(s.Attachments()); h != nil {
				return h
			}
		}
	}
	return r.handler
}

// dispatchPre runs before handler resolution. A connection entering
// the reactor gets the weak back-reference that later lets any of its
// descendants resolve the owning reactor.
func (r *Reactor) dispatchPre(ev *event.Event) {
	if ev.Type() != event.TypeConnectionInit {
		return
	}
	if c, ok := ev.Context().(api.Connection); ok {
		recordInitReactor(c.Attachments(), r)
	}
}

// dispatchPost runs after the global handler. Connection finalization
// releases the reactor-held attachments on that connection.
func (r *Reactor) dispatchPost(ev *event.Event) {
	if ev.Type() != event.TypeConnectionFinal {
		return
	}
	if c, ok := ev.Context().(api.Connection); ok {
		rec := c.Attachments()
		if rec.Has(reactorKey) {
			rec.Set(reactorKey, nil)
		}
		if rec.Has(handlerKey) {
			rec.Set(handlerKey, nil)
		}
		r.log.Debug().Msg("connection state released")
	}
}

// EventReactor resolves the reactor an event belongs to, traversing
// the context's back-references. Returns nil when the context is not
// bound to any reactor.
func EventReactor(ev *event.Event) *Reactor {
	switch ev.Kind() {
	case api.KindReactor:
		rx, _ := ev.Context().(*Reactor)
		return rx
	case api.KindTask:
		if t, ok := ev.Context().(*timer.Task); ok {
			return recordReactor(t.Attachments())
		}
	case api.KindTransport:
		if t, ok := ev.Context().(api.Transport); ok {
			return recordReactor(t.Attachments())
		}
	case api.KindSelectable:
		if s, ok := ev.Context().(*Selectable); ok {
			return s.Reactor()
		}
	case api.KindDelivery, api.KindLink, api.KindSession, api.KindConnection:
		if c := eventConnection(ev); c != nil {
			return recordReactor(c.Attachments())
		}
	}
	return nil
}
