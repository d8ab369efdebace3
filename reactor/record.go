// File: reactor/record.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Process-wide attachment slot keys used by dispatch and resolution.

package reactor

import (
	"github.com/momentics/hioload-reactor/event"
	"github.com/momentics/hioload-reactor/record"
)

var (
	handlerKey    = record.NewKey("reactor.handler")
	reactorKey    = record.NewKey("reactor.self")
	terminatedKey = record.NewKey("reactor.terminated")
)

// RecordHandler returns the handler installed on a record, or nil.
func RecordHandler(r *record.Record) event.Handler {
	h, _ := r.Get(handlerKey).(event.Handler)
	return h
}

// RecordSetHandler installs a per-object handler on a record. Handler
// resolution consults it before falling back to broader scopes.
func RecordSetHandler(r *record.Record, h event.Handler) {
	r.Def(handlerKey, record.SlotOwned)
	r.Set(handlerKey, h)
}

// recordReactor reads the weak reactor back-reference, or nil.
func recordReactor(r *record.Record) *Reactor {
	rx, _ := r.Get(reactorKey).(*Reactor)
	return rx
}

// recordInitReactor installs the weak reactor back-reference. Safe to
// call repeatedly; the slot is defined once and overwritten with the
// same referent.
func recordInitReactor(r *record.Record, rx *Reactor) {
	r.Def(reactorKey, record.SlotWeak)
	r.Set(reactorKey, rx)
}
