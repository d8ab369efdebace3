// File: event/event.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Immutable lifecycle event and the core event type vocabulary.

package event

import (
	"fmt"

	"github.com/momentics/hioload-reactor/api"
)

// Type identifies what happened to an event's context object. The core
// interprets only the types declared below; collaborators may define
// their own starting at TypeApplication and the core passes them through
// dispatch unexamined.
type Type int

const (
	TypeNone Type = iota
	TypeReactorInit
	TypeReactorQuiesced
	TypeReactorFinal
	TypeSelectableInit
	TypeSelectableUpdated
	TypeSelectableReadable
	TypeSelectableWritable
	TypeSelectableExpired
	TypeSelectableError
	TypeSelectableFinal
	TypeConnectionInit
	TypeConnectionFinal
	TypeTimerTask
)

// TypeApplication is the first event type available to collaborators.
const TypeApplication Type = 10000

func (t Type) String() string {
	switch t {
	case TypeReactorInit:
		return "reactor-init"
	case TypeReactorQuiesced:
		return "reactor-quiesced"
	case TypeReactorFinal:
		return "reactor-final"
	case TypeSelectableInit:
		return "selectable-init"
	case TypeSelectableUpdated:
		return "selectable-updated"
	case TypeSelectableReadable:
		return "selectable-readable"
	case TypeSelectableWritable:
		return "selectable-writable"
	case TypeSelectableExpired:
		return "selectable-expired"
	case TypeSelectableError:
		return "selectable-error"
	case TypeSelectableFinal:
		return "selectable-final"
	case TypeConnectionInit:
		return "connection-init"
	case TypeConnectionFinal:
		return "connection-final"
	case TypeTimerTask:
		return "timer-task"
	case TypeNone:
		return "none"
	default:
		return fmt.Sprintf("application(%d)", int(t))
	}
}

// Event is an immutable {type, kind, context} tuple. The collector holds
// the context reference from Put until Pop.
type Event struct {
	typ  Type
	kind api.Kind
	ctx  any
}

// Type returns the event type.
func (e *Event) Type() Type { return e.typ }

// Kind returns the kind tag of the context object.
func (e *Event) Kind() api.Kind { return e.kind }

// Context returns the object the event describes.
func (e *Event) Context() any { return e.ctx }

func (e *Event) String() string {
	return fmt.Sprintf("%s(%s)", e.typ, e.kind)
}
