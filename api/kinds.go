// File: api/kinds.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Closed enumeration of reactor object kinds.

package api

// Kind tags every object that can appear as an event context. The set is
// closed: handler resolution and reactor back-resolution switch over it
// exhaustively.
type Kind int

const (
	KindNone Kind = iota
	KindConnection
	KindSession
	KindLink
	KindDelivery
	KindTransport
	KindTask
	KindSelectable
	KindReactor
)

func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindSession:
		return "session"
	case KindLink:
		return "link"
	case KindDelivery:
		return "delivery"
	case KindTransport:
		return "transport"
	case KindTask:
		return "task"
	case KindSelectable:
		return "selectable"
	case KindReactor:
		return "reactor"
	default:
		return "none"
	}
}
