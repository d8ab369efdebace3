// File: api/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package api defines the contracts shared between the reactor core and
// its collaborators: the closed set of endpoint kinds used for handler
// resolution, the capability interfaces endpoint objects implement, and
// the common error vocabulary.
//
// The reactor core ships no endpoint implementations of its own beyond
// Reactor, Selectable and Task; connections, sessions, links, deliveries
// and transports are provided by the protocol engine and participate in
// dispatch solely through these interfaces.
package api
