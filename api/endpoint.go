// File: api/endpoint.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Capability interfaces implemented by protocol endpoint objects.

package api

import "github.com/momentics/hioload-reactor/record"

// Endpoint is the minimal capability every event context object exposes:
// a stable kind tag and an attachment record for handler storage and
// back-reference storage.
type Endpoint interface {
	Kind() Kind
	Attachments() *record.Record
}

// Connection is the top of the endpoint ownership chain.
type Connection interface {
	Endpoint
}

// Session is owned by a Connection.
type Session interface {
	Endpoint
	Connection() Connection
}

// Link is owned by a Session.
type Link interface {
	Endpoint
	Session() Session
}

// Delivery is owned by a Link.
type Delivery interface {
	Endpoint
	Link() Link
}

// Transport is bound to a Connection.
type Transport interface {
	Endpoint
	Connection() Connection
}
