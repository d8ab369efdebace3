// File: event/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package event defines lifecycle events, the handler contract, and the
// collector: the single-consumer FIFO queue every reactor drains.
package event
