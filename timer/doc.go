// File: timer/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package timer orders deferred tasks by due time and exposes the next
// wake deadline consumed by the reactor's timer selectable. Firing a
// due task means emitting its event into the collector; execution of
// the task's handler happens later, during normal dispatch.
package timer
