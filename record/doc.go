// File: record/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package record implements the attachment record: an extensible,
// per-object store of typed slots addressed by process-wide unique keys.
//
// Every reactor-visible object carries one record. The reactor uses it
// to install per-object handlers, weak back-references to the owning
// reactor, and one-shot lifecycle markers; collaborators are free to
// define additional slots of their own.
package record
