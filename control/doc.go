// File: control/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package control holds the runtime configuration surface of
// hioload-reactor: defaults matching the reference constants, with
// environment overrides under the HIOLOAD_REACTOR_ prefix.
package control
