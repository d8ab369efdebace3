// File: record/record.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Extensible per-object slot store with owning and weak reference slots.

package record

// SlotKind declares the ownership semantics of a slot. Under Go's
// collector the split is a contract rather than a lifetime mechanism:
// a Weak slot never keeps its referent alive conceptually and must not
// be read after the referent has been retired by its true owner.
type SlotKind int

const (
	// SlotValue holds a plain value.
	SlotValue SlotKind = iota
	// SlotOwned holds a reference the record conceptually owns.
	SlotOwned
	// SlotWeak holds a non-owning back-reference.
	SlotWeak
)

// Key is a process-wide unique slot identifier. Keys compare by pointer
// identity, so a key allocated once (typically in a package-level var)
// is guaranteed to match itself everywhere in the process.
type Key struct {
	name string
}

// NewKey allocates a fresh slot key. The name is informational only and
// never participates in identity.
func NewKey(name string) *Key {
	return &Key{name: name}
}

func (k *Key) String() string { return k.name }

type slot struct {
	kind SlotKind
	val  any
}

// Record maps slot keys to typed values. Records are confined to the
// reactor's goroutine and are deliberately unsynchronized.
type Record struct {
	slots map[*Key]*slot
}

// New returns an empty record.
func New() *Record {
	return &Record{}
}

// Def defines a slot for key with the given kind. The first definition
// wins; redefining an existing slot is a no-op.
func (r *Record) Def(key *Key, kind SlotKind) {
	if key == nil {
		panic("record: Def with nil key")
	}
	if r.slots == nil {
		r.slots = make(map[*Key]*slot)
	}
	if _, ok := r.slots[key]; !ok {
		r.slots[key] = &slot{kind: kind}
	}
}

// Has reports whether a slot is defined for key.
func (r *Record) Has(key *Key) bool {
	_, ok := r.slots[key]
	return ok
}

// Get returns the value stored under key, or nil when the slot is
// undefined or unset.
func (r *Record) Get(key *Key) any {
	if s, ok := r.slots[key]; ok {
		return s.val
	}
	return nil
}

// Set stores a value under a previously defined slot. Writing to an
// undefined slot is a programmer error and panics.
func (r *Record) Set(key *Key, val any) {
	s, ok := r.slots[key]
	if !ok {
		panic("record: Set on undefined slot " + key.String())
	}
	s.val = val
}

// Kind returns the declared slot kind. Querying an undefined slot is a
// programmer error and panics.
func (r *Record) Kind(key *Key) SlotKind {
	s, ok := r.slots[key]
	if !ok {
		panic("record: Kind on undefined slot " + key.String())
	}
	return s.kind
}
