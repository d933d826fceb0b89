package garena

import "fmt"

// ID is a stable, generation-stamped handle into an Arena[T]. The type
// parameter ties a handle to the element type of the arena that issued it, so
// a handle from an Arena[A] cannot be passed to an Arena[B] by accident.
//
// IDs are plain values: comparable, usable as map keys, and freely copyable.
// Copying an ID has no effect on the arena. Two IDs are equal iff both their
// index and generation are equal.
//
// The generation counter is 32 bits wide and wraps after 2^32 reuse cycles of
// a single slot, at which point a very old handle could alias a new one. No
// guard is implemented for that case.
type ID[T any] struct {
	index      uint32
	generation uint32
}

func newID[T any](index, generation uint32) ID[T] {
	return ID[T]{index: index, generation: generation}
}

// Index returns the slot index this handle addresses.
func (id ID[T]) Index() uint32 {
	return id.index
}

// Generation returns the generation the handle was issued under.
func (id ID[T]) Generation() uint32 {
	return id.generation
}

// Key packs the handle into a single uint64 (index in the upper 32 bits,
// generation in the lower 32) for use with integer-keyed containers such as
// IDMap. Distinct handles always pack to distinct keys.
func (id ID[T]) Key() uint64 {
	return uint64(id.index)<<32 | uint64(id.generation)
}

// idFromKey undoes Key.
func idFromKey[T any](key uint64) ID[T] {
	return newID[T](uint32(key>>32), uint32(key&0xFFFFFFFF))
}

// String renders the bare index for first-generation handles, and
// "(index-generation)" once the slot has been reused. Meant for logs and
// debug output, not for parsing.
func (id ID[T]) String() string {
	if id.generation == 0 {
		return fmt.Sprintf("%d", id.index)
	}
	return fmt.Sprintf("(%d-%d)", id.index, id.generation)
}
