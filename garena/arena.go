// Package garena provides a generational slot arena: a densely packed,
// growable container that hands out stable, typed handles (see ID) instead of
// raw pointers or indices. Removing a value bumps its slot's generation, so
// handles to removed values are detected as stale and rejected rather than
// silently resolving to a later occupant of the same slot.
//
// The arena performs no internal synchronization. It may be read from
// multiple goroutines concurrently, but any mutation requires external
// coordination, and the arena must not be mutated while another goroutine
// (or an active iteration) is reading it.
package garena

// noIndex terminates the free list and marks an empty free-list head.
const noIndex = -1

// slot is one storage position in the arena's backing sequence. It is either
// occupied (generation is the creation generation of value) or free
// (generation is the generation to stamp on the next occupant, nextFree links
// to the next free slot or noIndex).
type slot[T any] struct {
	occupied   bool
	generation uint32
	nextFree   int
	value      T
}

// Arena stores values of type T and issues an ID[T] for each insertion.
// The backing sequence only ever grows; vacated slots are recycled through an
// index-linked free list in LIFO order. The zero value is not usable, call
// New.
type Arena[T any] struct {
	slots    []slot[T]
	freeHead int
	length   int
}

// New creates an empty arena.
func New[T any]() *Arena[T] {
	return &Arena[T]{
		freeHead: noIndex,
	}
}

// Len returns the number of live values. This is the count of valid handles,
// not the size of the backing store.
func (a *Arena[T]) Len() int {
	return a.length
}

// IsEmpty reports whether the arena holds no live values.
func (a *Arena[T]) IsEmpty() bool {
	return a.Len() == 0
}

// Insert stores v and returns its handle. Insertion reuses the most recently
// freed slot if one exists, otherwise it appends a new slot. Never fails.
func (a *Arena[T]) Insert(v T) ID[T] {
	return a.InsertWith(func(ID[T]) T { return v })
}

// InsertWith reserves a slot, computes the handle for it, and only then calls
// build with that handle to produce the value. This lets a value embed its
// own handle. build is called exactly once and must not touch the arena.
func (a *Arena[T]) InsertWith(build func(ID[T]) T) ID[T] {
	var id ID[T]
	if a.freeHead != noIndex {
		free := a.freeHead
		a.freeHead = a.slots[free].nextFree
		id = newID[T](uint32(free), a.slots[free].generation)
	} else {
		index := len(a.slots)
		a.slots = append(a.slots, slot[T]{nextFree: noIndex})
		id = newID[T](uint32(index), 0)
	}
	a.length++

	value := build(id)
	a.slots[id.index] = slot[T]{
		occupied:   true,
		generation: id.generation,
		nextFree:   noIndex,
		value:      value,
	}

	return id
}

// Remove deletes the value id refers to and returns it. If id is stale or
// unknown the arena is left untouched and the second result is false. The
// vacated slot is pushed onto the free list with its generation bumped, so id
// (and every copy of it) is permanently invalid afterwards even if the slot
// is reused.
func (a *Arena[T]) Remove(id ID[T]) (T, bool) {
	var zero T
	if !a.Contains(id) {
		return zero, false
	}

	s := &a.slots[id.index]
	value := s.value
	*s = slot[T]{
		generation: id.generation + 1,
		nextFree:   a.freeHead,
	}
	a.freeHead = int(id.index)
	a.length--

	return value, true
}

// Get returns a pointer to the value id refers to, or nil and false if the
// handle is stale or unknown. The pointer stays valid until the value is
// removed; mutating through it is allowed under the package's single-writer
// contract.
func (a *Arena[T]) Get(id ID[T]) (*T, bool) {
	if int(id.index) >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[id.index]
	if !s.occupied || s.generation != id.generation {
		return nil, false
	}
	return &s.value, true
}

// MustGet is Get for call sites that have already established validity by
// construction. It panics on a stale or unknown handle.
func (a *Arena[T]) MustGet(id ID[T]) *T {
	v, ok := a.Get(id)
	if !ok {
		panic("garena: no value for handle " + id.String())
	}
	return v
}

// Contains reports whether id currently refers to a live value.
func (a *Arena[T]) Contains(id ID[T]) bool {
	_, ok := a.Get(id)
	return ok
}

// Clone returns an independent copy of the arena. Values are copied by
// assignment; if T holds pointers the clones share the pointed-to data.
// Handles issued by the original are valid against the clone and vice versa,
// until the two diverge.
func (a *Arena[T]) Clone() *Arena[T] {
	slots := make([]slot[T], len(a.slots))
	copy(slots, a.slots)
	return &Arena[T]{
		slots:    slots,
		freeHead: a.freeHead,
		length:   a.length,
	}
}
