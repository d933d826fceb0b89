package garena

// Introspection accessors for debugging tools. They expose snapshots of the
// raw slot layout, including free slots and the free-list links, without
// handing out pointers into the arena. The debugui package and the stress
// command's invariant audits are built on these.

// SlotInfo is a snapshot of one raw slot.
type SlotInfo struct {
	// Occupied reports whether the slot currently holds a live value.
	Occupied bool
	// Generation is the creation generation of the occupant, or the
	// generation the next occupant will receive if the slot is free.
	Generation uint32
	// NextFree is the index of the next slot on the free list, or -1. Only
	// meaningful when Occupied is false.
	NextFree int
}

// NumSlots returns the size of the backing sequence, counting free slots.
// This never shrinks.
func (a *Arena[T]) NumSlots() int {
	return len(a.slots)
}

// SlotAt returns a snapshot of the slot at index i. Panics if i is out of
// range of the backing sequence.
func (a *Arena[T]) SlotAt(i int) SlotInfo {
	s := &a.slots[i]
	info := SlotInfo{
		Occupied:   s.occupied,
		Generation: s.generation,
		NextFree:   noIndex,
	}
	if !s.occupied {
		info.NextFree = s.nextFree
	}
	return info
}

// FreeHead returns the index of the first slot on the free list, or -1 when
// every slot is occupied.
func (a *Arena[T]) FreeHead() int {
	return a.freeHead
}
