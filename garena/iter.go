package garena

import "iter"

// The iteration methods below all walk the raw slot sequence and skip free
// slots, so they yield exactly the live entries, each once. Handles are
// rebuilt from the generation stored in the slot, never from iteration state.
// Every call returns a fresh, independent traversal. The arena must not be
// mutated while a traversal is running.

// All yields (handle, pointer) for every live entry in ascending index order.
// Mutating values through the yielded pointers is allowed.
func (a *Arena[T]) All() iter.Seq2[ID[T], *T] {
	return func(yield func(ID[T], *T) bool) {
		for i := range a.slots {
			s := &a.slots[i]
			if !s.occupied {
				continue
			}
			if !yield(newID[T](uint32(i), s.generation), &s.value) {
				return
			}
		}
	}
}

// Backward is All in descending index order.
func (a *Arena[T]) Backward() iter.Seq2[ID[T], *T] {
	return func(yield func(ID[T], *T) bool) {
		for i := len(a.slots) - 1; i >= 0; i-- {
			s := &a.slots[i]
			if !s.occupied {
				continue
			}
			if !yield(newID[T](uint32(i), s.generation), &s.value) {
				return
			}
		}
	}
}

// Values yields a copy of every live value in ascending index order.
func (a *Arena[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range a.slots {
			if a.slots[i].occupied && !yield(a.slots[i].value) {
				return
			}
		}
	}
}

// ValuesBackward is Values in descending index order.
func (a *Arena[T]) ValuesBackward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(a.slots) - 1; i >= 0; i-- {
			if a.slots[i].occupied && !yield(a.slots[i].value) {
				return
			}
		}
	}
}

// IDs yields the handle of every live entry in ascending index order.
func (a *Arena[T]) IDs() iter.Seq[ID[T]] {
	return func(yield func(ID[T]) bool) {
		for id := range a.All() {
			if !yield(id) {
				return
			}
		}
	}
}

// IDsBackward is IDs in descending index order.
func (a *Arena[T]) IDsBackward() iter.Seq[ID[T]] {
	return func(yield func(ID[T]) bool) {
		for id := range a.Backward() {
			if !yield(id) {
				return
			}
		}
	}
}
