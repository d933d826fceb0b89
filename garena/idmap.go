package garena

import (
	"iter"

	"github.com/kamstrup/intmap"
)

// IDMap associates external data of type V with handles from an Arena[T]
// without widening the arena's element type. It is keyed by ID.Key() over an
// integer hash map, so lookups never touch the arena and a stale handle keeps
// its entry until the caller deletes it — the map does not track removals
// from the arena.
type IDMap[T, V any] struct {
	m *intmap.Map[uint64, V]
}

// NewIDMap creates an IDMap sized for about capacity entries.
func NewIDMap[T, V any](capacity int) *IDMap[T, V] {
	return &IDMap[T, V]{
		m: intmap.New[uint64, V](capacity),
	}
}

// Put stores v under id, replacing any previous entry.
func (m *IDMap[T, V]) Put(id ID[T], v V) {
	m.m.Put(id.Key(), v)
}

// Get returns the entry stored under id.
func (m *IDMap[T, V]) Get(id ID[T]) (V, bool) {
	return m.m.Get(id.Key())
}

// Del removes the entry stored under id and reports whether one existed.
func (m *IDMap[T, V]) Del(id ID[T]) bool {
	return m.m.Del(id.Key())
}

// Len returns the number of entries.
func (m *IDMap[T, V]) Len() int {
	return m.m.Len()
}

// All yields every (handle, value) entry in undefined order.
func (m *IDMap[T, V]) All() iter.Seq2[ID[T], V] {
	return func(yield func(ID[T], V) bool) {
		m.m.ForEach(func(key uint64, v V) bool {
			return yield(idFromKey[T](key), v)
		})
	}
}
