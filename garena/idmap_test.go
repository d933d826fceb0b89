package garena_test

import (
	"testing"

	"github.com/JuergenFranziskus/typed-garena/garena"
	"github.com/stretchr/testify/assert"
)

func TestIDMapPutGet(t *testing.T) {
	arena := garena.New[string]()
	labels := garena.NewIDMap[string, int](16)

	a := arena.Insert("a")
	b := arena.Insert("b")
	labels.Put(a, 1)
	labels.Put(b, 2)

	v, ok := labels.Get(a)
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 2, labels.Len())

	labels.Put(a, 10)
	v, ok = labels.Get(a)
	assert.True(t, ok)
	assert.Equal(t, 10, v)
	assert.Equal(t, 2, labels.Len())
}

func TestIDMapDistinguishesGenerations(t *testing.T) {
	arena := garena.New[string]()
	labels := garena.NewIDMap[string, string](16)

	old := arena.Insert("first")
	labels.Put(old, "old entry")
	_, ok := arena.Remove(old)
	assert.True(t, ok)

	// The reused slot's handle has a different key
	fresh := arena.Insert("second")
	assert.Equal(t, old.Index(), fresh.Index())
	assert.NotEqual(t, old.Key(), fresh.Key())

	_, ok = labels.Get(fresh)
	assert.False(t, ok)

	// The stale entry sticks around until deleted; the map does not track
	// arena removals
	v, ok := labels.Get(old)
	assert.True(t, ok)
	assert.Equal(t, "old entry", v)
	assert.True(t, labels.Del(old))
	assert.False(t, labels.Del(old))
}

func TestIDMapAll(t *testing.T) {
	arena := garena.New[int]()
	weights := garena.NewIDMap[int, float64](8)

	want := map[garena.ID[int]]float64{}
	for i := 0; i < 5; i++ {
		id := arena.Insert(i)
		weights.Put(id, float64(i)/2)
		want[id] = float64(i) / 2
	}

	got := map[garena.ID[int]]float64{}
	for id, w := range weights.All() {
		got[id] = w
	}
	assert.Equal(t, want, got)
}

func TestIDKeyPacksBothHalves(t *testing.T) {
	arena := garena.New[int]()
	id := arena.Insert(0)
	for i := 0; i < 3; i++ {
		_, ok := arena.Remove(id)
		assert.True(t, ok)
		id = arena.Insert(0)
	}

	assert.Equal(t, uint32(0), id.Index())
	assert.Equal(t, uint32(3), id.Generation())
	assert.Equal(t, uint64(3), id.Key())

	other := arena.Insert(1)
	assert.Equal(t, uint64(1)<<32, other.Key())
}
