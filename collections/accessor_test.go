package collections_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rengeln/polymorphic-collections/collections"
)

func TestZeroValueAccessorReportsAbsent(t *testing.T) {
	var x collections.Accessor[int, int]
	v, ok := x.Get(0)
	assert.Nil(t, v)
	assert.False(t, ok)
}

func TestAccessMapLookup(t *testing.T) {
	m := map[string]string{"a": "one", "b": "two", "c": "three"}
	x := collections.AccessMap(m)

	for key, want := range m {
		v, ok := x.Get(key)
		require.True(t, ok)
		require.Equal(t, want, *v)
	}

	v, ok := x.Get("d")
	assert.Nil(t, v)
	assert.False(t, ok)
}

func TestAccessMapReadsThrough(t *testing.T) {
	m := map[string]int{"a": 1}
	x := collections.AccessMap(m)
	m["b"] = 2 // later insertions are observed

	v, ok := x.Get("b")
	require.True(t, ok)
	assert.Equal(t, 2, *v)
}

func TestAccessMapReturnsDetachedCopy(t *testing.T) {
	m := map[string]int{"a": 1}
	x := collections.AccessMap(m)

	v, ok := x.Get("a")
	require.True(t, ok)
	*v = 99

	// the write hit the accessor's copy, not the map
	assert.Equal(t, 1, m["a"])
}

func TestEmbedMapMutationIsVisibleOnLaterGets(t *testing.T) {
	x := collections.EmbedMap(map[string]int{"a": 1, "b": 2})

	v, ok := x.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, *v)
	*v = 99

	v, ok = x.Get("a")
	require.True(t, ok)
	assert.Equal(t, 99, *v)

	_, ok = x.Get("c")
	assert.False(t, ok)
}

func TestEmbedMapOwnsItsEntries(t *testing.T) {
	m := map[string]int{"a": 1}
	x := collections.EmbedMap(m)

	m["a"] = 5 // not observed by the embedded copy
	v, ok := x.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, *v)
}

// registry resolves keys to stable element pointers.
type registry struct {
	slots []int
	index map[string]int
}

func (r *registry) Find(key string) (*int, bool) {
	i, ok := r.index[key]
	if !ok {
		return nil, false
	}
	return &r.slots[i], true
}

func TestAccessFinderGivesTrueReferences(t *testing.T) {
	r := &registry{slots: []int{1, 2}, index: map[string]int{"a": 0, "b": 1}}
	x := collections.AccessFinder[string, int](r)

	v, ok := x.Get("a")
	require.True(t, ok)
	*v = 42

	assert.Equal(t, 42, r.slots[0])

	_, ok = x.Get("z")
	assert.False(t, ok)
}

func TestAccessFunc(t *testing.T) {
	x := collections.AccessFunc(func(k int) (string, bool) {
		if k < 0 {
			return "", false
		}
		return strconv.Itoa(k), true
	})

	v, ok := x.Get(12)
	require.True(t, ok)
	assert.Equal(t, "12", *v)

	_, ok = x.Get(-1)
	assert.False(t, ok)
}

func TestAccessorMoveInvalidatesSource(t *testing.T) {
	x := collections.EmbedMap(map[string]int{"a": 1})
	y := x.Move()

	_, ok := x.Get("a")
	assert.False(t, ok, "moved-from accessor must report absence")

	v, ok := y.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, *v)
}

func TestEmbedMapPointersSurviveMove(t *testing.T) {
	x := collections.EmbedMap(map[string]int{"a": 1})
	v, ok := x.Get("a")
	require.True(t, ok)

	y := x.Move()
	*v = 7

	w, ok := y.Get("a")
	require.True(t, ok)
	assert.Equal(t, 7, *w)
}
