package collections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rengeln/polymorphic-collections/collections"
)

func TestEach(t *testing.T) {
	s := []int{1, 2, 3}
	collections.Each(collections.Enumerate(s), func(v *int) { *v *= 10 })
	assert.Equal(t, []int{10, 20, 30}, s)
}

func TestFind(t *testing.T) {
	s := []int{1, 2, 3}
	e := collections.Enumerate(s)

	v, ok := collections.Find(e, 2)
	require.True(t, ok)
	assert.Equal(t, 2, *v)

	// the find consumed everything up to and including the match
	assert.Equal(t, []int{3}, drain(t, e))
}

func TestFindMiss(t *testing.T) {
	e := collections.Enumerate([]int{1, 2, 3})
	v, ok := collections.Find(e, 9)
	assert.Nil(t, v)
	assert.False(t, ok)
}

func TestFindFuncMutationReachesSource(t *testing.T) {
	s := []int{1, 2, 3}
	v, ok := collections.FindFunc(collections.Enumerate(s), func(n int) bool { return n%2 == 0 })
	require.True(t, ok)
	*v = 20
	assert.Equal(t, []int{1, 20, 3}, s)
}

func TestCount(t *testing.T) {
	e := collections.Enumerate([]int{1, 2, 1, 3, 1})
	assert.Equal(t, 3, collections.Count(e, 1))
}

func TestCountFunc(t *testing.T) {
	e := collections.Enumerate([]int{1, 2, 3, 4, 5})
	assert.Equal(t, 2, collections.CountFunc(e, func(n int) bool { return n%2 == 0 }))
}

func TestEqual(t *testing.T) {
	eq := collections.Equal(
		collections.Enumerate([]int{1, 2, 3}),
		collections.Enumerate([]int{1, 2, 3}),
	)
	assert.True(t, eq)
}

func TestEqualDifferentElements(t *testing.T) {
	eq := collections.Equal(
		collections.Enumerate([]int{1, 2, 3}),
		collections.Enumerate([]int{1, 9, 3}),
	)
	assert.False(t, eq)
}

func TestEqualDifferentLengths(t *testing.T) {
	eq := collections.Equal(
		collections.Enumerate([]int{1, 2}),
		collections.Enumerate([]int{1, 2, 3}),
	)
	assert.False(t, eq)
}

func TestEqualAcrossSourceKinds(t *testing.T) {
	x := 0
	counting := collections.EnumerateFunc(func() (int, bool) {
		if x < 3 {
			x++
			return x, true
		}
		return 0, false
	})
	eq := collections.Equal(collections.Enumerate([]int{1, 2, 3}), counting)
	assert.True(t, eq)
}

func TestCollect(t *testing.T) {
	got := collections.Collect(collections.Enumerate([]string{"a", "b"}))
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestCopyRoundTripPreservesOrder(t *testing.T) {
	src := []int{4, 8, 15, 16, 23, 42}
	var dst []int
	n, err := collections.Copy(collections.Accumulate(&dst), collections.Enumerate(src))
	require.NoError(t, err)
	assert.Equal(t, len(src), n)
	assert.Equal(t, src, dst)
}

func TestCopyStopsAtCapacity(t *testing.T) {
	dst := make([]int, 2)
	n, err := collections.Copy(collections.Fill(dst), collections.Enumerate([]int{1, 2, 3}))
	assert.ErrorIs(t, err, collections.ErrCapacityExceeded)
	assert.Equal(t, 2, n)
	assert.Equal(t, []int{1, 2}, dst)
}

func TestSeqBridgesToRange(t *testing.T) {
	e := collections.Enumerate([]int{1, 2, 3})
	var got []int
	for v := range collections.Seq(e) {
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestSeqEarlyBreakLeavesRemainder(t *testing.T) {
	e := collections.Enumerate([]int{1, 2, 3})
	for range collections.Seq(e) {
		break
	}
	assert.Equal(t, []int{2, 3}, drain(t, e))
}
