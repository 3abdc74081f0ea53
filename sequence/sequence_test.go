package sequence_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/assoc/sequence"
)

func TestSequence_Empty(t *testing.T) {
	s := sequence.New[int]()
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains(1))
	assert.Nil(t, s.Head())
	assert.Empty(t, s.Items())
	assert.Equal(t, "List:", s.String())
	assert.False(t, s.Remove(1), "removing from an empty sequence is a no-op")
}

func TestSequence_PrependOrder(t *testing.T) {
	s := sequence.New[int]()
	for _, v := range []int{1, 2, 3} {
		assert.True(t, s.Prepend(v))
	}
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []int{3, 2, 1}, s.Items(), "most recent prepend is first")
	assert.Equal(t, "List:3->2->1", s.String())
}

func TestSequence_PrependDuplicateIsNoop(t *testing.T) {
	s := sequence.New[string]()
	require.True(t, s.Prepend("a"))
	require.True(t, s.Prepend("b"))

	assert.False(t, s.Prepend("a"))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"b", "a"}, s.Items())
}

func TestSequence_RemoveHeadMiddleTail(t *testing.T) {
	build := func() *sequence.Sequence[int] {
		s := sequence.New[int]()
		for _, v := range []int{1, 2, 3, 4} {
			s.Prepend(v)
		}
		return s // 4->3->2->1
	}

	cases := []struct {
		name   string
		remove int
		want   []int
	}{
		{"head", 4, []int{3, 2, 1}},
		{"middle", 2, []int{4, 3, 1}},
		{"tail", 1, []int{4, 3, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := build()
			assert.True(t, s.Remove(tc.remove))
			assert.Equal(t, tc.want, s.Items())
			assert.Equal(t, 3, s.Len())
			assert.False(t, s.Contains(tc.remove))
		})
	}
}

func TestSequence_RemoveAbsentLeavesLength(t *testing.T) {
	s := sequence.New[int]()
	s.Prepend(7)
	assert.False(t, s.Remove(8))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []int{7}, s.Items())
}

func TestSequence_RemoveAllThenReuse(t *testing.T) {
	s := sequence.New[int]()
	s.Prepend(1)
	s.Prepend(2)
	assert.True(t, s.Remove(1))
	assert.True(t, s.Remove(2))
	assert.Equal(t, 0, s.Len())
	assert.Nil(t, s.Head())

	assert.True(t, s.Prepend(1), "a removed item may be inserted again")
	assert.Equal(t, []int{1}, s.Items())
}

type pair struct {
	k string
	v []byte // not comparable on purpose
}

func TestSequence_NewFuncComparesByKey(t *testing.T) {
	s := sequence.NewFunc(func(a, b pair) bool { return a.k == b.k })
	assert.True(t, s.Prepend(pair{"x", []byte("1")}))
	assert.False(t, s.Prepend(pair{"x", []byte("2")}), "same key counts as a duplicate")

	got, ok := s.Find(func(p pair) bool { return p.k == "x" })
	require.True(t, ok)
	assert.Equal(t, []byte("1"), got.v)

	removed, ok := s.RemoveFunc(func(p pair) bool { return p.k == "x" })
	require.True(t, ok)
	assert.Equal(t, "x", removed.k)
	assert.Equal(t, 0, s.Len())

	_, ok = s.RemoveFunc(func(p pair) bool { return p.k == "x" })
	assert.False(t, ok)
}

func TestSequence_NewFuncNilPanics(t *testing.T) {
	assert.Panics(t, func() { sequence.NewFunc[int](nil) })
}

func TestSequence_AllIsLazyAndStoppable(t *testing.T) {
	s := sequence.New[int]()
	for i := 0; i < 10; i++ {
		s.Prepend(i)
	}

	var seen []int
	for v := range s.All() {
		seen = append(seen, v)
		if len(seen) == 3 {
			break
		}
	}
	assert.Equal(t, []int{9, 8, 7}, seen)
	assert.Equal(t, s.Items(), slices.Collect(s.All()))
}

func TestSequence_NodeWalk(t *testing.T) {
	s := sequence.New[int]()
	s.Prepend(1)
	s.Prepend(2)

	var got []int
	for n := s.Head(); n != nil; n = n.Next() {
		got = append(got, n.Item())
	}
	assert.Equal(t, []int{2, 1}, got)
}
