package hashtable_test

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/assoc/hashfn"
	"github.com/katalvlaran/assoc/hashtable"
	"github.com/katalvlaran/assoc/keygen"
)

func newOpen[K comparable, V any](t *testing.T, p hashfn.Prober[K], opts ...hashtable.Option) *hashtable.Open[K, V] {
	t.Helper()
	tbl, err := hashtable.NewOpen[K, V](p, opts...)
	require.NoError(t, err)
	return tbl
}

func TestOpen_ConstructorErrors(t *testing.T) {
	_, err := hashtable.NewOpen[int, int](nil)
	assert.ErrorIs(t, err, hashtable.ErrNilHasher)

	_, err = hashtable.NewOpen[int, int](hashfn.Probing[int](), hashtable.WithBinCount(-3))
	assert.ErrorIs(t, err, hashtable.ErrInvalidBinCount)

	_, err = hashtable.NewOpen[int, int](hashfn.Probing[int](), hashtable.WithMaxLoadFactor(1))
	assert.ErrorIs(t, err, hashtable.ErrInvalidLoadFactor)
}

// Nine integer keys in a ten-slot table each get a distinct slot.
func TestOpen_DistinctSlots(t *testing.T) {
	tbl := newOpen[int, int](t, hashfn.Probing[int](), hashtable.WithBinCount(10))
	for k := 0; k < 9; k++ {
		ok, err := tbl.Set(k, k*10)
		require.NoError(t, err)
		require.True(t, ok)
	}
	assert.Equal(t, 9, tbl.Len())

	slots := map[int]int{}
	for k := 0; k < 9; k++ {
		require.True(t, tbl.Contains(k))
		s, ok := tbl.SlotOf(k)
		require.True(t, ok)
		prev, dup := slots[s]
		require.False(t, dup, "keys %d and %d share slot %d", prev, k, s)
		slots[s] = k
	}
}

func TestOpen_LinearProbeWraps(t *testing.T) {
	tbl := newOpen[int, string](t, hashfn.Probing[int](), hashtable.WithMaxLoadFactor(0.9))
	_, _ = tbl.Set(9, "x")
	_, _ = tbl.Set(19, "y")

	s, ok := tbl.SlotOf(9)
	require.True(t, ok)
	assert.Equal(t, 9, s)
	s, ok = tbl.SlotOf(19)
	require.True(t, ok)
	assert.Equal(t, 0, s, "19 collides at 9 and wraps to 0")

	lines := strings.Split(tbl.Dump(), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "0:(19, y)", lines[0])
	assert.Equal(t, "1:None", lines[1])
	assert.Equal(t, "9:(9, x)", lines[9])
}

func TestOpen_DeleteInsideClusterKeepsLaterKeys(t *testing.T) {
	tbl := newOpen[string, int](t, hashfn.Constant[string](2), hashtable.WithMaxLoadFactor(0.9))
	for i, k := range []string{"a", "b", "c"} {
		_, err := tbl.Set(k, i)
		require.NoError(t, err)
	}
	assert.True(t, tbl.Delete("b"))
	assert.Equal(t, 2, tbl.Len())

	v, ok := tbl.Get("c")
	require.True(t, ok, "c sits behind the deleted slot")
	assert.Equal(t, 2, v)

	_, err := tbl.Set("d", 3)
	require.NoError(t, err)
	s, _ := tbl.SlotOf("d")
	assert.Equal(t, 3, s, "the tombstone is reused")
	assert.Equal(t, 3, tbl.Len())
}

func TestOpen_CollidingKeysFormOneCluster(t *testing.T) {
	tbl := newOpen[int, int](t, hashfn.Probing[int]())
	keys := keygen.MustKeys(keygen.Colliding, 5)
	for _, k := range keys {
		_, err := tbl.Set(k, k)
		require.NoError(t, err)
	}
	for i, k := range keys {
		slot, ok := tbl.SlotOf(k)
		require.True(t, ok)
		assert.Equal(t, i, slot, "key %d", k)
	}
}

func TestOpen_SymbolLabelsHashByOrdinal(t *testing.T) {
	tbl := newOpen[string, int](t, hashfn.Probing[string]())
	labels := keygen.Labels(keygen.MustKeys(keygen.Ascending, 6), keygen.SymbolLabel)
	for i, l := range labels {
		_, err := tbl.Set(l, i)
		require.NoError(t, err)
	}
	// 'A'..'F' are 65..70, so they land in 5..9 and wrap to 0.
	for i, l := range labels {
		slot, ok := tbl.SlotOf(l)
		require.True(t, ok)
		assert.Equal(t, (65+i)%10, slot, l)
	}
}

func TestOpen_DeleteMissKeepsLength(t *testing.T) {
	tbl := newOpen[int, int](t, hashfn.Probing[int]())
	_, _ = tbl.Set(4, 4)
	assert.False(t, tbl.Delete(14))
	assert.False(t, tbl.Delete(5))
	assert.Equal(t, 1, tbl.Len())

	assert.True(t, tbl.Delete(4))
	assert.False(t, tbl.Delete(4))
	assert.Equal(t, 0, tbl.Len())
	_, ok := tbl.Get(4)
	assert.False(t, ok)
}

func TestOpen_FirstWriteWins(t *testing.T) {
	tbl := newOpen[int, string](t, hashfn.Probing[int]())
	ok, _ := tbl.Set(1, "first")
	assert.True(t, ok)
	ok, _ = tbl.Set(1, "second")
	assert.False(t, ok)
	v, _ := tbl.Get(1)
	assert.Equal(t, "first", v)
	assert.Equal(t, 1, tbl.Len())
}

func TestOpen_ProbeExhaustionIsReported(t *testing.T) {
	stuck := hashfn.ProberFunc[int](func(int, int, int) int { return 0 })
	core, logs := observer.New(zap.WarnLevel)
	tbl := newOpen[int, int](t, stuck,
		hashtable.WithMaxLoadFactor(0.9), hashtable.WithLogger(zap.New(core)))

	ok, err := tbl.Set(1, 1)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = tbl.Set(2, 2)
	assert.ErrorIs(t, err, hashtable.ErrCapacityExceeded)
	assert.False(t, ok)
	assert.Equal(t, 1, tbl.Len())
	assert.False(t, tbl.Contains(2))
	assert.Equal(t, 1, logs.FilterMessage("hashtable: probe sequence exhausted").Len())
}

func TestOpen_LoadFactorInvariantAndGrowth(t *testing.T) {
	tbl := newOpen[int, int](t, hashfn.Probing[int](), hashtable.WithMaxLoadFactor(0.75))
	limit := maxLoad(tbl.MaxLoadFactor())
	for k := 0; k < 400; k++ {
		_, err := tbl.Set(k*3, k)
		require.NoError(t, err)
		require.Equal(t, -1, tbl.LoadFactor().Cmp(limit))
	}
	assert.Equal(t, 400, tbl.Len())
	assert.Greater(t, tbl.BinCount(), 400)
}

func TestOpen_RebuildDropsTombstones(t *testing.T) {
	tbl := newOpen[int, int](t, hashfn.Probing[int]())
	for k := 0; k < 6; k++ {
		_, _ = tbl.Set(k, k)
	}
	tbl.Delete(0)
	tbl.Delete(3)

	require.NoError(t, tbl.Rebuild(40))
	assert.Equal(t, 40, tbl.BinCount())
	assert.Equal(t, 4, tbl.Len())
	for _, k := range []int{1, 2, 4, 5} {
		s, ok := tbl.SlotOf(k)
		require.True(t, ok)
		assert.Equal(t, k, s, "each key lands on its home slot")
	}
	assert.Equal(t, 36, strings.Count(tbl.Dump(), ":None"))
}

func TestOpen_RebuildErrors(t *testing.T) {
	tbl := newOpen[int, int](t, hashfn.Probing[int]())
	for k := 0; k < 4; k++ {
		_, _ = tbl.Set(k, k)
	}
	before := tbl.Dump()
	assert.ErrorIs(t, tbl.Rebuild(0), hashtable.ErrInvalidBinCount)
	assert.ErrorIs(t, tbl.Rebuild(4), hashtable.ErrLoadFactorExceeded)
	assert.Equal(t, before, tbl.Dump())
}

func TestOpen_ConstantHashStaysCorrect(t *testing.T) {
	tbl := newOpen[int, int](t, hashfn.Constant[int](5))
	for k := 0; k < 300; k++ {
		_, err := tbl.Set(k, k+1)
		require.NoError(t, err)
	}
	for k := 0; k < 300; k += 3 {
		require.True(t, tbl.Delete(k))
	}
	assert.Equal(t, 200, tbl.Len())
	for k := 0; k < 300; k++ {
		v, ok := tbl.Get(k)
		if k%3 == 0 {
			assert.False(t, ok)
			continue
		}
		require.True(t, ok, "key %d", k)
		assert.Equal(t, k+1, v)
	}
}

func TestOpen_MatchesMap(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	tbl := newOpen[int, int](t, hashfn.Probing[int]())
	ref := map[int]int{}

	for i := 0; i < 5000; i++ {
		k := rng.IntN(300) - 150
		if rng.IntN(3) < 2 {
			_, exists := ref[k]
			ok, err := tbl.Set(k, i)
			require.NoError(t, err)
			require.Equal(t, !exists, ok)
			if !exists {
				ref[k] = i
			}
		} else {
			_, exists := ref[k]
			require.Equal(t, exists, tbl.Delete(k), "Delete(%d)", k)
			delete(ref, k)
		}
		require.Equal(t, len(ref), tbl.Len())
	}

	got := map[int]int{}
	for k, v := range tbl.All() {
		got[k] = v
	}
	assert.Equal(t, ref, got)
}

func TestOpen_LogsRebuild(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	tbl := newOpen[int, int](t, hashfn.Probing[int](),
		hashtable.WithBinCount(4), hashtable.WithMaxLoadFactor(0.5), hashtable.WithLogger(zap.New(core)))
	for k := 0; k < 2; k++ {
		_, _ = tbl.Set(k, k)
	}
	assert.Equal(t, 8, tbl.BinCount())
	assert.Equal(t, 1, logs.FilterMessage("hashtable: open rebuild").Len())
}
