package bst

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

// checkLinks verifies ordering bounds and parent back references for the
// whole tree and returns the node count.
func checkLinks(t *testing.T, tr *Tree[int, int]) int {
	t.Helper()
	type frame struct {
		n      *Node[int, int]
		lo, hi int
	}
	if tr.root != nil {
		require.Nil(t, tr.root.parent, "root has no parent")
	}
	count := 0
	stack := []frame{{tr.root, -1 << 62, 1 << 62}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.n == nil {
			continue
		}
		count++
		require.Greater(t, f.n.key, f.lo)
		require.Less(t, f.n.key, f.hi)
		if f.n.left != nil {
			require.Same(t, f.n, f.n.left.parent)
		}
		if f.n.right != nil {
			require.Same(t, f.n, f.n.right.parent)
		}
		stack = append(stack, frame{f.n.left, f.lo, f.n.key}, frame{f.n.right, f.n.key, f.hi})
	}
	return count
}

func TestTree_LinksStayConsistent(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 8))
	tr := New[int, int]()
	for i := 0; i < 3000; i++ {
		k := rng.IntN(200)
		if rng.IntN(5) < 3 {
			_, _ = tr.Set(k, i)
		} else {
			tr.Delete(k)
		}
		require.Equal(t, tr.length, checkLinks(t, tr))
	}
}

func TestTransplant_Root(t *testing.T) {
	tr := New[int, int]()
	_, _ = tr.Set(2, 0)
	_, _ = tr.Set(1, 0)
	left := tr.root.left

	tr.transplant(tr.root, left)
	require.Same(t, left, tr.root)
	require.Nil(t, left.parent)
}

func TestTreeMinimum(t *testing.T) {
	tr := New[int, int]()
	for _, k := range []int{8, 4, 12, 2, 6, 1} {
		_, _ = tr.Set(k, k)
	}
	require.Equal(t, 1, treeMinimum(tr.root).key)
	require.Equal(t, 6, treeMinimum(tr.root.left.right).key)
	require.Equal(t, 12, treeMaximum(tr.root).key)
	require.Nil(t, searchNode(tr.root, 7))
	require.Equal(t, 6, searchNode(tr.root, 6).key)
}
