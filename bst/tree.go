package bst

import (
	"cmp"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/assoc"
)

var _ assoc.Dict[int, int] = (*Tree[int, int])(nil)

// Node is one key-value pair in the tree.
// Children are owned by their parent; parent is a back reference used only
// for navigation during deletion.
type Node[K cmp.Ordered, V any] struct {
	key    K
	value  V
	left   *Node[K, V]
	right  *Node[K, V]
	parent *Node[K, V]
}

// Key returns the node's key.
func (n *Node[K, V]) Key() K { return n.key }

// Value returns the node's value.
func (n *Node[K, V]) Value() V { return n.value }

// Option configures a Tree.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger attaches a zap logger; structural deletions are logged at
// Debug. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("bst: WithLogger(nil)")
	}
	return func(o *options) { o.logger = l }
}

// Tree is a binary search tree dictionary.
type Tree[K cmp.Ordered, V any] struct {
	root   *Node[K, V]
	length int
	log    *zap.Logger
}

// New returns an empty tree.
func New[K cmp.Ordered, V any](opts ...Option) *Tree[K, V] {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Tree[K, V]{log: o.logger}
}

// Len returns the number of stored pairs.
func (t *Tree[K, V]) Len() int { return t.length }

// Root returns the root node, or nil for an empty tree.
func (t *Tree[K, V]) Root() *Node[K, V] { return t.root }

// searchNode descends from n toward key and returns the matching node.
func searchNode[K cmp.Ordered, V any](n *Node[K, V], key K) *Node[K, V] {
	for n != nil {
		switch c := cmp.Compare(key, n.key); {
		case c == 0:
			return n
		case c < 0:
			n = n.left
		default:
			n = n.right
		}
	}
	return nil
}

// treeMinimum returns the leftmost node under n.
func treeMinimum[K cmp.Ordered, V any](n *Node[K, V]) *Node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func treeMaximum[K cmp.Ordered, V any](n *Node[K, V]) *Node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// Contains reports whether key is stored.
func (t *Tree[K, V]) Contains(key K) bool {
	return searchNode(t.root, key) != nil
}

// Get returns the value stored under key.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	if n := searchNode(t.root, key); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

// Set inserts (key, value) unless key is present; an existing key keeps its
// value and Set reports false. The error is always nil and exists to satisfy
// assoc.Dict.
func (t *Tree[K, V]) Set(key K, value V) (bool, error) {
	var parent *Node[K, V]
	for cur := t.root; cur != nil; {
		parent = cur
		switch c := cmp.Compare(key, cur.key); {
		case c == 0:
			return false, nil
		case c < 0:
			cur = cur.left
		default:
			cur = cur.right
		}
	}

	n := &Node[K, V]{key: key, value: value, parent: parent}
	switch {
	case parent == nil:
		t.root = n
	case cmp.Less(key, parent.key):
		parent.left = n
	default:
		parent.right = n
	}
	t.length++
	return true, nil
}

// transplant replaces the subtree rooted at u with the subtree rooted at v.
func (t *Tree[K, V]) transplant(u, v *Node[K, V]) {
	switch {
	case u.parent == nil:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	if v != nil {
		v.parent = u.parent
	}
}

// Delete removes key and reports whether it was present.
func (t *Tree[K, V]) Delete(key K) bool {
	z := searchNode(t.root, key)
	if z == nil {
		return false
	}

	switch {
	case z.left == nil:
		t.transplant(z, z.right)
	case z.right == nil:
		t.transplant(z, z.left)
	default:
		y := treeMinimum(z.right)
		if y.parent != z {
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		t.log.Debug("bst: replaced by successor",
			zap.String("key", fmt.Sprint(key)),
			zap.String("successor", fmt.Sprint(y.key)),
		)
	}
	z.left, z.right, z.parent = nil, nil, nil
	t.length--
	return true
}

// Min returns the smallest pair.
func (t *Tree[K, V]) Min() (assoc.Pair[K, V], bool) {
	if t.root == nil {
		return assoc.Pair[K, V]{}, false
	}
	n := treeMinimum(t.root)
	return assoc.Pair[K, V]{Key: n.key, Value: n.value}, true
}

// Max returns the largest pair.
func (t *Tree[K, V]) Max() (assoc.Pair[K, V], bool) {
	if t.root == nil {
		return assoc.Pair[K, V]{}, false
	}
	n := treeMaximum(t.root)
	return assoc.Pair[K, V]{Key: n.key, Value: n.value}, true
}

// Height returns the number of edges on the longest root-to-leaf path, so
// an empty tree and a single node both report 0 and inserting 1, 6, 3
// (a three-node chain) reports 2. Callers that want the node count along
// that path add 1 for a non-empty tree. It walks the tree level by level.
func (t *Tree[K, V]) Height() int {
	if t.root == nil {
		return 0
	}
	levels := 0
	level := []*Node[K, V]{t.root}
	for len(level) > 0 {
		levels++
		var next []*Node[K, V]
		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		level = next
	}
	return levels - 1
}
