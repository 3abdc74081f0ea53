package bst

import (
	"fmt"
	"iter"
)

// InOrder yields pairs in ascending key order.
func (t *Tree[K, V]) InOrder() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		var stack []*Node[K, V]
		n := t.root
		for n != nil || len(stack) > 0 {
			for n != nil {
				stack = append(stack, n)
				n = n.left
			}
			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n.key, n.value) {
				return
			}
			n = n.right
		}
	}
}

// PreOrder yields each node before its left then right subtree.
func (t *Tree[K, V]) PreOrder() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t.root == nil {
			return
		}
		stack := []*Node[K, V]{t.root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n.key, n.value) {
				return
			}
			// right first so left is popped first
			if n.right != nil {
				stack = append(stack, n.right)
			}
			if n.left != nil {
				stack = append(stack, n.left)
			}
		}
	}
}

// PostOrder yields each node after its left and right subtrees.
func (t *Tree[K, V]) PostOrder() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		var (
			stack []*Node[K, V]
			last  *Node[K, V]
		)
		n := t.root
		for n != nil || len(stack) > 0 {
			if n != nil {
				stack = append(stack, n)
				n = n.left
				continue
			}
			top := stack[len(stack)-1]
			if top.right != nil && top.right != last {
				n = top.right
				continue
			}
			if !yield(top.key, top.value) {
				return
			}
			last = top
			stack = stack[:len(stack)-1]
		}
	}
}

// Items is InOrder.
func (t *Tree[K, V]) Items() iter.Seq2[K, V] { return t.InOrder() }

// All is InOrder; it mirrors the hashtable iteration API.
func (t *Tree[K, V]) All() iter.Seq2[K, V] { return t.InOrder() }

// Keys returns the keys in order.
func (t *Tree[K, V]) Keys() []K { return collectKeys(t.InOrder(), t.length) }

// PreOrderKeys returns the keys in pre-order.
func (t *Tree[K, V]) PreOrderKeys() []K { return collectKeys(t.PreOrder(), t.length) }

// PostOrderKeys returns the keys in post-order.
func (t *Tree[K, V]) PostOrderKeys() []K { return collectKeys(t.PostOrder(), t.length) }

// Dump prints the in-order keys on the first line and the pre-order keys on
// the second, e.g. "[1 3 6]\n[1 6 3]".
func (t *Tree[K, V]) Dump() string {
	return fmt.Sprint(t.Keys()) + "\n" + fmt.Sprint(t.PreOrderKeys())
}

func collectKeys[K, V any](seq iter.Seq2[K, V], hint int) []K {
	keys := make([]K, 0, hint)
	for k := range seq {
		keys = append(keys, k)
	}
	return keys
}
