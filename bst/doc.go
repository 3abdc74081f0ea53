// Package bst implements an unbalanced, parent-linked binary search tree
// dictionary.
//
// What
//
//   - Keys are ordered with cmp.Compare; every key in a node's left subtree
//     is smaller and every key in its right subtree is larger.
//   - Set is first-write-wins, like every assoc.Dict.
//   - Delete follows the textbook transplant scheme: a node with at most one
//     child is replaced by that child; a node with two children is replaced
//     by its in-order successor (the minimum of its right subtree).
//   - InOrder, PreOrder and PostOrder are lazy iter.Seq2 producers; Items is
//     InOrder.
//
// Why iterative
//
//	No balancing is performed, so sorted insertions build a linked list of
//	depth n. Search, insertion, traversal and Height all use loops and
//	explicit stacks; call depth stays constant whatever the tree shape.
//
// Height
//
//	Height counts edges on the longest root-to-leaf path: 0 for an empty tree
//	and for a single node, 2 for the chain 1 -> 6 -> 3.
//
// Complexity (h = height, n = Len)
//
//   - Get/Set/Delete/Contains: O(h), O(n) worst case.
//   - Traversals/Height:       O(n) time, O(h) extra space.
//
// Trees are not safe for concurrent use.
package bst
