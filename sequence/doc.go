// Package sequence provides a generic singly linked list that never holds two
// equal items.
//
// What
//
//   - Prepend inserts at the head only when the item is absent, so the most
//     recently added item always comes first.
//   - Remove unlinks the first equal item, patching either the predecessor's
//     link or the head.
//   - All yields items head to tail as a lazy, single-pass iter.Seq.
//
// Equality is == for New, or a caller-supplied function for NewFunc. The
// hashtable package uses NewFunc to build buckets of key-value pairs that
// compare by key only.
//
// Complexity
//
//   - Len:                      O(1)
//   - Contains/Prepend/Remove:  O(n) (linear scan for uniqueness)
//   - All:                      O(n) over the whole iteration
//
// Iterating a Sequence while mutating it is undefined.
package sequence
