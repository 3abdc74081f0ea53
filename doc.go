// Package assoc is a small in-memory playground of associative containers:
// a uniqueness-checked linked list, two hash dictionaries and an unbalanced
// binary search tree, all speaking the same key-value contract.
//
// What is in the box?
//
//	A pure-Go, single-threaded library that brings together:
//		• sequence/  - singly linked list that refuses duplicate items
//		• hashtable/ - separate chaining (Chained) and linear probing (Open)
//		• bst/       - parent-linked binary search tree with lazy traversals
//		• hashfn/    - pluggable hash strategies (chaining, probing, constant)
//		• keygen/    - deterministic key orders for tests and benchmarks
//		• cmd/assoc  - replays TOML workloads against any of the above
//
// Every dictionary implements Dict:
//
//	d.Set(k, v)      // first write wins; re-setting a key is a no-op
//	d.Get(k)         // (value, true) or (zero, false)
//	d.Delete(k)      // no-op for absent keys
//	d.Contains(k)
//	d.Len()
//	d.Dump()         // diagnostic rendering, not a wire format
//
// Quick ASCII example of a chained table with bin_count=4:
//
//	0:(8, a)->(4, b)
//	1:None
//	2:(2, c)
//	3:None
//
// None of the containers are safe for concurrent mutation.
//
//	go get github.com/katalvlaran/assoc
package assoc
