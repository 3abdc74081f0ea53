// Package hashfn defines the hash strategies injected into hashtable
// containers.
//
// Two call shapes exist, one per addressing scheme:
//
//	Hasher[K]: Hash(key, binCount) int          // separate chaining
//	Prober[K]: Probe(key, probe, binCount) int  // open addressing
//
// Provided strategies:
//
//   - Chaining[K]():        numeric keys map to key mod binCount, single-rune
//     strings to their ordinal mod binCount, anything else
//     to xxhash64 mod binCount.
//   - LinearProbing(base):  (base.Hash(key, n) + probe) mod n. For probe in
//     [0, n) this visits every slot exactly once.
//   - Constant[K](bin):     always the same bin. It is both a Hasher and a
//     Prober and exists to stress collision handling: containers stay correct
//     but degrade to O(n) per operation.
//
// Indices returned by user strategies may fall outside [0, binCount);
// containers fold them back with Index.
package hashfn
