// Package hashtable provides two hash dictionaries over a pluggable
// hashfn strategy: Chained (separate chaining on sequence buckets) and Open
// (open addressing, linear probing by default).
//
// What
//
//   - Set is first-write-wins: an existing key keeps its value and Set
//     reports false. This is deliberate and observable.
//   - Delete changes Len only when a pair was actually removed.
//   - Before an insert would make Len/BinCount reach MaxLoadFactor, the table
//     doubles its capacity and rehashes, so Len/BinCount < MaxLoadFactor
//     holds after every successful Set.
//   - Rebuild(n) relocates every pair to an n-bin array and recounts Len.
//   - LoadFactor is exact (*big.Rat).
//   - Dump prints one line per bin ("3:None", "4:(4, x)->(14, y)").
//
// Open addressing
//
//	Probe sequences are walked by bounded loops (at most BinCount probes), so
//	a Prober that cannot find a free slot yields ErrCapacityExceeded rather
//	than spinning. Deleted slots keep a tombstone so keys further along a
//	cluster stay reachable; Rebuild clears tombstones. Tombstones count
//	toward MaxLoadFactor, so insert/delete churn triggers a same-size
//	Rebuild instead of filling the table with them.
//
// Options
//
//   - WithBinCount(n)         initial bins (default 10).
//   - WithMaxLoadFactor(f)    0 < f < 1 (default 0.7).
//   - WithLogger(l)           zap logger for rebuild/capacity events.
//
// Config files (TOML) map onto the same knobs; see Config.
//
// Complexity (n = Len, b = BinCount, good hash)
//
//   - Get/Set/Delete/Contains: O(1) expected, O(n) with a constant hash.
//   - Rebuild:                 O(n + b).
//   - Set:                     amortized O(1) including doubling.
//
// Errors
//
//   - ErrInvalidBinCount, ErrInvalidLoadFactor, ErrNilHasher  (configuration)
//   - ErrCapacityExceeded                                     (probe exhausted)
//   - ErrLoadFactorExceeded                                   (Rebuild too small)
//   - ErrUnknownStrategy                                      (Config)
//
// Tables are not safe for concurrent use.
package hashtable
