// Package keygen produces deterministic key orders for exercising the
// containers in this module: sorted runs that degrade a binary search tree
// into a list, zigzags, seeded shuffles, and colliding runs that pile keys
// into one hash bin.
//
// Determinism
//
//	Same order, size, options and seed ⇒ same keys. Shuffled requires an RNG
//	(WithSeed or WithRand); every other order is RNG-free.
//
// Orders
//
//   - Ascending:  start, start+step, ...
//   - Descending: the reverse of Ascending.
//   - Zigzag:     lowest, highest, second lowest, second highest, ...
//   - Shuffled:   a seeded permutation of Ascending.
//   - Colliding:  start, start+m, start+2m, ... for modulus m (WithModulus),
//     so key mod m is constant.
//
// Usage
//
//	keys, err := keygen.Keys(keygen.Shuffled, 1000, keygen.WithSeed(42))
//	labels := keygen.Labels(keys, keygen.ExcelColumnLabel)
//
// Errors
//
//   - ErrBadSize          if n < 0.
//   - ErrUnknownOrder     if the order name is not recognised.
//   - ErrNeedRandSource   if Shuffled is requested without an RNG.
//   - ErrOptionViolation  if WithStep(0) is combined with n > 1.
//
// Label functions (DecimalLabel, SymbolLabel, ...) panic on keys outside
// their domain, like option constructors.
package keygen
