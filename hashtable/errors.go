// SPDX-License-Identifier: MIT
// Package: assoc/hashtable
//
// errors.go - sentinel errors for the hashtable package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Methods add context with %w ("Rebuild: ...: <sentinel>").
//   • A missing key is not an error: Get/Contains/Delete report it through
//     their boolean result.

package hashtable

import "errors"

// ErrInvalidBinCount indicates a bin count that is not strictly positive.
var ErrInvalidBinCount = errors.New("hashtable: bin count must be positive")

// ErrInvalidLoadFactor indicates a maximum load factor outside (0, 1).
var ErrInvalidLoadFactor = errors.New("hashtable: max load factor must be in (0, 1)")

// ErrNilHasher indicates a nil Hasher or Prober was passed to a constructor.
var ErrNilHasher = errors.New("hashtable: hash strategy is nil")

// ErrCapacityExceeded indicates a probe sequence visited every slot without
// finding a free one. It should not happen while the load factor is enforced,
// but a Prober that does not cover all slots can trigger it.
var ErrCapacityExceeded = errors.New("hashtable: no free slot on probe sequence")

// ErrLoadFactorExceeded indicates Rebuild was asked for a capacity that
// cannot hold the current entries under the maximum load factor.
var ErrLoadFactorExceeded = errors.New("hashtable: bin count too small for current entries")

// ErrUnknownStrategy indicates a Config names a hash strategy this package
// does not know.
var ErrUnknownStrategy = errors.New("hashtable: unknown hash strategy")
