// SPDX-License-Identifier: MIT
// Package: assoc/hashtable
//
// impl_chained.go - separate-chaining dictionary built on sequence buckets.
//
// Invariants:
//   • bins[i] is nil or a non-empty Sequence of pairs with distinct keys.
//   • Every key k lives in bins[Index(hasher.Hash(k, len(bins)))].
//   • length/len(bins) < maxLoad after every successful Set or Rebuild.

package hashtable

import (
	"fmt"
	"iter"
	"math/big"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/assoc"
	"github.com/katalvlaran/assoc/hashfn"
	"github.com/katalvlaran/assoc/sequence"
)

var _ assoc.Dict[int, int] = (*Chained[int, int])(nil)

// Chained is a hash dictionary resolving collisions by separate chaining.
// Each bin owns a sequence of pairs; new pairs are prepended.
type Chained[K comparable, V any] struct {
	bins   []*sequence.Sequence[assoc.Pair[K, V]]
	length int
	hasher hashfn.Hasher[K]
	load   loadPolicy
	log    *zap.Logger
}

// NewChained creates an empty chained table using hasher.
//
// Errors:
//   - ErrNilHasher if hasher is nil.
//   - ErrInvalidBinCount / ErrInvalidLoadFactor from options.
func NewChained[K comparable, V any](hasher hashfn.Hasher[K], opts ...Option) (*Chained[K, V], error) {
	if hasher == nil {
		return nil, fmt.Errorf("NewChained: %w", ErrNilHasher)
	}
	o, err := newOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("NewChained: %w", err)
	}
	return &Chained[K, V]{
		bins:   make([]*sequence.Sequence[assoc.Pair[K, V]], o.binCount),
		hasher: hasher,
		load:   newLoadPolicy(o.maxLoad),
		log:    o.logger,
	}, nil
}

// Len returns the number of stored pairs.
func (t *Chained[K, V]) Len() int { return t.length }

// BinCount returns the current number of bins.
func (t *Chained[K, V]) BinCount() int { return len(t.bins) }

// MaxLoadFactor returns the configured resize threshold.
func (t *Chained[K, V]) MaxLoadFactor() float64 { return t.load.max }

// LoadFactor returns length/binCount exactly.
func (t *Chained[K, V]) LoadFactor() *big.Rat { return ratio(t.length, len(t.bins)) }

func (t *Chained[K, V]) index(key K, binCount int) int {
	return hashfn.Index(t.hasher.Hash(key, binCount), binCount)
}

func (t *Chained[K, V]) find(key K) (assoc.Pair[K, V], bool) {
	b := t.bins[t.index(key, len(t.bins))]
	if b == nil {
		return assoc.Pair[K, V]{}, false
	}
	return b.Find(func(p assoc.Pair[K, V]) bool { return p.Key == key })
}

// Contains reports whether key is stored.
func (t *Chained[K, V]) Contains(key K) bool {
	_, ok := t.find(key)
	return ok
}

// Get returns the value stored under key.
func (t *Chained[K, V]) Get(key K) (V, bool) {
	p, ok := t.find(key)
	return p.Value, ok
}

// Set inserts (key, value) unless key is already present, in which case the
// stored value is kept and Set returns false. The table doubles first when
// the new pair would reach the maximum load factor.
func (t *Chained[K, V]) Set(key K, value V) (bool, error) {
	if t.Contains(key) {
		return false, nil
	}
	if !t.load.fits(t.length+1, len(t.bins)) {
		if err := t.Rebuild(t.load.grownBins(t.length+1, len(t.bins))); err != nil {
			return false, fmt.Errorf("Set: %w", err)
		}
	}
	i := t.index(key, len(t.bins))
	if t.bins[i] == nil {
		t.bins[i] = newBucket[K, V]()
	}
	t.bins[i].Prepend(assoc.Pair[K, V]{Key: key, Value: value})
	t.length++
	return true, nil
}

// Delete removes key. Length changes only when a pair was actually unlinked.
func (t *Chained[K, V]) Delete(key K) bool {
	i := t.index(key, len(t.bins))
	b := t.bins[i]
	if b == nil {
		return false
	}
	if _, ok := b.RemoveFunc(func(p assoc.Pair[K, V]) bool { return p.Key == key }); !ok {
		return false
	}
	if b.Len() == 0 {
		t.bins[i] = nil
	}
	t.length--
	return true
}

// Rebuild rehashes every pair into newBinCount bins. The old bins are
// replaced only after all pairs were placed, and length is recounted.
//
// Errors:
//   - ErrInvalidBinCount if newBinCount <= 0.
//   - ErrLoadFactorExceeded if the current pairs would not fit.
func (t *Chained[K, V]) Rebuild(newBinCount int) error {
	if newBinCount <= 0 {
		return fmt.Errorf("Rebuild(%d): %w", newBinCount, ErrInvalidBinCount)
	}
	if !t.load.fits(t.length, newBinCount) {
		return fmt.Errorf("Rebuild(%d): %d entries: %w", newBinCount, t.length, ErrLoadFactorExceeded)
	}

	bins := make([]*sequence.Sequence[assoc.Pair[K, V]], newBinCount)
	count := 0
	for _, b := range t.bins {
		if b == nil {
			continue
		}
		for p := range b.All() {
			i := t.index(p.Key, newBinCount)
			if bins[i] == nil {
				bins[i] = newBucket[K, V]()
			}
			if bins[i].Prepend(p) {
				count++
			}
		}
	}

	t.log.Debug("hashtable: chained rebuild",
		zap.Int("from", len(t.bins)),
		zap.Int("to", newBinCount),
		zap.Int("entries", count),
	)
	t.bins = bins
	t.length = count
	return nil
}

// All yields pairs in bin order, each bin head to tail.
func (t *Chained[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, b := range t.bins {
			if b == nil {
				continue
			}
			for p := range b.All() {
				if !yield(p.Key, p.Value) {
					return
				}
			}
		}
	}
}

// Dump renders one line per bin: "i:None" or "i:(k, v)->(k, v)".
func (t *Chained[K, V]) Dump() string {
	var sb strings.Builder
	for i, b := range t.bins {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(strconv.Itoa(i))
		sb.WriteByte(':')
		if b == nil {
			sb.WriteString(noneCell)
			continue
		}
		sb.WriteString(b.Join())
	}
	return sb.String()
}

// noneCell marks an empty bin or slot in Dump output.
const noneCell = "None"

func newBucket[K comparable, V any]() *sequence.Sequence[assoc.Pair[K, V]] {
	return sequence.NewFunc(func(a, b assoc.Pair[K, V]) bool { return a.Key == b.Key })
}
