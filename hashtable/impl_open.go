// SPDX-License-Identifier: MIT
// Package: assoc/hashtable
//
// impl_open.go - open-addressing dictionary with a pluggable probe sequence.
//
// Design:
//   • Each slot is empty, occupied, or deleted (a tombstone).
//   • Insertion takes the first non-occupied slot on the key's probe
//     sequence; lookups walk the same sequence, skip tombstones, and stop at
//     the first never-used slot. Deleting therefore never hides keys that
//     were placed further along a cluster.
//   • Every walk is a bounded loop of at most binCount probes.
//   • Rebuild re-probes live pairs into a fresh array and drops tombstones.
//   • Tombstones count toward the resize threshold. When live pairs alone
//     still fit, Set rebuilds at the same capacity to clear them, so every
//     probe walk keeps meeting empty slots.

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
)

var _ assoc.Dict[int, int] = (*Open[int, int])(nil)

type slotState uint8

const (
	slotEmpty slotState = iota
	slotOccupied
	slotDeleted
)

type slot[K comparable, V any] struct {
	pair  assoc.Pair[K, V]
	state slotState
}

// Open is a hash dictionary resolving collisions by open addressing.
type Open[K comparable, V any] struct {
	slots   []slot[K, V]
	length  int
	deleted int // tombstoned slots
	prober  hashfn.Prober[K]
	load    loadPolicy
	log     *zap.Logger
}

// NewOpen creates an empty open-addressing table using prober.
//
// Errors:
//   - ErrNilHasher if prober is nil.
//   - ErrInvalidBinCount / ErrInvalidLoadFactor from options.
func NewOpen[K comparable, V any](prober hashfn.Prober[K], opts ...Option) (*Open[K, V], error) {
	if prober == nil {
		return nil, fmt.Errorf("NewOpen: %w", ErrNilHasher)
	}
	o, err := newOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("NewOpen: %w", err)
	}
	return &Open[K, V]{
		slots:  make([]slot[K, V], o.binCount),
		prober: prober,
		load:   newLoadPolicy(o.maxLoad),
		log:    o.logger,
	}, nil
}

// Len returns the number of stored pairs.
func (t *Open[K, V]) Len() int { return t.length }

// BinCount returns the current number of slots.
func (t *Open[K, V]) BinCount() int { return len(t.slots) }

// MaxLoadFactor returns the configured resize threshold.
func (t *Open[K, V]) MaxLoadFactor() float64 { return t.load.max }

// LoadFactor returns length/binCount exactly.
func (t *Open[K, V]) LoadFactor() *big.Rat { return ratio(t.length, len(t.slots)) }

// probeForSlot returns the first slot on key's probe sequence that is not
// occupied. It gives up after len(slots) probes.
func (t *Open[K, V]) probeForSlot(slots []slot[K, V], key K) (int, error) {
	n := len(slots)
	for probe := 0; probe < n; probe++ {
		i := hashfn.Index(t.prober.Probe(key, probe, n), n)
		if slots[i].state != slotOccupied {
			return i, nil
		}
	}
	return -1, ErrCapacityExceeded
}

// search returns the slot holding key.
func (t *Open[K, V]) search(key K) (int, bool) {
	n := len(t.slots)
	for probe := 0; probe < n; probe++ {
		i := hashfn.Index(t.prober.Probe(key, probe, n), n)
		switch s := &t.slots[i]; s.state {
		case slotEmpty:
			return -1, false
		case slotOccupied:
			if s.pair.Key == key {
				return i, true
			}
		}
	}
	return -1, false
}

// Contains reports whether key is stored.
func (t *Open[K, V]) Contains(key K) bool {
	_, ok := t.search(key)
	return ok
}

// Get returns the value stored under key.
func (t *Open[K, V]) Get(key K) (V, bool) {
	if i, ok := t.search(key); ok {
		return t.slots[i].pair.Value, true
	}
	var zero V
	return zero, false
}

// SlotOf returns the slot index key currently occupies.
func (t *Open[K, V]) SlotOf(key K) (int, bool) {
	return t.search(key)
}

// Set inserts (key, value) unless key is already present (first write wins).
// When live pairs plus tombstones would reach the maximum load factor the
// table is rebuilt first: doubled if the live pairs need it, otherwise at the
// same capacity to clear tombstones.
//
// Errors:
//   - ErrCapacityExceeded if the probe sequence found no free slot.
func (t *Open[K, V]) Set(key K, value V) (bool, error) {
	if t.Contains(key) {
		return false, nil
	}
	if !t.load.fits(t.length+t.deleted+1, len(t.slots)) {
		if err := t.Rebuild(t.load.grownBins(t.length+1, len(t.slots))); err != nil {
			return false, fmt.Errorf("Set: %w", err)
		}
	}
	i, err := t.probeForSlot(t.slots, key)
	if err != nil {
		t.log.Warn("hashtable: probe sequence exhausted",
			zap.Int("bins", len(t.slots)),
			zap.Int("entries", t.length),
		)
		return false, fmt.Errorf("Set(%v): %w", key, err)
	}
	if t.slots[i].state == slotDeleted {
		t.deleted--
	}
	t.slots[i] = slot[K, V]{pair: assoc.Pair[K, V]{Key: key, Value: value}, state: slotOccupied}
	t.length++
	return true, nil
}

// Delete removes key, leaving a tombstone in its slot.
func (t *Open[K, V]) Delete(key K) bool {
	i, ok := t.search(key)
	if !ok {
		return false
	}
	t.slots[i] = slot[K, V]{state: slotDeleted}
	t.length--
	t.deleted++
	return true
}

// Rebuild re-probes every live pair into newBinCount slots. On error the
// table is left untouched.
//
// Errors:
//   - ErrInvalidBinCount if newBinCount <= 0.
//   - ErrLoadFactorExceeded if the current pairs would not fit.
//   - ErrCapacityExceeded if the prober could not place a pair.
func (t *Open[K, V]) Rebuild(newBinCount int) error {
	if newBinCount <= 0 {
		return fmt.Errorf("Rebuild(%d): %w", newBinCount, ErrInvalidBinCount)
	}
	if !t.load.fits(t.length, newBinCount) {
		return fmt.Errorf("Rebuild(%d): %d entries: %w", newBinCount, t.length, ErrLoadFactorExceeded)
	}

	slots := make([]slot[K, V], newBinCount)
	count := 0
	for _, s := range t.slots {
		if s.state != slotOccupied {
			continue
		}
		i, err := t.probeForSlot(slots, s.pair.Key)
		if err != nil {
			t.log.Warn("hashtable: rebuild could not place key",
				zap.Int("to", newBinCount),
				zap.Int("placed", count),
			)
			return fmt.Errorf("Rebuild(%d): %w", newBinCount, err)
		}
		slots[i] = s
		count++
	}

	t.log.Debug("hashtable: open rebuild",
		zap.Int("from", len(t.slots)),
		zap.Int("to", newBinCount),
		zap.Int("entries", count),
		zap.Int("tombstones", t.deleted),
	)
	t.slots = slots
	t.length = count
	t.deleted = 0
	return nil
}

// All yields pairs in slot order.
func (t *Open[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, s := range t.slots {
			if s.state != slotOccupied {
				continue
			}
			if !yield(s.pair.Key, s.pair.Value) {
				return
			}
		}
	}
}

// Dump renders one line per slot: "i:None" or "i:(k, v)". Tombstones
// render as None.
func (t *Open[K, V]) Dump() string {
	var sb strings.Builder
	for i, s := range t.slots {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(strconv.Itoa(i))
		sb.WriteByte(':')
		if s.state != slotOccupied {
			sb.WriteString(noneCell)
			continue
		}
		sb.WriteString(s.pair.String())
	}
	return sb.String()
}
