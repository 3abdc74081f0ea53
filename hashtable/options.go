// SPDX-License-Identifier: MIT
// Package: assoc/hashtable
//
// options.go - functional options shared by Chained and Open.
//
// Contract:
//   • Options apply in order; later options override earlier ones.
//   • Out-of-range numbers are recorded and surfaced by the constructor as
//     ErrInvalidBinCount / ErrInvalidLoadFactor (never a panic).
//   • A nil logger is a programmer error and panics in WithLogger.

package hashtable

import (
	"fmt"
	"math/big"

	"go.uber.org/zap"
)

// Defaults follow the classic textbook table: ten bins, 70% full at most.
const (
	DefaultBinCount      = 10
	DefaultMaxLoadFactor = 0.7
)

// Option customizes a table before construction.
type Option func(*options)

type options struct {
	binCount int
	maxLoad  float64
	logger   *zap.Logger

	// first validation failure; reported by the constructor
	err error
}

func defaultOptions() options {
	return options{
		binCount: DefaultBinCount,
		maxLoad:  DefaultMaxLoadFactor,
		logger:   zap.NewNop(),
	}
}

func newOptions(opts ...Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// WithBinCount sets the initial number of bins (> 0).
func WithBinCount(n int) Option {
	return func(o *options) {
		if n <= 0 {
			o.fail(fmt.Errorf("WithBinCount(%d): %w", n, ErrInvalidBinCount))
			return
		}
		o.binCount = n
	}
}

// WithMaxLoadFactor sets the resize threshold, strictly between 0 and 1.
func WithMaxLoadFactor(f float64) Option {
	return func(o *options) {
		if !(f > 0 && f < 1) {
			o.fail(fmt.Errorf("WithMaxLoadFactor(%v): %w", f, ErrInvalidLoadFactor))
			return
		}
		o.maxLoad = f
	}
}

// WithLogger attaches a zap logger for rebuild and capacity diagnostics.
// Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("hashtable: WithLogger(nil)")
	}
	return func(o *options) { o.logger = l }
}

func (o *options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

// loadPolicy holds the exact maximum load factor and answers threshold
// questions without float rounding.
type loadPolicy struct {
	max    float64
	maxRat *big.Rat
}

func newLoadPolicy(max float64) loadPolicy {
	return loadPolicy{max: max, maxRat: new(big.Rat).SetFloat64(max)}
}

// fits reports whether entries/bins < max.
func (p loadPolicy) fits(entries, bins int) bool {
	return ratio(entries, bins).Cmp(p.maxRat) < 0
}

// grownBins doubles bins until entries fit.
func (p loadPolicy) grownBins(entries, bins int) int {
	for !p.fits(entries, bins) {
		bins *= 2
	}
	return bins
}

func ratio(n, d int) *big.Rat {
	return new(big.Rat).SetFrac64(int64(n), int64(d))
}
