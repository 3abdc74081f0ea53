// SPDX-License-Identifier: MIT
// Package: assoc/keygen
//
// api.go - public entry points.

package keygen

import (
	"fmt"
	"strings"
)

// Order names a key ordering.
type Order string

// Supported orders.
const (
	Ascending  Order = "ascending"
	Descending Order = "descending"
	Zigzag     Order = "zigzag"
	Shuffled   Order = "shuffled"
	Colliding  Order = "colliding"
)

// Method names used in error context.
const (
	methodKeys       = "Keys"
	methodParseOrder = "ParseOrder"
)

// Orders lists every supported order in a stable sequence.
func Orders() []Order {
	return []Order{Ascending, Descending, Zigzag, Shuffled, Colliding}
}

// ParseOrder resolves a case-insensitive order name.
func ParseOrder(name string) (Order, error) {
	o := Order(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Orders() {
		if o == known {
			return o, nil
		}
	}
	return "", keygenErrorf(methodParseOrder, ErrUnknownOrder, "%q", name)
}

// Keys returns n distinct keys in the requested order.
//
// Errors:
//   - ErrBadSize          if n < 0.
//   - ErrOptionViolation  if step is 0 and n > 1.
//   - ErrNeedRandSource   for Shuffled without an RNG.
//   - ErrUnknownOrder     for an unrecognised order.
func Keys(order Order, n int, opts ...Option) ([]int, error) {
	if n < 0 {
		return nil, keygenErrorf(methodKeys, ErrBadSize, "n=%d", n)
	}
	cfg := newConfig(opts...)
	if cfg.step == 0 && n > 1 {
		return nil, keygenErrorf(methodKeys, ErrOptionViolation, "step=0 repeats keys")
	}

	switch order {
	case Ascending:
		return ascending(cfg, n), nil
	case Descending:
		return descending(cfg, n), nil
	case Zigzag:
		return zigzag(cfg, n), nil
	case Shuffled:
		if cfg.rng == nil {
			return nil, keygenErrorf(methodKeys, ErrNeedRandSource, "order=%s", order)
		}
		return shuffled(cfg, n), nil
	case Colliding:
		return colliding(cfg, n), nil
	}
	return nil, keygenErrorf(methodKeys, ErrUnknownOrder, "%q", string(order))
}

// MustKeys is Keys for fixtures; it panics on error.
func MustKeys(order Order, n int, opts ...Option) []int {
	keys, err := Keys(order, n, opts...)
	if err != nil {
		panic(fmt.Sprintf("keygen: MustKeys: %v", err))
	}
	return keys
}
