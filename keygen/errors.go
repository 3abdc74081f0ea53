// SPDX-License-Identifier: MIT
// Package: assoc/keygen
//
// errors.go - sentinel errors for the keygen package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with keygenErrorf (wraps via %w).
//   • Generators never panic; option constructors may panic on nil inputs.

package keygen

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a negative key count.
var ErrBadSize = errors.New("keygen: invalid size")

// ErrUnknownOrder indicates an order name outside Orders().
var ErrUnknownOrder = errors.New("keygen: unknown order")

// ErrUnknownLabel indicates a label name outside ParseLabel's set.
var ErrUnknownLabel = errors.New("keygen: unknown label")

// ErrNeedRandSource indicates Shuffled was requested without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("keygen: rng is required")

// ErrOptionViolation indicates an option value that can only be rejected at
// generation time (for example a zero step combined with n > 1).
var ErrOptionViolation = errors.New("keygen: invalid option value")

// keygenErrorf returns "<method>: <message>: <sentinel>".
func keygenErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
