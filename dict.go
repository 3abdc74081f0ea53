package assoc

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Lookup when a key is absent.
// Containers themselves report absence through the boolean of Get.
var ErrNotFound = errors.New("assoc: key not found")

// Pair is one stored key-value association.
type Pair[K any, V any] struct {
	Key   K
	Value V
}

// String renders the pair as "(key, value)".
func (p Pair[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Key, p.Value)
}

// Dict is the key-value protocol shared by every container in this module.
//
// Set is first-write-wins: when key is already present the stored value is
// kept and Set reports false. Delete of an absent key is a no-op.
type Dict[K comparable, V any] interface {
	// Get returns the value stored under key, or the zero value and false.
	Get(key K) (V, bool)
	// Set inserts key if absent and reports whether an insert happened.
	Set(key K, value V) (bool, error)
	// Delete removes key and reports whether it was present.
	Delete(key K) bool
	// Contains reports whether key is present.
	Contains(key K) bool
	// Len returns the number of stored pairs.
	Len() int
	// Dump renders the container for debugging.
	Dump() string
}

// Lookup is Get with absence reported as ErrNotFound.
func Lookup[K comparable, V any](d Dict[K, V], key K) (V, error) {
	if v, ok := d.Get(key); ok {
		return v, nil
	}
	var zero V
	return zero, fmt.Errorf("Lookup(%v): %w", key, ErrNotFound)
}
