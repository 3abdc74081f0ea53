package hashfn

import (
	"fmt"
	"math"
	"reflect"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// Hasher maps a key to a bin index for a table of binCount bins.
type Hasher[K any] interface {
	Hash(key K, binCount int) int
}

// Prober maps a key and a probe number to a slot index. As probe runs over
// [0, binCount) the results should cover every slot.
type Prober[K any] interface {
	Probe(key K, probe, binCount int) int
}

// HasherFunc adapts a plain function to Hasher.
type HasherFunc[K any] func(key K, binCount int) int

// Hash calls f(key, binCount).
func (f HasherFunc[K]) Hash(key K, binCount int) int { return f(key, binCount) }

// ProberFunc adapts a plain function to Prober.
type ProberFunc[K any] func(key K, probe, binCount int) int

// Probe calls f(key, probe, binCount).
func (f ProberFunc[K]) Probe(key K, probe, binCount int) int { return f(key, probe, binCount) }

// Index folds any integer into [0, binCount). binCount must be positive.
func Index(i, binCount int) int {
	i %= binCount
	if i < 0 {
		i += binCount
	}
	return i
}

type chaining[K any] struct{}

// Chaining returns the default separate-chaining strategy.
func Chaining[K any]() Hasher[K] { return chaining[K]{} }

func (chaining[K]) Hash(key K, binCount int) int {
	return KeyIndex(key, binCount)
}

type linearProbing[K any] struct {
	base Hasher[K]
}

// LinearProbing derives a probing strategy from base:
// (base.Hash(key, n) + probe) mod n. Panics if base is nil.
func LinearProbing[K any](base Hasher[K]) Prober[K] {
	if base == nil {
		panic("hashfn: LinearProbing(nil)")
	}
	return linearProbing[K]{base: base}
}

func (l linearProbing[K]) Probe(key K, probe, binCount int) int {
	return Index(Index(l.base.Hash(key, binCount), binCount)+probe, binCount)
}

// Probing is LinearProbing(Chaining[K]()).
func Probing[K any]() Prober[K] { return LinearProbing(Chaining[K]()) }

// ConstantHash sends every key to the same bin.
type ConstantHash[K any] struct {
	Bin int
}

// Constant returns a strategy that ignores the key.
func Constant[K any](bin int) ConstantHash[K] { return ConstantHash[K]{Bin: bin} }

// Hash returns Bin folded into [0, binCount).
func (c ConstantHash[K]) Hash(_ K, binCount int) int { return Index(c.Bin, binCount) }

// Probe walks linearly from Bin so open addressing can still place keys.
func (c ConstantHash[K]) Probe(_ K, probe, binCount int) int {
	return Index(c.Hash(*new(K), binCount)+probe, binCount)
}

// KeyIndex is the chaining formula used by Chaining.
//
//	integers          -> key mod binCount (non-negative)
//	floats            -> floor(key) mod binCount
//	single-rune text  -> ordinal mod binCount
//	other strings     -> xxhash64(key) mod binCount
//	bool              -> 0 or 1 mod binCount
//	anything else     -> xxhash64(fmt %v) mod binCount
func KeyIndex[K any](key K, binCount int) int {
	switch k := any(key).(type) {
	case int:
		return modSigned(k, binCount)
	case int8:
		return modSigned(k, binCount)
	case int16:
		return modSigned(k, binCount)
	case int32:
		return modSigned(k, binCount)
	case int64:
		return modSigned(k, binCount)
	case uint:
		return modUnsigned(k, binCount)
	case uint8:
		return modUnsigned(k, binCount)
	case uint16:
		return modUnsigned(k, binCount)
	case uint32:
		return modUnsigned(k, binCount)
	case uint64:
		return modUnsigned(k, binCount)
	case uintptr:
		return modUnsigned(k, binCount)
	case float32:
		return modFloat(k, binCount)
	case float64:
		return modFloat(k, binCount)
	case string:
		return stringIndex(k, binCount)
	case bool:
		if k {
			return Index(1, binCount)
		}
		return 0
	}

	// Named types fall back to their underlying kind.
	v := reflect.ValueOf(key)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return modSigned(v.Int(), binCount)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return modUnsigned(v.Uint(), binCount)
	case reflect.Float32, reflect.Float64:
		return modFloat(v.Float(), binCount)
	case reflect.String:
		return stringIndex(v.String(), binCount)
	}

	return modUnsigned(xxhash.Sum64String(fmt.Sprintf("%v", key)), binCount)
}

func modSigned[T constraints.Signed](v T, binCount int) int {
	return Index(int(int64(v)%int64(binCount)), binCount)
}

func modUnsigned[T constraints.Unsigned](v T, binCount int) int {
	return int(uint64(v) % uint64(binCount))
}

func modFloat[T constraints.Float](v T, binCount int) int {
	f := math.Floor(float64(v))
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return Index(int(math.Mod(f, float64(binCount))), binCount)
}

func stringIndex(s string, binCount int) int {
	if r, size := utf8.DecodeRuneInString(s); size > 0 && size == len(s) {
		return modSigned(r, binCount)
	}
	return modUnsigned(xxhash.Sum64String(s), binCount)
}
