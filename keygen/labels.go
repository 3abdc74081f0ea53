package keygen

import (
	"fmt"
	"strconv"
	"strings"
)

// LabelFn turns an integer key into a string key. Implementations are pure
// and injective over their domain; a key outside the domain is a caller bug
// and panics.
type LabelFn func(k int) string

// Label names accepted by ParseLabel.
const (
	LabelDecimal      = "decimal"
	LabelSymbol       = "symbol"
	LabelAlphanumeric = "alphanumeric"
	LabelExcel        = "excel"
)

// DecimalLabel is strconv.Itoa; every int is in its domain.
func DecimalLabel(k int) string { return strconv.Itoa(k) }

// SymbolLabel maps 0..25 to "A".."Z". Under hashfn.Chaining these
// single-rune keys hash by code point, so "A" lands in bin 65 mod n.
func SymbolLabel(k int) string {
	mustInRange("SymbolLabel", k, 0, 25)
	return string(rune('A' + k))
}

// AlphanumericLabel writes k ≥ 0 in base 36 ("a" is 10, "10" is 36).
// Its keys are multi-rune beyond 35 and hash through xxhash.
func AlphanumericLabel(k int) string {
	mustInRange("AlphanumericLabel", k, 0, -1)
	return strconv.FormatInt(int64(k), 36)
}

// ExcelColumnLabel writes k ≥ 0 in bijective base 26, the way spreadsheets
// name columns: 0 "A", 25 "Z", 26 "AA", 701 "ZZ", 702 "AAA".
func ExcelColumnLabel(k int) string {
	mustInRange("ExcelColumnLabel", k, 0, -1)
	var buf [16]byte // 26^14 > MaxInt64
	pos := len(buf)
	for n := k + 1; n > 0; n = (n - 1) / 26 {
		pos--
		buf[pos] = byte('A' + (n-1)%26)
	}
	return string(buf[pos:])
}

// mustInRange panics unless lo <= k and, when hi >= lo, k <= hi.
func mustInRange(fn string, k, lo, hi int) {
	if k < lo || (hi >= lo && k > hi) {
		panic(fmt.Sprintf("keygen: %s(%d): key out of domain", fn, k))
	}
}

var labelFns = map[string]LabelFn{
	LabelDecimal:      DecimalLabel,
	LabelSymbol:       SymbolLabel,
	LabelAlphanumeric: AlphanumericLabel,
	LabelExcel:        ExcelColumnLabel,
}

// ParseLabel resolves a case-insensitive label name.
func ParseLabel(name string) (LabelFn, error) {
	if fn, ok := labelFns[strings.ToLower(strings.TrimSpace(name))]; ok {
		return fn, nil
	}
	return nil, keygenErrorf("ParseLabel", ErrUnknownLabel, "%q", name)
}

// Labels maps keys through fn. A nil fn means DecimalLabel.
func Labels(keys []int, fn LabelFn) []string {
	if fn == nil {
		fn = DecimalLabel
	}
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = fn(k)
	}
	return out
}
