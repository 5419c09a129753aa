// SPDX-License-Identifier: MIT
// Package: ordgraph/builder
//
// id_fn.go - node label schemes. An IDFn maps a 0-based index to a label;
// it must be injective over the indices a constructor uses.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn produces the label of the idx-th node.
type IDFn[N any] func(idx int) N

// DecimalID labels nodes "0", "1", "2", ...
func DecimalID(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolID labels nodes "A".."Z". Panics outside [0,25].
func SymbolID(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolID: idx must be in [0,25], got %d", idx))
	}
	return string('A' + rune(idx))
}

// ExcelColumnID labels nodes "A".."Z", "AA", "AB", ... Panics on idx < 0.
func ExcelColumnID(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnID: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, 'A'+rune(i%26))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// IntID labels nodes with their index.
func IntID(idx int) int { return idx }

// PrefixID labels nodes prefix+"0", prefix+"1", ...
func PrefixID(prefix string) IDFn[string] {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}
