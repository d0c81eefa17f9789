// SPDX-License-Identifier: MIT
// Package: slotgraph/builder
//
// id_fn.go: label schemes for generated vertices.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a constructor-local index to a vertex label.
type IDFn func(idx int) string

// DefaultIDFn returns decimal labels: "0", "1", "2", …
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns single capital letters for idx in [0,25].
// Panics outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// ExcelColumnIDFn returns spreadsheet column names: "A".."Z", "AA", "AB", …
// Panics on negative idx.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	var i int
	for i = idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for l, r := 0, len(runes)-1; l < r; l, r = l+1, r-1 {
		runes[l], runes[r] = runes[r], runes[l]
	}

	return string(runes)
}
