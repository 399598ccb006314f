// Copyright (c) 2026 Listkit Team
// Listkit - ordered container toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package list

import (
	"cmp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Traits describes how a List formats, parses and measures its elements.
type Traits[T cmp.Ordered] struct {
	// Name identifies the element kind ("number", "string").
	Name string
	// Format renders an element for persistence and printing.
	Format func(T) string
	// Parse turns one persisted token back into an element.
	Parse func(string) (T, error)
	// Key is the comparison key used by the extremum queries.
	Key func(T) float64
}

// Kind names for the built-in traits.
const (
	KindNumber = "number"
	KindString = "string"
)

// NumberTraits measures numbers by value and parses decimal text.
var NumberTraits = Traits[float64]{
	Name: KindNumber,
	Format: func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	},
	Parse: func(s string) (float64, error) {
		return strconv.ParseFloat(strings.TrimSpace(s), 64)
	},
	Key: func(v float64) float64 { return v },
}

// StringTraits measures strings by their length in runes and persists them
// verbatim.
var StringTraits = Traits[string]{
	Name:   KindString,
	Format: func(s string) string { return s },
	Parse:  func(s string) (string, error) { return s, nil },
	Key: func(s string) float64 {
		return float64(utf8.RuneCountInString(s))
	},
}
